package model

// RequirementElement is one UI element produced by the upstream
// requirement-structuring stage. All fields are optional; resolution
// degrades gracefully toward semantic search as fields go missing.
type RequirementElement struct {
	Type       string                 `json:"type,omitempty"`
	Content    string                 `json:"content,omitempty"`
	Variant    string                 `json:"variant,omitempty"`
	Style      string                 `json:"style,omitempty"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Children   []RequirementElement   `json:"children,omitempty"`
}
