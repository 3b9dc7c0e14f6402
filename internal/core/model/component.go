package model

// LayoutSummary is a condensed view of a component's auto-layout settings.
type LayoutSummary struct {
	Mode           string  `json:"mode,omitempty"` // horizontal, vertical
	ItemSpacing    float64 `json:"item_spacing,omitempty"`
	PaddingLeft    float64 `json:"padding_left,omitempty"`
	PaddingRight   float64 `json:"padding_right,omitempty"`
	PaddingTop     float64 `json:"padding_top,omitempty"`
	PaddingBottom  float64 `json:"padding_bottom,omitempty"`
	PrimaryAlign   string  `json:"primary_align,omitempty"`
	CounterAlign   string  `json:"counter_align,omitempty"`
}

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Component is one extracted UI element definition. A component belongs to
// at most one ComponentSet, referenced (not owned) via ComponentSetID.
type Component struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description,omitempty"`
	ComponentSetID    string                 `json:"component_set_id,omitempty"`
	Properties        map[string]interface{} `json:"properties,omitempty"`
	Layout            *LayoutSummary         `json:"layout,omitempty"`
	StyleRefs         map[string]string      `json:"style_refs,omitempty"`
	Size              *Size                  `json:"size,omitempty"`
	VariantProperties map[string]string      `json:"variant_properties,omitempty"`
	SemanticType      string                 `json:"semantic_type,omitempty"`
	PreviewURL        string                 `json:"preview_url,omitempty"`
}

// ComponentSet groups components sharing a base identity. Components are
// owned by the DesignSystem; ComponentIDs are back-references in document
// order. VariantProperties is strictly the per-dimension union of the
// members' variant values.
type ComponentSet struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description,omitempty"`
	ComponentIDs      []string            `json:"component_ids"`
	VariantProperties map[string][]string `json:"variant_properties,omitempty"`
	SemanticType      string              `json:"semantic_type"`
}

// ComponentRef is the resolution result handed to code generation: either a
// concrete component or, when no variant narrowed the choice, a whole set.
type ComponentRef struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Type              string              `json:"type"`
	IsComponentSet    bool                `json:"is_component_set,omitempty"`
	VariantProperties map[string]string   `json:"variant_properties,omitempty"`
	SetVariantOptions map[string][]string `json:"set_variant_options,omitempty"`
	PreviewURL        string              `json:"preview_url,omitempty"`
}
