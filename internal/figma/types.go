package figma

// Wire types for the Figma REST API, restricted to the fields the
// extraction pipeline actually reads. Absent fields stay at their zero
// value or nil; nothing is inferred.

type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Paint struct {
	Type    string   `json:"type"` // SOLID, GRADIENT_LINEAR, IMAGE, ...
	Visible *bool    `json:"visible,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   *Color   `json:"color,omitempty"`
}

// IsVisible treats a missing visible flag as true, matching the API default.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

type Effect struct {
	Type    string   `json:"type"` // DROP_SHADOW, INNER_SHADOW, LAYER_BLUR, ...
	Visible *bool    `json:"visible,omitempty"`
	Color   *Color   `json:"color,omitempty"`
	Offset  *Vector  `json:"offset,omitempty"`
	Radius  float64  `json:"radius"`
	Spread  *float64 `json:"spread,omitempty"`
}

func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

type TypeStyle struct {
	FontFamily                string  `json:"fontFamily"`
	FontWeight                float64 `json:"fontWeight"`
	FontSize                  float64 `json:"fontSize"`
	LineHeightPx              float64 `json:"lineHeightPx"`
	LineHeightPercent         float64 `json:"lineHeightPercent"`         // INTRINSIC_%
	LineHeightPercentFontSize float64 `json:"lineHeightPercentFontSize"` // FONT_SIZE_%
	LineHeightUnit            string  `json:"lineHeightUnit"`            // PIXELS, FONT_SIZE_%, INTRINSIC_%
	LetterSpacing             float64 `json:"letterSpacing"`
	LetterSpacingUnit         string  `json:"letterSpacingUnit"` // PIXELS, PERCENT (plugin exports)
	LetterSpacingPercent      float64 `json:"letterSpacingPercent"`
	TextCase                  string  `json:"textCase"` // UPPER, LOWER, TITLE
}

// Node is one node of the document tree. The tree is externally owned and
// never mutated here.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // DOCUMENT, CANVAS, FRAME, TEXT, RECTANGLE, COMPONENT, COMPONENT_SET, ...

	AbsoluteBoundingBox *Rect `json:"absoluteBoundingBox,omitempty"`

	Fills   []Paint  `json:"fills,omitempty"`
	Strokes []Paint  `json:"strokes,omitempty"`
	Effects []Effect `json:"effects,omitempty"`

	StrokeWeight *float64  `json:"strokeWeight,omitempty"`
	StrokeDashes []float64 `json:"strokeDashes,omitempty"`
	StrokeCap    string    `json:"strokeCap,omitempty"`
	StrokeJoin   string    `json:"strokeJoin,omitempty"`
	StrokeAlign  string    `json:"strokeAlign,omitempty"`

	CornerRadius *float64 `json:"cornerRadius,omitempty"`

	Style      *TypeStyle `json:"style,omitempty"`
	Characters string     `json:"characters,omitempty"`

	LayoutMode            string  `json:"layoutMode,omitempty"` // HORIZONTAL, VERTICAL
	ItemSpacing           float64 `json:"itemSpacing,omitempty"`
	PaddingLeft           float64 `json:"paddingLeft,omitempty"`
	PaddingRight          float64 `json:"paddingRight,omitempty"`
	PaddingTop            float64 `json:"paddingTop,omitempty"`
	PaddingBottom         float64 `json:"paddingBottom,omitempty"`
	PrimaryAxisAlignItems string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string  `json:"counterAxisAlignItems,omitempty"`

	// Styles maps a style category (fill, text, effect, stroke, ...) to the
	// id of the style applied on this node.
	Styles map[string]string `json:"styles,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Style is one entry of the file's style catalog.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	StyleType   string `json:"styleType"` // FILL, TEXT, EFFECT, GRID
	Description string `json:"description"`
}

// ComponentMeta is the catalog record for a published component.
type ComponentMeta struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ComponentSetID string `json:"componentSetId,omitempty"`
}

// ComponentSetMeta is the catalog record for a component set (variant group).
type ComponentSetMeta struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FileResponse is the subset of GET /v1/files/:key this service consumes.
type FileResponse struct {
	Name          string                      `json:"name"`
	Version       string                      `json:"version"`
	Document      *Node                       `json:"document"`
	Styles        map[string]Style            `json:"styles"`
	Components    map[string]ComponentMeta    `json:"components"`
	ComponentSets map[string]ComponentSetMeta `json:"componentSets"`
}

type nodesResponse struct {
	Nodes map[string]struct {
		Document *Node `json:"document"`
	} `json:"nodes"`
}

type imagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}
