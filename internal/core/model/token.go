package model

type TokenCategory string

const (
	CategoryColor      TokenCategory = "color"
	CategoryTypography TokenCategory = "typography"
	CategorySpacing    TokenCategory = "spacing"
	CategoryShadow     TokenCategory = "shadow"
	CategoryBorder     TokenCategory = "border"
)

// Categories lists all token categories in a stable order.
var Categories = []TokenCategory{
	CategoryColor,
	CategoryTypography,
	CategorySpacing,
	CategoryShadow,
	CategoryBorder,
}

// Provenance records which extraction tier produced a category's tokens.
type Provenance string

const (
	ProvenanceStyle    Provenance = "style"
	ProvenanceFallback Provenance = "fallback"
)

// Token is a single named design value. Immutable once extracted; names are
// unique within a category.
type Token struct {
	Name          string                 `json:"name"`
	Category      TokenCategory          `json:"category"`
	Value         string                 `json:"value"`
	RawComponents map[string]interface{} `json:"raw_components,omitempty"`
	SourceName    string                 `json:"source_name,omitempty"`
	Description   string                 `json:"description,omitempty"`
}

// CategoryResult carries one category's tokens together with the tier that
// produced them.
type CategoryResult struct {
	Tokens     map[string]Token `json:"tokens"`
	Provenance Provenance       `json:"provenance"`
}

// TokenSet holds all five categories. Every category map is always present,
// possibly empty.
type TokenSet struct {
	Colors     CategoryResult `json:"colors"`
	Typography CategoryResult `json:"typography"`
	Spacing    CategoryResult `json:"spacing"`
	Shadows    CategoryResult `json:"shadows"`
	Borders    CategoryResult `json:"borders"`
}

// NewTokenSet returns a TokenSet with all category maps initialized.
func NewTokenSet() TokenSet {
	empty := func() CategoryResult {
		return CategoryResult{Tokens: map[string]Token{}, Provenance: ProvenanceStyle}
	}
	return TokenSet{
		Colors:     empty(),
		Typography: empty(),
		Spacing:    empty(),
		Shadows:    empty(),
		Borders:    empty(),
	}
}

// Category returns a pointer to the result for the given category.
func (ts *TokenSet) Category(c TokenCategory) *CategoryResult {
	switch c {
	case CategoryColor:
		return &ts.Colors
	case CategoryTypography:
		return &ts.Typography
	case CategorySpacing:
		return &ts.Spacing
	case CategoryShadow:
		return &ts.Shadows
	case CategoryBorder:
		return &ts.Borders
	}
	return nil
}
