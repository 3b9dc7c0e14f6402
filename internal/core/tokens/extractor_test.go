package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

func solidFill(c figma.Color) figma.Paint {
	return figma.Paint{Type: "SOLID", Color: &c}
}

func TestExtractColorFromFillStyle(t *testing.T) {
	styles := map[string]figma.Style{
		"s1": {Name: "Primary/500", StyleType: "FILL", Description: "brand primary"},
	}
	root := &figma.Node{
		ID:   "root",
		Type: "DOCUMENT",
		Children: []*figma.Node{
			{
				ID:     "n1",
				Type:   "RECTANGLE",
				Styles: map[string]string{"fill": "s1"},
				Fills:  []figma.Paint{solidFill(figma.Color{R: 0, G: 0.357, B: 0.918, A: 1})},
			},
		},
	}

	ts := NewExtractor().Extract(styles, root, nil)

	require.Len(t, ts.Colors.Tokens, 1)
	tok, ok := ts.Colors.Tokens["primary500"]
	require.True(t, ok, "expected token primary500, got %v", ts.Colors.Tokens)
	assert.Equal(t, "rgb(0, 91, 234)", tok.Value)
	assert.Equal(t, "Primary/500", tok.SourceName)
}

func TestExtractStyleWithoutConsumerUsesStyleNode(t *testing.T) {
	styles := map[string]figma.Style{
		"s1": {Name: "Accent/300", StyleType: "FILL"},
		"s2": {Name: "Body/Text", StyleType: "TEXT"},
	}
	root := &figma.Node{ID: "root", Type: "DOCUMENT"}
	styleNodes := map[string]*figma.Node{
		"s1": {
			ID:    "s1",
			Type:  "RECTANGLE",
			Fills: []figma.Paint{solidFill(figma.Color{R: 1, G: 0.6, B: 0, A: 1})},
		},
		"s2": {
			ID:   "s2",
			Type: "TEXT",
			Style: &figma.TypeStyle{
				FontFamily: "Inter",
				FontWeight: 400,
				FontSize:   14,
			},
		},
	}

	ts := NewExtractor().Extract(styles, root, styleNodes)

	tok, ok := ts.Colors.Tokens["accent300"]
	require.True(t, ok, "expected token accent300, got %v", ts.Colors.Tokens)
	assert.Equal(t, "rgb(255, 153, 0)", tok.Value)
	assert.Equal(t, model.ProvenanceStyle, ts.Colors.Provenance)

	typ, ok := ts.Typography.Tokens["bodyText"]
	require.True(t, ok, "expected token bodyText, got %v", ts.Typography.Tokens)
	assert.Equal(t, "400 14px/normal Inter", typ.Value)
	assert.Equal(t, "brand primary", tok.Description)
	assert.Equal(t, model.ProvenanceStyle, ts.Colors.Provenance)
}

func TestExtractTypographyFallback(t *testing.T) {
	root := &figma.Node{
		ID:   "root",
		Type: "DOCUMENT",
		Children: []*figma.Node{
			{
				ID:   "t1",
				Type: "TEXT",
				Name: "Heading/H1",
				Style: &figma.TypeStyle{
					FontFamily: "Inter",
					FontWeight: 600,
					FontSize:   16,
				},
			},
		},
	}

	ts := NewExtractor().Extract(map[string]figma.Style{}, root, nil)

	require.Len(t, ts.Typography.Tokens, 1)
	tok, ok := ts.Typography.Tokens["headingH1"]
	require.True(t, ok, "expected token headingH1, got %v", ts.Typography.Tokens)
	assert.Equal(t, "600 16px/normal Inter", tok.Value)
	assert.Equal(t, model.ProvenanceFallback, ts.Typography.Provenance)
}

func TestColorFallbackScansTree(t *testing.T) {
	root := &figma.Node{
		ID:   "root",
		Type: "DOCUMENT",
		Children: []*figma.Node{
			{ID: "a", Type: "RECTANGLE", Fills: []figma.Paint{solidFill(figma.Color{R: 1, A: 1})}},
			{ID: "b", Type: "RECTANGLE", Fills: []figma.Paint{solidFill(figma.Color{G: 1, A: 1})}},
			// Same value as "a": deduplicated.
			{ID: "c", Type: "RECTANGLE", Strokes: []figma.Paint{solidFill(figma.Color{R: 1, A: 1})}},
		},
	}

	ts := NewExtractor().Extract(map[string]figma.Style{}, root, nil)

	assert.Equal(t, model.ProvenanceFallback, ts.Colors.Provenance)
	require.Len(t, ts.Colors.Tokens, 2)
	assert.Equal(t, "rgb(255, 0, 0)", ts.Colors.Tokens["color1"].Value)
	assert.Equal(t, "rgb(0, 255, 0)", ts.Colors.Tokens["color2"].Value)
}

func TestInvisibleAndGradientPaintsSkipped(t *testing.T) {
	hidden := false
	root := &figma.Node{
		ID:   "root",
		Type: "DOCUMENT",
		Children: []*figma.Node{
			{ID: "a", Type: "RECTANGLE", Fills: []figma.Paint{
				{Type: "SOLID", Visible: &hidden, Color: &figma.Color{R: 1, A: 1}},
				{Type: "GRADIENT_LINEAR"},
			}},
		},
	}

	ts := NewExtractor().Extract(map[string]figma.Style{}, root, nil)
	assert.Empty(t, ts.Colors.Tokens)
}

func TestTokenNamesUniqueWithinCategory(t *testing.T) {
	styles := map[string]figma.Style{
		"s1": {Name: "Primary/500", StyleType: "FILL"},
		"s2": {Name: "primary 500", StyleType: "FILL"},
	}
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{ID: "a", Styles: map[string]string{"fill": "s1"}, Fills: []figma.Paint{solidFill(figma.Color{R: 1, A: 1})}},
			{ID: "b", Styles: map[string]string{"fill": "s2"}, Fills: []figma.Paint{solidFill(figma.Color{B: 1, A: 1})}},
		},
	}

	ts := NewExtractor().Extract(styles, root, nil)

	assert.Len(t, ts.Colors.Tokens, 2)
	assert.Contains(t, ts.Colors.Tokens, "primary500")
	assert.Contains(t, ts.Colors.Tokens, "primary5002")
}

func TestSpacingFromSquareSpacerNodes(t *testing.T) {
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{ID: "a", Name: "Spacing/MD", AbsoluteBoundingBox: &figma.Rect{Width: 16, Height: 16.5}},
			{ID: "b", Name: "space-lg", AbsoluteBoundingBox: &figma.Rect{Width: 24, Height: 24}},
			// Not square: ignored.
			{ID: "c", Name: "Spacing/XL", AbsoluteBoundingBox: &figma.Rect{Width: 32, Height: 8}},
		},
	}

	ts := NewExtractor().Extract(map[string]figma.Style{}, root, nil)

	require.Len(t, ts.Spacing.Tokens, 2)
	assert.Equal(t, "16px", ts.Spacing.Tokens["md"].Value)
	assert.Equal(t, "24px", ts.Spacing.Tokens["spaceLg"].Value)
}

func TestSpacingAggregateFallback(t *testing.T) {
	var children []*figma.Node
	for i := 0; i < 6; i++ {
		children = append(children, &figma.Node{
			ID:          "f" + string(rune('a'+i)),
			Type:        "FRAME",
			LayoutMode:  "HORIZONTAL",
			ItemSpacing: 8,
			PaddingTop:  3, // below the frequency threshold as a padding pair
		})
	}
	root := &figma.Node{ID: "root", Children: children}

	e := NewExtractor()
	ts := e.Extract(map[string]figma.Style{}, root, nil)

	require.Contains(t, ts.Spacing.Tokens, "space8")
	assert.Equal(t, "8px", ts.Spacing.Tokens["space8"].Value)
	// PaddingTop=3 occurs 6 times too, so it qualifies as well.
	assert.Contains(t, ts.Spacing.Tokens, "space3")
}

func TestShadowStyleExtraction(t *testing.T) {
	spread := 2.0
	styles := map[string]figma.Style{
		"e1": {Name: "Elevation/Low", StyleType: "EFFECT"},
	}
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{
				ID:     "a",
				Styles: map[string]string{"effect": "e1"},
				Effects: []figma.Effect{{
					Type:   "DROP_SHADOW",
					Color:  &figma.Color{A: 0.1},
					Offset: &figma.Vector{X: 0, Y: 4},
					Radius: 8,
					Spread: &spread,
				}},
			},
		},
	}

	ts := NewExtractor().Extract(styles, root, nil)

	require.Contains(t, ts.Shadows.Tokens, "elevationLow")
	assert.Equal(t, "0px 4px 8px 2px rgba(0, 0, 0, 0.1)", ts.Shadows.Tokens["elevationLow"].Value)
	assert.Equal(t, model.ProvenanceStyle, ts.Shadows.Provenance)
}

func TestBorderFallback(t *testing.T) {
	weight := 2.0
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{
				ID:           "a",
				Name:         "card outline",
				Strokes:      []figma.Paint{solidFill(figma.Color{A: 1})},
				StrokeWeight: &weight,
				StrokeDashes: []float64{4, 4},
			},
		},
	}

	ts := NewExtractor().Extract(map[string]figma.Style{}, root, nil)

	require.Contains(t, ts.Borders.Tokens, "border1")
	assert.Equal(t, "2px dashed rgb(0, 0, 0)", ts.Borders.Tokens["border1"].Value)
}

func TestAllCategoriesAlwaysPresent(t *testing.T) {
	ts := NewExtractor().Extract(map[string]figma.Style{}, &figma.Node{ID: "root"}, nil)
	for _, cat := range model.Categories {
		require.NotNil(t, ts.Category(cat).Tokens, "category %s missing", cat)
	}
}

func TestExtractIdempotent(t *testing.T) {
	styles := map[string]figma.Style{
		"s1": {Name: "Primary/500", StyleType: "FILL"},
	}
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{ID: "a", Styles: map[string]string{"fill": "s1"}, Fills: []figma.Paint{solidFill(figma.Color{R: 0.5, A: 1})}},
			{ID: "t", Type: "TEXT", Name: "Body", Style: &figma.TypeStyle{FontFamily: "Inter", FontWeight: 400, FontSize: 14}},
		},
	}

	e := NewExtractor()
	first := e.Extract(styles, root, nil)
	second := e.Extract(styles, root, nil)

	assert.Equal(t, first, second)
}
