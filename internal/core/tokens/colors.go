package tokens

import (
	"strconv"
	"strings"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

func (e *Extractor) extractColors(styles map[string]figma.Style, root *figma.Node, styleNodes map[string]*figma.Node) model.CategoryResult {
	out := map[string]model.Token{}
	taken := map[string]bool{}

	// Tier 1: FILL styles resolved through their representative nodes.
	for _, ref := range resolveStyles(styles, root, styleNodes, "FILL", "fill") {
		paint := firstVisibleSolid(ref.node.Fills)
		if paint == nil {
			continue
		}
		c := *paint.Color
		name := uniqueName(TokenName(ref.style.Name), taken)
		out[name] = model.Token{
			Name:     name,
			Category: model.CategoryColor,
			Value:    cssColor(c),
			RawComponents: map[string]interface{}{
				"r": c.R, "g": c.G, "b": c.B, "a": c.A,
			},
			SourceName:  ref.style.Name,
			Description: ref.style.Description,
		}
	}
	if len(out) > 0 {
		return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceStyle}
	}

	// Tier 2: every visible solid fill and stroke color in the tree,
	// deduplicated by value and named sequentially in document order.
	seen := map[string]bool{}
	idx := 0
	walker.Walk(root, func(n *figma.Node) {
		for _, paints := range [][]figma.Paint{n.Fills, n.Strokes} {
			for i := range paints {
				p := paints[i]
				if !p.IsVisible() || p.Type != "SOLID" || p.Color == nil {
					continue
				}
				value := cssColor(*p.Color)
				if seen[value] {
					continue
				}
				seen[value] = true
				idx++
				name := uniqueName("color"+strconv.Itoa(idx), taken)
				out[name] = model.Token{
					Name:     name,
					Category: model.CategoryColor,
					Value:    value,
					RawComponents: map[string]interface{}{
						"r": p.Color.R, "g": p.Color.G, "b": p.Color.B, "a": p.Color.A,
					},
					SourceName: n.Name,
				}
			}
		}
	})
	return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceFallback}
}

// hasPathSeparator reports whether a node name looks like a token path
// ("Heading/H1") rather than a free-form layer name.
func hasPathSeparator(name string) bool {
	return strings.Contains(name, "/")
}
