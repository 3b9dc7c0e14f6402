package tokens

import (
	"math"
	"sort"
	"strings"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

// Spacing has no dedicated style type in the source format, so it is always
// derived from the document. Two sub-fallbacks:
//
//  1. explicit spacer nodes: name contains "spacing"/"space" and the
//     bounding box is square (within one unit);
//  2. aggregate auto-layout values: item spacing and paddings collected
//     tree-wide, keeping values that occur at least SpacingMinCount times.
func (e *Extractor) extractSpacing(root *figma.Node) model.CategoryResult {
	out := map[string]model.Token{}
	taken := map[string]bool{}

	spacers := walker.Collect(root, func(n *figma.Node) bool {
		lower := strings.ToLower(n.Name)
		if !strings.Contains(lower, "spacing") && !strings.Contains(lower, "space") {
			return false
		}
		box := n.AbsoluteBoundingBox
		return box != nil && math.Abs(box.Width-box.Height) <= 1
	})

	for _, n := range spacers {
		size := n.AbsoluteBoundingBox.Width
		name := uniqueName(TrailingSegment(n.Name), taken)
		out[name] = model.Token{
			Name:          name,
			Category:      model.CategorySpacing,
			Value:         cssPx(size),
			RawComponents: map[string]interface{}{"size": size},
			SourceName:    n.Name,
		}
	}
	if len(out) > 0 {
		return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceFallback}
	}

	counts := map[float64]int{}
	walker.Walk(root, func(n *figma.Node) {
		if n.LayoutMode == "" {
			return
		}
		for _, v := range []float64{n.ItemSpacing, n.PaddingLeft, n.PaddingRight, n.PaddingTop, n.PaddingBottom} {
			if v > 0 {
				counts[v]++
			}
		}
	})

	var values []float64
	for v, count := range counts {
		if count >= e.SpacingMinCount {
			values = append(values, v)
		}
	}
	sort.Float64s(values)

	for _, v := range values {
		name := uniqueName("space"+formatNumber(v), taken)
		out[name] = model.Token{
			Name:          name,
			Category:      model.CategorySpacing,
			Value:         cssPx(v),
			RawComponents: map[string]interface{}{"size": v, "occurrences": counts[v]},
		}
	}
	return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceFallback}
}
