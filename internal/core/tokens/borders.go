package tokens

import (
	"strconv"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

func borderToken(name string, n *figma.Node, stroke figma.Paint, sourceName, description string) model.Token {
	weight := 1.0
	if n.StrokeWeight != nil {
		weight = *n.StrokeWeight
	}
	color := cssColor(*stroke.Color)
	raw := map[string]interface{}{
		"weight": weight,
		"color":  color,
	}
	if len(n.StrokeDashes) > 0 {
		raw["dashes"] = n.StrokeDashes
	}
	if n.StrokeCap != "" {
		raw["cap"] = n.StrokeCap
	}
	if n.StrokeJoin != "" {
		raw["join"] = n.StrokeJoin
	}
	if n.StrokeAlign != "" {
		raw["align"] = n.StrokeAlign
	}
	return model.Token{
		Name:          name,
		Category:      model.CategoryBorder,
		Value:         cssBorder(weight, len(n.StrokeDashes) > 0, color),
		RawComponents: raw,
		SourceName:    sourceName,
		Description:   description,
	}
}

func (e *Extractor) extractBorders(styles map[string]figma.Style, root *figma.Node, styleNodes map[string]*figma.Node) model.CategoryResult {
	out := map[string]model.Token{}
	taken := map[string]bool{}

	// Tier 1: stroke-applied styles. The catalog publishes stroke colors as
	// FILL styles; the node's "stroke" reference key tells them apart from
	// plain fills.
	for _, styleType := range []string{"STROKE", "FILL"} {
		for _, ref := range resolveStyles(styles, root, styleNodes, styleType, "stroke") {
			stroke := firstVisibleSolid(ref.node.Strokes)
			if stroke == nil {
				continue
			}
			name := uniqueName(TokenName(ref.style.Name), taken)
			out[name] = borderToken(name, ref.node, *stroke, ref.style.Name, ref.style.Description)
		}
	}
	if len(out) > 0 {
		return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceStyle}
	}

	// Tier 2: deduplicate every stroked node by rendered border value.
	seen := map[string]bool{}
	idx := 0
	walker.Walk(root, func(n *figma.Node) {
		stroke := firstVisibleSolid(n.Strokes)
		if stroke == nil {
			return
		}
		weight := 1.0
		if n.StrokeWeight != nil {
			weight = *n.StrokeWeight
		}
		if weight <= 0 {
			return
		}
		value := cssBorder(weight, len(n.StrokeDashes) > 0, cssColor(*stroke.Color))
		if seen[value] {
			return
		}
		seen[value] = true

		var name string
		if hasPathSeparator(n.Name) {
			name = uniqueName(TokenName(n.Name), taken)
		} else {
			idx++
			name = uniqueName("border"+strconv.Itoa(idx), taken)
		}
		out[name] = borderToken(name, n, *stroke, n.Name, "")
	})
	return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceFallback}
}
