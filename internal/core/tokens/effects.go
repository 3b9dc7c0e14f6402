package tokens

import (
	"strconv"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

func shadowToken(name string, e figma.Effect, sourceName, description string) model.Token {
	raw := map[string]interface{}{
		"type":   e.Type,
		"radius": e.Radius,
	}
	if e.Offset != nil {
		raw["offsetX"] = e.Offset.X
		raw["offsetY"] = e.Offset.Y
	}
	if e.Spread != nil {
		raw["spread"] = *e.Spread
	}
	if e.Color != nil {
		raw["color"] = cssColor(*e.Color)
	}
	return model.Token{
		Name:          name,
		Category:      model.CategoryShadow,
		Value:         cssShadow(e),
		RawComponents: raw,
		SourceName:    sourceName,
		Description:   description,
	}
}

func (e *Extractor) extractShadows(styles map[string]figma.Style, root *figma.Node, styleNodes map[string]*figma.Node) model.CategoryResult {
	out := map[string]model.Token{}
	taken := map[string]bool{}

	// Tier 1: EFFECT styles resolved through their representative nodes.
	for _, ref := range resolveStyles(styles, root, styleNodes, "EFFECT", "effect") {
		shadow := firstVisibleShadow(ref.node.Effects)
		if shadow == nil {
			continue
		}
		name := uniqueName(TokenName(ref.style.Name), taken)
		out[name] = shadowToken(name, *shadow, ref.style.Name, ref.style.Description)
	}
	if len(out) > 0 {
		return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceStyle}
	}

	// Tier 2: deduplicate every visible shadow effect by rendered value.
	seen := map[string]bool{}
	idx := 0
	walker.Walk(root, func(n *figma.Node) {
		shadow := firstVisibleShadow(n.Effects)
		if shadow == nil {
			return
		}
		value := cssShadow(*shadow)
		if seen[value] {
			return
		}
		seen[value] = true

		var name string
		if hasPathSeparator(n.Name) {
			name = uniqueName(TokenName(n.Name), taken)
		} else {
			idx++
			name = uniqueName("shadow"+strconv.Itoa(idx), taken)
		}
		out[name] = shadowToken(name, *shadow, n.Name, "")
	})
	return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceFallback}
}
