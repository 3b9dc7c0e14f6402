package tokens

import (
	"fmt"
	"strconv"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

func typographyToken(name string, ts figma.TypeStyle, sourceName, description string, lineHeight string) model.Token {
	return model.Token{
		Name:     name,
		Category: model.CategoryTypography,
		Value:    cssFont(ts.FontFamily, ts.FontWeight, ts.FontSize, lineHeight),
		RawComponents: map[string]interface{}{
			"fontFamily":    ts.FontFamily,
			"fontWeight":    ts.FontWeight,
			"fontSize":      ts.FontSize,
			"lineHeight":    lineHeight,
			"letterSpacing": cssLetterSpacing(ts),
			"textCase":      cssTextCase(ts.TextCase),
		},
		SourceName:  sourceName,
		Description: description,
	}
}

func (e *Extractor) extractTypography(styles map[string]figma.Style, root *figma.Node, styleNodes map[string]*figma.Node) model.CategoryResult {
	out := map[string]model.Token{}
	taken := map[string]bool{}

	// Tier 1: TEXT styles resolved through their representative nodes.
	for _, ref := range resolveStyles(styles, root, styleNodes, "TEXT", "text") {
		if ref.node.Style == nil {
			continue
		}
		ts := *ref.node.Style
		name := uniqueName(TokenName(ref.style.Name), taken)
		out[name] = typographyToken(name, ts, ref.style.Name, ref.style.Description, cssLineHeight(ts))
	}
	if len(out) > 0 {
		return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceStyle}
	}

	// Tier 2: every distinct (family, weight, size) combination on text
	// nodes. A node name with a path separator names its token; anything
	// else is named sequentially.
	seen := map[string]bool{}
	idx := 0
	walker.Walk(root, func(n *figma.Node) {
		if n.Type != "TEXT" || n.Style == nil || n.Style.FontFamily == "" {
			return
		}
		ts := *n.Style
		key := fmt.Sprintf("%s|%s|%s", ts.FontFamily, formatNumber(ts.FontWeight), formatNumber(ts.FontSize))
		if seen[key] {
			return
		}
		seen[key] = true

		var name string
		if hasPathSeparator(n.Name) {
			name = uniqueName(TokenName(n.Name), taken)
		} else {
			idx++
			name = uniqueName("typography"+strconv.Itoa(idx), taken)
		}
		out[name] = typographyToken(name, ts, n.Name, "", "normal")
	})
	return model.CategoryResult{Tokens: out, Provenance: model.ProvenanceFallback}
}
