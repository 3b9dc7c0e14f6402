package tokens

import (
	"log"
	"sort"
	"sync"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

// Extractor produces the five token categories from a style catalog plus the
// document tree. Each category tries the style catalog first and falls back
// to scanning the tree when the catalog has nothing for it.
type Extractor struct {
	// SpacingMinCount is the minimum number of occurrences an auto-layout
	// spacing value needs tree-wide before the aggregate fallback emits a
	// token for it.
	SpacingMinCount int
}

func NewExtractor() *Extractor {
	return &Extractor{SpacingMinCount: 5}
}

// Extract never fails: a category whose extraction panics or finds nothing
// ends up as an empty map, logged as recoverable. The five categories are
// independent and run concurrently. styleNodes supplies representative nodes
// for catalog styles no node in the tree applies (a published style without
// a consumer); it may be nil.
func (e *Extractor) Extract(styles map[string]figma.Style, root *figma.Node, styleNodes map[string]*figma.Node) model.TokenSet {
	ts := model.NewTokenSet()

	var wg sync.WaitGroup
	run := func(cat model.TokenCategory, fn func() model.CategoryResult) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("tokens: %s extraction failed, leaving category empty: %v", cat, r)
				}
			}()
			*ts.Category(cat) = fn()
		}()
	}

	run(model.CategoryColor, func() model.CategoryResult { return e.extractColors(styles, root, styleNodes) })
	run(model.CategoryTypography, func() model.CategoryResult { return e.extractTypography(styles, root, styleNodes) })
	run(model.CategorySpacing, func() model.CategoryResult { return e.extractSpacing(root) })
	run(model.CategoryShadow, func() model.CategoryResult { return e.extractShadows(styles, root, styleNodes) })
	run(model.CategoryBorder, func() model.CategoryResult { return e.extractBorders(styles, root, styleNodes) })
	wg.Wait()

	return ts
}

// styleRef pairs a catalog style with the first document node that applies
// it under the given reference key ("fill", "text", "effect", "stroke").
type styleRef struct {
	id    string
	style figma.Style
	node  *figma.Node
}

// resolveStyles returns catalog styles of the wanted type together with
// their representative nodes, ordered by style name for determinism. A style
// no node in the tree references falls back to its own node in styleNodes;
// styles with neither are skipped.
func resolveStyles(styles map[string]figma.Style, root *figma.Node, styleNodes map[string]*figma.Node, styleType, refKey string) []styleRef {
	ids := make([]string, 0, len(styles))
	for id, s := range styles {
		if s.StyleType == styleType {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		if styles[ids[i]].Name != styles[ids[j]].Name {
			return styles[ids[i]].Name < styles[ids[j]].Name
		}
		return ids[i] < ids[j]
	})

	var refs []styleRef
	for _, id := range ids {
		id := id
		node := walker.FindFirst(root, func(n *figma.Node) bool {
			return n.Styles[refKey] == id
		})
		if node == nil {
			node = styleNodes[id]
		}
		if node == nil {
			continue
		}
		refs = append(refs, styleRef{id: id, style: styles[id], node: node})
	}
	return refs
}

func firstVisibleSolid(paints []figma.Paint) *figma.Paint {
	for i := range paints {
		if paints[i].IsVisible() && paints[i].Type == "SOLID" && paints[i].Color != nil {
			return &paints[i]
		}
	}
	return nil
}

func firstVisibleShadow(effects []figma.Effect) *figma.Effect {
	for i := range effects {
		if !effects[i].IsVisible() {
			continue
		}
		if effects[i].Type == "DROP_SHADOW" || effects[i].Type == "INNER_SHADOW" {
			return &effects[i]
		}
	}
	return nil
}
