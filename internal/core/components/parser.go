package components

import (
	"sort"
	"strings"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

// Parser turns the component/component-set catalogs plus the document tree
// into owned Component and ComponentSet records.
type Parser struct {
	Classifier *Classifier
}

func NewParser(classifier *Classifier) *Parser {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &Parser{Classifier: classifier}
}

// Extract builds components in document order (catalog entries whose nodes
// are missing from the tree follow in id order), then groups them into sets.
// Missing or partial component-set data never fails extraction; affected
// components simply stay ungrouped.
func (p *Parser) Extract(
	catalog map[string]figma.ComponentMeta,
	setCatalog map[string]figma.ComponentSetMeta,
	root *figma.Node,
) ([]model.Component, map[string]model.ComponentSet) {

	components := make([]model.Component, 0, len(catalog))
	seen := map[string]bool{}

	walker.Walk(root, func(n *figma.Node) {
		meta, ok := catalog[n.ID]
		if !ok || seen[n.ID] {
			return
		}
		seen[n.ID] = true
		components = append(components, p.buildComponent(n.ID, meta, n))
	})

	// Catalog entries not present in the fetched tree (partial documents)
	// still become components, minus node-derived detail.
	var missing []string
	for id := range catalog {
		if !seen[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	for _, id := range missing {
		components = append(components, p.buildComponent(id, catalog[id], nil))
	}

	// Drop back-references to sets the catalog does not know about.
	for i := range components {
		if components[i].ComponentSetID == "" {
			continue
		}
		if _, ok := setCatalog[components[i].ComponentSetID]; !ok {
			components[i].ComponentSetID = ""
		}
	}

	sets := p.buildSets(setCatalog, components)
	return components, sets
}

func (p *Parser) buildComponent(id string, meta figma.ComponentMeta, node *figma.Node) model.Component {
	comp := model.Component{
		ID:                id,
		Name:              meta.Name,
		Description:       meta.Description,
		ComponentSetID:    meta.ComponentSetID,
		VariantProperties: ParseVariantName(meta.Name),
	}
	comp.SemanticType = p.Classifier.Classify(meta.Name, singleValues(comp.VariantProperties))

	if node == nil {
		return comp
	}

	comp.StyleRefs = node.Styles
	if box := node.AbsoluteBoundingBox; box != nil {
		comp.Size = &model.Size{Width: box.Width, Height: box.Height}
	}
	if node.LayoutMode != "" {
		comp.Layout = &model.LayoutSummary{
			Mode:          strings.ToLower(node.LayoutMode),
			ItemSpacing:   node.ItemSpacing,
			PaddingLeft:   node.PaddingLeft,
			PaddingRight:  node.PaddingRight,
			PaddingTop:    node.PaddingTop,
			PaddingBottom: node.PaddingBottom,
			PrimaryAlign:  strings.ToLower(node.PrimaryAxisAlignItems),
			CounterAlign:  strings.ToLower(node.CounterAxisAlignItems),
		}
	}
	comp.Properties = inspectProperties(node)
	return comp
}

// inspectProperties derives free-form semantic properties from the
// component's subtree: visible text, icon presence and position, and rough
// input/label flags. All of it is best-effort.
func inspectProperties(node *figma.Node) map[string]interface{} {
	props := map[string]interface{}{}

	texts := walker.Collect(node, func(n *figma.Node) bool {
		return n.Type == "TEXT"
	})
	if len(texts) > 0 {
		props["hasLabel"] = true
		if texts[0].Characters != "" {
			props["text"] = texts[0].Characters
		}
	}

	icons := walker.Collect(node, func(n *figma.Node) bool {
		if n.Type == "VECTOR" || n.Type == "BOOLEAN_OPERATION" {
			return true
		}
		return strings.Contains(strings.ToLower(n.Name), "icon")
	})
	if len(icons) > 0 {
		props["hasIcon"] = true
		if pos := iconPosition(icons[0], texts); pos != "" {
			props["iconPosition"] = pos
		}
	}

	lower := strings.ToLower(node.Name)
	if strings.Contains(lower, "input") || strings.Contains(lower, "field") {
		props["isInput"] = true
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

// iconPosition compares the icon's x extent against the first text node.
func iconPosition(icon *figma.Node, texts []*figma.Node) string {
	if icon.AbsoluteBoundingBox == nil || len(texts) == 0 || texts[0].AbsoluteBoundingBox == nil {
		return ""
	}
	if icon.AbsoluteBoundingBox.X < texts[0].AbsoluteBoundingBox.X {
		return "left"
	}
	return "right"
}

func (p *Parser) buildSets(setCatalog map[string]figma.ComponentSetMeta, components []model.Component) map[string]model.ComponentSet {
	sets := make(map[string]model.ComponentSet, len(setCatalog))
	if len(setCatalog) == 0 {
		return sets
	}

	for id, meta := range setCatalog {
		set := model.ComponentSet{
			ID:                id,
			Name:              meta.Name,
			Description:       meta.Description,
			VariantProperties: map[string][]string{},
		}
		for _, comp := range components {
			if comp.ComponentSetID != id {
				continue
			}
			set.ComponentIDs = append(set.ComponentIDs, comp.ID)
			mergeVariants(set.VariantProperties, comp.VariantProperties)
		}
		set.SemanticType = p.Classifier.Classify(set.Name, set.VariantProperties)
		sets[id] = set
	}
	return sets
}

// mergeVariants unions one member's variant values into the set aggregate,
// preserving first-seen order per dimension.
func mergeVariants(agg map[string][]string, member map[string]string) {
	keys := make([]string, 0, len(member))
	for k := range member {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := member[k]
		exists := false
		for _, have := range agg[k] {
			if have == v {
				exists = true
				break
			}
		}
		if !exists {
			agg[k] = append(agg[k], v)
		}
	}
}
