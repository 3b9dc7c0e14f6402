package components

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamsWEB/uifinityai/internal/figma"
)

func TestExtractComponentWithVariants(t *testing.T) {
	catalog := map[string]figma.ComponentMeta{
		"c1": {Key: "k1", Name: "Button=Primary, Size=Large", Description: "primary cta"},
	}
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{
				ID:                  "c1",
				Type:                "COMPONENT",
				Name:                "Button=Primary, Size=Large",
				AbsoluteBoundingBox: &figma.Rect{Width: 120, Height: 40},
				LayoutMode:          "HORIZONTAL",
				ItemSpacing:         8,
				Children: []*figma.Node{
					{ID: "t", Type: "TEXT", Characters: "Submit", AbsoluteBoundingBox: &figma.Rect{X: 40}},
					{ID: "i", Type: "VECTOR", Name: "arrow icon", AbsoluteBoundingBox: &figma.Rect{X: 10}},
				},
			},
		},
	}

	comps, sets := NewParser(nil).Extract(catalog, nil, root)

	require.Len(t, comps, 1)
	comp := comps[0]
	assert.Equal(t, map[string]string{"Button": "Primary", "Size": "Large"}, comp.VariantProperties)
	assert.Equal(t, "button", comp.SemanticType)
	assert.Equal(t, 120.0, comp.Size.Width)
	assert.Equal(t, "horizontal", comp.Layout.Mode)
	assert.Equal(t, "Submit", comp.Properties["text"])
	assert.Equal(t, true, comp.Properties["hasIcon"])
	assert.Equal(t, "left", comp.Properties["iconPosition"])
	assert.Empty(t, sets)
}

func TestExtractGroupsComponentsIntoSets(t *testing.T) {
	catalog := map[string]figma.ComponentMeta{
		"c1": {Name: "Size=Small", ComponentSetID: "set1"},
		"c2": {Name: "Size=Large", ComponentSetID: "set1"},
		"c3": {Name: "Size=Large, State=Hover", ComponentSetID: "set1"},
	}
	setCatalog := map[string]figma.ComponentSetMeta{
		"set1": {Name: "Button", Description: "all buttons"},
	}
	root := &figma.Node{
		ID: "root",
		Children: []*figma.Node{
			{ID: "c1", Type: "COMPONENT"},
			{ID: "c2", Type: "COMPONENT"},
			{ID: "c3", Type: "COMPONENT"},
		},
	}

	comps, sets := NewParser(nil).Extract(catalog, setCatalog, root)

	require.Len(t, comps, 3)
	require.Contains(t, sets, "set1")
	set := sets["set1"]
	assert.Equal(t, "button", set.SemanticType)
	assert.Equal(t, []string{"c1", "c2", "c3"}, set.ComponentIDs)
	assert.ElementsMatch(t, []string{"Small", "Large"}, set.VariantProperties["Size"])
	assert.Equal(t, []string{"Hover"}, set.VariantProperties["State"])
}

func TestExtractToleratesMissingSetCatalog(t *testing.T) {
	catalog := map[string]figma.ComponentMeta{
		"c1": {Name: "Button=Primary", ComponentSetID: "ghost-set"},
	}
	root := &figma.Node{ID: "root", Children: []*figma.Node{{ID: "c1", Type: "COMPONENT"}}}

	comps, sets := NewParser(nil).Extract(catalog, nil, root)

	require.Len(t, comps, 1)
	assert.Empty(t, comps[0].ComponentSetID, "unknown set back-reference should be dropped")
	assert.Empty(t, sets)
}

func TestExtractCatalogEntryMissingFromTree(t *testing.T) {
	catalog := map[string]figma.ComponentMeta{
		"c1": {Name: "Badge"},
	}
	root := &figma.Node{ID: "root"}

	comps, _ := NewParser(nil).Extract(catalog, nil, root)

	require.Len(t, comps, 1)
	assert.Equal(t, "badge", comps[0].SemanticType)
	assert.Nil(t, comps[0].Size)
}

// Set variant properties must equal the per-dimension union of the members'
// values, whatever the member maps look like.
func TestSetVariantPropertiesAreMemberUnion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dimensions := []string{"Variant", "Size", "State", "Tone"}
	values := []string{"A", "B", "C", "D", "E"}

	for trial := 0; trial < 20; trial++ {
		catalog := map[string]figma.ComponentMeta{}
		want := map[string]map[string]bool{}
		var children []*figma.Node

		n := 2 + rng.Intn(6)
		for i := 0; i < n; i++ {
			id := fmt.Sprintf("c%d", i)
			var segs []string
			for _, dim := range dimensions {
				if rng.Intn(2) == 0 {
					continue
				}
				v := values[rng.Intn(len(values))]
				segs = append(segs, fmt.Sprintf("%s=%s", dim, v))
				if want[dim] == nil {
					want[dim] = map[string]bool{}
				}
				want[dim][v] = true
			}
			name := "Thing"
			if len(segs) > 0 {
				name = segs[0]
				for _, s := range segs[1:] {
					name += ", " + s
				}
			}
			catalog[id] = figma.ComponentMeta{Name: name, ComponentSetID: "set1"}
			children = append(children, &figma.Node{ID: id, Type: "COMPONENT"})
		}

		comps, sets := NewParser(nil).Extract(
			catalog,
			map[string]figma.ComponentSetMeta{"set1": {Name: "Thing"}},
			&figma.Node{ID: "root", Children: children},
		)
		require.Len(t, comps, n)
		set := sets["set1"]

		got := map[string]map[string]bool{}
		for dim, vals := range set.VariantProperties {
			got[dim] = map[string]bool{}
			for _, v := range vals {
				got[dim][v] = true
			}
		}
		assert.Equal(t, want, got, "trial %d", trial)
	}
}
