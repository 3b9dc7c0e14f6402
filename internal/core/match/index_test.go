package match

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
)

func sampleComponents() ([]model.Component, map[string]model.ComponentSet) {
	comps := []model.Component{
		{ID: "c1", Name: "Button=Primary", SemanticType: "button", VariantProperties: map[string]string{"Button": "Primary"}},
		{ID: "c2", Name: "Badge", SemanticType: "badge"},
	}
	sets := map[string]model.ComponentSet{
		"s1": {ID: "s1", Name: "Button", SemanticType: "button", ComponentIDs: []string{"c1"},
			VariantProperties: map[string][]string{"Button": {"Primary"}}},
	}
	return comps, sets
}

func TestGetOrBuildCachesByHash(t *testing.T) {
	embedder := &MockEmbedder{Default: []float32{0.1, 0.2}}
	index := NewIndex(embedder, 0)
	comps, sets := sampleComponents()

	first, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
	require.NoError(t, err)
	assert.Len(t, first.Components, 2)
	assert.Len(t, first.Sets, 1)
	callsAfterBuild := embedder.CallCount()

	second, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, callsAfterBuild, embedder.CallCount(), "cached call must not re-embed")
}

func TestGetOrBuildRecomputesWhenContentChanges(t *testing.T) {
	embedder := &MockEmbedder{Default: []float32{0.1, 0.2}}
	index := NewIndex(embedder, 0)
	comps, sets := sampleComponents()

	first, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
	require.NoError(t, err)

	// Re-extraction renames a component; same design-system id.
	comps[1].Name = "Status Badge"
	second, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestGetOrBuildConcurrentCallsConverge(t *testing.T) {
	embedder := &MockEmbedder{Default: []float32{0.5}}
	index := NewIndex(embedder, 0)
	comps, sets := sampleComponents()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Two components plus one set: exactly one build's worth of calls.
	assert.Equal(t, 3, embedder.CallCount())
}

func TestGetOrBuildNoEmbedder(t *testing.T) {
	index := NewIndex(nil, 0)
	comps, sets := sampleComponents()

	_, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
	assert.ErrorIs(t, err, ErrNoEmbedder)
}

func TestInvalidateDropsEntry(t *testing.T) {
	embedder := &MockEmbedder{Default: []float32{0.1}}
	index := NewIndex(embedder, 0)
	comps, sets := sampleComponents()

	_, err := index.GetOrBuild(context.Background(), "ds1", comps, sets)
	require.NoError(t, err)
	before := embedder.CallCount()

	index.Invalidate("ds1")
	_, err = index.GetOrBuild(context.Background(), "ds1", comps, sets)
	require.NoError(t, err)
	assert.Greater(t, embedder.CallCount(), before)
}

func TestDescribeComponent(t *testing.T) {
	c := model.Component{
		Name:              "Button=Primary, Size=Large",
		SemanticType:      "button",
		VariantProperties: map[string]string{"Size": "Large", "Button": "Primary"},
	}
	assert.Equal(t,
		"Component: Button=Primary, Size=Large. Type: button. Variants: Button: Primary, Size: Large.",
		DescribeComponent(c))
}
