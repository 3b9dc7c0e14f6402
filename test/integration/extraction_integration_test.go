//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubhamsWEB/uifinityai/internal/core"
	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
	"github.com/shubhamsWEB/uifinityai/internal/store"
)

// TestExtractFromFigma runs the full extraction pipeline against a live
// Figma file. It needs FIGMA_API_TOKEN and FIGMA_FILE_KEY pointing at a file
// with at least one published style and one component.
func TestExtractFromFigma(t *testing.T) {
	_ = godotenv.Load("../../.env")

	token := os.Getenv("FIGMA_API_TOKEN")
	fileKey := os.Getenv("FIGMA_FILE_KEY")
	if token == "" || fileKey == "" {
		t.Skip("Skipping integration test: FIGMA_API_TOKEN or FIGMA_FILE_KEY not set")
	}

	client := figma.NewClient(token, "")
	engine := core.NewEngine(client, store.NewMemoryStore(), nil, nil, nil, 0)
	ctx := context.Background()

	ds, err := engine.ExtractDesignSystem(ctx, fileKey, "")
	require.NoError(t, err)
	defer engine.DeleteDesignSystem(ctx, ds.ID)

	assert.NotEmpty(t, ds.Name)
	assert.Equal(t, 1, ds.Version)
	for _, cat := range model.Categories {
		assert.NotNil(t, ds.Tokens.Category(cat), "every token category is present")
	}
	assert.NotEmpty(t, ds.Components, "expected at least one component in the test file")

	// Re-extraction keeps the id and bumps the version.
	again, err := engine.ExtractDesignSystem(ctx, fileKey, "")
	require.NoError(t, err)
	assert.Equal(t, ds.ID, again.ID)
	assert.Equal(t, ds.Version+1, again.Version)
}
