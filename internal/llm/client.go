package llm

import (
	"context"
)

// LLMClient generates free-form text from a prompt. Used by the code
// generation stage.
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// EmbedderClient maps a text string to a fixed-length vector. Used by the
// embedding index for semantic component matching.
type EmbedderClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
