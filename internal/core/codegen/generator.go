package codegen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shubhamsWEB/uifinityai/internal/core/common"
	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/llm"
)

// ErrNoLLM is returned when code generation is requested but no generation
// provider is configured.
var ErrNoLLM = errors.New("no llm configured for code generation")

// GeneratedFile is one emitted source file.
type GeneratedFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type generationResult struct {
	Files []GeneratedFile `json:"files"`
}

// Generator asks the LLM for UI code that uses matched design-system
// components and tokens. The output is code, not rendering; previewing it is
// somebody else's job.
type Generator struct {
	LLM llm.LLMClient
}

func NewGenerator(llmClient llm.LLMClient) *Generator {
	return &Generator{LLM: llmClient}
}

func (g *Generator) Generate(ctx context.Context, ds *model.DesignSystem, refs []model.ComponentRef, framework string) ([]GeneratedFile, error) {
	if g.LLM == nil {
		return nil, ErrNoLLM
	}
	if framework == "" {
		framework = "react"
	}

	prompt := fmt.Sprintf(`You are generating %s UI code for the design system %q.

Design tokens:
%s
Matched components:
%s
Use only the components and tokens listed above. Return a JSON object:
{"files": [{"path": "...", "content": "..."}]}
Do not output any other text.`, framework, ds.Name, serializeTokens(ds.Tokens), serializeRefs(refs))

	response, err := g.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	result, err := common.ParseJSON[generationResult](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated code: %w", err)
	}
	return result.Files, nil
}

func serializeTokens(ts model.TokenSet) string {
	var b strings.Builder
	for _, cat := range model.Categories {
		res := ts.Category(cat)
		if len(res.Tokens) == 0 {
			continue
		}
		names := make([]string, 0, len(res.Tokens))
		for name := range res.Tokens {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- %s/%s: %s\n", cat, name, res.Tokens[name].Value)
		}
	}
	if b.Len() == 0 {
		return "- none\n"
	}
	return b.String()
}

func serializeRefs(refs []model.ComponentRef) string {
	var b strings.Builder
	for _, r := range refs {
		kind := "component"
		if r.IsComponentSet {
			kind = "component set"
		}
		fmt.Fprintf(&b, "- %s %q (type %s)", kind, r.Name, r.Type)
		if len(r.VariantProperties) > 0 {
			keys := make([]string, 0, len(r.VariantProperties))
			for k := range r.VariantProperties {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			var parts []string
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%s", k, r.VariantProperties[k]))
			}
			fmt.Fprintf(&b, " variants %s", strings.Join(parts, ", "))
		}
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "- none\n"
	}
	return b.String()
}
