package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shubhamsWEB/uifinityai/internal/core/codegen"
	"github.com/shubhamsWEB/uifinityai/internal/core/components"
	"github.com/shubhamsWEB/uifinityai/internal/core/match"
	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/core/tokens"
	"github.com/shubhamsWEB/uifinityai/internal/core/walker"
	"github.com/shubhamsWEB/uifinityai/internal/figma"
	"github.com/shubhamsWEB/uifinityai/internal/llm"
	"github.com/shubhamsWEB/uifinityai/internal/store"
)

// DocumentSource is the design-tool boundary the engine consumes. The figma
// client satisfies it; tests substitute fakes.
type DocumentSource interface {
	GetFile(ctx context.Context, fileKey string) (*figma.FileResponse, error)
	GetNodes(ctx context.Context, fileKey string, ids []string) (map[string]*figma.Node, error)
	GetImages(ctx context.Context, fileKey string, ids []string, format string) (map[string]string, error)
}

// Engine owns the extraction and matching pipeline for design systems.
type Engine struct {
	Source    DocumentSource
	Store     store.DesignSystemStore
	Tokens    *tokens.Extractor
	Parser    *components.Parser
	Index     *match.Index
	Matcher   *match.Matcher
	Generator *codegen.Generator
}

func NewEngine(source DocumentSource, st store.DesignSystemStore, llmClient llm.LLMClient, embedder llm.EmbedderClient, rules []components.ClassificationRule, embeddingCacheSize int) *Engine {
	index := match.NewIndex(embedder, embeddingCacheSize)
	return &Engine{
		Source:    source,
		Store:     st,
		Tokens:    tokens.NewExtractor(),
		Parser:    components.NewParser(components.NewClassifier(rules)),
		Index:     index,
		Matcher:   match.NewMatcher(index),
		Generator: codegen.NewGenerator(llmClient),
	}
}

// ExtractDesignSystem pulls the document plus its catalogs from the source,
// runs token and component extraction, and saves the assembled design
// system. Re-extraction of a known source keeps the design-system id and
// bumps the version; the previous contents are fully replaced.
func (e *Engine) ExtractDesignSystem(ctx context.Context, fileKey, name string) (*model.DesignSystem, error) {
	file, err := e.Source.GetFile(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file %s: %w", fileKey, err)
	}
	if name == "" {
		name = file.Name
	}

	styleNodes := e.fetchUnreferencedStyleNodes(ctx, fileKey, file)
	tokenSet := e.Tokens.Extract(file.Styles, file.Document, styleNodes)
	comps, sets := e.Parser.Extract(file.Components, file.ComponentSets, file.Document)
	e.attachPreviews(ctx, fileKey, comps)

	ds := &model.DesignSystem{
		ID:            uuid.New().String(),
		Name:          name,
		FileKey:       fileKey,
		Tokens:        tokenSet,
		Components:    comps,
		ComponentSets: sets,
		Version:       1,
		UpdatedAt:     time.Now().UTC(),
	}

	if prev, err := e.Store.LoadByFileKey(ctx, fileKey); err == nil {
		ds.ID = prev.ID
		ds.Version = prev.Version + 1
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if err := e.Store.Save(ctx, ds); err != nil {
		return nil, fmt.Errorf("failed to save design system: %w", err)
	}
	e.Index.Invalidate(ds.ID)

	return ds, nil
}

// fetchUnreferencedStyleNodes fetches the style nodes for catalog styles no
// node in the document applies, so published-but-unconsumed styles still
// yield tokens. Best-effort: a fetch failure degrades to tree-only
// extraction.
func (e *Engine) fetchUnreferencedStyleNodes(ctx context.Context, fileKey string, file *figma.FileResponse) map[string]*figma.Node {
	if len(file.Styles) == 0 {
		return nil
	}
	referenced := map[string]bool{}
	walker.Walk(file.Document, func(n *figma.Node) {
		for _, id := range n.Styles {
			referenced[id] = true
		}
	})

	var missing []string
	for id := range file.Styles {
		if !referenced[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	nodes, err := e.Source.GetNodes(ctx, fileKey, missing)
	if err != nil {
		log.Printf("engine: could not resolve %d unreferenced style nodes, continuing: %v", len(missing), err)
		return nil
	}
	return nodes
}

// attachPreviews best-effort fills component preview URLs. Render failures
// leave the field empty.
func (e *Engine) attachPreviews(ctx context.Context, fileKey string, comps []model.Component) {
	if len(comps) == 0 {
		return
	}
	ids := make([]string, 0, len(comps))
	for _, c := range comps {
		ids = append(ids, c.ID)
	}
	images, err := e.Source.GetImages(ctx, fileKey, ids, "png")
	if err != nil {
		log.Printf("engine: preview rendering unavailable, continuing without: %v", err)
		return
	}
	for i := range comps {
		comps[i].PreviewURL = images[comps[i].ID]
	}
}

func (e *Engine) GetDesignSystem(ctx context.Context, id string) (*model.DesignSystem, error) {
	return e.Store.Load(ctx, id)
}

func (e *Engine) ListDesignSystems(ctx context.Context) ([]store.Summary, error) {
	return e.Store.List(ctx)
}

func (e *Engine) DeleteDesignSystem(ctx context.Context, id string) error {
	if err := e.Store.Delete(ctx, id); err != nil {
		return err
	}
	e.Index.Invalidate(id)
	return nil
}

// ExportDesignSystem serializes a stored design system for transfer.
func (e *Engine) ExportDesignSystem(ctx context.Context, id string) ([]byte, error) {
	ds, err := e.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(ds, "", "  ")
}

// ImportDesignSystem validates and stores a previously exported design
// system. Malformed input is rejected before anything touches the pipeline.
func (e *Engine) ImportDesignSystem(ctx context.Context, raw []byte) (*model.DesignSystem, error) {
	var ds model.DesignSystem
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("invalid design system JSON: %w", err)
	}
	if ds.Name == "" && len(ds.Components) == 0 {
		return nil, fmt.Errorf("invalid design system JSON: missing name and components")
	}

	if ds.ID == "" {
		ds.ID = uuid.New().String()
	}
	if ds.Version == 0 {
		ds.Version = 1
	}
	ds.UpdatedAt = time.Now().UTC()
	normalizeTokenSet(&ds.Tokens)
	if ds.ComponentSets == nil {
		ds.ComponentSets = map[string]model.ComponentSet{}
	}

	if err := e.Store.Save(ctx, &ds); err != nil {
		return nil, err
	}
	e.Index.Invalidate(ds.ID)
	return &ds, nil
}

// normalizeTokenSet reinstates the all-categories-present invariant on
// imported records.
func normalizeTokenSet(ts *model.TokenSet) {
	for _, cat := range model.Categories {
		res := ts.Category(cat)
		if res.Tokens == nil {
			res.Tokens = map[string]model.Token{}
		}
	}
}

// MatchResult pairs one requirement element with its resolution. A failed
// element carries its error and leaves the siblings untouched.
type MatchResult struct {
	Element model.RequirementElement `json:"element"`
	Ref     *model.ComponentRef      `json:"ref,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// MatchElements resolves every element against the stored design system. An
// absent design system is a hard error; per-element failures are reported
// inline.
func (e *Engine) MatchElements(ctx context.Context, dsID string, elements []model.RequirementElement) ([]MatchResult, error) {
	ds, err := e.Store.Load(ctx, dsID)
	if err != nil {
		return nil, err
	}

	results := make([]MatchResult, 0, len(elements))
	for _, el := range elements {
		ref, err := e.Matcher.Match(ctx, el, ds)
		if err != nil {
			log.Printf("engine: failed to resolve element type=%q: %v", el.Type, err)
			results = append(results, MatchResult{Element: el, Error: err.Error()})
			continue
		}
		results = append(results, MatchResult{Element: el, Ref: &ref})
	}
	return results, nil
}

// GenerateComponentCode resolves the elements and asks the LLM for
// component usage code in the requested framework.
func (e *Engine) GenerateComponentCode(ctx context.Context, dsID string, elements []model.RequirementElement, framework string) ([]codegen.GeneratedFile, error) {
	ds, err := e.Store.Load(ctx, dsID)
	if err != nil {
		return nil, err
	}

	results, err := e.MatchElements(ctx, dsID, elements)
	if err != nil {
		return nil, err
	}
	var refs []model.ComponentRef
	for _, r := range results {
		if r.Ref != nil {
			refs = append(refs, *r.Ref)
		}
	}
	return e.Generator.Generate(ctx, ds, refs, framework)
}
