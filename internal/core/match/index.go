package match

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
	"github.com/shubhamsWEB/uifinityai/internal/llm"
)

// ErrNoEmbedder is returned when the configured LLM provider has no
// embedding capability; callers then only get exact-match resolution.
var ErrNoEmbedder = errors.New("no embedder configured")

const defaultCacheSize = 64

// IndexEntry holds the embedding vectors for one design system, plus the
// content hash of the descriptions they were computed from.
type IndexEntry struct {
	Components map[string][]float32
	Sets       map[string][]float32
	Hash       string
}

// Index builds and caches per-design-system embedding vectors. The cache is
// keyed by design-system id, but each entry carries a content hash, so a
// re-extracted design system recomputes automatically instead of serving
// stale vectors.
type Index struct {
	embedder llm.EmbedderClient
	cache    *lru.Cache[string, *IndexEntry]

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewIndex(embedder llm.EmbedderClient, cacheSize int) *Index {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, _ := lru.New[string, *IndexEntry](cacheSize)
	return &Index{
		embedder: embedder,
		cache:    cache,
		locks:    map[string]*sync.Mutex{},
	}
}

// GetOrBuild returns the cached entry for the design system when its content
// hash still matches, otherwise embeds every component and set description
// and caches the result. Concurrent calls for the same id converge on a
// single computation via a per-id lock.
func (x *Index) GetOrBuild(ctx context.Context, dsID string, comps []model.Component, sets map[string]model.ComponentSet) (*IndexEntry, error) {
	if x.embedder == nil {
		return nil, ErrNoEmbedder
	}

	hash := contentHash(comps, sets)

	lock := x.lockFor(dsID)
	lock.Lock()
	defer lock.Unlock()

	if entry, ok := x.cache.Get(dsID); ok && entry.Hash == hash {
		return entry, nil
	}

	entry := &IndexEntry{
		Components: make(map[string][]float32, len(comps)),
		Sets:       make(map[string][]float32, len(sets)),
		Hash:       hash,
	}

	for _, c := range comps {
		vec, err := x.embedder.Embed(ctx, DescribeComponent(c))
		if err != nil {
			return nil, fmt.Errorf("failed to embed component %s: %w", c.ID, err)
		}
		entry.Components[c.ID] = vec
	}
	for _, id := range sortedSetIDs(sets) {
		vec, err := x.embedder.Embed(ctx, DescribeSet(sets[id]))
		if err != nil {
			return nil, fmt.Errorf("failed to embed component set %s: %w", id, err)
		}
		entry.Sets[id] = vec
	}

	x.cache.Add(dsID, entry)
	return entry, nil
}

// Invalidate drops the cached entry for a design system. Extraction calls
// this after replacing a design system's contents; the hash check would
// catch it anyway, this just frees the slot eagerly.
func (x *Index) Invalidate(dsID string) {
	x.cache.Remove(dsID)
}

func (x *Index) lockFor(id string) *sync.Mutex {
	x.mu.Lock()
	defer x.mu.Unlock()
	lock, ok := x.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		x.locks[id] = lock
	}
	return lock
}

// DescribeComponent renders the embedding text for one component.
func DescribeComponent(c model.Component) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Component: %s. Type: %s.", c.Name, c.SemanticType)
	if len(c.VariantProperties) > 0 {
		b.WriteString(" Variants: ")
		b.WriteString(joinVariants(c.VariantProperties))
		b.WriteString(".")
	}
	if c.Description != "" {
		fmt.Fprintf(&b, " %s", c.Description)
	}
	return b.String()
}

// DescribeSet renders the embedding text for one component set.
func DescribeSet(s model.ComponentSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Component set: %s. Type: %s.", s.Name, s.SemanticType)
	if len(s.VariantProperties) > 0 {
		keys := make([]string, 0, len(s.VariantProperties))
		for k := range s.VariantProperties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(s.VariantProperties[k], ", ")))
		}
		fmt.Fprintf(&b, " Variants: %s.", strings.Join(parts, "; "))
	}
	if s.Description != "" {
		fmt.Fprintf(&b, " %s", s.Description)
	}
	return b.String()
}

func joinVariants(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, props[k]))
	}
	return strings.Join(parts, ", ")
}

func sortedSetIDs(sets map[string]model.ComponentSet) []string {
	ids := make([]string, 0, len(sets))
	for id := range sets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// contentHash digests every description the index would embed; any change
// in components or sets changes the hash.
func contentHash(comps []model.Component, sets map[string]model.ComponentSet) string {
	h := sha256.New()
	for _, c := range comps {
		h.Write([]byte(c.ID))
		h.Write([]byte{0})
		h.Write([]byte(DescribeComponent(c)))
		h.Write([]byte{'\n'})
	}
	for _, id := range sortedSetIDs(sets) {
		h.Write([]byte(id))
		h.Write([]byte{0})
		h.Write([]byte(DescribeSet(sets[id])))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
