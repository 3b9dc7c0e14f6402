package match

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
)

// ErrNoMatch means neither exact resolution nor semantic search produced a
// candidate (empty design system, or no embedder to fall back to).
var ErrNoMatch = errors.New("no matching component")

// Matcher resolves requirement elements against a design system's
// components: exact type/variant resolution first, embedding
// nearest-neighbor as the fallback.
type Matcher struct {
	Index *Index
}

func NewMatcher(index *Index) *Matcher {
	return &Matcher{Index: index}
}

// Match resolves one element. Resolution order:
//
//  1. component set by semantic type, narrowed to a member when the
//     element's variant value appears under any of the member's dimensions;
//  2. the set itself when no member narrows it;
//  3. a standalone component of the element's type;
//  4. embedding search over all components and sets in one pool, lowest
//     cosine distance wins, first-seen order breaks ties.
//
// The variant comparison intentionally scans every dimension's value, which
// can mis-resolve when two dimensions share a value vocabulary; callers that
// need precision should put the dimension name into the element type.
// Resolution settles on the first set whose semantic type matches (sets in
// id order); later sets of the same type are not searched for the variant.
func (m *Matcher) Match(ctx context.Context, element model.RequirementElement, ds *model.DesignSystem) (model.ComponentRef, error) {
	if ref, ok := m.matchExact(element, ds); ok {
		return ref, nil
	}
	return m.matchSemantic(ctx, element, ds)
}

func (m *Matcher) matchExact(element model.RequirementElement, ds *model.DesignSystem) (model.ComponentRef, bool) {
	if element.Type == "" {
		return model.ComponentRef{}, false
	}

	for _, id := range sortedSetIDs(ds.ComponentSets) {
		set := ds.ComponentSets[id]
		if !strings.EqualFold(set.SemanticType, element.Type) {
			continue
		}
		if element.Variant != "" {
			for _, memberID := range set.ComponentIDs {
				comp, ok := ds.ComponentByID(memberID)
				if !ok {
					continue
				}
				if hasVariantValue(comp.VariantProperties, element.Variant) {
					return componentRef(*comp), true
				}
			}
		}
		return setRef(set), true
	}

	for i := range ds.Components {
		comp := &ds.Components[i]
		if comp.ComponentSetID != "" {
			continue
		}
		if strings.EqualFold(comp.SemanticType, element.Type) {
			return componentRef(*comp), true
		}
	}
	return model.ComponentRef{}, false
}

func (m *Matcher) matchSemantic(ctx context.Context, element model.RequirementElement, ds *model.DesignSystem) (model.ComponentRef, error) {
	if len(ds.Components) == 0 && len(ds.ComponentSets) == 0 {
		return model.ComponentRef{}, ErrNoMatch
	}

	entry, err := m.Index.GetOrBuild(ctx, ds.ID, ds.Components, ds.ComponentSets)
	if err != nil {
		if errors.Is(err, ErrNoEmbedder) {
			return model.ComponentRef{}, fmt.Errorf("%w: %v", ErrNoMatch, err)
		}
		return model.ComponentRef{}, err
	}

	query, err := m.Index.embedder.Embed(ctx, DescribeElement(element))
	if err != nil {
		return model.ComponentRef{}, fmt.Errorf("failed to embed element: %w", err)
	}

	best := model.ComponentRef{}
	bestDist := math.Inf(1)
	found := false

	// Components first, in design-system order, then sets: a strictly-lower
	// comparison keeps the first-seen candidate on ties.
	for i := range ds.Components {
		vec, ok := entry.Components[ds.Components[i].ID]
		if !ok {
			continue
		}
		if d := cosineDistance(query, vec); d < bestDist {
			bestDist = d
			best = componentRef(ds.Components[i])
			found = true
		}
	}
	for _, id := range sortedSetIDs(ds.ComponentSets) {
		vec, ok := entry.Sets[id]
		if !ok {
			continue
		}
		if d := cosineDistance(query, vec); d < bestDist {
			bestDist = d
			best = setRef(ds.ComponentSets[id])
			found = true
		}
	}

	if !found {
		return model.ComponentRef{}, ErrNoMatch
	}
	return best, nil
}

// hasVariantValue reports whether any dimension carries the wanted value,
// case-insensitively.
func hasVariantValue(props map[string]string, value string) bool {
	for _, v := range props {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

func componentRef(c model.Component) model.ComponentRef {
	return model.ComponentRef{
		ID:                c.ID,
		Name:              c.Name,
		Type:              c.SemanticType,
		VariantProperties: c.VariantProperties,
		PreviewURL:        c.PreviewURL,
	}
}

func setRef(s model.ComponentSet) model.ComponentRef {
	return model.ComponentRef{
		ID:                s.ID,
		Name:              s.Name,
		Type:              s.SemanticType,
		IsComponentSet:    true,
		SetVariantOptions: s.VariantProperties,
	}
}

// DescribeElement renders the embedding query text for a requirement
// element.
func DescribeElement(e model.RequirementElement) string {
	var parts []string
	if e.Type != "" {
		parts = append(parts, fmt.Sprintf("Element: %s.", e.Type))
	}
	if e.Content != "" {
		parts = append(parts, fmt.Sprintf("Content: %s.", e.Content))
	}
	if e.Variant != "" {
		parts = append(parts, fmt.Sprintf("Variant: %s.", e.Variant))
	}
	if e.Style != "" {
		parts = append(parts, fmt.Sprintf("Style: %s.", e.Style))
	}
	if len(e.Properties) > 0 {
		parts = append(parts, fmt.Sprintf("Properties: %s.", joinProperties(e.Properties)))
	}
	if len(parts) == 0 {
		return "Element."
	}
	return strings.Join(parts, " ")
}

func joinProperties(props map[string]interface{}) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	// Deterministic text keeps the content hash and embeddings stable.
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, props[k]))
	}
	return strings.Join(parts, ", ")
}

// cosineDistance is 1 - cosine similarity. Zero-norm vectors are treated as
// maximally distant.
func cosineDistance(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 2
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 2
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
