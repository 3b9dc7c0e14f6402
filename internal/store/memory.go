package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
)

// MemoryStore keeps design systems in process memory. Used for local
// development and tests; records are deep-copied through JSON so callers
// never share state with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*model.DesignSystem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]*model.DesignSystem{}}
}

func cloneDesignSystem(ds *model.DesignSystem) (*model.DesignSystem, error) {
	raw, err := json.Marshal(ds)
	if err != nil {
		return nil, err
	}
	var out model.DesignSystem
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MemoryStore) Save(ctx context.Context, ds *model.DesignSystem) error {
	clone, err := cloneDesignSystem(ds)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[ds.ID] = clone
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (*model.DesignSystem, error) {
	s.mu.RLock()
	ds, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDesignSystem(ds)
}

func (s *MemoryStore) LoadByFileKey(ctx context.Context, fileKey string) (*model.DesignSystem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *model.DesignSystem
	for _, ds := range s.records {
		if ds.FileKey != fileKey {
			continue
		}
		if best == nil || ds.Version > best.Version {
			best = ds
		}
	}
	if best == nil {
		return nil, ErrNotFound
	}
	return cloneDesignSystem(best)
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]Summary, 0, len(s.records))
	for _, ds := range s.records {
		summaries = append(summaries, Summary{
			ID:        ds.ID,
			Name:      ds.Name,
			FileKey:   ds.FileKey,
			Version:   ds.Version,
			UpdatedAt: ds.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries, nil
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
