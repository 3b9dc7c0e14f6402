package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
)

const (
	saveDesignSystemQuery = `
		MERGE (d:DesignSystem {id: $id})
		SET d.name = $name,
			d.file_key = $file_key,
			d.version = $version,
			d.updated_at = $updated_at,
			d.payload = $payload
		RETURN d.id AS id
	`

	loadDesignSystemQuery = `
		MATCH (d:DesignSystem {id: $id})
		RETURN d.payload AS payload
	`

	loadByFileKeyQuery = `
		MATCH (d:DesignSystem {file_key: $file_key})
		RETURN d.payload AS payload
		ORDER BY d.version DESC
		LIMIT 1
	`

	deleteDesignSystemQuery = `
		MATCH (d:DesignSystem {id: $id})
		WITH d, count(d) AS found
		DETACH DELETE d
		RETURN found
	`

	listDesignSystemsQuery = `
		MATCH (d:DesignSystem)
		RETURN d.id AS id, d.name AS name, d.file_key AS file_key,
			d.version AS version, d.updated_at AS updated_at
		ORDER BY d.name
	`
)

// MemgraphStore persists design systems as single nodes with a JSON payload
// property. Bolt-compatible, so it works against Memgraph or Neo4j.
type MemgraphStore struct {
	driver neo4j.DriverWithContext
}

func NewMemgraphStore(uri, username, password string) (*MemgraphStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to Memgraph")
	s := &MemgraphStore{driver: driver}
	s.buildIndices(context.Background())
	return s, nil
}

func (s *MemgraphStore) buildIndices(ctx context.Context) {
	queries := []string{
		"CREATE INDEX ON :DesignSystem(id);",
		"CREATE INDEX ON :DesignSystem(file_key);",
	}
	for _, q := range queries {
		if _, err := s.run(ctx, q, nil); err != nil {
			// Index probably exists already.
			log.Printf("store: failed to create index %q: %v", q, err)
		}
	}
}

func (s *MemgraphStore) run(ctx context.Context, query string, params map[string]interface{}) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return result, nil
}

func (s *MemgraphStore) Save(ctx context.Context, ds *model.DesignSystem) error {
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to marshal design system: %w", err)
	}

	_, err = s.run(ctx, saveDesignSystemQuery, map[string]interface{}{
		"id":         ds.ID,
		"name":       ds.Name,
		"file_key":   ds.FileKey,
		"version":    ds.Version,
		"updated_at": ds.UpdatedAt.UTC().Format(time.RFC3339),
		"payload":    string(payload),
	})
	return err
}

func (s *MemgraphStore) Load(ctx context.Context, id string) (*model.DesignSystem, error) {
	result, err := s.run(ctx, loadDesignSystemQuery, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	return decodePayload(result)
}

func (s *MemgraphStore) LoadByFileKey(ctx context.Context, fileKey string) (*model.DesignSystem, error) {
	result, err := s.run(ctx, loadByFileKeyQuery, map[string]interface{}{"file_key": fileKey})
	if err != nil {
		return nil, err
	}
	return decodePayload(result)
}

func (s *MemgraphStore) Delete(ctx context.Context, id string) error {
	result, err := s.run(ctx, deleteDesignSystemQuery, map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MemgraphStore) List(ctx context.Context) ([]Summary, error) {
	result, err := s.run(ctx, listDesignSystemsQuery, nil)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(result.Records))
	for _, rec := range result.Records {
		var sum Summary
		if v, ok := rec.Get("id"); ok {
			sum.ID, _ = v.(string)
		}
		if v, ok := rec.Get("name"); ok {
			sum.Name, _ = v.(string)
		}
		if v, ok := rec.Get("file_key"); ok {
			sum.FileKey, _ = v.(string)
		}
		if v, ok := rec.Get("version"); ok {
			if n, ok := v.(int64); ok {
				sum.Version = int(n)
			}
		}
		if v, ok := rec.Get("updated_at"); ok {
			sum.UpdatedAt, _ = v.(string)
		}
		summaries = append(summaries, sum)
	}
	return summaries, nil
}

func (s *MemgraphStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func decodePayload(result *neo4j.EagerResult) (*model.DesignSystem, error) {
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}
	raw, ok := result.Records[0].Get("payload")
	if !ok {
		return nil, ErrNotFound
	}
	payload, ok := raw.(string)
	if !ok || payload == "" {
		return nil, ErrNotFound
	}

	var ds model.DesignSystem
	if err := json.Unmarshal([]byte(payload), &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal design system payload: %w", err)
	}
	return &ds, nil
}
