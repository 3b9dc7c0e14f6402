package store

import (
	"context"
	"errors"

	"github.com/shubhamsWEB/uifinityai/internal/core/model"
)

// ErrNotFound is the distinct outcome for absent design systems. Handlers
// map it to 404; matching treats it as a hard error rather than an empty
// result.
var ErrNotFound = errors.New("design system not found")

// Summary is the listing view of a stored design system.
type Summary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FileKey   string `json:"file_key"`
	Version   int    `json:"version"`
	UpdatedAt string `json:"updated_at"`
}

// DesignSystemStore is the persistence boundary. The pipeline only shapes
// DesignSystem records; implementations own all I/O.
type DesignSystemStore interface {
	Save(ctx context.Context, ds *model.DesignSystem) error
	Load(ctx context.Context, id string) (*model.DesignSystem, error)
	// LoadByFileKey returns the design system previously extracted from the
	// given source file, for version continuity on re-extraction.
	LoadByFileKey(ctx context.Context, fileKey string) (*model.DesignSystem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Summary, error)
	Close(ctx context.Context) error
}
