package model

import "time"

// DesignSystem is the top-level owner of every Token, Component and
// ComponentSet extracted from one source document. Version increments
// monotonically each time the same source is re-extracted; re-extraction
// fully replaces the previous contents.
type DesignSystem struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	FileKey       string                  `json:"file_key"`
	Tokens        TokenSet                `json:"tokens"`
	Components    []Component             `json:"components"`
	ComponentSets map[string]ComponentSet `json:"component_sets"`
	Version       int                     `json:"version"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// ComponentByID returns the owned component with the given id.
func (ds *DesignSystem) ComponentByID(id string) (*Component, bool) {
	for i := range ds.Components {
		if ds.Components[i].ID == id {
			return &ds.Components[i], true
		}
	}
	return nil, false
}
