package dto

import (
	"encoding/json"
	"fmt"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

// EntityResponse represents an entity in API responses.
type EntityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntitiesResponse lists entities.
type EntitiesResponse struct {
	Entities []EntityResponse `json:"entities"`
}

// EntitiesFromDomain converts domain entities to a response.
func EntitiesFromDomain(entities []domain.Entity) EntitiesResponse {
	out := EntitiesResponse{Entities: make([]EntityResponse, len(entities))}
	for i, e := range entities {
		out.Entities[i] = EntityResponse{ID: e.ID, Name: e.Name}
	}
	return out
}

// ToDomain converts the response back to domain entities.
func (r EntitiesResponse) ToDomain() []domain.Entity {
	out := make([]domain.Entity, len(r.Entities))
	for i, e := range r.Entities {
		out[i] = domain.Entity{ID: e.ID, Name: e.Name}
	}
	return out
}

// PositionResponse holds every entry of one entity.
type PositionResponse struct {
	EntityID string                    `json:"entity_id"`
	Products map[string]ProductEntries `json:"products"`
}

// PositionFromUseCase converts stored positions to a response.
func PositionFromUseCase(p *usecase.EntityPositions) PositionResponse {
	out := PositionResponse{
		EntityID: p.EntityID,
		Products: make(map[string]ProductEntries, len(p.Products)),
	}
	for t, entries := range p.Products {
		if entries == nil {
			entries = []domain.PayloadEntry{}
		}
		out.Products[string(t)] = ProductEntries{Entries: entries}
	}
	return out
}

// ToDomain decodes the entries into typed entries. Unknown product types are skipped.
func (r PositionResponse) ToDomain() (*domain.EntityPosition, error) {
	pos := &domain.EntityPosition{
		EntityID: r.EntityID,
		Products: make(map[domain.AssetType][]domain.Entry, len(r.Products)),
	}
	for name, p := range r.Products {
		t, err := domain.ParseAssetType(name)
		if err != nil {
			continue
		}
		entries := make([]domain.Entry, 0, len(p.Entries))
		for _, raw := range p.Entries {
			data, err := json.Marshal(raw)
			if err != nil {
				return nil, fmt.Errorf("encode %s entry: %w", t, err)
			}
			entry, err := domain.DecodeEntry(t, data)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		pos.Products[t] = entries
	}
	return pos, nil
}

// PositionsResponse holds the positions of every entity.
type PositionsResponse struct {
	Positions []PositionResponse `json:"positions"`
}

// ToDomain converts the response to a snapshot.
func (r PositionsResponse) ToDomain() (*domain.Snapshot, error) {
	snapshot := domain.NewSnapshot()
	for _, p := range r.Positions {
		pos, err := p.ToDomain()
		if err != nil {
			return nil, err
		}
		snapshot.Positions[pos.EntityID] = pos
	}
	return snapshot, nil
}

// UpdatePositionsResponse is returned after a successful update.
type UpdatePositionsResponse struct {
	EntityID string `json:"entity_id"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
