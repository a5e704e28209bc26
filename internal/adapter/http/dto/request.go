package dto

import (
	"encoding/json"
	"io"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

// ProductEntries is the complete entry list of one product type.
type ProductEntries struct {
	Entries []domain.PayloadEntry `json:"entries"`
}

// UpdatePositionsRequest replaces the manual entries of one entity. Exactly
// one of EntityID and NewEntityName is present on the wire.
type UpdatePositionsRequest struct {
	EntityID      *string                   `json:"entity_id,omitempty"`
	NewEntityName *string                   `json:"new_entity_name,omitempty"`
	Products      map[string]ProductEntries `json:"products"`
}

// UpdateRequestFromDomain builds the wire request for u.
func UpdateRequestFromDomain(u domain.PositionUpdate) UpdatePositionsRequest {
	req := UpdatePositionsRequest{
		Products: make(map[string]ProductEntries, len(u.Products)),
	}
	if u.CreatesEntity() {
		name := u.NewEntityName
		req.NewEntityName = &name
	} else {
		id := u.Entity.ID()
		req.EntityID = &id
	}
	for t, entries := range u.Products {
		if entries == nil {
			entries = []domain.PayloadEntry{}
		}
		req.Products[string(t)] = ProductEntries{Entries: entries}
	}
	return req
}

// ToUseCaseInput converts to use case input.
func (r *UpdatePositionsRequest) ToUseCaseInput() usecase.UpdatePositionsInput {
	input := usecase.UpdatePositionsInput{
		Products: make(map[domain.AssetType][]domain.PayloadEntry, len(r.Products)),
	}
	if r.EntityID != nil {
		input.EntityID = *r.EntityID
	}
	if r.NewEntityName != nil {
		input.NewEntityName = *r.NewEntityName
	}
	for t, p := range r.Products {
		entries := p.Entries
		if entries == nil {
			entries = []domain.PayloadEntry{}
		}
		input.Products[domain.AssetType(t)] = entries
	}
	return input
}

// Decode reads JSON from r keeping numbers in their textual form, so decimal
// amounts survive the round trip unchanged.
func Decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(v)
}
