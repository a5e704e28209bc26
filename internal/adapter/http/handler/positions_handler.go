package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/positiondraft/internal/adapter/http/dto"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

// PositionService defines the behavior needed by PositionsHandler.
type PositionService interface {
	ListEntities(ctx context.Context) ([]domain.Entity, error)
	ListPositions(ctx context.Context) ([]*usecase.EntityPositions, error)
	GetEntityPositions(ctx context.Context, entityID string) (*usecase.EntityPositions, error)
	UpdatePositions(ctx context.Context, input usecase.UpdatePositionsInput) (string, error)
}

// PositionsHandler serves entities and their manual positions.
type PositionsHandler struct {
	svc PositionService
}

// NewPositionsHandler creates a new PositionsHandler.
func NewPositionsHandler(svc PositionService) *PositionsHandler {
	return &PositionsHandler{svc: svc}
}

// ListEntities lists all entities.
func (h *PositionsHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.ListEntities(r.Context())
	if err != nil {
		writeDomainError(w, "list entities", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntitiesFromDomain(entities))
}

// ListPositions returns the positions of every entity.
func (h *PositionsHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.svc.ListPositions(r.Context())
	if err != nil {
		writeDomainError(w, "list positions", err)
		return
	}

	resp := dto.PositionsResponse{Positions: make([]dto.PositionResponse, len(positions))}
	for i, p := range positions {
		resp.Positions[i] = dto.PositionFromUseCase(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetEntityPositions returns the positions of one entity.
func (h *PositionsHandler) GetEntityPositions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entity ID", "")
		return
	}

	positions, err := h.svc.GetEntityPositions(r.Context(), id)
	if err != nil {
		writeDomainError(w, "get positions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PositionFromUseCase(positions))
}

// Update replaces the manual entries of one entity.
func (h *PositionsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePositionsRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entityID, err := h.svc.UpdatePositions(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "update positions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UpdatePositionsResponse{EntityID: entityID})
}
