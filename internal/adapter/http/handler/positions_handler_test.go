package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/positiondraft/internal/adapter/http/dto"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

type positionServiceStub struct {
	listEntitiesFn  func(ctx context.Context) ([]domain.Entity, error)
	listPositionsFn func(ctx context.Context) ([]*usecase.EntityPositions, error)
	getFn           func(ctx context.Context, entityID string) (*usecase.EntityPositions, error)
	updateFn        func(ctx context.Context, input usecase.UpdatePositionsInput) (string, error)
}

func (s *positionServiceStub) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	return s.listEntitiesFn(ctx)
}

func (s *positionServiceStub) ListPositions(ctx context.Context) ([]*usecase.EntityPositions, error) {
	return s.listPositionsFn(ctx)
}

func (s *positionServiceStub) GetEntityPositions(ctx context.Context, entityID string) (*usecase.EntityPositions, error) {
	return s.getFn(ctx, entityID)
}

func (s *positionServiceStub) UpdatePositions(ctx context.Context, input usecase.UpdatePositionsInput) (string, error) {
	return s.updateFn(ctx, input)
}

func TestPositionsHandler_ListEntities(t *testing.T) {
	h := NewPositionsHandler(&positionServiceStub{
		listEntitiesFn: func(ctx context.Context) ([]domain.Entity, error) {
			return []domain.Entity{{ID: "e1", Name: "Bank A"}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.ListEntities(rec, httptest.NewRequest(http.MethodGet, "/api/v1/entities", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.EntitiesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Entities) != 1 || resp.Entities[0].Name != "Bank A" {
		t.Fatalf("unexpected entities: %+v", resp.Entities)
	}
}

func TestPositionsHandler_GetEntityPositionsNotFound(t *testing.T) {
	h := NewPositionsHandler(&positionServiceStub{
		getFn: func(ctx context.Context, entityID string) (*usecase.EntityPositions, error) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEntityNotFound, entityID)
		},
	})

	r := chi.NewRouter()
	r.Get("/entities/{id}/positions", h.GetEntityPositions)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/entities/missing/positions", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPositionsHandler_ListPositions(t *testing.T) {
	h := NewPositionsHandler(&positionServiceStub{
		listPositionsFn: func(ctx context.Context) ([]*usecase.EntityPositions, error) {
			return []*usecase.EntityPositions{{
				EntityID: "e1",
				Products: map[domain.AssetType][]domain.PayloadEntry{
					domain.AssetTypeAccount: {{"id": "a1", "total": json.Number("10.00")}},
				},
			}}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.ListPositions(rec, httptest.NewRequest(http.MethodGet, "/api/v1/positions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"total":10.00`)) {
		t.Fatalf("expected number text to be preserved, got %s", rec.Body.String())
	}
}

func TestPositionsHandler_Update(t *testing.T) {
	var captured usecase.UpdatePositionsInput
	h := NewPositionsHandler(&positionServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdatePositionsInput) (string, error) {
			captured = input
			return "new-entity-id", nil
		},
	})

	body := `{"new_entity_name":"MyBroker","products":{"STOCK_ETF":{"entries":[{"id":null,"shares":10,"average_buy_price":5,"currency":"EUR"}]}}}`
	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPost, "/api/v1/positions", bytes.NewBufferString(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.NewEntityName != "MyBroker" || captured.EntityID != "" {
		t.Fatalf("unexpected input: %+v", captured)
	}
	entries := captured.Products[domain.AssetTypeStock]
	if len(entries) != 1 || entries[0]["shares"] != json.Number("10") {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	var resp dto.UpdatePositionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.EntityID != "new-entity-id" {
		t.Fatalf("expected entity id in response, got %+v", resp)
	}
}

func TestPositionsHandler_UpdateErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		expected int
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest},
		{"duplicate name", `{"new_entity_name":"Bank A","products":{}}`, domain.ErrEntityNameTaken, http.StatusConflict},
		{"unknown entity", `{"entity_id":"nope","products":{}}`, domain.ErrEntityNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := NewPositionsHandler(&positionServiceStub{
				updateFn: func(ctx context.Context, input usecase.UpdatePositionsInput) (string, error) {
					return "", tt.err
				},
			})

			rec := httptest.NewRecorder()
			h.Update(rec, httptest.NewRequest(http.MethodPost, "/api/v1/positions", bytes.NewBufferString(tt.body)))

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}
