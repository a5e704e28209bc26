package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/positiondraft/internal/adapter/http/dto"
	"github.com/iho/positiondraft/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"entity not found", domain.ErrEntityNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("%w: e1", domain.ErrEntityNotFound), http.StatusNotFound},
		{"name taken", domain.ErrEntityNameTaken, http.StatusConflict},
		{"name missing", domain.ErrEntityNameMissing, http.StatusBadRequest},
		{"unknown asset type", domain.ErrUnknownAssetType, http.StatusBadRequest},
		{"invalid entry", domain.ErrInvalidEntry, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"conflict keeps details", fmt.Errorf("%w: Bank A", domain.ErrEntityNameTaken), http.StatusConflict, "entity name already exists: Bank A"},
		{"internal hides details", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeDomainError(rr, "update positions", tt.err)

			if rr.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected content-type application/json, got %s", ct)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Error != "failed to update positions" || resp.Message != tt.message {
				t.Fatalf("unexpected error response: %+v", resp)
			}
		})
	}
}
