package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/positiondraft/internal/adapter/http/dto"
	"github.com/iho/positiondraft/internal/domain"
)

var domainStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrEntityNotFound, http.StatusNotFound},
	{domain.ErrEntityNameTaken, http.StatusConflict},
	{domain.ErrEntityNameMissing, http.StatusBadRequest},
	{domain.ErrUnknownAssetType, http.StatusBadRequest},
	{domain.ErrInvalidEntry, http.StatusBadRequest},
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message, Message: details})
}

// writeDomainError answers with the status of err. Details of unexpected
// errors stay out of the response.
func writeDomainError(w http.ResponseWriter, action string, err error) {
	status := mapDomainError(err)
	details := err.Error()
	if status == http.StatusInternalServerError {
		details = "internal error"
	}
	writeError(w, status, "failed to "+action, details)
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	for _, ds := range domainStatuses {
		if errors.Is(err, ds.err) {
			return ds.status
		}
	}
	return http.StatusInternalServerError
}
