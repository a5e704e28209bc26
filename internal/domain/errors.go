package domain

import "errors"

var (
	// Draft errors
	ErrDraftNotFound    = errors.New("draft not found")
	ErrUnknownAssetType = errors.New("unknown asset type")
	ErrInvalidEntry     = errors.New("entry could not be built from form")

	// Entity errors
	ErrEntityNotFound    = errors.New("entity not found")
	ErrEntityNameMissing = errors.New("entity name is required")
	ErrEntityNameTaken   = errors.New("entity name already exists")
	ErrMissingEntityName = errors.New("new entity has no name")

	// Session errors
	ErrNotEditing   = errors.New("not in edit mode")
	ErrFormOpen     = errors.New("a form is already open")
	ErrNoFormOpen   = errors.New("no form is open")
	ErrSaveFailed   = errors.New("saving positions failed")
	ErrInvalidState = errors.New("operation not allowed in current state")
)
