package usecase

import (
	"context"
	"time"

	"github.com/iho/positiondraft/internal/domain"
)

// DraftStore shares the working draft list of every asset type between managers.
// Only the manager owning an asset type writes its list, except for link
// rewrites performed while deleting a referenced draft.
type DraftStore interface {
	// SetDrafts replaces the list of an asset type. Passing the list currently
	// stored is a no-op.
	SetDrafts(t domain.AssetType, drafts []domain.Draft)
	// GetDrafts never returns nil; repeated calls on an unset type return the same empty list.
	GetDrafts(t domain.AssetType) []domain.Draft
	// ClearDrafts forgets the list and the deleted ids of an asset type.
	ClearDrafts(t domain.AssetType)
	SetDeletedOriginalIDs(t domain.AssetType, ids domain.IDSet)
	GetDeletedOriginalIDs(t domain.AssetType) domain.IDSet
	// AllDrafts returns the current list of every asset type that has one.
	AllDrafts() map[domain.AssetType][]domain.Draft
	// Subscribe registers a listener called after any change. The returned
	// func removes it.
	Subscribe(listener func()) (unsubscribe func())
}

// AssetConfig is the per-asset-type behaviour the engine is generic over.
type AssetConfig interface {
	AssetType() domain.AssetType
	// BuildDraftsFromPositions turns the manual entries of a snapshot into drafts.
	BuildDraftsFromPositions(snapshot *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft
	CreateEmptyForm(entityID string) domain.Form
	DraftToForm(draft domain.Draft) domain.Form
	// BuildEntryFromForm returns nil when the form cannot be turned into an entry.
	BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry
	ValidateForm(form domain.Form) domain.FieldErrors
	NormalizeDraftForCompare(draft domain.Draft) map[string]any
	ToPayloadEntry(draft domain.Draft) domain.PayloadEntry
	DisplayName(draft domain.Draft) string
}

// CosmeticMerger is implemented by asset configs that copy display-only
// metadata from the backend entry onto an unchanged draft projection.
type CosmeticMerger interface {
	MergeCosmetic(base, draft domain.Entry) domain.Entry
}

// PositionsGateway is the remote service owning the authoritative positions.
type PositionsGateway interface {
	UpdatePositions(ctx context.Context, update domain.PositionUpdate) error
	RefreshEntity(ctx context.Context, entityID string) (*domain.EntityPosition, error)
	FetchEntities(ctx context.Context) ([]domain.Entity, error)
	FetchSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// Notifier shows transient error messages to the user.
type Notifier interface {
	Error(message string)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PositionRepository persists entities and their product entries for the
// reference positions backend.
type PositionRepository interface {
	ListEntities(ctx context.Context) ([]domain.Entity, error)
	GetEntity(ctx context.Context, id string) (*domain.Entity, error)
	// CreateEntity fails with domain.ErrEntityNameTaken when the name is in use.
	CreateEntity(ctx context.Context, entity domain.Entity) error
	// GetProducts returns the stored entries of one entity by product type.
	GetProducts(ctx context.Context, entityID string) (map[domain.AssetType][]domain.PayloadEntry, error)
	// ReplaceProducts overwrites the entries of the given product types atomically.
	ReplaceProducts(ctx context.Context, entityID string, products map[domain.AssetType][]domain.PayloadEntry) error
}

// IdempotencyStore handles idempotency keys.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingResponse, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release forgets key so a failed request can be retried with it.
	Release(ctx context.Context, key string) error
}
