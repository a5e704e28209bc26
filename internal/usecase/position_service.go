package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
)

// PositionService is the backend side of the positions API: it stores
// entities and replaces their manual entries per product type.
type PositionService struct {
	repo    PositionRepository
	idGen   IDGenerator
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewPositionService creates a new PositionService.
func NewPositionService(repo PositionRepository, idGen IDGenerator, logger zerolog.Logger, m *metrics.Metrics) *PositionService {
	return &PositionService{
		repo:    repo,
		idGen:   idGen,
		logger:  logger,
		metrics: m,
	}
}

// UpdatePositionsInput is a save request. Exactly one of EntityID and
// NewEntityName is set.
type UpdatePositionsInput struct {
	EntityID      string
	NewEntityName string
	Products      map[domain.AssetType][]domain.PayloadEntry
}

// EntityPositions is the stored state of one entity.
type EntityPositions struct {
	EntityID string
	Products map[domain.AssetType][]domain.PayloadEntry
}

// ListEntities lists all entities.
func (s *PositionService) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	return s.repo.ListEntities(ctx)
}

// GetEntityPositions returns the entries of one entity.
func (s *PositionService) GetEntityPositions(ctx context.Context, entityID string) (*EntityPositions, error) {
	if _, err := s.repo.GetEntity(ctx, entityID); err != nil {
		return nil, err
	}
	products, err := s.repo.GetProducts(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return &EntityPositions{EntityID: entityID, Products: products}, nil
}

// ListPositions returns the entries of every entity.
func (s *PositionService) ListPositions(ctx context.Context) ([]*EntityPositions, error) {
	entities, err := s.repo.ListEntities(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*EntityPositions, 0, len(entities))
	for _, e := range entities {
		products, err := s.repo.GetProducts(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &EntityPositions{EntityID: e.ID, Products: products})
	}
	return out, nil
}

// UpdatePositions replaces the manual entries of every product type named in
// the input. Entries from other sources are kept. Entries without an id get
// one. When NewEntityName is set the entity is created first. It returns the
// id of the updated entity.
func (s *PositionService) UpdatePositions(ctx context.Context, input UpdatePositionsInput) (string, error) {
	entityID := strings.TrimSpace(input.EntityID)
	name := strings.TrimSpace(input.NewEntityName)

	switch {
	case entityID != "" && name != "":
		return "", fmt.Errorf("%w: entity_id and new_entity_name are exclusive", domain.ErrInvalidEntry)
	case entityID == "" && name == "":
		return "", domain.ErrEntityNameMissing
	}

	for t := range input.Products {
		if _, err := domain.ParseAssetType(string(t)); err != nil {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownAssetType, t)
		}
	}

	if name != "" {
		entity := domain.Entity{ID: s.idGen.Generate(), Name: name}
		if err := s.repo.CreateEntity(ctx, entity); err != nil {
			return "", err
		}
		entityID = entity.ID
		if s.metrics != nil {
			s.metrics.EntitiesCreated.Inc()
		}
		s.logger.Info().Str("entity", entityID).Str("name", name).Msg("entity created")
	} else if _, err := s.repo.GetEntity(ctx, entityID); err != nil {
		return "", err
	}

	current, err := s.repo.GetProducts(ctx, entityID)
	if err != nil {
		return "", err
	}

	replaced := make(map[domain.AssetType][]domain.PayloadEntry, len(input.Products))
	for t, entries := range input.Products {
		next := make([]domain.PayloadEntry, 0, len(entries)+len(current[t]))
		for _, e := range current[t] {
			if !isManualPayload(e) {
				next = append(next, e)
			}
		}
		for _, e := range entries {
			next = append(next, s.normalizeEntry(e))
		}
		replaced[t] = next

		if s.metrics != nil {
			s.metrics.EntriesReplaced.WithLabelValues(string(t)).Add(float64(len(entries)))
		}
	}

	if err := s.repo.ReplaceProducts(ctx, entityID, replaced); err != nil {
		return "", err
	}

	s.logger.Info().
		Str("entity", entityID).
		Int("product_types", len(replaced)).
		Msg("positions updated")

	return entityID, nil
}

// normalizeEntry copies e, assigning an id to new entries and marking it manual.
func (s *PositionService) normalizeEntry(e domain.PayloadEntry) domain.PayloadEntry {
	out := make(domain.PayloadEntry, len(e)+2)
	for k, v := range e {
		out[k] = v
	}
	if id, _ := out["id"].(string); id == "" {
		out["id"] = s.idGen.Generate()
	}
	out["source"] = string(domain.SourceManual)
	return out
}

func isManualPayload(e domain.PayloadEntry) bool {
	src, _ := e["source"].(string)
	return domain.Source(src).IsManual()
}
