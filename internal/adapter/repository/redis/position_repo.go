package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
)

// PositionRepository implements usecase.PositionRepository using Redis hashes:
// one hash of entities, one name index and one hash of product entries per entity.
type PositionRepository struct {
	client  *redis.Client
	prefix  string
	metrics *metrics.Metrics
}

// NewPositionRepository creates a new PositionRepository.
func NewPositionRepository(client *redis.Client, m *metrics.Metrics) *PositionRepository {
	return &PositionRepository{
		client:  client,
		prefix:  "positions:",
		metrics: m,
	}
}

type storedEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *PositionRepository) entitiesKey() string { return r.prefix + "entities" }
func (r *PositionRepository) namesKey() string    { return r.prefix + "entity-names" }
func (r *PositionRepository) productsKey(entityID string) string {
	return r.prefix + "products:" + entityID
}

// ListEntities returns all entities ordered by name.
func (r *PositionRepository) ListEntities(ctx context.Context) ([]domain.Entity, error) {
	raw, err := r.client.HGetAll(ctx, r.entitiesKey()).Result()
	r.observe("list_entities", err)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	entities := make([]domain.Entity, 0, len(raw))
	for _, v := range raw {
		var e storedEntity
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		entities = append(entities, domain.Entity{ID: e.ID, Name: e.Name})
	}
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Name != entities[j].Name {
			return entities[i].Name < entities[j].Name
		}
		return entities[i].ID < entities[j].ID
	})
	return entities, nil
}

// GetEntity returns one entity or domain.ErrEntityNotFound.
func (r *PositionRepository) GetEntity(ctx context.Context, id string) (*domain.Entity, error) {
	raw, err := r.client.HGet(ctx, r.entitiesKey(), id).Result()
	if errors.Is(err, redis.Nil) {
		r.observe("get_entity", nil)
		return nil, fmt.Errorf("%w: %s", domain.ErrEntityNotFound, id)
	}
	r.observe("get_entity", err)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	var e storedEntity
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, fmt.Errorf("failed to decode entity: %w", err)
	}
	return &domain.Entity{ID: e.ID, Name: e.Name}, nil
}

// CreateEntity stores a new entity. Names are unique ignoring case.
func (r *PositionRepository) CreateEntity(ctx context.Context, entity domain.Entity) error {
	nameKey := strings.ToLower(strings.TrimSpace(entity.Name))

	claimed, err := r.client.HSetNX(ctx, r.namesKey(), nameKey, entity.ID).Result()
	r.observe("claim_entity_name", err)
	if err != nil {
		return fmt.Errorf("failed to claim entity name: %w", err)
	}
	if !claimed {
		return fmt.Errorf("%w: %s", domain.ErrEntityNameTaken, entity.Name)
	}

	payload, err := json.Marshal(storedEntity{ID: entity.ID, Name: entity.Name})
	if err != nil {
		return err
	}
	err = r.client.HSet(ctx, r.entitiesKey(), entity.ID, payload).Err()
	r.observe("create_entity", err)
	if err != nil {
		r.client.HDel(ctx, r.namesKey(), nameKey)
		return fmt.Errorf("failed to create entity: %w", err)
	}
	return nil
}

// GetProducts returns the stored entries of an entity. Numbers keep their
// textual form.
func (r *PositionRepository) GetProducts(ctx context.Context, entityID string) (map[domain.AssetType][]domain.PayloadEntry, error) {
	raw, err := r.client.HGetAll(ctx, r.productsKey(entityID)).Result()
	r.observe("get_products", err)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	products := make(map[domain.AssetType][]domain.PayloadEntry, len(raw))
	for t, v := range raw {
		dec := json.NewDecoder(bytes.NewReader([]byte(v)))
		dec.UseNumber()

		var entries []domain.PayloadEntry
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("failed to decode %s entries: %w", t, err)
		}
		if entries == nil {
			entries = []domain.PayloadEntry{}
		}
		products[domain.AssetType(t)] = entries
	}
	return products, nil
}

// ReplaceProducts writes the entries of every given product type in one transaction.
func (r *PositionRepository) ReplaceProducts(ctx context.Context, entityID string, products map[domain.AssetType][]domain.PayloadEntry) error {
	if len(products) == 0 {
		return nil
	}

	values := make(map[string]any, len(products))
	for t, entries := range products {
		if entries == nil {
			entries = []domain.PayloadEntry{}
		}
		payload, err := json.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to encode %s entries: %w", t, err)
		}
		values[string(t)] = payload
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.productsKey(entityID), values)
		return nil
	})
	r.observe("replace_products", err)
	if err != nil {
		return fmt.Errorf("failed to replace products: %w", err)
	}
	return nil
}

func (r *PositionRepository) observe(op string, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RedisOperations.WithLabelValues(op).Inc()
	if err != nil {
		r.metrics.RedisErrors.WithLabelValues(op).Inc()
	}
}
