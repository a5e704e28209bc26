package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
)

func TestPositionRepository_CreateAndGetEntity(t *testing.T) {
	client, _ := newTestRedis(t)

	repo := NewPositionRepository(client, nil)
	ctx := context.Background()

	if err := repo.CreateEntity(ctx, domain.Entity{ID: "e1", Name: "Bank A"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetEntity(ctx, "e1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != "e1" || got.Name != "Bank A" {
		t.Fatalf("unexpected entity: %+v", got)
	}
}

func TestPositionRepository_GetEntityNotFound(t *testing.T) {
	client, _ := newTestRedis(t)

	repo := NewPositionRepository(client, nil)

	_, err := repo.GetEntity(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEntityNotFound) {
		t.Fatalf("expected ErrEntityNotFound, got %v", err)
	}
}

func TestPositionRepository_CreateEntityRejectsDuplicateName(t *testing.T) {
	client, _ := newTestRedis(t)

	repo := NewPositionRepository(client, nil)
	ctx := context.Background()

	if err := repo.CreateEntity(ctx, domain.Entity{ID: "e1", Name: "Bank A"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err := repo.CreateEntity(ctx, domain.Entity{ID: "e2", Name: " bank a "})
	if !errors.Is(err, domain.ErrEntityNameTaken) {
		t.Fatalf("expected ErrEntityNameTaken, got %v", err)
	}

	entities, err := repo.ListEntities(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entities) != 1 {
		t.Fatalf("expected one entity, got %d", len(entities))
	}
}

func TestPositionRepository_ListEntitiesSortedByName(t *testing.T) {
	client, _ := newTestRedis(t)

	repo := NewPositionRepository(client, nil)
	ctx := context.Background()

	for _, e := range []domain.Entity{{ID: "e2", Name: "Zeta"}, {ID: "e1", Name: "Alpha"}} {
		if err := repo.CreateEntity(ctx, e); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	entities, err := repo.ListEntities(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entities) != 2 || entities[0].Name != "Alpha" || entities[1].Name != "Zeta" {
		t.Fatalf("unexpected order: %+v", entities)
	}
}

func TestPositionRepository_ReplaceAndGetProducts(t *testing.T) {
	client, _ := newTestRedis(t)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	repo := NewPositionRepository(client, m)
	ctx := context.Background()

	err := repo.ReplaceProducts(ctx, "e1", map[domain.AssetType][]domain.PayloadEntry{
		domain.AssetTypeStock: {
			{"id": "s1", "shares": json.Number("10.50"), "currency": "EUR"},
		},
		domain.AssetTypeCard: nil,
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	products, err := repo.GetProducts(ctx, "e1")
	if err != nil {
		t.Fatalf("get products failed: %v", err)
	}

	stocks := products[domain.AssetTypeStock]
	if len(stocks) != 1 {
		t.Fatalf("expected one stock entry, got %d", len(stocks))
	}
	if got := stocks[0]["shares"]; got != json.Number("10.50") {
		t.Fatalf("expected shares to keep textual form, got %#v", got)
	}

	cards, ok := products[domain.AssetTypeCard]
	if !ok || cards == nil || len(cards) != 0 {
		t.Fatalf("expected empty card list, got %#v", cards)
	}

	if got := testutil.ToFloat64(m.RedisOperations.WithLabelValues("replace_products")); got != 1 {
		t.Fatalf("expected one replace operation recorded, got %v", got)
	}
}

func TestPositionRepository_ReplaceKeepsOtherProductTypes(t *testing.T) {
	client, _ := newTestRedis(t)

	repo := NewPositionRepository(client, nil)
	ctx := context.Background()

	first := map[domain.AssetType][]domain.PayloadEntry{
		domain.AssetTypeAccount: {{"id": "a1"}},
		domain.AssetTypeCard:    {{"id": "c1"}},
	}
	if err := repo.ReplaceProducts(ctx, "e1", first); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if err := repo.ReplaceProducts(ctx, "e1", map[domain.AssetType][]domain.PayloadEntry{
		domain.AssetTypeCard: {},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	products, err := repo.GetProducts(ctx, "e1")
	if err != nil {
		t.Fatalf("get products failed: %v", err)
	}
	if len(products[domain.AssetTypeAccount]) != 1 {
		t.Fatalf("expected account entries to be kept, got %#v", products[domain.AssetTypeAccount])
	}
	if len(products[domain.AssetTypeCard]) != 0 {
		t.Fatalf("expected card entries to be cleared, got %#v", products[domain.AssetTypeCard])
	}
}

func TestPositionRepository_GetProductsUnknownEntity(t *testing.T) {
	client, _ := newTestRedis(t)

	repo := NewPositionRepository(client, nil)

	products, err := repo.GetProducts(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get products failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %#v", products)
	}
}

func TestPositionRepository_CorruptProductsFail(t *testing.T) {
	client, mr := newTestRedis(t)

	repo := NewPositionRepository(client, nil)
	mr.HSet(repo.productsKey("e1"), string(domain.AssetTypeStock), "not json")

	if _, err := repo.GetProducts(context.Background(), "e1"); err == nil {
		t.Fatalf("expected decode error for corrupt entries")
	}
}

func TestPositionRepository_RecordsErrorsWhenRedisIsDown(t *testing.T) {
	client, mr := newTestRedis(t)

	m := metrics.New(prometheus.NewRegistry())
	repo := NewPositionRepository(client, m)
	mr.Close()

	if _, err := repo.ListEntities(context.Background()); err == nil {
		t.Fatalf("expected error when redis is down")
	}
	if got := testutil.ToFloat64(m.RedisErrors.WithLabelValues("list_entities")); got != 1 {
		t.Fatalf("expected one recorded error, got %v", got)
	}
}
