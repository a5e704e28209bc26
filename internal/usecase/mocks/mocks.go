package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/positiondraft/internal/domain"
)

// StubIDGenerator returns sequential ids ("id-1", "id-2", ...) unless GenerateFunc is set.
type StubIDGenerator struct {
	mu     sync.Mutex
	next   int
	Prefix string

	GenerateFunc func() string
}

func (g *StubIDGenerator) Generate() string {
	if g.GenerateFunc != nil {
		return g.GenerateFunc()
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id-"
	}
	return fmt.Sprintf("%s%d", prefix, g.next)
}

// FakePositionsGateway records updates and serves a fixed snapshot. Func
// fields override the default behaviour.
type FakePositionsGateway struct {
	mu       sync.Mutex
	updates  []domain.PositionUpdate
	Entities []domain.Entity
	Snapshot *domain.Snapshot

	UpdatePositionsFunc func(ctx context.Context, update domain.PositionUpdate) error
	RefreshEntityFunc   func(ctx context.Context, entityID string) (*domain.EntityPosition, error)
	FetchEntitiesFunc   func(ctx context.Context) ([]domain.Entity, error)
	FetchSnapshotFunc   func(ctx context.Context) (*domain.Snapshot, error)

	RefreshedEntities []string
	EntityFetches     int
	SnapshotFetches   int
}

func (g *FakePositionsGateway) UpdatePositions(ctx context.Context, update domain.PositionUpdate) error {
	g.mu.Lock()
	g.updates = append(g.updates, update)
	g.mu.Unlock()
	if g.UpdatePositionsFunc != nil {
		return g.UpdatePositionsFunc(ctx, update)
	}
	return nil
}

func (g *FakePositionsGateway) RefreshEntity(ctx context.Context, entityID string) (*domain.EntityPosition, error) {
	g.mu.Lock()
	g.RefreshedEntities = append(g.RefreshedEntities, entityID)
	g.mu.Unlock()
	if g.RefreshEntityFunc != nil {
		return g.RefreshEntityFunc(ctx, entityID)
	}
	if g.Snapshot != nil {
		if pos, ok := g.Snapshot.Positions[entityID]; ok {
			return pos, nil
		}
	}
	return &domain.EntityPosition{EntityID: entityID, Products: map[domain.AssetType][]domain.Entry{}}, nil
}

func (g *FakePositionsGateway) FetchEntities(ctx context.Context) ([]domain.Entity, error) {
	g.mu.Lock()
	g.EntityFetches++
	g.mu.Unlock()
	if g.FetchEntitiesFunc != nil {
		return g.FetchEntitiesFunc(ctx)
	}
	return g.Entities, nil
}

func (g *FakePositionsGateway) FetchSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	g.mu.Lock()
	g.SnapshotFetches++
	g.mu.Unlock()
	if g.FetchSnapshotFunc != nil {
		return g.FetchSnapshotFunc(ctx)
	}
	if g.Snapshot == nil {
		return domain.NewSnapshot(), nil
	}
	return g.Snapshot, nil
}

// Updates returns the updates received so far.
func (g *FakePositionsGateway) Updates() []domain.PositionUpdate {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]domain.PositionUpdate(nil), g.updates...)
}

// StaticConfirmer answers every question with Answer and records the prompts.
type StaticConfirmer struct {
	Answer   bool
	Messages []string
}

func (c *StaticConfirmer) Confirm(ctx context.Context, message string) bool {
	c.Messages = append(c.Messages, message)
	return c.Answer
}

// RecordingNotifier collects error messages.
type RecordingNotifier struct {
	Messages []string
}

func (n *RecordingNotifier) Error(message string) {
	n.Messages = append(n.Messages, message)
}
