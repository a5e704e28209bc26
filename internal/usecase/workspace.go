package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
)

// WorkspaceDeps are the collaborators shared by all managers of a workspace.
type WorkspaceDeps struct {
	Store        DraftStore
	Gateway      PositionsGateway
	Confirmer    Confirmer
	Notifier     Notifier
	IDGen        IDGenerator
	Logger       zerolog.Logger
	Metrics      *metrics.Metrics
	Dependencies DependencyMap
	// SaveTimeout bounds a whole save. Zero means DefaultSaveTimeout.
	SaveTimeout time.Duration
}

// Workspace owns one PositionManager per asset type together with the last
// snapshot they were seeded from. At most one manager exists per asset type.
type Workspace struct {
	store     DraftStore
	gateway   PositionsGateway
	confirmer Confirmer
	notifier  Notifier
	idGen     IDGenerator
	logger    zerolog.Logger
	metrics   *metrics.Metrics
	deps      DependencyMap
	links     *LinkResolver
	timeout   time.Duration

	// settling suppresses adoption of store changes while the workspace
	// republishes every list itself.
	settling int

	snapshot *domain.Snapshot
	entities []domain.Entity
	managers map[domain.AssetType]*PositionManager
	order    []domain.AssetType
}

// NewWorkspace creates a workspace with a manager for every config.
func NewWorkspace(d WorkspaceDeps, configs ...AssetConfig) *Workspace {
	deps := d.Dependencies
	if deps == nil {
		deps = DefaultDependencies()
	}
	timeout := d.SaveTimeout
	if timeout <= 0 {
		timeout = DefaultSaveTimeout
	}
	ws := &Workspace{
		store:     d.Store,
		gateway:   d.Gateway,
		confirmer: d.Confirmer,
		notifier:  d.Notifier,
		idGen:     d.IDGen,
		logger:    d.Logger,
		metrics:   d.Metrics,
		deps:      deps,
		links:     NewLinkResolver(d.Store, deps, d.Logger, d.Metrics),
		timeout:   timeout,
		snapshot:  domain.NewSnapshot(),
		managers:  make(map[domain.AssetType]*PositionManager, len(configs)),
	}
	for _, cfg := range configs {
		if _, ok := ws.managers[cfg.AssetType()]; ok {
			continue
		}
		ws.managers[cfg.AssetType()] = newPositionManager(ws, cfg)
		ws.order = append(ws.order, cfg.AssetType())
	}
	return ws
}

// Manager returns the manager of t, or nil.
func (w *Workspace) Manager(t domain.AssetType) *PositionManager {
	return w.managers[t]
}

// Entities returns the backend entities.
func (w *Workspace) Entities() []domain.Entity { return w.entities }

// Snapshot returns the last applied snapshot.
func (w *Workspace) Snapshot() *domain.Snapshot { return w.snapshot }

// SetSnapshot applies a new backend state to every manager.
func (w *Workspace) SetSnapshot(snapshot *domain.Snapshot, entities []domain.Entity) {
	if snapshot == nil {
		snapshot = domain.NewSnapshot()
	}
	w.snapshot = snapshot
	w.entities = entities

	w.settling++
	defer func() { w.settling-- }()
	for _, t := range w.order {
		w.managers[t].refresh(snapshot, entities)
	}
}

// Load fetches entities and the snapshot from the gateway and applies them.
func (w *Workspace) Load(ctx context.Context) error {
	entities, err := w.gateway.FetchEntities(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch entities: %w", err)
	}
	snapshot, err := w.gateway.FetchSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch snapshot: %w", err)
	}
	w.SetSnapshot(snapshot, entities)
	return nil
}

// Close closes every manager.
func (w *Workspace) Close() {
	for _, t := range w.order {
		w.managers[t].Close()
	}
}

// participants returns m followed by the dirty managers of asset types that
// depend on m's type, directly or transitively.
func (w *Workspace) participants(m *PositionManager) []*PositionManager {
	out := []*PositionManager{m}
	seen := map[domain.AssetType]struct{}{m.t: {}}

	queue := []domain.AssetType{m.t}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		for _, dep := range w.deps[t] {
			if _, ok := seen[dep.Dependent]; ok {
				continue
			}
			seen[dep.Dependent] = struct{}{}
			queue = append(queue, dep.Dependent)
			if dm, ok := w.managers[dep.Dependent]; ok && dm.state != StateViewing && dm.dirty {
				out = append(out, dm)
			}
		}
	}
	return out
}

// unlinkDeleted nulls the links of dependent's drafts that point at backend
// drafts still deleted in an editing session of the asset type they depend on.
func (w *Workspace) unlinkDeleted(dependent domain.AssetType) {
	for _, t := range w.order {
		owner := w.managers[t]
		if owner.state == StateViewing || !dependsOn(w.deps[t], dependent) {
			continue
		}
		deleted := owner.DeletedOriginalIDs()
		for _, d := range owner.baseline {
			if deleted.Has(d.OriginalID) {
				w.links.Unlink(t, d)
			}
		}
	}
}

func dependsOn(deps []Dependency, t domain.AssetType) bool {
	for _, dep := range deps {
		if dep.Dependent == t {
			return true
		}
	}
	return false
}

// BuildUpdates builds the per-entity requests for the given managers. Updates
// for the same entity are merged so each entity gets exactly one request.
func (w *Workspace) BuildUpdates(managers []*PositionManager) ([]domain.PositionUpdate, error) {
	merged := make(map[string]*domain.PositionUpdate)
	var order []string

	for _, m := range managers {
		updates, err := BuildSavePayload(PayloadInput{
			Config:   m.cfg,
			Working:  m.drafts,
			Baseline: m.baseline,
		}, m.logger)
		if err != nil {
			return nil, err
		}
		for _, u := range updates {
			key := u.Entity.Key()
			existing, ok := merged[key]
			if !ok {
				u := u
				merged[key] = &u
				order = append(order, key)
				continue
			}
			for t, entries := range u.Products {
				existing.Products[t] = entries
			}
			if existing.NewEntityName == "" {
				existing.NewEntityName = u.NewEntityName
			}
		}
	}

	out := make([]domain.PositionUpdate, 0, len(order))
	for _, key := range order {
		out = append(out, *merged[key])
	}
	return out, nil
}

func (w *Workspace) save(ctx context.Context, managers []*PositionManager) error {
	start := time.Now()

	updates, err := w.BuildUpdates(managers)
	if err != nil {
		w.notifier.Error(msgMissingEntityName)
		w.observeSave("invalid", start)
		return err
	}

	saveCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	w.logger.Info().Int("requests", len(updates)).Int("asset_types", len(managers)).Msg("saving positions")

	// Requests are independent: one failing does not cancel the others.
	var g errgroup.Group
	for _, u := range updates {
		u := u
		g.Go(func() error {
			if err := w.gateway.UpdatePositions(saveCtx, u); err != nil {
				w.logger.Error().Err(err).Str("entity", u.Entity.Key()).Msg("position update failed")
				return err
			}
			if w.metrics != nil {
				for t := range u.Products {
					w.metrics.SaveRequests.WithLabelValues(string(t)).Inc()
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		w.notifier.Error(msgSaveFailed)
		w.observeSave("failed", start)
		return fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}

	snapshot, entities := w.refreshAfterSave(ctx, updates)

	w.settling++
	for _, m := range managers {
		m.finishSave()
	}
	w.SetSnapshot(snapshot, entities)
	w.settling--

	w.observeSave("success", start)
	w.logger.Info().Dur("duration", time.Since(start)).Msg("positions saved")
	return nil
}

// refreshAfterSave reloads what the save changed. Creating an entity reloads
// the entity list and the whole snapshot; otherwise each updated entity is
// refreshed on its own. Refresh failures keep the previous state.
func (w *Workspace) refreshAfterSave(ctx context.Context, updates []domain.PositionUpdate) (*domain.Snapshot, []domain.Entity) {
	snapshot := w.snapshot
	entities := w.entities

	createdEntity := false
	for _, u := range updates {
		if u.CreatesEntity() {
			createdEntity = true
			break
		}
	}

	if createdEntity {
		if fetched, err := w.gateway.FetchEntities(ctx); err != nil {
			w.logger.Warn().Err(err).Msg("failed to refresh entities after save")
		} else {
			entities = fetched
		}
		if fetched, err := w.gateway.FetchSnapshot(ctx); err != nil {
			w.logger.Warn().Err(err).Msg("failed to refresh snapshot after save")
		} else {
			snapshot = fetched
		}
		return snapshot, entities
	}

	ids := make([]string, 0, len(updates))
	for _, u := range updates {
		ids = append(ids, u.Entity.ID())
	}
	sort.Strings(ids)
	for _, id := range ids {
		pos, err := w.gateway.RefreshEntity(ctx, id)
		if err != nil {
			w.logger.Warn().Err(err).Str("entity", id).Msg("failed to refresh entity after save")
			continue
		}
		snapshot = snapshot.WithPosition(pos)
	}
	return snapshot, entities
}

// baselineEntries lists the manual backend entries of t, entity by entity in
// entity list order, then any remaining entities by id.
func (w *Workspace) baselineEntries(t domain.AssetType) []domain.Entry {
	var out []domain.Entry
	seen := make(map[string]struct{}, len(w.entities))
	for _, e := range w.entities {
		seen[e.ID] = struct{}{}
		out = append(out, w.snapshot.ManualEntries(e.ID, t)...)
	}

	rest := make([]string, 0)
	for id := range w.snapshot.Positions {
		if _, ok := seen[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		out = append(out, w.snapshot.ManualEntries(id, t)...)
	}
	return out
}

func (w *Workspace) observeSave(result string, start time.Time) {
	if w.metrics == nil {
		return
	}
	w.metrics.SavesTotal.WithLabelValues(result).Inc()
	w.metrics.SaveDuration.Observe(time.Since(start).Seconds())
}
