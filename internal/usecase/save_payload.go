package usecase

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/positiondraft/internal/domain"
)

// PayloadInput is what BuildSavePayload needs for one asset type.
type PayloadInput struct {
	Config   AssetConfig
	Working  []domain.Draft
	Baseline []domain.Draft
}

// BuildSavePayload groups the manual drafts of one asset type by owning entity
// and returns one update per entity, in order of first appearance (working
// list first). Entities that only appear in the baseline get an empty entry
// list so their manual entries are cleared. A pending entity without any
// usable name fails the whole build with domain.ErrMissingEntityName.
func BuildSavePayload(in PayloadInput, logger zerolog.Logger) ([]domain.PositionUpdate, error) {
	t := in.Config.AssetType()

	type group struct {
		ref    domain.EntityRef
		drafts []domain.Draft
	}
	groups := make(map[string]*group)
	var order []string

	touch := func(ref domain.EntityRef) *group {
		key := ref.Key()
		g, ok := groups[key]
		if !ok {
			g = &group{ref: ref}
			groups[key] = g
			order = append(order, key)
		}
		return g
	}

	for _, d := range in.Working {
		if !isManualDraft(d) || d.Entity.IsZero() {
			continue
		}
		g := touch(d.Entity)
		g.drafts = append(g.drafts, d)
	}
	for _, d := range in.Baseline {
		if !isManualDraft(d) || d.Entity.IsZero() {
			continue
		}
		touch(d.Entity)
	}

	updates := make([]domain.PositionUpdate, 0, len(order))
	for _, key := range order {
		g := groups[key]

		isNew := g.ref.IsPending()
		for _, d := range g.drafts {
			if d.Entity.IsPending() {
				isNew = true
			}
		}

		entries := make([]domain.PayloadEntry, 0, len(g.drafts))
		for _, d := range g.drafts {
			entries = append(entries, payloadEntry(in.Config, d))
		}

		update := domain.PositionUpdate{
			Entity:   g.ref,
			Products: map[domain.AssetType][]domain.PayloadEntry{t: entries},
		}

		if isNew {
			name := ResolveNewEntityName(g.drafts)
			if name == "" {
				logger.Warn().
					Str("asset_type", string(t)).
					Str("entity", key).
					Int("drafts", len(g.drafts)).
					Msg("new entity has no name, aborting save")
				return nil, fmt.Errorf("%w: %s", domain.ErrMissingEntityName, key)
			}
			update.NewEntityName = name
		}

		updates = append(updates, update)
	}

	return updates, nil
}

// ResolveNewEntityName picks the name a pending entity is created with: the
// first non-empty pending name in draft order, otherwise the first non-empty
// entity name.
func ResolveNewEntityName(drafts []domain.Draft) string {
	for _, d := range drafts {
		if name := strings.TrimSpace(d.Entity.PendingName()); name != "" {
			return name
		}
	}
	for _, d := range drafts {
		if name := strings.TrimSpace(d.EntityName); name != "" {
			return name
		}
	}
	return ""
}

// payloadEntry converts d and nulls the id of entries the backend must create.
func payloadEntry(cfg AssetConfig, d domain.Draft) domain.PayloadEntry {
	entry := cfg.ToPayloadEntry(d)
	if entry == nil {
		entry = domain.PayloadEntry{}
	}
	if d.IsNew() {
		entry["id"] = nil
	} else {
		entry["id"] = d.OriginalID
	}
	return entry
}

func isManualDraft(d domain.Draft) bool {
	return d.Entry == nil || d.Entry.EntrySource().IsManual()
}
