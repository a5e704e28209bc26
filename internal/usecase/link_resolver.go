package usecase

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
)

// Dependency declares that entries of Dependent reference the owning asset type through Link.
type Dependency struct {
	Dependent domain.AssetType
	Link      domain.LinkField
	Singular  string
	Plural    string
}

// DependencyMap lists, per asset type, the asset types whose entries link to it.
type DependencyMap map[domain.AssetType][]Dependency

// DefaultDependencies: accounts are referenced by cards and portfolios,
// portfolios by funds.
func DefaultDependencies() DependencyMap {
	return DependencyMap{
		domain.AssetTypeAccount: {
			{Dependent: domain.AssetTypeCard, Link: domain.CardRelatedAccount, Singular: "card", Plural: "cards"},
			{Dependent: domain.AssetTypeFundPortfolio, Link: domain.PortfolioAccount, Singular: "portfolio", Plural: "portfolios"},
		},
		domain.AssetTypeFundPortfolio: {
			{Dependent: domain.AssetTypeFund, Link: domain.FundPortfolio, Singular: "fund", Plural: "funds"},
		},
	}
}

// AffectedDependents are the drafts of one dependent asset type linked to a draft.
type AffectedDependents struct {
	Dependency Dependency
	LocalIDs   []string
}

// LinkResolver nulls links pointing at a draft that is being removed. It
// reads and writes dependent lists through the draft store, never through
// the owning manager.
type LinkResolver struct {
	store   DraftStore
	deps    DependencyMap
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewLinkResolver creates a LinkResolver over store.
func NewLinkResolver(store DraftStore, deps DependencyMap, logger zerolog.Logger, m *metrics.Metrics) *LinkResolver {
	return &LinkResolver{
		store:   store,
		deps:    deps,
		logger:  logger,
		metrics: m,
	}
}

// HasDependents reports whether removing a draft of t can orphan other drafts.
func (r *LinkResolver) HasDependents(t domain.AssetType) bool {
	return len(r.deps[t]) > 0
}

// Dependents returns the drafts that reference target, without modifying anything.
func (r *LinkResolver) Dependents(t domain.AssetType, target domain.Draft) []AffectedDependents {
	refs := domain.NewIDSet(target.ReferenceIDs()...)

	var out []AffectedDependents
	for _, dep := range r.deps[t] {
		var ids []string
		for _, d := range r.store.GetDrafts(dep.Dependent) {
			if linksTo(d, dep.Link, refs) {
				ids = append(ids, d.LocalID)
			}
		}
		if len(ids) > 0 {
			out = append(out, AffectedDependents{Dependency: dep, LocalIDs: ids})
		}
	}
	return out
}

// Unlink nulls every link to target and publishes each rewritten dependent
// list. It returns the number of drafts rewritten; a second call with no
// intervening change rewrites nothing.
func (r *LinkResolver) Unlink(t domain.AssetType, target domain.Draft) int {
	refs := domain.NewIDSet(target.ReferenceIDs()...)

	total := 0
	for _, dep := range r.deps[t] {
		current := r.store.GetDrafts(dep.Dependent)

		var updated []domain.Draft
		changed := 0
		for i, d := range current {
			if !linksTo(d, dep.Link, refs) {
				continue
			}
			if updated == nil {
				updated = make([]domain.Draft, len(current))
				copy(updated, current)
			}
			d.Entry = dep.Link.Clear(d.Entry)
			updated[i] = d
			changed++
		}
		if changed == 0 {
			continue
		}

		r.store.SetDrafts(dep.Dependent, updated)
		total += changed

		r.logger.Debug().
			Str("asset_type", string(t)).
			Str("dependent", string(dep.Dependent)).
			Str("link", dep.Link.Name).
			Int("count", changed).
			Msg("unlinked dependent drafts")

		if r.metrics != nil {
			r.metrics.DependentsUnlinked.WithLabelValues(string(dep.Dependent)).Add(float64(changed))
		}
	}
	return total
}

// WarningMessage describes what a deletion will unlink, or "" if nothing.
func WarningMessage(affected []AffectedDependents) string {
	parts := make([]string, 0, len(affected))
	for _, a := range affected {
		n := len(a.LocalIDs)
		if n == 0 {
			continue
		}
		noun := a.Dependency.Plural
		if n == 1 {
			noun = a.Dependency.Singular
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, noun))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("It is linked to %s, which will be unlinked.", joinAnd(parts))
}

func joinAnd(parts []string) string {
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

func linksTo(d domain.Draft, link domain.LinkField, refs domain.IDSet) bool {
	if d.Entry == nil {
		return false
	}
	v := link.Get(d.Entry)
	return v != "" && refs.Has(v)
}
