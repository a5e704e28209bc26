package usecase_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/positiondraft/internal/adapter/repository/memory"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
	"github.com/iho/positiondraft/internal/usecase"
)

func strPtr(s string) *string { return &s }

func card(id, name string, related *string) domain.CardEntry {
	return domain.CardEntry{
		EntryBase:      domain.EntryBase{ID: id, Source: domain.SourceManual},
		Name:           name,
		Type:           "DEBIT",
		Currency:       "EUR",
		RelatedAccount: related,
	}
}

func TestLinkResolver_UnlinkNullsReferences(t *testing.T) {
	store := memory.NewDraftStore()
	m := metrics.New(prometheus.NewRegistry())
	resolver := usecase.NewLinkResolver(store, usecase.DefaultDependencies(), zerolog.Nop(), m)

	target := accountDraft("l-acc", "acc-1", "e1", account("acc-1", "Main", "10"))
	store.SetDrafts(domain.AssetTypeAccount, []domain.Draft{target})
	store.SetDrafts(domain.AssetTypeCard, []domain.Draft{
		{LocalID: "l-c1", OriginalID: "c1", Entity: domain.ExistingEntity("e1"), Entry: card("c1", "Visa", strPtr("acc-1"))},
		{LocalID: "l-c2", OriginalID: "c2", Entity: domain.ExistingEntity("e1"), Entry: card("c2", "Other", strPtr("acc-2"))},
		{LocalID: "l-c3", Entity: domain.ExistingEntity("e1"), Entry: card("", "New", strPtr(target.DraftToken()))},
	})
	before := store.GetDrafts(domain.AssetTypeCard)

	affected := resolver.Dependents(domain.AssetTypeAccount, target)
	require.Len(t, affected, 1)
	assert.Equal(t, []string{"l-c1", "l-c3"}, affected[0].LocalIDs)
	assert.Equal(t, "It is linked to 2 cards, which will be unlinked.", usecase.WarningMessage(affected))

	assert.Equal(t, 2, resolver.Unlink(domain.AssetTypeAccount, target))

	after := store.GetDrafts(domain.AssetTypeCard)
	require.Len(t, after, 3, "cards are unlinked, not removed")
	assert.False(t, domain.SameDraftList(before, after))
	assert.Nil(t, after[0].Entry.(domain.CardEntry).RelatedAccount)
	assert.Equal(t, "acc-2", *after[1].Entry.(domain.CardEntry).RelatedAccount)
	assert.Nil(t, after[2].Entry.(domain.CardEntry).RelatedAccount)

	// the original list was not mutated
	assert.Equal(t, "acc-1", *before[0].Entry.(domain.CardEntry).RelatedAccount)

	assert.Equal(t, 0, resolver.Unlink(domain.AssetTypeAccount, target))
	assert.True(t, domain.SameDraftList(after, store.GetDrafts(domain.AssetTypeCard)))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.DependentsUnlinked.WithLabelValues(string(domain.AssetTypeCard))))
}

func TestLinkResolver_NoDependents(t *testing.T) {
	store := memory.NewDraftStore()
	resolver := usecase.NewLinkResolver(store, usecase.DefaultDependencies(), zerolog.Nop(), nil)

	assert.False(t, resolver.HasDependents(domain.AssetTypeStock))
	assert.True(t, resolver.HasDependents(domain.AssetTypeAccount))

	calls := 0
	store.Subscribe(func() { calls++ })
	target := accountDraft("l1", "a1", "e1", account("a1", "Main", "1"))
	assert.Equal(t, 0, resolver.Unlink(domain.AssetTypeAccount, target))
	assert.Equal(t, 0, calls)
}

func TestWarningMessage(t *testing.T) {
	cards := usecase.Dependency{Singular: "card", Plural: "cards"}
	portfolios := usecase.Dependency{Singular: "portfolio", Plural: "portfolios"}

	tests := []struct {
		name     string
		affected []usecase.AffectedDependents
		want     string
	}{
		{name: "nothing", want: ""},
		{
			name:     "singular",
			affected: []usecase.AffectedDependents{{Dependency: cards, LocalIDs: []string{"c1"}}},
			want:     "It is linked to 1 card, which will be unlinked.",
		},
		{
			name: "two kinds",
			affected: []usecase.AffectedDependents{
				{Dependency: cards, LocalIDs: []string{"c1", "c2"}},
				{Dependency: portfolios, LocalIDs: []string{"p1"}},
			},
			want: "It is linked to 2 cards and 1 portfolio, which will be unlinked.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.WarningMessage(tt.affected))
		})
	}
}
