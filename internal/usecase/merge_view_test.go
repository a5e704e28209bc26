package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/positiondraft/internal/assetconfig"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

func TestBuildMergeView_CountsAndUniqueKeys(t *testing.T) {
	cfg := assetconfig.NewAccountConfig()
	b1, b2, b3 := account("a1", "One", "1"), account("a2", "Two", "2"), account("a3", "Three", "3")
	baselineDrafts := []domain.Draft{
		accountDraft("l1", "a1", "e1", b1),
		accountDraft("l2", "a2", "e1", b2),
		accountDraft("l3", "a3", "e1", b3),
	}
	checker := usecase.NewDirtyChecker(cfg, baselineDrafts)

	drafts := []domain.Draft{
		accountDraft("l1", "a1", "e1", b1),
		accountDraft("l2", "a2", "e1", account("a2", "Two", "20")),
		accountDraft("l3", "a3", "e1", b3),
		accountDraft("n1", "", "e1", account("", "New", "5")),
		accountDraft("n2", "", "e1", account("", "Newer", "6")),
	}

	items := usecase.BuildMergeView(usecase.MergeInput{
		Baseline: []domain.Entry{b1, b2, b3},
		Drafts:   drafts,
		Deleted:  domain.IDSet{},
		IsDirty:  checker.IsDirty,
	})

	require.Len(t, items, 3+2)

	keys := map[string]bool{}
	for _, it := range items {
		assert.False(t, keys[it.Key], "duplicate key %s", it.Key)
		keys[it.Key] = true
	}

	assert.Equal(t, usecase.ItemUnmodified, items[0].State)
	assert.True(t, items[1].IsDirty())
	assert.Equal(t, "20", items[1].Entry.(domain.AccountEntry).Total.String())
	assert.Equal(t, "a2", items[1].Key)
	assert.True(t, items[3].IsNew())
	assert.Equal(t, "n1", items[3].Key)
	assert.Equal(t, "n2", items[4].Key)
}

func TestBuildMergeView_SkipsTombstones(t *testing.T) {
	b1, b2 := account("a1", "One", "1"), account("a2", "Two", "2")

	items := usecase.BuildMergeView(usecase.MergeInput{
		Baseline: []domain.Entry{b1, b2},
		Drafts:   []domain.Draft{accountDraft("l2", "a2", "e1", b2)},
		Deleted:  domain.NewIDSet("a1"),
		IsDirty:  func(domain.Draft) bool { return false },
	})

	require.Len(t, items, 1)
	assert.Equal(t, "a2", items[0].Key)
}

func TestBuildMergeView_KeyCollisions(t *testing.T) {
	// A new draft whose local id equals a baseline id must not share its key.
	b1 := account("x", "One", "1")

	items := usecase.BuildMergeView(usecase.MergeInput{
		Baseline: []domain.Entry{b1, account("", "Anonymous", "2")},
		Drafts:   []domain.Draft{accountDraft("x", "", "e1", account("", "New", "5"))},
		IsDirty:  func(domain.Draft) bool { return true },
	})

	require.Len(t, items, 3)
	assert.Equal(t, "x", items[0].Key)
	assert.Equal(t, "baseline-1", items[1].Key)
	assert.Equal(t, "x#2", items[2].Key)
}

func TestBuildMergeView_CosmeticMergeOnCleanDrafts(t *testing.T) {
	cfg := assetconfig.NewFundConfig()
	backend := domain.FundEntry{
		EntryBase: domain.EntryBase{ID: "f1", Source: domain.SourceManual},
		Name:      "World",
		Portfolio: &domain.PortfolioRef{ID: "p1", Name: "Main portfolio"},
	}
	projected := backend
	projected.Portfolio = &domain.PortfolioRef{ID: "p1"}

	items := usecase.BuildMergeView(usecase.MergeInput{
		Baseline: []domain.Entry{backend},
		Drafts:   []domain.Draft{{LocalID: "l1", OriginalID: "f1", Entity: domain.ExistingEntity("e1"), Entry: projected}},
		IsDirty:  func(domain.Draft) bool { return false },
		Cosmetic: cfg,
	})

	require.Len(t, items, 1)
	fund := items[0].Entry.(domain.FundEntry)
	assert.Equal(t, "Main portfolio", fund.Portfolio.Name)
	assert.Equal(t, usecase.ItemUnmodified, items[0].State)
}
