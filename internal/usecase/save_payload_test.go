package usecase_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/positiondraft/internal/assetconfig"
	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

func TestResolveNewEntityName(t *testing.T) {
	tests := []struct {
		name   string
		drafts []domain.Draft
		want   string
	}{
		{
			name: "pending name wins over empty",
			drafts: []domain.Draft{
				{LocalID: "l1", Entity: domain.PendingEntity("t1", "Bank A")},
				{LocalID: "l2", Entity: domain.PendingEntity("t1", "")},
			},
			want: "Bank A",
		},
		{
			name: "first pending name in draft order wins",
			drafts: []domain.Draft{
				{LocalID: "l1", Entity: domain.PendingEntity("t1", "  ")},
				{LocalID: "l2", Entity: domain.PendingEntity("t1", "Bank B")},
				{LocalID: "l3", Entity: domain.PendingEntity("t1", "Bank C")},
			},
			want: "Bank B",
		},
		{
			name: "falls back to entity name",
			drafts: []domain.Draft{
				{LocalID: "l1", Entity: domain.PendingEntity("t1", ""), EntityName: "Fallback"},
			},
			want: "Fallback",
		},
		{
			name:   "nothing usable",
			drafts: []domain.Draft{{LocalID: "l1", Entity: domain.PendingEntity("t1", "")}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.ResolveNewEntityName(tt.drafts))
		})
	}
}

func TestBuildSavePayload_NewEntityStock(t *testing.T) {
	entity := domain.PendingEntity("t1", "MyBroker")
	drafts := []domain.Draft{{
		LocalID: "l1",
		Entity:  entity,
		Entry: domain.StockEntry{
			Name:            "ACME",
			Type:            "STOCK",
			Shares:          decimal.NewFromInt(10),
			AverageBuyPrice: decimal.NewFromInt(5),
			Currency:        "EUR",
		},
	}}

	updates, err := usecase.BuildSavePayload(usecase.PayloadInput{
		Config:  assetconfig.NewStockConfig(),
		Working: drafts,
	}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, updates, 1)

	u := updates[0]
	assert.True(t, u.CreatesEntity())
	assert.Equal(t, "MyBroker", u.NewEntityName)

	entries := u.Products[domain.AssetTypeStock]
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Nil(t, e["id"])
	assert.Equal(t, json.Number("10"), e["shares"])
	assert.Equal(t, json.Number("5"), e["average_buy_price"])
	assert.Equal(t, "EUR", e["currency"])
}

func TestBuildSavePayload_MissingEntityName(t *testing.T) {
	drafts := []domain.Draft{accountDraft("l1", "", "", account("", "Main", "1"))}
	drafts[0].Entity = domain.PendingEntity("t1", "")

	updates, err := usecase.BuildSavePayload(usecase.PayloadInput{
		Config:  assetconfig.NewAccountConfig(),
		Working: drafts,
	}, zerolog.Nop())

	assert.Nil(t, updates)
	assert.True(t, errors.Is(err, domain.ErrMissingEntityName))
}

func TestBuildSavePayload_GroupsByEntity(t *testing.T) {
	a1 := account("a1", "One", "1")
	a2 := account("a2", "Two", "2")
	a3 := account("a3", "Three", "3")

	baseline := []domain.Draft{
		accountDraft("l1", "a1", "e1", a1),
		accountDraft("l2", "a2", "e2", a2),
		accountDraft("l3", "a3", "e3", a3),
	}
	working := []domain.Draft{
		accountDraft("l1", "a1", "e1", a1),
		// moved from e2 to e1
		accountDraft("l2", "a2", "e1", a2),
		accountDraft("n1", "", "e1", account("", "New", "4")),
	}

	updates, err := usecase.BuildSavePayload(usecase.PayloadInput{
		Config:   assetconfig.NewAccountConfig(),
		Working:  working,
		Baseline: baseline,
	}, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, updates, 3)

	assert.Equal(t, "e1", updates[0].Entity.ID())
	e1 := updates[0].Products[domain.AssetTypeAccount]
	require.Len(t, e1, 3)
	assert.Equal(t, "a1", e1[0]["id"])
	assert.Equal(t, "a2", e1[1]["id"])
	assert.Nil(t, e1[2]["id"])

	// entities only present in the baseline are cleared
	assert.Equal(t, "e2", updates[1].Entity.ID())
	assert.Empty(t, updates[1].Products[domain.AssetTypeAccount])
	assert.NotNil(t, updates[1].Products[domain.AssetTypeAccount])
	assert.Equal(t, "e3", updates[2].Entity.ID())
	assert.Empty(t, updates[2].Products[domain.AssetTypeAccount])
	assert.Empty(t, updates[2].NewEntityName)
}

func TestBuildSavePayload_SkipsRemoteEntries(t *testing.T) {
	remote := account("r1", "Remote", "1")
	remote.Source = domain.SourceRemote

	updates, err := usecase.BuildSavePayload(usecase.PayloadInput{
		Config:  assetconfig.NewAccountConfig(),
		Working: []domain.Draft{accountDraft("l1", "r1", "e1", remote)},
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, updates)
}
