package dto

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

func TestEntitiesFromDomain(t *testing.T) {
	resp := EntitiesFromDomain([]domain.Entity{{ID: "e1", Name: "Bank A"}})

	require.Len(t, resp.Entities, 1)
	assert.Equal(t, EntityResponse{ID: "e1", Name: "Bank A"}, resp.Entities[0])
	assert.Equal(t, []domain.Entity{{ID: "e1", Name: "Bank A"}}, resp.ToDomain())
}

func TestPositionFromUseCase(t *testing.T) {
	resp := PositionFromUseCase(&usecase.EntityPositions{
		EntityID: "e1",
		Products: map[domain.AssetType][]domain.PayloadEntry{domain.AssetTypeCard: nil},
	})

	assert.Equal(t, "e1", resp.EntityID)
	assert.NotNil(t, resp.Products["CARD"].Entries)
}

func TestPositionsResponse_ToDomain(t *testing.T) {
	body := `{"positions":[{"entity_id":"e1","products":{
		"ACCOUNT":{"entries":[{"id":"a1","name":"Main","total":1200.50,"currency":"EUR","source":"MANUAL"}]},
		"CARD":{"entries":[{"id":"c1","name":"Visa","used":10,"related_account":"a1","source":"REAL"}]},
		"UNKNOWN":{"entries":[{"id":"x"}]}
	}}]}`

	var resp PositionsResponse
	require.NoError(t, Decode(strings.NewReader(body), &resp))

	snapshot, err := resp.ToDomain()
	require.NoError(t, err)

	pos := snapshot.Positions["e1"]
	require.NotNil(t, pos)
	assert.Len(t, pos.Products, 2)

	account, ok := pos.Products[domain.AssetTypeAccount][0].(domain.AccountEntry)
	require.True(t, ok)
	assert.True(t, account.Total.Equal(decimal.RequireFromString("1200.50")))

	card, ok := pos.Products[domain.AssetTypeCard][0].(domain.CardEntry)
	require.True(t, ok)
	require.NotNil(t, card.RelatedAccount)
	assert.Equal(t, "a1", *card.RelatedAccount)

	assert.Len(t, snapshot.ManualEntries("e1", domain.AssetTypeCard), 0)
	assert.Len(t, snapshot.ManualEntries("e1", domain.AssetTypeAccount), 1)
}
