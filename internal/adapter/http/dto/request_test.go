package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/positiondraft/internal/domain"
)

func TestUpdateRequestFromDomain_NewEntity(t *testing.T) {
	u := domain.PositionUpdate{
		Entity:        domain.PendingEntity("tok", "MyBroker"),
		NewEntityName: "MyBroker",
		Products: map[domain.AssetType][]domain.PayloadEntry{
			domain.AssetTypeStock: {{"id": nil, "shares": json.Number("10")}},
		},
	}

	body, err := json.Marshal(UpdateRequestFromDomain(u))
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(body, &generic))

	assert.Equal(t, "MyBroker", generic["new_entity_name"])
	assert.NotContains(t, generic, "entity_id")
	assert.JSONEq(t, `{"new_entity_name":"MyBroker","products":{"STOCK_ETF":{"entries":[{"id":null,"shares":10}]}}}`, string(body))
}

func TestUpdateRequestFromDomain_ExistingEntity(t *testing.T) {
	u := domain.PositionUpdate{
		Entity: domain.ExistingEntity("e1"),
		Products: map[domain.AssetType][]domain.PayloadEntry{
			domain.AssetTypeCard: nil,
		},
	}

	body, err := json.Marshal(UpdateRequestFromDomain(u))
	require.NoError(t, err)

	assert.JSONEq(t, `{"entity_id":"e1","products":{"CARD":{"entries":[]}}}`, string(body))
}

func TestUpdatePositionsRequest_ToUseCaseInput(t *testing.T) {
	var req UpdatePositionsRequest
	err := Decode(strings.NewReader(`{"entity_id":"e1","products":{"ACCOUNT":{"entries":[{"id":"a1","total":"1200.10"}]},"CARD":{}}}`), &req)
	require.NoError(t, err)

	input := req.ToUseCaseInput()

	assert.Equal(t, "e1", input.EntityID)
	assert.Empty(t, input.NewEntityName)
	require.Len(t, input.Products[domain.AssetTypeAccount], 1)
	assert.Equal(t, "a1", input.Products[domain.AssetTypeAccount][0]["id"])
	assert.NotNil(t, input.Products[domain.AssetTypeCard])
	assert.Empty(t, input.Products[domain.AssetTypeCard])
}

func TestDecodeKeepsNumberText(t *testing.T) {
	var v map[string]any
	require.NoError(t, Decode(strings.NewReader(`{"amount":0.10000000000000000001}`), &v))

	assert.Equal(t, json.Number("0.10000000000000000001"), v["amount"])
}
