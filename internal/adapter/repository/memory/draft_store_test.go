package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/positiondraft/internal/domain"
)

func accountDraft(localID, originalID string) domain.Draft {
	return domain.Draft{
		LocalID:    localID,
		OriginalID: originalID,
		Entity:     domain.ExistingEntity("e1"),
		Entry:      domain.AccountEntry{EntryBase: domain.EntryBase{ID: originalID}, Name: localID},
	}
}

func TestDraftStore_GetDraftsReturnsStableEmptyList(t *testing.T) {
	s := NewDraftStore()

	a := s.GetDrafts(domain.AssetTypeCard)
	b := s.GetDrafts(domain.AssetTypeCard)

	require.NotNil(t, a)
	assert.Empty(t, a)
	assert.True(t, domain.SameDraftList(a, b))
}

func TestDraftStore_SetDraftsNotifiesOnChangeOnly(t *testing.T) {
	s := NewDraftStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	list := []domain.Draft{accountDraft("l1", "a1")}
	s.SetDrafts(domain.AssetTypeAccount, list)
	assert.Equal(t, 1, calls)

	s.SetDrafts(domain.AssetTypeAccount, list)
	assert.Equal(t, 1, calls, "setting the same list must not notify")

	copied := append([]domain.Draft(nil), list...)
	s.SetDrafts(domain.AssetTypeAccount, copied)
	assert.Equal(t, 2, calls, "a new list with equal content is a change")

	got := s.GetDrafts(domain.AssetTypeAccount)
	assert.True(t, domain.SameDraftList(got, copied))
}

func TestDraftStore_SetDraftsNilIsEmpty(t *testing.T) {
	s := NewDraftStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.SetDrafts(domain.AssetTypeAccount, nil)

	assert.Equal(t, 0, calls)
	assert.NotNil(t, s.GetDrafts(domain.AssetTypeAccount))
}

func TestDraftStore_DeletedOriginalIDs(t *testing.T) {
	s := NewDraftStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	assert.Empty(t, s.GetDeletedOriginalIDs(domain.AssetTypeAccount))

	ids := domain.NewIDSet("a1")
	s.SetDeletedOriginalIDs(domain.AssetTypeAccount, ids)
	assert.Equal(t, 1, calls)

	s.SetDeletedOriginalIDs(domain.AssetTypeAccount, domain.NewIDSet("a1"))
	assert.Equal(t, 1, calls, "same membership must not notify")

	ids["a2"] = struct{}{}
	assert.False(t, s.GetDeletedOriginalIDs(domain.AssetTypeAccount).Has("a2"), "store keeps its own copy")

	s.SetDeletedOriginalIDs(domain.AssetTypeAccount, nil)
	assert.Equal(t, 2, calls)
	assert.Empty(t, s.GetDeletedOriginalIDs(domain.AssetTypeAccount))
}

func TestDraftStore_ClearDrafts(t *testing.T) {
	s := NewDraftStore()
	s.SetDrafts(domain.AssetTypeAccount, []domain.Draft{accountDraft("l1", "a1")})
	s.SetDeletedOriginalIDs(domain.AssetTypeAccount, domain.NewIDSet("a2"))

	calls := 0
	s.Subscribe(func() { calls++ })

	s.ClearDrafts(domain.AssetTypeAccount)
	assert.Equal(t, 1, calls)
	assert.Empty(t, s.GetDrafts(domain.AssetTypeAccount))
	assert.Empty(t, s.GetDeletedOriginalIDs(domain.AssetTypeAccount))

	s.ClearDrafts(domain.AssetTypeAccount)
	assert.Equal(t, 1, calls, "clearing nothing must not notify")
}

func TestDraftStore_AllDrafts(t *testing.T) {
	s := NewDraftStore()
	s.SetDrafts(domain.AssetTypeAccount, []domain.Draft{accountDraft("l1", "a1")})
	s.SetDrafts(domain.AssetTypeCard, []domain.Draft{{LocalID: "c1"}})

	all := s.AllDrafts()
	require.Len(t, all, 2)

	delete(all, domain.AssetTypeCard)
	assert.Len(t, s.AllDrafts(), 2, "returned map is a copy")
}

func TestDraftStore_Unsubscribe(t *testing.T) {
	s := NewDraftStore()
	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.SetDrafts(domain.AssetTypeAccount, []domain.Draft{accountDraft("l1", "a1")})
	unsubscribe()
	unsubscribe()
	s.SetDrafts(domain.AssetTypeAccount, []domain.Draft{accountDraft("l2", "a2")})

	assert.Equal(t, 1, calls)
}

func TestDraftStore_ListenerMayReadStore(t *testing.T) {
	s := NewDraftStore()
	var seen []domain.Draft
	s.Subscribe(func() { seen = s.GetDrafts(domain.AssetTypeAccount) })

	list := []domain.Draft{accountDraft("l1", "a1")}
	s.SetDrafts(domain.AssetTypeAccount, list)

	assert.True(t, domain.SameDraftList(seen, list))
}
