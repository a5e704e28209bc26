package memory

import (
	"sync"

	"github.com/iho/positiondraft/internal/domain"
)

// emptyDrafts is returned for asset types without a list so readers that
// compare list identity see the same value on every call.
var emptyDrafts = []domain.Draft{}

// emptyIDs plays the same role for deleted ids.
var emptyIDs = domain.IDSet{}

// DraftStore implements usecase.DraftStore in memory.
type DraftStore struct {
	mu         sync.RWMutex
	drafts     map[domain.AssetType][]domain.Draft
	deletedIDs map[domain.AssetType]domain.IDSet

	listenerMu sync.Mutex
	listeners  map[uint64]func()
	nextID     uint64
}

// NewDraftStore creates an empty DraftStore.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts:     make(map[domain.AssetType][]domain.Draft),
		deletedIDs: make(map[domain.AssetType]domain.IDSet),
		listeners:  make(map[uint64]func()),
	}
}

// SetDrafts replaces the list for t and notifies subscribers.
func (s *DraftStore) SetDrafts(t domain.AssetType, drafts []domain.Draft) {
	if drafts == nil {
		drafts = emptyDrafts
	}

	s.mu.Lock()
	current, ok := s.drafts[t]
	if !ok {
		current = emptyDrafts
	}
	if domain.SameDraftList(current, drafts) {
		s.mu.Unlock()
		return
	}
	s.drafts[t] = drafts
	s.mu.Unlock()

	s.notify()
}

// GetDrafts returns the list for t, or the shared empty list.
func (s *DraftStore) GetDrafts(t domain.AssetType) []domain.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if drafts, ok := s.drafts[t]; ok {
		return drafts
	}
	return emptyDrafts
}

// ClearDrafts drops the list and deleted ids of t.
func (s *DraftStore) ClearDrafts(t domain.AssetType) {
	s.mu.Lock()
	_, hadDrafts := s.drafts[t]
	_, hadIDs := s.deletedIDs[t]
	delete(s.drafts, t)
	delete(s.deletedIDs, t)
	s.mu.Unlock()

	if hadDrafts || hadIDs {
		s.notify()
	}
}

// SetDeletedOriginalIDs stores ids for t. Subscribers are only notified when
// the membership actually changes.
func (s *DraftStore) SetDeletedOriginalIDs(t domain.AssetType, ids domain.IDSet) {
	if ids == nil {
		ids = emptyIDs
	}

	s.mu.Lock()
	current, ok := s.deletedIDs[t]
	if !ok {
		current = emptyIDs
	}
	if current.Equal(ids) {
		s.mu.Unlock()
		return
	}
	copied := make(domain.IDSet, len(ids))
	for id := range ids {
		copied[id] = struct{}{}
	}
	s.deletedIDs[t] = copied
	s.mu.Unlock()

	s.notify()
}

// GetDeletedOriginalIDs returns the deleted ids of t. Callers must not modify the result.
func (s *DraftStore) GetDeletedOriginalIDs(t domain.AssetType) domain.IDSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ids, ok := s.deletedIDs[t]; ok {
		return ids
	}
	return emptyIDs
}

// AllDrafts returns a shallow copy of the per-type lists.
func (s *DraftStore) AllDrafts() map[domain.AssetType][]domain.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.AssetType][]domain.Draft, len(s.drafts))
	for t, d := range s.drafts {
		out[t] = d
	}
	return out
}

// Subscribe registers listener and returns a func removing it.
func (s *DraftStore) Subscribe(listener func()) func() {
	s.listenerMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.listenerMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenerMu.Lock()
			delete(s.listeners, id)
			s.listenerMu.Unlock()
		})
	}
}

// notify runs every listener outside the locks so listeners may read the store.
func (s *DraftStore) notify() {
	s.listenerMu.Lock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenerMu.Unlock()

	for _, l := range listeners {
		l()
	}
}
