package domain

// DraftTokenPrefix prefixes link values that point at a draft which has no
// backend id yet.
const DraftTokenPrefix = "draft:"

// Draft is an entry staged for saving together with its staging metadata.
type Draft struct {
	// LocalID identifies the draft for the whole session and never changes.
	LocalID string
	// OriginalID is the backend id of the entry this draft edits; empty for new entries.
	OriginalID string
	Entity     EntityRef
	EntityName string
	Entry      Entry
}

// IsNew reports whether the draft has no backend counterpart.
func (d Draft) IsNew() bool { return d.OriginalID == "" }

// DraftToken is the link value other drafts use to reference d before it is saved.
func (d Draft) DraftToken() string { return DraftTokenPrefix + d.LocalID }

// ReferenceIDs returns every value a link field may hold when pointing at d.
func (d Draft) ReferenceIDs() []string {
	ids := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if d.Entry != nil {
		add(d.Entry.EntryID())
	}
	add(d.OriginalID)
	add(d.LocalID)
	add(d.DraftToken())
	return ids
}

// IDSet is a set of entry ids.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Equal reports whether both sets have the same members.
func (s IDSet) Equal(o IDSet) bool {
	if len(s) != len(o) {
		return false
	}
	for id := range s {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// SameDraftList reports whether a and b are the same list value, not merely
// equal contents. Lists are replaced, never mutated in place, so identity
// tells whether anything changed.
func SameDraftList(a, b []Draft) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
