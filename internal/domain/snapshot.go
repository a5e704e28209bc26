package domain

// EntityPosition is everything one entity holds, grouped by product type.
type EntityPosition struct {
	EntityID string
	Products map[AssetType][]Entry
}

// Snapshot is the last known state of all positions, keyed by entity id.
type Snapshot struct {
	Positions map[string]*EntityPosition
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Positions: make(map[string]*EntityPosition)}
}

// ManualEntries returns the manual entries of the given type held by entityID.
func (s *Snapshot) ManualEntries(entityID string, t AssetType) []Entry {
	if s == nil {
		return nil
	}
	pos, ok := s.Positions[entityID]
	if !ok || pos == nil {
		return nil
	}
	var out []Entry
	for _, e := range pos.Products[t] {
		if e.EntrySource().IsManual() {
			out = append(out, e)
		}
	}
	return out
}

// WithPosition returns a copy of the snapshot with one entity's position replaced.
func (s *Snapshot) WithPosition(pos *EntityPosition) *Snapshot {
	out := NewSnapshot()
	if s != nil {
		for id, p := range s.Positions {
			out.Positions[id] = p
		}
	}
	if pos != nil {
		out.Positions[pos.EntityID] = pos
	}
	return out
}
