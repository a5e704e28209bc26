package domain

// PayloadEntry is the wire shape of one entry in a save request.
type PayloadEntry map[string]any

// PositionUpdate replaces the manual entries of one entity. Products holds the
// complete replacement set for every product type it names.
type PositionUpdate struct {
	Entity        EntityRef
	NewEntityName string
	Products      map[AssetType][]PayloadEntry
}

// CreatesEntity reports whether saving the update creates its owning entity.
func (u PositionUpdate) CreatesEntity() bool { return u.Entity.IsPending() }
