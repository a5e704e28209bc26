package domain

import "strings"

// Entity is a financial institution that owns positions.
type Entity struct {
	ID      string
	Name    string
	Pending bool
}

type entityKind uint8

const (
	entityExisting entityKind = iota + 1
	entityPending
)

// pendingKeyPrefix marks the selection key of an entity that will be created on save.
const pendingKeyPrefix = "new-"

// EntityRef points at the owner of a draft: either an entity the backend
// already knows, or one that will be created when the draft is saved.
// The zero value refers to nothing.
type EntityRef struct {
	kind  entityKind
	id    string
	token string
	name  string
}

// ExistingEntity refers to a backend entity by id.
func ExistingEntity(id string) EntityRef {
	return EntityRef{kind: entityExisting, id: id}
}

// PendingEntity refers to an entity that does not exist yet. Drafts sharing
// the same token belong to the same future entity.
func PendingEntity(token, name string) EntityRef {
	return EntityRef{kind: entityPending, token: token, name: strings.TrimSpace(name)}
}

// IsZero reports whether the ref is unset.
func (r EntityRef) IsZero() bool { return r.kind == 0 }

// IsPending reports whether the entity is still to be created.
func (r EntityRef) IsPending() bool { return r.kind == entityPending }

// ID returns the backend id of an existing entity, or "" for a pending one.
func (r EntityRef) ID() string {
	if r.kind == entityExisting {
		return r.id
	}
	return ""
}

// Token returns the pending token, or "" for an existing entity.
func (r EntityRef) Token() string {
	if r.kind == entityPending {
		return r.token
	}
	return ""
}

// PendingName is the name the entity will be created with.
func (r EntityRef) PendingName() string {
	if r.kind == entityPending {
		return r.name
	}
	return ""
}

// WithPendingName returns a copy carrying a new pending name. Existing refs are returned unchanged.
func (r EntityRef) WithPendingName(name string) EntityRef {
	if r.kind != entityPending {
		return r
	}
	r.name = strings.TrimSpace(name)
	return r
}

// Key is a stable identifier usable for grouping and for entity pickers.
func (r EntityRef) Key() string {
	switch r.kind {
	case entityExisting:
		return r.id
	case entityPending:
		return pendingKeyPrefix + r.token
	default:
		return ""
	}
}

// SameEntity reports whether both refs designate the same owner.
func (r EntityRef) SameEntity(o EntityRef) bool {
	return r.kind == o.kind && r.Key() == o.Key()
}
