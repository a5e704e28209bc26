package domain

import (
	"sort"
	"strings"
)

// Form holds raw user input keyed by field name.
type Form map[string]string

// Reserved form fields driving the entity selection.
const (
	FieldEntityMode    = "entity_mode"
	FieldEntityID      = "entity_id"
	FieldNewEntityName = "new_entity_name"

	EntityModeSelect = "select"
	EntityModeCreate = "create"
)

// Clone returns an independent copy.
func (f Form) Clone() Form {
	out := make(Form, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Get returns the trimmed value of a field.
func (f Form) Get(field string) string {
	return strings.TrimSpace(f[field])
}

// EntityMode returns the selected entity mode, defaulting to select.
func (f Form) EntityMode() string {
	if f.Get(FieldEntityMode) == EntityModeCreate {
		return EntityModeCreate
	}
	return EntityModeSelect
}

// FieldErrors maps a form field to a human readable message.
type FieldErrors map[string]string

// Add records msg for field unless the field already has an error.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Fields returns the fields with errors in sorted order.
func (e FieldErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
