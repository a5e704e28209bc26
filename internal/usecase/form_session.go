package usecase

import (
	"github.com/iho/positiondraft/internal/domain"
)

// FormSession is an open create or edit form.
type FormSession struct {
	editing *domain.Draft
	initial domain.Form
	form    domain.Form
	errors  domain.FieldErrors
}

func newFormSession(form domain.Form, editing *domain.Draft) *FormSession {
	return &FormSession{
		editing: editing,
		initial: form.Clone(),
		form:    form.Clone(),
	}
}

// IsEdit reports whether the form edits an existing draft.
func (s *FormSession) IsEdit() bool { return s.editing != nil }

// EditingLocalID returns the local id of the edited draft, or "".
func (s *FormSession) EditingLocalID() string {
	if s.editing == nil {
		return ""
	}
	return s.editing.LocalID
}

// Form returns a copy of the current values.
func (s *FormSession) Form() domain.Form { return s.form.Clone() }

// Set updates one field and clears its error.
func (s *FormSession) Set(field, value string) {
	s.form[field] = value
	delete(s.errors, field)
}

// SetAll replaces several fields at once.
func (s *FormSession) SetAll(values map[string]string) {
	for k, v := range values {
		s.Set(k, v)
	}
}

// Errors returns the field errors of the last failed submit.
func (s *FormSession) Errors() domain.FieldErrors { return s.errors }

// HasUnsavedChanges compares the serialized form with its state when opened.
func (s *FormSession) HasUnsavedChanges() bool {
	return CanonicalJSON(s.initial) != CanonicalJSON(s.form)
}

// ChangedFields lists the fields edited since the form was opened.
func (s *FormSession) ChangedFields() []string {
	return changedFields(s.initial, s.form)
}
