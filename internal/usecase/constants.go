package usecase

import "time"

const (
	// DefaultSaveTimeout bounds a whole batched save, all entity requests included.
	DefaultSaveTimeout = 30 * time.Second

	// Messages shown through the Notifier.
	msgSaveFailed         = "Could not save your changes. Please try again."
	msgInvalidEntry       = "Some values could not be read. Please check the form."
	msgMissingEntityName  = "A new entity is missing its name."
	msgConfirmCancel      = "Discard all unsaved changes?"
	msgConfirmCloseForm   = "Discard the changes made in this form?"
	msgConfirmDelete      = "Delete %s?"
	msgEntityRequired     = "Select an entity"
	msgEntityUnknown      = "Selected entity does not exist"
	msgEntityNameRequired = "Enter a name for the new entity"
	msgEntityNameTaken    = "An entity with this name already exists"
)
