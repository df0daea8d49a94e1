package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrImportFormat indicates an import payload that is not valid JSON or is
// missing one of the required top-level collections. Imports fail whole; no
// partial merge happens.
var ErrImportFormat = errors.New("invalid import format")

// ValidationError rejects a mutation with a field-level message. The mutation
// is dropped entirely; no partial record is ever created.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
