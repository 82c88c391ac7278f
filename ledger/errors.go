package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// Error types for ledger operations

// NotFoundError is returned when a remove operation references a record
// identity that is no longer present in its ledger.
type NotFoundError struct {
	Kind string // "delivery", "deposit" or "debit note"
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s record %s not found", e.Kind, e.ID)
}

// ValidationError is returned when an append operation receives a value
// outside the constraints of the data model.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
