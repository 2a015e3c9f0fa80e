package court

import "fmt"

// ConflictError indicates the operation clashes with existing state, such
// as a duplicate court or a deletion blocked by active bookings.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
