package usecase

import "fmt"

// The booking flows abort with one of these typed failures; handlers map
// them onto HTTP status codes with errors.As. Validation, scheduling and
// conflict errors are detected before any write and need no cleanup.

// ValidationError rejects malformed input or an unmet business rule such
// as the motorhome minimum stay. Maps to 400.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Msg }

// SchedulingError rejects dates that violate lead-time rules. Maps to 400.
type SchedulingError struct {
	Msg string
}

func (e *SchedulingError) Error() string { return e.Msg }

// ConflictError rejects a candidate range that overlaps an existing
// active reservation. Maps to 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// NotFoundError covers unknown resources and unknown cancellation
// tokens. An expired or already-used token is indistinguishable from one
// that never existed. Maps to 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// PersistenceError is a store failure. It aborts the whole operation
// when it happens before any side effect. Maps to 500.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }

// UpstreamError is a failure of an external provider on the critical
// path (uploads, contact relay). Calendar and email failures after the
// reservation is committed are logged instead. Maps to 500.
type UpstreamError struct {
	Service string
	Err     error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("%s: %v", e.Service, e.Err) }
func (e *UpstreamError) Unwrap() error { return e.Err }
