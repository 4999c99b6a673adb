package collection

import "github.com/kena741/lolelink-admin/internal/core/domain"

// Status tracks the envelope around one remote operation:
// idle → pending → (fulfilled | rejected) → idle.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusFulfilled
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFulfilled:
		return "fulfilled"
	case StatusRejected:
		return "rejected"
	default:
		return "idle"
	}
}

// Outcome is the resolved envelope. A fulfilled outcome carries the typed
// payload; a rejected one carries the operation error whose message is the
// backend text when present, else the per-operation fallback. Callers get
// the same determination from the returned error as the store publishes to
// its own state.
type Outcome[T any] struct {
	Status  Status
	Payload T
	Failure *domain.OperationError
}

// Message returns the rejection text, empty when fulfilled.
func (o Outcome[T]) Message() string {
	if o.Failure == nil {
		return ""
	}
	return o.Failure.Message
}

func (o Outcome[T]) Rejected() bool {
	return o.Status == StatusRejected
}

func resolve[T any](op, entity string, payload T, err error) Outcome[T] {
	if err != nil {
		return Outcome[T]{Status: StatusRejected, Failure: domain.NewOperationError(op, entity, err)}
	}
	return Outcome[T]{Status: StatusFulfilled, Payload: payload}
}
