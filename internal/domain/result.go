package domain

// Failure reasons shared across adapters.
const (
	ReasonTimeout   = "timeout"
	ReasonCancelled = "cancelled"
)

// Result is the adapter-to-scorer contract: either success with data or a
// typed failure. Adapters never let errors escape as panics or returned
// errors; scorers handle both arms and substitute a zero/poor category
// result on failure.
type Result[T any] struct {
	data    T
	failure string
	failed  bool
}

// Ok wraps data in a successful Result.
func Ok[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Fail wraps a failure reason in a failed Result.
func Fail[T any](reason string) Result[T] {
	if reason == "" {
		reason = "unknown failure"
	}
	return Result[T]{failure: reason, failed: true}
}

// OK reports whether the result carries data.
func (r Result[T]) OK() bool { return !r.failed }

// Data returns the carried data. It is the zero value on failure.
func (r Result[T]) Data() T { return r.data }

// Reason returns the failure reason, or "" on success.
func (r Result[T]) Reason() string { return r.failure }
