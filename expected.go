// Package expected provides a container that holds either a success payload
// of type T or a failure payload of type E, never both and never neither.
// The zero value of a [Result] is a success holding T's zero value.
package expected

import "fmt"

// Panic messages raised on invalid-state access.
const (
	msgValueOnFailure = "expected: Value called on failure result"
	msgErrOnSuccess   = "expected: Err called on success result"
)

// Unit is the placeholder success type: a marker carrying no data, used when
// only the failure payload is meaningful. See [Unexpected] and [Into].
type Unit struct{}

// Result holds exactly one of two payloads: a success value of type T or a
// failure value of type E. Which one is live is tracked by an internal
// discriminant that every constructor sets together with both fields, so no
// reachable Result ever has zero or two live payloads.
//
// A Result is a plain value. Assignment copies it, payloads follow Go's usual
// value semantics, and unsynchronized concurrent reads of an instance that is
// no longer written to are safe.
type Result[T, E any] struct {
	val T
	err E
	// fail is inverted so the zero value is a live success holding T's zero
	// value, mirroring default construction of the success alternative.
	fail bool
}

// Ok returns a success Result holding value. The type parameters are ordered
// failure-first so that call sites spell only the parameter that cannot be
// inferred: Ok[error](42) builds a Result[int, error].
func Ok[E, T any](value T) Result[T, E] {
	return Result[T, E]{val: value}
}

// Err returns a failure Result holding err: Err[int]("boom") builds a
// Result[int, string].
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, fail: true}
}

// From converts a (value, error) return pair into a Result. A nil error
// yields a success holding value; a non-nil error yields a failure holding
// err and discards value.
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Result[T, error]{err: err, fail: true}
	}

	return Result[T, error]{val: value}
}

// Unexpected wraps a failure payload into a failure-only Result whose success
// type is the [Unit] placeholder. Use [Into] to give it a concrete success
// type later. The failure type is inferred, so Unexpected("boom") builds a
// Result[Unit, string].
func Unexpected[E any](err E) Result[Unit, E] {
	return Err[Unit](err)
}

// Into converts a failure-only Result into one with success type T. A failure
// keeps its payload; a success becomes a success holding T's zero value,
// since [Unit] carries nothing to convert. Conversion between two concrete
// success types is not provided.
func Into[T, E any](r Result[Unit, E]) Result[T, E] {
	if r.fail {
		return Result[T, E]{err: r.err, fail: true}
	}

	return Result[T, E]{}
}

// HasValue reports whether the success payload is live. It is the validity
// check to use in conditional contexts.
func (r Result[T, E]) HasValue() bool {
	return !r.fail
}

// Value returns the success payload.
// It panics when the failure payload is live.
func (r Result[T, E]) Value() T {
	if r.fail {
		panic(msgValueOnFailure)
	}

	return r.val
}

// Err returns the failure payload.
// It panics when the success payload is live.
func (r Result[T, E]) Err() E {
	if !r.fail {
		panic(msgErrOnSuccess)
	}

	return r.err
}

// ValueOr returns the success payload, or fallback when the failure payload
// is live.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.fail {
		return fallback
	}

	return r.val
}

// ErrOr returns the failure payload, or fallback when the success payload is
// live.
func (r Result[T, E]) ErrOr(fallback E) E {
	if !r.fail {
		return fallback
	}

	return r.err
}

// String formats the live payload for debug output.
func (r Result[T, E]) String() string {
	if r.fail {
		return fmt.Sprintf("err(%v)", r.err)
	}

	return fmt.Sprintf("ok(%v)", r.val)
}
