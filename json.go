package expected

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// wireResult mirrors the discriminant on the wire: exactly one key is set.
// Raw messages keep an explicit null payload distinguishable from an absent
// key.
type wireResult struct {
	Value json.RawMessage `json:"value,omitempty"`
	Error json.RawMessage `json:"error,omitempty"`
}

// MarshalJSON encodes the live payload as an object holding a single "value"
// or "error" key. The payload type must be marshalable itself; [Unit] encodes
// as an empty object.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	var (
		wire wireResult
		err  error
	)

	if r.fail {
		wire.Error, err = json.Marshal(r.err)
	} else {
		wire.Value, err = json.Marshal(r.val)
	}

	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes an object holding exactly one of the "value" and
// "error" keys. On success the previous contents of r are replaced entirely;
// on error r is left unchanged.
func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var wire wireResult

	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	switch {
	case wire.Value != nil && wire.Error != nil:
		return errors.New("expected: both value and error keys are present")

	case wire.Error != nil:
		var e E
		if err := json.Unmarshal(wire.Error, &e); err != nil {
			return fmt.Errorf("unmarshal failure payload: %w", err)
		}

		*r = Result[T, E]{err: e, fail: true}

	case wire.Value != nil:
		var v T
		if err := json.Unmarshal(wire.Value, &v); err != nil {
			return fmt.Errorf("unmarshal success payload: %w", err)
		}

		*r = Result[T, E]{val: v}

	default:
		return errors.New("expected: neither value nor error key is present")
	}

	return nil
}
