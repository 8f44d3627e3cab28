package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrFieldMissing is returned when a required field is absent from a JSON object
	ErrFieldMissing = errors.New("value: JSON field missing")

	// ErrJSONType is returned when a JSON token has the wrong type for the target value
	ErrJSONType = errors.New("value: unexpected JSON type")
)

// UnmarshalField populates v from the named field of a JSON object.
func UnmarshalField(object []byte, name string, v json.Unmarshaler) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(object, &fields); err != nil {
		return fmt.Errorf("%w: expected object: %v", ErrJSONType, err)
	}
	raw, ok := fields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldMissing, name)
	}
	if err := v.UnmarshalJSON(raw); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

// WriteJSON emits v as a single JSON token followed by a newline.
func WriteJSON(w io.Writer, v json.Marshaler) error {
	return json.NewEncoder(w).Encode(v)
}
