package models

import "encoding/json"

// Optional is a tri-state update field: absent from the payload, explicitly
// null, or set to a value. The zero value means absent. encoding/json only
// invokes UnmarshalJSON for keys present in the payload, which is what makes
// the distinction observable.
type Optional[T any] struct {
	Set   bool
	Valid bool // false when the payload carried an explicit null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Valid = false
		var zero T
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// put adds the field to the patch when it was supplied at all. An explicit
// null becomes a nil value so the store clears the field.
func put[T any](patch map[string]any, key string, o Optional[T]) {
	if !o.Set {
		return
	}
	if !o.Valid {
		patch[key] = nil
		return
	}
	patch[key] = o.Value
}
