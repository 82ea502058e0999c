package model

import (
	"bytes"
	"encoding/json"
)

// OptionalString is a nullable field of a partial update. Set records that
// the key was present in the request, so an explicit null (Set, nil Value)
// can be told apart from an omitted key.
type OptionalString struct {
	Set   bool
	Value *string
}

// SetString returns an OptionalString that writes v.
func SetString(v string) OptionalString {
	return OptionalString{Set: true, Value: &v}
}

// SetNull returns an OptionalString that clears the column.
func SetNull() OptionalString {
	return OptionalString{Set: true}
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
