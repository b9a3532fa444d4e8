package filters

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes a selection as the persisted JSON record.
// Nil sets are written as [] so the record always carries all four fields.
func Marshal(s Selection) ([]byte, error) {
	return json.Marshal(s.Normalize())
}

// Unmarshal decodes a persisted record. Missing fields default to empty and
// the result is normalized.
func Unmarshal(data []byte) (Selection, error) {
	var s Selection
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), err
	}
	return s.Normalize(), nil
}
