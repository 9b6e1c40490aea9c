package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray stores a string slice in a jsonb column. Goals,
// allergens, meal types, and the other tag lists on profiles and dishes all
// use it; on sqlite (tests) the same JSON lands in a text column.
type JSONBStringArray []string

// Value encodes the slice as JSON, writing [] rather than null for empty.
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan accepts both []byte and string column values; nil resets to empty.
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}
