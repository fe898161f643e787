package types

import "encoding/json"

// ------------------------------
// Payloads
// ------------------------------

// Object is a JSON object returned by the API, parsed but otherwise untouched.
type Object = map[string]any

// Decode re-encodes obj into v so callers can bind a payload to their own
// typed structs.
func Decode(obj Object, v any) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
