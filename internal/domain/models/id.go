// internal/domain/models/id.go
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a content-repository record id. The repository returns ids as JSON
// numbers for auto-increment collections and as strings for UUID-keyed ones,
// so the decoder accepts both and normalizes to a string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*id = ID(t)
	case float64:
		*id = ID(strconv.FormatInt(int64(t), 10))
	case nil:
		*id = ""
	default:
		return fmt.Errorf("record id: unsupported JSON type %T", v)
	}
	return nil
}

func (id ID) String() string { return string(id) }

// IsZero reports whether no id is present.
func (id ID) IsZero() bool { return id == "" }
