package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList stores an ordered list of strings in a single text column
// as JSON. Legacy rows may hold a bare string instead of an array;
// scanning tolerates both shapes so old orders keep loading.
type StringList []string

// Scan implements sql.Scanner.
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		*s = StringList{}
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
			return fmt.Errorf("invalid string list: %w", err)
		}
		*s = values
		return nil
	}

	// Bare string from a legacy row.
	*s = StringList{trimmed}
	return nil
}

// Value implements driver.Valuer. New writes are always JSON arrays,
// keeping the column consistent even when legacy rows used a string.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
