package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidAge is returned when age is neither a JSON number nor a JSON string.
var ErrInvalidAge = errors.New("age must be a number or a string")

// Age holds a user's age exactly as the client sent it.
//
// Clients may send either a number (30) or a string ("30"); whichever form
// arrives is echoed back unchanged. Internally the value is kept as its JSON
// text, which is also how it is stored in SQL backends.
type Age struct {
	raw string
}

// NumericAge returns an Age that encodes as a JSON number.
func NumericAge(n int) Age {
	return Age{raw: strconv.Itoa(n)}
}

// TextAge returns an Age that encodes as a JSON string.
func TextAge(s string) Age {
	b, _ := json.Marshal(s)
	return Age{raw: string(b)}
}

// IsZero reports whether no age was supplied (absent or null).
func (a Age) IsZero() bool {
	return a.raw == ""
}

// IsText reports whether the age was sent as a JSON string.
func (a Age) IsText() bool {
	return len(a.raw) > 0 && a.raw[0] == '"'
}

// Truthy reports whether the age counts as present: a non-zero number or a
// non-empty string. A number too large for float64 is still non-zero.
func (a Age) Truthy() bool {
	switch {
	case a.IsZero():
		return false
	case a.IsText():
		return a.raw != `""`
	default:
		f, err := strconv.ParseFloat(a.raw, 64)
		if errors.Is(err, strconv.ErrRange) {
			return true
		}
		return err == nil && f != 0
	}
}

// String returns the JSON text of the age ("" when unset).
func (a Age) String() string {
	return a.raw
}

func (a *Age) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		a.raw = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("age: %w", err)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("age: %w", err)
		}
	default:
		return ErrInvalidAge
	}

	a.raw = string(data)
	return nil
}

func (a Age) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return []byte("null"), nil
	}
	return []byte(a.raw), nil
}

// Value implements driver.Valuer so Age can be written with database/sql.
func (a Age) Value() (driver.Value, error) {
	return a.raw, nil
}

// Scan implements sql.Scanner.
func (a *Age) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		a.raw = ""
	case string:
		a.raw = v
	case []byte:
		a.raw = string(v)
	default:
		return fmt.Errorf("age: cannot scan %T", src)
	}
	return nil
}
