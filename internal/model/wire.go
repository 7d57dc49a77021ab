package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedWire is returned when a backend wrapper value cannot be decoded.
var ErrMalformedWire = errors.New("malformed wire value")

// Decimal is a backend decimal. The API emits {"$numberDecimal": "12.50"};
// bare strings and numbers are accepted too.
type Decimal struct {
	Value string
	Valid bool
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Decimal{}
		return nil
	}
	switch b[0] {
	case '{':
		var w struct {
			NumberDecimal *string `json:"$numberDecimal"`
		}
		if err := json.Unmarshal(b, &w); err != nil {
			return fmt.Errorf("%w: decimal: %v", ErrMalformedWire, err)
		}
		if w.NumberDecimal == nil {
			return fmt.Errorf("%w: decimal wrapper without $numberDecimal", ErrMalformedWire)
		}
		*d = Decimal{Value: *w.NumberDecimal, Valid: true}
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: decimal: %v", ErrMalformedWire, err)
		}
		*d = Decimal{Value: s, Valid: true}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("%w: decimal: %v", ErrMalformedWire, err)
		}
		*d = Decimal{Value: n.String(), Valid: true}
	}
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]string{"$numberDecimal": d.Value})
}

// Date is a backend timestamp. The API emits {"$date": "2024-05-01T10:00:00Z"};
// bare strings are accepted too.
type Date struct {
	Value string
	Valid bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: date: %v", ErrMalformedWire, err)
		}
		*d = Date{Value: s, Valid: true}
		return nil
	}
	var w struct {
		Date *json.RawMessage `json:"$date"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("%w: date: %v", ErrMalformedWire, err)
	}
	if w.Date == nil {
		return fmt.Errorf("%w: date wrapper without $date", ErrMalformedWire)
	}
	// Extended JSON may nest once more: {"$date": {"$numberLong": "..."}}.
	var s string
	if err := json.Unmarshal(*w.Date, &s); err == nil {
		*d = Date{Value: s, Valid: true}
		return nil
	}
	var long struct {
		NumberLong string `json:"$numberLong"`
	}
	if err := json.Unmarshal(*w.Date, &long); err != nil || long.NumberLong == "" {
		return fmt.Errorf("%w: unsupported $date payload", ErrMalformedWire)
	}
	*d = Date{Value: long.NumberLong, Valid: true}
	return nil
}
