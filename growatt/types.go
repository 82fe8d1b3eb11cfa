package growatt

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// The Growatt API reports missing values inconsistently: JSON null, an empty
// string, or the literal strings "null" and "None". All scalar wrapper types
// below decode those sentinels to an absent value while keeping present falsy
// values (0, false, "0") distinguishable from absence.

var nullSentinels = [][]byte{
	[]byte(`null`),
	[]byte(`""`),
	[]byte(`"null"`),
	[]byte(`"None"`),
}

func isNullSentinel(b []byte) bool {
	b = bytes.TrimSpace(b)
	for _, s := range nullSentinels {
		if bytes.Equal(b, s) {
			return true
		}
	}

	return false
}

// unquote strips surrounding JSON quotes so numeric values arriving as
// strings ("0.5") decode the same as bare numbers (0.5).
func unquote(b []byte) ([]byte, error) {
	if len(b) == 0 || b[0] != '"' {
		return b, nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// Float is a float64 that may be absent.
type Float struct {
	Float64 float64
	Valid   bool
}

// FloatOf returns a present Float.
func FloatOf(v float64) Float {
	return Float{Float64: v, Valid: true}
}

func (f *Float) UnmarshalJSON(b []byte) error {
	*f = Float{}

	if isNullSentinel(b) {
		return nil
	}

	raw, err := unquote(b)
	if err != nil {
		return errors.Wrap(err, "invalid float value")
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return errors.Errorf("invalid float value: %s", b)
	}

	f.Float64 = v
	f.Valid = true

	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(f.Float64)
}

// Int is an int64 that may be absent.
type Int struct {
	Int64 int64
	Valid bool
}

// IntOf returns a present Int.
func IntOf(v int64) Int {
	return Int{Int64: v, Valid: true}
}

func (i *Int) UnmarshalJSON(b []byte) error {
	*i = Int{}

	if isNullSentinel(b) {
		return nil
	}

	raw, err := unquote(b)
	if err != nil {
		return errors.Wrap(err, "invalid integer value")
	}

	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		// Some counters arrive as "100.0". Fall back to float and truncate.
		fv, ferr := strconv.ParseFloat(string(raw), 64)
		if ferr != nil {
			return errors.Errorf("invalid integer value: %s", b)
		}

		v = int64(fv)
	}

	i.Int64 = v
	i.Valid = true

	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(i.Int64)
}

// Bool is a bool that may be absent. The vendor encodes booleans as true/false,
// 0/1 and occasionally "0"/"1".
type Bool struct {
	Bool  bool
	Valid bool
}

// BoolOf returns a present Bool.
func BoolOf(v bool) Bool {
	return Bool{Bool: v, Valid: true}
}

func (v *Bool) UnmarshalJSON(b []byte) error {
	*v = Bool{}

	if isNullSentinel(b) {
		return nil
	}

	raw, err := unquote(b)
	if err != nil {
		return errors.Wrap(err, "invalid boolean value")
	}

	switch string(raw) {
	case "true":
		v.Bool = true
	case "false":
		v.Bool = false
	default:
		n, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return errors.Errorf("invalid boolean value: %s", b)
		}

		v.Bool = n != 0
	}

	v.Valid = true

	return nil
}

func (v Bool) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(v.Bool)
}

// String is a string that may be absent. An empty string on the wire counts
// as absent, matching the vendor convention of padding unset fields with "".
type String struct {
	String string
	Valid  bool
}

// StringOf returns a present String.
func StringOf(v string) String {
	return String{String: v, Valid: true}
}

func (s *String) UnmarshalJSON(b []byte) error {
	*s = String{}

	if isNullSentinel(b) {
		return nil
	}

	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		// Tolerate bare numbers in string-typed fields ("model": 269545841).
		raw := bytes.TrimSpace(b)
		if len(raw) > 0 && raw[0] != '{' && raw[0] != '[' {
			s.String = string(raw)
			s.Valid = true

			return nil
		}

		return errors.Wrap(err, "invalid string value")
	}

	s.String = v
	s.Valid = true

	return nil
}

func (s String) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte(`null`), nil
	}

	return json.Marshal(s.String)
}
