package model

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// FlexFloat is a number the middleware sends either as a JSON number or as a
// numeric string (e.g. throttle "100.00", percentage "0.1234").
type FlexFloat float64

// UnmarshalJSON accepts numbers, numeric strings and null
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return goerr.Wrap(err, "failed to decode numeric string")
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return goerr.Wrap(err, "invalid numeric string", goerr.V("value", s))
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return goerr.Wrap(err, "failed to decode number")
	}
	*f = FlexFloat(v)
	return nil
}

// Float64 returns the value as float64
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt is an integer that may arrive as a JSON number or numeric string
type FlexInt int64

// UnmarshalJSON accepts numbers, numeric strings and null
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*n = FlexInt(f)
	return nil
}

// Int64 returns the value as int64
func (n FlexInt) Int64() int64 {
	return int64(n)
}

// RankChange is the "changeInRank" field of a top crasher entry. It is either
// the literal "new" or a signed integer.
type RankChange struct {
	New   bool
	Value int
}

// UnmarshalJSON accepts "new", numbers and numeric strings
func (r *RankChange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == "new" {
		*r = RankChange{New: true}
		return nil
	}

	var n FlexInt
	if err := n.UnmarshalJSON(data); err != nil {
		return goerr.Wrap(err, "invalid changeInRank")
	}
	*r = RankChange{Value: int(n)}
	return nil
}

// MarshalJSON writes "new" or the integer change
func (r RankChange) MarshalJSON() ([]byte, error) {
	if r.New {
		return []byte(`"new"`), nil
	}
	return []byte(strconv.Itoa(r.Value)), nil
}

// String returns "new" or the integer change
func (r RankChange) String() string {
	if r.New {
		return "new"
	}
	return strconv.Itoa(r.Value)
}
