// Package money stores monetary values as integer hundredths so sums and
// products stay exact; the wire form is a two-decimal string.
package money

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAmount = errors.New("invalid monetary amount")
	ErrOutOfRange    = errors.New("monetary amount out of range")
)

// MaxCents bounds amounts built from floats; above it float64 no longer
// holds every whole cent.
const MaxCents = 1 << 53

type Amount int64

func FromCents(cents int64) Amount {
	return Amount(cents)
}

// Parse accepts "12", "12.5", "12.50" and a leading minus sign. More than two
// fractional digits are rounded half away from zero.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return FromFloat(f)
}

func FromFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(f * 100)
	if math.Abs(cents) > MaxCents {
		return 0, ErrOutOfRange
	}
	return Amount(cents), nil
}

func (a Amount) Cents() int64 {
	return int64(a)
}

func (a Amount) Float64() float64 {
	return float64(a) / 100
}

func (a Amount) Mul(n int64) (Amount, error) {
	if a == 0 || n == 0 {
		return 0, nil
	}
	p := int64(a) * n
	if p/n != int64(a) || (n == -1 && int64(a) == math.MinInt64) {
		return 0, ErrOutOfRange
	}
	return Amount(p), nil
}

func (a Amount) Sub(b Amount) Amount {
	return a - b
}

func (a Amount) IsNegative() bool {
	return a < 0
}

func (a Amount) String() string {
	sign := ""
	v := uint64(a)
	if a < 0 {
		sign = "-"
		v = -v
	}
	return sign + strconv.FormatUint(v/100, 10) + "." + leftPad2(v%100)
}

func leftPad2(v uint64) string {
	if v < 10 {
		return "0" + strconv.FormatUint(v, 10)
	}
	return strconv.FormatUint(v, 10)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both "12.50" and 12.5.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidAmount
		}
		parsed, err := Parse(s)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return ErrInvalidAmount
	}
	parsed, err := FromFloat(f)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
