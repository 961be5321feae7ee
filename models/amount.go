package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Amount is a money value in rupees. The API serialises decimals as
// strings ("5000.00") in some places and numbers in others.
type Amount float64

func (a Amount) Float() float64 {
	return float64(a)
}

// Round2 rounds to paise.
func (a Amount) Round2() Amount {
	return Amount(math.Round(float64(a)*100) / 100)
}

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a.Round2()), 'f', 2, 64)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a.Round2()), 'f', -1, 64)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid amount %s: %w", raw, err)
		}
		if s == "" {
			*a = 0
			return nil
		}
		raw = s
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", raw, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid amount %s", raw)
	}
	*a = Amount(f)
	return nil
}

// AmountPtr is a helper for optional prices.
func AmountPtr(v float64) *Amount {
	a := Amount(v)
	return &a
}
