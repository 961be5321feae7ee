package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.June, 10), d)

	d, err = ParseDate("2025-06-10T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", d.String())

	_, err = ParseDate("10/06/2025")
	assert.Error(t, err)
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("2024-02-27")
	assert.Equal(t, "2024-03-01", d.AddDays(3).String())
	assert.Equal(t, 3, d.DaysUntil(d.AddDays(3)))
	assert.Equal(t, -1, d.DaysUntil(d.AddDays(-1)))
	assert.Equal(t, "2024-02-01", d.MonthStart().String())
	assert.Equal(t, "2024-02-29", d.MonthEnd().String())
	assert.Equal(t, "2025-12-31", MustParseDate("2025-12-05").MonthEnd().String())
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		In  Date `json:"in"`
		Out Date `json:"out"`
		Gap Date `json:"gap"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"in":"2025-06-11","out":null,"gap":""}`), &payload))
	assert.Equal(t, "2025-06-11", payload.In.String())
	assert.True(t, payload.Out.IsZero())
	assert.True(t, payload.Gap.IsZero())

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"in":"2025-06-11","out":null,"gap":null}`, string(raw))
}

func TestAmountJSON(t *testing.T) {
	var v struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"5000.00","b":7000.5,"c":null}`), &v))
	assert.Equal(t, Amount(5000), v.A)
	assert.Equal(t, Amount(7000.5), v.B)
	assert.Equal(t, Amount(0), v.C)
	assert.Equal(t, "7000.50", v.B.String())

	raw, err := json.Marshal(Amount(1234.567))
	require.NoError(t, err)
	assert.Equal(t, "1234.57", string(raw))
}
