package cli

import (
	"bytes"
	"strings"
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuote(t *testing.T) {
	fcolor.NoColor = true

	var out bytes.Buffer
	err := runQuote(&out, quoteOptions{
		base:        5000,
		weekend:     7000,
		weekendDays: []int{4, 5},
		from:        "2025-06-11",
		to:          "2025-06-14",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "2025-06-11")
	assert.NotContains(t, lines[0], "weekend")
	assert.Contains(t, lines[2], "7000.00")
	assert.Contains(t, lines[2], "weekend")
	assert.Equal(t, "3 nights, total 17000.00", lines[3])
}

func TestRunQuoteRejectsEmptyStay(t *testing.T) {
	var out bytes.Buffer
	err := runQuote(&out, quoteOptions{base: 5000, from: "2025-06-10", to: "2025-06-10"})

	assert.Error(t, err)
	assert.Empty(t, out.String())
}
