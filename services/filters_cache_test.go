package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/models"
)

func TestLastCalendarView(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	view, err := GetLastCalendarView(ctx, cache, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, CalendarView{}, view)

	require.NoError(t, SaveLastCalendarView(ctx, cache, "sid-1", CalendarView{Month: "2025-06", VillaID: 3}))
	view, err = GetLastCalendarView(ctx, cache, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, CalendarView{Month: "2025-06", VillaID: 3}, view)

	require.NoError(t, ClearLastCalendarView(ctx, cache, "sid-1"))
	view, _ = GetLastCalendarView(ctx, cache, "sid-1")
	assert.Empty(t, view.Month)
}

func TestMergeCalendarView(t *testing.T) {
	today := models.MustParseDate("2025-06-12")

	assert.Equal(t, CalendarView{Month: "2025-06"}, MergeCalendarView(CalendarView{}, CalendarView{}, today))
	assert.Equal(t,
		CalendarView{Month: "2025-05", VillaID: 3},
		MergeCalendarView(CalendarView{Month: "2025-05", VillaID: 3}, CalendarView{}, today))
	assert.Equal(t,
		CalendarView{Month: "2025-07", VillaID: 3},
		MergeCalendarView(CalendarView{Month: "2025-05", VillaID: 3}, CalendarView{Month: "2025-07"}, today))
}
