package services

import (
	"context"
	"time"

	"villadash/models"
)

// CalendarView is the last month and villa filter a session looked at.
type CalendarView struct {
	Month   string `json:"month"`
	VillaID uint   `json:"villaId,omitempty"`
}

const lastViewTTL = 12 * time.Hour

func lastViewKey(sessionID string) string {
	return "last_calendar_view:" + sessionID
}

func SaveLastCalendarView(ctx context.Context, cache Cache, sessionID string, view CalendarView) error {
	return cache.Set(ctx, lastViewKey(sessionID), view, lastViewTTL)
}

// GetLastCalendarView returns the zero view when nothing was saved.
func GetLastCalendarView(ctx context.Context, cache Cache, sessionID string) (CalendarView, error) {
	var view CalendarView
	if _, err := cache.Get(ctx, lastViewKey(sessionID), &view); err != nil {
		return CalendarView{}, err
	}
	return view, nil
}

func ClearLastCalendarView(ctx context.Context, cache Cache, sessionID string) error {
	return cache.Delete(ctx, lastViewKey(sessionID))
}

// MergeCalendarView fills the fields missing from the new request with the
// previous view, and defaults the month to today's.
func MergeCalendarView(old, new CalendarView, today models.Date) CalendarView {
	new.Month = orString(new.Month, old.Month)
	if new.VillaID == 0 {
		new.VillaID = old.VillaID
	}
	if new.Month == "" {
		new.Month = today.Format("2006-01")
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}
