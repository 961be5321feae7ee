package models

// GlobalSpecialDay is a holiday that switches opted-in villas to their
// special-day price. Entries without a year recur annually.
type GlobalSpecialDay struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Day   int    `json:"day"`
	Month int    `json:"month"`
	Year  *int   `json:"year,omitempty"`
}

func (s GlobalSpecialDay) Matches(d Date) bool {
	if s.Day != d.Day() || s.Month != int(d.Month()) {
		return false
	}
	return s.Year == nil || *s.Year == d.Year()
}

func (s GlobalSpecialDay) Recurring() bool {
	return s.Year == nil
}
