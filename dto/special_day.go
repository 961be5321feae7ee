package dto

// SpecialDayRequest creates a global special day. Year is omitted for
// days that recur every year.
type SpecialDayRequest struct {
	Name  string `json:"name" validate:"required"`
	Day   int    `json:"day" validate:"gte=1,lte=31"`
	Month int    `json:"month" validate:"gte=1,lte=12"`
	Year  *int   `json:"year" validate:"omitempty,gte=2000,lte=2100"`
}
