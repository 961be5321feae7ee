package validator

import (
	"fmt"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"

	"villadash/constants"
	"villadash/dto"
	"villadash/errors"
	"villadash/models"
)

var validate = playground.New(playground.WithRequiredStructEnabled())

// Struct runs the tag rules and converts the first failure to an AppError.
func Struct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if fieldErrs, ok := err.(playground.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.NewAppError(errors.ErrCodeValidation, describe(fe), err)
		}
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid input", err)
	}
	return nil
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s is out of range (%s %s)", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// NormalizePhone strips every non-digit character.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone allows an empty phone, otherwise at most 10 digits after normalisation.
func ValidatePhone(phone string) (string, error) {
	digits := NormalizePhone(phone)
	if len(digits) > constants.MaxPhoneDigits {
		return "", errors.NewAppError(errors.ErrCodeInvalidPhone,
			fmt.Sprintf("Phone number must not exceed %d digits", constants.MaxPhoneDigits), nil)
	}
	return digits, nil
}

// ValidateDateRange parses both dates and requires checkOut after checkIn.
func ValidateDateRange(checkIn, checkOut string) (models.Date, models.Date, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeRequiredField, "Check-in and check-out dates are required", nil)
	}
	in, err := models.ParseDate(checkIn)
	if err != nil {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-in date", err)
	}
	out, err := models.ParseDate(checkOut)
	if err != nil {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid check-out date", err)
	}
	if !in.Before(out) {
		return models.Date{}, models.Date{}, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Check-out date must be after check-in date", nil)
	}
	return in, out, nil
}

// BookingInput is a booking form that passed validation.
type BookingInput struct {
	Request  dto.BookingFormRequest
	CheckIn  models.Date
	CheckOut models.Date
	Phone    string
}

// ValidateBookingForm checks the form in the order the user sees the
// fields: client name, phone, dates, then the remaining tag rules.
func ValidateBookingForm(req dto.BookingFormRequest) (*BookingInput, error) {
	if req.Status == "" {
		req.Status = constants.BookingStatusBooked
	}

	req.ClientName = strings.TrimSpace(req.ClientName)
	if req.ClientName == "" && req.Status == constants.BookingStatusBlocked {
		req.ClientName = "Blocked"
	}
	if req.ClientName == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Client name is required", nil)
	}

	phone, err := ValidatePhone(req.ClientPhone)
	if err != nil {
		return nil, err
	}
	req.ClientPhone = phone

	in, out, err := ValidateDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	if err := Struct(req); err != nil {
		return nil, err
	}

	return &BookingInput{Request: req, CheckIn: in, CheckOut: out, Phone: phone}, nil
}

// ValidateVilla checks a villa draft, including its special price ranges.
func ValidateVilla(req dto.VillaRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Villa name is required", nil)
	}
	if err := Struct(req); err != nil {
		return err
	}
	seen := map[int]bool{}
	for _, d := range req.WeekendDays {
		if seen[d] {
			return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("Weekend day %d listed twice", d), nil)
		}
		seen[d] = true
	}
	for i, sp := range req.SpecialPrices {
		if sp.Start.IsZero() || sp.End.IsZero() {
			return errors.NewAppError(errors.ErrCodeRequiredField, fmt.Sprintf("Special price %d needs start and end dates", i+1), nil)
		}
		if sp.End.Before(sp.Start) {
			return errors.NewAppError(errors.ErrCodeInvalidDateRange, fmt.Sprintf("Special price %d ends before it starts", i+1), nil)
		}
		if sp.Price <= 0 {
			return errors.NewAppError(errors.ErrCodeInvalidAmount, fmt.Sprintf("Special price %d must be positive", i+1), nil)
		}
	}
	return nil
}

// ValidateSpecialDay checks the day exists in its month. Year-less entries
// are checked against a leap year so 29 February is accepted.
func ValidateSpecialDay(req dto.SpecialDayRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Special day name is required", nil)
	}
	if err := Struct(req); err != nil {
		return err
	}
	year := 2024
	if req.Year != nil {
		year = *req.Year
	}
	d := models.NewDate(year, time.Month(req.Month), req.Day)
	if d.Day() != req.Day {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("%d/%d is not a valid date", req.Day, req.Month), nil)
	}
	return nil
}
