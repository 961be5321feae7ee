package models

import "fmt"

// FormStatus is a step of the booking form workflow.
type FormStatus string

const (
	FormIdle                 FormStatus = "idle"
	FormValidating           FormStatus = "validating"
	FormCheckingAvailability FormStatus = "checking-availability"
	FormSubmitting           FormStatus = "submitting"
	FormSuccess              FormStatus = "success"
	FormError                FormStatus = "error"
)

// BookingForm tracks one submission attempt.
type BookingForm struct {
	Status  FormStatus   `json:"status"`
	Error   string       `json:"error,omitempty"`
	History []FormStatus `json:"history"`
}

func NewBookingForm() *BookingForm {
	return &BookingForm{Status: FormIdle, History: []FormStatus{FormIdle}}
}

// Advance moves to the next step.
func (f *BookingForm) Advance() error {
	return GetFormState(f.Status).Advance(f)
}

// Reject records a failure of the current step.
func (f *BookingForm) Reject(message string) error {
	return GetFormState(f.Status).Reject(f, message)
}

func (f *BookingForm) set(status FormStatus, message string) {
	f.Status = status
	f.Error = message
	f.History = append(f.History, status)
}

// FormState defines the transitions allowed from one status.
type FormState interface {
	Advance(f *BookingForm) error
	Reject(f *BookingForm, message string) error
}

func invalidTransition(from FormStatus, action string) error {
	return fmt.Errorf("cannot %s booking form in state %s", action, from)
}

// IdleState waits for the user to submit
type IdleState struct{}

func (s *IdleState) Advance(f *BookingForm) error {
	f.set(FormValidating, "")
	return nil
}

func (s *IdleState) Reject(f *BookingForm, message string) error {
	return invalidTransition(FormIdle, "reject")
}

// ValidatingState checks the fields locally
type ValidatingState struct{}

func (s *ValidatingState) Advance(f *BookingForm) error {
	f.set(FormCheckingAvailability, "")
	return nil
}

// Reject returns to idle with an inline error.
func (s *ValidatingState) Reject(f *BookingForm, message string) error {
	f.set(FormIdle, message)
	return nil
}

// CheckingAvailabilityState waits on the availability endpoint
type CheckingAvailabilityState struct{}

func (s *CheckingAvailabilityState) Advance(f *BookingForm) error {
	f.set(FormSubmitting, "")
	return nil
}

func (s *CheckingAvailabilityState) Reject(f *BookingForm, message string) error {
	f.set(FormIdle, message)
	return nil
}

// SubmittingState waits on the create or update call
type SubmittingState struct{}

func (s *SubmittingState) Advance(f *BookingForm) error {
	f.set(FormSuccess, "")
	return nil
}

func (s *SubmittingState) Reject(f *BookingForm, message string) error {
	f.set(FormError, message)
	return nil
}

// SuccessState is terminal
type SuccessState struct{}

func (s *SuccessState) Advance(f *BookingForm) error {
	return invalidTransition(FormSuccess, "advance")
}

func (s *SuccessState) Reject(f *BookingForm, message string) error {
	return invalidTransition(FormSuccess, "reject")
}

// ErrorState allows a manual resubmit
type ErrorState struct{}

func (s *ErrorState) Advance(f *BookingForm) error {
	f.set(FormValidating, "")
	return nil
}

func (s *ErrorState) Reject(f *BookingForm, message string) error {
	return invalidTransition(FormError, "reject")
}

// GetFormState returns the state for a status
func GetFormState(status FormStatus) FormState {
	switch status {
	case FormIdle:
		return &IdleState{}
	case FormValidating:
		return &ValidatingState{}
	case FormCheckingAvailability:
		return &CheckingAvailabilityState{}
	case FormSubmitting:
		return &SubmittingState{}
	case FormSuccess:
		return &SuccessState{}
	case FormError:
		return &ErrorState{}
	default:
		return &IdleState{}
	}
}
