package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFormHappyPath(t *testing.T) {
	f := NewBookingForm()
	for _, want := range []FormStatus{FormValidating, FormCheckingAvailability, FormSubmitting, FormSuccess} {
		require.NoError(t, f.Advance())
		assert.Equal(t, want, f.Status)
	}
	assert.Error(t, f.Advance(), "success is terminal")
	assert.Equal(t, []FormStatus{FormIdle, FormValidating, FormCheckingAvailability, FormSubmitting, FormSuccess}, f.History)
}

func TestBookingFormValidationFailureReturnsToIdle(t *testing.T) {
	f := NewBookingForm()
	require.NoError(t, f.Advance())
	require.NoError(t, f.Reject("Check-out must be after check-in"))

	assert.Equal(t, FormIdle, f.Status)
	assert.Equal(t, "Check-out must be after check-in", f.Error)
}

func TestBookingFormSubmitFailureCanRetry(t *testing.T) {
	f := NewBookingForm()
	require.NoError(t, f.Advance())
	require.NoError(t, f.Advance())
	require.NoError(t, f.Advance())
	require.NoError(t, f.Reject("server down"))
	assert.Equal(t, FormError, f.Status)

	require.NoError(t, f.Advance())
	assert.Equal(t, FormValidating, f.Status)
	assert.Empty(t, f.Error)
}

func TestBookingFormIdleCannotReject(t *testing.T) {
	assert.Error(t, NewBookingForm().Reject("nope"))
}
