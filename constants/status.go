package constants

// Villa status
const (
	VillaStatusActive      = "active"
	VillaStatusMaintenance = "maintenance"
)

// Booking status
const (
	BookingStatusBooked  = "booked"
	BookingStatusBlocked = "blocked"
)

// Payment status
const (
	PaymentStatusPending = "pending"
	PaymentStatusAdvance = "advance"
	PaymentStatusFull    = "full"
)

// Booking source
const (
	BookingSourceCall     = "call"
	BookingSourceWhatsApp = "whatsapp"
	BookingSourceWebsite  = "website"
	BookingSourceOther    = "other"
)

// Calendar cell status
const (
	CellAvailable = "available"
	CellBlocked   = "blocked"
	CellPast      = "past"
	CellUpcoming  = "upcoming"
)

// Calendar cell action
const (
	CellActionCreate  = "create"
	CellActionDetails = "details"
)

// Night price category
const (
	PriceBase    = "base"
	PriceWeekend = "weekend"
	PriceSpecial = "special"
)

var BookingSources = []string{BookingSourceCall, BookingSourceWhatsApp, BookingSourceWebsite, BookingSourceOther}
var PaymentStatuses = []string{PaymentStatusPending, PaymentStatusAdvance, PaymentStatusFull}
