package constants

import "time"

// Session storage fields, kept identical to the browser storage keys.
const (
	StorageAccessToken  = "access_token"
	StorageRefreshToken = "refresh_token"
	StorageUser         = "villa_admin_auth"
)

const (
	SessionCookie = "villa_session"
	SessionHeader = "X-Session-ID"
	SessionPrefix = "session:"
)

// Cache key prefixes, suffixed with the session id.
const (
	CacheVillas      = "villas:"
	CacheBookings    = "bookings:"
	CacheSpecialDays = "special_days:"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	DefaultSessionTTL = 7 * 24 * time.Hour
	DefaultCacheTTL   = 10 * time.Minute
	MaxPhoneDigits    = 10
)
