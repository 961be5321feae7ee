package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/goccy/go-json"

	"villadash/errors"
)

// TokenInfo is what the dashboard reads from an API token without
// verifying it. The signature is checked by the API on every call.
type TokenInfo struct {
	UserID    uint
	ExpiresAt time.Time
}

// InspectToken decodes the claims segment of a JWT.
func InspectToken(tokenString string) (*TokenInfo, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Cannot decode token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Cannot parse token claims", err)
	}

	info := &TokenInfo{}
	if exp, ok := claimsMap["exp"].(float64); ok {
		info.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if id, ok := claimsMap["user_id"].(float64); ok {
		info.UserID = uint(id)
	}
	return info, nil
}

// TokenExpiry returns the exp claim of a token when it has one.
func TokenExpiry(tokenString string) (time.Time, bool) {
	info, err := InspectToken(tokenString)
	if err != nil || info.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return info.ExpiresAt, true
}

// IsExpired reports whether the token expired at now.
func (t *TokenInfo) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !now.Before(t.ExpiresAt)
}

// ExpiresWithin reports whether the token expires in less than d.
func (t *TokenInfo) ExpiresWithin(now time.Time, d time.Duration) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Sub(now) < d
}

// Remaining renders the time left as "2h 5m", "45s" or "expired".
func (t *TokenInfo) Remaining(now time.Time) string {
	if t.ExpiresAt.IsZero() {
		return "unknown"
	}
	left := t.ExpiresAt.Sub(now)
	if left <= 0 {
		return "expired"
	}
	days := int(left.Hours()) / 24
	hours := int(left.Hours()) % 24
	minutes := int(left.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", int(left.Seconds()))
	}
}
