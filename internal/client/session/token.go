package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry claim from a bearer token without
// verifying its signature (the client holds no verification key). ok is
// false for opaque tokens and tokens without an expiry claim.
func TokenExpiry(token string) (expiry time.Time, ok bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// tokenExpired reports whether the token carries an expiry claim in the
// past. Opaque tokens are assumed usable and left to the server to reject.
func tokenExpired(token string, now time.Time) bool {
	expiry, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return expiry.Before(now)
}
