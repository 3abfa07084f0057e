package auth

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DecodeError marks an access token that could not be decoded locally.
// Callers treat it exactly like an expired token.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode access token: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode access token: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodedToken carries the claims the client inspects locally.
type DecodedToken struct {
	Subject   string
	ExpiresAt time.Time
}

// Decode parses the access token's registered claims without verifying
// the signature. The client holds no key material; everything except
// the expiry is opaque to it. Malformed input yields a DecodeError,
// never a panic.
func Decode(accessToken string) (DecodedToken, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return DecodedToken{}, &DecodeError{Reason: "malformed token", Err: err}
	}
	if claims.ExpiresAt == nil {
		return DecodedToken{}, &DecodeError{Reason: "missing exp claim"}
	}
	return DecodedToken{Subject: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ValidAt reports whether the token is usable at the given instant:
// the embedded expiry must be strictly in the future. Best effort, no
// clock-skew correction.
func (d DecodedToken) ValidAt(now time.Time) bool {
	return now.Before(d.ExpiresAt)
}

// Valid reports whether the raw access token decodes and has not
// expired. A token that fails to decode is simply invalid.
func Valid(accessToken string) bool {
	decoded, err := Decode(accessToken)
	return err == nil && decoded.ValidAt(time.Now())
}
