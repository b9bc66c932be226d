package auth

import "errors"

// ErrUnauthorized is returned on any admin secret mismatch so handlers can
// respond with 401.
var ErrUnauthorized = errors.New("invalid admin password")

// Gate guards every administrative operation with a single shared secret.
// The secret is read once from configuration at startup and injected here;
// there is no session, token expiry, or rate limiting — each admin call
// re-supplies the secret.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Verify fails closed: anything but an exact match is rejected.
func (g *Gate) Verify(supplied string) error {
	if supplied != g.secret {
		return ErrUnauthorized
	}
	return nil
}
