package subshare

import "crypto/subtle"

// Authorizer gates destructive operations behind the shared admin secret.
// The ledger operations themselves never check permissions: the presentation
// layer authorizes before calling them.
type Authorizer struct {
	secret []byte
}

// NewAuthorizer creates an authorizer expecting the given shared secret.
func NewAuthorizer(secret string) *Authorizer {
	return &Authorizer{secret: []byte(secret)}
}

// Authorize compares the provided secret against the expected one in
// constant time. It returns ErrUnauthorized on mismatch.
func (a *Authorizer) Authorize(secret string) error {
	if subtle.ConstantTimeCompare(a.secret, []byte(secret)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
