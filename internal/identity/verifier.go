// Package identity verifies opaque bearer credentials against the external
// identity provider and reports the stable subject the token belongs to.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrTokenRejected means the provider examined the credential and
	// refused it: bad signature, expired, revoked.
	ErrTokenRejected = errors.New("credential rejected by identity provider")
	// ErrProviderUnavailable means the provider could not be asked at all.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Claims is the provider's answer for a verified credential. SubjectID may
// be empty when the provider issued a token without a subject; callers
// decide how to treat that.
type Claims struct {
	SubjectID string
	Email     string
}

// TokenVerifier is the injected handle to the identity provider. It is
// constructed once at startup and substituted with a fake in tests.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
