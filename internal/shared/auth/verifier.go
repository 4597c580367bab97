package auth

import (
	"context"
)

// TokenVerifier validates a bearer token with the external identity provider
// and returns the stable user id it is bound to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}
