package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Client verifies Firebase-issued ID tokens. It implements auth.TokenVerifier
// for the HTTP auth middleware.
type Client struct {
	authClient *auth.Client
}

// NewClient initializes a Firebase app from a service-account credentials
// file and returns a token-verification client. When credentialsFile is
// empty the SDK falls back to application default credentials.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Client{authClient: authClient}, nil
}

// Verify checks the token's signature and expiry against Firebase and returns
// the subject user id. Every call re-verifies; nothing is cached locally.
func (c *Client) Verify(ctx context.Context, idToken string) (string, error) {
	token, err := c.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify id token: %w", err)
	}
	return token.UID, nil
}
