// README: Firebase Admin SDK initialisation and token verifier.
package infra

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseToken holds the verified token data used by the auth middleware.
type FirebaseToken struct {
	UID    string
	Claims map[string]interface{}
}

// Role returns the custom "role" claim (admin, staff, user) or "" when absent.
func (t *FirebaseToken) Role() string {
	if t == nil {
		return ""
	}
	role, _ := t.Claims["role"].(string)
	return role
}

// TokenVerifier verifies a raw ID token string.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier uses credentialsFile when set, otherwise application-default credentials.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsFile string) (TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase app.Auth: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*FirebaseToken, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return &FirebaseToken{UID: token.UID, Claims: token.Claims}, nil
}
