package googleauth

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

var ErrInvalidGoogleToken = errors.New("invalid google token")

type (
	// GooglePayload is the identity extracted from a verified Google
	// ID token.
	GooglePayload struct {
		GoogleID  string
		Name      string
		Email     string
		AvatarURL string
	}

	GoogleVerifier interface {
		Verify(ctx context.Context, idToken string) (GooglePayload, error)
	}

	googleVerifier struct {
		clientID string
	}
)

func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (GooglePayload, error) {
	payload, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return GooglePayload{}, ErrInvalidGoogleToken
	}

	sub, _ := payload.Claims["sub"].(string)
	name, _ := payload.Claims["name"].(string)
	email, _ := payload.Claims["email"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if sub == "" || email == "" {
		return GooglePayload{}, ErrInvalidGoogleToken
	}

	return GooglePayload{
		GoogleID:  sub,
		Name:      name,
		Email:     email,
		AvatarURL: picture,
	}, nil
}
