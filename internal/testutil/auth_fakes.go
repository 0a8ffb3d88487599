package testutil

import (
	"Recipe-Book-API/pkg/googleauth"
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// HashProviderFake records plaintext so tests can assert comparisons
// without paying for bcrypt.
type HashProviderFake struct{}

func (HashProviderFake) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (HashProviderFake) Compare(plain, hashed string) bool {
	return hashed == "hashed:"+plain
}

type JWTServiceFake struct {
	Issued []string
}

func (f *JWTServiceFake) GenerateToken(userID string, provider string) string {
	token := "token:" + userID + ":" + provider
	f.Issued = append(f.Issued, token)
	return token
}

func (f *JWTServiceFake) ValidateToken(string) (*jwt.Token, error) {
	return nil, errors.New("not supported by fake")
}

func (f *JWTServiceFake) GetClaimsByToken(string) (string, string, error) {
	return "", "", errors.New("not supported by fake")
}

// GoogleVerifierFake maps raw tokens to payloads.
type GoogleVerifierFake struct {
	Payloads map[string]googleauth.GooglePayload
}

func NewGoogleVerifierFake() *GoogleVerifierFake {
	return &GoogleVerifierFake{Payloads: make(map[string]googleauth.GooglePayload)}
}

func (f *GoogleVerifierFake) Verify(_ context.Context, idToken string) (googleauth.GooglePayload, error) {
	payload, ok := f.Payloads[idToken]
	if !ok {
		return googleauth.GooglePayload{}, googleauth.ErrInvalidGoogleToken
	}
	return payload, nil
}
