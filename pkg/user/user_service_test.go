package user_test

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/internal/testutil"
	"Recipe-Book-API/pkg/googleauth"
	"Recipe-Book-API/pkg/user"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (user.UserService, *testutil.UserRepositoryFake, *testutil.GoogleVerifierFake) {
	repo := testutil.NewUserRepositoryFake()
	verifier := testutil.NewGoogleVerifierFake()
	svc := user.NewUserService(repo, testutil.HashProviderFake{}, &testutil.JWTServiceFake{}, verifier)
	return svc, repo, verifier
}

func TestRegister(t *testing.T) {
	svc, repo, _ := newUserService()
	ctx := context.Background()

	res, err := svc.Register(ctx, domain.RegisterUserRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", res.Email)
	assert.Equal(t, string(entities.ProviderLocal), res.Provider)

	require.Len(t, repo.Users, 1)
	require.NotNil(t, repo.Users[0].Password)
	assert.Equal(t, "hashed:secret123", *repo.Users[0].Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterUserRequest{
		Name: "Other Alice", Email: "alice@example.com", Password: "another",
	})
	assert.ErrorIs(t, err, domain.NewAlreadyExists("User"))
}

func TestLogin(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, string(entities.ProviderLocal), res.Provider)
}

func TestLoginCollapsesUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	_, wrongErr := svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domain.NewInvalidCredentials(""))
	assert.ErrorIs(t, wrongErr, domain.NewInvalidCredentials(""))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginGoogleAccountRejectsPassword(t *testing.T) {
	svc, repo, _ := newUserService()
	ctx := context.Background()

	googleID := "google-sub-1"
	repo.Users = append(repo.Users, &entities.User{
		ID:       uuid.New(),
		Name:     "Bob",
		Email:    "bob@example.com",
		GoogleID: &googleID,
		Provider: entities.ProviderGoogle,
	})

	_, err := svc.Login(ctx, domain.LoginRequest{Email: "bob@example.com", Password: "anything"})
	assert.ErrorIs(t, err, domain.NewAuthGoogle(""))
}

func TestLoginWithGoogleCreatesAccount(t *testing.T) {
	svc, repo, verifier := newUserService()
	ctx := context.Background()

	verifier.Payloads["tok"] = googleauth.GooglePayload{
		GoogleID:  "sub-1",
		Name:      "Carol",
		Email:     "carol@example.com",
		AvatarURL: "https://example.com/carol.png",
	}

	res, err := svc.LoginWithGoogle(ctx, domain.GoogleLoginRequest{IDToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, string(entities.ProviderGoogle), res.Provider)

	require.Len(t, repo.Users, 1)
	created := repo.Users[0]
	assert.Equal(t, entities.ProviderGoogle, created.Provider)
	require.NotNil(t, created.GoogleID)
	assert.Equal(t, "sub-1", *created.GoogleID)
	require.NotNil(t, created.AvatarURL)
	assert.Equal(t, "https://example.com/carol.png", *created.AvatarURL)
	assert.Nil(t, created.Password)
}

func TestLoginWithGoogleLinksLocalAccount(t *testing.T) {
	svc, repo, verifier := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	verifier.Payloads["tok"] = googleauth.GooglePayload{
		GoogleID: "sub-2",
		Name:     "Alice",
		Email:    "alice@example.com",
	}

	_, err = svc.LoginWithGoogle(ctx, domain.GoogleLoginRequest{IDToken: "tok"})
	require.NoError(t, err)

	linked := repo.Users[0]
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "sub-2", *linked.GoogleID)
	// password login keeps working after linking
	assert.Equal(t, entities.ProviderLocal, linked.Provider)
	require.NotNil(t, linked.Password)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	assert.NoError(t, err)
}

func TestLoginWithGoogleInvalidToken(t *testing.T) {
	svc, _, _ := newUserService()

	_, err := svc.LoginWithGoogle(context.Background(), domain.GoogleLoginRequest{IDToken: "bogus"})
	assert.ErrorIs(t, err, domain.NewInvalidCredentials(""))
}

func TestGetMe(t *testing.T) {
	svc, repo, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterUserRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	res, err := svc.GetMe(ctx, repo.Users[0].ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Name)

	_, err = svc.GetMe(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.NewNotFound("User"))
}
