package user

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/pkg/googleauth"
	"Recipe-Book-API/pkg/hash"
	"Recipe-Book-API/pkg/jwt"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		LoginWithGoogle(ctx context.Context, req domain.GoogleLoginRequest) (domain.LoginResponse, error)
		GetMe(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		hashProvider   hash.HashProvider
		jwtService     jwt.JWTService
		googleVerifier googleauth.GoogleVerifier
	}
)

func NewUserService(
	userRepository UserRepository,
	hashProvider hash.HashProvider,
	jwtService jwt.JWTService,
	googleVerifier googleauth.GoogleVerifier,
) UserService {
	return &userService{
		userRepository: userRepository,
		hashProvider:   hashProvider,
		jwtService:     jwtService,
		googleVerifier: googleVerifier,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	_, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return domain.UserResponse{}, domain.NewAlreadyExists("User")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashedPassword, err := s.hashProvider.Hash(req.Password)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: &hashedPassword,
		Provider: entities.ProviderLocal,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.NewAlreadyExists("User")
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	// Unknown email and wrong password collapse into the same error so
	// responses cannot be used to enumerate accounts.
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.NewInvalidCredentials("User")
		}
		return domain.LoginResponse{}, err
	}

	if user.Provider == entities.ProviderGoogle {
		return domain.LoginResponse{}, domain.NewAuthGoogle("Google")
	}

	if user.Password == nil {
		return domain.LoginResponse{}, domain.NewInvalidCredentials("User")
	}

	if !s.hashProvider.Compare(req.Password, *user.Password) {
		return domain.LoginResponse{}, domain.NewInvalidCredentials("User")
	}

	token := s.jwtService.GenerateToken(user.ID.String(), string(user.Provider))
	return domain.LoginResponse{Token: token, Provider: string(user.Provider)}, nil
}

func (s *userService) LoginWithGoogle(ctx context.Context, req domain.GoogleLoginRequest) (domain.LoginResponse, error) {
	payload, err := s.googleVerifier.Verify(ctx, req.IDToken)
	if err != nil {
		return domain.LoginResponse{}, domain.NewInvalidCredentials("Google")
	}

	user, err := s.resolveGoogleUser(ctx, payload)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateToken(user.ID.String(), string(user.Provider))
	return domain.LoginResponse{Token: token, Provider: string(user.Provider)}, nil
}

// resolveGoogleUser finds or creates the account for a verified Google
// identity. A matching local account gets the googleId attached silently
// while keeping password login. NOTE: linking by email match is a
// security-sensitive rule; it trusts Google's email verification.
func (s *userService) resolveGoogleUser(ctx context.Context, payload googleauth.GooglePayload) (*entities.User, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		user = &entities.User{
			ID:       uuid.New(),
			Name:     payload.Name,
			Email:    payload.Email,
			GoogleID: &payload.GoogleID,
			Provider: entities.ProviderGoogle,
		}
		if payload.AvatarURL != "" {
			user.AvatarURL = &payload.AvatarURL
		}

		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if user.Provider == entities.ProviderLocal {
		user.AttachGoogleID(payload.GoogleID)
	} else if user.GoogleID == nil {
		user.PromoteToGoogle(payload.GoogleID)
	}

	user.BackfillAvatar(payload.AvatarURL)

	if err := s.userRepository.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetMe(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.NewNotFound("User")
		}
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Provider:  string(user.Provider),
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
