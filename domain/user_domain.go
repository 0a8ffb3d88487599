package domain

import "time"

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGoogleLogin = "google login successful"
	MessageSuccessGetMe       = "success get user profile"

	MessageFailedRegister    = "failed to register user"
	MessageFailedLogin       = "failed to login"
	MessageFailedGoogleLogin = "failed to login with google"
	MessageFailedGetMe       = "failed to get user profile"
)

type (
	RegisterUserRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	GoogleLoginRequest struct {
		IDToken string `json:"id_token" validate:"required"`
	}

	UserResponse struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		Email     string     `json:"email"`
		Provider  string     `json:"provider"`
		AvatarURL *string    `json:"avatar_url,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt *time.Time `json:"updated_at,omitempty"`
	}

	LoginResponse struct {
		Token    string `json:"token"`
		Provider string `json:"provider"`
	}
)
