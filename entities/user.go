package entities

import (
	"github.com/google/uuid"
)

type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User holds both local and Google-authenticated accounts. Password is
// nil for accounts that only ever signed in through Google.
type User struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string       `json:"name"`
	Email     string       `gorm:"uniqueIndex" json:"email"`
	Password  *string      `json:"-"`
	GoogleID  *string      `gorm:"uniqueIndex" json:"google_id,omitempty"`
	Provider  AuthProvider `gorm:"type:varchar(10);default:'local'" json:"provider"`
	AvatarURL *string      `json:"avatar_url,omitempty"`

	Timestamp
}

// AttachGoogleID links a Google identity to an existing account without
// changing its provider, so local password login keeps working.
func (u *User) AttachGoogleID(googleID string) {
	u.GoogleID = &googleID
	u.Touch()
}

// PromoteToGoogle links a Google identity and switches the account to
// the google provider.
func (u *User) PromoteToGoogle(googleID string) {
	u.GoogleID = &googleID
	u.Provider = ProviderGoogle
	u.Touch()
}

// BackfillAvatar sets the avatar URL only when none is stored yet.
func (u *User) BackfillAvatar(avatarURL string) {
	if u.AvatarURL != nil || avatarURL == "" {
		return
	}
	u.AvatarURL = &avatarURL
	u.Touch()
}
