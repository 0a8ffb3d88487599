package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type RecipeStatus string

const (
	RecipeStatusActive   RecipeStatus = "ACTIVE"
	RecipeStatusInactive RecipeStatus = "INACTIVE"
)

// ErrRecipeAlreadyInactive is returned by Inactivate when the recipe was
// already soft-deleted. The only legal transition is ACTIVE -> INACTIVE.
var ErrRecipeAlreadyInactive = errors.New("recipe is already inactive")

type Recipe struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	PreparationTime int          `json:"preparation_time"`
	Status          RecipeStatus `gorm:"type:varchar(10);default:'ACTIVE'" json:"status"`
	CategoryID      uuid.UUID    `gorm:"type:uuid" json:"category_id"`
	CreatedBy       uuid.UUID    `gorm:"type:uuid" json:"created_by"`
	UpdatedBy       *uuid.UUID   `gorm:"type:uuid" json:"updated_by,omitempty"`
	DeletedBy       *uuid.UUID   `gorm:"type:uuid" json:"deleted_by,omitempty"`
	DeletedAt       *time.Time   `gorm:"type:timestamp" json:"deleted_at,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Timestamp
}

func (r *Recipe) IsActive() bool {
	return r.Status == RecipeStatusActive
}

// Update applies a partial update and stamps the editing user.
func (r *Recipe) Update(title, description *string, preparationTime *int, by uuid.UUID) {
	if title != nil {
		r.Title = *title
	}
	if description != nil {
		r.Description = *description
	}
	if preparationTime != nil {
		r.PreparationTime = *preparationTime
	}
	r.UpdatedBy = &by
	r.Touch()
}

// Inactivate soft-deletes the recipe, stamping who deleted it and when.
// It refuses the INACTIVE -> INACTIVE transition.
func (r *Recipe) Inactivate(by uuid.UUID) error {
	if r.Status == RecipeStatusInactive {
		return ErrRecipeAlreadyInactive
	}
	now := time.Now()
	r.Status = RecipeStatusInactive
	r.DeletedBy = &by
	r.DeletedAt = &now
	r.Touch()
	return nil
}
