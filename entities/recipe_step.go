package entities

import (
	"github.com/google/uuid"
)

// RecipeStep is one numbered instruction of a recipe. Step numbers are
// positive and unique within their recipe.
type RecipeStep struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Step        int        `gorm:"uniqueIndex:idx_steps_recipe_step" json:"step"`
	Description string     `json:"description"`
	RecipeID    uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_steps_recipe_step" json:"recipe_id"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}

// Update applies a partial update and stamps the editing user.
func (s *RecipeStep) Update(step *int, description *string, by uuid.UUID) {
	if step != nil {
		s.Step = *step
	}
	if description != nil {
		s.Description = *description
	}
	s.UpdatedBy = &by
	s.Touch()
}
