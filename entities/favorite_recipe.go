package entities

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteRecipe is unique per (user, recipe) pair.
type FavoriteRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	CreatedBy uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorites_user_recipe" json:"created_by"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
