package entities

import (
	"github.com/google/uuid"
)

type MeasurementUnit string

const (
	UnitGram       MeasurementUnit = "GRAM"
	UnitKilogram   MeasurementUnit = "KILOGRAM"
	UnitMilliliter MeasurementUnit = "MILLILITER"
	UnitLiter      MeasurementUnit = "LITER"
	UnitTablespoon MeasurementUnit = "TABLESPOON"
	UnitTeaspoon   MeasurementUnit = "TEASPOON"
	UnitCup        MeasurementUnit = "CUP"
	UnitPinch      MeasurementUnit = "PINCH"
	UnitPiece      MeasurementUnit = "PIECE"
)

// RecipeIngredient belongs to exactly one recipe. Amount is kept as free
// text so fractional inputs like "1/2" survive round-trips untouched.
type RecipeIngredient struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Ingredient string          `json:"ingredient"`
	Amount     string          `json:"amount"`
	Unit       MeasurementUnit `gorm:"type:varchar(20)" json:"unit"`
	RecipeID   uuid.UUID       `gorm:"type:uuid;index" json:"recipe_id"`
	CreatedBy  uuid.UUID       `gorm:"type:uuid" json:"created_by"`
	UpdatedBy  *uuid.UUID      `gorm:"type:uuid" json:"updated_by,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
	Timestamp
}

// Update applies a partial update and stamps the editing user.
func (i *RecipeIngredient) Update(ingredient, amount *string, unit *MeasurementUnit, by uuid.UUID) {
	if ingredient != nil {
		i.Ingredient = *ingredient
	}
	if amount != nil {
		i.Amount = *amount
	}
	if unit != nil {
		i.Unit = *unit
	}
	i.UpdatedBy = &by
	i.Touch()
}
