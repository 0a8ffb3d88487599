package domain

import "time"

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessEditIngredient   = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "success get ingredients"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedEditIngredient   = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to get ingredients"
)

type (
	CreateIngredientRequest struct {
		Ingredient string `json:"ingredient" validate:"required"`
		Amount     string `json:"amount" validate:"required"`
		Unit       string `json:"unit" validate:"required,oneof=GRAM KILOGRAM MILLILITER LITER TABLESPOON TEASPOON CUP PINCH PIECE"`
		RecipeID   string `json:"recipe_id" validate:"required,uuid"`
	}

	EditIngredientRequest struct {
		Ingredient *string `json:"ingredient,omitempty"`
		Amount     *string `json:"amount,omitempty"`
		Unit       *string `json:"unit,omitempty" validate:"omitempty,oneof=GRAM KILOGRAM MILLILITER LITER TABLESPOON TEASPOON CUP PINCH PIECE"`
	}

	IngredientResponse struct {
		ID         string     `json:"id"`
		Ingredient string     `json:"ingredient"`
		Amount     string     `json:"amount"`
		Unit       string     `json:"unit"`
		RecipeID   string     `json:"recipe_id"`
		CreatedAt  time.Time  `json:"created_at"`
		UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	}

	IngredientListResponse struct {
		Ingredients []IngredientResponse `json:"ingredients"`
		Meta        PaginationMeta       `json:"meta"`
	}
)
