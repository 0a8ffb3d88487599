package domain

import "time"

var (
	MessageSuccessCreateRecipe  = "recipe created successfully"
	MessageSuccessEditRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessGetMyRecipes  = "success get recipes"
	MessageSuccessRecipeDetails = "success get recipe details"

	MessageFailedCreateRecipe  = "failed to create recipe"
	MessageFailedEditRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedGetMyRecipes  = "failed to get recipes"
	MessageFailedRecipeDetails = "failed to get recipe details"
)

type (
	CreateRecipeIngredientItem struct {
		Ingredient string `json:"ingredient" validate:"required"`
		Amount     string `json:"amount" validate:"required"`
		Unit       string `json:"unit" validate:"required,oneof=GRAM KILOGRAM MILLILITER LITER TABLESPOON TEASPOON CUP PINCH PIECE"`
	}

	CreateRecipeStepItem struct {
		Step        int    `json:"step"`
		Description string `json:"description" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title           string                       `json:"title" validate:"required"`
		Description     string                       `json:"description" validate:"required"`
		PreparationTime int                          `json:"preparation_time"`
		CategoryID      string                       `json:"category_id" validate:"required,uuid"`
		Ingredients     []CreateRecipeIngredientItem `json:"ingredients" validate:"dive"`
		Steps           []CreateRecipeStepItem       `json:"steps" validate:"dive"`
	}

	EditRecipeRequest struct {
		Title           *string `json:"title,omitempty"`
		Description     *string `json:"description,omitempty"`
		PreparationTime *int    `json:"preparation_time,omitempty"`
	}

	FetchMyRecipesRequest struct {
		Page       int
		PerPage    int
		Title      string
		CategoryID string
	}

	RecipeResponse struct {
		ID              string     `json:"id"`
		Title           string     `json:"title"`
		Description     string     `json:"description"`
		PreparationTime int        `json:"preparation_time"`
		Status          string     `json:"status"`
		CategoryID      string     `json:"category_id"`
		CreatedBy       string     `json:"created_by"`
		CreatedAt       time.Time  `json:"created_at"`
		UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Meta    PaginationMeta   `json:"meta"`
	}

	RecipeDetailResponse struct {
		Recipe      RecipeResponse       `json:"recipe"`
		Ingredients []IngredientResponse `json:"ingredients"`
		Steps       []StepResponse       `json:"steps"`
	}
)
