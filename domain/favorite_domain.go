package domain

import "time"

var (
	MessageSuccessCreateFavorite = "recipe favorited successfully"
	MessageSuccessDeleteFavorite = "favorite removed successfully"
	MessageSuccessGetFavorites   = "success get favorite recipes"

	MessageFailedCreateFavorite = "failed to favorite recipe"
	MessageFailedDeleteFavorite = "failed to remove favorite"
	MessageFailedGetFavorites   = "failed to get favorite recipes"
)

type (
	CreateFavoriteRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	FavoriteResponse struct {
		ID        string          `json:"id"`
		RecipeID  string          `json:"recipe_id"`
		CreatedBy string          `json:"created_by"`
		CreatedAt time.Time       `json:"created_at"`
		Recipe    *RecipeResponse `json:"recipe,omitempty"`
	}

	FavoriteListResponse struct {
		Favorites []FavoriteResponse `json:"favorites"`
		Meta      PaginationMeta     `json:"meta"`
	}
)
