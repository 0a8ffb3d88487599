package favorite

import (
	"Recipe-Book-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		CreateFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error
		DeleteFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error
		GetFavoriteByID(ctx context.Context, id string) (*entities.FavoriteRecipe, error)
		ExistsByUserAndRecipe(ctx context.Context, userID, recipeID string) (bool, error)
		GetFavoritesByUserID(ctx context.Context, userID string, page, perPage int) ([]*entities.FavoriteRecipe, int64, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error {
	return r.db.WithContext(ctx).Delete(favorite).Error
}

func (r *favoriteRepository) GetFavoriteByID(ctx context.Context, id string) (*entities.FavoriteRecipe, error) {
	var favorite entities.FavoriteRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ExistsByUserAndRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FavoriteRecipe{}).
		Where("created_by = ?", userID).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFavoritesByUserID lists the user's favorites whose recipe is still
// ACTIVE and not deleted, newest favorite first.
func (r *favoriteRepository) GetFavoritesByUserID(ctx context.Context, userID string, page, perPage int) ([]*entities.FavoriteRecipe, int64, error) {
	var favorites []*entities.FavoriteRecipe
	var count int64
	offset := (page - 1) * perPage

	query := r.db.WithContext(ctx).
		Model(&entities.FavoriteRecipe{}).
		Joins("JOIN recipes ON recipes.id = favorite_recipes.recipe_id").
		Where("favorite_recipes.created_by = ?", userID).
		Where("recipes.status = ?", entities.RecipeStatusActive).
		Where("recipes.deleted_at IS NULL")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Recipe").
		Offset(offset).
		Limit(perPage).
		Order("favorite_recipes.created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, 0, err
	}

	return favorites, count, nil
}
