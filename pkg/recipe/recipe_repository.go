package recipe

import (
	"Recipe-Book-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		// CreateRecipeWithElements persists the recipe and its ingredient
		// and step batches in one transaction; either all rows land or none.
		CreateRecipeWithElements(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, steps []*entities.RecipeStep) error
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeByUserIDAndTitle(ctx context.Context, userID, title string) (*entities.Recipe, error)
		GetRecipesByUserID(ctx context.Context, userID string, page, perPage int, title, categoryID string) ([]*entities.Recipe, int64, error)
		GetRecipeDetails(ctx context.Context, id string) (*entities.Recipe, []*entities.RecipeIngredient, []*entities.RecipeStep, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipeWithElements(ctx context.Context, recipe *entities.Recipe, ingredients []*entities.RecipeIngredient, steps []*entities.RecipeStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := tx.Create(ingredients).Error; err != nil {
			return err
		}
		if err := tx.Create(steps).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeByUserIDAndTitle matches titles case-insensitively among the
// user's ACTIVE, non-deleted recipes.
func (r *recipeRepository) GetRecipeByUserIDAndTitle(ctx context.Context, userID, title string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Where("LOWER(title) = LOWER(?)", title).
		Where("status = ?", entities.RecipeStatusActive).
		Where("deleted_at IS NULL").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUserID(ctx context.Context, userID string, page, perPage int, title, categoryID string) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * perPage

	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("created_by = ?", userID).
		Where("status = ?", entities.RecipeStatusActive).
		Where("deleted_at IS NULL")

	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(perPage).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// GetRecipeDetails aggregates a recipe with its ingredients and steps.
// Only ACTIVE, non-deleted recipes are visible through this read path.
func (r *recipeRepository) GetRecipeDetails(ctx context.Context, id string) (*entities.Recipe, []*entities.RecipeIngredient, []*entities.RecipeStep, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("status = ?", entities.RecipeStatusActive).
		Where("deleted_at IS NULL").
		First(&recipe).Error; err != nil {
		return nil, nil, nil, err
	}

	var ingredients []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipe.ID).
		Order("created_at asc").
		Find(&ingredients).Error; err != nil {
		return nil, nil, nil, err
	}

	var steps []*entities.RecipeStep
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipe.ID).
		Order("step asc").
		Find(&steps).Error; err != nil {
		return nil, nil, nil, err
	}

	return &recipe, ingredients, steps, nil
}
