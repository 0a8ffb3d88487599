package ingredient

import (
	"Recipe-Book-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error
		SaveIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error
		DeleteIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.RecipeIngredient, error)
		GetIngredientsByRecipeID(ctx context.Context, recipeID string, page, perPage int) ([]*entities.RecipeIngredient, int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) SaveIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, ingredient *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Delete(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.RecipeIngredient, error) {
	var ingredient entities.RecipeIngredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientsByRecipeID(ctx context.Context, recipeID string, page, perPage int) ([]*entities.RecipeIngredient, int64, error) {
	var ingredients []*entities.RecipeIngredient
	var count int64
	offset := (page - 1) * perPage

	query := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ?", recipeID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(perPage).
		Order("created_at asc").
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}
