package step

import (
	"Recipe-Book-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	StepRepository interface {
		CreateStep(ctx context.Context, step *entities.RecipeStep) error
		SaveStep(ctx context.Context, step *entities.RecipeStep) error
		DeleteStep(ctx context.Context, step *entities.RecipeStep) error
		GetStepByID(ctx context.Context, id string) (*entities.RecipeStep, error)
		GetStepByRecipeIDAndNumber(ctx context.Context, recipeID string, number int) (*entities.RecipeStep, error)
		GetStepsByRecipeID(ctx context.Context, recipeID string, page, perPage int) ([]*entities.RecipeStep, int64, error)
	}

	stepRepository struct {
		db *gorm.DB
	}
)

func NewStepRepository(db *gorm.DB) StepRepository {
	return &stepRepository{db: db}
}

func (r *stepRepository) CreateStep(ctx context.Context, step *entities.RecipeStep) error {
	return r.db.WithContext(ctx).Create(step).Error
}

func (r *stepRepository) SaveStep(ctx context.Context, step *entities.RecipeStep) error {
	return r.db.WithContext(ctx).Save(step).Error
}

func (r *stepRepository) DeleteStep(ctx context.Context, step *entities.RecipeStep) error {
	return r.db.WithContext(ctx).Delete(step).Error
}

func (r *stepRepository) GetStepByID(ctx context.Context, id string) (*entities.RecipeStep, error) {
	var step entities.RecipeStep
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *stepRepository) GetStepByRecipeIDAndNumber(ctx context.Context, recipeID string, number int) (*entities.RecipeStep, error) {
	var step entities.RecipeStep
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Where("step = ?", number).
		First(&step).Error; err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *stepRepository) GetStepsByRecipeID(ctx context.Context, recipeID string, page, perPage int) ([]*entities.RecipeStep, int64, error) {
	var steps []*entities.RecipeStep
	var count int64
	offset := (page - 1) * perPage

	query := r.db.WithContext(ctx).
		Model(&entities.RecipeStep{}).
		Where("recipe_id = ?", recipeID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(perPage).
		Order("step asc").
		Find(&steps).Error; err != nil {
		return nil, 0, err
	}

	return steps, count, nil
}
