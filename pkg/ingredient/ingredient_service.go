package ingredient

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error)
		EditIngredient(ctx context.Context, id string, req domain.EditIngredientRequest, userID string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string, userID string) error
		GetIngredientsByRecipe(ctx context.Context, recipeID string, page, perPage int, userID string) (domain.IngredientListResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewIngredientService(
	ingredientRepository IngredientRepository,
	recipeRepository recipe.RecipeRepository,
) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		recipeRepository:     recipeRepository,
	}
}

// guardRecipeAccess authorizes element writes and reads under a recipe:
// the recipe must exist, belong to the caller, and still be ACTIVE.
func (s *ingredientService) guardRecipeAccess(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
	parent, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Recipe")
		}
		return nil, err
	}

	if parent.CreatedBy.String() != userID {
		return nil, domain.NewNotAllowed("User")
	}

	if !parent.IsActive() {
		return nil, domain.NewInactive("Recipe")
	}

	return parent, nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	parent, err := s.guardRecipeAccess(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient := &entities.RecipeIngredient{
		ID:         uuid.New(),
		Ingredient: req.Ingredient,
		Amount:     req.Amount,
		Unit:       entities.MeasurementUnit(req.Unit),
		RecipeID:   parent.ID,
		CreatedBy:  userUUID,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) EditIngredient(ctx context.Context, id string, req domain.EditIngredientRequest, userID string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.NewNotFound("Ingredient")
		}
		return domain.IngredientResponse{}, err
	}

	// element ownership is checked before the parent recipe is even loaded
	if ingredient.CreatedBy.String() != userID {
		return domain.IngredientResponse{}, domain.NewNotAllowed("User")
	}

	parent, err := s.recipeRepository.GetRecipeByID(ctx, ingredient.RecipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.NewNotFound("Recipe")
		}
		return domain.IngredientResponse{}, err
	}

	if !parent.IsActive() {
		return domain.IngredientResponse{}, domain.NewInactive("Recipe")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	var unit *entities.MeasurementUnit
	if req.Unit != nil {
		u := entities.MeasurementUnit(*req.Unit)
		unit = &u
	}

	ingredient.Update(req.Ingredient, req.Amount, unit, userUUID)

	if err := s.ingredientRepository.SaveIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("Ingredient")
		}
		return err
	}

	if ingredient.CreatedBy.String() != userID {
		return domain.NewNotAllowed("User")
	}

	parent, err := s.recipeRepository.GetRecipeByID(ctx, ingredient.RecipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("Recipe")
		}
		return err
	}

	if !parent.IsActive() {
		return domain.NewInactive("Recipe")
	}

	return s.ingredientRepository.DeleteIngredient(ctx, ingredient)
}

func (s *ingredientService) GetIngredientsByRecipe(ctx context.Context, recipeID string, page, perPage int, userID string) (domain.IngredientListResponse, error) {
	if _, err := s.guardRecipeAccess(ctx, recipeID, userID); err != nil {
		return domain.IngredientListResponse{}, err
	}

	if page < 1 {
		page = domain.DefaultPage
	}
	if perPage < 1 {
		perPage = domain.DefaultPerPage
	}

	ingredients, count, err := s.ingredientRepository.GetIngredientsByRecipeID(ctx, recipeID, page, perPage)
	if err != nil {
		return domain.IngredientListResponse{}, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		res = append(res, toIngredientResponse(i))
	}

	return domain.IngredientListResponse{
		Ingredients: res,
		Meta: domain.PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			TotalCount: count,
		},
	}, nil
}

func toIngredientResponse(ingredient *entities.RecipeIngredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:         ingredient.ID.String(),
		Ingredient: ingredient.Ingredient,
		Amount:     ingredient.Amount,
		Unit:       string(ingredient.Unit),
		RecipeID:   ingredient.RecipeID.String(),
		CreatedAt:  ingredient.CreatedAt,
		UpdatedAt:  ingredient.UpdatedAt,
	}
}
