package recipe

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/pkg/category"
	"Recipe-Book-API/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		EditRecipe(ctx context.Context, id string, req domain.EditRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		GetMyRecipes(ctx context.Context, req domain.FetchMyRecipesRequest, userID string) (domain.RecipeListResponse, error)
		GetRecipeDetails(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		userRepository     user.UserRepository
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	categoryRepository category.CategoryRepository,
	userRepository user.UserRepository,
) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		userRepository:     userRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	_, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.NewNotFound("Category")
		}
		return domain.RecipeResponse{}, err
	}

	if len(req.Ingredients) == 0 || len(req.Steps) == 0 {
		return domain.RecipeResponse{}, domain.NewInvalidFields("Elements")
	}

	if req.PreparationTime <= 0 {
		return domain.RecipeResponse{}, domain.NewInvalidFields("PreparationTime")
	}

	_, err = s.recipeRepository.GetRecipeByUserIDAndTitle(ctx, userID, req.Title)
	if err == nil {
		return domain.RecipeResponse{}, domain.NewAlreadyExists("Recipe")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeResponse{}, err
	}

	// duplicate step numbers are reported before non-positive ones
	seen := make(map[int]bool, len(req.Steps))
	for _, item := range req.Steps {
		if seen[item.Step] {
			return domain.RecipeResponse{}, domain.NewAlreadyExists("Step")
		}
		seen[item.Step] = true
	}
	for _, item := range req.Steps {
		if item.Step <= 0 {
			return domain.RecipeResponse{}, domain.NewInvalidFields("Step")
		}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		PreparationTime: req.PreparationTime,
		Status:          entities.RecipeStatusActive,
		CategoryID:      categoryUUID,
		CreatedBy:       userUUID,
	}

	ingredients := make([]*entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		ingredients = append(ingredients, &entities.RecipeIngredient{
			ID:         uuid.New(),
			Ingredient: item.Ingredient,
			Amount:     item.Amount,
			Unit:       entities.MeasurementUnit(item.Unit),
			RecipeID:   recipe.ID,
			CreatedBy:  userUUID,
		})
	}

	steps := make([]*entities.RecipeStep, 0, len(req.Steps))
	for _, item := range req.Steps {
		steps = append(steps, &entities.RecipeStep{
			ID:          uuid.New(),
			Step:        item.Step,
			Description: item.Description,
			RecipeID:    recipe.ID,
			CreatedBy:   userUUID,
		})
	}

	if err := s.recipeRepository.CreateRecipeWithElements(ctx, recipe, ingredients, steps); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.NewAlreadyExists("Recipe")
		}
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) EditRecipe(ctx context.Context, id string, req domain.EditRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.NewNotFound("Recipe")
		}
		return domain.RecipeResponse{}, err
	}

	// status is checked before ownership on recipe edit and delete
	if !recipe.IsActive() {
		return domain.RecipeResponse{}, domain.NewInactive("Recipe")
	}

	if recipe.CreatedBy.String() != userID {
		return domain.RecipeResponse{}, domain.NewNotAllowed("User")
	}

	if req.Title != nil {
		existing, err := s.recipeRepository.GetRecipeByUserIDAndTitle(ctx, userID, *req.Title)
		if err == nil && existing.ID != recipe.ID {
			return domain.RecipeResponse{}, domain.NewAlreadyExists("Recipe")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, err
		}
	}

	if req.PreparationTime != nil && *req.PreparationTime <= 0 {
		return domain.RecipeResponse{}, domain.NewInvalidFields("PreparationTime")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe.Update(req.Title, req.Description, req.PreparationTime, userUUID)

	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("Recipe")
		}
		return err
	}

	if !recipe.IsActive() {
		return domain.NewInactive("Recipe")
	}

	if recipe.CreatedBy.String() != userID {
		return domain.NewNotAllowed("User")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := recipe.Inactivate(userUUID); err != nil {
		return domain.NewInactive("Recipe")
	}

	return s.recipeRepository.SaveRecipe(ctx, recipe)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, req domain.FetchMyRecipesRequest, userID string) (domain.RecipeListResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeListResponse{}, domain.NewNotFound("User")
		}
		return domain.RecipeListResponse{}, err
	}

	page := req.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	perPage := req.PerPage
	if perPage < 1 {
		perPage = domain.DefaultPerPage
	}

	recipes, count, err := s.recipeRepository.GetRecipesByUserID(ctx, userID, page, perPage, req.Title, req.CategoryID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, toRecipeResponse(r))
	}

	return domain.RecipeListResponse{
		Recipes: res,
		Meta: domain.PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			TotalCount: count,
		},
	}, nil
}

func (s *recipeService) GetRecipeDetails(ctx context.Context, recipeID string) (domain.RecipeDetailResponse, error) {
	recipe, ingredients, steps, err := s.recipeRepository.GetRecipeDetails(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.NewNotFound("Recipe")
		}
		return domain.RecipeDetailResponse{}, err
	}

	ingredientRes := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		ingredientRes = append(ingredientRes, domain.IngredientResponse{
			ID:         i.ID.String(),
			Ingredient: i.Ingredient,
			Amount:     i.Amount,
			Unit:       string(i.Unit),
			RecipeID:   i.RecipeID.String(),
			CreatedAt:  i.CreatedAt,
			UpdatedAt:  i.UpdatedAt,
		})
	}

	stepRes := make([]domain.StepResponse, 0, len(steps))
	for _, st := range steps {
		stepRes = append(stepRes, domain.StepResponse{
			ID:          st.ID.String(),
			Step:        st.Step,
			Description: st.Description,
			RecipeID:    st.RecipeID.String(),
			CreatedAt:   st.CreatedAt,
			UpdatedAt:   st.UpdatedAt,
		})
	}

	return domain.RecipeDetailResponse{
		Recipe:      toRecipeResponse(recipe),
		Ingredients: ingredientRes,
		Steps:       stepRes,
	}, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		PreparationTime: recipe.PreparationTime,
		Status:          string(recipe.Status),
		CategoryID:      recipe.CategoryID.String(),
		CreatedBy:       recipe.CreatedBy.String(),
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
}
