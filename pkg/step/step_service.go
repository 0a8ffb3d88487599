package step

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
	StepService interface {
		CreateStep(ctx context.Context, req domain.CreateStepRequest, userID string) (domain.StepResponse, error)
		EditStep(ctx context.Context, id string, req domain.EditStepRequest, userID string) (domain.StepResponse, error)
		DeleteStep(ctx context.Context, id string, userID string) error
		GetStepsByRecipe(ctx context.Context, recipeID string, page, perPage int, userID string) (domain.StepListResponse, error)
	}

	stepService struct {
		stepRepository   StepRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewStepService(stepRepository StepRepository, recipeRepository recipe.RecipeRepository) StepService {
	return &stepService{
		stepRepository:   stepRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *stepService) guardRecipeAccess(ctx context.Context, recipeID, userID string) (*entities.Recipe, error) {
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

func (s *stepService) CreateStep(ctx context.Context, req domain.CreateStepRequest, userID string) (domain.StepResponse, error) {
	parent, err := s.guardRecipeAccess(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.StepResponse{}, err
	}

	// an occupied step number wins over a non-positive one
	_, err = s.stepRepository.GetStepByRecipeIDAndNumber(ctx, req.RecipeID, req.Step)
	if err == nil {
		return domain.StepResponse{}, domain.NewAlreadyExists("Step")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.StepResponse{}, err
	}

	if req.Step <= 0 {
		return domain.StepResponse{}, domain.NewInvalidFields("Step")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.StepResponse{}, domain.ErrParseUUID
	}

	step := &entities.RecipeStep{
		ID:          uuid.New(),
		Step:        req.Step,
		Description: req.Description,
		RecipeID:    parent.ID,
		CreatedBy:   userUUID,
	}

	if err := s.stepRepository.CreateStep(ctx, step); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.StepResponse{}, domain.NewAlreadyExists("Step")
		}
		return domain.StepResponse{}, err
	}

	return toStepResponse(step), nil
}

func (s *stepService) EditStep(ctx context.Context, id string, req domain.EditStepRequest, userID string) (domain.StepResponse, error) {
	step, err := s.stepRepository.GetStepByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StepResponse{}, domain.NewNotFound("Step")
		}
		return domain.StepResponse{}, err
	}

	if step.CreatedBy.String() != userID {
		return domain.StepResponse{}, domain.NewNotAllowed("User")
	}

	if req.Step != nil {
		if *req.Step <= 0 {
			return domain.StepResponse{}, domain.NewInvalidFields("Step")
		}

		existing, err := s.stepRepository.GetStepByRecipeIDAndNumber(ctx, step.RecipeID.String(), *req.Step)
		if err == nil && existing.ID != step.ID {
			return domain.StepResponse{}, domain.NewAlreadyExists("Step")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StepResponse{}, err
		}
	}

	parent, err := s.recipeRepository.GetRecipeByID(ctx, step.RecipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StepResponse{}, domain.NewNotFound("Recipe")
		}
		return domain.StepResponse{}, err
	}

	if !parent.IsActive() {
		return domain.StepResponse{}, domain.NewInactive("Recipe")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.StepResponse{}, domain.ErrParseUUID
	}

	step.Update(req.Step, req.Description, userUUID)

	if err := s.stepRepository.SaveStep(ctx, step); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.StepResponse{}, domain.NewAlreadyExists("Step")
		}
		return domain.StepResponse{}, err
	}

	return toStepResponse(step), nil
}

func (s *stepService) DeleteStep(ctx context.Context, id string, userID string) error {
	step, err := s.stepRepository.GetStepByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("Step")
		}
		return err
	}

	if step.CreatedBy.String() != userID {
		return domain.NewNotAllowed("User")
	}

	parent, err := s.recipeRepository.GetRecipeByID(ctx, step.RecipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("Recipe")
		}
		return err
	}

	if !parent.IsActive() {
		return domain.NewInactive("Recipe")
	}

	return s.stepRepository.DeleteStep(ctx, step)
}

func (s *stepService) GetStepsByRecipe(ctx context.Context, recipeID string, page, perPage int, userID string) (domain.StepListResponse, error) {
	if _, err := s.guardRecipeAccess(ctx, recipeID, userID); err != nil {
		return domain.StepListResponse{}, err
	}

	if page < 1 {
		page = domain.DefaultPage
	}
	if perPage < 1 {
		perPage = domain.DefaultPerPage
	}

	steps, count, err := s.stepRepository.GetStepsByRecipeID(ctx, recipeID, page, perPage)
	if err != nil {
		return domain.StepListResponse{}, err
	}

	res := make([]domain.StepResponse, 0, len(steps))
	for _, st := range steps {
		res = append(res, toStepResponse(st))
	}

	return domain.StepListResponse{
		Steps: res,
		Meta: domain.PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			TotalCount: count,
		},
	}, nil
}

func toStepResponse(step *entities.RecipeStep) domain.StepResponse {
	return domain.StepResponse{
		ID:          step.ID.String(),
		Step:        step.Step,
		Description: step.Description,
		RecipeID:    step.RecipeID.String(),
		CreatedAt:   step.CreatedAt,
		UpdatedAt:   step.UpdatedAt,
	}
}
