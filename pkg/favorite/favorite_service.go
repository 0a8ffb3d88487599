package favorite

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
	FavoriteService interface {
		CreateFavorite(ctx context.Context, req domain.CreateFavoriteRequest, userID string) (domain.FavoriteResponse, error)
		DeleteFavorite(ctx context.Context, id string, userID string) error
		GetMyFavorites(ctx context.Context, page, perPage int, userID string) (domain.FavoriteListResponse, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewFavoriteService(
	favoriteRepository FavoriteRepository,
	recipeRepository recipe.RecipeRepository,
) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *favoriteService) CreateFavorite(ctx context.Context, req domain.CreateFavoriteRequest, userID string) (domain.FavoriteResponse, error) {
	parent, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FavoriteResponse{}, domain.NewNotFound("Recipe")
		}
		return domain.FavoriteResponse{}, err
	}

	// only the recipe's own creator may favorite it
	if parent.CreatedBy.String() != userID {
		return domain.FavoriteResponse{}, domain.NewNotAllowed("User")
	}

	if !parent.IsActive() {
		return domain.FavoriteResponse{}, domain.NewInactive("Recipe")
	}

	exists, err := s.favoriteRepository.ExistsByUserAndRecipe(ctx, userID, req.RecipeID)
	if err != nil {
		return domain.FavoriteResponse{}, err
	}
	if exists {
		return domain.FavoriteResponse{}, domain.NewAlreadyExists("Favorite")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FavoriteResponse{}, domain.ErrParseUUID
	}

	favorite := &entities.FavoriteRecipe{
		ID:        uuid.New(),
		RecipeID:  parent.ID,
		CreatedBy: userUUID,
	}

	if err := s.favoriteRepository.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.FavoriteResponse{}, domain.NewAlreadyExists("Favorite")
		}
		return domain.FavoriteResponse{}, err
	}

	return toFavoriteResponse(favorite), nil
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, id string, userID string) error {
	favorite, err := s.favoriteRepository.GetFavoriteByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFound("Favorite")
		}
		return err
	}

	if favorite.CreatedBy.String() != userID {
		return domain.NewNotAllowed("User")
	}

	return s.favoriteRepository.DeleteFavorite(ctx, favorite)
}

func (s *favoriteService) GetMyFavorites(ctx context.Context, page, perPage int, userID string) (domain.FavoriteListResponse, error) {
	if page < 1 {
		page = domain.DefaultPage
	}
	if perPage < 1 {
		perPage = domain.DefaultPerPage
	}

	favorites, count, err := s.favoriteRepository.GetFavoritesByUserID(ctx, userID, page, perPage)
	if err != nil {
		return domain.FavoriteListResponse{}, err
	}

	res := make([]domain.FavoriteResponse, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, toFavoriteResponse(f))
	}

	return domain.FavoriteListResponse{
		Favorites: res,
		Meta: domain.PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			TotalCount: count,
		},
	}, nil
}

func toFavoriteResponse(favorite *entities.FavoriteRecipe) domain.FavoriteResponse {
	res := domain.FavoriteResponse{
		ID:        favorite.ID.String(),
		RecipeID:  favorite.RecipeID.String(),
		CreatedBy: favorite.CreatedBy.String(),
		CreatedAt: favorite.CreatedAt,
	}

	if favorite.Recipe != nil {
		r := domain.RecipeResponse{
			ID:              favorite.Recipe.ID.String(),
			Title:           favorite.Recipe.Title,
			Description:     favorite.Recipe.Description,
			PreparationTime: favorite.Recipe.PreparationTime,
			Status:          string(favorite.Recipe.Status),
			CategoryID:      favorite.Recipe.CategoryID.String(),
			CreatedBy:       favorite.Recipe.CreatedBy.String(),
			CreatedAt:       favorite.Recipe.CreatedAt,
			UpdatedAt:       favorite.Recipe.UpdatedAt,
		}
		res.Recipe = &r
	}

	return res
}
