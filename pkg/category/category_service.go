package category

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/entities"
	"Recipe-Book-API/internal/utils/cache"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category list reads are cache-aside: key per page, bounded TTL, and
// every write clears the whole namespace. Stale data after a crash
// between DB write and invalidation is tolerated until expiry.
const (
	cacheKeyPattern = "categories:*"
	cacheKeyAll     = "categories:all"
	cacheTTL        = 900 * time.Second
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		EditCategory(ctx context.Context, id string, req domain.EditCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context, page, perPage int) (domain.CategoryListResponse, error)
		GetAllCategories(ctx context.Context) (domain.CategoryListResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
		cache              cache.Cache
	}
)

func NewCategoryService(categoryRepository CategoryRepository, cache cache.Cache) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		cache:              cache,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	_, err := s.categoryRepository.GetCategoryByName(ctx, req.Name)
	if err == nil {
		return domain.CategoryResponse{}, domain.NewAlreadyExists("Category")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		// the unique index is the authoritative guard against races
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CategoryResponse{}, domain.NewAlreadyExists("Category")
		}
		return domain.CategoryResponse{}, err
	}

	if err := s.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) EditCategory(ctx context.Context, id string, req domain.EditCategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.NewNotFound("Category")
		}
		return domain.CategoryResponse{}, err
	}

	if req.Name != nil {
		existing, err := s.categoryRepository.GetCategoryByName(ctx, *req.Name)
		if err == nil && existing.ID != category.ID {
			return domain.CategoryResponse{}, domain.NewAlreadyExists("Category")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, err
		}
	}

	category.Update(req.Name, req.Description)

	if err := s.categoryRepository.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CategoryResponse{}, domain.NewAlreadyExists("Category")
		}
		return domain.CategoryResponse{}, err
	}

	if err := s.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context, page, perPage int) (domain.CategoryListResponse, error) {
	cacheKey := fmt.Sprintf("categories:%d:%d", page, perPage)

	var cached domain.CategoryListResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	categories, count, err := s.categoryRepository.GetCategories(ctx, page, perPage)
	if err != nil {
		return domain.CategoryListResponse{}, err
	}

	res := domain.CategoryListResponse{
		Categories: toCategoryResponses(categories),
		Meta: domain.PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			TotalCount: count,
		},
	}

	// cache is advisory, a failed set never fails the read
	_ = s.cache.Set(ctx, cacheKey, res, cacheTTL)

	return res, nil
}

func (s *categoryService) GetAllCategories(ctx context.Context) (domain.CategoryListResponse, error) {
	var cached domain.CategoryListResponse
	if hit, err := s.cache.Get(ctx, cacheKeyAll, &cached); err == nil && hit {
		return cached, nil
	}

	categories, err := s.categoryRepository.GetAllCategories(ctx)
	if err != nil {
		return domain.CategoryListResponse{}, err
	}

	res := domain.CategoryListResponse{
		Categories: toCategoryResponses(categories),
		Meta: domain.PaginationMeta{
			Page:       1,
			PerPage:    len(categories),
			TotalCount: int64(len(categories)),
		},
	}

	_ = s.cache.Set(ctx, cacheKeyAll, res, cacheTTL)

	return res, nil
}

func toCategoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toCategoryResponses(categories []*entities.Category) []domain.CategoryResponse {
	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toCategoryResponse(c))
	}
	return res
}
