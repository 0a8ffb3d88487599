package domain

import "time"

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessEditCategory   = "category updated successfully"
	MessageSuccessGetCategories  = "success get categories"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedEditCategory   = "failed to update category"
	MessageFailedGetCategories  = "failed to get categories"
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	// EditCategoryRequest uses pointers so an absent field is
	// distinguishable from one set to the empty string.
	EditCategoryRequest struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
	}

	CategoryResponse struct {
		ID          string     `json:"id"`
		Name        string     `json:"name"`
		Description string     `json:"description"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	}

	CategoryListResponse struct {
		Categories []CategoryResponse `json:"categories"`
		Meta       PaginationMeta     `json:"meta"`
	}
)
