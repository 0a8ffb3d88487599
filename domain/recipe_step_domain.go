package domain

import "time"

var (
	MessageSuccessCreateStep = "step created successfully"
	MessageSuccessEditStep   = "step updated successfully"
	MessageSuccessDeleteStep = "step deleted successfully"
	MessageSuccessGetSteps   = "success get steps"

	MessageFailedCreateStep = "failed to create step"
	MessageFailedEditStep   = "failed to update step"
	MessageFailedDeleteStep = "failed to delete step"
	MessageFailedGetSteps   = "failed to get steps"
)

type (
	CreateStepRequest struct {
		Step        int    `json:"step"`
		Description string `json:"description" validate:"required"`
		RecipeID    string `json:"recipe_id" validate:"required,uuid"`
	}

	EditStepRequest struct {
		Step        *int    `json:"step,omitempty"`
		Description *string `json:"description,omitempty"`
	}

	StepResponse struct {
		ID          string     `json:"id"`
		Step        int        `json:"step"`
		Description string     `json:"description"`
		RecipeID    string     `json:"recipe_id"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	}

	StepListResponse struct {
		Steps []StepResponse `json:"steps"`
		Meta  PaginationMeta `json:"meta"`
	}
)
