package handlers

import (
	"Recipe-Book-API/domain"
	"Recipe-Book-API/internal/api/presenters"
	"Recipe-Book-API/pkg/step"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StepHandler interface {
		CreateStep(c *fiber.Ctx) error
		EditStep(c *fiber.Ctx) error
		DeleteStep(c *fiber.Ctx) error
		GetStepsByRecipe(c *fiber.Ctx) error
	}

	stepHandler struct {
		stepService step.StepService
		validator   *validator.Validate
	}
)

func NewStepHandler(stepService step.StepService, validator *validator.Validate) StepHandler {
	return &stepHandler{
		stepService: stepService,
		validator:   validator,
	}
}

func (h *stepHandler) CreateStep(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateStepRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCreateStep, err)
	}

	res, err := h.stepService.CreateStep(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedCreateStep, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStep)
}

func (h *stepHandler) EditStep(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")
	req := new(domain.EditStepRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.stepService.EditStep(c.Context(), id, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedEditStep, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEditStep)
}

func (h *stepHandler) DeleteStep(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	id := c.Params("id")

	if err := h.stepService.DeleteStep(c.Context(), id, userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedDeleteStep, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStep)
}

func (h *stepHandler) GetStepsByRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("recipe_id")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = domain.DefaultPage
	}

	perPage, err := strconv.Atoi(c.Query("per_page", "10"))
	if err != nil || perPage < 1 {
		perPage = domain.DefaultPerPage
	}

	res, err := h.stepService.GetStepsByRecipe(c.Context(), recipeID, page, perPage, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetSteps, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSteps)
}
