package presenters

import (
	"Recipe-Book-API/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
		if appErr, ok := domain.AsError(err); ok {
			res.Code = string(appErr.Kind)
		}
	}
	return c.Status(status).JSON(res)
}

// StatusCode maps a service error to its HTTP status. Validation errors
// from the request layer count as invalid fields; anything unclassified
// is an internal fault.
func StatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusUnprocessableEntity
	}

	appErr, ok := domain.AsError(err)
	if !ok {
		return fiber.StatusInternalServerError
	}

	switch appErr.Kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindAlreadyExists, domain.KindInactive:
		return fiber.StatusConflict
	case domain.KindNotAllowed:
		return fiber.StatusForbidden
	case domain.KindInvalidFields:
		return fiber.StatusUnprocessableEntity
	case domain.KindInvalidCredentials:
		return fiber.StatusUnauthorized
	case domain.KindAuthGoogle:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
