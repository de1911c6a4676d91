package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/draganczukp/lldap/internal/api"
	"github.com/draganczukp/lldap/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrInvalidFilter):
		status = http.StatusBadRequest
		code = api.CodeInvalid
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrGroupNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusConflict
		code = api.CodeUserExists
		msg = "user_id already exists"
	case errors.Is(err, entities.ErrGroupExists):
		status = http.StatusConflict
		code = api.CodeGroupExists
		msg = "display_name already exists"
	case errors.Is(err, entities.ErrAuthenticationFailed):
		status = http.StatusUnauthorized
		code = api.CodeUnauthorized
		msg = "authentication failed"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func groupIDParam(c *fiber.Ctx) (int32, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil {
		return 0, entities.ErrInvalidArgument
	}
	return int32(id), nil
}
