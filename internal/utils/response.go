package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope of every /api response.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

// ListMeta describes a list payload.
type ListMeta struct {
	Count int `json:"count"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ListResponse sends a 200 response carrying a list and its length.
func ListResponse[T any](c *fiber.Ctx, message string, items []T) error {
	return c.Status(fiber.StatusOK).JSON(StandardResponse{
		Status:  "success",
		Code:    fiber.StatusOK,
		Message: message,
		Data:    items,
		Meta:    &ListMeta{Count: len(items)},
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
	})
}
