package handlers

import (
	"errors"
	"strings"

	"cineverse/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ErrorHandler logs failed requests and answers in the format of the
// surface that failed: the JSON envelope under /api, an HTML page elsewhere.
func ErrorHandler(pages *PageHandler, log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Debug("Request error")
		}

		if strings.HasPrefix(c.Path(), "/api") {
			message := err.Error()
			if code >= fiber.StatusInternalServerError {
				message = "Internal server error"
			}
			return utils.ErrorResponse(c, code, message)
		}

		message := "Sorry, something went wrong while loading this page."
		if code == fiber.StatusNotFound {
			message = "Sorry, the page you're looking for doesn't exist."
		}
		if renderErr := pages.Error(c, code, message); renderErr != nil {
			log.WithError(renderErr).Error("Failed to render error page")
			return c.Status(code).SendString(fiber.ErrInternalServerError.Message)
		}
		return nil
	}
}
