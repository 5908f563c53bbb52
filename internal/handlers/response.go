package handlers

import (
	"fmt"
	"strconv"

	"paletteandfit/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// serverError logs err and answers 500 with its message.
func serverError(c *fiber.Ctx, action string, err error) error {
	logrus.WithFields(logrus.Fields{
		"path":  c.Path(),
		"error": err,
	}).Error(action)
	return errorJSON(c, fiber.StatusInternalServerError, err.Error())
}

// validationFailed answers 400 with msg and a per-field breakdown.
func validationFailed(c *fiber.Ctx, msg string, err error) error {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  msg,
		"errors": errorMessages,
	})
}

// currentUsername returns the authenticated username; AuthRequired guarantees it is set.
func currentUsername(c *fiber.Ctx) string {
	identity, _ := middleware.CurrentUser(c)
	return identity.Username
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func withMiddleware(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, h)
}
