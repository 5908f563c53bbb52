package handlers

import (
	"errors"

	"paletteandfit/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	service *services.ContactService
	debug   bool
}

// NewContactHandler creates a ContactHandler. With debug set, responses
// include the mail failure detail.
func NewContactHandler(service *services.ContactService, debug bool) *ContactHandler {
	return &ContactHandler{service: service, debug: debug}
}

func (h *ContactHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	router.Post("/contact", withMiddleware(mw, h.HandleContact)...)
}

type contactRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func contactError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "msg": msg})
}

// HandleContact stores and relays a contact message. A valid message is
// always acknowledged, even if storage or mail fail.
func (h *ContactHandler) HandleContact(c *fiber.Ctx) error {
	var req contactRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return contactError(c, "Invalid email")
		}
	}

	result, err := h.service.Submit(c.UserContext(), req.Email, req.Message)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		return contactError(c, "Invalid email")
	case errors.Is(err, services.ErrMessageRequired):
		return contactError(c, "Message required")
	case err != nil:
		return serverError(c, "Error handling contact message", err)
	}

	payload := fiber.Map{
		"status":     "success",
		"msg":        "Received",
		"email_sent": result.EmailSent,
	}
	if h.debug {
		if result.Detail != "" {
			payload["debug"] = result.Detail
		} else {
			payload["debug"] = nil
		}
	}
	return c.JSON(payload)
}
