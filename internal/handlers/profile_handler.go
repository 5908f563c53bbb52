package handlers

import (
	"errors"

	"paletteandfit/internal/models"
	"paletteandfit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// RegisterRoutes mounts the profile routes behind mw, which must authenticate the caller.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	router.Post("/profile", withMiddleware(mw, h.HandleUpdateProfile)...)
	router.Get("/profile", withMiddleware(mw, h.HandleGetProfile)...)
	router.Post("/get_profile", withMiddleware(mw, h.HandleGetProfile)...)
	router.Post("/body", withMiddleware(mw, h.HandleUpdateBody)...)
}

func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var profile models.Profile
	if err := c.BodyParser(&profile); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.service.UpdateProfile(currentUsername(c), profile); err != nil {
		return h.writeErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ProfileHandler) HandleUpdateBody(c *fiber.Ctx) error {
	var body models.BodyMeasurements
	if err := c.BodyParser(&body); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.service.UpdateBody(currentUsername(c), body); err != nil {
		return h.writeErr(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleGetProfile returns the demographic fields and the cached recommendation.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.service.GetProfile(currentUsername(c))
	if err != nil {
		return h.writeErr(c, err)
	}
	return c.JSON(fiber.Map{
		"name":                  user.Name,
		"age":                   user.Age,
		"gender":                user.Gender,
		"skin_tone":             user.SkinTone,
		"weight":                user.Weight,
		"body_length":           user.BodyLength,
		"upper_width":           user.UpperWidth,
		"lower_width":           user.LowerWidth,
		"phone":                 user.Phone,
		"email":                 user.Username,
		"last_recommendation":   user.LastRecommendation,
		"best_color":            user.BestColor,
		"worst_color":           user.WorstColor,
		"light_tones_percent":   user.LightTonesPercent,
		"dark_tones_percent":    user.DarkTonesPercent,
		"western_percent":       user.WesternPercent,
		"eastern_percent":       user.EasternPercent,
		"personalized_analysis": user.PersonalizedAnalysis,
	})
}

func (h *ProfileHandler) writeErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	return serverError(c, "Profile request failed", err)
}
