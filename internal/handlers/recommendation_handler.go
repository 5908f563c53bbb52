package handlers

import (
	"errors"

	"paletteandfit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	service  *services.RecommendationService
	validate *validator.Validate
}

func NewRecommendationHandler(service *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service, validate: validator.New()}
}

// RegisterRoutes mounts the route behind mw, which must authenticate the caller.
func (h *RecommendationHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	router.Post("/recommendation", withMiddleware(mw, h.HandleRecommend)...)
}

type recommendationRequest struct {
	Query string `json:"query" validate:"required"`
}

// HandleRecommend answers with the raw stylist text only.
func (h *RecommendationHandler) HandleRecommend(c *fiber.Ctx) error {
	var req recommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, "Missing query", err)
	}

	reply, err := h.service.Recommend(c.UserContext(), currentUsername(c), req.Query)
	if err != nil {
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			logrus.WithError(genErr.Err).Error("Stylist generation failed")
			return errorJSON(c, fiber.StatusInternalServerError, genErr.Error())
		}
		return serverError(c, "Error generating recommendation", err)
	}
	return c.JSON(fiber.Map{"recommendation": reply})
}
