package handlers

import (
	"paletteandfit/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the dashboard aggregates and user management.
type AdminHandler struct {
	service *services.AnalyticsService
}

func NewAdminHandler(service *services.AnalyticsService) *AdminHandler {
	return &AdminHandler{service: service}
}

// RegisterRoutes mounts every admin route behind mw.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	admin := router.Group("/admin")
	admin.Get("/total-users", withMiddleware(mw, h.HandleTotalUsers)...)
	admin.Get("/wishlist-gender", withMiddleware(mw, h.HandleWishlistGender)...)
	admin.Get("/most-wishlisted", withMiddleware(mw, h.HandleMostWishlisted)...)
	admin.Get("/skin-tone", withMiddleware(mw, h.HandleSkinTone)...)
	admin.Get("/age-group", withMiddleware(mw, h.HandleAgeGroup)...)
	admin.Get("/recent-wishlist", withMiddleware(mw, h.HandleRecentWishlist)...)
	admin.Get("/chatbot-logs", withMiddleware(mw, h.HandleChatbotLogs)...)

	router.Get("/users", withMiddleware(mw, h.HandleListUsers)...)
	router.Delete("/users/:id", withMiddleware(mw, h.HandleDeleteUser)...)
	router.Get("/messages", withMiddleware(mw, h.HandleMessages)...)
}

func (h *AdminHandler) HandleTotalUsers(c *fiber.Ctx) error {
	total, err := h.service.TotalUsers(c.UserContext())
	if err != nil {
		return serverError(c, "Error counting users", err)
	}
	return c.JSON(fiber.Map{"total_users": total})
}

func (h *AdminHandler) HandleWishlistGender(c *fiber.Ctx) error {
	counts, err := h.service.WishlistByGender(c.UserContext())
	if err != nil {
		return serverError(c, "Error getting wishlist by gender", err)
	}
	return c.JSON(counts)
}

func (h *AdminHandler) HandleMostWishlisted(c *fiber.Ctx) error {
	chart, err := h.service.MostWishlisted(c.UserContext())
	if err != nil {
		return serverError(c, "Error getting most wishlisted", err)
	}
	return c.JSON(chart)
}

func (h *AdminHandler) HandleSkinTone(c *fiber.Ctx) error {
	chart, err := h.service.SkinTones(c.UserContext())
	if err != nil {
		return serverError(c, "Error getting skin tones", err)
	}
	return c.JSON(chart)
}

func (h *AdminHandler) HandleAgeGroup(c *fiber.Ctx) error {
	chart, err := h.service.AgeGroups(c.UserContext())
	if err != nil {
		return serverError(c, "Error getting age groups", err)
	}
	return c.JSON(chart)
}

func (h *AdminHandler) HandleRecentWishlist(c *fiber.Ctx) error {
	items, err := h.service.RecentWishlist()
	if err != nil {
		return serverError(c, "Error getting recent wishlist", err)
	}
	return c.JSON(items)
}

func (h *AdminHandler) HandleChatbotLogs(c *fiber.Ctx) error {
	logs, err := h.service.ChatbotLogs()
	if err != nil {
		return serverError(c, "Error getting chatbot logs", err)
	}
	return c.JSON(logs)
}

func (h *AdminHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.Users()
	if err != nil {
		return serverError(c, "Error listing users", err)
	}
	return c.JSON(users)
}

// HandleDeleteUser succeeds for unknown ids too.
func (h *AdminHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "User not found")
	}
	if err := h.service.DeleteUser(c.UserContext(), id); err != nil {
		return serverError(c, "Error deleting user", err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) HandleMessages(c *fiber.Ctx) error {
	messages, err := h.service.Messages()
	if err != nil {
		return serverError(c, "Error getting messages", err)
	}
	return c.JSON(messages)
}
