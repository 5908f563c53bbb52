package handlers

import (
	"paletteandfit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service, validate: validator.New()}
}

// RegisterRoutes mounts the wishlist behind mw, which must authenticate the caller.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	router.Get("/wishlist", withMiddleware(mw, h.HandleList)...)
	router.Post("/wishlist", withMiddleware(mw, h.HandleAdd)...)
	router.Delete("/wishlist", withMiddleware(mw, h.HandleRemove)...)
}

type wishlistRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
}

// bind parses the product id; ok is false once an error response was written.
func (h *WishlistHandler) bind(c *fiber.Ctx) (productID uint, ok bool, err error) {
	var req wishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return 0, false, errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return 0, false, validationFailed(c, "Missing product_id", err)
	}
	return req.ProductID, true, nil
}

func (h *WishlistHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.List(currentUsername(c))
	if err != nil {
		return serverError(c, "Error getting wishlist", err)
	}
	return c.JSON(fiber.Map{"wishlist": products})
}

func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	productID, ok, err := h.bind(c)
	if !ok {
		return err
	}
	if err := h.service.Add(currentUsername(c), productID); err != nil {
		return serverError(c, "Error adding to wishlist", err)
	}
	return c.JSON(fiber.Map{"status": "added"})
}

func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	productID, ok, err := h.bind(c)
	if !ok {
		return err
	}
	if err := h.service.Remove(currentUsername(c), productID); err != nil {
		return serverError(c, "Error removing from wishlist", err)
	}
	return c.JSON(fiber.Map{"status": "removed"})
}
