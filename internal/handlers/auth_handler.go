package handlers

import (
	"errors"

	"paletteandfit/internal/models"
	"paletteandfit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes. Extra handlers, such
// as a rate limiter, run before each route.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, mw ...fiber.Handler) {
	router.Post("/register", withMiddleware(mw, h.HandleRegister)...)
	router.Post("/login", withMiddleware(mw, h.HandleLogin)...)
}

// RegisterRequest is the signup form. Profile fields are optional.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	models.Profile
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, "Username and password required", err)
	}

	p := req.Profile
	user := models.User{
		Username:   req.Username,
		Password:   req.Password,
		Phone:      p.Phone,
		Name:       p.Name,
		Age:        p.Age,
		Gender:     p.Gender,
		SkinTone:   p.SkinTone,
		Weight:     p.Weight,
		BodyLength: p.BodyLength,
		UpperWidth: p.UpperWidth,
		LowerWidth: p.LowerWidth,
	}
	if err := h.authService.RegisterUser(&user); err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			return errorJSON(c, fiber.StatusConflict, "User with this email already exists.")
		}
		return serverError(c, "Error registering user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":       user.ID,
		"username": user.Username,
	})
}

// LoginRequest represents the request body for login. The email is the username.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, "Email and password required", err)
	}

	token, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return errorJSON(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return serverError(c, "Error during login", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}
