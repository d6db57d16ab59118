package handlers

import (
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

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

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Get("/verify", h.HandleVerifyEmail)
	authRoutes.Post("/login", h.HandleLogin)
}

// RegisterRequest represents the request body for registration. The
// password comes in through here; the model's json:"-" keeps it out of
// every response.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles new user registration. The account stays
// inactive until the mailed verification link is followed.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully. Check your email to verify the account.",
		"user":    user,
	})
}

// HandleVerifyEmail activates an account from the mailed link.
func (h *AuthHandler) HandleVerifyEmail(c *fiber.Ctx) error {
	uid := c.Query("uid")
	token := c.Query("token")
	if uid == "" || token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "uid and token query parameters are required",
		})
	}

	if err := h.authService.VerifyEmail(uid, token); err != nil {
		log.Printf("Email verification failed for uid %s: %v", uid, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Email verified. You can now log in."})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Username and password are required",
		})
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		log.Printf("Error during login for user %s: %v", req.Username, err)
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
