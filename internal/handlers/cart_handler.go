package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// RegisterRoutes registers the cart routes with the Fiber app. All of
// them require authentication.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/items/:id", h.HandleUpdateItem)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
}

// HandleGetCart returns the user's cart with a live total.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	view, err := h.cartService.GetCart(currentUserID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return respondError(c, err)
	}
	return c.JSON(view)
}

// AddItemRequest represents the request body for adding to the cart.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HandleAddItem adds a product to the cart, incrementing an existing
// line for the same product. Quantity defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "product_id is required",
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	userID := currentUserID(c)
	if err := h.cartService.Add(userID, req.ProductID, req.Quantity); err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return respondError(c, err)
	}

	view, err := h.cartService.GetCart(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateItemRequest represents the request body for a quantity change.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateItem sets a cart line's quantity; zero or negative removes
// the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	userID := currentUserID(c)
	if err := h.cartService.SetQuantity(userID, c.Params("id"), req.Quantity); err != nil {
		log.Printf("Error updating cart item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	view, err := h.cartService.GetCart(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// HandleRemoveItem deletes a cart line.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := currentUserID(c)
	if err := h.cartService.Remove(userID, c.Params("id")); err != nil {
		log.Printf("Error removing cart item %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}

	view, err := h.cartService.GetCart(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}
