package handlers

import (
	"log"

	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles checkout and the user-facing order history.
type OrderHandler struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkoutService *services.CheckoutService, orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// RegisterRoutes registers the checkout and order routes with the Fiber
// app. All of them require authentication.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/checkout", h.HandleCheckout)

	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleCheckout creates an order from the caller's cart and clears the
// cart, all in one transaction. An empty cart is a 400 with no order
// created.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.checkoutService.Checkout(currentUserID(c), currentTier(c))
	if err != nil {
		log.Printf("Error during checkout: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders lists the caller's orders, newest first.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListForUser(currentUserID(c))
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves one of the caller's orders. Orders owned
// by other users read as 404.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.orderService.Get(currentUserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error getting order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleDeleteOrder deletes one of the caller's orders together with its
// items.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.orderService.Delete(currentUserID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting order %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
