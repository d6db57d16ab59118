package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler is the staff-only CRUD surface: product and category
// management plus the full order list and status transitions. Routes
// must be mounted behind AuthRequired and StaffOnly.
type AdminHandler struct {
	catalogService *services.CatalogService
	orderService   *services.OrderService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(catalogService *services.CatalogService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		catalogService: catalogService,
		orderService:   orderService,
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
	router.Post("/categories", h.HandleCreateCategory)
	router.Get("/orders", h.HandleGetAllOrders)
	router.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
}

// HandleCreateProduct creates a new product.
func (h *AdminHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.catalogService.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *AdminHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")

	if err := h.catalogService.UpdateProduct(&product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *AdminHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteProduct(c.Params("id")); err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// HandleCreateCategory creates a new category.
func (h *AdminHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.catalogService.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleGetAllOrders lists every order in the ledger.
func (h *AdminHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// UpdateStatusRequest represents the request body for a status change.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateOrderStatus transitions an order between Pending and
// Completed, regardless of who owns it.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required",
		})
	}

	orderID := c.Params("id")
	if err := h.orderService.UpdateStatus(orderID, models.OrderStatus(req.Status)); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated successfully",
		"status":  req.Status,
	})
}
