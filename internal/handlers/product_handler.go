package handlers

import (
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles the public catalog routes: search, detail and
// the category list.
type ProductHandler struct {
	catalogService *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleSearchProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleGetCategories)
}

// ProductResponse is the serialization contract for a product: the
// category appears as its name, not a nested object.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Department  string  `json:"department"`
}

func toProductResponse(p models.Product) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Department:  p.Department,
	}
	if p.Category != nil {
		resp.Category = p.Category.Name
	}
	return resp
}

// HandleSearchProducts lists products with optional free-text query,
// category filter and pagination (?q=&category=&page=&page_size=).
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")
	categoryID := c.Query("category")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 10)

	result, err := h.catalogService.Search(query, categoryID, page, pageSize)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return respondError(c, err)
	}

	items := make([]ProductResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, toProductResponse(p))
	}
	return c.JSON(fiber.Map{
		"items":     items,
		"total":     result.Total,
		"page":      result.Page,
		"page_size": result.PageSize,
	})
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.catalogService.GetProduct(c.Params("id"))
	if err != nil {
		log.Printf("Error getting product %s: %v", c.Params("id"), err)
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(*product))
}

// HandleGetCategories lists all categories.
func (h *ProductHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return respondError(c, err)
	}
	return c.JSON(categories)
}
