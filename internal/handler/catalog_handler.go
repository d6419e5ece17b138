package handler

import (
	"go-warrior-store/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ProductResponse decorates a catalog product with its resolved asset URL
type ProductResponse struct {
	catalog.Product
	ModelURL string `json:"model_url,omitempty"`
}

func (h *CatalogHandler) toResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ProductResponse{Product: p, ModelURL: h.catalog.ModelURL(&p)}
	}
	return out
}

// GetProducts lists catalog products, filtered by race and optionally by slot
// GET /api/v1/products?race=human[&slot=helmet]
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	race := catalog.Race(c.Query("race"))
	if !race.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown race"})
	}

	if slot := c.Query("slot"); slot != "" {
		items := h.catalog.ListItemsBySlot(race, catalog.Slot(slot))
		return c.JSON(h.toResponses(items))
	}

	return c.JSON(h.toResponses(h.catalog.ListByRace(race)))
}

// GetProduct returns one product by id
// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product := h.catalog.FindByID(c.Params("id"))
	if product == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(ProductResponse{Product: *product, ModelURL: h.catalog.ModelURL(product)})
}

// GetBundles lists the themed and complete bundles for a race
// GET /api/v1/bundles?race=human
func (h *CatalogHandler) GetBundles(c *fiber.Ctx) error {
	race := catalog.Race(c.Query("race"))
	if !race.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown race"})
	}
	return c.JSON(h.toResponses(h.catalog.ListBundles(race)))
}
