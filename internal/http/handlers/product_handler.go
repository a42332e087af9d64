package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/forms"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Files   *forms.FileStore
}

// Create ingests a multipart form: text fields demultiplexed by name, the
// gallery upload persisted to the media dir. No field is required here.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	pf, err := forms.DecodeProductForm(mf, h.Files)
	if err != nil {
		return failFrom(c, err, "", "")
	}
	p, err := h.Catalog.CreateProduct(pf)
	if err != nil {
		// Historical message, entity name included; kept verbatim.
		return failFrom(c, err, "Note with that title already exists", "")
	}
	applog.Info(c, "product.create", map[string]any{"id": p.ID, "gallery": p.ProductGallery})
	return created(c, "product", p)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return oops(c, err)
	}
	return okList(c, "products", len(products), products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return failFrom(c, err, "", fmt.Sprintf("Product with ID: %s not found", id))
	}
	return okData(c, "product", p)
}

// Browse renders the templated product grid; it pages wider than the JSON
// list by default.
func (h *ProductHandler) Browse(c *fiber.Ctx) error {
	products, err := h.Catalog.FeaturedProducts(c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return oops(c, err)
	}
	return c.Render("products", fiber.Map{"Products": products})
}
