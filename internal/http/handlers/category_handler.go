package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/forms"
	applog "stockroom/internal/log"
	"stockroom/internal/services"
)

type CategoryHandler struct {
	Cats  *services.CategoryService
	Files *forms.FileStore
}

// Create ingests a multipart category form. The thumbnail upload is
// persisted like a product gallery image, then the tree builder turns the
// raw parent token into a level and a parent reference.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	cf, err := forms.DecodeCategoryForm(mf, h.Files)
	if err != nil {
		return failFrom(c, err, "", "")
	}
	cat, err := h.Cats.Create(cf)
	if err != nil {
		return failFrom(c, err, "Category with that name already exists", "")
	}
	applog.Info(c, "category.create", map[string]any{"id": cat.ID, "lvl": cat.Lvl, "parent": cat.Parent})
	return created(c, "category", cat)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Cats.List(c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return oops(c, err)
	}
	return okList(c, "categories", len(cats), cats)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	cat, err := h.Cats.Get(id)
	if err != nil {
		return failFrom(c, err, "", fmt.Sprintf("Category with ID: %s not found", id))
	}
	return okData(c, "category", cat)
}
