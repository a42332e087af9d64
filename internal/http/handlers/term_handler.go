package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type TermHandler struct {
	Catalog *services.CatalogService
}

func (h *TermHandler) Create(c *fiber.Ctx) error {
	var body CreateTermSchema
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(body); err != nil {
		return fail(c, fiber.StatusBadRequest, validate.Message(err))
	}
	t, err := h.Catalog.CreateTerm(body.ProductID, body.Name, body.Slug, body.Description)
	if err != nil {
		return failFrom(c, err, "Term with that name already exists", "")
	}
	applog.Info(c, "term.create", map[string]any{"id": t.ID, "attribute": t.ProductID})
	return created(c, "term", t)
}

func (h *TermHandler) List(c *fiber.Ctx) error {
	terms, err := h.Catalog.ListTerms(c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return oops(c, err)
	}
	return okList(c, "terms", len(terms), terms)
}

func (h *TermHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	t, err := h.Catalog.GetTerm(id)
	if err != nil {
		return failFrom(c, err, "", fmt.Sprintf("Term with ID: %s not found", id))
	}
	return okData(c, "term", t)
}
