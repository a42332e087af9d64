package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type AttributeHandler struct {
	Catalog *services.CatalogService
}

func (h *AttributeHandler) Create(c *fiber.Ctx) error {
	var body CreateAttributeSchema
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(body); err != nil {
		return fail(c, fiber.StatusBadRequest, validate.Message(err))
	}
	a, err := h.Catalog.CreateAttribute(body.Name, body.Slug, body.OrderBy)
	if err != nil {
		return failFrom(c, err, "Attribute with that name already exists", "")
	}
	applog.Info(c, "attribute.create", map[string]any{"id": a.ID})
	return created(c, "attribute", a)
}

func (h *AttributeHandler) List(c *fiber.Ctx) error {
	attrs, err := h.Catalog.ListAttributes(c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return oops(c, err)
	}
	return okList(c, "attributes", len(attrs), attrs)
}

func (h *AttributeHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	a, err := h.Catalog.GetAttribute(id)
	if err != nil {
		return failFrom(c, err, "", fmt.Sprintf("Attribute with ID: %s not found", id))
	}
	return okData(c, "attribute", a)
}
