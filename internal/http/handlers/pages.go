package handlers

import "github.com/gofiber/fiber/v2"

// PageHandler serves the HTML input forms. The template set is loaded once
// at startup and injected through the app's Views engine.
type PageHandler struct{}

func (h *PageHandler) NoteForm(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

func (h *PageHandler) ProductForm(c *fiber.Ctx) error {
	return c.Render("create_product", fiber.Map{})
}

func (h *PageHandler) CategoryForm(c *fiber.Ctx) error {
	return c.Render("create_category", fiber.Map{})
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Simple catalog API with Go, Fiber, sqlx, and SQLite",
	})
}
