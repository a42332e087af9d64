package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type NoteHandler struct {
	Notes *services.NoteService
}

func (h *NoteHandler) Create(c *fiber.Ctx) error {
	var body CreateNoteSchema
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(body); err != nil {
		return fail(c, fiber.StatusBadRequest, validate.Message(err))
	}
	n, err := h.Notes.Create(body.Title, body.Content, body.Category)
	if err != nil {
		return failFrom(c, err, "Note with that title already exists", "")
	}
	applog.Info(c, "note.create", map[string]any{"id": n.ID})
	return created(c, "note", n)
}

func (h *NoteHandler) List(c *fiber.Ctx) error {
	notes, err := h.Notes.List(c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return oops(c, err)
	}
	return okList(c, "notes", len(notes), notes)
}

func (h *NoteHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	n, err := h.Notes.Get(id)
	if err != nil {
		return failFrom(c, err, "", fmt.Sprintf("Note with ID: %s not found", id))
	}
	return okData(c, "note", n)
}

func (h *NoteHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	var body UpdateNoteSchema
	if err := c.BodyParser(&body); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	n, err := h.Notes.Update(id, body.Title, body.Content, body.Category, body.Published)
	if err != nil {
		return failFrom(c, err, "Note with that title already exists", fmt.Sprintf("Note with ID: %s not found", id))
	}
	applog.Info(c, "note.update", map[string]any{"id": id})
	return okData(c, "note", n)
}

func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "invalid id")
	}
	deleted, err := h.Notes.Delete(id)
	if err != nil {
		return oops(c, err)
	}
	if !deleted {
		return fail(c, fiber.StatusNotFound, fmt.Sprintf("Note with ID: %s not found", id))
	}
	applog.Info(c, "note.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
