package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockroom/internal/forms"
	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

// Every mutation and query answers in the same envelope:
//   {"status":"success","data":{<entity>:<row>}}    (201 create, 200 read)
//   {"status":"success","results":N,<plural>:rows}  (200 list)
//   {"status":"fail","message":...}                 (400/404/409)
//   {"status":"error","message":<raw diagnostic>}   (500)

func created(c *fiber.Ctx, key string, row any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": fiber.Map{key: row}})
}

func okData(c *fiber.Ctx, key string, row any) error {
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{key: row}})
}

func okList(c *fiber.Ctx, key string, n int, rows any) error {
	return c.JSON(fiber.Map{"status": "success", "results": n, key: rows})
}

func fail(c *fiber.Ctx, code int, msg string) error {
	return c.Status(code).JSON(fiber.Map{"status": "fail", "message": msg})
}

// oops surfaces the raw diagnostic for operator visibility; it is not
// sanitized for end users.
func oops(c *fiber.Ctx, err error) error {
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
}

// failFrom maps a failure onto the envelope taxonomy. The uniqueness check is
// the only structural branch; everything else surfaces verbatim.
func failFrom(c *fiber.Ctx, err error, conflictMsg, notFoundMsg string) error {
	var ve *services.ValidationError
	var be *forms.BadRequestError
	switch {
	case repos.IsConflict(err):
		return fail(c, fiber.StatusConflict, conflictMsg)
	case errors.Is(err, sql.ErrNoRows):
		return fail(c, fiber.StatusNotFound, notFoundMsg)
	case errors.As(err, &ve):
		return fail(c, fiber.StatusBadRequest, ve.Msg)
	case errors.As(err, &be):
		return fail(c, fiber.StatusBadRequest, be.Msg)
	default:
		return oops(c, err)
	}
}

// pathID enforces the 128-bit identifier shape on :id path params.
func pathID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "id", "value": id})
		return "", false
	}
	return id, true
}
