package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"stockroom/internal/config"
	"stockroom/internal/http/handlers"
	"stockroom/internal/repos"
)

// Minimal app setup mirroring the route table in cmd/stockroom.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	cfg := config.Config{DBDSN: ":memory:", MediaDir: t.TempDir()}
	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 8 << 20
	app.Use(requestid.New())

	deps, err := handlers.NewDeps(db, cfg)
	if err != nil {
		t.Fatal(err)
	}

	app.Post("/", deps.NoteHandler.Create)
	app.Post("/create_product", deps.ProductHandler.Create)
	app.Post("/create_category", deps.CategoryHandler.Create)
	app.Get("/products", deps.ProductHandler.Browse)

	api := app.Group("/api")
	api.Get("/healthchecker", handlers.Health)
	api.Post("/notes/", deps.NoteHandler.Create)
	api.Get("/notes", deps.NoteHandler.List)
	api.Get("/notes/:id", deps.NoteHandler.Get)
	api.Patch("/notes/:id", deps.NoteHandler.Update)
	api.Delete("/notes/:id", deps.NoteHandler.Delete)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/attributes", deps.AttributeHandler.Create)
	api.Get("/attributes", deps.AttributeHandler.List)
	api.Get("/attributes/:id", deps.AttributeHandler.Get)
	api.Post("/terms", deps.TermHandler.Create)
	api.Get("/terms", deps.TermHandler.List)
	api.Get("/terms/:id", deps.TermHandler.Get)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Get("/categories/:id", deps.CategoryHandler.Get)

	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode %q: %v", b, err)
	}
	return out
}

func entity(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("no data object in %v", body)
	}
	row, ok := data[key].(map[string]any)
	if !ok {
		t.Fatalf("no %q row in %v", key, data)
	}
	return row
}

type upload struct {
	field, name, ctype string
	data               []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, file *upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.name))
		h.Set("Content-Type", file.ctype)
		pw, err := w.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := pw.Write(file.data); err != nil {
			t.Fatal(err)
		}
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
