package handlers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func productFields(title string) map[string]string {
	return map[string]string{
		"title":               title,
		"description":         "Classic 8-bit console",
		"category":            "consoles",
		"price":               "199.00",
		"sku":                 "NES-001",
		"product_type":        "simple",
		"stock":               "5",
		"allow_backorders":    "no",
		"low_stock_threshold": "2",
		"shipping_weight":     "1.2",
		"attributes":          "",
		"variations":          "",
		"shipping_dimensions": "30x20x10",
		"shipping_class":      "standard",
		"tax_status":          "taxable",
		"tax_class":           "standard",
	}
}

func TestProductCreateAndConflict(t *testing.T) {
	app := newTestApp(t)

	req := multipartRequest(t, "/create_product", productFields("NES Console"),
		&upload{field: "product_gallery", name: "a b.png", ctype: "image/png", data: []byte("png")})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	row := entity(t, decodeBody(t, resp), "product")
	if row["title"] != "NES Console" || row["price"] != "199.00" {
		t.Fatalf("row = %v", row)
	}
	gallery, _ := row["product_gallery"].(string)
	if strings.Contains(gallery, " ") || !strings.Contains(gallery, "a+b.png") {
		t.Fatalf("gallery path %q not escaped", gallery)
	}

	// same title again: uniqueness conflict with the historical message
	resp, err = app.Test(multipartRequest(t, "/create_product", productFields("NES Console"), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "fail" || body["message"] != "Note with that title already exists" {
		t.Fatalf("body = %v", body)
	}
}

func TestProductUploadBadContentType(t *testing.T) {
	app := newTestApp(t)

	req := multipartRequest(t, "/create_product", productFields("Philco 1939"),
		&upload{field: "product_gallery", name: "r.png", ctype: "garbage", data: []byte("x")})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	// nothing inserted
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/products", nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decodeBody(t, resp)
	if body["results"] != float64(0) {
		t.Fatalf("results = %v, want 0", body["results"])
	}
}

func TestProductCreateAllowsEmptyFields(t *testing.T) {
	app := newTestApp(t)

	// the plain product path performs no validation at all
	resp, err := app.Test(multipartRequest(t, "/create_product", map[string]string{"title": "Bare"}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	row := entity(t, decodeBody(t, resp), "product")
	if row["sku"] != "" || row["price"] != "" {
		t.Fatalf("unsupplied fields must default empty: %v", row)
	}
}

func TestCategoryTreeLevels(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(multipartRequest(t, "/create_category", map[string]string{
		"name": "Consoles", "slug": "consoles", "parent": "-1",
	}, &upload{field: "thumbnail", name: "thumb 1.jpg", ctype: "image/jpeg", data: []byte("jpg")}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	root := entity(t, decodeBody(t, resp), "category")
	if root["lvl"] != "0" || root["parent"] != "-1" {
		t.Fatalf("root = %v", root)
	}
	thumb, _ := root["thumbnail"].(string)
	if !strings.Contains(thumb, "thumb+1.jpg") {
		t.Fatalf("thumbnail %q not escaped", thumb)
	}

	rootID, _ := root["id"].(string)
	resp, err = app.Test(multipartRequest(t, "/create_category", map[string]string{
		"name": "Handhelds", "slug": "handhelds",
		"parent": fmt.Sprintf("%s|7", rootID), // wrong claimed level on purpose
	}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	child := entity(t, decodeBody(t, resp), "category")
	if child["lvl"] != "1" {
		t.Fatalf("child lvl = %v, want recomputed \"1\"", child["lvl"])
	}
	if child["parent_id"] != rootID {
		t.Fatalf("child parent_id = %v, want %s", child["parent_id"], rootID)
	}
}

func TestCategoryMissingSlugRejected(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(multipartRequest(t, "/create_category", map[string]string{
		"name": "No Slug", "parent": "-1",
	}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["status"] != "fail" {
		t.Fatalf("body = %v", body)
	}
}

func TestCategoryUnknownParentRejected(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(multipartRequest(t, "/create_category", map[string]string{
		"name": "Orphans", "slug": "orphans", "parent": "does-not-exist|3",
	}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCategoriesEmptyListIsSuccess(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "success" || body["results"] != float64(0) {
		t.Fatalf("body = %v", body)
	}
}
