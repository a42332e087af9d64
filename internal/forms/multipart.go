package forms

import (
	"fmt"
	"log"
	"mime/multipart"
	"strings"
)

// BadRequestError marks a malformed multipart part (missing file name,
// missing or subtype-less content type).
type BadRequestError struct{ Msg string }

func (e *BadRequestError) Error() string { return e.Msg }

// GalleryField is the one product field carried as a file part.
const GalleryField = "product_gallery"

// ThumbnailField is the category counterpart of GalleryField.
const ThumbnailField = "thumbnail"

// ProductForm holds the canonical product fields by name. Binding by name
// instead of by position means reordering the insert statement's columns
// cannot silently misalign values.
type ProductForm struct {
	Title              string
	Description        string
	Category           string
	Price              string
	Sku                string
	ProductType        string
	Stock              string
	AllowBackorders    string
	LowStockThreshold  string
	ShippingWeight     string
	ProductGallery     string
	Attributes         string
	Variations         string
	ShippingDimensions string
	ShippingClass      string
	TaxStatus          string
	TaxClass           string
}

// slots is the canonical field-name table for products.
func (f *ProductForm) slots() map[string]*string {
	return map[string]*string{
		"title":               &f.Title,
		"description":         &f.Description,
		"category":            &f.Category,
		"price":               &f.Price,
		"sku":                 &f.Sku,
		"product_type":        &f.ProductType,
		"stock":               &f.Stock,
		"allow_backorders":    &f.AllowBackorders,
		"low_stock_threshold": &f.LowStockThreshold,
		"shipping_weight":     &f.ShippingWeight,
		GalleryField:          &f.ProductGallery,
		"attributes":          &f.Attributes,
		"variations":          &f.Variations,
		"shipping_dimensions": &f.ShippingDimensions,
		"shipping_class":      &f.ShippingClass,
		"tax_status":          &f.TaxStatus,
		"tax_class":           &f.TaxClass,
	}
}

// CategoryForm collects the category fields; Parent carries the raw
// client-supplied parent token.
type CategoryForm struct {
	Name        string
	Slug        string
	Description string
	DisplayType string
	Thumbnail   string
	Parent      string
}

func (f *CategoryForm) slots() map[string]*string {
	return map[string]*string{
		"name":         &f.Name,
		"slug":         &f.Slug,
		"description":  &f.Description,
		"display_type": &f.DisplayType,
		ThumbnailField: &f.Thumbnail,
		"parent":       &f.Parent,
	}
}

// DecodeProductForm demultiplexes a parsed multipart form into a ProductForm,
// persisting the gallery upload through store. Unsupplied fields stay empty;
// no required-field validation happens here.
func DecodeProductForm(mf *multipart.Form, store *FileStore) (ProductForm, error) {
	var out ProductForm
	err := demux(mf, out.slots(), GalleryField, &out.ProductGallery, store)
	return out, err
}

// DecodeCategoryForm is the category twin of DecodeProductForm; the file
// part is the thumbnail.
func DecodeCategoryForm(mf *multipart.Form, store *FileStore) (CategoryForm, error) {
	var out CategoryForm
	err := demux(mf, out.slots(), ThumbnailField, &out.Thumbnail, store)
	return out, err
}

// demux routes every text part by field name into its slot regardless of
// arrival order. Unrecognized names are logged and skipped. When a file part
// arrives under fileField it is persisted and its relative path wins the slot.
func demux(mf *multipart.Form, slots map[string]*string, fileField string, fileSlot *string, store *FileStore) error {
	for name, vals := range mf.Value {
		p, ok := slots[name]
		if !ok {
			log.Printf("[form] skipping unknown field %q", name)
			continue
		}
		if len(vals) > 0 {
			*p = vals[0]
		}
	}
	if fhs := mf.File[fileField]; len(fhs) > 0 {
		rel, err := saveUpload(fhs[0], store)
		if err != nil {
			return err
		}
		*fileSlot = rel
	}
	return nil
}

func saveUpload(fh *multipart.FileHeader, store *FileStore) (string, error) {
	if fh.Filename == "" {
		return "", &BadRequestError{Msg: "upload is missing a file name"}
	}
	ct := fh.Header.Get("Content-Type")
	kind, subtype, ok := strings.Cut(ct, "/")
	if !ok || kind == "" || subtype == "" {
		return "", &BadRequestError{Msg: fmt.Sprintf("content type %q has no subtype", ct)}
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return store.Save(fh.Filename, src)
}
