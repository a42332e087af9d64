package domain

import "encoding/json"

// Product keeps every commerce field as text, numeric-looking ones included.
// The store never parses them; callers must not assume they do parse.
type Product struct {
	ID                 string `db:"id" json:"id"`
	Title              string `db:"title" json:"title"`
	Description        string `db:"description" json:"description"`
	Category           string `db:"category" json:"category"`
	Price              string `db:"price" json:"price"`
	Sku                string `db:"sku" json:"sku"`
	ProductType        string `db:"product_type" json:"product_type"`
	Stock              string `db:"stock" json:"stock"`
	AllowBackorders    string `db:"allow_backorders" json:"allow_backorders"`
	LowStockThreshold  string `db:"low_stock_threshold" json:"low_stock_threshold"`
	ShippingWeight     string `db:"shipping_weight" json:"shipping_weight"`
	ProductGallery     string `db:"product_gallery" json:"product_gallery"`
	Attributes         string `db:"attributes" json:"attributes"`
	Variations         string `db:"variations" json:"variations"`
	ShippingDimensions string `db:"shipping_dimensions" json:"shipping_dimensions"`
	ShippingClass      string `db:"shipping_class" json:"shipping_class"`
	TaxStatus          string `db:"tax_status" json:"tax_status"`
	TaxClass           string `db:"tax_class" json:"tax_class"`
	Published          *bool  `db:"published" json:"published"`
	CreatedAt          string `db:"created_at" json:"createdAt"`
	UpdatedAt          string `db:"updated_at" json:"updatedAt"`
}

type ProductAttribute struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Slug      string `db:"slug" json:"slug"`
	OrderBy   string `db:"order_by" json:"order_by"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

// ProductTerm belongs to a ProductAttribute. ProductID names the owning
// attribute, not a product; the column name is historical.
type ProductTerm struct {
	ID          string  `db:"id" json:"id"`
	ProductID   string  `db:"product_id" json:"product_id"`
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Description *string `db:"description" json:"description"`
}

// ProductCategory is a node in the category tree. Lvl is the depth in the
// parent chain, text-encoded, fixed at creation time. Parent holds either
// the root sentinel or the parent's id.
type ProductCategory struct {
	ID              string          `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	Slug            string          `db:"slug" json:"slug"`
	Description     string          `db:"description" json:"description"`
	DisplayType     string          `db:"display_type" json:"display_type"`
	Thumbnail       string          `db:"thumbnail" json:"thumbnail"`
	Lvl             string          `db:"lvl" json:"lvl"`
	Parent          string          `db:"parent" json:"parent"`
	ParentID        *string         `db:"parent_id" json:"parent_id"`
	Count           int             `db:"count" json:"count"`
	ChildCategories json.RawMessage `db:"child_categories" json:"child_categories"`
	CreatedAt       string          `db:"created_at" json:"createdAt"`
	UpdatedAt       string          `db:"updated_at" json:"updatedAt"`
}

type Note struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Content   string `db:"content" json:"content"`
	Category  string `db:"category" json:"category"`
	Published bool   `db:"published" json:"published"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}
