package repos

import (
	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, title, description, category, price, sku, product_type, stock,
  allow_backorders, low_stock_threshold, shipping_weight, product_gallery,
  attributes, variations, shipping_dimensions, shipping_class, tax_status,
  tax_class, published, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List(limit, offset int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// Insert binds by column name, so reordering columns cannot silently
// misalign values, and returns the freshly inserted row.
func (r *ProductRepo) Insert(p domain.Product) (domain.Product, error) {
	p.ID = uuid.NewString()
	rows, err := r.db.NamedQuery(`
	  INSERT INTO products (
	    id, title, description, category, price, sku, product_type, stock,
	    allow_backorders, low_stock_threshold, shipping_weight, product_gallery,
	    attributes, variations, shipping_dimensions, shipping_class, tax_status,
	    tax_class, published
	  ) VALUES (
	    :id, :title, :description, :category, :price, :sku, :product_type, :stock,
	    :allow_backorders, :low_stock_threshold, :shipping_weight, :product_gallery,
	    :attributes, :variations, :shipping_dimensions, :shipping_class, :tax_status,
	    :tax_class, :published
	  ) RETURNING `+productCols, p)
	if err != nil {
		return domain.Product{}, err
	}
	return scanOne[domain.Product](rows)
}
