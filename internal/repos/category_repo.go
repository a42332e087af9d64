package repos

import (
	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `
  id, name, slug, description, display_type, thumbnail, lvl, parent,
  parent_id, count, child_categories, created_at,
  COALESCE(updated_at,'') AS updated_at`

func (r *CategoryRepo) List(limit, offset int) ([]domain.ProductCategory, error) {
	out := []domain.ProductCategory{}
	err := r.db.Select(&out, `SELECT `+categoryCols+` FROM product_categories ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.ProductCategory, error) {
	var c domain.ProductCategory
	err := r.db.Get(&c, `SELECT `+categoryCols+` FROM product_categories WHERE id = ?`, id)
	return c, err
}

func (r *CategoryRepo) Insert(c domain.ProductCategory) (domain.ProductCategory, error) {
	c.ID = uuid.NewString()
	rows, err := r.db.NamedQuery(`
	  INSERT INTO product_categories (
	    id, name, slug, description, display_type, thumbnail, lvl, parent,
	    parent_id, count, child_categories
	  ) VALUES (
	    :id, :name, :slug, :description, :display_type, :thumbnail, :lvl, :parent,
	    :parent_id, :count, :child_categories
	  ) RETURNING `+categoryCols, c)
	if err != nil {
		return domain.ProductCategory{}, err
	}
	return scanOne[domain.ProductCategory](rows)
}
