package repos

import (
	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AttributeRepo struct{ db *sqlx.DB }

func NewAttributeRepo(db *sqlx.DB) *AttributeRepo { return &AttributeRepo{db: db} }

const attributeCols = `id, name, slug, order_by, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *AttributeRepo) List(limit, offset int) ([]domain.ProductAttribute, error) {
	out := []domain.ProductAttribute{}
	err := r.db.Select(&out, `SELECT `+attributeCols+` FROM product_attributes ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *AttributeRepo) Get(id string) (domain.ProductAttribute, error) {
	var a domain.ProductAttribute
	err := r.db.Get(&a, `SELECT `+attributeCols+` FROM product_attributes WHERE id = ?`, id)
	return a, err
}

func (r *AttributeRepo) Insert(a domain.ProductAttribute) (domain.ProductAttribute, error) {
	a.ID = uuid.NewString()
	rows, err := r.db.NamedQuery(`
	  INSERT INTO product_attributes (id, name, slug, order_by)
	  VALUES (:id, :name, :slug, :order_by)
	  RETURNING `+attributeCols, a)
	if err != nil {
		return domain.ProductAttribute{}, err
	}
	return scanOne[domain.ProductAttribute](rows)
}
