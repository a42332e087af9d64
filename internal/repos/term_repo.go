package repos

import (
	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TermRepo struct{ db *sqlx.DB }

func NewTermRepo(db *sqlx.DB) *TermRepo { return &TermRepo{db: db} }

func (r *TermRepo) List(limit, offset int) ([]domain.ProductTerm, error) {
	out := []domain.ProductTerm{}
	err := r.db.Select(&out, `
	  SELECT id, product_id, name, slug, description
	  FROM product_terms ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *TermRepo) Get(id string) (domain.ProductTerm, error) {
	var t domain.ProductTerm
	err := r.db.Get(&t, `SELECT id, product_id, name, slug, description FROM product_terms WHERE id = ?`, id)
	return t, err
}

// Insert does not check that the owning attribute exists; the foreign-key
// constraint is the only referential guard.
func (r *TermRepo) Insert(t domain.ProductTerm) (domain.ProductTerm, error) {
	t.ID = uuid.NewString()
	rows, err := r.db.NamedQuery(`
	  INSERT INTO product_terms (id, product_id, name, slug, description)
	  VALUES (:id, :product_id, :name, :slug, :description)
	  RETURNING id, product_id, name, slug, description`, t)
	if err != nil {
		return domain.ProductTerm{}, err
	}
	return scanOne[domain.ProductTerm](rows)
}
