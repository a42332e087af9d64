package repos

import (
	"stockroom/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type NoteRepo struct{ db *sqlx.DB }

func NewNoteRepo(db *sqlx.DB) *NoteRepo { return &NoteRepo{db: db} }

const noteCols = `id, title, content, category, published, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *NoteRepo) List(limit, offset int) ([]domain.Note, error) {
	out := []domain.Note{}
	err := r.db.Select(&out, `SELECT `+noteCols+` FROM notes ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	return out, err
}

func (r *NoteRepo) Get(id string) (domain.Note, error) {
	var n domain.Note
	err := r.db.Get(&n, `SELECT `+noteCols+` FROM notes WHERE id = ?`, id)
	return n, err
}

func (r *NoteRepo) Insert(title, content, category string) (domain.Note, error) {
	rows, err := r.db.Queryx(`
	  INSERT INTO notes (id, title, content, category)
	  VALUES (?, ?, ?, ?)
	  RETURNING `+noteCols, uuid.NewString(), title, content, category)
	if err != nil {
		return domain.Note{}, err
	}
	return scanOne[domain.Note](rows)
}

// Update patches only the supplied fields; nil keeps the stored value.
// Returns sql.ErrNoRows when the id has no matching row.
func (r *NoteRepo) Update(id string, title, content, category *string, published *bool) (domain.Note, error) {
	rows, err := r.db.Queryx(`
	  UPDATE notes SET
	    title = COALESCE(?, title),
	    content = COALESCE(?, content),
	    category = COALESCE(?, category),
	    published = COALESCE(?, published),
	    updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	  RETURNING `+noteCols, title, content, category, published, id)
	if err != nil {
		return domain.Note{}, err
	}
	return scanOne[domain.Note](rows)
}

// Delete reports false when the id had no matching row.
func (r *NoteRepo) Delete(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
