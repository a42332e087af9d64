package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/forms"
	"stockroom/internal/repos"
)

// RootParent is the sentinel token a client sends for a top-level category.
const RootParent = "-1"

// ParentRef is the normalized form of a client-supplied parent token.
type ParentRef struct {
	Parent   string  // sentinel, or the parent's id
	ParentID *string // nil for root
	Lvl      int     // depth claimed by the token
}

// ParseParent normalizes a raw parent token. The root level is derived by
// parsing the sentinel itself and adding one, not from a constant; non-root
// tokens split on the first '|' into (parent_id, parent_lvl) and the level
// becomes parent_lvl + 1.
func ParseParent(token string) (ParentRef, error) {
	if token == "" {
		token = RootParent
	}
	if token == RootParent {
		n, err := strconv.Atoi(RootParent)
		if err != nil {
			return ParentRef{}, err
		}
		return ParentRef{Parent: token, Lvl: n + 1}, nil
	}
	pid, plvl, ok := strings.Cut(token, "|")
	if !ok || pid == "" {
		return ParentRef{}, &ValidationError{Msg: fmt.Sprintf("malformed parent token %q", token)}
	}
	n, err := strconv.Atoi(plvl)
	if err != nil {
		return ParentRef{}, &ValidationError{Msg: fmt.Sprintf("parent token %q has a non-numeric level", token)}
	}
	return ParentRef{Parent: pid, ParentID: &pid, Lvl: n + 1}, nil
}

type CategoryService struct {
	Cats *repos.CategoryRepo
}

func NewCategoryService(cats *repos.CategoryRepo) *CategoryService {
	return &CategoryService{Cats: cats}
}

// Create builds a category node from a collected form. The parent token's
// claimed level is not trusted: for non-root tokens the stored parent row is
// loaded and the level recomputed from it, and a token naming a parent that
// does not exist is rejected.
func (s *CategoryService) Create(f forms.CategoryForm) (domain.ProductCategory, error) {
	if f.Name == "" || f.Slug == "" {
		return domain.ProductCategory{}, &ValidationError{Msg: "name and slug are required"}
	}

	ref, err := ParseParent(f.Parent)
	if err != nil {
		return domain.ProductCategory{}, err
	}
	if ref.ParentID != nil {
		parent, err := s.Cats.Get(*ref.ParentID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProductCategory{}, &ValidationError{Msg: fmt.Sprintf("parent category %s not found", *ref.ParentID)}
		}
		if err != nil {
			return domain.ProductCategory{}, err
		}
		stored, err := strconv.Atoi(parent.Lvl)
		if err != nil {
			return domain.ProductCategory{}, fmt.Errorf("stored level %q on category %s: %w", parent.Lvl, parent.ID, err)
		}
		ref.Lvl = stored + 1
	}

	return s.Cats.Insert(domain.ProductCategory{
		Name:        f.Name,
		Slug:        f.Slug,
		Description: f.Description,
		DisplayType: f.DisplayType,
		Thumbnail:   f.Thumbnail,
		Lvl:         strconv.Itoa(ref.Lvl),
		Parent:      ref.Parent,
		ParentID:    ref.ParentID,
	})
}

func (s *CategoryService) List(page, limit int) ([]domain.ProductCategory, error) {
	l, off := Window(page, limit, 10)
	return s.Cats.List(l, off)
}

func (s *CategoryService) Get(id string) (domain.ProductCategory, error) {
	return s.Cats.Get(id)
}
