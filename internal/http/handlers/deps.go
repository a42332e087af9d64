package handlers

import (
	"github.com/jmoiron/sqlx"

	"stockroom/internal/config"
	"stockroom/internal/forms"
	"stockroom/internal/repos"
	"stockroom/internal/services"
)

type Deps struct {
	NoteHandler      *NoteHandler
	ProductHandler   *ProductHandler
	AttributeHandler *AttributeHandler
	TermHandler      *TermHandler
	CategoryHandler  *CategoryHandler
	PageHandler      *PageHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	files, err := forms.NewFileStore(cfg.MediaDir)
	if err != nil {
		return nil, err
	}

	prodRepo := repos.NewProductRepo(db)
	attrRepo := repos.NewAttributeRepo(db)
	termRepo := repos.NewTermRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	noteRepo := repos.NewNoteRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo, attrRepo, termRepo)
	categorySvc := services.NewCategoryService(catRepo)
	noteSvc := services.NewNoteService(noteRepo)

	return &Deps{
		NoteHandler:      &NoteHandler{Notes: noteSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc, Files: files},
		AttributeHandler: &AttributeHandler{Catalog: catalogSvc},
		TermHandler:      &TermHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Cats: categorySvc, Files: files},
		PageHandler:      &PageHandler{},
	}, nil
}
