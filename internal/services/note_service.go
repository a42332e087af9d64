package services

import (
	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

type NoteService struct {
	Notes *repos.NoteRepo
}

func NewNoteService(notes *repos.NoteRepo) *NoteService { return &NoteService{Notes: notes} }

func (s *NoteService) Create(title, content, category string) (domain.Note, error) {
	return s.Notes.Insert(title, content, category)
}

func (s *NoteService) List(page, limit int) ([]domain.Note, error) {
	l, off := Window(page, limit, 10)
	return s.Notes.List(l, off)
}

func (s *NoteService) Get(id string) (domain.Note, error) {
	return s.Notes.Get(id)
}

func (s *NoteService) Update(id string, title, content, category *string, published *bool) (domain.Note, error) {
	return s.Notes.Update(id, title, content, category, published)
}

func (s *NoteService) Delete(id string) (bool, error) {
	return s.Notes.Delete(id)
}
