package forms

import (
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// FileStore persists uploads under a single directory. Names are escaped so
// unsafe characters (spaces included) never reach the filesystem. Two uploads
// with the same original name overwrite each other, last write wins.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

// Save writes src to an escaped form of name and returns the relative path
// to record in the store. A partially written file is removed on any error
// so a disconnect mid-upload leaves nothing behind.
func (s *FileStore) Save(name string, src io.Reader) (string, error) {
	enc := url.QueryEscape(name)
	dst := filepath.Join(s.Dir, enc)

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return path.Join("media", enc), nil
}
