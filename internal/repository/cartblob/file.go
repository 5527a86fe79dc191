package cartblob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type fileStorage struct {
	dir string
}

// NewFile stores each cart blob as a JSON file under dir. The directory is
// created on first use.
func NewFile(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart data dir: %w", err)
	}
	return &fileStorage{dir: dir}, nil
}

func (s *fileStorage) Load(_ context.Context, key string) ([]byte, error) {
	blob, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return blob, nil
}

func (s *fileStorage) Save(_ context.Context, key string, blob []byte) error {
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *fileStorage) Ping(_ context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

// path maps a cart key to a file name. Keys contain ':' separators, which
// are not portable across filesystems.
func (s *fileStorage) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(s.dir, name)
}
