package previews

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore keeps previews as files in a directory. The ref is the file
// path.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Save(ctx context.Context, imageName string, image io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating dir: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%v%s", uuid.New(), filepath.Ext(imageName)))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating preview file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, image); err != nil {
		return "", fmt.Errorf("error writing preview file: %w", err)
	}
	return path, nil
}

func (s *LocalStore) URL(ctx context.Context, ref string) (string, error) {
	return ref, nil
}
