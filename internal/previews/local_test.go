package previews

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndURL(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewLocalStore(filepath.Join(dir, "previews"))

	ref, err := s.Save(ctx, "leaf.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.Equal(t, ".png", filepath.Ext(ref))

	content, err := os.ReadFile(ref)
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(content))

	url, err := s.URL(ctx, ref)
	require.NoError(t, err)
	require.Equal(t, ref, url)
}

func TestLocalStore_DistinctRefs(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStore(t.TempDir())

	a, err := s.Save(ctx, "leaf.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := s.Save(ctx, "leaf.png", strings.NewReader("b"))
	require.NoError(t, err)

	require.NotEqual(t, a, b, "same image name must not collide")
}
