// Package previews stores uploaded image previews. The ref returned by Save
// is what gets persisted on identification records; URL resolves a ref to
// something the UI can display.
package previews

import (
	"context"
	"io"
)

type Store interface {
	// Save stores the image bytes and returns an opaque preview ref.
	Save(ctx context.Context, imageName string, image io.Reader) (string, error)

	// URL resolves a previously saved ref to a displayable location.
	URL(ctx context.Context, ref string) (string, error)
}
