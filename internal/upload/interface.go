package upload

import (
	"context"
	"io"
)

// MaxImageBytes bounds a single item image.
const MaxImageBytes = 10 << 20

// Store persists an image and returns its public URL.
type Store interface {
	Upload(ctx context.Context, file any) (string, error)
}

type ImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type UseCase interface {
	UploadImage(ctx context.Context, input ImageInput) (string, error)
}
