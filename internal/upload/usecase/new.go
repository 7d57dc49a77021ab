package usecase

import (
	"context"
	"fmt"
	"strings"

	"pourpal-backoffice/internal/upload"
	"pourpal-backoffice/pkg/log"
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var _ upload.UseCase = &implUseCase{}

type implUseCase struct {
	store upload.Store
	l     log.Logger
}

func New(store upload.Store, l log.Logger) *implUseCase {
	return &implUseCase{store: store, l: l}
}

func (uc *implUseCase) UploadImage(ctx context.Context, input upload.ImageInput) (string, error) {
	if input.Size <= 0 || input.Content == nil {
		return "", upload.ErrEmptyFile
	}
	if input.Size > upload.MaxImageBytes {
		return "", upload.ErrTooLarge
	}
	ct := strings.ToLower(strings.TrimSpace(strings.Split(input.ContentType, ";")[0]))
	if !allowedTypes[ct] {
		return "", upload.ErrUnsupportedType
	}

	url, err := uc.store.Upload(ctx, input.Content)
	if err != nil {
		uc.l.Errorf(ctx, "upload.usecase.UploadImage: %s: %v", input.Filename, err)
		return "", fmt.Errorf("%w: %w", upload.ErrStoreFailed, err)
	}
	return url, nil
}
