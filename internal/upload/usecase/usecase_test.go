package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pourpal-backoffice/internal/upload"
	"pourpal-backoffice/pkg/log"
)

type fakeStore struct {
	calls int
	err   error
}

func (f *fakeStore) Upload(ctx context.Context, file any) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://res.cloudinary.com/demo/image/upload/gin.png", nil
}

func input(ct string, size int64) upload.ImageInput {
	return upload.ImageInput{Filename: "gin.png", ContentType: ct, Size: size, Content: strings.NewReader("png")}
}

func TestUploadImage(t *testing.T) {
	tests := []struct {
		name    string
		input   upload.ImageInput
		wantErr error
	}{
		{name: "png", input: input("image/png", 3)},
		{name: "jpeg with params", input: input("image/jpeg; charset=binary", 3)},
		{name: "empty", input: input("image/png", 0), wantErr: upload.ErrEmptyFile},
		{name: "too large", input: input("image/png", upload.MaxImageBytes+1), wantErr: upload.ErrTooLarge},
		{name: "pdf", input: input("application/pdf", 3), wantErr: upload.ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			url, err := New(store, log.NewNop()).UploadImage(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, store.calls)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, url, "https://")
		})
	}
}

func TestUploadImageStoreFailure(t *testing.T) {
	_, err := New(&fakeStore{err: errors.New("quota")}, log.NewNop()).UploadImage(context.Background(), input("image/png", 3))
	assert.ErrorIs(t, err, upload.ErrStoreFailed)
}
