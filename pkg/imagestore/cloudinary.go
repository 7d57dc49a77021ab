package imagestore

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary stores item images on Cloudinary.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary creates a store from a CLOUDINARY_URL style connection string.
func NewCloudinary(cloudURL, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudURL)
	if err != nil {
		return nil, fmt.Errorf("imagestore: cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

// Upload stores the image and returns its public https URL.
// file can be anything the Cloudinary SDK accepts: io.Reader, local path or remote URL.
func (c *Cloudinary) Upload(ctx context.Context, file any) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return "", fmt.Errorf("imagestore: upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("imagestore: upload rejected: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
