package upload

import "errors"

var (
	ErrEmptyFile       = errors.New("upload: file is empty")
	ErrTooLarge        = errors.New("upload: file is too large")
	ErrUnsupportedType = errors.New("upload: file is not a supported image")
	ErrStoreFailed     = errors.New("upload: image store failed")
)
