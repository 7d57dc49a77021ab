package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pourpal-backoffice/internal/middleware"
	"pourpal-backoffice/internal/upload"
	pkgErrors "pourpal-backoffice/pkg/errors"
	"pourpal-backoffice/pkg/log"
	"pourpal-backoffice/pkg/response"
)

type Handler interface {
	UploadImage(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc upload.UseCase
}

func New(l log.Logger, uc upload.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

type imageResp struct {
	ImageURL string `json:"image_url"`
}

var errMissingFile = pkgErrors.NewHTTPError(http.StatusBadRequest, "file is required")

// UploadImage godoc
// @Summary     Upload item image
// @Description Stores the image and returns the URL to use as the item's image_url.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image (jpeg, png, webp, gif)"
// @Success     200 {object} imageResp
// @Failure     400 {object} response.Resp "Invalid file"
// @Failure     413 {object} response.Resp "Too large"
// @Router      /v1/uploads/images [POST]
func (h *handler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	fh, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errMissingFile)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(ctx, "upload.http.UploadImage: %v", err)
		response.Error(c, errMissingFile)
		return
	}
	defer f.Close()

	url, err := h.uc.UploadImage(ctx, upload.ImageInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, imageResp{ImageURL: url})
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, upload.ErrEmptyFile):
		return errMissingFile
	case errors.Is(err, upload.ErrTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Image must be 10MB or smaller")
	case errors.Is(err, upload.ErrUnsupportedType):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Image must be a jpeg, png, webp or gif")
	default:
		return pkgErrors.ErrBadGateway
	}
}

// RegisterRoutes maps the upload routes. Every route needs a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	uploads := rg.Group("/uploads", mw.Auth())
	uploads.POST("/images", h.UploadImage)
}
