package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tenantguard-be/apierrors"
	"tenantguard-be/storage"
	"tenantguard-be/utils"
)

type uploadInput struct {
	DataURL string `json:"dataUrl" binding:"required,min=10"`
}

// Upload stores a base64 image data URL and returns its public URL.
func (h *Controller) Upload(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var input uploadInput
	if !bindJSON(c, &input) {
		return
	}
	if h.uploader == nil {
		abort(c, apierrors.Unavailable(storage.ErrNotConfigured.Error()))
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	url, err := h.uploader.UploadImage(ctx, input.DataURL)
	switch {
	case errors.Is(err, storage.ErrInvalidImage):
		msg := err.Error()
		abort(c, apierrors.Validation(msg, []apierrors.FieldError{{Field: "dataUrl", Message: msg}}))
		return
	case errors.Is(err, storage.ErrNotConfigured):
		abort(c, apierrors.Unavailable(err.Error()))
		return
	case err != nil:
		abort(c, apierrors.Internal("upload image", err))
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{"url": url})
}
