// Package controllers holds the HTTP handlers. Every handler validates its
// input, resolves the caller, reads through store.Interface, shapes the
// result with the services package and answers with the ok/data envelope.
// Failures are attached with c.Error and rendered by
// middlewares.ErrorHandler.
package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/middlewares"
	"tenantguard-be/storage"
	"tenantguard-be/store"
	"tenantguard-be/utils"
)

const requestTimeout = 10 * time.Second

// Controller carries the dependencies shared by all handlers.
type Controller struct {
	store    store.Interface
	tokens   *utils.TokenIssuer
	uploader storage.Uploader
	logger   *slog.Logger
	now      func() time.Time
}

// New builds a Controller. uploader may be nil, in which case uploads answer
// 503.
func New(st store.Interface, tokens *utils.TokenIssuer, uploader storage.Uploader, logger *slog.Logger) *Controller {
	return &Controller{
		store:    st,
		tokens:   tokens,
		uploader: uploader,
		logger:   logger,
		now:      time.Now,
	}
}

// Health reports liveness.
func (h *Controller) Health(c *gin.Context) {
	utils.Success(c, http.StatusOK, gin.H{"status": "ok", "time": h.now().UTC()})
}

func (h *Controller) context(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// storeError maps data-access failures onto the API taxonomy.
func storeError(err error, resource string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apierrors.NotFound(resource)
	case errors.Is(err, store.ErrDuplicate):
		return apierrors.Conflict(resource + " already exists")
	default:
		return apierrors.Internal("load "+resource, err)
	}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abort(c, utils.BindingError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		abort(c, utils.BindingError(err))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := utils.ValidateObjectID(name, c.Param(name))
	if err != nil {
		abort(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// identity returns the authenticated caller or attaches a 401.
func identity(c *gin.Context) (*middlewares.Identity, bool) {
	id, ok := middlewares.CurrentIdentity(c)
	if !ok {
		abort(c, apierrors.Unauthorized("User not authenticated"))
		return nil, false
	}
	return id, true
}

// propertyExists attaches 404 when id does not name a property.
func (h *Controller) propertyExists(c *gin.Context, ctx context.Context, id primitive.ObjectID) bool {
	if _, err := h.store.GetProperty(ctx, id); err != nil {
		abort(c, storeError(err, "Property"))
		return false
	}
	return true
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
