package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/store"
	"tenantguard-be/utils"
)

type createLandlordInput struct {
	Name  string `json:"name" binding:"required,min=1,max=120"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,min=4,max=32"`
}

// CreateLandlord creates the contact profile of the calling landlord
// account. Each account has at most one profile.
func (h *Controller) CreateLandlord(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input createLandlordInput
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	_, err := h.store.FindLandlordByUser(ctx, caller.ID)
	switch {
	case err == nil:
		abort(c, apierrors.Conflict("Landlord profile already exists"))
		return
	case !errors.Is(err, store.ErrNotFound):
		abort(c, apierrors.Internal("load landlord", err))
		return
	}

	userID := caller.ID
	landlord := &models.Landlord{
		Name:   strings.TrimSpace(input.Name),
		Email:  strings.TrimSpace(input.Email),
		Phone:  strings.TrimSpace(input.Phone),
		UserID: &userID,
	}
	if err := h.store.CreateLandlord(ctx, landlord); err != nil {
		abort(c, storeError(err, "Landlord"))
		return
	}

	// The owner may see their own channels.
	utils.Success(c, http.StatusCreated, gin.H{
		"id":        landlord.ID,
		"name":      landlord.Name,
		"email":     landlord.Email,
		"phone":     landlord.Phone,
		"userId":    landlord.UserID,
		"createdAt": landlord.CreatedAt,
	})
}
