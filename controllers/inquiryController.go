package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/middlewares"
	"tenantguard-be/models"
	"tenantguard-be/utils"
)

type inquiryInput struct {
	PropertyID string `json:"propertyId" binding:"required,objectid"`
	Name       string `json:"name" binding:"required,min=1,max=120"`
	Email      string `json:"email" binding:"required,email"`
	Message    string `json:"message" binding:"required,min=5,max=2000"`
}

// CreateInquiry accepts a rental lead. No account is needed; a signed-in
// caller is attached to the inquiry.
func (h *Controller) CreateInquiry(c *gin.Context) {
	var input inquiryInput
	if !bindJSON(c, &input) {
		return
	}
	propertyID, _ := primitive.ObjectIDFromHex(input.PropertyID)

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, propertyID) {
		return
	}

	inquiry := &models.Inquiry{
		PropertyID: propertyID,
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Message:    strings.TrimSpace(input.Message),
	}
	if caller, ok := middlewares.CurrentIdentity(c); ok {
		userID := caller.ID
		inquiry.UserID = &userID
	}

	if err := h.store.CreateInquiry(ctx, inquiry); err != nil {
		abort(c, apierrors.Internal("create inquiry", err))
		return
	}
	utils.Success(c, http.StatusCreated, gin.H{
		"inquiryId": inquiry.ID,
		"createdAt": inquiry.CreatedAt,
	})
}
