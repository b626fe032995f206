package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/services"
	"tenantguard-be/utils"
)

// createRatingInput accepts the score as overall or its older name stars.
type createRatingInput struct {
	PropertyID  string   `json:"propertyId" binding:"required,objectid"`
	Overall     *int     `json:"overall" binding:"omitempty,min=1,max=5"`
	Stars       *int     `json:"stars" binding:"omitempty,min=1,max=5"`
	Maintenance *int     `json:"maintenance" binding:"omitempty,min=1,max=5"`
	Noise       *int     `json:"noise" binding:"omitempty,min=1,max=5"`
	Response    *int     `json:"response" binding:"omitempty,min=1,max=5"`
	Note        *string  `json:"note" binding:"omitempty,max=2000"`
	Pros        []string `json:"pros" binding:"omitempty,max=10,dive,required,max=40"`
	Cons        []string `json:"cons" binding:"omitempty,max=10,dive,required,max=40"`
}

func (in createRatingInput) overall() (int, bool) {
	switch {
	case in.Overall != nil:
		return *in.Overall, true
	case in.Stars != nil:
		return *in.Stars, true
	}
	return 0, false
}

// CreateRating stores a tenant's scorecard for a property.
func (h *Controller) CreateRating(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input createRatingInput
	if !bindJSON(c, &input) {
		return
	}
	overall, ok := input.overall()
	if !ok {
		const msg = "overall is a required field"
		abort(c, apierrors.Validation(msg, []apierrors.FieldError{{Field: "overall", Message: msg}}))
		return
	}
	propertyID, _ := primitive.ObjectIDFromHex(input.PropertyID)

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, propertyID) {
		return
	}

	rating := &models.Rating{
		PropertyID:  propertyID,
		UserID:      caller.ID,
		Overall:     overall,
		Maintenance: input.Maintenance,
		Noise:       input.Noise,
		Response:    input.Response,
		Note:        trimmedOrNil(input.Note),
		Pros:        cleanTags(input.Pros),
		Cons:        cleanTags(input.Cons),
	}
	if err := h.store.CreateRating(ctx, rating); err != nil {
		abort(c, apierrors.Internal("create rating", err))
		return
	}
	utils.Success(c, http.StatusCreated, rating)
}

// RatingsByProperty returns {items, avg, count}.
func (h *Controller) RatingsByProperty(c *gin.Context) {
	propertyID, ok := pathID(c, "propertyId")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	ratings, err := h.store.ListRatingsByProperty(ctx, propertyID)
	if err != nil {
		abort(c, apierrors.Internal("list ratings", err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"items": ratings,
		"avg":   services.OverallAverage(ratings),
		"count": len(ratings),
	})
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
