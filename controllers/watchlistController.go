package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/services"
	"tenantguard-be/utils"
)

type watchlistInput struct {
	PropertyID string `json:"propertyId" binding:"required,objectid"`
}

// ToggleWatchlist saves the property, or removes it when already saved.
func (h *Controller) ToggleWatchlist(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input watchlistInput
	if !bindJSON(c, &input) {
		return
	}
	propertyID, _ := primitive.ObjectIDFromHex(input.PropertyID)

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, propertyID) {
		return
	}
	saved, err := h.store.ToggleWatchlist(ctx, caller.ID, propertyID)
	if err != nil {
		abort(c, apierrors.Internal("toggle watchlist", err))
		return
	}

	status := http.StatusOK
	if saved {
		status = http.StatusCreated
	}
	utils.Success(c, status, gin.H{"saved": saved})
}

// ListWatchlist returns the caller's saved properties, most recent first,
// each with its average rating and issue count.
func (h *Controller) ListWatchlist(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	entries, err := h.store.ListWatchlist(ctx, caller.ID)
	if err != nil {
		abort(c, apierrors.Internal("list watchlist", err))
		return
	}
	ids := make([]primitive.ObjectID, len(entries))
	for i, e := range entries {
		ids[i] = e.PropertyID
	}

	props, err := h.store.GetPropertiesByIDs(ctx, ids)
	if err != nil {
		abort(c, apierrors.Internal("load properties", err))
		return
	}
	ratings, err := h.store.ListRatingsByProperties(ctx, ids)
	if err != nil {
		abort(c, apierrors.Internal("load ratings", err))
		return
	}
	reports, err := h.store.ListReportsByProperties(ctx, ids)
	if err != nil {
		abort(c, apierrors.Internal("load reports", err))
		return
	}

	byID := make(map[primitive.ObjectID]models.Property, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}
	ratingsBy := groupRatings(ratings)
	issues := make(map[primitive.ObjectID]int)
	for _, r := range reports {
		issues[r.PropertyID]++
	}

	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		p, ok := byID[e.PropertyID]
		if !ok {
			continue
		}
		out = append(out, gin.H{
			"id":          p.ID,
			"address":     p.Address,
			"city":        p.City,
			"province":    p.Province,
			"postalCode":  p.PostalCode,
			"avgRating":   services.OverallAverage(ratingsBy[p.ID]),
			"issuesCount": issues[p.ID],
			"savedAt":     e.CreatedAt,
		})
	}
	utils.Success(c, http.StatusOK, out)
}

// IsSaved handles GET /watchlist/isSaved/:propertyId.
func (h *Controller) IsSaved(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	propertyID, ok := pathID(c, "propertyId")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	saved, err := h.store.IsSaved(ctx, caller.ID, propertyID)
	if err != nil {
		abort(c, apierrors.Internal("check watchlist", err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"saved": saved})
}
