package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/middlewares"
	"tenantguard-be/models"
	"tenantguard-be/services"
	"tenantguard-be/store"
	"tenantguard-be/utils"
)

const (
	searchLimit  = 20
	detailsLimit = 20
)

type listPropertiesQuery struct {
	Q     string `form:"q" binding:"omitempty,max=120"`
	City  string `form:"city" binding:"omitempty,max=80"`
	Limit int64  `form:"limit" binding:"omitempty,min=1,max=200"`
}

type createPropertyInput struct {
	Address    string  `json:"address" binding:"required,min=3,max=200"`
	City       string  `json:"city" binding:"required,min=1,max=80"`
	Province   string  `json:"province" binding:"required,min=1,max=40"`
	PostalCode string  `json:"postalCode" binding:"required,min=3,max=12"`
	LandlordID *string `json:"landlordId" binding:"omitempty,objectid"`
	YearBuilt  *int    `json:"yearBuilt" binding:"omitempty,min=1600,max=2100"`
	NumUnits   *int    `json:"numUnits" binding:"omitempty,min=1,max=10000"`
}

type claimDecisionInput struct {
	Status models.ClaimStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}

// reportView is a report with its corroboration count.
type reportView struct {
	models.Report
	ConfirmationsCount int64 `json:"confirmationsCount"`
}

// ListProperties handles GET /properties?q=&city=.
func (h *Controller) ListProperties(c *gin.Context) {
	var query listPropertiesQuery
	if !bindQuery(c, &query) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	props, err := h.store.ListProperties(ctx, store.PropertyFilter{
		Query: strings.TrimSpace(query.Q),
		City:  strings.TrimSpace(query.City),
		Limit: query.Limit,
	})
	if err != nil {
		abort(c, apierrors.Internal("list properties", err))
		return
	}
	utils.Success(c, http.StatusOK, props)
}

// SearchProperties is the lightweight search used by the place finder:
// at most 20 hits, each with its rating summary and report count.
func (h *Controller) SearchProperties(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.Success(c, http.StatusOK, []gin.H{})
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	props, err := h.store.ListProperties(ctx, store.PropertyFilter{Query: q, Limit: searchLimit})
	if err != nil {
		abort(c, apierrors.Internal("search properties", err))
		return
	}

	ids := make([]primitive.ObjectID, len(props))
	for i, p := range props {
		ids[i] = p.ID
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

	ratingsBy := groupRatings(ratings)
	out := make([]gin.H, 0, len(props))
	for _, p := range props {
		pid := p.ID
		out = append(out, gin.H{
			"id":             p.ID,
			"address":        p.Address,
			"city":           p.City,
			"province":       p.Province,
			"postalCode":     p.PostalCode,
			"ratingsSummary": services.CompactSummary(ratingsBy[p.ID]),
			"reportsCount": services.CountWhere(reports, func(r models.Report) bool {
				return r.PropertyID == pid
			}),
		})
	}
	utils.Success(c, http.StatusOK, out)
}

// GetProperty returns the full property view with the latest ratings and
// reports.
func (h *Controller) GetProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	prop, err := h.store.GetProperty(ctx, id)
	if err != nil {
		abort(c, storeError(err, "Property"))
		return
	}

	var landlord *models.Landlord
	if prop.LandlordID != nil {
		landlord, err = h.store.GetLandlord(ctx, *prop.LandlordID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			abort(c, apierrors.Internal("load landlord", err))
			return
		}
	}

	ratings, err := h.store.ListRatingsByProperty(ctx, id)
	if err != nil {
		abort(c, apierrors.Internal("load ratings", err))
		return
	}
	reports, err := h.store.ListReportsByProperty(ctx, id)
	if err != nil {
		abort(c, apierrors.Internal("load reports", err))
		return
	}
	views, err := h.withConfirmations(ctx, reports)
	if err != nil {
		abort(c, err)
		return
	}

	utils.Success(c, http.StatusOK, gin.H{
		"id":             prop.ID,
		"address":        prop.Address,
		"city":           prop.City,
		"province":       prop.Province,
		"postalCode":     prop.PostalCode,
		"landlordId":     prop.LandlordID,
		"yearBuilt":      prop.YearBuilt,
		"numUnits":       prop.NumUnits,
		"createdAt":      prop.CreatedAt,
		"updatedAt":      prop.UpdatedAt,
		"landlord":       landlord,
		"ratings":        head(ratings, detailsLimit),
		"reports":        head(views, detailsLimit),
		"ratingsSummary": services.CompactSummary(ratings),
	})
}

// PropertySummary handles GET /properties/:id/summary.
func (h *Controller) PropertySummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, id) {
		return
	}
	ratings, err := h.store.ListRatingsByProperty(ctx, id)
	if err != nil {
		abort(c, apierrors.Internal("load ratings", err))
		return
	}
	utils.Success(c, http.StatusOK, services.SummarizeRatings(ratings))
}

// PropertyAlerts reports unfixed severe issues from the last 30 days.
func (h *Controller) PropertyAlerts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, id) {
		return
	}
	reports, err := h.store.ListReportsByProperty(ctx, id)
	if err != nil {
		abort(c, apierrors.Internal("load reports", err))
		return
	}
	since := services.AlertWindowStart(h.now())
	utils.Success(c, http.StatusOK, services.RecentSevere(reports, since, services.SevereThreshold))
}

// CreateProperty registers a building from the intake form.
func (h *Controller) CreateProperty(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var input createPropertyInput
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	prop := &models.Property{
		Address:    strings.TrimSpace(input.Address),
		City:       strings.TrimSpace(input.City),
		Province:   strings.TrimSpace(input.Province),
		PostalCode: strings.ToUpper(strings.TrimSpace(input.PostalCode)),
		YearBuilt:  input.YearBuilt,
		NumUnits:   input.NumUnits,
	}
	if input.LandlordID != nil {
		landlordID, _ := primitive.ObjectIDFromHex(*input.LandlordID)
		if _, err := h.store.GetLandlord(ctx, landlordID); err != nil {
			abort(c, storeError(err, "Landlord"))
			return
		}
		prop.LandlordID = &landlordID
	}

	if err := h.store.CreateProperty(ctx, prop); err != nil {
		abort(c, storeError(err, "Property"))
		return
	}
	utils.Success(c, http.StatusCreated, prop)
}

// ClaimStatus tells the app whether the caller lives at the property.
// Anonymous callers always get claimed=false.
func (h *Controller) ClaimStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	caller, ok := middlewares.CurrentIdentity(c)
	if !ok {
		utils.Success(c, http.StatusOK, gin.H{"claimed": false})
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	claimed, err := h.store.HasResidence(ctx, caller.ID, id)
	if err != nil {
		abort(c, apierrors.Internal("check residence", err))
		return
	}

	var status interface{}
	claim, err := h.store.GetClaim(ctx, caller.ID, id)
	switch {
	case err == nil:
		status = claim.Status
	case !errors.Is(err, store.ErrNotFound):
		abort(c, apierrors.Internal("load claim", err))
		return
	}

	utils.Success(c, http.StatusOK, gin.H{"claimed": claimed, "status": status})
}

// ClaimResidence records "I live here" and opens a pending claim.
func (h *Controller) ClaimResidence(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, id) {
		return
	}
	residence, err := h.store.ClaimResidence(ctx, caller.ID, id)
	if err != nil {
		abort(c, apierrors.Internal("claim residence", err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"claimed": true, "residenceId": residence.ID})
}

// DecideClaim lets the landlord account that owns the property approve or
// reject a tenant's claim.
func (h *Controller) DecideClaim(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	propertyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tenantID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var input claimDecisionInput
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	prop, err := h.store.GetProperty(ctx, propertyID)
	if err != nil {
		abort(c, storeError(err, "Property"))
		return
	}
	landlord, err := h.store.FindLandlordByUser(ctx, caller.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		abort(c, apierrors.Internal("load landlord", err))
		return
	}
	if landlord == nil || prop.LandlordID == nil || *prop.LandlordID != landlord.ID {
		abort(c, apierrors.Forbidden("Only the property's landlord can review claims"))
		return
	}

	claim, err := h.store.SetClaimStatus(ctx, tenantID, propertyID, input.Status)
	if err != nil {
		abort(c, storeError(err, "Claim"))
		return
	}
	h.logger.Info("claim reviewed",
		"property_id", propertyID.Hex(),
		"tenant_id", tenantID.Hex(),
		"status", claim.Status,
	)
	utils.Success(c, http.StatusOK, claim)
}

// LandlordContact returns the access-gated landlord contact view. Once the
// property is known to exist, every failure degrades to the locked shape.
func (h *Controller) LandlordContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	prop, err := h.store.GetProperty(ctx, id)
	if err != nil {
		abort(c, storeError(err, "Property"))
		return
	}

	caller, ok := middlewares.CurrentIdentity(c)
	if !ok {
		utils.Success(c, http.StatusOK, services.LockedContactView())
		return
	}

	var landlord *models.Landlord
	if prop.LandlordID != nil {
		landlord, err = h.store.GetLandlord(ctx, *prop.LandlordID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			h.logger.Error("load landlord for contact view", "property_id", id.Hex(), "error", err)
			utils.Success(c, http.StatusOK, services.LockedContactView())
			return
		}
	}

	claim, err := h.store.GetClaim(ctx, caller.ID, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.logger.Error("load claim for contact view", "property_id", id.Hex(), "error", err)
		}
		claim = nil
	}

	utils.Success(c, http.StatusOK, services.LandlordContactView(&caller.ID, claim, landlord))
}

func groupRatings(ratings []models.Rating) map[primitive.ObjectID][]models.Rating {
	out := make(map[primitive.ObjectID][]models.Rating)
	for _, r := range ratings {
		out[r.PropertyID] = append(out[r.PropertyID], r)
	}
	return out
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
