package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/services"
	"tenantguard-be/store"
	"tenantguard-be/utils"
)

const defaultProvince = "QC"

type rentRiskInput struct {
	Address  string  `json:"address" binding:"required,min=3,max=200"`
	City     string  `json:"city" binding:"required,min=2,max=80"`
	Rent     float64 `json:"rent" binding:"required,gt=0"`
	Bedrooms string  `json:"bedrooms" binding:"required,min=1,max=40"`
}

type rentIncreaseInput struct {
	Province  string  `json:"province" binding:"omitempty,len=2,alpha"`
	Year      *int    `json:"year" binding:"omitempty,min=1900,max=2100"`
	Base      float64 `json:"base" binding:"required,gt=0"`
	Proposed  float64 `json:"proposed" binding:"required,gt=0"`
	MajorWork bool    `json:"majorWork"`
}

// RentRisk rates an asking rent against the bedroom baseline and the
// building's complaint history, when the building is known.
func (h *Controller) RentRisk(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var input rentRiskInput
	if !bindJSON(c, &input) {
		return
	}
	address := strings.TrimSpace(input.Address)
	city := strings.TrimSpace(input.City)

	ctx, cancel := h.context(c)
	defer cancel()

	var (
		propertyID  interface{}
		avgScore    *float64
		issuesCount int
	)
	prop, err := h.store.FindPropertyByAddress(ctx, address, city)
	switch {
	case err == nil:
		propertyID = prop.ID
		ratings, err := h.store.ListRatingsByProperty(ctx, prop.ID)
		if err != nil {
			abort(c, apierrors.Internal("load ratings", err))
			return
		}
		reports, err := h.store.ListReportsByProperty(ctx, prop.ID)
		if err != nil {
			abort(c, apierrors.Internal("load reports", err))
			return
		}
		avgScore = services.OverallAverage(ratings)
		issuesCount = len(reports)
	case !errors.Is(err, store.ErrNotFound):
		abort(c, apierrors.Internal("find property", err))
		return
	}

	risk := services.RentRisk(input.Rent, services.BedroomsFromLabel(input.Bedrooms), issuesCount)
	utils.Success(c, http.StatusOK, gin.H{
		"riskLevel":   risk.Level,
		"summary":     risk.Summary,
		"avgScore":    avgScore,
		"issuesCount": issuesCount,
		"debug": gin.H{
			"address":    address,
			"city":       city,
			"rent":       input.Rent,
			"bedrooms":   input.Bedrooms,
			"baseline":   risk.Baseline,
			"ratio":      risk.Ratio,
			"propertyId": propertyID,
		},
	})
}

// RentIncrease evaluates a proposed increase and keeps the result in the
// caller's history.
func (h *Controller) RentIncrease(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input rentIncreaseInput
	if !bindJSON(c, &input) {
		return
	}
	province := strings.ToUpper(input.Province)
	if province == "" {
		province = defaultProvince
	}

	verdict := services.RentIncreaseLegality(input.Base, input.Proposed, input.MajorWork)
	check := &models.RentCheck{
		UserID:    caller.ID,
		Province:  province,
		Year:      input.Year,
		Base:      input.Base,
		Proposed:  input.Proposed,
		Pct:       verdict.Percent,
		MajorWork: input.MajorWork,
		Result:    verdict.Result,
		Explain:   verdict.Explain,
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.store.CreateRentCheck(ctx, check); err != nil {
		abort(c, apierrors.Internal("save rent check", err))
		return
	}
	utils.Success(c, http.StatusCreated, check)
}
