package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/utils"
)

// MyReports lists the caller's reports newest first, each with its property
// and confirmation count.
func (h *Controller) MyReports(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	reports, err := h.store.ListReportsByUser(ctx, caller.ID)
	if err != nil {
		abort(c, apierrors.Internal("list reports", err))
		return
	}

	reportIDs := make([]primitive.ObjectID, len(reports))
	propertyIDs := make([]primitive.ObjectID, len(reports))
	for i, r := range reports {
		reportIDs[i] = r.ID
		propertyIDs[i] = r.PropertyID
	}

	props, err := h.store.GetPropertiesByIDs(ctx, uniqueIDs(propertyIDs))
	if err != nil {
		abort(c, apierrors.Internal("load properties", err))
		return
	}
	counts, err := h.store.CountConfirmationsByReports(ctx, reportIDs)
	if err != nil {
		abort(c, apierrors.Internal("count confirmations", err))
		return
	}

	byID := make(map[primitive.ObjectID]models.Property, len(props))
	for _, p := range props {
		byID[p.ID] = p
	}

	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		var property interface{}
		if p, ok := byID[r.PropertyID]; ok {
			property = gin.H{
				"id":         p.ID,
				"address":    p.Address,
				"city":       p.City,
				"province":   p.Province,
				"postalCode": p.PostalCode,
			}
		}
		out = append(out, gin.H{
			"id":                 r.ID,
			"category":           r.Category,
			"severity":           r.Severity,
			"status":             r.Status,
			"text":               r.Text,
			"mediaUrl":           r.MediaURL,
			"createdAt":          r.CreatedAt,
			"property":           property,
			"confirmationsCount": counts[r.ID],
		})
	}
	utils.Success(c, http.StatusOK, out)
}
