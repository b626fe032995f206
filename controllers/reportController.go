package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/apierrors"
	"tenantguard-be/models"
	"tenantguard-be/utils"
)

type createReportInput struct {
	PropertyID string  `json:"propertyId" binding:"required,objectid"`
	Category   string  `json:"category" binding:"required,min=1,max=60"`
	Severity   int     `json:"severity" binding:"required,min=1,max=5"`
	Text       string  `json:"text" binding:"required,min=1,max=4000"`
	MediaURL   *string `json:"mediaUrl" binding:"omitempty,url,max=2048"`
}

type reportStatusInput struct {
	Status models.ReportStatus `json:"status" binding:"required,oneof=open new fixed ignored"`
}

type reportContactInput struct {
	Status models.ContactStatus `json:"status" binding:"required,oneof=reported promised_fix ignored"`
	Note   *string              `json:"note" binding:"omitempty,max=1000"`
}

func (h *Controller) withConfirmations(ctx context.Context, reports []models.Report) ([]reportView, error) {
	ids := make([]primitive.ObjectID, len(reports))
	for i, r := range reports {
		ids[i] = r.ID
	}
	counts, err := h.store.CountConfirmationsByReports(ctx, ids)
	if err != nil {
		return nil, apierrors.Internal("count confirmations", err)
	}

	out := make([]reportView, len(reports))
	for i, r := range reports {
		out[i] = reportView{Report: r, ConfirmationsCount: counts[r.ID]}
	}
	return out, nil
}

// loadReport attaches 404 when the :id report does not exist.
func (h *Controller) loadReport(c *gin.Context, ctx context.Context) (*models.Report, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	report, err := h.store.GetReport(ctx, id)
	if err != nil {
		abort(c, storeError(err, "Report"))
		return nil, false
	}
	return report, true
}

// CreateReport files a maintenance or safety report.
func (h *Controller) CreateReport(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input createReportInput
	if !bindJSON(c, &input) {
		return
	}
	propertyID, _ := primitive.ObjectIDFromHex(input.PropertyID)

	ctx, cancel := h.context(c)
	defer cancel()

	if !h.propertyExists(c, ctx, propertyID) {
		return
	}

	report := &models.Report{
		PropertyID: propertyID,
		UserID:     caller.ID,
		Category:   strings.TrimSpace(input.Category),
		Severity:   input.Severity,
		Text:       strings.TrimSpace(input.Text),
		MediaURL:   input.MediaURL,
		Status:     models.ReportOpen,
	}
	if err := h.store.CreateReport(ctx, report); err != nil {
		abort(c, apierrors.Internal("create report", err))
		return
	}

	h.logger.Info("report created",
		"report_id", report.ID.Hex(),
		"property_id", propertyID.Hex(),
		"severity", report.Severity,
	)
	utils.Success(c, http.StatusCreated, report)
}

// ReportsByProperty lists a property's reports newest first.
func (h *Controller) ReportsByProperty(c *gin.Context) {
	propertyID, ok := pathID(c, "propertyId")
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	reports, err := h.store.ListReportsByProperty(ctx, propertyID)
	if err != nil {
		abort(c, apierrors.Internal("list reports", err))
		return
	}
	views, err := h.withConfirmations(ctx, reports)
	if err != nil {
		abort(c, err)
		return
	}
	utils.Success(c, http.StatusOK, views)
}

// GetReport returns one report with its confirmation count.
func (h *Controller) GetReport(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	report, ok := h.loadReport(c, ctx)
	if !ok {
		return
	}
	count, err := h.store.CountConfirmations(ctx, report.ID)
	if err != nil {
		abort(c, apierrors.Internal("count confirmations", err))
		return
	}
	utils.Success(c, http.StatusOK, reportView{Report: *report, ConfirmationsCount: count})
}

// UpdateReportStatus is restricted to the report's author.
func (h *Controller) UpdateReportStatus(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input reportStatusInput
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	report, ok := h.loadReport(c, ctx)
	if !ok {
		return
	}
	if report.UserID != caller.ID {
		abort(c, apierrors.Forbidden("Only the author can change a report's status"))
		return
	}

	updated, err := h.store.UpdateReportStatus(ctx, report.ID, input.Status)
	if err != nil {
		abort(c, storeError(err, "Report"))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{
		"id":        updated.ID,
		"status":    updated.Status,
		"updatedAt": updated.UpdatedAt,
	})
}

// ReportContacts returns the landlord-contact timeline, newest first. Only
// user ids are exposed.
func (h *Controller) ReportContacts(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	report, ok := h.loadReport(c, ctx)
	if !ok {
		return
	}
	contacts, err := h.store.ListReportContacts(ctx, report.ID)
	if err != nil {
		abort(c, apierrors.Internal("list contacts", err))
		return
	}
	utils.Success(c, http.StatusOK, contacts)
}

// AddReportContact appends a landlord-contact attempt to the timeline.
func (h *Controller) AddReportContact(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}
	var input reportContactInput
	if !bindJSON(c, &input) {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	report, ok := h.loadReport(c, ctx)
	if !ok {
		return
	}

	contact := &models.ReportContact{
		ReportID: report.ID,
		UserID:   caller.ID,
		Status:   input.Status,
		Note:     trimmedOrNil(input.Note),
	}
	if err := h.store.AddReportContact(ctx, contact); err != nil {
		abort(c, apierrors.Internal("add contact", err))
		return
	}
	utils.Success(c, http.StatusCreated, contact)
}

// ConfirmReport records "I have this too". Repeat calls by the same user
// leave the count unchanged.
func (h *Controller) ConfirmReport(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	ctx, cancel := h.context(c)
	defer cancel()

	report, ok := h.loadReport(c, ctx)
	if !ok {
		return
	}
	if err := h.store.ConfirmReport(ctx, report.ID, caller.ID); err != nil {
		abort(c, apierrors.Internal("confirm report", err))
		return
	}
	h.confirmationCount(c, ctx, report.ID)
}

// ReportConfirmations is the public count read.
func (h *Controller) ReportConfirmations(c *gin.Context) {
	ctx, cancel := h.context(c)
	defer cancel()

	report, ok := h.loadReport(c, ctx)
	if !ok {
		return
	}
	h.confirmationCount(c, ctx, report.ID)
}

func (h *Controller) confirmationCount(c *gin.Context, ctx context.Context, reportID primitive.ObjectID) {
	count, err := h.store.CountConfirmations(ctx, reportID)
	if err != nil {
		abort(c, apierrors.Internal("count confirmations", err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"reportId": reportID, "confirmations": count})
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
