package dto

import (
	"time"

	"github.com/Mikailhassan/bursary-aden/internal/app/models"
)

// UpdateBursaryStatusRequest updates a bursary application's review status
type UpdateBursaryStatusRequest struct {
	AdmissionNumber  string `json:"admission_number" binding:"required"`
	Status           string `json:"status" binding:"required"`
	ReviewerComments string `json:"reviewer_comments"`
}

// ApplyBursaryRequest submits a bursary application for the authenticated
// user. Binds from multipart form fields; the optional supporting document
// travels as a file named supportingDocument.
type ApplyBursaryRequest struct {
	FamilyIncome float64 `form:"familyIncome" binding:"required,gt=0"`
	Reason       string  `form:"reason" binding:"required"`
}

// StatusHistoryEntry is one entry of a bursary application's status history
type StatusHistoryEntry struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

// BursaryStatusResponse is returned by the status lookup endpoint.
// StatusNotApplied is reported when no application exists.
type BursaryStatusResponse struct {
	Status  string               `json:"status"`
	History []StatusHistoryEntry `json:"history"`
	Message string               `json:"message,omitempty"`
}

// StatusNotApplied is the lookup status for users without an application
const StatusNotApplied = "not_applied"

// BursaryApplicationResponse is the external representation of a bursary
// application record.
type BursaryApplicationResponse struct {
	ID                  int64      `json:"id"`
	AdmissionNumber     string     `json:"admission_number"`
	FullName            string     `json:"full_name"`
	Email               string     `json:"email"`
	FamilyIncome        float64    `json:"family_income"`
	Reason              string     `json:"reason"`
	SupportingDocuments *string    `json:"supporting_documents"`
	Status              string     `json:"status"`
	ApplicationDate     time.Time  `json:"application_date"`
	ReviewDate          *time.Time `json:"review_date"`
	ReviewerComments    *string    `json:"reviewer_comments"`
}

// NewBursaryApplicationResponse maps an application record to its external
// representation.
func NewBursaryApplicationResponse(app *models.BursaryApplication) BursaryApplicationResponse {
	return BursaryApplicationResponse{
		ID:                  app.ID,
		AdmissionNumber:     app.AdmissionNumber,
		FullName:            app.FullName,
		Email:               app.Email,
		FamilyIncome:        app.FamilyIncome,
		Reason:              app.Reason,
		SupportingDocuments: app.SupportingDocuments,
		Status:              string(app.Status),
		ApplicationDate:     app.ApplicationDate,
		ReviewDate:          app.ReviewDate,
		ReviewerComments:    app.ReviewerComments,
	}
}

// NewBursaryStatusResponse synthesizes the single-entry history view from
// one application record.
func NewBursaryStatusResponse(app *models.BursaryApplication) BursaryStatusResponse {
	details := "Application submitted"
	if app.ReviewerComments != nil && *app.ReviewerComments != "" {
		details = *app.ReviewerComments
	}

	return BursaryStatusResponse{
		Status: string(app.Status),
		History: []StatusHistoryEntry{
			{
				Date:    app.ApplicationDate.Format(time.RFC3339),
				Status:  string(app.Status),
				Details: details,
			},
		},
	}
}
