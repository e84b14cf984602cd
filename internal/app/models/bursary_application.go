package models

import "time"

// ApplicationStatus is the lifecycle value of a bursary application under review
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid reports whether the value is one of the known review statuses
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// BursaryApplication defines the review record based on the 'bursary_applications' table.
// Keyed by admission_number, which is unique per application.
type BursaryApplication struct {
	ID                   int64             `json:"id" db:"id"`
	AdmissionNumber      string            `json:"admission_number" db:"admission_number"`
	FullName             string            `json:"full_name" db:"full_name"`
	Email                string            `json:"email" db:"email"`
	FamilyIncome         float64           `json:"family_income" db:"family_income"`
	Reason               string            `json:"reason" db:"reason"`
	SupportingDocuments  *string           `json:"supporting_documents,omitempty" db:"supporting_documents"`
	Status               ApplicationStatus `json:"status" db:"status"`
	ApplicationDate      time.Time         `json:"application_date" db:"application_date"`
	ReviewDate           *time.Time        `json:"review_date,omitempty" db:"review_date"`
	ReviewerComments     *string           `json:"reviewer_comments,omitempty" db:"reviewer_comments"`
}
