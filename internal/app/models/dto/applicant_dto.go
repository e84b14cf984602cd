package dto

import (
	"github.com/Mikailhassan/bursary-aden/internal/app/models"
)

// ApplicantRequest is the external (camelCase) representation of an applicant
// submission. It binds from multipart form fields; the document uploads
// travel separately as files named idDocument and birthCertificate.
type ApplicantRequest struct {
	FullName        string `form:"fullName" binding:"required"`
	Admission       string `form:"admission" binding:"required"`
	Gender          string `form:"gender" binding:"required"`
	Form            string `form:"form" binding:"required"`
	DOB             string `form:"dob" binding:"required"`
	NationalID      string `form:"nationalID" binding:"required"`
	PhoneNumber     string `form:"phoneNumber" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	InstitutionType string `form:"institutionType" binding:"required"`
	InstitutionName string `form:"institutionName" binding:"required"`
	IndexNumber     string `form:"indexNumber"`
	Constituency    string `form:"constituency" binding:"required"`
	Ward            string `form:"ward" binding:"required"`
}

// ApplicantResponse is the external (camelCase) representation returned by
// the applicant endpoints.
type ApplicantResponse struct {
	ID               int64   `json:"id"`
	FullName         string  `json:"fullName"`
	Admission        string  `json:"admission"`
	Gender           string  `json:"gender"`
	Form             string  `json:"form"`
	DOB              string  `json:"dob"`
	NationalID       string  `json:"nationalID"`
	PhoneNumber      string  `json:"phoneNumber"`
	Email            string  `json:"email"`
	InstitutionType  string  `json:"institutionType"`
	InstitutionName  string  `json:"institutionName"`
	IndexNumber      string  `json:"indexNumber"`
	Constituency     string  `json:"constituency"`
	Ward             string  `json:"ward"`
	IDDocument       *string `json:"idDocument"`
	BirthCertificate *string `json:"birthCertificate"`
	Status           string  `json:"status"`
}

// UpdateApplicantStatusRequest is the partial status update payload
type UpdateApplicantStatusRequest struct {
	Status string `json:"status"`
}

// ToModel maps the external field set onto an internal applicant record.
// Each field is enumerated; unknown external fields never reach this point.
func (r *ApplicantRequest) ToModel() *models.Applicant {
	return &models.Applicant{
		FullName:        r.FullName,
		Admission:       r.Admission,
		Gender:          r.Gender,
		Form:            r.Form,
		DOB:             r.DOB,
		NationalID:      r.NationalID,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		InstitutionType: r.InstitutionType,
		InstitutionName: r.InstitutionName,
		IndexNumber:     r.IndexNumber,
		Constituency:    r.Constituency,
		Ward:            r.Ward,
		Status:          models.ApplicantStatusPending,
	}
}

// NewApplicantResponse maps an internal applicant record back to the
// external field names.
func NewApplicantResponse(a *models.Applicant) ApplicantResponse {
	return ApplicantResponse{
		ID:               a.ID,
		FullName:         a.FullName,
		Admission:        a.Admission,
		Gender:           a.Gender,
		Form:             a.Form,
		DOB:              a.DOB,
		NationalID:       a.NationalID,
		PhoneNumber:      a.PhoneNumber,
		Email:            a.Email,
		InstitutionType:  a.InstitutionType,
		InstitutionName:  a.InstitutionName,
		IndexNumber:      a.IndexNumber,
		Constituency:     a.Constituency,
		Ward:             a.Ward,
		IDDocument:       a.IDDocument,
		BirthCertificate: a.BirthCertificate,
		Status:           string(a.Status),
	}
}

// NewApplicantListResponse maps a slice of applicant records
func NewApplicantListResponse(applicants []*models.Applicant) []ApplicantResponse {
	out := make([]ApplicantResponse, 0, len(applicants))
	for _, a := range applicants {
		out = append(out, NewApplicantResponse(a))
	}
	return out
}
