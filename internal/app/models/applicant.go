package models

// ApplicantStatus is the lifecycle value of a submitted applicant record
type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "Pending"
	ApplicantStatusApproved ApplicantStatus = "Approved"
	ApplicantStatusRejected ApplicantStatus = "Rejected"
)

// IsValid reports whether the value is one of the known applicant statuses
func (s ApplicantStatus) IsValid() bool {
	switch s {
	case ApplicantStatusPending, ApplicantStatusApproved, ApplicantStatusRejected:
		return true
	}
	return false
}

// Applicant defines a bursary application submission based on the 'applicants' table
type Applicant struct {
	ID               int64           `json:"id" db:"id"`
	FullName         string          `json:"full_name" db:"full_name"`
	Admission        string          `json:"admission" db:"admission"`
	Gender           string          `json:"gender" db:"gender"`
	Form             string          `json:"form" db:"form"`
	DOB              string          `json:"dob" db:"dob"`
	NationalID       string          `json:"national_id" db:"national_id"`
	PhoneNumber      string          `json:"phone_number" db:"phone_number"`
	Email            string          `json:"email" db:"email"`
	InstitutionType  string          `json:"institution_type" db:"institution_type"`
	InstitutionName  string          `json:"institution_name" db:"institution_name"`
	IndexNumber      string          `json:"index_number" db:"index_number"`
	Constituency     string          `json:"constituency" db:"constituency"`
	Ward             string          `json:"ward" db:"ward"`
	IDDocument       *string         `json:"id_document,omitempty" db:"id_document"`             // stored-file URL, nullable
	BirthCertificate *string         `json:"birth_certificate,omitempty" db:"birth_certificate"` // stored-file URL, nullable
	Status           ApplicantStatus `json:"status" db:"status"`
}
