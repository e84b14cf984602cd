package models

// User defines the account model based on the 'users' table
type User struct {
	ID              int64  `json:"id" db:"id" example:"1"`
	FullName        string `json:"full_name" db:"full_name" example:"Jane Wanjiru"`
	AdmissionNumber string `json:"admission_number" db:"admission_number" example:"ADM-2023-0042"`
	InstitutionName string `json:"institution_name" db:"institution_name" example:"Garissa High School"`
	Email           string `json:"email" db:"email" example:"jane@example.com"`
	PhoneNumber     string `json:"phone_number" db:"phone_number" example:"+254712345678"`
	Password        string `json:"-" db:"password"` // bcrypt hash, excluded from JSON
}
