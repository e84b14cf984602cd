package dto

// RegisterRequest represents a user registration payload. Field names follow
// the public contract of the registration endpoint.
type RegisterRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	AdmissionNumber string `json:"admission_number" binding:"required"`
	InstitutionName string `json:"institution_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserData represents user profile information without credentials
type UserData struct {
	ID              int64  `json:"id,omitempty"`
	FullName        string `json:"full_name"`
	AdmissionNumber string `json:"admission_number"`
	InstitutionName string `json:"institution_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	UserData    UserData `json:"user_data"`
}
