package dto

type SignupRequest struct {
	Username      string `json:"user_name"`
	Email         string `json:"email_address"`
	Password      string `json:"password"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Country       string `json:"country"`
	AboutMe       string `json:"about_me"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contact_number"`
}

type SignupResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type SigninResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SignoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
