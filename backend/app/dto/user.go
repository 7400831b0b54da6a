package dto

type UserDetailsResponse struct {
	Username      string `json:"user_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailAddress  string `json:"email_address"`
	Country       string `json:"country"`
	AboutMe       string `json:"about_me"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contact_number"`
}

type UserDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
