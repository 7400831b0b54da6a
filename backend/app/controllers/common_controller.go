package controllers

import (
	"net/http"

	"quora-backend/backend/app/dto"
	"quora-backend/backend/app/middleware"
	"quora-backend/backend/app/services"
)

// CommonController serves endpoints open to every authenticated user.
type CommonController struct {
	Users *services.UserService
}

func NewCommonController(users *services.UserService) *CommonController {
	return &CommonController{Users: users}
}

func (c *CommonController) UserProfile(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())
	user, err := c.Users.Profile(token, r.PathValue("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserDetailsResponse{
		Username:      user.Username,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		EmailAddress:  user.Email,
		Country:       user.Country,
		AboutMe:       user.AboutMe,
		DOB:           user.DOB,
		ContactNumber: user.ContactNumber,
	})
}
