package controllers

import (
	"net/http"

	"quora-backend/backend/app/dto"
	"quora-backend/backend/app/middleware"
	"quora-backend/backend/app/services"
)

type AdminController struct {
	Users *services.UserService
}

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())
	deletedUUID, err := c.Users.DeleteUser(token, r.PathValue("userId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserDeleteResponse{ID: deletedUUID, Status: "USER SUCCESSFULLY DELETED"})
}
