package controllers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/dto"
	"quora-backend/backend/app/middleware"
	"quora-backend/backend/app/models"
	"quora-backend/backend/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "malformed request body"})
		return
	}
	if req.Username == "" || req.Email == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "user_name and email_address are required"})
		return
	}
	candidate := &models.User{
		Username:      req.Username,
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Country:       req.Country,
		AboutMe:       req.AboutMe,
		DOB:           req.DOB,
		ContactNumber: req.ContactNumber,
	}
	created, err := c.Auth.SignUp(candidate, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.SignupResponse{ID: created.UUID, Status: "USER SUCCESSFULLY REGISTERED"})
}

// SignIn reads "Basic base64(username:password)" from the authorization
// header and answers with the access token in the access_token header.
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	username, password, ok := basicCredentials(r.Header.Get("authorization"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Code: "GEN-002", Message: "malformed authorization header"})
		return
	}
	authToken, err := c.Auth.SignIn(username, password)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("access_token", authToken.AccessToken)
	writeJSON(w, http.StatusOK, dto.SigninResponse{ID: authToken.User.UUID, Message: "SIGNED IN SUCCESSFULLY"})
}

func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.GetToken(r.Context())
	if token == "" {
		writeError(w, apperr.ErrNotSignedIn)
		return
	}
	userUUID, err := c.Auth.SignOut(token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SignoutResponse{ID: userUUID, Message: "SIGNED OUT SUCCESSFULLY"})
}

func basicCredentials(authz string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(authz, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authz, prefix))
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(decoded), ":")
	return username, password, ok
}
