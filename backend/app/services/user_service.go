package services

import (
	"fmt"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/models"
)

// UserService serves the profile endpoint and the admin user-deletion path.
type UserService struct {
	users UserStore
	authz *AuthzService
}

func NewUserService(users UserStore, authz *AuthzService) *UserService {
	return &UserService{users: users, authz: authz}
}

// Profile returns the user at the given uuid. Any authenticated user may
// view any profile.
func (s *UserService) Profile(accessToken, userUUID string) (*models.User, error) {
	if _, err := s.authz.Authorize(accessToken, CapUserProfile); err != nil {
		return nil, err
	}
	user, err := s.users.FindByUUID(userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}
	return user, nil
}

// DeleteUser removes the user at the given uuid. Admin only; the role check
// lives in the Authorizer.
func (s *UserService) DeleteUser(accessToken, userUUID string) (string, error) {
	if _, err := s.authz.Authorize(accessToken, CapAdminDeleteUser); err != nil {
		return "", err
	}
	target, err := s.users.FindByUUID(userUUID)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if target == nil {
		return "", apperr.NotFound(apperr.ErrUserNotFound, "User with entered uuid to be deleted does not exist")
	}
	if err := s.users.DeleteByUUID(userUUID); err != nil {
		return "", fmt.Errorf("delete user: %w", err)
	}
	return userUUID, nil
}
