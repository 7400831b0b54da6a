package services

import (
	"fmt"
	"time"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/models"
)

// AuthzService resolves a bearer token to its user and enforces the
// capability rule. The stored session row is authoritative: a token that
// parses fine but whose row is logged out or expired does not authorize.
type AuthzService struct {
	tokens TokenStore
	users  UserStore

	now func() time.Time
}

func NewAuthzService(tokens TokenStore, users UserStore) *AuthzService {
	return &AuthzService{tokens: tokens, users: users, now: time.Now}
}

// Authorize looks up the session, checks it is still active, resolves the
// owning user, and applies the capability's role rule. Ownership rules are
// applied by the calling service against the returned user.
func (s *AuthzService) Authorize(accessToken string, cap Capability) (*models.User, error) {
	record, err := s.tokens.FindByAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}
	if record == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if !record.Active(s.now()) {
		return nil, apperr.ErrSignedOut
	}

	user := &record.User
	if user.ID == 0 {
		if user, err = s.users.FindByUUID(record.UUID); err != nil {
			return nil, fmt.Errorf("resolve user: %w", err)
		}
		if user == nil {
			return nil, apperr.ErrUnauthenticated
		}
	}

	if cap.AdminOnly() && !user.IsAdmin() {
		return nil, apperr.Forbidden("Unauthorized Access, Entered user is not an admin")
	}
	return user, nil
}
