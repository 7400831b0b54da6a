package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/crypto"
	"quora-backend/backend/app/models"
	"quora-backend/backend/app/token"
)

// AuthService handles sign-up, sign-in, and sign-out.
type AuthService struct {
	users  UserStore
	tokens TokenStore
	signer *token.Signer

	defaultPassword string
	tokenTTL        time.Duration

	now func() time.Time
}

func NewAuthService(users UserStore, tokens TokenStore, signer *token.Signer, defaultPassword string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:           users,
		tokens:          tokens,
		signer:          signer,
		defaultPassword: defaultPassword,
		tokenTTL:        tokenTTL,
		now:             time.Now,
	}
}

// SignUp persists the candidate as a regular user with a fresh uuid and a
// salted password digest. The username/email pre-checks are advisory; the
// database unique indexes serialize concurrent sign-ups, and an insert
// rejected by them is classified the same way.
func (s *AuthService) SignUp(candidate *models.User, password string) (*models.User, error) {
	if existing, err := s.users.FindByUsername(candidate.Username); err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	} else if existing != nil {
		return nil, apperr.ErrUsernameTaken
	}
	if existing, err := s.users.FindByEmail(candidate.Email); err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	} else if existing != nil {
		return nil, apperr.ErrEmailTaken
	}

	if password == "" {
		password = s.defaultPassword
	}
	salt, digest, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	candidate.UUID = uuid.NewString()
	candidate.Role = models.RoleNonadmin
	candidate.Salt = salt
	candidate.PasswordHash = digest

	if err := s.users.Create(candidate); err != nil {
		return nil, s.classifyCreateError(candidate, err)
	}
	return candidate, nil
}

// classifyCreateError maps a unique-constraint rejection back onto the
// sign-up taxonomy. Username wins when both collided.
func (s *AuthService) classifyCreateError(candidate *models.User, cause error) error {
	if u, err := s.users.FindByUsername(candidate.Username); err == nil && u != nil && u.UUID != candidate.UUID {
		return apperr.ErrUsernameTaken
	}
	if u, err := s.users.FindByEmail(candidate.Email); err == nil && u != nil && u.UUID != candidate.UUID {
		return apperr.ErrEmailTaken
	}
	return fmt.Errorf("create user: %w", cause)
}

// SignIn verifies the credentials and mints a session valid for the
// configured window. Concurrent sign-ins each get an independent session.
func (s *AuthService) SignIn(username, password string) (*models.UserAuthToken, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperr.ErrUnknownUser
	}
	if !crypto.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, apperr.ErrBadCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	accessToken, err := s.signer.Issue(user.UUID, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	authToken := &models.UserAuthToken{
		UUID:        user.UUID,
		UserID:      user.ID,
		User:        *user,
		AccessToken: accessToken,
		LoginAt:     now,
		ExpiresAt:   expiresAt,
	}
	if err := s.tokens.Create(authToken); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return authToken, nil
}

// SignOut stamps the session's logout time and returns the owning user's
// uuid. A token that was never issued, or whose session is already logged
// out, is not signed in.
func (s *AuthService) SignOut(accessToken string) (string, error) {
	record, err := s.tokens.FindByAccessToken(accessToken)
	if err != nil {
		return "", fmt.Errorf("find token: %w", err)
	}
	if record == nil || record.LogoutAt != nil {
		return "", apperr.ErrNotSignedIn
	}
	now := s.now()
	record.LogoutAt = &now
	if err := s.tokens.Update(record); err != nil {
		return "", fmt.Errorf("stamp logout: %w", err)
	}
	return record.UUID, nil
}
