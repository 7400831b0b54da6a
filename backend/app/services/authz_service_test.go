package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quora-backend/backend/app/apperr"
	"quora-backend/backend/app/models"
)

var authzBase = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newAuthzFixture() (*fakeUserStore, *fakeTokenStore, *AuthzService) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	authz := NewAuthzService(tokens, users)
	authz.now = func() time.Time { return authzBase }
	return users, tokens, authz
}

func TestAuthorizeUnknownToken(t *testing.T) {
	_, _, authz := newAuthzFixture()
	_, err := authz.Authorize("no-such-token", CapGetAllQuestions)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestAuthorizeLoggedOutToken(t *testing.T) {
	users, tokens, authz := newAuthzFixture()
	alice := users.add(models.User{UUID: "u-alice", Username: "alice", Role: models.RoleNonadmin})
	session := tokens.seedSession(alice, "tok-alice", authzBase)

	logout := authzBase.Add(time.Minute)
	session.LogoutAt = &logout

	_, err := authz.Authorize("tok-alice", CapGetAllQuestions)
	assert.ErrorIs(t, err, apperr.ErrSignedOut)
}

func TestAuthorizeExpiredToken(t *testing.T) {
	users, tokens, authz := newAuthzFixture()
	alice := users.add(models.User{UUID: "u-alice", Username: "alice", Role: models.RoleNonadmin})
	tokens.seedSession(alice, "tok-alice", authzBase)

	// 8h window elapsed; detection is lazy, no sweep involved
	authz.now = func() time.Time { return authzBase.Add(8*time.Hour + time.Second) }

	_, err := authz.Authorize("tok-alice", CapGetAllQuestions)
	assert.ErrorIs(t, err, apperr.ErrSignedOut)
}

func TestAuthorizeActiveTokenResolvesUser(t *testing.T) {
	users, tokens, authz := newAuthzFixture()
	alice := users.add(models.User{UUID: "u-alice", Username: "alice", Role: models.RoleNonadmin})
	tokens.seedSession(alice, "tok-alice", authzBase)

	user, err := authz.Authorize("tok-alice", CapGetAllQuestions)
	require.NoError(t, err)
	assert.Equal(t, "u-alice", user.UUID)
}

func TestAuthorizeAdminCapability(t *testing.T) {
	users, tokens, authz := newAuthzFixture()
	alice := users.add(models.User{UUID: "u-alice", Username: "alice", Role: models.RoleNonadmin})
	root := users.add(models.User{UUID: "u-root", Username: "root", Role: models.RoleAdmin})
	tokens.seedSession(alice, "tok-alice", authzBase)
	tokens.seedSession(root, "tok-root", authzBase)

	_, err := authz.Authorize("tok-alice", CapAdminDeleteUser)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	user, err := authz.Authorize("tok-root", CapAdminDeleteUser)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

// Full lifecycle across the Authenticator and Authorizer, matching the
// sign-up → sign-in → authorize → sign-out → authorize sequence.
func TestSessionLifecycle(t *testing.T) {
	users := newFakeUserStore()
	tokens := newFakeTokenStore()
	auth := newAuthService(users, tokens)
	authz := NewAuthzService(tokens, users)

	now := authzBase
	auth.now = func() time.Time { return now }
	authz.now = func() time.Time { return now }

	created, err := auth.SignUp(&models.User{Username: "alice", Email: "a@x.com"}, "p1")
	require.NoError(t, err)

	session, err := auth.SignIn("alice", "p1")
	require.NoError(t, err)

	user, err := authz.Authorize(session.AccessToken, CapGetAllQuestions)
	require.NoError(t, err)
	assert.Equal(t, created.UUID, user.UUID)

	_, err = auth.SignOut(session.AccessToken)
	require.NoError(t, err)

	_, err = authz.Authorize(session.AccessToken, CapGetAllQuestions)
	assert.ErrorIs(t, err, apperr.ErrSignedOut)
}
