package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseSubject(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "quora-backend"}
	now := time.Now()

	tok, err := s.Issue("user-uuid-1", now, now.Add(8*time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := s.ParseSubject(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-uuid-1", subject)
}

// The stored session row decides expiry; the token's own exp claim must not
// make an authentic token unreadable.
func TestParseAcceptsExpiredToken(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "quora-backend"}
	issued := time.Now().Add(-9 * time.Hour)

	tok, err := s.Issue("user-uuid-1", issued, issued.Add(8*time.Hour))
	require.NoError(t, err)

	subject, err := s.ParseSubject(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-uuid-1", subject)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "quora-backend"}
	now := time.Now()

	tok, err := s.Issue("user-uuid-1", now, now.Add(time.Hour))
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = s.ParseSubject(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongKey(t *testing.T) {
	issuer := &Signer{Secret: []byte("key-a"), Issuer: "quora-backend"}
	verifier := &Signer{Secret: []byte("key-b"), Issuer: "quora-backend"}
	now := time.Now()

	tok, err := issuer.Issue("user-uuid-1", now, now.Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.ParseSubject(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret")}
	_, err := s.ParseSubject("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
