package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"quora-backend/backend/app/dto"
)

// Error is a condition the caller can act on. Code is stable and
// machine-readable; Message is what the HTTP layer returns verbatim.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

// Is matches on Code so wrapped instances compare equal to the sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

var (
	// Sign-up conflicts. Username check takes precedence when both collide.
	ErrUsernameTaken = &Error{Code: "SGR-001", Message: "Try any other Username, this Username has already been taken", Status: http.StatusConflict}
	ErrEmailTaken    = &Error{Code: "SGR-002", Message: "This user has already been registered, try with any other emailId", Status: http.StatusConflict}

	// Sign-in failures.
	ErrUnknownUser    = &Error{Code: "ATH-001", Message: "This username does not exist", Status: http.StatusUnauthorized}
	ErrBadCredentials = &Error{Code: "ATH-002", Message: "Password failed", Status: http.StatusUnauthorized}

	// Sign-out without a matching session.
	ErrNotSignedIn = &Error{Code: "SGO-001", Message: "User is not Signed in", Status: http.StatusUnauthorized}

	// Authorization failures.
	ErrUnauthenticated = &Error{Code: "ATHR-001", Message: "User has not signed in", Status: http.StatusUnauthorized}
	ErrSignedOut       = &Error{Code: "ATHR-002", Message: "User is signed out", Status: http.StatusUnauthorized}
	ErrForbidden       = &Error{Code: "ATHR-003", Message: "Unauthorized Access", Status: http.StatusForbidden}

	// Missing resources.
	ErrUserNotFound     = &Error{Code: "USR-001", Message: "User with entered uuid does not exist", Status: http.StatusNotFound}
	ErrQuestionNotFound = &Error{Code: "QUES-001", Message: "The question entered is invalid", Status: http.StatusNotFound}
	ErrAnswerNotFound   = &Error{Code: "ANS-001", Message: "Entered answer uuid does not exist", Status: http.StatusNotFound}
)

// Forbidden returns ATHR-003 with an endpoint-specific message.
func Forbidden(message string) *Error {
	return &Error{Code: ErrForbidden.Code, Message: message, Status: ErrForbidden.Status}
}

// NotFound returns a copy of the given not-found sentinel with a
// context-specific message.
func NotFound(base *Error, message string) *Error {
	return &Error{Code: base.Code, Message: message, Status: base.Status}
}

// Write renders the error in its wire shape. Every rejection path goes
// through here so code and message stay in lockstep with the sentinels.
func Write(w http.ResponseWriter, e *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: e.Code, Message: e.Message})
}
