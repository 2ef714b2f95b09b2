package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup finds nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post lookup finds nothing.
	ErrPostNotFound = errors.New("post not found")
	// ErrForbidden is returned when the acting user is not the post author.
	ErrForbidden = errors.New("you are not allowed to do that")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("that username is taken")
	// ErrEmailTaken is returned when the requested email already exists.
	ErrEmailTaken = errors.New("that email is taken")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidImage is returned when an uploaded file is not a decodable image.
	ErrInvalidImage = errors.New("invalid image file")
	// ErrTokenInvalid is returned when a reset token fails verification or expired.
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// StatusCode maps domain errors to HTTP status codes for fatal outcomes.
// Validation-style errors (taken username/email, invalid image, bad
// credentials, bad token) are recovered locally by the handlers and never
// reach this mapping.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
