package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeFavoriteExists     = "FAVORITE_EXISTS"
	CodeFavoriteNotFound   = "FAVORITE_NOT_FOUND"
	CodeInvalidScore       = "INVALID_SCORE"
	CodeNoFieldsToUpdate   = "NO_FIELDS_TO_UPDATE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, model.ErrFavoriteExists):
		return &httpError{http.StatusConflict, APIError{CodeFavoriteExists, "Already in favorites"}}
	case errors.Is(err, model.ErrFavoriteNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeFavoriteNotFound, "Favorite not found"}}
	case errors.Is(err, model.ErrInvalidScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScore, "Score must be between 1 and 5"}}
	case errors.Is(err, model.ErrNoFieldsToUpdate):
		return &httpError{http.StatusBadRequest, APIError{CodeNoFieldsToUpdate, "No editable fields in request"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Admin access required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
