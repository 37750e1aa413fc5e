package response

import (
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/auth"
)

// User represents a user account in API responses
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       int64(u.ID),
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// CurrentUser is the response for the current-user endpoint
type CurrentUser struct {
	LoggedIn bool  `json:"logged_in"`
	User     *User `json:"user,omitempty"`
}

// FavoriteStatus is the response for the favorite-check endpoint
type FavoriteStatus struct {
	IsFavorite bool `json:"is_favorite"`
}
