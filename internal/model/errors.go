package model

import "errors"

// Common errors used across the application
var (
	// Stats entity errors
	ErrPlayerNotFound   = errors.New("player not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrBoxScoreNotFound = errors.New("box score not found")

	// User data errors
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameExists   = errors.New("username already exists")
	ErrFavoriteExists   = errors.New("already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrInvalidScore     = errors.New("rating score must be between 1 and 5")

	// Profile edit errors
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
)
