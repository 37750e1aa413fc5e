package model

import "time"

// UserID identifies a user account in the relational store
type UserID int64

// TargetType distinguishes what a rating or favorite points at
type TargetType string

const (
	TargetPlayer TargetType = "player"
	TargetTeam   TargetType = "team"
)

// User is an account in the relational store
type User struct {
	ID           UserID
	Username     string
	PasswordHash string // bcrypt hash
	IsAdmin      bool
}

// Rating is one user's 1-5 score for a player or team. The data
// layer does not deduplicate ratings per (user, target); aggregation
// averages whatever rows exist.
type Rating struct {
	ID         int64
	UserID     UserID
	TargetID   string
	TargetType TargetType
	Score      int
}

// Favorite marks a player or team as favorited by a user.
// At most one Favorite exists per (user, target, type).
type Favorite struct {
	ID         int64
	UserID     UserID
	TargetID   string
	TargetType TargetType
	AddedAt    time.Time
}
