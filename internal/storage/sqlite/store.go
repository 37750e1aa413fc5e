// Package sqlite implements the relational user store on SQLite,
// the default backend for accounts, ratings and favorites.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// UserStore implements storage.UserStore using SQLite
type UserStore struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dbPath and
// initializes the schema
func New(dbPath string) (*UserStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &UserStore{db: db}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database
func (s *UserStore) Close() error {
	return s.db.Close()
}

// Ensure UserStore implements the interface
var _ storage.UserStore = (*UserStore)(nil)

func (s *UserStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		target_id TEXT NOT NULL,
		target_type TEXT NOT NULL,
		score INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE INDEX IF NOT EXISTS idx_ratings_target ON ratings(target_id);

	CREATE TABLE IF NOT EXISTS favorites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		target_id TEXT NOT NULL,
		target_type TEXT NOT NULL,
		added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (user_id, target_id, target_type),
		FOREIGN KEY (user_id) REFERENCES users(id)
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// User operations

func (s *UserStore) CreateUser(ctx context.Context, user *model.User) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, is_admin) VALUES (?, ?, ?)`,
		user.Username, user.PasswordHash, user.IsAdmin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrUsernameExists
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = model.UserID(id)
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, is_admin FROM users WHERE id = ?`, id,
	))
}

func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, is_admin FROM users WHERE username = ?`, username,
	))
}

func (s *UserStore) scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Rating operations

func (s *UserStore) AddRating(ctx context.Context, rating *model.Rating) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO ratings (user_id, target_id, target_type, score) VALUES (?, ?, ?, ?)`,
		rating.UserID, rating.TargetID, rating.TargetType, rating.Score,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rating.ID = id
	return nil
}

func (s *UserStore) RatingsForTarget(ctx context.Context, targetID string) ([]model.Rating, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, target_id, target_type, score FROM ratings WHERE target_id = ?`,
		targetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		var r model.Rating
		if err := rows.Scan(&r.ID, &r.UserID, &r.TargetID, &r.TargetType, &r.Score); err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

// Favorite operations

func (s *UserStore) AddFavorite(ctx context.Context, fav *model.Favorite) error {
	if fav.AddedAt.IsZero() {
		fav.AddedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, target_id, target_type, added_at) VALUES (?, ?, ?, ?)`,
		fav.UserID, fav.TargetID, fav.TargetType, fav.AddedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrFavoriteExists
		}
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	fav.ID = id
	return nil
}

func (s *UserStore) RemoveFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND target_id = ? AND target_type = ?`,
		userID, targetID, targetType,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrFavoriteNotFound
	}
	return nil
}

func (s *UserStore) HasFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND target_id = ? AND target_type = ?`,
		userID, targetID, targetType,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *UserStore) FavoritesForUser(ctx context.Context, userID model.UserID) ([]model.Favorite, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, target_id, target_type, added_at FROM favorites WHERE user_id = ? ORDER BY added_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.TargetID, &f.TargetType, &f.AddedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

// isUniqueViolation reports whether err is a SQLite UNIQUE
// constraint failure
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
