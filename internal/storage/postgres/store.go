// Package postgres implements the relational user store on
// PostgreSQL, for deployments that outgrow the SQLite file.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/storage"
)

// UserStore implements storage.UserStore using PostgreSQL
type UserStore struct {
	db *sql.DB
}

// New connects to PostgreSQL with the given connection string and
// initializes the schema
func New(connStr string) (*UserStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
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
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		target_id TEXT NOT NULL,
		target_type TEXT NOT NULL,
		score INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_ratings_target ON ratings(target_id);

	CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		target_id TEXT NOT NULL,
		target_type TEXT NOT NULL,
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, target_id, target_type)
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// User operations

func (s *UserStore) CreateUser(ctx context.Context, user *model.User) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, is_admin) VALUES ($1, $2, $3) RETURNING id`,
		user.Username, user.PasswordHash, user.IsAdmin,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrUsernameExists
		}
		return err
	}
	return nil
}

func (s *UserStore) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, is_admin FROM users WHERE id = $1`, id,
	))
}

func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, is_admin FROM users WHERE username = $1`, username,
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
	return s.db.QueryRowContext(ctx,
		`INSERT INTO ratings (user_id, target_id, target_type, score) VALUES ($1, $2, $3, $4) RETURNING id`,
		rating.UserID, rating.TargetID, rating.TargetType, rating.Score,
	).Scan(&rating.ID)
}

func (s *UserStore) RatingsForTarget(ctx context.Context, targetID string) ([]model.Rating, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, target_id, target_type, score FROM ratings WHERE target_id = $1`,
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

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO favorites (user_id, target_id, target_type, added_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		fav.UserID, fav.TargetID, fav.TargetType, fav.AddedAt,
	).Scan(&fav.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrFavoriteExists
		}
		return err
	}
	return nil
}

func (s *UserStore) RemoveFavorite(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND target_id = $2 AND target_type = $3`,
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
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND target_id = $2 AND target_type = $3)`,
		userID, targetID, targetType,
	).Scan(&exists)
	return exists, err
}

func (s *UserStore) FavoritesForUser(ctx context.Context, userID model.UserID) ([]model.Favorite, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, target_id, target_type, added_at FROM favorites WHERE user_id = $1 ORDER BY added_at, id`,
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

// isUniqueViolation reports whether err is a PostgreSQL
// unique_violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
