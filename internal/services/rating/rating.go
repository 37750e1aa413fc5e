// Package rating aggregates user-submitted scores into the 1-5
// community rating shown on player and team pages.
package rating

import (
	"context"

	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/metrics"
	"github.com/ao3101/eurostat/internal/storage"
)

// Service computes and records community ratings
type Service struct {
	users storage.UserStore
}

func NewService(users storage.UserStore) *Service {
	return &Service{users: users}
}

// Submit records a score for a player or team. Scores are kept as
// submitted; re-rating adds another sample rather than replacing the
// old one.
func (s *Service) Submit(ctx context.Context, userID model.UserID, targetID string, targetType model.TargetType, score int) error {
	if score < 1 || score > 5 {
		return model.ErrInvalidScore
	}

	return s.users.AddRating(ctx, &model.Rating{
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
		Score:      score,
	})
}

// AverageFor returns the mean of all scores submitted for a target,
// rounded to one decimal place. With no submissions the result is the
// no-data sentinel, not zero.
func (s *Service) AverageFor(ctx context.Context, targetID string) (model.Average, error) {
	ratings, err := s.users.RatingsForTarget(ctx, targetID)
	if err != nil {
		return model.NoAverage(), err
	}
	if len(ratings) == 0 {
		return model.NoAverage(), nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	avg := metrics.Round(float64(sum)/float64(len(ratings)), 1)
	return model.SomeAverage(avg), nil
}
