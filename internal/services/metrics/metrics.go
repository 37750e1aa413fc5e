// Package metrics holds the pure per-line metric calculators.
// Both functions are total and deterministic: every box-score line
// maps to a value, and no input can produce an error.
package metrics

import (
	"math"

	"github.com/ao3101/eurostat/internal/model"
)

// EfficiencyRating computes the composite performance rating for a
// single box-score line, rounded to 2 decimal places:
//
//	points + 0.4*fgMade - 0.7*fgAttempted - 0.4*ftMissed
//	       + 0.7*offReb + 0.3*defReb
//	       + steals + 0.7*assists + 0.7*blocks
//	       - 0.4*fouls - turnovers
//
// Free-throw attempts below makes are not validated here; a negative
// miss count propagates into the rating as-is. That is a known gap in
// the input data, not something the calculator remediates.
func EfficiencyRating(line model.BoxScore) float64 {
	fgMade := float64(line.FieldGoalsMade())
	fgAttempted := float64(line.FieldGoalsAttempted())
	ftMissed := float64(line.FreeThrowsAttempted - line.FreeThrowsMade)

	rating := float64(line.Points) +
		0.4*fgMade -
		0.7*fgAttempted -
		0.4*ftMissed +
		0.7*float64(line.OffensiveRebounds) +
		0.3*float64(line.DefensiveRebounds) +
		float64(line.Steals) +
		0.7*float64(line.Assists) +
		0.7*float64(line.Blocks) -
		0.4*float64(line.Fouls) -
		float64(line.Turnovers)

	return Round(rating, 2)
}

// ShootingPercentage computes the field-goal percentage
// (2PT + 3PT combined) rounded to 1 decimal place.
// Zero attempts yields 0.0, never a division error.
func ShootingPercentage(s model.ShootingSplits) float64 {
	attempted := s.FieldGoalsAttempted()
	if attempted == 0 {
		return 0.0
	}
	return Round(float64(s.FieldGoalsMade())/float64(attempted)*100, 1)
}

// Round rounds v to the given number of decimal places
func Round(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
