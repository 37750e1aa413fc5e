// Package rollup averages per-game efficiency ratings over a
// collection of box-score lines for one target.
package rollup

import (
	"github.com/ao3101/eurostat/internal/model"
	"github.com/ao3101/eurostat/internal/services/metrics"
)

// AverageEfficiency sums the per-line efficiency ratings and divides
// by games, rounding to 2 decimal places. No lines, or a non-positive
// divisor, yields the "no data" sentinel rather than a zero score.
//
// The divisor is an explicit parameter because the scopes disagree on
// it: the season view divides by the profile's authoritative
// games-played counter (which can exceed the stored row count when
// historical box scores are missing), while the roster and favorites
// views divide by the row count. Passing it at each call site keeps
// the inconsistency visible.
func AverageEfficiency(lines []model.BoxScore, games int) model.Average {
	if len(lines) == 0 || games <= 0 {
		return model.NoAverage()
	}

	var total float64
	for _, line := range lines {
		total += metrics.EfficiencyRating(line)
	}

	return model.SomeAverage(metrics.Round(total/float64(games), 2))
}

// ByRowCount averages over the stored lines themselves, one game per
// line. Used by the roster and favorites scopes.
func ByRowCount(lines []model.BoxScore) model.Average {
	return AverageEfficiency(lines, len(lines))
}
