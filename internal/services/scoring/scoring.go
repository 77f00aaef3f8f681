// Package scoring implements the fixed points formula for predictions.
package scoring

// Points awarded by the formula
const (
	PointsExact      = 5
	PointsTeamGoals  = 2
	PointsOutcome    = 1
	PointsDifference = 1

	// MaxInexact caps the total for any non-exact prediction
	MaxInexact = 3
)

// Outcome is the result category of a scoreline
type Outcome string

const (
	OutcomeHomeWin Outcome = "H"
	OutcomeAwayWin Outcome = "A"
	OutcomeDraw    Outcome = "D"
)

// OutcomeOf returns the result category for a scoreline
func OutcomeOf(homeGoals, awayGoals int) Outcome {
	switch {
	case homeGoals > awayGoals:
		return OutcomeHomeWin
	case homeGoals < awayGoals:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// Score returns the points a prediction earns against the actual result.
//
// An exact scoreline is worth 5 and no other rule applies. Otherwise points
// accumulate independently: +2 for matching either team's goal count, +1 for
// the right outcome category, +1 for the right goal difference, with the
// total capped at 3. Pure and total over non-negative inputs; this is the
// single scoring routine used for both batch finalization and recomputes.
func Score(predHome, predAway, realHome, realAway int) int {
	if predHome == realHome && predAway == realAway {
		return PointsExact
	}

	points := 0

	if predHome == realHome || predAway == realAway {
		points += PointsTeamGoals
	}

	if OutcomeOf(predHome, predAway) == OutcomeOf(realHome, realAway) {
		points += PointsOutcome
	}

	if predHome-predAway == realHome-realAway {
		points += PointsDifference
	}

	if points > MaxInexact {
		return MaxInexact
	}
	return points
}
