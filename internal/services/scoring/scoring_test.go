package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ScoringSuite struct {
	suite.Suite
}

func TestScoringSuite(t *testing.T) {
	suite.Run(t, new(ScoringSuite))
}

// Exact result tests

func (s *ScoringSuite) TestExactResultScoresFive() {
	s.Equal(5, Score(2, 1, 2, 1))
	s.Equal(5, Score(0, 0, 0, 0))
	s.Equal(5, Score(4, 3, 4, 3))
}

func (s *ScoringSuite) TestAnyExactScorelineScoresFive() {
	for h := 0; h <= 20; h++ {
		for a := 0; a <= 20; a++ {
			s.Equal(5, Score(h, a, h, a))
		}
	}
}

// Partial credit tests

func (s *ScoringSuite) TestOneTeamGoalsMatchedOnly() {
	// Home goals match, but outcome (H vs D) and difference both miss
	s.Equal(2, Score(2, 1, 2, 2))
}

func (s *ScoringSuite) TestOutcomeAndDifferenceMatched() {
	// No team goal matches; outcome H and difference 1 both hit
	s.Equal(2, Score(1, 0, 2, 1))
}

func (s *ScoringSuite) TestDrawPredictionAgainstDifferentDraw() {
	// Neither goal count matches; outcome D and difference 0 both hit
	s.Equal(2, Score(0, 0, 1, 1))
}

func (s *ScoringSuite) TestTotalMiss() {
	s.Equal(0, Score(3, 0, 0, 2))
}

func (s *ScoringSuite) TestOutcomeOnly() {
	// Outcome H matches; goals and difference all miss
	s.Equal(1, Score(3, 1, 1, 0))
}

func (s *ScoringSuite) TestGoalsAndOutcomeScoreThree() {
	// One team's goals and the outcome match, difference misses
	s.Equal(3, Score(2, 0, 2, 1))
	s.Equal(3, Score(3, 1, 3, 2))
}

func (s *ScoringSuite) TestOneGoalCountMatchedOnDrawnResult() {
	// Away goals match but a home win was predicted against a draw
	s.Equal(2, Score(2, 1, 1, 1))
}

func (s *ScoringSuite) TestNonExactNeverExceedsThree() {
	for ph := 0; ph <= 6; ph++ {
		for pa := 0; pa <= 6; pa++ {
			for rh := 0; rh <= 6; rh++ {
				for ra := 0; ra <= 6; ra++ {
					got := Score(ph, pa, rh, ra)
					if ph == rh && pa == ra {
						s.Equal(5, got)
					} else {
						s.LessOrEqual(got, 3)
						s.GreaterOrEqual(got, 0)
					}
				}
			}
		}
	}
}

// Outcome helper tests

func (s *ScoringSuite) TestOutcomeOf() {
	s.Equal(OutcomeHomeWin, OutcomeOf(2, 0))
	s.Equal(OutcomeAwayWin, OutcomeOf(0, 3))
	s.Equal(OutcomeDraw, OutcomeOf(1, 1))
}
