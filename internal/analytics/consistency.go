package analytics

import (
	"math"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
)

// Grade is the scoring-consistency classification.
type Grade string

const (
	GradeConsistent   Grade = "High Reliability (Consistent)"
	GradeModerate     Grade = "Moderate Variance (Normal)"
	GradeVolatile     Grade = "High Variance (Volatile)"
	GradeInsufficient Grade = "Insufficient games played"
)

var gradeDescriptions = map[Grade]string{
	GradeConsistent:   "Scores within a tight band night to night; plan for the average.",
	GradeModerate:     "Typical game-to-game swings; expect occasional big and quiet nights.",
	GradeVolatile:     "Output swings widely; one hot stretch can decide a game.",
	GradeInsufficient: "Not enough games in the log to judge scoring consistency.",
}

// ConsistencyReport describes how steady a player's scoring is.
type ConsistencyReport struct {
	Status                 Sufficiency `json:"status"`
	Games                  int         `json:"games"`
	AvgPoints              float64     `json:"avgPoints"`
	StdDevPoints           float64     `json:"stdDevPoints"`
	CoefficientOfVariation float64     `json:"coefficientOfVariation"`
	Grade                  Grade       `json:"grade"`
	Description            string      `json:"description"`
	RangeLow               float64     `json:"rangeLow"`
	RangeHigh              float64     `json:"rangeHigh"`
}

// ScoringConsistency grades the coefficient of variation of per-game points.
// It uses the sample standard deviation, so at least two games are required.
func ScoringConsistency(log gamelogs.Log) ConsistencyReport {
	report := ConsistencyReport{Games: len(log)}
	if len(log) <= MinGamesForConsistency {
		report.Status = StatusInsufficient
		report.Grade = GradeInsufficient
		report.Description = gradeDescriptions[GradeInsufficient]
		return report
	}

	mean, stdDev := meanAndSampleStdDev(log.Points())
	cv := 0.0
	if mean > 0 {
		cv = stdDev / mean
	}

	report.Status = StatusOK
	report.AvgPoints = mean
	report.StdDevPoints = stdDev
	report.CoefficientOfVariation = cv
	report.Grade = gradeFor(cv)
	report.Description = gradeDescriptions[report.Grade]
	report.RangeLow = mean - stdDev
	report.RangeHigh = mean + stdDev
	return report
}

func gradeFor(cv float64) Grade {
	switch {
	case cv < ConsistentCVLimit:
		return GradeConsistent
	case cv < ModerateCVLimit:
		return GradeModerate
	default:
		return GradeVolatile
	}
}

func meanAndSampleStdDev(values []float64) (float64, float64) {
	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / (n - 1))
}
