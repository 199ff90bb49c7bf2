package analytics

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/court"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// Bias is the side of the floor a shooter favors.
type Bias string

const (
	BiasLeft         Bias = "LEFT"
	BiasRight        Bias = "RIGHT"
	BiasBalanced     Bias = "BALANCED"
	BiasInsufficient Bias = "INSUFFICIENT_DATA"
)

const (
	strategyForceRight = "Force defense toward right side"
	strategyForceLeft  = "Force defense toward left side"
	strategyStraightUp = "Play straight up"
	strategyNeedVolume = "Need more shot volume"
)

// DirectionalReport compares left- and right-side efficiency.
// Shots exactly on the centerline count toward neither side.
type DirectionalReport struct {
	Status         Sufficiency `json:"status"`
	Bias           Bias        `json:"bias"`
	Strategy       string      `json:"strategy"`
	LeftAttempts   int         `json:"leftAttempts"`
	LeftMakes      int         `json:"leftMakes"`
	LeftPct        float64     `json:"leftPct"`
	RightAttempts  int         `json:"rightAttempts"`
	RightMakes     int         `json:"rightMakes"`
	RightPct       float64     `json:"rightPct"`
	CenterAttempts int         `json:"centerAttempts"`
}

// DirectionalBias classifies side preference once both sides reach MinSideAttempts.
// Percentages stay 0 when the sample is insufficient.
func DirectionalBias(in []shots.Shot) DirectionalReport {
	var r DirectionalReport
	for _, s := range in {
		switch court.SideOf(s.LocationX) {
		case court.SideLeft:
			r.LeftAttempts++
			if s.Made {
				r.LeftMakes++
			}
		case court.SideRight:
			r.RightAttempts++
			if s.Made {
				r.RightMakes++
			}
		default:
			r.CenterAttempts++
		}
	}

	if r.LeftAttempts < MinSideAttempts || r.RightAttempts < MinSideAttempts {
		r.Status = StatusInsufficient
		r.Bias = BiasInsufficient
		r.Strategy = strategyNeedVolume
		return r
	}

	r.Status = StatusOK
	r.LeftPct = ratio(r.LeftMakes, r.LeftAttempts)
	r.RightPct = ratio(r.RightMakes, r.RightAttempts)

	switch {
	case r.LeftPct > r.RightPct+SideBiasMargin:
		r.Bias = BiasLeft
		r.Strategy = strategyForceRight
	case r.RightPct > r.LeftPct+SideBiasMargin:
		r.Bias = BiasRight
		r.Strategy = strategyForceLeft
	default:
		r.Bias = BiasBalanced
		r.Strategy = strategyStraightUp
	}
	return r
}
