package analytics

import (
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// DefensiveLayer is a coarse shot-location bucket for coverage planning.
type DefensiveLayer string

const (
	LayerRim       DefensiveLayer = "Rim"
	LayerMidRange  DefensiveLayer = "MidRange"
	LayerPerimeter DefensiveLayer = "Perimeter"
	LayerOther     DefensiveLayer = "Other"
)

// scoredLayers is also the tie-break order for equal points per shot.
var scoredLayers = []DefensiveLayer{LayerRim, LayerMidRange, LayerPerimeter}

// ClassifyLayer maps a provider zone label to a defensive layer.
func ClassifyLayer(zoneBasic string) DefensiveLayer {
	switch {
	case strings.Contains(zoneBasic, shots.ZoneRestrictedArea):
		return LayerRim
	case strings.Contains(zoneBasic, shots.ZoneMidRange), zoneBasic == shots.ZonePaintNonRA:
		return LayerMidRange
	case strings.Contains(zoneBasic, shots.ZoneAboveBreak3),
		strings.Contains(zoneBasic, shots.ZoneCorner3),
		strings.Contains(zoneBasic, shots.ZoneBackcourt):
		return LayerPerimeter
	default:
		return LayerOther
	}
}

// LayerStat is the scoring line for one defensive layer.
type LayerStat struct {
	Layer         DefensiveLayer `json:"layer"`
	Attempts      int            `json:"attempts"`
	Makes         int            `json:"makes"`
	Points        int            `json:"points"`
	FGPct         float64        `json:"fgPct"`
	PointsPerShot float64        `json:"pointsPerShot"`
}

// CoverageReport names the layer to concede and the layer to take away.
type CoverageReport struct {
	Status  Sufficiency `json:"status"`
	Message string      `json:"message,omitempty"`
	Layers  []LayerStat `json:"layers"`
	Force   *LayerStat  `json:"force,omitempty"`
	Deny    *LayerStat  `json:"deny,omitempty"`
}

// LayerStats aggregates attempts, makes and points per layer, including Other.
func LayerStats(in []shots.Shot) map[DefensiveLayer]LayerStat {
	out := make(map[DefensiveLayer]LayerStat, 4)
	for _, s := range in {
		layer := ClassifyLayer(s.ZoneBasic)
		st := out[layer]
		st.Layer = layer
		st.Attempts++
		if s.Made {
			st.Makes++
		}
		st.Points += s.Points()
		out[layer] = st
	}
	for layer, st := range out {
		st.FGPct = ratio(st.Makes, st.Attempts)
		st.PointsPerShot = ratio(st.Points, st.Attempts)
		out[layer] = st
	}
	return out
}

// DefensiveCoverage recommends forcing the lowest-PPS layer and denying the highest.
// Other and layers with MinLayerAttempts or fewer attempts are ignored.
func DefensiveCoverage(in []shots.Shot) CoverageReport {
	all := LayerStats(in)

	report := CoverageReport{Status: StatusOK, Layers: []LayerStat{}}
	for _, layer := range scoredLayers {
		st, ok := all[layer]
		if !ok || st.Attempts <= MinLayerAttempts {
			continue
		}
		report.Layers = append(report.Layers, st)
	}

	if len(report.Layers) == 0 {
		report.Status = StatusInsufficient
		report.Message = "Insufficient volume to recommend a coverage scheme."
		return report
	}

	force, deny := report.Layers[0], report.Layers[0]
	for _, st := range report.Layers[1:] {
		if st.PointsPerShot < force.PointsPerShot {
			force = st
		}
		if st.PointsPerShot > deny.PointsPerShot {
			deny = st
		}
	}
	report.Force = &force
	report.Deny = &deny
	return report
}
