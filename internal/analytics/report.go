package analytics

import (
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/gamelogs"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// ScoutingReport bundles the independent scouting analyses for one player season.
type ScoutingReport struct {
	ShotCount   int               `json:"shotCount"`
	GameCount   int               `json:"gameCount"`
	Offense     ZoneRanking       `json:"offense"`
	Direction   DirectionalReport `json:"direction"`
	Coverage    CoverageReport    `json:"coverage"`
	Consistency ConsistencyReport `json:"consistency"`
}

// BuildScoutingReport runs every analysis; nil or empty inputs yield insufficient sections.
func BuildScoutingReport(in []shots.Shot, log gamelogs.Log) ScoutingReport {
	return ScoutingReport{
		ShotCount:   len(in),
		GameCount:   len(log),
		Offense:     RankZones(in),
		Direction:   DirectionalBias(in),
		Coverage:    DefensiveCoverage(in),
		Consistency: ScoringConsistency(log),
	}
}

// Report section names.
const (
	SectionOffense     = "offense"
	SectionDirection   = "direction"
	SectionCoverage    = "coverage"
	SectionConsistency = "consistency"
)

// SectionStatus pairs a section name with its sample outcome.
type SectionStatus struct {
	Section string
	Status  Sufficiency
}

// Sections returns every section's status in report order.
func (r ScoutingReport) Sections() []SectionStatus {
	return []SectionStatus{
		{SectionOffense, r.Offense.Status},
		{SectionDirection, r.Direction.Status},
		{SectionCoverage, r.Coverage.Status},
		{SectionConsistency, r.Consistency.Status},
	}
}

// InsufficientSections lists the sections that did not meet their minimum sample.
func (r ScoutingReport) InsufficientSections() []string {
	var out []string
	for _, s := range r.Sections() {
		if s.Status == StatusInsufficient {
			out = append(out, s.Section)
		}
	}
	return out
}
