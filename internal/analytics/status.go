package analytics

// Sufficiency marks whether an analysis met its minimum sample.
type Sufficiency string

const (
	StatusOK           Sufficiency = "OK"
	StatusInsufficient Sufficiency = "INSUFFICIENT_DATA"
)

// Fixed policy thresholds. Changing any of these changes report output.
const (
	// MinZoneAttempts is exclusive: a zone needs more than this many attempts.
	MinZoneAttempts = 5
	// MinSideAttempts is inclusive: each side needs at least this many attempts.
	MinSideAttempts = 10
	// SideBiasMargin is the FG% gap that marks a side preference.
	SideBiasMargin = 0.05
	// MinLayerAttempts is exclusive: a defensive layer needs more than this many attempts.
	MinLayerAttempts = 5
	// MinGamesForConsistency is exclusive: the log needs more than this many games.
	MinGamesForConsistency = 1

	ConsistentCVLimit = 0.2
	ModerateCVLimit   = 0.4

	rankingSize = 3
)
