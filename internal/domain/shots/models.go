package shots

// ShotType identifies the point value of an attempt.
type ShotType string

const (
	TwoPointFieldGoal   ShotType = "2PT Field Goal"
	ThreePointFieldGoal ShotType = "3PT Field Goal"
)

// Zone labels used by the stats provider.
const (
	ZoneRestrictedArea = "Restricted Area"
	ZonePaintNonRA     = "In The Paint (Non-RA)"
	ZoneMidRange       = "Mid-Range"
	ZoneLeftCorner3    = "Left Corner 3"
	ZoneRightCorner3   = "Right Corner 3"
	ZoneCorner3        = "Corner 3"
	ZoneAboveBreak3    = "Above the Break 3"
	ZoneBackcourt      = "Backcourt"

	AreaLeft        = "Left Side(L)"
	AreaLeftCenter  = "Left Side Center(LC)"
	AreaCenter      = "Center(C)"
	AreaRightCenter = "Right Side Center(RC)"
	AreaRight       = "Right Side(R)"
	AreaBackcourt   = "Back Court(BC)"
)

// Shot is a single field-goal attempt.
type Shot struct {
	GameID       string   `json:"gameId"`
	GameDate     string   `json:"gameDate"`
	TeamID       int      `json:"teamId"`
	Period       int      `json:"period"`
	ActionType   string   `json:"actionType"`
	LocationX    int      `json:"locationX"`
	LocationY    int      `json:"locationY"`
	Made         bool     `json:"made"`
	ZoneBasic    string   `json:"zoneBasic"`
	ZoneArea     string   `json:"zoneArea"`
	ZoneRange    string   `json:"zoneRange"`
	ShotType     ShotType `json:"shotType"`
	DistanceFeet float64  `json:"distanceFeet"`
}

// ZoneKey is the composite (basic, area) zone identity.
type ZoneKey struct {
	Basic string
	Area  string
}

// Name renders the key as "basic - area".
func (k ZoneKey) Name() string {
	return k.Basic + " - " + k.Area
}

// Zone returns the composite zone key of the shot.
func (s Shot) Zone() ZoneKey {
	return ZoneKey{Basic: s.ZoneBasic, Area: s.ZoneArea}
}

// Result labels the outcome for display.
func (s Shot) Result() string {
	if s.Made {
		return "Made"
	}
	return "Missed"
}

// Value is the number of points the attempt is worth.
func (s Shot) Value() int {
	if s.ShotType == ThreePointFieldGoal {
		return 3
	}
	return 2
}

// Points is the number of points the attempt produced.
func (s Shot) Points() int {
	if !s.Made {
		return 0
	}
	return s.Value()
}

// MadeFromFlag converts the provider's made flag (1 = made).
func MadeFromFlag(flag int) bool {
	return flag == 1
}
