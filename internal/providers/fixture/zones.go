package fixture

import (
	"math"
	"math/rand"

	"github.com/preston-bernstein/nba-shotchart-service/internal/court"
	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

const maxPlacements = 8

type zoneTemplate struct {
	basic    string
	action   string
	shotType shots.ShotType
	makePct  float64
	sample   func(rng *rand.Rand) (x, y int)
}

// Order matches profile.zoneWeights.
var zoneTemplates = []zoneTemplate{
	{shots.ZoneRestrictedArea, "Driving Layup Shot", shots.TwoPointFieldGoal, 0.64, polar(0, court.RestrictedAreaRadius-5, 0, 180)},
	{shots.ZonePaintNonRA, "Floating Jump shot", shots.TwoPointFieldGoal, 0.43, box(-75, 75, 45, 135)},
	{shots.ZoneMidRange, "Pullup Jump shot", shots.TwoPointFieldGoal, 0.42, polar(150, 225, 15, 165)},
	{shots.ZoneLeftCorner3, "Jump Shot", shots.ThreePointFieldGoal, 0.39, box(-245, -222, -40, 80)},
	{shots.ZoneRightCorner3, "Jump Shot", shots.ThreePointFieldGoal, 0.39, box(222, 245, -40, 80)},
	{shots.ZoneAboveBreak3, "Jump Shot", shots.ThreePointFieldGoal, 0.36, polar(court.ArcRadius+3, 275, 25, 155)},
	{shots.ZoneBackcourt, "Heave", shots.ThreePointFieldGoal, 0.02, box(-200, 200, 480, 700)},
}

// matches reports whether a sampled location agrees with the template's labels on the court.
func (t zoneTemplate) matches(x, y int) bool {
	three := t.shotType == shots.ThreePointFieldGoal
	rim := t.basic == shots.ZoneRestrictedArea
	return court.IsThreePointLocation(x, y) == three && court.InRestrictedArea(x, y) == rim
}

// place samples until the location agrees with the labels, giving up after maxPlacements draws.
func (t zoneTemplate) place(rng *rand.Rand) (int, int) {
	x, y := t.sample(rng)
	for i := 1; i < maxPlacements && !t.matches(x, y); i++ {
		x, y = t.sample(rng)
	}
	return x, y
}

func box(x0, x1, y0, y1 int) func(*rand.Rand) (int, int) {
	return func(rng *rand.Rand) (int, int) {
		return x0 + rng.Intn(x1-x0+1), y0 + rng.Intn(y1-y0+1)
	}
}

func polar(r0, r1, deg0, deg1 float64) func(*rand.Rand) (int, int) {
	return func(rng *rand.Rand) (int, int) {
		r := r0 + rng.Float64()*(r1-r0)
		theta := (deg0 + rng.Float64()*(deg1-deg0)) * math.Pi / 180
		return int(math.Round(r * math.Cos(theta))), int(math.Round(r * math.Sin(theta)))
	}
}

func areaFor(basic string, x int) string {
	switch {
	case basic == shots.ZoneBackcourt:
		return shots.AreaBackcourt
	case basic == shots.ZoneRestrictedArea || basic == shots.ZonePaintNonRA:
		return shots.AreaCenter
	case x <= -150:
		return shots.AreaLeft
	case x < -50:
		return shots.AreaLeftCenter
	case x <= 50:
		return shots.AreaCenter
	case x < 150:
		return shots.AreaRightCenter
	default:
		return shots.AreaRight
	}
}

func rangeFor(basic string, dist float64) string {
	feet := dist / 10
	switch {
	case basic == shots.ZoneBackcourt:
		return "Back Court Shot"
	case feet < 8:
		return "Less Than 8 ft."
	case feet < 16:
		return "8-16 ft."
	case feet < 24:
		return "16-24 ft."
	default:
		return "24+ ft."
	}
}
