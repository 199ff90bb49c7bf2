package court

import "math"

// Half-court coordinates are in tenths of a foot with the hoop center at the origin.
const (
	CornerThreeX          = 220.0
	ArcRadius             = 237.5
	BaselineY             = -47.5
	HoopRadius            = 7.5
	BackboardY            = -7.5
	FreeThrowCircleRadius = 60.0
	FreeThrowCircleY      = 142.5
	RestrictedAreaRadius  = 40.0
)

// Geometry is the serializable form of the court constants.
type Geometry struct {
	CornerThreeX          float64 `json:"cornerThreeX"`
	ArcRadius             float64 `json:"arcRadius"`
	ArcJoinY              float64 `json:"arcJoinY"`
	BaselineY             float64 `json:"baselineY"`
	HoopRadius            float64 `json:"hoopRadius"`
	BackboardY            float64 `json:"backboardY"`
	FreeThrowCircleRadius float64 `json:"freeThrowCircleRadius"`
	FreeThrowCircleY      float64 `json:"freeThrowCircleY"`
	RestrictedAreaRadius  float64 `json:"restrictedAreaRadius"`
}

// Standard returns the half-court geometry.
func Standard() Geometry {
	return Geometry{
		CornerThreeX:          CornerThreeX,
		ArcRadius:             ArcRadius,
		ArcJoinY:              ArcJoinY(),
		BaselineY:             BaselineY,
		HoopRadius:            HoopRadius,
		BackboardY:            BackboardY,
		FreeThrowCircleRadius: FreeThrowCircleRadius,
		FreeThrowCircleY:      FreeThrowCircleY,
		RestrictedAreaRadius:  RestrictedAreaRadius,
	}
}

// ArcJoinY is the Y coordinate where the straight corner line meets the arc (~89.48).
func ArcJoinY() float64 {
	return math.Sqrt(ArcRadius*ArcRadius - CornerThreeX*CornerThreeX)
}

// DistanceFromHoop returns the straight-line distance to the hoop center.
func DistanceFromHoop(x, y int) float64 {
	return math.Hypot(float64(x), float64(y))
}

// IsThreePointLocation reports whether a location lies on or beyond the three-point line.
func IsThreePointLocation(x, y int) bool {
	if float64(y) <= ArcJoinY() {
		return math.Abs(float64(x)) >= CornerThreeX
	}
	return DistanceFromHoop(x, y) >= ArcRadius
}

// InRestrictedArea reports whether a location lies inside the restricted-area arc.
func InRestrictedArea(x, y int) bool {
	return DistanceFromHoop(x, y) <= RestrictedAreaRadius
}

// Side is the half of the floor a location falls on, from the shooter's view facing the hoop.
type Side int

const (
	SideCenter Side = iota
	SideLeft
	SideRight
)

// SideOf classifies a horizontal coordinate; x == 0 is the centerline.
func SideOf(x int) Side {
	switch {
	case x < 0:
		return SideLeft
	case x > 0:
		return SideRight
	default:
		return SideCenter
	}
}
