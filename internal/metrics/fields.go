package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrKind     = "kind"
	AttrResult   = "result"
	AttrSection  = "section"
)

// Cache lookup results.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)
