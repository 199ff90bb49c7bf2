package analytics

import (
	"sort"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// ZoneStat is the shooting line for one (basic, area) zone.
type ZoneStat struct {
	ZoneName  string  `json:"zoneName"`
	ZoneBasic string  `json:"zoneBasic"`
	ZoneArea  string  `json:"zoneArea"`
	Attempts  int     `json:"attempts"`
	Makes     int     `json:"makes"`
	FGPct     float64 `json:"fgPct"`
}

type zoneAccumulator struct {
	key      shots.ZoneKey
	attempts int
	makes    int
}

// ComputeZoneEfficiency groups shots by zone key in a single pass.
// Rows come back in order of each zone's first appearance in the input.
func ComputeZoneEfficiency(in []shots.Shot) []ZoneStat {
	if len(in) == 0 {
		return []ZoneStat{}
	}

	index := make(map[shots.ZoneKey]int)
	accs := make([]zoneAccumulator, 0)
	for _, s := range in {
		key := s.Zone()
		i, ok := index[key]
		if !ok {
			i = len(accs)
			index[key] = i
			accs = append(accs, zoneAccumulator{key: key})
		}
		accs[i].attempts++
		if s.Made {
			accs[i].makes++
		}
	}

	out := make([]ZoneStat, 0, len(accs))
	for _, acc := range accs {
		out = append(out, ZoneStat{
			ZoneName:  acc.key.Name(),
			ZoneBasic: acc.key.Basic,
			ZoneArea:  acc.key.Area,
			Attempts:  acc.attempts,
			Makes:     acc.makes,
			FGPct:     ratio(acc.makes, acc.attempts),
		})
	}
	return out
}

// SortByEfficiency returns a copy ordered for display: FG% desc, attempts desc, name asc.
func SortByEfficiency(stats []ZoneStat) []ZoneStat {
	out := make([]ZoneStat, len(stats))
	copy(out, stats)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FGPct != out[j].FGPct {
			return out[i].FGPct > out[j].FGPct
		}
		if out[i].Attempts != out[j].Attempts {
			return out[i].Attempts > out[j].Attempts
		}
		return out[i].ZoneName < out[j].ZoneName
	})
	return out
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
