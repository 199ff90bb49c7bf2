package analytics

import (
	"sort"

	"github.com/preston-bernstein/nba-shotchart-service/internal/domain/shots"
)

// ZoneRanking lists the hottest and coldest qualified zones.
type ZoneRanking struct {
	Status         Sufficiency `json:"status"`
	Message        string      `json:"message,omitempty"`
	TotalZones     int         `json:"totalZones"`
	QualifiedZones int         `json:"qualifiedZones"`
	Best           []ZoneStat  `json:"best"`
	Worst          []ZoneStat  `json:"worst"`
}

// RankZones picks the three best and worst zones among those with more than MinZoneAttempts.
// FG% ties go to the zone with more attempts in both lists.
func RankZones(in []shots.Shot) ZoneRanking {
	return rankZoneStats(ComputeZoneEfficiency(in))
}

func rankZoneStats(stats []ZoneStat) ZoneRanking {
	qualified := make([]ZoneStat, 0, len(stats))
	for _, z := range stats {
		if z.Attempts > MinZoneAttempts {
			qualified = append(qualified, z)
		}
	}

	ranking := ZoneRanking{
		Status:         StatusOK,
		TotalZones:     len(stats),
		QualifiedZones: len(qualified),
		Best:           []ZoneStat{},
		Worst:          []ZoneStat{},
	}
	if len(qualified) == 0 {
		ranking.Status = StatusInsufficient
		ranking.Message = "Not enough attempts per zone to rank hot and cold spots."
		return ranking
	}

	best := append([]ZoneStat(nil), qualified...)
	sort.SliceStable(best, func(i, j int) bool {
		if best[i].FGPct != best[j].FGPct {
			return best[i].FGPct > best[j].FGPct
		}
		return best[i].Attempts > best[j].Attempts
	})

	worst := append([]ZoneStat(nil), qualified...)
	sort.SliceStable(worst, func(i, j int) bool {
		if worst[i].FGPct != worst[j].FGPct {
			return worst[i].FGPct < worst[j].FGPct
		}
		return worst[i].Attempts > worst[j].Attempts
	})

	ranking.Best = head(best, rankingSize)
	ranking.Worst = head(worst, rankingSize)
	return ranking
}

func head(stats []ZoneStat, n int) []ZoneStat {
	if len(stats) < n {
		n = len(stats)
	}
	return stats[:n]
}
