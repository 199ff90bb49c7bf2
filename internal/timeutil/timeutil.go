package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// GameDateLayout is the upstream game log date format, e.g. "OCT 22, 2024" once title-cased.
const GameDateLayout = "Jan 2, 2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseGameDate accepts the upstream "OCT 22, 2024" form as well as YYYY-MM-DD and RFC 3339 timestamps.
func ParseGameDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timeutil: empty game date")
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	if len(value) > 3 {
		value = value[:1] + strings.ToLower(value[1:3]) + value[3:]
	}
	t, err := time.Parse(GameDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse game date %q: %w", value, err)
	}
	return t, nil
}

// IsSeasonID reports whether value looks like "2024-25" with consecutive years.
func IsSeasonID(value string) bool {
	if len(value) != 7 || value[4] != '-' {
		return false
	}
	start, err := strconv.Atoi(value[:4])
	if err != nil {
		return false
	}
	end, err := strconv.Atoi(value[5:])
	if err != nil {
		return false
	}
	return (start+1)%100 == end
}

// SeasonStartYear returns the first calendar year of a season id.
func SeasonStartYear(season string) (int, error) {
	if !IsSeasonID(season) {
		return 0, fmt.Errorf("timeutil: invalid season %q", season)
	}
	return strconv.Atoi(season[:4])
}
