package nbastats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// statsResponse is the common envelope: named tables of headers and positional rows.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// table finds a result set by name.
func (r statsResponse) table(name string) (resultSet, error) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return resultSet{}, fmt.Errorf("nbastats: result set %q missing", name)
}

// rows wraps each positional row with header-name lookup.
func (rs resultSet) rows() []row {
	idx := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		idx[strings.ToUpper(h)] = i
	}
	out := make([]row, 0, len(rs.RowSet))
	for _, values := range rs.RowSet {
		out = append(out, row{idx: idx, values: values})
	}
	return out
}

type row struct {
	idx    map[string]int
	values []any
}

func (r row) value(col string) any {
	i, ok := r.idx[strings.ToUpper(col)]
	if !ok || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

func (r row) str(col string) string {
	switch v := r.value(col).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r row) float(col string) float64 {
	switch v := r.value(col).(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (r row) int(col string) int {
	return int(math.Round(r.float(col)))
}

// active reads a roster status stored as 1/0 or "Active"/"Inactive".
func (r row) active(col string) bool {
	switch v := r.value(col).(type) {
	case float64:
		return v == 1
	case string:
		return strings.EqualFold(v, "active") || v == "1"
	default:
		return false
	}
}
