package engine

import (
	"strconv"
	"strings"

	"github.com/vbonduro/movecheck/internal/domain"
)

type MeterDelta struct {
	Type  domain.MeterType     `json:"type"`
	Entry *domain.MeterReading `json:"entry"`
	Exit  domain.MeterReading  `json:"exit"`
	// Consumption is only set when both indexes are integers.
	Consumption *int64 `json:"consumption,omitempty"`
}

// CompareMeters pairs each exit meter with the entry reading of the same type.
func CompareMeters(entry, exit []domain.MeterReading) []MeterDelta {
	byType := make(map[domain.MeterType]domain.MeterReading, len(entry))
	for _, m := range entry {
		byType[m.Type] = m
	}

	deltas := make([]MeterDelta, 0, len(exit))
	for _, out := range exit {
		d := MeterDelta{Type: out.Type, Exit: out}
		if in, ok := byType[out.Type]; ok {
			d.Entry = &in
			from, okFrom := parseIndex(in.Index)
			to, okTo := parseIndex(out.Index)
			if okFrom && okTo {
				c := to - from
				d.Consumption = &c
			}
		}
		deltas = append(deltas, d)
	}
	return deltas
}

func parseIndex(s string) (int64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
