package engine

import (
	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

type KeyShortfallLine struct {
	KeyType  domain.KeyType  `json:"key_type"`
	EntryQty int             `json:"entry_qty"`
	ExitQty  int             `json:"exit_qty"`
	Missing  int             `json:"missing"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	LineCost decimal.Decimal `json:"line_cost"`
	// Fallback is set when the key type had no price and KeyFallback was used.
	Fallback bool `json:"fallback,omitempty"`
}

// KeyDelta is one row of the no-money key comparison.
type KeyDelta struct {
	KeyType    domain.KeyType `json:"key_type"`
	Entry      int            `json:"entry"`
	Exit       int            `json:"exit"`
	Difference int            `json:"difference"`
}

// keyCounts sums quantities per type, keeping first-seen order.
func keyCounts(keys []domain.KeyRecord) (map[domain.KeyType]int, []domain.KeyType) {
	counts := make(map[domain.KeyType]int, len(keys))
	var order []domain.KeyType
	for _, k := range keys {
		if _, seen := counts[k.Type]; !seen {
			order = append(order, k.Type)
		}
		counts[k.Type] += k.Quantity
	}
	return counts, order
}

// ReconcileKeys lists the key types returned short at exit. An absent entry
// snapshot (nil or empty entry keys) yields no lines.
func ReconcileKeys(entry, exit []domain.KeyRecord, tariffs Tariffs) []KeyShortfallLine {
	lines := make([]KeyShortfallLine, 0)
	if len(entry) == 0 {
		return lines
	}

	entryCounts, order := keyCounts(entry)
	exitCounts, _ := keyCounts(exit)

	for _, kt := range order {
		in, out := entryCounts[kt], exitCounts[kt]
		missing := in - out
		if missing <= 0 {
			continue
		}
		unit, ok := tariffs.KeyCost(kt)
		lines = append(lines, KeyShortfallLine{
			KeyType:  kt,
			EntryQty: in,
			ExitQty:  out,
			Missing:  missing,
			UnitCost: unit,
			LineCost: unit.Mul(decimal.NewFromInt(int64(missing))).Round(2),
			Fallback: !ok,
		})
	}
	return lines
}

// CompareKeys reports, for each key type handed back at exit, how the count
// moved against entry.
func CompareKeys(entry, exit []domain.KeyRecord) []KeyDelta {
	entryCounts, _ := keyCounts(entry)
	exitCounts, order := keyCounts(exit)

	deltas := make([]KeyDelta, 0, len(order))
	for _, kt := range order {
		deltas = append(deltas, KeyDelta{
			KeyType:    kt,
			Entry:      entryCounts[kt],
			Exit:       exitCounts[kt],
			Difference: exitCounts[kt] - entryCounts[kt],
		})
	}
	return deltas
}
