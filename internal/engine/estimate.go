package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

type DegradationLine struct {
	Room       string          `json:"room"`
	Item       string          `json:"item"`
	Category   domain.Category `json:"category"`
	Evolution  Evolution       `json:"evolution"`
	EntryGrade *domain.Grade   `json:"entry_grade,omitempty"`
	ExitGrade  domain.Grade    `json:"exit_grade"`
	Notes      string          `json:"notes,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
	Tier       Tier            `json:"tier"`
	GridCost   decimal.Decimal `json:"grid_cost"`
	// Overridden is set when the item's own repair estimate replaced GridCost.
	Overridden     bool            `json:"overridden,omitempty"`
	RawCost        decimal.Decimal `json:"raw_cost"`
	TenantShare    int             `json:"tenant_share"`
	ProratedCost   decimal.Decimal `json:"prorated_cost"`
	TariffFallback bool            `json:"tariff_fallback,omitempty"`
}

// TenancyMonths counts whole calendar months from entry to exit. An exit
// dated before the entry counts as zero.
func TenancyMonths(entry, exit time.Time) int {
	if exit.Before(entry) {
		return 0
	}
	months := (exit.Year()-entry.Year())*12 + int(exit.Month()-entry.Month())
	if exit.Day() < entry.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// TenantShare is the percentage of a repair chargeable to the tenant. A nil
// tenancy means there was no entry inspection, which earns no wear allowance.
func TenantShare(tenancyMonths *int, schedule DepreciationSchedule) int {
	if tenancyMonths == nil {
		return 100
	}
	return schedule.Share(*tenancyMonths / 12)
}

// chargeable reports whether a comparison result produces a cost line: a
// grade drop, or an item with no baseline found worn or worse.
func chargeable(res ComparisonResult) bool {
	switch res.Evolution {
	case EvolutionDegraded:
		return true
	case EvolutionNew:
		return res.Exit != nil && res.Exit.Grade.Rank() <= domain.GradeWorn.Rank()
	default:
		return false
	}
}

// EstimateDegradations prices every chargeable item. tenancyMonths is nil
// when there is no entry snapshot.
func EstimateDegradations(cmp ItemComparison, tariffs Tariffs, tenancyMonths *int) []DegradationLine {
	share := TenantShare(tenancyMonths, tariffs.schedule())
	pct := decimal.NewFromInt(int64(share))

	lines := make([]DegradationLine, 0, cmp.Stats.Degraded)
	for _, res := range cmp.Results() {
		if !chargeable(res) {
			continue
		}

		tier := TierFor(res.Exit.Grade)
		grid, ok := tariffs.ItemCost(res.Category, tier)
		line := DegradationLine{
			Room:           res.Room,
			Item:           res.Item,
			Category:       res.Category,
			Evolution:      res.Evolution,
			ExitGrade:      res.Exit.Grade,
			Notes:          res.Exit.Notes,
			Tags:           res.Exit.Tags,
			Tier:           tier,
			GridCost:       grid,
			RawCost:        grid,
			TenantShare:    share,
			TariffFallback: !ok,
		}
		if res.Entry != nil {
			g := res.Entry.Grade
			line.EntryGrade = &g
		}
		if res.Exit.CostOverride != nil {
			line.RawCost = *res.Exit.CostOverride
			line.Overridden = true
		}
		line.ProratedCost = line.RawCost.Mul(pct).Shift(-2).Round(2)
		lines = append(lines, line)
	}
	return lines
}
