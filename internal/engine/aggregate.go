package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

type Subtotals struct {
	Degradations decimal.Decimal                     `json:"degradations"`
	Keys         decimal.Decimal                     `json:"keys"`
	ByCategory   map[domain.Category]decimal.Decimal `json:"by_category"`
}

type Summary struct {
	DegradationCount int `json:"degradation_count"`
	MissingKeys      int `json:"missing_keys"`
}

// EstimateReport is the deposit retention estimate for one exit inspection.
type EstimateReport struct {
	EntryDate     *time.Time           `json:"entry_date,omitempty"`
	ExitDate      time.Time            `json:"exit_date"`
	TenancyMonths *int                 `json:"tenancy_months,omitempty"`
	TenantShare   int                  `json:"tenant_share"`
	Schedule      DepreciationSchedule `json:"schedule"`
	Currency      string               `json:"currency,omitempty"`

	Comparison    ItemComparison     `json:"comparison"`
	Degradations  []DegradationLine  `json:"degradations"`
	KeyShortfalls []KeyShortfallLine `json:"key_shortfalls"`

	Subtotals  Subtotals       `json:"subtotals"`
	Summary    Summary         `json:"summary"`
	Total      decimal.Decimal `json:"total"`
	Deposit    decimal.Decimal `json:"deposit"`
	Returnable decimal.Decimal `json:"returnable"`
}

// Aggregate sums the cost lines against the deposit. The total is the exact
// sum of the already rounded lines and the returnable amount never drops
// below zero.
func Aggregate(degradations []DegradationLine, keys []KeyShortfallLine, deposit decimal.Decimal) EstimateReport {
	report := EstimateReport{
		Degradations:  degradations,
		KeyShortfalls: keys,
		Deposit:       deposit,
		Subtotals: Subtotals{
			Degradations: decimal.Zero,
			Keys:         decimal.Zero,
			ByCategory:   make(map[domain.Category]decimal.Decimal),
		},
	}
	if report.Degradations == nil {
		report.Degradations = make([]DegradationLine, 0)
	}
	if report.KeyShortfalls == nil {
		report.KeyShortfalls = make([]KeyShortfallLine, 0)
	}

	for _, line := range degradations {
		report.Subtotals.Degradations = report.Subtotals.Degradations.Add(line.ProratedCost)
		sub, ok := report.Subtotals.ByCategory[line.Category]
		if !ok {
			sub = decimal.Zero
		}
		report.Subtotals.ByCategory[line.Category] = sub.Add(line.ProratedCost)
	}
	for _, line := range keys {
		report.Subtotals.Keys = report.Subtotals.Keys.Add(line.LineCost)
		report.Summary.MissingKeys += line.Missing
	}
	report.Summary.DegradationCount = len(degradations)

	report.Total = report.Subtotals.Degradations.Add(report.Subtotals.Keys)
	report.Returnable = decimal.Max(decimal.Zero, deposit.Sub(report.Total))
	return report
}
