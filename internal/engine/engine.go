// Package engine compares entry and exit inspections of a rental property and
// turns the degradations and missing keys it finds into a security deposit
// retention estimate.
//
// Every function here is a pure computation over its arguments: no I/O, no
// logging, no shared state. Callers validate input and report data-quality
// anomalies themselves.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

// Comparison is the money-free view of entry against exit.
type Comparison struct {
	Rooms        []RoomComparison   `json:"rooms"`
	Stats        Stats              `json:"stats"`
	Degradations []ComparisonResult `json:"degradations"`
	Keys         []KeyDelta         `json:"keys"`
	Meters       []MeterDelta       `json:"meters"`
}

// Compare diffs entry (nil when absent) against exit.
func Compare(entry *domain.Snapshot, exit domain.Snapshot) Comparison {
	items := CompareItems(indexOf(entry), IndexItems(exit.Items))

	var entryKeys []domain.KeyRecord
	var entryMeters []domain.MeterReading
	if entry != nil {
		entryKeys = entry.Keys
		entryMeters = entry.Meters
	}

	return Comparison{
		Rooms:        items.Rooms,
		Stats:        items.Stats,
		Degradations: items.Degraded(),
		Keys:         CompareKeys(entryKeys, exit.Keys),
		Meters:       CompareMeters(entryMeters, exit.Meters),
	}
}

type EstimateInput struct {
	Entry   *domain.Snapshot
	Exit    domain.Snapshot
	Tariffs Tariffs
	Deposit decimal.Decimal
}

// Estimate runs the full pipeline: index, compare, price degradations,
// reconcile keys and aggregate against the deposit.
func Estimate(in EstimateInput) EstimateReport {
	items := CompareItems(indexOf(in.Entry), IndexItems(in.Exit.Items))

	var tenancy *int
	var entryDate *time.Time
	var entryKeys []domain.KeyRecord
	if in.Entry != nil {
		months := TenancyMonths(in.Entry.Date, in.Exit.Date)
		tenancy = &months
		d := in.Entry.Date
		entryDate = &d
		entryKeys = in.Entry.Keys
	}

	degradations := EstimateDegradations(items, in.Tariffs, tenancy)
	keys := ReconcileKeys(entryKeys, in.Exit.Keys, in.Tariffs)

	report := Aggregate(degradations, keys, in.Deposit)
	report.Comparison = items
	report.EntryDate = entryDate
	report.ExitDate = in.Exit.Date
	report.TenancyMonths = tenancy
	report.Schedule = in.Tariffs.schedule()
	report.TenantShare = TenantShare(tenancy, report.Schedule)
	report.Currency = in.Tariffs.Currency
	return report
}

// indexOf returns nil for an absent snapshot so comparisons see no baseline.
func indexOf(s *domain.Snapshot) *Index {
	if s == nil {
		return nil
	}
	return IndexItems(s.Items)
}
