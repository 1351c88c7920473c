package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

// Tier is the kind of intervention a degraded item needs.
type Tier string

const (
	TierCleaning    Tier = "cleaning"
	TierRepair      Tier = "repair"
	TierReplacement Tier = "replacement"
)

// TierFor derives the intervention from the exit grade alone.
func TierFor(g domain.Grade) Tier {
	switch g {
	case domain.GradeOutOfService:
		return TierReplacement
	case domain.GradeBad:
		return TierRepair
	default:
		return TierCleaning
	}
}

type ItemTariffs map[domain.Category]map[Tier]decimal.Decimal

type KeyTariffs map[domain.KeyType]decimal.Decimal

// Bracket charges TenantShare percent of a repair once the tenancy has lasted
// at least FromYears whole years.
type Bracket struct {
	FromYears   int `json:"from_years" yaml:"from_years"`
	TenantShare int `json:"tenant_share" yaml:"tenant_share"`
}

type DepreciationSchedule []Bracket

// StandardSchedule is the usual wear grid: full charge under two years, then
// twenty points less every two years down to nothing from ten years.
func StandardSchedule() DepreciationSchedule {
	return DepreciationSchedule{
		{FromYears: 0, TenantShare: 100},
		{FromYears: 2, TenantShare: 80},
		{FromYears: 4, TenantShare: 60},
		{FromYears: 6, TenantShare: 40},
		{FromYears: 8, TenantShare: 20},
		{FromYears: 10, TenantShare: 0},
	}
}

// Share returns the tenant percentage for a tenancy of years whole years.
// Durations below the first bracket are charged in full.
func (s DepreciationSchedule) Share(years int) int {
	sorted := make(DepreciationSchedule, len(s))
	copy(sorted, s)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].FromYears < sorted[j].FromYears })

	share := 100
	for _, b := range sorted {
		if years < b.FromYears {
			break
		}
		share = b.TenantShare
	}
	return clampPercent(share)
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Tariffs is the pricing configuration handed to the estimator. Nothing in
// this package carries built-in prices.
type Tariffs struct {
	Items        ItemTariffs          `json:"items"`
	Keys         KeyTariffs           `json:"keys"`
	ItemFallback decimal.Decimal      `json:"item_fallback"`
	KeyFallback  decimal.Decimal      `json:"key_fallback"`
	Schedule     DepreciationSchedule `json:"schedule"`
	Currency     string               `json:"currency,omitempty"`
}

// ItemCost looks up the grid price; ok is false when the fallback was used.
func (t Tariffs) ItemCost(c domain.Category, tier Tier) (cost decimal.Decimal, ok bool) {
	if tiers, found := t.Items[c]; found {
		if cost, found := tiers[tier]; found {
			return cost, true
		}
	}
	return t.ItemFallback, false
}

func (t Tariffs) KeyCost(k domain.KeyType) (cost decimal.Decimal, ok bool) {
	if cost, found := t.Keys[k]; found {
		return cost, true
	}
	return t.KeyFallback, false
}

func (t Tariffs) schedule() DepreciationSchedule {
	if len(t.Schedule) == 0 {
		return StandardSchedule()
	}
	return t.Schedule
}
