// Package tariff loads the pricing grid used to estimate deposit retentions.
package tariff

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vbonduro/movecheck/internal/domain"
	"github.com/vbonduro/movecheck/internal/engine"
)

//go:embed default.yaml
var defaultGrid []byte

// amount decodes a YAML scalar straight into a decimal so prices never pass
// through a float.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", n.Line)
	}
	v, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", n.Line, n.Value, err)
	}
	a.Decimal = v
	return nil
}

type file struct {
	Currency  string `yaml:"currency"`
	Fallbacks struct {
		Item *amount `yaml:"item"`
		Key  *amount `yaml:"key"`
	} `yaml:"fallbacks"`
	Items    map[string]map[string]amount `yaml:"items"`
	Keys     map[string]amount            `yaml:"keys"`
	Schedule []engine.Bracket             `yaml:"schedule"`
}

// Default returns the grid shipped with the binary.
func Default() (engine.Tariffs, error) {
	return Parse(defaultGrid)
}

// Load reads a grid from path, or the shipped grid when path is empty.
func Load(path string) (engine.Tariffs, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Tariffs{}, fmt.Errorf("failed to read tariff file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return engine.Tariffs{}, fmt.Errorf("invalid tariff file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML grid. Category, tier and key names must
// belong to the closed sets; prices must not be negative; the schedule must
// never charge more as the tenancy gets longer.
func Parse(data []byte) (engine.Tariffs, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return engine.Tariffs{}, fmt.Errorf("failed to decode tariffs: %w", err)
	}

	t := engine.Tariffs{
		Items:    make(engine.ItemTariffs, len(f.Items)),
		Keys:     make(engine.KeyTariffs, len(f.Keys)),
		Currency: f.Currency,
	}

	if f.Fallbacks.Item == nil || f.Fallbacks.Key == nil {
		return engine.Tariffs{}, errors.New("fallbacks.item and fallbacks.key are required")
	}
	t.ItemFallback = f.Fallbacks.Item.Decimal
	t.KeyFallback = f.Fallbacks.Key.Decimal
	if t.ItemFallback.IsNegative() || t.KeyFallback.IsNegative() {
		return engine.Tariffs{}, errors.New("fallback prices must not be negative")
	}

	for rawCat, tiers := range f.Items {
		cat, err := domain.ParseCategory(rawCat)
		if err != nil {
			return engine.Tariffs{}, err
		}
		priced := make(map[engine.Tier]decimal.Decimal, len(tiers))
		for rawTier, price := range tiers {
			tier, err := parseTier(rawTier)
			if err != nil {
				return engine.Tariffs{}, fmt.Errorf("category %s: %w", rawCat, err)
			}
			if price.IsNegative() {
				return engine.Tariffs{}, fmt.Errorf("category %s: negative %s price", rawCat, tier)
			}
			priced[tier] = price.Decimal
		}
		t.Items[cat] = priced
	}

	for rawKey, price := range f.Keys {
		kt, err := domain.ParseKeyType(rawKey)
		if err != nil {
			return engine.Tariffs{}, err
		}
		if price.IsNegative() {
			return engine.Tariffs{}, fmt.Errorf("key %s: negative price", rawKey)
		}
		t.Keys[kt] = price.Decimal
	}

	schedule, err := validSchedule(f.Schedule)
	if err != nil {
		return engine.Tariffs{}, err
	}
	t.Schedule = schedule
	return t, nil
}

func parseTier(raw string) (engine.Tier, error) {
	switch engine.Tier(raw) {
	case engine.TierCleaning, engine.TierRepair, engine.TierReplacement:
		return engine.Tier(raw), nil
	}
	switch raw {
	case "nettoyage":
		return engine.TierCleaning, nil
	case "reparation":
		return engine.TierRepair, nil
	case "remplacement":
		return engine.TierReplacement, nil
	}
	return "", fmt.Errorf("unknown intervention tier %q", raw)
}

func validSchedule(in []engine.Bracket) (engine.DepreciationSchedule, error) {
	if len(in) == 0 {
		return engine.StandardSchedule(), nil
	}
	out := make(engine.DepreciationSchedule, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool { return out[i].FromYears < out[j].FromYears })

	for i, b := range out {
		if b.FromYears < 0 {
			return nil, fmt.Errorf("schedule: negative from_years %d", b.FromYears)
		}
		if b.TenantShare < 0 || b.TenantShare > 100 {
			return nil, fmt.Errorf("schedule: tenant_share %d outside 0..100", b.TenantShare)
		}
		if i == 0 {
			continue
		}
		if b.FromYears == out[i-1].FromYears {
			return nil, fmt.Errorf("schedule: duplicate bracket at %d years", b.FromYears)
		}
		if b.TenantShare > out[i-1].TenantShare {
			return nil, fmt.Errorf("schedule: tenant_share rises from %d to %d at %d years", out[i-1].TenantShare, b.TenantShare, b.FromYears)
		}
	}
	return out, nil
}
