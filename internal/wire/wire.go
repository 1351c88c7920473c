// Package wire holds the JSON form of an inspection snapshot shared by the
// HTTP API and the command line, together with the validator that checks it.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

type Item struct {
	Room         string           `json:"room" validate:"required,max=200"`
	Item         string           `json:"item" validate:"required,max=200"`
	Category     string           `json:"category" validate:"required,category"`
	Grade        string           `json:"grade" validate:"required,grade"`
	Notes        string           `json:"notes" validate:"max=2000"`
	Tags         []string         `json:"tags" validate:"max=20,dive,max=50"`
	CostOverride *decimal.Decimal `json:"cost_override" validate:"omitempty,gte=0"`
}

type Key struct {
	Type     string `json:"type" validate:"required,key_type"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type Meter struct {
	Type   string `json:"type" validate:"required,meter_type"`
	Serial string `json:"serial" validate:"max=100"`
	Index  string `json:"index" validate:"max=50"`
}

// Snapshot is the wire form of an inspection. Role may be left out, in
// which case the slot the snapshot was sent in decides it.
type Snapshot struct {
	Role   string  `json:"role" validate:"omitempty,role"`
	Date   string  `json:"date" validate:"required,inspection_date"`
	Items  []Item  `json:"items" validate:"dive"`
	Keys   []Key   `json:"keys" validate:"dive"`
	Meters []Meter `json:"meters" validate:"dive"`
}

// ToDomain converts an already validated snapshot. A nil receiver stays nil.
func (s *Snapshot) ToDomain(slot domain.Role) *domain.Snapshot {
	if s == nil {
		return nil
	}
	snap := &domain.Snapshot{Role: slot}
	if s.Role != "" {
		snap.Role, _ = domain.ParseRole(s.Role)
	}
	snap.Date, _ = ParseDate(s.Date)

	snap.Items = make([]domain.ItemRecord, 0, len(s.Items))
	for _, it := range s.Items {
		cat, _ := domain.ParseCategory(it.Category)
		grade, _ := domain.ParseGrade(it.Grade)
		snap.Items = append(snap.Items, domain.ItemRecord{
			Room:         strings.TrimSpace(it.Room),
			Item:         strings.TrimSpace(it.Item),
			Category:     cat,
			Grade:        grade,
			Notes:        it.Notes,
			Tags:         it.Tags,
			CostOverride: it.CostOverride,
		})
	}
	for _, k := range s.Keys {
		kt, _ := domain.ParseKeyType(k.Type)
		snap.Keys = append(snap.Keys, domain.KeyRecord{Type: kt, Quantity: k.Quantity})
	}
	for _, m := range s.Meters {
		mt, _ := domain.ParseMeterType(m.Type)
		snap.Meters = append(snap.Meters, domain.MeterReading{Type: mt, Serial: m.Serial, Index: m.Index})
	}
	return snap
}

// ParseDate accepts a bare date or an RFC 3339 timestamp.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// DecodeSnapshot parses and validates one snapshot document, then converts
// it for the given slot.
func DecodeSnapshot(v *validator.Validate, data []byte, slot domain.Role) (*domain.Snapshot, error) {
	var dto Snapshot
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := v.Struct(&dto); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %s", describe(err))
	}
	return dto.ToDomain(slot), nil
}

// NewValidator returns a validator that reports fields by their JSON names
// and knows the inspection vocabulary.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	parsers := map[string]func(string) error{
		"grade":      func(s string) error { _, err := domain.ParseGrade(s); return err },
		"category":   func(s string) error { _, err := domain.ParseCategory(s); return err },
		"key_type":   func(s string) error { _, err := domain.ParseKeyType(s); return err },
		"meter_type": func(s string) error { _, err := domain.ParseMeterType(s); return err },
		"role":       func(s string) error { _, err := domain.ParseRole(s); return err },
		"inspection_date": func(s string) error {
			_, err := ParseDate(s)
			return err
		},
	}
	for tag, parse := range parsers {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return parse(fl.Field().String()) == nil
		})
		if err != nil {
			panic(fmt.Sprintf("wire: register %q validation: %v", tag, err))
		}
	}
	return v
}

// Fields maps each failing field path to the rule it broke.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		fields[path] = fe.Tag()
	}
	return fields
}

func describe(err error) string {
	fields := Fields(err)
	if fields == nil {
		return err.Error()
	}
	parts := make([]string, 0, len(fields))
	for path, rule := range fields {
		parts = append(parts, path+" ("+rule+")")
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
