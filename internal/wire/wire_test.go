package wire

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/movecheck/internal/domain"
)

func TestSnapshot_ToDomainNormalises(t *testing.T) {
	override := decimal.NewFromInt(250)
	dto := &Snapshot{
		Date: "2024-03-15",
		Items: []Item{{
			Room: " Kitchen ", Item: "Oven", Category: "Electromenager", Grade: "Hors service",
			Tags: []string{"burn"}, CostOverride: &override,
		}},
		Keys:   []Key{{Type: "boite_lettres", Quantity: 2}},
		Meters: []Meter{{Type: "gaz", Index: "42"}},
	}

	snap := dto.ToDomain(domain.RoleExit)
	require.NotNil(t, snap)
	assert.Equal(t, domain.RoleExit, snap.Role)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), snap.Date)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Kitchen", snap.Items[0].Room)
	assert.Equal(t, domain.CategoryAppliance, snap.Items[0].Category)
	assert.Equal(t, domain.GradeOutOfService, snap.Items[0].Grade)
	assert.True(t, override.Equal(*snap.Items[0].CostOverride))
	assert.Equal(t, []domain.KeyRecord{{Type: domain.KeyMailbox, Quantity: 2}}, snap.Keys)
	assert.Equal(t, domain.MeterGas, snap.Meters[0].Type)

	var missing *Snapshot
	assert.Nil(t, missing.ToDomain(domain.RoleEntry))
}

func TestSnapshot_ExplicitRoleWins(t *testing.T) {
	dto := &Snapshot{Role: "sortie", Date: "2024-03-15T10:00:00Z"}
	snap := dto.ToDomain(domain.RoleEntry)
	assert.Equal(t, domain.RoleExit, snap.Role)
	assert.Equal(t, 10, snap.Date.Hour())
}

func TestNewValidator_RejectsUnknownVocabulary(t *testing.T) {
	v := NewValidator()
	err := v.Struct(&Snapshot{
		Role:   "visit",
		Date:   "2024-03-15",
		Items:  []Item{{Room: "R", Item: "I", Category: "wall", Grade: "shiny"}},
		Keys:   []Key{{Type: "skeleton", Quantity: 1}},
		Meters: []Meter{{Type: "steam"}},
	})
	require.Error(t, err)
	assert.Equal(t, map[string]string{
		"role":           "role",
		"items[0].grade": "grade",
		"keys[0].type":   "key_type",
		"meters[0].type": "meter_type",
	}, Fields(err))
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(assert.AnError))
}

func TestDecodeSnapshot(t *testing.T) {
	v := NewValidator()

	snap, err := DecodeSnapshot(v, []byte(`{
		"date": "2021-09-01",
		"items": [{"room": "Salon", "item": "Mur", "category": "mur", "grade": "mauvais"}],
		"keys": [{"type": "porte_entree", "quantity": 2}]
	}`), domain.RoleEntry)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEntry, snap.Role)
	assert.Equal(t, time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC), snap.Date)
	assert.Equal(t, domain.CategoryWall, snap.Items[0].Category)
	assert.Equal(t, domain.GradeBad, snap.Items[0].Grade)
	assert.Equal(t, domain.KeyEntryDoor, snap.Keys[0].Type)

	_, err = DecodeSnapshot(v, []byte(`{"date": "soon"}`), domain.RoleExit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date (inspection_date)")

	_, err = DecodeSnapshot(v, []byte(`{`), domain.RoleExit)
	assert.Error(t, err)
}
