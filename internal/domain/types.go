package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role tags a snapshot as the move-in or move-out inspection.
type Role string

const (
	RoleEntry Role = "entry"
	RoleExit  Role = "exit"
)

// ItemKey is the identity of an item inside one snapshot.
type ItemKey struct {
	Room     string
	Item     string
	Category Category
}

// ItemRecord is one inspected fixture or element of a room.
type ItemRecord struct {
	Room     string   `json:"room"`
	Item     string   `json:"item"`
	Category Category `json:"category"`
	Grade    Grade    `json:"grade"`
	Notes    string   `json:"notes,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	// CostOverride replaces the grid price for this item when set.
	CostOverride *decimal.Decimal `json:"cost_override,omitempty"`
}

func (r ItemRecord) Key() ItemKey {
	return ItemKey{Room: r.Room, Item: r.Item, Category: r.Category}
}

type KeyRecord struct {
	Type     KeyType `json:"type"`
	Quantity int     `json:"quantity"`
}

type MeterReading struct {
	Type   MeterType `json:"type"`
	Serial string    `json:"serial,omitempty"`
	Index  string    `json:"index,omitempty"`
}

// Snapshot is a property condition assessment at one point in time. The
// engine treats it as read-only.
type Snapshot struct {
	Role   Role           `json:"role"`
	Date   time.Time      `json:"date"`
	Items  []ItemRecord   `json:"items"`
	Keys   []KeyRecord    `json:"keys,omitempty"`
	Meters []MeterReading `json:"meters,omitempty"`
}
