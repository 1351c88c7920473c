package engine

import (
	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/domain"
)

// Evolution classifies how one item changed between entry and exit.
type Evolution string

const (
	EvolutionNew       Evolution = "new"
	EvolutionImproved  Evolution = "improved"
	EvolutionDegraded  Evolution = "degraded"
	EvolutionUnchanged Evolution = "unchanged"
	EvolutionRemoved   Evolution = "removed"
)

// Side is one snapshot's view of an item.
type Side struct {
	Grade        domain.Grade     `json:"grade"`
	Notes        string           `json:"notes,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	CostOverride *decimal.Decimal `json:"cost_override,omitempty"`
}

func sideOf(r domain.ItemRecord) *Side {
	return &Side{Grade: r.Grade, Notes: r.Notes, Tags: r.Tags, CostOverride: r.CostOverride}
}

type ComparisonResult struct {
	Room      string          `json:"room"`
	Item      string          `json:"item"`
	Category  domain.Category `json:"category"`
	Entry     *Side           `json:"entry"`
	Exit      *Side           `json:"exit"`
	Evolution Evolution       `json:"evolution"`
}

type RoomComparison struct {
	Room  string             `json:"room"`
	Items []ComparisonResult `json:"items"`
}

// Stats counts exit items. New and removed items are visible per room but
// have no bucket of their own; Total includes new items.
type Stats struct {
	Total     int `json:"total"`
	Improved  int `json:"improved"`
	Degraded  int `json:"degraded"`
	Unchanged int `json:"unchanged"`
}

type ItemComparison struct {
	Rooms []RoomComparison `json:"rooms"`
	Stats Stats            `json:"stats"`
}

// CompareItems diffs two indexed snapshots. entry may be nil when no move-in
// inspection exists, in which case every exit item is new.
func CompareItems(entry, exit *Index) ItemComparison {
	out := ItemComparison{Rooms: make([]RoomComparison, 0)}
	roomPos := make(map[string]int)

	add := func(res ComparisonResult) {
		pos, ok := roomPos[res.Room]
		if !ok {
			pos = len(out.Rooms)
			roomPos[res.Room] = pos
			out.Rooms = append(out.Rooms, RoomComparison{Room: res.Room})
		}
		out.Rooms[pos].Items = append(out.Rooms[pos].Items, res)
	}

	matched := make(map[domain.ItemKey]bool, entry.Len())
	for _, key := range exit.Keys() {
		exitItem, _ := exit.Get(key)
		res := ComparisonResult{
			Room:      key.Room,
			Item:      key.Item,
			Category:  key.Category,
			Exit:      sideOf(exitItem),
			Evolution: EvolutionNew,
		}

		if entryItem, ok := entry.Get(key); ok {
			matched[key] = true
			res.Entry = sideOf(entryItem)
			switch {
			case exitItem.Grade.Rank() > entryItem.Grade.Rank():
				res.Evolution = EvolutionImproved
				out.Stats.Improved++
			case exitItem.Grade.Rank() < entryItem.Grade.Rank():
				res.Evolution = EvolutionDegraded
				out.Stats.Degraded++
			default:
				res.Evolution = EvolutionUnchanged
				out.Stats.Unchanged++
			}
		}

		out.Stats.Total++
		add(res)
	}

	if entry == nil || exit == nil {
		return out
	}
	for _, key := range entry.Keys() {
		if matched[key] {
			continue
		}
		entryItem, _ := entry.Get(key)
		add(ComparisonResult{
			Room:      key.Room,
			Item:      key.Item,
			Category:  key.Category,
			Entry:     sideOf(entryItem),
			Evolution: EvolutionRemoved,
		})
	}
	return out
}

// Results flattens the comparison in room order.
func (c ItemComparison) Results() []ComparisonResult {
	var all []ComparisonResult
	for _, room := range c.Rooms {
		all = append(all, room.Items...)
	}
	return all
}

// Degraded returns the items whose grade dropped.
func (c ItemComparison) Degraded() []ComparisonResult {
	out := make([]ComparisonResult, 0, c.Stats.Degraded)
	for _, res := range c.Results() {
		if res.Evolution == EvolutionDegraded {
			out = append(out, res)
		}
	}
	return out
}
