package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/movecheck/internal/domain"
)

func item(room, name string, cat domain.Category, g domain.Grade) domain.ItemRecord {
	return domain.ItemRecord{Room: room, Item: name, Category: cat, Grade: g}
}

func TestIndexItems_LastWriteWins(t *testing.T) {
	ix := IndexItems([]domain.ItemRecord{
		item("Kitchen", "Sink", domain.CategoryPlumbing, domain.GradeGood),
		item("Kitchen", "Tap", domain.CategoryPlumbing, domain.GradeGood),
		item("Kitchen", "Sink", domain.CategoryPlumbing, domain.GradeBad),
	})

	assert.Equal(t, 2, ix.Len())
	got, ok := ix.Get(domain.ItemKey{Room: "Kitchen", Item: "Sink", Category: domain.CategoryPlumbing})
	require.True(t, ok)
	assert.Equal(t, domain.GradeBad, got.Grade)
	assert.Equal(t, []domain.ItemKey{{Room: "Kitchen", Item: "Sink", Category: domain.CategoryPlumbing}}, ix.Duplicates())
	assert.Equal(t, "Sink", ix.Keys()[0].Item, "first-seen position is kept")
}

func TestIndexItems_CategoryIsPartOfIdentity(t *testing.T) {
	ix := IndexItems([]domain.ItemRecord{
		item("Bath", "Cabinet", domain.CategoryFurniture, domain.GradeGood),
		item("Bath", "Cabinet", domain.CategoryEquipment, domain.GradeGood),
	})
	assert.Equal(t, 2, ix.Len())
	assert.Empty(t, ix.Duplicates())
}

func TestIndexItems_SeparatorInNamesKeepsItemsApart(t *testing.T) {
	entry := IndexItems([]domain.ItemRecord{
		item("A|B", "C", domain.CategoryWall, domain.GradeGood),
		item("A", "B|C", domain.CategoryWall, domain.GradeGood),
	})
	require.Equal(t, 2, entry.Len())
	assert.Empty(t, entry.Duplicates())

	exit := IndexItems([]domain.ItemRecord{
		item("A|B", "C", domain.CategoryWall, domain.GradeBad),
		item("A", "B|C", domain.CategoryWall, domain.GradeGood),
	})

	cmp := CompareItems(entry, exit)

	assert.Equal(t, Stats{Total: 2, Degraded: 1, Unchanged: 1}, cmp.Stats)
	got := map[string]Evolution{}
	for _, res := range cmp.Results() {
		got[res.Room+"/"+res.Item] = res.Evolution
	}
	assert.Equal(t, map[string]Evolution{
		"A|B/C": EvolutionDegraded,
		"A/B|C": EvolutionUnchanged,
	}, got)
}

func TestNilIndex(t *testing.T) {
	var ix *Index
	_, ok := ix.Get(domain.ItemKey{Room: "x"})
	assert.False(t, ok)
	assert.Zero(t, ix.Len())
	assert.Nil(t, ix.Keys())
	assert.Nil(t, ix.Duplicates())
}

func TestCompareItems_Evolutions(t *testing.T) {
	entry := IndexItems([]domain.ItemRecord{
		item("Living Room", "Wall", domain.CategoryWall, domain.GradeGood),
		item("Living Room", "Floor", domain.CategoryFloor, domain.GradeWorn),
		item("Living Room", "Ceiling", domain.CategoryCeiling, domain.GradeGood),
		item("Living Room", "Curtain Rail", domain.CategoryEquipment, domain.GradeGood),
		item("Cellar", "Door", domain.CategoryJoinery, domain.GradeWorn),
	})
	exit := IndexItems([]domain.ItemRecord{
		item("Living Room", "Wall", domain.CategoryWall, domain.GradeBad),
		item("Living Room", "Floor", domain.CategoryFloor, domain.GradeNew),
		item("Living Room", "Ceiling", domain.CategoryCeiling, domain.GradeGood),
		item("Living Room", "Lamp", domain.CategoryElectric, domain.GradeBad),
	})

	cmp := CompareItems(entry, exit)

	assert.Equal(t, Stats{Total: 4, Improved: 1, Degraded: 1, Unchanged: 1}, cmp.Stats)

	require.Len(t, cmp.Rooms, 2)
	assert.Equal(t, "Living Room", cmp.Rooms[0].Room)
	assert.Equal(t, "Cellar", cmp.Rooms[1].Room)

	living := cmp.Rooms[0].Items
	require.Len(t, living, 5)
	assert.Equal(t, EvolutionDegraded, living[0].Evolution)
	assert.Equal(t, EvolutionImproved, living[1].Evolution)
	assert.Equal(t, EvolutionUnchanged, living[2].Evolution)
	assert.Equal(t, EvolutionNew, living[3].Evolution)
	assert.Nil(t, living[3].Entry)
	assert.Equal(t, EvolutionRemoved, living[4].Evolution)
	assert.Equal(t, "Curtain Rail", living[4].Item)
	assert.Nil(t, living[4].Exit)

	cellar := cmp.Rooms[1].Items
	require.Len(t, cellar, 1)
	assert.Equal(t, EvolutionRemoved, cellar[0].Evolution)
	assert.Equal(t, domain.GradeWorn, cellar[0].Entry.Grade)

	degraded := cmp.Degraded()
	require.Len(t, degraded, 1)
	assert.Equal(t, "Wall", degraded[0].Item)
	assert.Len(t, cmp.Results(), 6)
}

func TestCompareItems_RenamedRoomIsRemovedPlusNew(t *testing.T) {
	entry := IndexItems([]domain.ItemRecord{item("Bedroom 1", "Floor", domain.CategoryFloor, domain.GradeGood)})
	exit := IndexItems([]domain.ItemRecord{item("Master Bedroom", "Floor", domain.CategoryFloor, domain.GradeGood)})

	cmp := CompareItems(entry, exit)

	require.Len(t, cmp.Rooms, 2)
	assert.Equal(t, EvolutionNew, cmp.Rooms[0].Items[0].Evolution)
	assert.Equal(t, EvolutionRemoved, cmp.Rooms[1].Items[0].Evolution)
	assert.Equal(t, 1, cmp.Stats.Total)
}

func TestCompareItems_NewItemsDoNotCountAsDegraded(t *testing.T) {
	exit := IndexItems([]domain.ItemRecord{
		item("Kitchen", "Oven", domain.CategoryAppliance, domain.GradeOutOfService),
		item("Kitchen", "Hob", domain.CategoryAppliance, domain.GradeGood),
	})

	cmp := CompareItems(nil, exit)

	assert.Equal(t, Stats{Total: 2}, cmp.Stats)
	for _, res := range cmp.Results() {
		assert.Equal(t, EvolutionNew, res.Evolution)
	}
}

func TestEstimateDegradations_NewItemThreshold(t *testing.T) {
	tariffs := testTariffs()
	for _, g := range domain.Grades() {
		t.Run(string(g), func(t *testing.T) {
			exit := IndexItems([]domain.ItemRecord{item("Kitchen", "Fridge", domain.CategoryAppliance, g)})
			lines := EstimateDegradations(CompareItems(nil, exit), tariffs, nil)
			if g.Rank() > domain.GradeWorn.Rank() {
				assert.Empty(t, lines)
			} else {
				assert.Len(t, lines, 1)
			}
		})
	}
}

func TestEstimateDegradations_ImprovedAndRemovedAreFree(t *testing.T) {
	entry := IndexItems([]domain.ItemRecord{
		item("Hall", "Floor", domain.CategoryFloor, domain.GradeBad),
		item("Hall", "Mirror", domain.CategoryFurniture, domain.GradeGood),
	})
	exit := IndexItems([]domain.ItemRecord{item("Hall", "Floor", domain.CategoryFloor, domain.GradeGood)})
	months := 12

	lines := EstimateDegradations(CompareItems(entry, exit), testTariffs(), &months)

	assert.Empty(t, lines)
}
