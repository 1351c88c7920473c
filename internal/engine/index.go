package engine

import "github.com/vbonduro/movecheck/internal/domain"

// Index is a snapshot's items keyed on (room, item, category). Iteration
// follows the order in which each identity was first seen.
type Index struct {
	items      map[domain.ItemKey]domain.ItemRecord
	order      []domain.ItemKey
	duplicates []domain.ItemKey
}

// IndexItems builds an Index. A repeated identity overwrites the earlier
// record (last write wins) and is remembered in Duplicates so callers can
// report it.
func IndexItems(items []domain.ItemRecord) *Index {
	ix := &Index{
		items: make(map[domain.ItemKey]domain.ItemRecord, len(items)),
		order: make([]domain.ItemKey, 0, len(items)),
	}
	for _, item := range items {
		key := item.Key()
		if _, seen := ix.items[key]; seen {
			ix.duplicates = append(ix.duplicates, key)
		} else {
			ix.order = append(ix.order, key)
		}
		ix.items[key] = item
	}
	return ix
}

// Get is safe on a nil Index, which stands for an absent snapshot.
func (ix *Index) Get(key domain.ItemKey) (domain.ItemRecord, bool) {
	if ix == nil {
		return domain.ItemRecord{}, false
	}
	item, ok := ix.items[key]
	return item, ok
}

func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.order)
}

func (ix *Index) Keys() []domain.ItemKey {
	if ix == nil {
		return nil
	}
	return ix.order
}

func (ix *Index) Duplicates() []domain.ItemKey {
	if ix == nil {
		return nil
	}
	return ix.duplicates
}
