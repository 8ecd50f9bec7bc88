package domain

type Item struct {
	ID          int64   `db:"item_id" json:"item_id"`
	Name        string  `db:"item_name" json:"item_name"`
	CategoryIDs []int64 `db:"-" json:"category_ids"`
}

// NewItem builds a transient item. A nil categoryIDs is the same as an empty one.
func NewItem(id int64, name string, categoryIDs []int64) (*Item, error) {
	if id < 0 {
		return nil, ErrNegativeID
	}

	return &Item{ID: id, Name: name, CategoryIDs: categoryIDs}, nil
}

// UniqueCategoryIDs returns the item's category ids without duplicates, first occurrence wins.
func (i *Item) UniqueCategoryIDs() []int64 {
	seen := make(map[int64]struct{}, len(i.CategoryIDs))
	ids := make([]int64, 0, len(i.CategoryIDs))
	for _, id := range i.CategoryIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
