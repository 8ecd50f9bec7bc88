package app

import (
	"catalog/domain"
	"context"
	"errors"
	"fmt"
	"sort"
)

var errStoreDown = errors.New("store unavailable")

type fakeCategoryRepository struct {
	rows    map[int64]string
	updates int
	err     error
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{rows: map[int64]string{}}
}

func (f *fakeCategoryRepository) Save(_ context.Context, c *domain.Category) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[c.ID]; ok {
		return fmt.Errorf("duplicate category %d", c.ID)
	}
	f.rows[c.ID] = c.Name
	return nil
}

func (f *fakeCategoryRepository) ListAll(context.Context) ([]domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Category, 0, len(f.rows))
	for id, name := range f.rows {
		out = append(out, domain.Category{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepository) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	name, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return &domain.Category{ID: id, Name: name}, nil
}

func (f *fakeCategoryRepository) NextIdentifier(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var highest int64
	for id := range f.rows {
		if id > highest {
			highest = id
		}
	}
	return highest + 1, nil
}

func (f *fakeCategoryRepository) Update(_ context.Context, c *domain.Category) error {
	if f.err != nil {
		return f.err
	}
	f.updates++
	if _, ok := f.rows[c.ID]; ok {
		f.rows[c.ID] = c.Name
	}
	return nil
}

// fakeItemRepository mirrors the store: unknown category ids are dropped on write.
type fakeItemRepository struct {
	categories map[int64]bool
	rows       map[int64]domain.Item
	updates    int
	err        error
}

func newFakeItemRepository(categoryIDs ...int64) *fakeItemRepository {
	f := &fakeItemRepository{categories: map[int64]bool{}, rows: map[int64]domain.Item{}}
	for _, id := range categoryIDs {
		f.categories[id] = true
	}
	return f
}

func (f *fakeItemRepository) resolve(item *domain.Item) []int64 {
	out := make([]int64, 0)
	for _, id := range item.UniqueCategoryIDs() {
		if f.categories[id] {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f *fakeItemRepository) Save(_ context.Context, item *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[item.ID]; ok {
		return fmt.Errorf("duplicate item %d", item.ID)
	}
	item.CategoryIDs = f.resolve(item)
	f.rows[item.ID] = domain.Item{ID: item.ID, Name: item.Name, CategoryIDs: item.CategoryIDs}
	return nil
}

func (f *fakeItemRepository) ListAll(context.Context) ([]domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Item, 0, len(f.rows))
	for _, item := range f.rows {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeItemRepository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	item, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	item.CategoryIDs = append([]int64{}, item.CategoryIDs...)
	return &item, nil
}

func (f *fakeItemRepository) NextIdentifier(context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var highest int64
	for id := range f.rows {
		if id > highest {
			highest = id
		}
	}
	return highest + 1, nil
}

func (f *fakeItemRepository) Update(_ context.Context, item *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	f.updates++
	if _, ok := f.rows[item.ID]; !ok {
		return nil
	}
	item.CategoryIDs = f.resolve(item)
	f.rows[item.ID] = domain.Item{ID: item.ID, Name: item.Name, CategoryIDs: item.CategoryIDs}
	return nil
}

func (f *fakeItemRepository) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.rows[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.rows, id)
	return nil
}
