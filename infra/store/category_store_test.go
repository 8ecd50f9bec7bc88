package store

import (
	"catalog/domain"
	"context"
	"testing"
)

func saveCategory(t *testing.T, s *CategoryStore, name string) *domain.Category {
	t.Helper()
	ctx := context.Background()

	id, err := s.NextIdentifier(ctx)
	assertNoError(t, err)

	c := &domain.Category{ID: id, Name: name}
	assertNoError(t, s.Save(ctx, c))
	return c
}

func TestCategoryNextIdentifierEmptyTable(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))

	id, err := s.NextIdentifier(context.Background())
	assertNoError(t, err)
	assertEqual(t, int64(1), id)
}

func TestCategoryNextIdentifierIsMonotonic(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))

	for want := int64(1); want <= 4; want++ {
		c := saveCategory(t, s, "category")
		assertEqual(t, want, c.ID)
	}
}

func TestCategoryNextIdentifierFollowsMax(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))
	ctx := context.Background()

	assertNoError(t, s.Save(ctx, &domain.Category{ID: 1, Name: "one"}))
	assertNoError(t, s.Save(ctx, &domain.Category{ID: 5, Name: "five"}))

	id, err := s.NextIdentifier(ctx)
	assertNoError(t, err)
	assertEqual(t, int64(6), id)
}

func TestCategorySaveDuplicateIDFails(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))
	ctx := context.Background()

	assertNoError(t, s.Save(ctx, &domain.Category{ID: 1, Name: "first"}))
	if err := s.Save(ctx, &domain.Category{ID: 1, Name: "second"}); err == nil {
		t.Fatal("expected primary key conflict")
	}
}

func TestCategoryGetByID(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))
	ctx := context.Background()
	saved := saveCategory(t, s, "Books")

	t.Run("existing", func(t *testing.T) {
		got, err := s.GetByID(ctx, saved.ID)
		assertNoError(t, err)
		assertEqual(t, &domain.Category{ID: saved.ID, Name: "Books"}, got)
	})

	t.Run("missing", func(t *testing.T) {
		got, err := s.GetByID(ctx, 999)
		assertNoError(t, err)
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestCategoryListAll(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))
	ctx := context.Background()

	empty, err := s.ListAll(ctx)
	assertNoError(t, err)
	assertEqual(t, []domain.Category{}, empty)

	saveCategory(t, s, "Books")
	saveCategory(t, s, "Music")

	all, err := s.ListAll(ctx)
	assertNoError(t, err)
	assertEqual(t, []domain.Category{{ID: 1, Name: "Books"}, {ID: 2, Name: "Music"}}, all)
}

func TestCategoryUpdate(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))
	ctx := context.Background()
	saved := saveCategory(t, s, "Books")

	saved.Name = "Novels"
	assertNoError(t, s.Update(ctx, saved))

	got, err := s.GetByID(ctx, saved.ID)
	assertNoError(t, err)
	assertEqual(t, "Novels", got.Name)
}

func TestCategoryUpdateMissingIsNoop(t *testing.T) {
	s := NewCategoryStore(newTestDB(t))
	ctx := context.Background()
	saveCategory(t, s, "Books")

	assertNoError(t, s.Update(ctx, &domain.Category{ID: 42, Name: "Ghost"}))

	all, err := s.ListAll(ctx)
	assertNoError(t, err)
	assertEqual(t, []domain.Category{{ID: 1, Name: "Books"}}, all)
}
