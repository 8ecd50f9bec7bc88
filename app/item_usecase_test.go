package app

import (
	"catalog/domain"
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestItemUseCaseCreate(t *testing.T) {
	repo := newFakeItemRepository(1, 2)
	uc := NewItemUseCase(repo)
	ctx := context.Background()

	first, err := uc.Create(ctx, "Record", []int64{1, 99999})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &domain.Item{ID: 1, Name: "Record", CategoryIDs: []int64{1}}
	if !reflect.DeepEqual(want, first) {
		t.Fatalf("expected %+v, got %+v", want, first)
	}

	second, err := uc.Create(ctx, "Tape", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != 2 || len(second.CategoryIDs) != 0 {
		t.Fatalf("unexpected second item %+v", second)
	}
}

func TestItemUseCaseGetAndList(t *testing.T) {
	repo := newFakeItemRepository(1)
	uc := NewItemUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Create(ctx, "A", []int64{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.Get(ctx, 1)
	if err != nil || got == nil || got.Name != "A" {
		t.Fatalf("unexpected get result %+v, %v", got, err)
	}

	missing, err := uc.Get(ctx, 2)
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil, got %+v, %v", missing, err)
	}

	all, err := uc.List(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("unexpected list result %+v, %v", all, err)
	}
}

func TestItemUseCaseUpdate(t *testing.T) {
	repo := newFakeItemRepository(1, 2, 3)
	uc := NewItemUseCase(repo)
	ctx := context.Background()
	if _, err := uc.Create(ctx, "Box", []int64{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.Update(ctx, 1, "Crate", []int64{3, 404})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &domain.Item{ID: 1, Name: "Crate", CategoryIDs: []int64{3}}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestItemUseCaseUpdateMissingReturnsEmpty(t *testing.T) {
	repo := newFakeItemRepository()

	got, err := NewItemUseCase(repo).Update(context.Background(), 5, "Ghost", nil)
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil, got %+v, %v", got, err)
	}
	if repo.updates != 0 {
		t.Fatal("repository update must not run for a missing item")
	}
}

func TestItemUseCaseUpdateNameKeepsCategories(t *testing.T) {
	repo := newFakeItemRepository(1, 2)
	uc := NewItemUseCase(repo)
	ctx := context.Background()
	if _, err := uc.Create(ctx, "Box", []int64{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := uc.UpdateName(ctx, 1, "Crate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &domain.Item{ID: 1, Name: "Crate", CategoryIDs: []int64{1, 2}}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestItemUseCaseUpdateNameMissingFails(t *testing.T) {
	repo := newFakeItemRepository()

	got, err := NewItemUseCase(repo).UpdateName(context.Background(), 5, "Ghost")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil item, got %+v", got)
	}
}

func TestItemUseCaseDelete(t *testing.T) {
	repo := newFakeItemRepository()
	uc := NewItemUseCase(repo)
	ctx := context.Background()
	if _, err := uc.Create(ctx, "Box", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestItemUseCasePropagatesStoreFailure(t *testing.T) {
	repo := newFakeItemRepository()
	repo.err = errStoreDown
	uc := NewItemUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Create(ctx, "Box", nil); !errors.Is(err, errStoreDown) {
		t.Fatalf("create: expected store error, got %v", err)
	}
	if _, err := uc.Update(ctx, 1, "Box", nil); !errors.Is(err, errStoreDown) {
		t.Fatalf("update: expected store error, got %v", err)
	}
	if _, err := uc.UpdateName(ctx, 1, "Box"); !errors.Is(err, errStoreDown) {
		t.Fatalf("update name: expected store error, got %v", err)
	}
	if err := uc.Delete(ctx, 1); !errors.Is(err, errStoreDown) {
		t.Fatalf("delete: expected store error, got %v", err)
	}
}
