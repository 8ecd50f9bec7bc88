package app

import (
	"catalog/domain"
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestCategoryUseCaseCreateAssignsSequentialIDs(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		c, err := uc.Create(ctx, "category")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != want {
			t.Fatalf("expected id %d, got %d", want, c.ID)
		}
	}
}

func TestCategoryUseCaseCreatePropagatesStoreFailure(t *testing.T) {
	repo := newFakeCategoryRepository()
	repo.err = errStoreDown

	_, err := NewCategoryUseCase(repo).Create(context.Background(), "Books")
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestCategoryUseCaseGet(t *testing.T) {
	repo := newFakeCategoryRepository()
	repo.rows[3] = "Music"
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	got, err := uc.Get(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(&domain.Category{ID: 3, Name: "Music"}, got) {
		t.Fatalf("unexpected category %+v", got)
	}

	missing, err := uc.Get(ctx, 4)
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil for missing category, got %+v, %v", missing, err)
	}
}

func TestCategoryUseCaseList(t *testing.T) {
	repo := newFakeCategoryRepository()
	repo.rows[2] = "Music"
	repo.rows[1] = "Books"

	got, err := NewCategoryUseCase(repo).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Category{{ID: 1, Name: "Books"}, {ID: 2, Name: "Music"}}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCategoryUseCaseUpdate(t *testing.T) {
	repo := newFakeCategoryRepository()
	repo.rows[1] = "Books"
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	got, err := uc.Update(ctx, 1, "Novels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Novels" || repo.rows[1] != "Novels" {
		t.Fatalf("category not renamed: %+v, stored %q", got, repo.rows[1])
	}
}

func TestCategoryUseCaseUpdateMissingReturnsEmpty(t *testing.T) {
	repo := newFakeCategoryRepository()

	got, err := NewCategoryUseCase(repo).Update(context.Background(), 9, "Ghost")
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil, got %+v, %v", got, err)
	}
	if repo.updates != 0 {
		t.Fatalf("repository update must not run for a missing category")
	}
}
