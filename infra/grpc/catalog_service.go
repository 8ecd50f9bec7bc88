package grpc

import (
	"catalog/domain"
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CategoryReader interface {
	Get(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type ItemReader interface {
	Get(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
}

type CatalogService struct {
	categories CategoryReader
	items      ItemReader
}

var _ CatalogServiceServer = (*CatalogService)(nil)

func NewCatalogService(categories CategoryReader, items ItemReader) *CatalogService {
	return &CatalogService{
		categories: categories,
		items:      items,
	}
}

func (s *CatalogService) GetItem(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.NotFound, "item not found")
	}

	item, err := s.items.Get(ctx, req.GetValue())
	if err != nil {
		return nil, internal(err)
	}
	if item == nil {
		return nil, status.Errorf(codes.NotFound, "item %d not found", req.GetValue())
	}
	return structpb.NewStruct(itemFields(item))
}

func (s *CatalogService) ListItems(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, internal(err)
	}

	values := make([]interface{}, 0, len(items))
	for i := range items {
		values = append(values, itemFields(&items[i]))
	}
	return structpb.NewList(values)
}

func (s *CatalogService) GetCategory(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	if req.GetValue() <= 0 {
		return nil, status.Error(codes.NotFound, "category not found")
	}

	category, err := s.categories.Get(ctx, req.GetValue())
	if err != nil {
		return nil, internal(err)
	}
	if category == nil {
		return nil, status.Errorf(codes.NotFound, "category %d not found", req.GetValue())
	}
	return structpb.NewStruct(categoryFields(category))
}

func (s *CatalogService) ListCategories(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, internal(err)
	}

	values := make([]interface{}, 0, len(categories))
	for i := range categories {
		values = append(values, categoryFields(&categories[i]))
	}
	return structpb.NewList(values)
}

func internal(err error) error {
	zap.L().Error("Catalog read failed", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

// Struct numbers are doubles; catalog ids stay well inside 2^53.
func itemFields(item *domain.Item) map[string]interface{} {
	categoryIDs := make([]interface{}, 0, len(item.CategoryIDs))
	for _, id := range item.CategoryIDs {
		categoryIDs = append(categoryIDs, id)
	}
	return map[string]interface{}{
		"item_id":      item.ID,
		"item_name":    item.Name,
		"category_ids": categoryIDs,
	}
}

func categoryFields(category *domain.Category) map[string]interface{} {
	return map[string]interface{}{
		"category_id":   category.ID,
		"category_name": category.Name,
	}
}
