package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"go.uber.org/fx"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryValueExists = errors.New("category value already exists")
)

type CategoryService struct {
	queries *storage.Queries
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.queries.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return accessor.CategoriesFromCategoryRows(rows), nil
}

type NewCategoryParams struct {
	Label string
	Value string
}

func (s *CategoryService) NewCategory(ctx context.Context, params NewCategoryParams) (int64, error) {
	if _, err := s.queries.GetCategoryIDByValue(ctx, params.Value); err == nil {
		return 0, ErrCategoryValueExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	return s.queries.NewCategory(ctx, storage.NewCategoryParams{
		Label: params.Label,
		Value: params.Value,
	})
}

type UpdateCategoryParams struct {
	ID    int64
	Label string
	Value string
}

func (s *CategoryService) UpdateCategory(ctx context.Context, params UpdateCategoryParams) error {
	existingID, err := s.queries.GetCategoryIDByValue(ctx, params.Value)
	if err == nil && existingID != params.ID {
		return ErrCategoryValueExists
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return s.queries.UpdateCategory(ctx, storage.UpdateCategoryParams{
		Label: params.Label,
		Value: params.Value,
		ID:    params.ID,
	})
}

// DeleteCategory leaves the category's articles uncategorized through the
// ON DELETE SET NULL constraint.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.queries.DeleteCategory(ctx, id)
}

type NewCategoryServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewCategoryService(params NewCategoryServiceParams) *CategoryService {
	return &CategoryService{
		queries: storage.New(params.DB),
	}
}
