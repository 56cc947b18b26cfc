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
	ErrPageNotFound   = errors.New("page not found")
	ErrPagePathExists = errors.New("page path already exists")
)

type PageService struct {
	queries *storage.Queries
}

type GetPagesParams struct {
	Status   string
	Page     int
	PageSize int
}

func (s *PageService) GetPages(ctx context.Context, params GetPagesParams) ([]model.Page, error) {
	rows, err := s.queries.Pages(ctx, storage.PagesParams{
		Status:   params.Status,
		Page:     int64((params.Page - 1) * params.PageSize),
		PageSize: int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return accessor.PagesFromPageRows(rows), nil
}

func (s *PageService) GetPagesCount(ctx context.Context, status string) (int, error) {
	count, err := s.queries.GetPageCount(ctx, status)
	return int(count), err
}

func (s *PageService) GetPageByID(ctx context.Context, id int64) (model.Page, error) {
	row, err := s.queries.GetPageByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilPage, ErrPageNotFound
	}
	if err != nil {
		return model.NilPage, err
	}
	return accessor.PageFromPageRow(row), nil
}

func (s *PageService) GetPageByPath(ctx context.Context, path string) (model.Page, error) {
	row, err := s.queries.GetPageByPath(ctx, path)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilPage, ErrPageNotFound
	}
	if err != nil {
		return model.NilPage, err
	}
	return accessor.PageFromPageRow(row), nil
}

type NewPageParams struct {
	Name        string
	Path        string
	Cover       string
	Content     string
	Status      string
	Order       int32
	PublishedAt sql.NullTime
}

func (s *PageService) NewPage(ctx context.Context, params NewPageParams) (int64, error) {
	if _, err := s.queries.GetPageByPath(ctx, params.Path); err == nil {
		return 0, ErrPagePathExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	return s.queries.NewPage(ctx, storage.NewPageParams{
		Name:        params.Name,
		Path:        params.Path,
		Cover:       params.Cover,
		Content:     params.Content,
		Status:      params.Status,
		Order:       params.Order,
		PublishedAt: params.PublishedAt,
	})
}

type UpdatePageParams struct {
	ID          int64
	Name        string
	Path        string
	Cover       string
	Content     string
	Status      string
	Order       int32
	PublishedAt sql.NullTime
}

func (s *PageService) UpdatePage(ctx context.Context, params UpdatePageParams) error {
	existing, err := s.queries.GetPageByPath(ctx, params.Path)
	if err == nil && existing.ID != params.ID {
		return ErrPagePathExists
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return s.queries.UpdatePage(ctx, storage.UpdatePageParams{
		Name:        params.Name,
		Path:        params.Path,
		Cover:       params.Cover,
		Content:     params.Content,
		Status:      params.Status,
		Order:       params.Order,
		PublishedAt: params.PublishedAt,
		ID:          params.ID,
	})
}

func (s *PageService) DeletePage(ctx context.Context, id int64) error {
	if _, err := s.GetPageByID(ctx, id); err != nil {
		return err
	}
	return s.queries.DeletePage(ctx, id)
}

// IncrementPageViews is called by the view consumer.
func (s *PageService) IncrementPageViews(ctx context.Context, id int64, delta int64) error {
	return s.queries.IncrementPageViews(ctx, storage.IncrementPageViewsParams{
		Delta: delta,
		ID:    id,
	})
}

type NewPageServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewPageService(params NewPageServiceParams) *PageService {
	return &PageService{
		queries: storage.New(params.DB),
	}
}
