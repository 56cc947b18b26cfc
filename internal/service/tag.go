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

var ErrTagValueExists = errors.New("tag value already exists")

type TagService struct {
	queries *storage.Queries
}

func (s *TagService) GetTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := s.queries.Tags(ctx)
	if err != nil {
		return nil, err
	}
	return accessor.TagsFromTagRows(rows), nil
}

type NewTagParams struct {
	Label string
	Value string
}

func (s *TagService) NewTag(ctx context.Context, params NewTagParams) (int64, error) {
	if _, err := s.queries.GetTagIDByValue(ctx, params.Value); err == nil {
		return 0, ErrTagValueExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	return s.queries.NewTag(ctx, storage.NewTagParams{
		Label: params.Label,
		Value: params.Value,
	})
}

type UpdateTagParams struct {
	ID    int64
	Label string
	Value string
}

func (s *TagService) UpdateTag(ctx context.Context, params UpdateTagParams) error {
	existingID, err := s.queries.GetTagIDByValue(ctx, params.Value)
	if err == nil && existingID != params.ID {
		return ErrTagValueExists
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return s.queries.UpdateTag(ctx, storage.UpdateTagParams{
		Label: params.Label,
		Value: params.Value,
		ID:    params.ID,
	})
}

// DeleteTag drops the tag's article links through ON DELETE CASCADE.
func (s *TagService) DeleteTag(ctx context.Context, id int64) error {
	return s.queries.DeleteTag(ctx, id)
}

type NewTagServiceParams struct {
	fx.In

	DB *sql.DB
}

func NewTagService(params NewTagServiceParams) *TagService {
	return &TagService{
		queries: storage.New(params.DB),
	}
}
