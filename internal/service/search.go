package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrEmptyKeyword = errors.New("search keyword is empty")

type SearchService struct {
	queries        *storage.Queries
	articleService *ArticleService
	log            *zap.Logger
}

type SearchArticlesParams struct {
	Keyword  string
	Page     int
	PageSize int
}

// SearchArticles looks up published articles matching the keyword and
// records the keyword for the search statistics.
func (s *SearchService) SearchArticles(ctx context.Context, params SearchArticlesParams) ([]model.Article, error) {
	keyword := strings.TrimSpace(params.Keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}

	if err := s.queries.UpsertSearchRecord(ctx, keyword); err != nil {
		s.log.Warn("unable record search keyword", zap.String("keyword", keyword), zap.Error(err))
	}

	return s.articleService.GetArticles(ctx, GetArticlesParams{
		Status:   model.ARTICLE_STATUS_PUBLISH,
		Keyword:  keyword,
		Sorting:  ARTICLE_SORTING_NEWEST,
		Page:     params.Page,
		PageSize: params.PageSize,
	})
}

type GetSearchRecordsParams struct {
	Page     int
	PageSize int
}

func (s *SearchService) GetSearchRecords(ctx context.Context, params GetSearchRecordsParams) ([]model.SearchRecord, error) {
	rows, err := s.queries.SearchRecords(ctx, storage.SearchRecordsParams{
		Page:     int64((params.Page - 1) * params.PageSize),
		PageSize: int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return accessor.SearchRecordsFromRows(rows), nil
}

func (s *SearchService) GetSearchRecordsCount(ctx context.Context) (int, error) {
	count, err := s.queries.GetSearchRecordCount(ctx)
	return int(count), err
}

func (s *SearchService) DeleteSearchRecord(ctx context.Context, id int64) error {
	return s.queries.DeleteSearchRecord(ctx, id)
}

type NewSearchServiceParams struct {
	fx.In

	DB             *sql.DB
	ArticleService *ArticleService
	Log            *zap.Logger
}

func NewSearchService(params NewSearchServiceParams) *SearchService {
	return &SearchService{
		queries:        storage.New(params.DB),
		articleService: params.ArticleService,
		log:            params.Log,
	}
}
