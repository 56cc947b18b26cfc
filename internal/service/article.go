package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	nats "github.com/nats-io/nats.go"
	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/pkg/sqlutils"
	"github.com/reactpress/reactpress/pkg/txutils"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type ArticleService struct {
	db      *sql.DB
	queries *storage.Queries
	kv      nats.KeyValue
	log     *zap.Logger
}

var (
	ErrUnableCreateArticle = errors.New("unable create the article")
	ErrUnableUpdateArticle = errors.New("unable update the article")
	ErrArticleNotFound     = errors.New("article not found")
	ErrArticlesNotFound    = errors.New("articles not found")
	ErrArticlesCount       = errors.New("unable get articles count")
	ErrTagNotFound         = errors.New("tag not found")
	ErrWrongPassword       = errors.New("wrong article password")
)

type ArticleSorting string

const (
	ARTICLE_SORTING_NEWEST ArticleSorting = "newest"
	ARTICLE_SORTING_OLDEST ArticleSorting = "oldest"
	DEFAULT_PAGE           int            = 1
	DEFAULT_PAGE_SIZE      int            = 12
)

type GetArticlesParams struct {
	Status        string
	CategoryValue string
	TagValue      string
	Keyword       string
	Sorting       ArticleSorting
	Page          int
	PageSize      int
}

func (s *ArticleService) GetArticles(ctx context.Context, params GetArticlesParams) ([]model.Article, error) {
	rows, err := s.queries.Articles(ctx, storage.ArticlesParams{
		Status:         params.Status,
		CategoryValue:  params.CategoryValue,
		TagValue:       params.TagValue,
		Keyword:        params.Keyword,
		ArticleSorting: string(params.Sorting),
		Page:           int64((params.Page - 1) * params.PageSize),
		PageSize:       int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrArticlesNotFound
	}

	return accessor.ArticlesFromArticleRows(rows)
}

type GetArticlesCountParams struct {
	Status        string
	CategoryValue string
	TagValue      string
	Keyword       string
}

// GetArticlesCount serves the paginator. Counts hit on every list request,
// so they ride a KV bucket with a short TTL before touching the database.
func (s *ArticleService) GetArticlesCount(ctx context.Context, cacheKey string, params GetArticlesCountParams) (int, error) {
	val, err := s.kv.Get(cacheKey)
	if err == nil {
		count, err := strconv.Atoi(string(val.Value()))
		if err == nil {
			return count, nil
		}
	}

	count, err := s.queries.GetArticleCount(ctx, storage.GetArticleCountParams{
		Status:        params.Status,
		CategoryValue: params.CategoryValue,
		TagValue:      params.TagValue,
		Keyword:       params.Keyword,
	})
	if err != nil {
		return -1, errors.Join(ErrArticlesCount, err)
	}

	if _, err = s.kv.Put(cacheKey, []byte(fmt.Sprint(count))); err != nil {
		s.log.Warn("unable store articles count cache", zap.String("key", cacheKey), zap.Error(err))
	}

	return int(count), nil
}

func (s *ArticleService) GetArticleByID(ctx context.Context, id int64) (model.Article, error) {
	row, err := s.queries.GetArticleByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	if err != nil {
		return model.NilArticle, err
	}

	return accessor.ArticleFromArticleRow(row)
}

type NewArticleParams struct {
	Title         string
	Summary       string
	Content       string
	Cover         string
	Status        string
	Password      string
	IsRecommended bool
	IsCommentable bool
	CategoryID    int64
	PublishedAt   sql.NullTime
	TagValues     []string
}

func (s *ArticleService) NewArticle(ctx context.Context, params NewArticleParams) (id int64, err error) {
	password, err := hashAccessPassword(params.Password)
	if err != nil {
		return 0, err
	}

	err = txutils.WithTransaction(ctx, s.db, func(queries *storage.Queries) error {
		articleID, err := queries.NewArticle(ctx, storage.NewArticleParams{
			Title:         params.Title,
			Summary:       params.Summary,
			Content:       params.Content,
			Cover:         params.Cover,
			Status:        params.Status,
			Password:      password,
			IsRecommended: params.IsRecommended,
			IsCommentable: params.IsCommentable,
			CategoryID:    sqlutils.GetNullableSqlInt64(params.CategoryID),
			PublishedAt:   params.PublishedAt,
		})
		if err != nil {
			s.log.Error("unable create the article", zap.Error(err))
			return ErrUnableCreateArticle
		}

		if err := s.attachTags(ctx, queries, articleID, params.TagValues); err != nil {
			return err
		}

		id = articleID
		return nil
	})
	return id, err
}

type UpdateArticleParams struct {
	ID            int64
	Title         string
	Summary       string
	Content       string
	Cover         string
	Status        string
	Password      string
	KeepPassword  bool
	IsRecommended bool
	IsCommentable bool
	CategoryID    int64
	PublishedAt   sql.NullTime
	TagValues     []string
}

func (s *ArticleService) UpdateArticle(ctx context.Context, params UpdateArticleParams) error {
	existing, err := s.queries.GetArticlePassword(ctx, params.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrArticleNotFound
	}
	if err != nil {
		return err
	}

	password := existing
	if !params.KeepPassword {
		password, err = hashAccessPassword(params.Password)
		if err != nil {
			return err
		}
	}

	return txutils.WithTransaction(ctx, s.db, func(queries *storage.Queries) error {
		if err := queries.UpdateArticle(ctx, storage.UpdateArticleParams{
			Title:         params.Title,
			Summary:       params.Summary,
			Content:       params.Content,
			Cover:         params.Cover,
			Status:        params.Status,
			Password:      password,
			IsRecommended: params.IsRecommended,
			IsCommentable: params.IsCommentable,
			CategoryID:    sqlutils.GetNullableSqlInt64(params.CategoryID),
			PublishedAt:   params.PublishedAt,
			ID:            params.ID,
		}); err != nil {
			s.log.Error("unable update the article", zap.Int64("id", params.ID), zap.Error(err))
			return ErrUnableUpdateArticle
		}

		if err := queries.DetachArticleTags(ctx, params.ID); err != nil {
			return ErrUnableUpdateArticle
		}
		return s.attachTags(ctx, queries, params.ID, params.TagValues)
	})
}

func (s *ArticleService) attachTags(ctx context.Context, queries *storage.Queries, articleID int64, tagValues []string) error {
	for _, value := range tagValues {
		tagID, err := queries.GetTagIDByValue(ctx, value)
		if errors.Is(err, sql.ErrNoRows) {
			return errors.Join(ErrTagNotFound, fmt.Errorf("tag value: %s", value))
		}
		if err != nil {
			return err
		}

		if err := queries.AttachArticleTag(ctx, storage.AttachArticleTagParams{
			ArticleID: articleID,
			TagID:     tagID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) error {
	if _, err := s.GetArticleByID(ctx, id); err != nil {
		return err
	}
	return s.queries.DeleteArticle(ctx, id)
}

// CheckArticlePassword verifies an access password and, on success,
// returns the article with its content unlocked.
func (s *ArticleService) CheckArticlePassword(ctx context.Context, id int64, password string) (model.Article, error) {
	row, err := s.queries.GetArticleByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NilArticle, ErrArticleNotFound
	}
	if err != nil {
		return model.NilArticle, err
	}

	if !row.Password.Valid {
		return accessor.UnlockedArticleFromArticleRow(row)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.Password.String), []byte(password)); err != nil {
		return model.NilArticle, ErrWrongPassword
	}

	return accessor.UnlockedArticleFromArticleRow(row)
}

// RecommendedArticles returns related articles for articleID, or the
// globally recommended ones when articleID is zero.
func (s *ArticleService) RecommendedArticles(ctx context.Context, articleID int64, limit int64) ([]model.Article, error) {
	var (
		rows []storage.ArticleRow
		err  error
	)

	if articleID == 0 {
		rows, err = s.queries.RecommendedArticles(ctx, limit)
	} else {
		rows, err = s.queries.RelatedArticles(ctx, storage.RelatedArticlesParams{
			ArticleID: articleID,
			Limit:     limit,
		})
	}
	if err != nil {
		return nil, err
	}

	return accessor.ArticlesFromArticleRows(rows)
}

func (s *ArticleService) Archives(ctx context.Context) ([]model.ArchiveEntry, error) {
	rows, err := s.queries.ArticleArchives(ctx)
	if err != nil {
		return nil, err
	}
	return accessor.ArchivesFromArchiveRows(rows), nil
}

func (s *ArticleService) LikeArticle(ctx context.Context, id int64, delta int64) error {
	return s.queries.IncrementArticleLikes(ctx, storage.IncrementArticleLikesParams{
		Delta: delta,
		ID:    id,
	})
}

// IncrementArticleViews is called by the view consumer when aggregated
// view events land in storage.
func (s *ArticleService) IncrementArticleViews(ctx context.Context, id int64, delta int64) error {
	return s.queries.IncrementArticleViews(ctx, storage.IncrementArticleViewsParams{
		Delta: delta,
		ID:    id,
	})
}

func hashAccessPassword(password string) (sql.NullString, error) {
	if password == "" {
		return sql.NullString{}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(hash), Valid: true}, nil
}

type NewArticleServiceParams struct {
	fx.In

	DB  *sql.DB
	KV  nats.KeyValue `name:"article_counts"`
	Log *zap.Logger
}

func NewArticleService(params NewArticleServiceParams) *ArticleService {
	return &ArticleService{
		db:      params.DB,
		queries: storage.New(params.DB),
		kv:      params.KV,
		log:     params.Log,
	}
}
