package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	nats "github.com/nats-io/nats.go"
	"github.com/reactpress/reactpress/internal/accessor"
	"github.com/reactpress/reactpress/internal/model"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/pkg/hashutils"
	"github.com/reactpress/reactpress/pkg/natsinfo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrViewNotFound      = errors.New("view not found")
	ErrUnablePublishView = errors.New("unable publish the view event")
)

// View target kinds, also the subject segment view events publish under.
const (
	VIEW_KIND_ARTICLE = "article"
	VIEW_KIND_PAGE    = "page"
	VIEW_KIND_SITE    = "site"
)

// ClassifyViewURL buckets a visited URL: /article/{id} paths carry the
// article id, anything else with a path is treated as a page, the root
// is a plain site view.
func ClassifyViewURL(rawURL string) (kind string, articleID int64, pagePath string) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return VIEW_KIND_SITE, 0, ""
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return VIEW_KIND_SITE, 0, ""
	}

	if rest, ok := strings.CutPrefix(path, "article/"); ok {
		if id, err := strconv.ParseInt(rest, 10, 64); err == nil {
			return VIEW_KIND_ARTICLE, id, ""
		}
		return VIEW_KIND_SITE, 0, ""
	}

	return VIEW_KIND_PAGE, 0, path
}

type ViewService struct {
	queries *storage.Queries
	js      nats.JetStreamContext
	kv      nats.KeyValue
	log     *zap.Logger
}

type RegisterViewParams struct {
	URL       string
	IP        string
	UserAgent string
}

// RegisterView publishes the view onto the work queue; aggregation into
// storage happens in the view consumer.
func (s *ViewService) RegisterView(ctx context.Context, params RegisterViewParams) error {
	event := natsinfo.ViewEvent{
		URL:       params.URL,
		IP:        params.IP,
		UserAgent: params.UserAgent,
		VisitedAt: time.Now(),
	}

	data, err := event.Marshal()
	if err != nil {
		return errors.Join(ErrUnablePublishView, err)
	}

	kind, _, _ := ClassifyViewURL(params.URL)
	if _, err := s.js.Publish(natsinfo.ViewsStream_NewViewSubject(kind), data); err != nil {
		return errors.Join(ErrUnablePublishView, err)
	}
	return nil
}

// RecordView lands an aggregated event in storage, called by the consumer.
func (s *ViewService) RecordView(ctx context.Context, event natsinfo.ViewEvent) error {
	return s.queries.UpsertView(ctx, storage.UpsertViewParams{
		IP:        event.IP,
		UserAgent: event.UserAgent,
		URL:       event.URL,
		VisitedAt: event.VisitedAt,
	})
}

type GetViewsParams struct {
	Page     int
	PageSize int
}

func (s *ViewService) GetViews(ctx context.Context, params GetViewsParams) ([]model.View, error) {
	rows, err := s.queries.Views(ctx, storage.ViewsParams{
		Page:     int64((params.Page - 1) * params.PageSize),
		PageSize: int64(params.PageSize),
	})
	if err != nil {
		return nil, err
	}
	return accessor.ViewsFromViewRows(rows), nil
}

func (s *ViewService) GetViewsCount(ctx context.Context) (int, error) {
	count, err := s.queries.GetViewCount(ctx)
	return int(count), err
}

// GetViewCountByURL rides the KV cache: the consumer keeps writing, so a
// short TTL keeps reads cheap and close enough to current.
func (s *ViewService) GetViewCountByURL(ctx context.Context, rawURL string) (int64, error) {
	cacheKey := hashutils.GetCacheKey(rawURL)

	val, err := s.kv.Get(cacheKey)
	if err == nil {
		count, err := strconv.ParseInt(string(val.Value()), 10, 64)
		if err == nil {
			return count, nil
		}
	}

	count, err := s.queries.GetViewCountByURL(ctx, rawURL)
	if err != nil {
		return 0, err
	}

	if _, err := s.kv.Put(cacheKey, []byte(fmt.Sprint(count))); err != nil {
		s.log.Warn("unable store view count cache", zap.String("url", rawURL), zap.Error(err))
	}
	return count, nil
}

func (s *ViewService) DeleteView(ctx context.Context, id int64) error {
	return s.queries.DeleteView(ctx, id)
}

type NewViewServiceParams struct {
	fx.In

	DB  *sql.DB
	JS  nats.JetStreamContext
	KV  nats.KeyValue `name:"view_counts"`
	Log *zap.Logger
}

func NewViewService(params NewViewServiceParams) *ViewService {
	return &ViewService{
		queries: storage.New(params.DB),
		js:      params.JS,
		kv:      params.KV,
		log:     params.Log,
	}
}
