package worker

import (
	"context"
	"errors"

	nats "github.com/nats-io/nats.go"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/pkg/natsinfo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// viewConsumerWorker drains the VIEWS work queue: every event lands in the
// views table, article and page events also move the counter on their row.
type viewConsumerWorker struct {
	js             nats.JetStreamContext
	viewService    *service.ViewService
	articleService *service.ArticleService
	pageService    *service.PageService
	log            *zap.Logger
}

func (w *viewConsumerWorker) handler(ctx context.Context) func(msg *nats.Msg) {
	return func(msg *nats.Msg) {
		var event natsinfo.ViewEvent

		if err := event.Unmarshal(msg.Data); err != nil {
			// Poison message, retrying it never helps.
			w.log.Warn("discard malformed view event", zap.String("subject", msg.Subject), zap.Error(err))
			_ = msg.Ack()
			return
		}

		if err := w.viewService.RecordView(ctx, event); err != nil {
			// Left unacked for redelivery.
			w.log.Error("unable record view", zap.String("url", event.URL), zap.Error(err))
			return
		}

		kind, articleID, pagePath := service.ClassifyViewURL(event.URL)
		switch kind {
		case service.VIEW_KIND_ARTICLE:
			if err := w.articleService.IncrementArticleViews(ctx, articleID, 1); err != nil {
				w.log.Error("unable increment article views", zap.Int64("article_id", articleID), zap.Error(err))
				return
			}
		case service.VIEW_KIND_PAGE:
			page, err := w.pageService.GetPageByPath(ctx, pagePath)
			if err == nil {
				err = w.pageService.IncrementPageViews(ctx, page.ID, 1)
			}
			// A path without a page row is still a valid site view.
			if err != nil && !errors.Is(err, service.ErrPageNotFound) {
				w.log.Error("unable increment page views", zap.String("path", pagePath), zap.Error(err))
				return
			}
		}

		_ = msg.Ack()
	}
}

func (w *viewConsumerWorker) start(ctx context.Context) {
	if _, err := natsinfo.CreateOrUpdateStream(w.js, natsinfo.VIEWS_STREAM_CONFIG); err != nil {
		w.log.Fatal("unable set-up nats stream", zap.String("stream", natsinfo.VIEWS_STREAM_CONFIG.Name), zap.Error(err))
	}

	queueGroup := "view-consumer"
	stream, subject, subOpts, config := natsinfo.ViewsStream_NewViewConsumerConfig(queueGroup)

	if _, err := natsinfo.CreateOrUpdateConsumer(w.js, stream, config); err != nil {
		w.log.Fatal("unable set-up nats consumer", zap.String("consumer", queueGroup), zap.Error(err))
	}

	if _, err := w.js.QueueSubscribe(subject, queueGroup, w.handler(ctx), subOpts...); err != nil {
		w.log.Fatal("unable start nats consumer", zap.String("consumer", queueGroup), zap.Error(err))
	}

	<-ctx.Done()
}

type StartViewConsumerWorkerParams struct {
	fx.In

	JS             nats.JetStreamContext
	ViewService    *service.ViewService
	ArticleService *service.ArticleService
	PageService    *service.PageService
	Log            *zap.Logger
}

func StartViewConsumerWorker(params StartViewConsumerWorkerParams) {
	worker := &viewConsumerWorker{
		js:             params.JS,
		viewService:    params.ViewService,
		articleService: params.ArticleService,
		pageService:    params.PageService,
		log:            params.Log,
	}
	go worker.start(context.Background())
}
