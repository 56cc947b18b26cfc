package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/docgen"
	nats "github.com/nats-io/nats.go"
	"github.com/reactpress/reactpress/internal/config"
	handler "github.com/reactpress/reactpress/internal/handler/v1"
	"github.com/reactpress/reactpress/internal/mail"
	"github.com/reactpress/reactpress/internal/service"
	"github.com/reactpress/reactpress/internal/storage"
	"github.com/reactpress/reactpress/internal/storage/migrations"
	"github.com/reactpress/reactpress/internal/worker"
	"github.com/reactpress/reactpress/pkg/httputils"
	"github.com/reactpress/reactpress/pkg/natsinfo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var (
	addr       = flag.String("addr", "", "listen address, overrides SERVER_PORT")
	printRoute = flag.Bool("routes", false, "print the route documentation and exit")
)

type NewRouterParams struct {
	fx.In

	Config   *config.HTTPConfig
	Handlers []httputils.Handler `group:"handlers"`
}

func NewRouter(params NewRouterParams) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{params.Config.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	for _, hand := range params.Handlers {
		hand.OnRouter(router)
	}
	return router
}

type StartServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *config.HTTPConfig
	Router *chi.Mux
	Log    *zap.Logger
}

func StartServer(params StartServerParams) {
	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = params.Config.Addr()
	}

	server := &http.Server{
		Addr:    listenAddr,
		Handler: params.Router,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			params.Log.Info("listening", zap.String("addr", server.Addr))
			go func() {
				if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
					params.Log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: server.Shutdown,
	})
}

type MigrateParams struct {
	fx.In

	DB  *sql.DB
	Log *zap.Logger
}

func Migrate(params MigrateParams) error {
	if err := storage.ApplyMigrations(params.DB, migrations.FS); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	params.Log.Info("migrations applied")
	return nil
}

type NewKeyValueBucketsParams struct {
	fx.In

	JS nats.JetStreamContext
}

type NewKeyValueBucketsResult struct {
	fx.Out

	ArticleCounts nats.KeyValue `name:"article_counts"`
	ViewCounts    nats.KeyValue `name:"view_counts"`
}

func NewKeyValueBuckets(params NewKeyValueBucketsParams) (NewKeyValueBucketsResult, error) {
	articleCounts, err := natsinfo.CreateOrBindKeyValue(params.JS, &natsinfo.ARTICLE_COUNT_KEY_VALUE_CONFIG)
	if err != nil {
		return NewKeyValueBucketsResult{}, err
	}

	viewCounts, err := natsinfo.CreateOrBindKeyValue(params.JS, &natsinfo.VIEW_COUNT_KEY_VALUE_CONFIG)
	if err != nil {
		return NewKeyValueBucketsResult{}, err
	}

	return NewKeyValueBucketsResult{
		ArticleCounts: articleCounts,
		ViewCounts:    viewCounts,
	}, nil
}

func main() {
	flag.Parse()

	if *printRoute {
		router := NewRouter(NewRouterParams{
			Config: &config.HTTPConfig{},
			Handlers: []httputils.Handler{
				handler.NewArticleHandler(handler.NewArticleHandlerParams{}),
				handler.NewCategoryHandler(handler.NewCategoryHandlerParams{}),
				handler.NewTagHandler(handler.NewTagHandlerParams{}),
				handler.NewCommentHandler(handler.NewCommentHandlerParams{}),
				handler.NewPageHandler(handler.NewPageHandlerParams{}),
				handler.NewUserHandler(handler.NewUserHandlerParams{}),
				handler.NewFileHandler(handler.NewFileHandlerParams{}),
				handler.NewSettingHandler(handler.NewSettingHandlerParams{}),
				handler.NewViewHandler(handler.NewViewHandlerParams{}),
				handler.NewSearchHandler(handler.NewSearchHandlerParams{}),
			},
		})
		fmt.Println(docgen.MarkdownRoutesDoc(router, docgen.MarkdownOpts{
			ProjectPath: "github.com/reactpress/reactpress",
			Intro:       "ReactPress API routes.",
		}))
		os.Exit(0)
	}

	fx.New(
		fx.Provide(
			zap.NewProduction,

			config.NewHTTPConfig,
			config.NewDatabaseConfig,
			config.NewFileConfig,
			config.NewSeedConfig,
			config.NewNatsConfig,
			config.NewDatabaseConnection,

			natsinfo.NewNatsConnection,
			NewKeyValueBuckets,

			mail.NewMailer,

			service.NewArticleService,
			service.NewCategoryService,
			service.NewTagService,
			service.NewCommentService,
			service.NewPageService,
			service.NewUserService,
			service.NewFileService,
			service.NewViewService,
			service.NewSearchService,
			service.NewSettingService,

			httputils.AsHandler(handler.NewArticleHandler),
			httputils.AsHandler(handler.NewCategoryHandler),
			httputils.AsHandler(handler.NewTagHandler),
			httputils.AsHandler(handler.NewCommentHandler),
			httputils.AsHandler(handler.NewPageHandler),
			httputils.AsHandler(handler.NewUserHandler),
			httputils.AsHandler(handler.NewFileHandler),
			httputils.AsHandler(handler.NewSettingHandler),
			httputils.AsHandler(handler.NewViewHandler),
			httputils.AsHandler(handler.NewSearchHandler),

			NewRouter,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			Migrate,
			worker.StartViewConsumerWorker,
			StartServer,
		),
	).Run()
}
