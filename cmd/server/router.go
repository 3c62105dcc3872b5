package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/workboard-api/internal/api"
	apiMiddleware "github.com/phrazzld/workboard-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.Metrics)

	app.registerDBStats()

	boardHandler := api.NewBoardHandler(app.boardService, app.logger)
	listHandler := api.NewListHandler(app.listService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.commentService, app.logger)
	commentHandler := api.NewCommentHandler(app.commentService, app.logger)
	activityHandler := api.NewActivityHandler(app.activityService, app.logger)
	healthHandler := api.NewHealthHandler(app.ping, app.logger)

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/boards", func(r chi.Router) {
		r.Post("/", boardHandler.CreateBoard)
		r.Get("/", boardHandler.ListBoards)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", boardHandler.GetBoard)
			r.Put("/", boardHandler.UpdateBoard)
			r.Patch("/", boardHandler.UpdateBoard)
			r.Delete("/", boardHandler.DeleteBoard)
			r.Get("/full", boardHandler.GetBoardFull)
			r.Post("/archive", boardHandler.ArchiveBoard)
			r.Get("/lists", listHandler.ListsByBoard)
			r.Get("/activities", activityHandler.BoardActivities)
		})
	})

	r.Route("/lists", func(r chi.Router) {
		r.Post("/", listHandler.CreateList)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", listHandler.GetList)
			r.Put("/", listHandler.UpdateList)
			r.Patch("/", listHandler.UpdateList)
			r.Delete("/", listHandler.DeleteList)
			r.Get("/full", listHandler.GetListFull)
			r.Get("/cards", cardHandler.CardsByList)
		})
	})

	r.Route("/cards", func(r chi.Router) {
		r.Post("/", cardHandler.CreateCard)
		r.Get("/", cardHandler.CardsByAssignee)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", cardHandler.GetCard)
			r.Put("/", cardHandler.UpdateCard)
			r.Patch("/", cardHandler.UpdateCard)
			r.Delete("/", cardHandler.DeleteCard)
			r.Post("/move", cardHandler.MoveCard)
			r.Get("/comments", cardHandler.CardComments)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Post("/", commentHandler.AddComment)
		r.Delete("/{id}", commentHandler.DeleteComment)
	})

	return r
}

// registerDBStats exports connection pool statistics for this
// application's pool, replacing any collector an earlier router registered.
func (app *application) registerDBStats() {
	sqlDB, err := app.db.DB()
	if err != nil {
		app.logger.Warn("database stats unavailable", slog.Any("error", err))
		return
	}

	collector := collectors.NewDBStatsCollector(sqlDB, "workboard")
	if err := replaceCollector(prometheus.DefaultRegisterer, collector); err != nil {
		app.logger.Warn("failed to register database stats collector", slog.Any("error", err))
	}
}

// replaceCollector registers c, first unregistering a collector with the
// same descriptors.
func replaceCollector(reg prometheus.Registerer, c prometheus.Collector) error {
	err := reg.Register(c)
	var already prometheus.AlreadyRegisteredError
	if !errors.As(err, &already) {
		return err
	}
	reg.Unregister(already.ExistingCollector)
	return reg.Register(c)
}
