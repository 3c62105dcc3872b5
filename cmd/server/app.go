package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workboard-api/internal/config"
	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
	"gorm.io/gorm"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *gorm.DB

	// Stores
	boardStore    store.BoardStore
	listStore     store.ListStore
	cardStore     store.CardStore
	commentStore  store.CommentStore
	activityStore store.ActivityStore

	// Services
	boardService    service.BoardService
	listService     service.ListService
	cardService     service.CardService
	commentService  service.CommentService
	activityService service.ActivityService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database must already be open and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *gorm.DB) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if db == nil {
		return nil, errors.New("database cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.boardStore = gormstore.NewBoardStore(db, logger)
	app.listStore = gormstore.NewListStore(db, logger)
	app.cardStore = gormstore.NewCardStore(db, logger)
	app.commentStore = gormstore.NewCommentStore(db, logger)
	app.activityStore = gormstore.NewActivityStore(db, logger)

	recorder, err := service.NewActivityRecorder(db, app.activityStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity recorder: %w", err)
	}

	app.boardService, err = service.NewBoardService(app.boardStore, app.listStore, app.cardStore, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create board service: %w", err)
	}

	app.listService, err = service.NewListService(app.boardStore, app.listStore, app.cardStore, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create list service: %w", err)
	}

	app.cardService, err = service.NewCardService(app.listStore, app.cardStore, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	app.commentService, err = service.NewCommentService(
		app.listStore,
		app.cardStore,
		app.commentStore,
		recorder,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	app.activityService, err = service.NewActivityService(app.boardStore, app.activityStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	logger.Info("Application initialized successfully",
		slog.String("dialect", string(gormstore.DialectOf(db))))
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// ping reports whether the database is reachable.
func (app *application) ping(ctx context.Context) error {
	return gormstore.Ping(ctx, app.db)
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := gormstore.Close(app.db); err != nil {
			app.logger.Error("Error closing database connection", slog.Any("error", err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
