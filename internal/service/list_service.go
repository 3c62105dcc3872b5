package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/store"
	"gorm.io/gorm"
)

// CreateListParams holds the fields of a new list.
type CreateListParams struct {
	BoardID uuid.UUID
	Name    string
	// Position defaults to the number of lists already on the board.
	Position *int
	UserID   string
}

// ListService provides list-related operations
type ListService interface {
	// CreateList creates a list on an existing board.
	// Returns store.ErrBoardReference if the board does not exist.
	CreateList(ctx context.Context, params CreateListParams) (*domain.List, error)

	// GetList retrieves a list by its ID
	GetList(ctx context.Context, listID uuid.UUID) (*domain.List, error)

	// GetListFull retrieves a list with its cards ordered by position.
	GetListFull(ctx context.Context, listID uuid.UUID) (*domain.ListWithCards, error)

	// ListsByBoard returns the lists of a board ordered by position.
	// Returns store.ErrBoardNotFound if the board does not exist.
	ListsByBoard(ctx context.Context, boardID uuid.UUID, includeArchived bool) ([]domain.List, error)

	// UpdateList applies a partial update.
	UpdateList(ctx context.Context, listID uuid.UUID, patch domain.ListPatch, userID string) (*domain.List, error)

	// DeleteList removes a list with its cards and their comments.
	DeleteList(ctx context.Context, listID uuid.UUID, userID string) error
}

type listServiceImpl struct {
	boards   store.BoardStore
	lists    store.ListStore
	cards    store.CardStore
	recorder *ActivityRecorder
	logger   *slog.Logger
}

// NewListService creates a new ListService
// It returns an error if any of the required dependencies are nil.
func NewListService(
	boards store.BoardStore,
	lists store.ListStore,
	cards store.CardStore,
	recorder *ActivityRecorder,
	logger *slog.Logger,
) (ListService, error) {
	if boards == nil {
		return nil, domain.NewValidationError("boards", "cannot be nil", domain.ErrValidation)
	}
	if lists == nil {
		return nil, domain.NewValidationError("lists", "cannot be nil", domain.ErrValidation)
	}
	if cards == nil {
		return nil, domain.NewValidationError("cards", "cannot be nil", domain.ErrValidation)
	}
	if recorder == nil {
		return nil, domain.NewValidationError("recorder", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &listServiceImpl{
		boards:   boards,
		lists:    lists,
		cards:    cards,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "list_service")),
	}, nil
}

// requireUser rejects mutations that cannot be attributed to anyone.
func requireUser(userID string) error {
	if userID == "" {
		return domain.NewValidationError("user_id", "cannot be empty", nil)
	}
	return nil
}

func (s *listServiceImpl) CreateList(ctx context.Context, params CreateListParams) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("board_id", params.BoardID.String())

	if err := requireUser(params.UserID); err != nil {
		return nil, fail(ctx, log, listServiceName, "create", "invalid list", err, attr)
	}

	var list *domain.List
	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		lists := s.lists.WithTx(tx)

		if _, err := s.boards.WithTx(tx).GetByID(ctx, params.BoardID); err != nil {
			if store.IsNotFoundError(err) {
				return store.ErrBoardReference
			}
			return err
		}

		position := 0
		if params.Position != nil {
			position = *params.Position
		} else {
			count, err := lists.CountByBoard(ctx, params.BoardID)
			if err != nil {
				return err
			}
			position = count
		}

		var err error
		list, err = domain.NewList(params.BoardID, params.Name, position)
		if err != nil {
			return err
		}
		if err := lists.Create(ctx, list); err != nil {
			return err
		}
		return rec.Record(ctx, list.BoardID, params.UserID, domain.ActivityListCreated,
			fmt.Sprintf("Created list '%s'", list.Name))
	})
	if err != nil {
		return nil, fail(ctx, log, listServiceName, "create", "failed to create list", err, attr)
	}

	log.Info("list created", attr, slog.String("list_id", list.ID.String()))
	return list, nil
}

func (s *listServiceImpl) GetList(ctx context.Context, listID uuid.UUID) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fail(ctx, log, listServiceName, "get", "failed to retrieve list", err,
			slog.String("list_id", listID.String()))
	}
	return list, nil
}

func (s *listServiceImpl) GetListFull(ctx context.Context, listID uuid.UUID) (*domain.ListWithCards, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("list_id", listID.String())

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fail(ctx, log, listServiceName, "get_full", "failed to retrieve list", err, attr)
	}
	cards, err := s.cards.ListByList(ctx, listID)
	if err != nil {
		return nil, fail(ctx, log, listServiceName, "get_full", "failed to retrieve cards", err, attr)
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	return &domain.ListWithCards{List: *list, Cards: cards}, nil
}

func (s *listServiceImpl) ListsByBoard(
	ctx context.Context,
	boardID uuid.UUID,
	includeArchived bool,
) ([]domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("board_id", boardID.String())

	if _, err := s.boards.GetByID(ctx, boardID); err != nil {
		return nil, fail(ctx, log, listServiceName, "list", "failed to retrieve board", err, attr)
	}
	lists, err := s.lists.ListByBoard(ctx, boardID, includeArchived)
	if err != nil {
		return nil, fail(ctx, log, listServiceName, "list", "failed to list lists", err, attr)
	}
	return lists, nil
}

func (s *listServiceImpl) UpdateList(
	ctx context.Context,
	listID uuid.UUID,
	patch domain.ListPatch,
	userID string,
) (*domain.List, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("list_id", listID.String())

	if err := requireUser(userID); err != nil {
		return nil, fail(ctx, log, listServiceName, "update", "invalid list update", err, attr)
	}
	if patch.IsEmpty() {
		err := domain.NewValidationError("", "no fields to update", domain.ErrEmptyPatch)
		return nil, fail(ctx, log, listServiceName, "update", "invalid list update", err, attr)
	}

	var list *domain.List
	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		lists := s.lists.WithTx(tx)

		var err error
		list, err = lists.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		if err := list.Apply(patch); err != nil {
			return err
		}
		if err := lists.Update(ctx, list); err != nil {
			return err
		}

		var (
			activity    = domain.ActivityListUpdated
			description = fmt.Sprintf("Updated list '%s'", list.Name)
		)
		switch {
		case patch.Archives():
			activity = domain.ActivityListArchived
			description = fmt.Sprintf("Archived list '%s'", list.Name)
		case patch.OnlyMoves():
			activity = domain.ActivityListMoved
			description = fmt.Sprintf("Moved list '%s' to position %d", list.Name, list.Position)
		}
		return rec.Record(ctx, list.BoardID, userID, activity, description)
	})
	if err != nil {
		return nil, fail(ctx, log, listServiceName, "update", "failed to update list", err, attr)
	}

	log.Info("list updated", attr)
	return list, nil
}

func (s *listServiceImpl) DeleteList(ctx context.Context, listID uuid.UUID, userID string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("list_id", listID.String())

	if err := requireUser(userID); err != nil {
		return fail(ctx, log, listServiceName, "delete", "invalid list delete", err, attr)
	}

	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		lists := s.lists.WithTx(tx)

		list, err := lists.GetByID(ctx, listID)
		if err != nil {
			return err
		}
		if err := lists.Delete(ctx, listID); err != nil {
			return err
		}
		return rec.Record(ctx, list.BoardID, userID, domain.ActivityListDeleted,
			fmt.Sprintf("Deleted list '%s'", list.Name))
	})
	if err != nil {
		return fail(ctx, log, listServiceName, "delete", "failed to delete list", err, attr)
	}

	log.Info("list deleted", attr)
	return nil
}
