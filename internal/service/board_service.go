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

// CreateBoardParams holds the fields of a new board.
type CreateBoardParams struct {
	Name        string
	Description *string
	Color       *string
	OwnerID     string
}

// BoardService provides board-related operations
type BoardService interface {
	// CreateBoard creates a board and records board_created on it.
	CreateBoard(ctx context.Context, params CreateBoardParams) (*domain.Board, error)

	// GetBoard retrieves a board by its ID
	GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error)

	// GetBoardFull retrieves a board with its lists, each carrying its cards.
	// Archived lists are left out unless includeArchived is set.
	GetBoardFull(ctx context.Context, boardID uuid.UUID, includeArchived bool) (*domain.BoardWithLists, error)

	// ListBoards returns boards matching filter, most recently updated first.
	ListBoards(ctx context.Context, filter store.BoardFilter) ([]domain.Board, error)

	// UpdateBoard applies a partial update. An empty userID attributes the
	// change to the board's owner.
	UpdateBoard(ctx context.Context, boardID uuid.UUID, patch domain.BoardPatch, userID string) (*domain.Board, error)

	// ArchiveBoard marks a board archived.
	ArchiveBoard(ctx context.Context, boardID uuid.UUID, userID string) (*domain.Board, error)

	// DeleteBoard removes a board together with its lists, cards, comments
	// and activity log.
	DeleteBoard(ctx context.Context, boardID uuid.UUID) error
}

// boardServiceImpl implements the BoardService interface
type boardServiceImpl struct {
	boards   store.BoardStore
	lists    store.ListStore
	cards    store.CardStore
	recorder *ActivityRecorder
	logger   *slog.Logger
}

// NewBoardService creates a new BoardService
// It returns an error if any of the required dependencies are nil.
func NewBoardService(
	boards store.BoardStore,
	lists store.ListStore,
	cards store.CardStore,
	recorder *ActivityRecorder,
	logger *slog.Logger,
) (BoardService, error) {
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

	return &boardServiceImpl{
		boards:   boards,
		lists:    lists,
		cards:    cards,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "board_service")),
	}, nil
}

// CreateBoard implements BoardService.CreateBoard
func (s *boardServiceImpl) CreateBoard(ctx context.Context, params CreateBoardParams) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	board, err := domain.NewBoard(params.Name, params.Description, params.Color, params.OwnerID)
	if err != nil {
		return nil, fail(ctx, log, boardServiceName, "create", "invalid board", err)
	}

	err = s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		if err := s.boards.WithTx(tx).Create(ctx, board); err != nil {
			return err
		}
		return rec.Record(ctx, board.ID, board.OwnerID, domain.ActivityBoardCreated,
			fmt.Sprintf("Created board '%s'", board.Name))
	})
	if err != nil {
		return nil, fail(ctx, log, boardServiceName, "create", "failed to create board", err)
	}

	log.Info("board created",
		slog.String("board_id", board.ID.String()),
		slog.String("owner_id", board.OwnerID))
	return board, nil
}

// GetBoard implements BoardService.GetBoard
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, fail(ctx, log, boardServiceName, "get", "failed to retrieve board", err,
			slog.String("board_id", boardID.String()))
	}
	return board, nil
}

// GetBoardFull implements BoardService.GetBoardFull
// It issues one query for the board, one for its lists and one for all of
// their cards, all inside one snapshot.
func (s *boardServiceImpl) GetBoardFull(
	ctx context.Context,
	boardID uuid.UUID,
	includeArchived bool,
) (*domain.BoardWithLists, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("board_id", boardID.String())

	var (
		board *domain.Board
		lists []domain.List
		cards []domain.Card
	)
	err := s.recorder.Snapshot(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		board, err = s.boards.WithTx(tx).GetByID(ctx, boardID)
		if err != nil {
			return err
		}

		lists, err = s.lists.WithTx(tx).ListByBoard(ctx, boardID, includeArchived)
		if err != nil || len(lists) == 0 {
			return err
		}

		ids := make([]uuid.UUID, len(lists))
		for i, l := range lists {
			ids[i] = l.ID
		}
		cards, err = s.cards.WithTx(tx).ListByLists(ctx, ids)
		return err
	})
	if err != nil {
		return nil, fail(ctx, log, boardServiceName, "get_full", "failed to retrieve board", err, attr)
	}

	byList := make(map[uuid.UUID][]domain.Card, len(lists))
	for _, c := range cards {
		byList[c.ListID] = append(byList[c.ListID], c)
	}
	full := &domain.BoardWithLists{Board: *board, Lists: make([]domain.ListWithCards, 0, len(lists))}
	for _, l := range lists {
		listCards := byList[l.ID]
		if listCards == nil {
			listCards = []domain.Card{}
		}
		full.Lists = append(full.Lists, domain.ListWithCards{List: l, Cards: listCards})
	}

	log.Debug("retrieved full board", attr,
		slog.Int("list_count", len(lists)),
		slog.Int("card_count", len(cards)))
	return full, nil
}

// ListBoards implements BoardService.ListBoards
func (s *boardServiceImpl) ListBoards(ctx context.Context, filter store.BoardFilter) ([]domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	boards, err := s.boards.List(ctx, filter)
	if err != nil {
		return nil, fail(ctx, log, boardServiceName, "list", "failed to list boards", err,
			slog.String("owner_id", filter.OwnerID))
	}
	return boards, nil
}

// UpdateBoard implements BoardService.UpdateBoard
func (s *boardServiceImpl) UpdateBoard(
	ctx context.Context,
	boardID uuid.UUID,
	patch domain.BoardPatch,
	userID string,
) (*domain.Board, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("board_id", boardID.String())

	if patch.IsEmpty() {
		err := domain.NewValidationError("", "no fields to update", domain.ErrEmptyPatch)
		return nil, fail(ctx, log, boardServiceName, "update", "invalid board update", err, attr)
	}

	var board *domain.Board
	err := s.recorder.Run(ctx, func(ctx context.Context, tx *gorm.DB, rec *TxRecorder) error {
		boards := s.boards.WithTx(tx)

		var err error
		board, err = boards.GetByID(ctx, boardID)
		if err != nil {
			return err
		}
		if err := board.Apply(patch); err != nil {
			return err
		}
		if err := boards.Update(ctx, board); err != nil {
			return err
		}

		activity, verb := domain.ActivityBoardUpdated, "Updated"
		if patch.Archives() {
			activity, verb = domain.ActivityBoardArchived, "Archived"
		}
		actor := userID
		if actor == "" {
			actor = board.OwnerID
		}
		return rec.Record(ctx, board.ID, actor, activity,
			fmt.Sprintf("%s board '%s'", verb, board.Name))
	})
	if err != nil {
		return nil, fail(ctx, log, boardServiceName, "update", "failed to update board", err, attr)
	}

	log.Info("board updated", attr)
	return board, nil
}

// ArchiveBoard implements BoardService.ArchiveBoard
func (s *boardServiceImpl) ArchiveBoard(ctx context.Context, boardID uuid.UUID, userID string) (*domain.Board, error) {
	archived := true
	return s.UpdateBoard(ctx, boardID, domain.BoardPatch{IsArchived: &archived}, userID)
}

// DeleteBoard implements BoardService.DeleteBoard
// No activity is recorded: the cascade removes the board's log with it.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, boardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	attr := slog.String("board_id", boardID.String())

	if err := s.boards.Delete(ctx, boardID); err != nil {
		return fail(ctx, log, boardServiceName, "delete", "failed to delete board", err, attr)
	}

	log.Info("board deleted", attr)
	return nil
}
