package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
	"github.com/phrazzld/workboard-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewBoardService_NilDependencies(t *testing.T) {
	s := newServices(t)
	recorder, err := service.NewActivityRecorder(s.db, s.activityStore, nil)
	require.NoError(t, err)

	_, err = service.NewBoardService(nil, nil, nil, recorder, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = service.NewActivityRecorder(nil, s.activityStore, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	_, err = service.NewActivityRecorder(s.db, nil, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestBoardService_CreateAndGet(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	created, err := s.boards.CreateBoard(ctx, service.CreateBoardParams{
		Name:        "Proj",
		Description: strPtr("Quarterly work"),
		Color:       strPtr("#336699"),
		OwnerID:     "u1",
	})
	require.NoError(t, err)

	got, err := s.boards.GetBoard(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Proj", got.Name)
	assert.Equal(t, "Quarterly work", *got.Description)
	assert.Equal(t, "#336699", *got.Color)
	assert.Equal(t, "u1", got.OwnerID)
	assert.False(t, got.IsArchived)

	log := s.activityLog(t, created.ID)
	require.Len(t, log, 1)
	assert.Equal(t, domain.ActivityBoardCreated, log[0].Type)
	assert.Equal(t, "u1", log[0].UserID)
	assert.Equal(t, "Created board 'Proj'", log[0].Description)
}

func TestBoardService_CreateValidation(t *testing.T) {
	s := newServices(t)

	tests := []struct {
		name   string
		params service.CreateBoardParams
	}{
		{name: "missing name", params: service.CreateBoardParams{OwnerID: "u1"}},
		{name: "missing owner", params: service.CreateBoardParams{Name: "Proj"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.boards.CreateBoard(context.Background(), tc.params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var serviceErr *service.ServiceError
			require.True(t, errors.As(err, &serviceErr))
			assert.Equal(t, "create", serviceErr.Op)
		})
	}

	boards, err := s.boards.ListBoards(context.Background(), store.BoardFilter{IncludeArchived: true})
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestBoardService_GetMissing(t *testing.T) {
	s := newServices(t)

	_, err := s.boards.GetBoard(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))

	_, err = s.boards.GetBoardFull(context.Background(), uuid.New(), false)
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))
}

func TestBoardService_UpdateActivityTypes(t *testing.T) {
	tests := []struct {
		name        string
		patch       domain.BoardPatch
		userID      string
		wantType    domain.ActivityType
		wantUser    string
		wantMessage string
	}{
		{
			name:        "rename",
			patch:       domain.BoardPatch{Name: strPtr("Renamed")},
			userID:      "u2",
			wantType:    domain.ActivityBoardUpdated,
			wantUser:    "u2",
			wantMessage: "Updated board 'Renamed'",
		},
		{
			name:        "archive through patch",
			patch:       domain.BoardPatch{IsArchived: boolPtr(true)},
			userID:      "u2",
			wantType:    domain.ActivityBoardArchived,
			wantUser:    "u2",
			wantMessage: "Archived board 'Proj'",
		},
		{
			name:        "unarchive is an update",
			patch:       domain.BoardPatch{IsArchived: boolPtr(false)},
			userID:      "u2",
			wantType:    domain.ActivityBoardUpdated,
			wantUser:    "u2",
			wantMessage: "Updated board 'Proj'",
		},
		{
			name:        "user defaults to owner",
			patch:       domain.BoardPatch{Color: strPtr("#000000")},
			wantType:    domain.ActivityBoardUpdated,
			wantUser:    "u1",
			wantMessage: "Updated board 'Proj'",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newServices(t)
			board := s.createBoard(t, "Proj", "u1")

			_, err := s.boards.UpdateBoard(context.Background(), board.ID, tc.patch, tc.userID)
			require.NoError(t, err)

			log := s.activityLog(t, board.ID)
			require.Len(t, log, 2)
			assert.Equal(t, tc.wantType, log[0].Type)
			assert.Equal(t, tc.wantUser, log[0].UserID)
			assert.Equal(t, tc.wantMessage, log[0].Description)
		})
	}
}

func TestBoardService_UpdateErrors(t *testing.T) {
	s := newServices(t)
	board := s.createBoard(t, "Proj", "u1")
	ctx := context.Background()

	_, err := s.boards.UpdateBoard(ctx, uuid.New(), domain.BoardPatch{Name: strPtr("x")}, "u1")
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))

	_, err = s.boards.UpdateBoard(ctx, board.ID, domain.BoardPatch{}, "u1")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.True(t, errors.Is(err, domain.ErrEmptyPatch))

	_, err = s.boards.UpdateBoard(ctx, board.ID, domain.BoardPatch{Name: strPtr("")}, "u1")
	assert.True(t, errors.Is(err, domain.ErrValidation))

	got, err := s.boards.GetBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Proj", got.Name)
	assert.Len(t, s.activityLog(t, board.ID), 1)
}

func TestBoardService_ArchiveAndList(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	active := s.createBoard(t, "Active", "u1")
	archived := s.createBoard(t, "Old", "u1")
	s.createBoard(t, "Other", "u2")

	got, err := s.boards.ArchiveBoard(ctx, archived.ID, "")
	require.NoError(t, err)
	assert.True(t, got.IsArchived)

	// Archived boards remain readable.
	fetched, err := s.boards.GetBoard(ctx, archived.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsArchived)

	boards, err := s.boards.ListBoards(ctx, store.BoardFilter{OwnerID: "u1"})
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, active.ID, boards[0].ID)

	boards, err = s.boards.ListBoards(ctx, store.BoardFilter{OwnerID: "u1", IncludeArchived: true})
	require.NoError(t, err)
	require.Len(t, boards, 2)
	// Most recently updated first.
	assert.Equal(t, archived.ID, boards[0].ID)

	boards, err = s.boards.ListBoards(ctx, store.BoardFilter{})
	require.NoError(t, err)
	assert.Len(t, boards, 2)

	log := s.activityLog(t, archived.ID)
	require.Len(t, log, 2)
	assert.Equal(t, domain.ActivityBoardArchived, log[0].Type)
}

func TestBoardService_GetBoardFull(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	board := s.createBoard(t, "Proj", "u1")
	doing := s.createList(t, board.ID, "Doing")
	todo := s.createList(t, board.ID, "Todo")
	empty := s.createList(t, board.ID, "Empty")
	archived := s.createList(t, board.ID, "Archived")

	// Reorder so Todo comes first.
	_, err := s.lists.UpdateList(ctx, todo.ID, domain.ListPatch{Position: intPtr(0)}, "u1")
	require.NoError(t, err)
	_, err = s.lists.UpdateList(ctx, doing.ID, domain.ListPatch{Position: intPtr(1)}, "u1")
	require.NoError(t, err)
	_, err = s.lists.UpdateList(ctx, archived.ID, domain.ListPatch{IsArchived: boolPtr(true)}, "u1")
	require.NoError(t, err)

	second := s.createCard(t, todo.ID, "Second")
	first, err := s.cards.CreateCard(ctx, service.CreateCardParams{
		ListID:   todo.ID,
		Title:    "First",
		Position: intPtr(0),
		UserID:   "u1",
	})
	require.NoError(t, err)
	_, err = s.cards.UpdateCard(ctx, second.ID, domain.CardPatch{Position: intPtr(1)}, "u1")
	require.NoError(t, err)
	inDoing := s.createCard(t, doing.ID, "Running")
	s.createCard(t, archived.ID, "Hidden")

	full, err := s.boards.GetBoardFull(ctx, board.ID, false)
	require.NoError(t, err)
	assert.Equal(t, board.ID, full.ID)
	require.Len(t, full.Lists, 3)

	assert.Equal(t, todo.ID, full.Lists[0].ID)
	require.Len(t, full.Lists[0].Cards, 2)
	assert.Equal(t, first.ID, full.Lists[0].Cards[0].ID)
	assert.Equal(t, second.ID, full.Lists[0].Cards[1].ID)

	assert.Equal(t, doing.ID, full.Lists[1].ID)
	require.Len(t, full.Lists[1].Cards, 1)
	assert.Equal(t, inDoing.ID, full.Lists[1].Cards[0].ID)

	assert.Equal(t, empty.ID, full.Lists[2].ID)
	assert.NotNil(t, full.Lists[2].Cards)
	assert.Empty(t, full.Lists[2].Cards)

	withArchived, err := s.boards.GetBoardFull(ctx, board.ID, true)
	require.NoError(t, err)
	assert.Len(t, withArchived.Lists, 4)

	fresh := s.createBoard(t, "Fresh", "u1")
	bare, err := s.boards.GetBoardFull(ctx, fresh.ID, false)
	require.NoError(t, err)
	assert.NotNil(t, bare.Lists)
	assert.Empty(t, bare.Lists)
}

// Stores that note every transaction they are bound to.
type txTrackingBoards struct {
	store.BoardStore
	seen *[]*gorm.DB
}

func (s txTrackingBoards) WithTx(tx *gorm.DB) store.BoardStore {
	*s.seen = append(*s.seen, tx)
	return s.BoardStore.WithTx(tx)
}

type txTrackingLists struct {
	store.ListStore
	seen *[]*gorm.DB
}

func (s txTrackingLists) WithTx(tx *gorm.DB) store.ListStore {
	*s.seen = append(*s.seen, tx)
	return s.ListStore.WithTx(tx)
}

type txTrackingCards struct {
	store.CardStore
	seen *[]*gorm.DB
}

func (s txTrackingCards) WithTx(tx *gorm.DB) store.CardStore {
	*s.seen = append(*s.seen, tx)
	return s.CardStore.WithTx(tx)
}

func TestBoardService_GetBoardFullReadsOneSnapshot(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	log := testdb.Logger()

	board := s.createBoard(t, "Proj", "u1")
	list := s.createList(t, board.ID, "Todo")
	card := s.createCard(t, list.ID, "Fix bug")

	var seen []*gorm.DB
	recorder, err := service.NewActivityRecorder(s.db, s.activityStore, log)
	require.NoError(t, err)
	boards, err := service.NewBoardService(
		txTrackingBoards{BoardStore: gormstore.NewBoardStore(s.db, log), seen: &seen},
		txTrackingLists{ListStore: gormstore.NewListStore(s.db, log), seen: &seen},
		txTrackingCards{CardStore: gormstore.NewCardStore(s.db, log), seen: &seen},
		recorder,
		log,
	)
	require.NoError(t, err)

	full, err := boards.GetBoardFull(ctx, board.ID, false)
	require.NoError(t, err)
	require.Len(t, full.Lists, 1)
	require.Len(t, full.Lists[0].Cards, 1)
	assert.Equal(t, card.ID, full.Lists[0].Cards[0].ID)

	require.Len(t, seen, 3)
	assert.Same(t, seen[0], seen[1])
	assert.Same(t, seen[0], seen[2])
}

func TestBoardService_DeleteCascades(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	board := s.createBoard(t, "Proj", "u1")
	other := s.createBoard(t, "Keep", "u1")
	list := s.createList(t, board.ID, "Todo")
	card := s.createCard(t, list.ID, "Fix bug")
	comment, err := s.comments.AddComment(ctx, service.AddCommentParams{CardID: card.ID, UserID: "u1", Content: "on it"})
	require.NoError(t, err)
	require.NotEmpty(t, s.activityLog(t, board.ID))

	require.NoError(t, s.boards.DeleteBoard(ctx, board.ID))

	_, err = s.boards.GetBoard(ctx, board.ID)
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))
	_, err = s.lists.GetList(ctx, list.ID)
	assert.True(t, errors.Is(err, store.ErrListNotFound))
	_, err = s.cards.GetCard(ctx, card.ID)
	assert.True(t, errors.Is(err, store.ErrCardNotFound))
	err = s.comments.DeleteComment(ctx, comment.ID, "u1")
	assert.True(t, errors.Is(err, store.ErrCommentNotFound))

	assert.Empty(t, s.activityLog(t, board.ID))
	assert.Len(t, s.activityLog(t, other.ID), 1)

	err = s.boards.DeleteBoard(ctx, board.ID)
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))
}

func TestBoardService_LogsClientErrorsAtDebug(t *testing.T) {
	s := newServices(t)
	buf, log := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), log)

	_, err := s.boards.GetBoard(ctx, uuid.New())
	require.Error(t, err)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)

	var found bool
	for _, entry := range entries {
		if entry["msg"] != "failed to retrieve board" {
			continue
		}
		found = true
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "get", entry["operation"])
		assert.NotEmpty(t, entry["board_id"])
	}
	assert.True(t, found, "expected a log entry for the failed lookup")
}
