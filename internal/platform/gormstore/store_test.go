package gormstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"github.com/phrazzld/workboard-api/internal/store"
	"github.com/phrazzld/workboard-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stores struct {
	boards     *gormstore.BoardStore
	lists      *gormstore.ListStore
	cards      *gormstore.CardStore
	comments   *gormstore.CommentStore
	activities *gormstore.ActivityStore
	db         *gorm.DB
}

func newStores(t *testing.T) stores {
	t.Helper()
	return newStoresOn(testdb.Open(t))
}

func newStoresOn(db *gorm.DB) stores {
	log := testdb.Logger()
	return stores{
		boards:     gormstore.NewBoardStore(db, log),
		lists:      gormstore.NewListStore(db, log),
		cards:      gormstore.NewCardStore(db, log),
		comments:   gormstore.NewCommentStore(db, log),
		activities: gormstore.NewActivityStore(db, log),
		db:         db,
	}
}

func seedBoard(t *testing.T, s stores, name, owner string) *domain.Board {
	t.Helper()
	board, err := domain.NewBoard(name, nil, nil, owner)
	require.NoError(t, err)
	require.NoError(t, s.boards.Create(context.Background(), board))
	return board
}

func seedList(t *testing.T, s stores, boardID uuid.UUID, name string, position int) *domain.List {
	t.Helper()
	list, err := domain.NewList(boardID, name, position)
	require.NoError(t, err)
	require.NoError(t, s.lists.Create(context.Background(), list))
	return list
}

func seedCard(t *testing.T, s stores, listID uuid.UUID, title string, position int) *domain.Card {
	t.Helper()
	card, err := domain.NewCard(listID, title, position)
	require.NoError(t, err)
	require.NoError(t, s.cards.Create(context.Background(), card))
	return card
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestBoardStore_RoundTrip(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	desc, color := "Team work", "#1A2B3C"
	board, err := domain.NewBoard("Proj", &desc, &color, "u1")
	require.NoError(t, err)
	require.NoError(t, s.boards.Create(ctx, board))

	got, err := s.boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, got.ID)
	assert.Equal(t, "Proj", got.Name)
	assert.Equal(t, "Team work", *got.Description)
	assert.Equal(t, "#1A2B3C", *got.Color)
	assert.Equal(t, "u1", got.OwnerID)
	assert.False(t, got.IsArchived)
	assert.WithinDuration(t, board.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = s.boards.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, store.ErrBoardNotFound))
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestBoardStore_UpdateAndList(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	older := seedBoard(t, s, "Older", "u1")
	newer := seedBoard(t, s, "Newer", "u1")
	other := seedBoard(t, s, "Other", "u2")

	archived := true
	require.NoError(t, older.Apply(domain.BoardPatch{IsArchived: &archived}))
	require.NoError(t, s.boards.Update(ctx, older))

	active, err := s.boards.List(ctx, store.BoardFilter{OwnerID: "u1"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, newer.ID, active[0].ID)

	all, err := s.boards.List(ctx, store.BoardFilter{IncludeArchived: true})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Most recently updated first.
	assert.Equal(t, older.ID, all[0].ID)
	assert.ElementsMatch(t, []uuid.UUID{older.ID, newer.ID, other.ID},
		[]uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	ghost, err := domain.NewBoard("Ghost", nil, nil, "u1")
	require.NoError(t, err)
	assert.True(t, errors.Is(s.boards.Update(ctx, ghost), store.ErrBoardNotFound))
	assert.True(t, errors.Is(s.boards.Delete(ctx, ghost.ID), store.ErrBoardNotFound))
}

func TestBoardStore_DeleteCascades(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	list := seedList(t, s, board.ID, "Todo", 0)
	card := seedCard(t, s, list.ID, "Fix bug", 0)
	comment, err := domain.NewComment(card.ID, "u1", "on it")
	require.NoError(t, err)
	require.NoError(t, s.comments.Create(ctx, comment))
	entry, err := domain.NewActivityLog(board.ID, "u1", domain.ActivityBoardCreated, "Created board 'Proj'")
	require.NoError(t, err)
	require.NoError(t, s.activities.Create(ctx, entry))

	require.NoError(t, s.boards.Delete(ctx, board.ID))

	for _, table := range []string{"boards", "lists", "cards", "comments", "activity_logs"} {
		assert.Zero(t, countRows(t, s.db, table), table)
	}
}

func TestListStore(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	doing := seedList(t, s, board.ID, "Doing", 1)
	todo := seedList(t, s, board.ID, "Todo", 0)
	old := seedList(t, s, board.ID, "Old", 2)

	archived := true
	require.NoError(t, old.Apply(domain.ListPatch{IsArchived: &archived}))
	require.NoError(t, s.lists.Update(ctx, old))

	lists, err := s.lists.ListByBoard(ctx, board.ID, false)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, todo.ID, lists[0].ID)
	assert.Equal(t, doing.ID, lists[1].ID)

	lists, err = s.lists.ListByBoard(ctx, board.ID, true)
	require.NoError(t, err)
	assert.Len(t, lists, 3)

	n, err := s.lists.CountByBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	orphan, err := domain.NewList(uuid.New(), "Orphan", 0)
	require.NoError(t, err)
	err = s.lists.Create(ctx, orphan)
	assert.True(t, errors.Is(err, store.ErrBoardReference))
	assert.True(t, errors.Is(err, store.ErrInvalidReference))

	_, err = s.lists.GetByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, store.ErrListNotFound))
}

func TestListStore_DeleteLeavesNoDanglingCards(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	list := seedList(t, s, board.ID, "Todo", 0)
	keep := seedList(t, s, board.ID, "Keep", 1)
	card := seedCard(t, s, list.ID, "Gone", 0)
	kept := seedCard(t, s, keep.ID, "Kept", 0)
	comment, err := domain.NewComment(card.ID, "u1", "bye")
	require.NoError(t, err)
	require.NoError(t, s.comments.Create(ctx, comment))

	require.NoError(t, s.lists.Delete(ctx, list.ID))

	_, err = s.cards.GetByID(ctx, card.ID)
	assert.True(t, errors.Is(err, store.ErrCardNotFound))
	_, err = s.comments.GetByID(ctx, comment.ID)
	assert.True(t, errors.Is(err, store.ErrCommentNotFound))
	_, err = s.cards.GetByID(ctx, kept.ID)
	assert.NoError(t, err)

	assert.True(t, errors.Is(s.lists.Delete(ctx, list.ID), store.ErrListNotFound))
}

func TestCardStore(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	todo := seedList(t, s, board.ID, "Todo", 0)
	doing := seedList(t, s, board.ID, "Doing", 1)

	second := seedCard(t, s, todo.ID, "Second", 1)
	first := seedCard(t, s, todo.ID, "First", 0)
	other := seedCard(t, s, doing.ID, "Other", 0)

	cards, err := s.cards.ListByList(ctx, todo.ID)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, first.ID, cards[0].ID)
	assert.Equal(t, second.ID, cards[1].ID)

	batched, err := s.cards.ListByLists(ctx, []uuid.UUID{todo.ID, doing.ID})
	require.NoError(t, err)
	assert.Len(t, batched, 3)

	empty, err := s.cards.ListByLists(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	n, err := s.cards.CountByList(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Move to a missing list is rejected and leaves the row alone.
	missing := uuid.New()
	moved := *other
	require.NoError(t, moved.Apply(domain.CardPatch{ListID: &missing}))
	err = s.cards.Update(ctx, &moved)
	assert.True(t, errors.Is(err, store.ErrListReference))

	got, err := s.cards.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, doing.ID, got.ListID)

	orphan, err := domain.NewCard(uuid.New(), "Orphan", 0)
	require.NoError(t, err)
	assert.True(t, errors.Is(s.cards.Create(ctx, orphan), store.ErrInvalidReference))

	require.NoError(t, s.cards.Delete(ctx, first.ID))
	assert.True(t, errors.Is(s.cards.Delete(ctx, first.ID), store.ErrCardNotFound))
}

func TestCardStore_ListByAssignee(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	list := seedList(t, s, board.ID, "Todo", 0)

	assign := func(card *domain.Card, due *time.Time) {
		user := "u2"
		require.NoError(t, card.Apply(domain.CardPatch{AssignedTo: &user, DueDate: due}))
		require.NoError(t, s.cards.Update(ctx, card))
	}

	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(72 * time.Hour)

	noDue := seedCard(t, s, list.ID, "No due date", 0)
	lateCard := seedCard(t, s, list.ID, "Later", 1)
	soonCard := seedCard(t, s, list.ID, "Soon", 2)
	seedCard(t, s, list.ID, "Unassigned", 3)

	assign(noDue, nil)
	assign(lateCard, &later)
	assign(soonCard, &soon)

	cards, err := s.cards.ListByAssignee(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, soonCard.ID, cards[0].ID)
	assert.Equal(t, lateCard.ID, cards[1].ID)
	assert.Equal(t, noDue.ID, cards[2].ID)
	require.NotNil(t, cards[0].DueDate)
	assert.WithinDuration(t, soon, *cards[0].DueDate, time.Millisecond)
}

func TestCommentStore(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	list := seedList(t, s, board.ID, "Todo", 0)
	card := seedCard(t, s, list.ID, "Fix bug", 0)

	older, err := domain.NewComment(card.ID, "u1", "first")
	require.NoError(t, err)
	older.CreatedAt = older.CreatedAt.Add(-time.Minute)
	require.NoError(t, s.comments.Create(ctx, older))

	newer, err := domain.NewComment(card.ID, "u2", "second")
	require.NoError(t, err)
	require.NoError(t, s.comments.Create(ctx, newer))

	comments, err := s.comments.ListByCard(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, newer.ID, comments[0].ID)
	assert.Equal(t, older.ID, comments[1].ID)

	orphan, err := domain.NewComment(uuid.New(), "u1", "lost")
	require.NoError(t, err)
	assert.True(t, errors.Is(s.comments.Create(ctx, orphan), store.ErrCardReference))

	require.NoError(t, s.comments.Delete(ctx, older.ID))
	assert.True(t, errors.Is(s.comments.Delete(ctx, older.ID), store.ErrCommentNotFound))
}

func TestActivityStore_LimitAndOrder(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	board := seedBoard(t, s, "Proj", "u1")
	base := time.Now().UTC().Add(-time.Hour)

	var ids []uuid.UUID
	for i := 0; i < 8; i++ {
		entry, err := domain.NewActivityLog(board.ID, "u1", domain.ActivityCardUpdated, "Updated card")
		require.NoError(t, err)
		entry.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.activities.Create(ctx, entry))
		ids = append(ids, entry.ID)
	}

	page, err := s.activities.ListByBoard(ctx, board.ID, 5, 0)
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, ids[7], page[0].ID)
	for i := 1; i < len(page); i++ {
		assert.False(t, page[i].CreatedAt.After(page[i-1].CreatedAt))
	}

	rest, err := s.activities.ListByBoard(ctx, board.ID, 5, 5)
	require.NoError(t, err)
	require.Len(t, rest, 3)
	assert.Equal(t, ids[0], rest[2].ID)

	entry, err := domain.NewActivityLog(uuid.New(), "u1", domain.ActivityCardUpdated, "x")
	require.NoError(t, err)
	assert.True(t, errors.Is(s.activities.Create(ctx, entry), store.ErrBoardReference))
}

func TestStoresWithTx(t *testing.T) {
	s := newStores(t)
	ctx := context.Background()

	testdb.WithTx(t, s.db, func(t *testing.T, tx *gorm.DB) {
		board, err := domain.NewBoard("Scratch", nil, nil, "u1")
		require.NoError(t, err)
		require.NoError(t, s.boards.WithTx(tx).Create(ctx, board))

		_, err = s.boards.WithTx(tx).GetByID(ctx, board.ID)
		require.NoError(t, err)
	})

	assert.Zero(t, countRows(t, s.db, "boards"))
}
