package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/phrazzld/workboard-api/internal/platform/gormstore"
	"github.com/phrazzld/workboard-api/internal/service"
	"github.com/phrazzld/workboard-api/internal/store"
	"github.com/phrazzld/workboard-api/internal/testdb"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// services wires every service against one migrated in-memory database.
type services struct {
	db         *gorm.DB
	boards     service.BoardService
	lists      service.ListService
	cards      service.CardService
	comments   service.CommentService
	activities service.ActivityService

	activityStore store.ActivityStore
}

func newServices(t *testing.T) services {
	t.Helper()
	db := testdb.Open(t)
	return newServicesWithActivities(t, db, gormstoreActivities(db))
}

func gormstoreActivities(db *gorm.DB) store.ActivityStore {
	return gormstore.NewActivityStore(db, testdb.Logger())
}

func newServicesWithActivities(t *testing.T, db *gorm.DB, activities store.ActivityStore) services {
	t.Helper()
	log := testdb.Logger()

	boards := gormstore.NewBoardStore(db, log)
	lists := gormstore.NewListStore(db, log)
	cards := gormstore.NewCardStore(db, log)
	comments := gormstore.NewCommentStore(db, log)

	recorder, err := service.NewActivityRecorder(db, activities, log)
	require.NoError(t, err)

	s := services{db: db, activityStore: activities}
	s.boards, err = service.NewBoardService(boards, lists, cards, recorder, log)
	require.NoError(t, err)
	s.lists, err = service.NewListService(boards, lists, cards, recorder, log)
	require.NoError(t, err)
	s.cards, err = service.NewCardService(lists, cards, recorder, log)
	require.NoError(t, err)
	s.comments, err = service.NewCommentService(lists, cards, comments, recorder, log)
	require.NoError(t, err)
	s.activities, err = service.NewActivityService(boards, activities, log)
	require.NoError(t, err)
	return s
}

func (s services) createBoard(t *testing.T, name, owner string) *domain.Board {
	t.Helper()
	board, err := s.boards.CreateBoard(context.Background(), service.CreateBoardParams{Name: name, OwnerID: owner})
	require.NoError(t, err)
	return board
}

func (s services) createList(t *testing.T, boardID uuid.UUID, name string) *domain.List {
	t.Helper()
	list, err := s.lists.CreateList(context.Background(), service.CreateListParams{
		BoardID: boardID,
		Name:    name,
		UserID:  "u1",
	})
	require.NoError(t, err)
	return list
}

func (s services) createCard(t *testing.T, listID uuid.UUID, title string) *domain.Card {
	t.Helper()
	card, err := s.cards.CreateCard(context.Background(), service.CreateCardParams{
		ListID: listID,
		Title:  title,
		UserID: "u1",
	})
	require.NoError(t, err)
	return card
}

func boardStoreOf(t *testing.T, s services) store.BoardStore {
	t.Helper()
	return gormstore.NewBoardStore(s.db, testdb.Logger())
}

// activityLog returns every entry of a board's log, most recent first.
func (s services) activityLog(t *testing.T, boardID uuid.UUID) []domain.ActivityLog {
	t.Helper()
	entries, err := s.activityStore.ListByBoard(context.Background(), boardID, service.MaxActivityLimit, 0)
	require.NoError(t, err)
	return entries
}

// MockActivityStore is a testify mock of store.ActivityStore. WithTx returns
// the mock itself so expectations hold inside transactions.
type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) Create(ctx context.Context, entry *domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityStore) ListByBoard(
	ctx context.Context,
	boardID uuid.UUID,
	limit, offset int,
) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, boardID, limit, offset)
	entries, _ := args.Get(0).([]domain.ActivityLog)
	return entries, args.Error(1)
}

func (m *MockActivityStore) WithTx(*gorm.DB) store.ActivityStore {
	return m
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
