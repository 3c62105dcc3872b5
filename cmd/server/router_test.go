package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/workboard-api/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardWorkflowOverHTTP(t *testing.T) {
	h := newTestApp(t).setupRouter()

	rec := do(t, h, http.MethodPost, "/boards", map[string]interface{}{"name": "Proj", "owner_id": "u1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	board := decode[domain.Board](t, rec)

	rec = do(t, h, http.MethodPost, "/lists?user_id=u1", map[string]interface{}{"board_id": board.ID, "name": "Todo"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	todo := decode[domain.List](t, rec)
	assert.Equal(t, 0, todo.Position)

	rec = do(t, h, http.MethodPost, "/lists?user_id=u1", map[string]interface{}{"board_id": board.ID, "name": "Doing"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	doing := decode[domain.List](t, rec)
	assert.Equal(t, 1, doing.Position)

	rec = do(t, h, http.MethodPost, "/cards?user_id=u1", map[string]interface{}{"list_id": todo.ID, "title": "Fix bug"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	card := decode[domain.Card](t, rec)
	assert.Equal(t, domain.StatusTodo, card.Status)
	assert.Equal(t, domain.PriorityMedium, card.Priority)

	rec = do(t, h, http.MethodPut, "/cards/"+card.ID.String()+"?user_id=u1",
		map[string]interface{}{"list_id": doing.ID, "status": "in_progress"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/boards/"+board.ID.String()+"/full", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	full := decode[domain.BoardWithLists](t, rec)
	require.Len(t, full.Lists, 2)
	assert.Equal(t, "Todo", full.Lists[0].Name)
	assert.Empty(t, full.Lists[0].Cards)
	assert.Equal(t, "Doing", full.Lists[1].Name)
	require.Len(t, full.Lists[1].Cards, 1)
	assert.Equal(t, "Fix bug", full.Lists[1].Cards[0].Title)
	assert.Equal(t, domain.StatusInProgress, full.Lists[1].Cards[0].Status)

	rec = do(t, h, http.MethodPost, "/comments",
		map[string]interface{}{"card_id": card.ID, "user_id": "u2", "content": "On it"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/boards/"+board.ID.String()+"/activities?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decode[[]domain.ActivityLog](t, rec)
	require.Len(t, entries, 5)
	assert.Equal(t, domain.ActivityCommentAdded, entries[0].Type)
	assert.Equal(t, domain.ActivityCardMoved, entries[1].Type)
	assert.Equal(t, "Moved card 'Fix bug' from list 'Todo' to list 'Doing'", entries[1].Description)
	assert.Equal(t, domain.ActivityCardCreated, entries[2].Type)

	rec = do(t, h, http.MethodDelete, "/boards/"+board.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	for _, path := range []string{
		"/boards/" + board.ID.String(),
		"/lists/" + todo.ID.String(),
		"/cards/" + card.ID.String(),
	} {
		rec = do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestRouterErrorStatuses(t *testing.T) {
	h := newTestApp(t).setupRouter()

	rec := do(t, h, http.MethodPost, "/boards", map[string]interface{}{"name": "Proj", "owner_id": "u1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	board := decode[domain.Board](t, rec)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
	}{
		{"malformed id", http.MethodGet, "/boards/not-a-uuid", nil, http.StatusNotFound},
		{"unknown board", http.MethodGet, "/boards/" + uuid.NewString(), nil, http.StatusNotFound},
		{"list on missing board", http.MethodPost, "/lists?user_id=u1",
			map[string]interface{}{"board_id": uuid.New(), "name": "Todo"}, http.StatusBadRequest},
		{"list without user", http.MethodPost, "/lists",
			map[string]interface{}{"board_id": board.ID, "name": "Todo"}, http.StatusUnprocessableEntity},
		{"empty board patch", http.MethodPatch, "/boards/" + board.ID.String(),
			map[string]interface{}{}, http.StatusUnprocessableEntity},
		{"activity limit too large", http.MethodGet,
			"/boards/" + board.ID.String() + "/activities?limit=101", nil, http.StatusUnprocessableEntity},
		{"unknown route", http.MethodGet, "/nowhere", nil, http.StatusNotFound},
		{"wrong method", http.MethodPost, "/boards/" + board.ID.String(), nil, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestMoveToMissingListLeavesCard(t *testing.T) {
	h := newTestApp(t).setupRouter()

	board := decode[domain.Board](t, do(t, h, http.MethodPost, "/boards", map[string]interface{}{"name": "Proj", "owner_id": "u1"}))
	list := decode[domain.List](t, do(t, h, http.MethodPost, "/lists?user_id=u1", map[string]interface{}{"board_id": board.ID, "name": "Todo"}))
	card := decode[domain.Card](t, do(t, h, http.MethodPost, "/cards?user_id=u1", map[string]interface{}{"list_id": list.ID, "title": "Fix bug"}))

	rec := do(t, h, http.MethodPost, fmt.Sprintf("/cards/%s/move?user_id=u1", card.ID), map[string]interface{}{"list_id": uuid.New()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	got := decode[domain.Card](t, do(t, h, http.MethodGet, "/cards/"+card.ID.String(), nil))
	assert.Equal(t, list.ID, got.ListID)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestApp(t).setupRouter()

	rec := do(t, h, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	rec = do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `workboard_http_requests_total{method="GET",path="/health",status="200"}`)
	assert.Contains(t, rec.Body.String(), `go_sql_max_open_connections{db_name="workboard"}`)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestApp(t).setupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/boards", nil)
	req.Header.Set("Origin", "https://board.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://board.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/boards", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestReplaceCollectorKeepsNewestPool(t *testing.T) {
	reg := prometheus.NewRegistry()
	poolGauge := func(v float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "workboard_pool_open",
			Help: "Open connections in the pool.",
		}, func() float64 { return v })
	}

	require.NoError(t, replaceCollector(reg, poolGauge(1)))
	require.NoError(t, replaceCollector(reg, poolGauge(2)))

	expected := `
# HELP workboard_pool_open Open connections in the pool.
# TYPE workboard_pool_open gauge
workboard_pool_open 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "workboard_pool_open"))
}
