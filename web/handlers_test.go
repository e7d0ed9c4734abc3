package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bcheye/fantasy-foundry/controller"
	"github.com/bcheye/fantasy-foundry/controller/mockcontroller"
	"github.com/bcheye/fantasy-foundry/db"
	"github.com/bcheye/fantasy-foundry/model"
)

func serveRequest(ctrl *mockcontroller.C, method, target, body string) *httptest.ResponseRecorder {
	router := getRouter(ctrl, newRender())

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeStatus(t *testing.T, w *httptest.ResponseRecorder) statusResponse {
	t.Helper()
	var resp statusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestSyncBootstrapHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SyncBootstrap", mock.Anything).Return(nil)

	w := serveRequest(ctrl, http.MethodPost, "/api/sync/bootstrap", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if resp := decodeStatus(t, w); resp.Status != statusSuccess {
		t.Errorf("expected success status, got %+v", resp)
	}
}

func TestSyncBootstrapHandlerUpstreamError(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SyncBootstrap", mock.Anything).Return(errors.New("fpl api unavailable"))

	w := serveRequest(ctrl, http.MethodPost, "/api/sync/bootstrap", "")
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestSyncRouteGetsLongTimeoutBudget(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool

	ctrl := &mockcontroller.C{}
	ctrl.On("SyncBootstrap", mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		deadline, hasDeadline = ctx.Deadline()
	}).Return(nil)

	start := time.Now()
	w := serveRequest(ctrl, http.MethodPost, "/api/sync/bootstrap", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// A league fan-out can easily outlast the 10s the query routes get, so
	// the sync routes must carry the full 5 minute budget.
	if !hasDeadline {
		t.Fatal("expected the sync context to carry a deadline")
	}
	if remaining := deadline.Sub(start); remaining < time.Minute {
		t.Errorf("expected a multi-minute deadline for sync routes, got %v", remaining)
	}
}

func TestQueryRouteGetsShortTimeoutBudget(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool

	ctrl := &mockcontroller.C{}
	ctrl.On("ListPlayers", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		deadline, hasDeadline = ctx.Deadline()
	}).Return([]model.Player{}, nil)

	start := time.Now()
	w := serveRequest(ctrl, http.MethodGet, "/api/players", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if !hasDeadline {
		t.Fatal("expected the query context to carry a deadline")
	}
	if remaining := deadline.Sub(start); remaining > 11*time.Second {
		t.Errorf("expected roughly a 10s deadline for query routes, got %v", remaining)
	}
}

func TestSyncUserHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SyncEntry", mock.Anything, int32(1001)).Return(nil)

	w := serveRequest(ctrl, http.MethodPost, "/api/sync/user/1001", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ctrl.AssertExpectations(t)
}

func TestSyncLeaguesHandlerPartial(t *testing.T) {
	report := &model.SyncReport{}
	report.RecordSuccess()
	report.RecordFailure(4004)

	ctrl := &mockcontroller.C{}
	ctrl.On("SyncInvitationalLeagues", mock.Anything, int32(1001)).Return(report, nil)

	w := serveRequest(ctrl, http.MethodPost, "/api/sync/leagues/1001", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := decodeStatus(t, w)
	if resp.Status != statusPartial {
		t.Errorf("expected partial status, got %+v", resp)
	}
	if resp.Message != "1/2 synced" {
		t.Errorf("expected '1/2 synced', got %q", resp.Message)
	}
}

func TestListPlayersHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("ListPlayers", mock.Anything, 25).Return([]model.Player{
		{ID: 233, Name: "M.Salah", Cost: 13.1},
	}, nil)

	w := serveRequest(ctrl, http.MethodGet, "/api/players?limit=25", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var players []model.Player
	if err := json.Unmarshal(w.Body.Bytes(), &players); err != nil {
		t.Fatalf("error decoding players: %v", err)
	}
	if len(players) != 1 || players[0].Name != "M.Salah" {
		t.Errorf("unexpected players: %+v", players)
	}
}

func TestListPlayersHandlerDefaultLimit(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("ListPlayers", mock.Anything, 100).Return([]model.Player{
		{ID: 233, Name: "M.Salah", Cost: 13.1},
	}, nil)

	// Without a limit parameter the endpoint still returns players.
	w := serveRequest(ctrl, http.MethodGet, "/api/players", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var players []model.Player
	if err := json.Unmarshal(w.Body.Bytes(), &players); err != nil {
		t.Fatalf("error decoding players: %v", err)
	}
	if len(players) != 1 {
		t.Errorf("expected 1 player, got %d", len(players))
	}
	ctrl.AssertExpectations(t)
}

func TestListPlayersHandlerBadLimit(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := serveRequest(ctrl, http.MethodGet, "/api/players?limit=lots", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	ctrl.AssertNotCalled(t, "ListPlayers", mock.Anything, mock.Anything)
}

func TestTopPlayersHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetTopPlayers", mock.Anything, int32(3), 5).Return([]model.TopPlayer{
		{PlayerID: 233, PlayerName: "M.Salah", TotalPoints: 29, Position: "Midfielder", Team: "Liverpool"},
	}, nil)

	w := serveRequest(ctrl, http.MethodGet, "/api/top_performing_players?limit=5&position=3", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ctrl.AssertExpectations(t)
}

func TestTopPlayersHandlerDefaultLimit(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetTopPlayers", mock.Anything, int32(0), 10).Return([]model.TopPlayer{}, nil)

	w := serveRequest(ctrl, http.MethodGet, "/api/top_performing_players", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ctrl.AssertExpectations(t)
}

func TestOverviewHandlerNotFound(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetOverview", mock.Anything, int32(1001)).Return(nil, db.ErrOverviewNotFound)

	w := serveRequest(ctrl, http.MethodGet, "/api/overview/1001", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestOverviewHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetOverview", mock.Anything, int32(1001)).Return(&model.Overview{
		EntryID: 1001, CurrentGameweek: 2, OverallPoints: 128,
	}, nil)

	w := serveRequest(ctrl, http.MethodGet, "/api/overview/1001", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var o model.Overview
	if err := json.Unmarshal(w.Body.Bytes(), &o); err != nil {
		t.Fatalf("error decoding overview: %v", err)
	}
	if o.EntryID != 1001 || o.OverallPoints != 128 {
		t.Errorf("unexpected overview: %+v", o)
	}
}

func TestSignupHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("Signup", mock.Anything, mock.Anything, "hunter2hunter2").Return(nil)

	body := `{"first_name":"Ada","email":"ada@example.com","password":"hunter2hunter2","fpl_entry_id":1001}`
	w := serveRequest(ctrl, http.MethodPost, "/auth/signup", body)
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSignupHandlerDuplicateEmail(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("Signup", mock.Anything, mock.Anything, mock.Anything).Return(db.ErrEmailExists)

	body := `{"email":"ada@example.com","password":"hunter2hunter2"}`
	w := serveRequest(ctrl, http.MethodPost, "/auth/signup", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("Login", mock.Anything, "ada@example.com", "hunter2hunter2").Return(&model.User{
		ID: 1, Email: "ada@example.com", FPLEntryID: 1001,
	}, nil)

	body := `{"email":"ada@example.com","password":"hunter2hunter2"}`
	w := serveRequest(ctrl, http.MethodPost, "/auth/login", body)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.FPLEntryID != 1001 {
		t.Errorf("expected entry id 1001, got %d", resp.FPLEntryID)
	}
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("Login", mock.Anything, "ada@example.com", "wrong").Return(nil, controller.ErrInvalidCredentials)

	body := `{"email":"ada@example.com","password":"wrong"}`
	w := serveRequest(ctrl, http.MethodPost, "/auth/login", body)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
