package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed fpldata
var fpldata embed.FS

// Well-known ids served by the fake FPL server.
const (
	// HappyEntryID has a full profile, history and league memberships.
	HappyEntryID int32 = 1001
	// FlakyEntryID fails twice with a 500 and then succeeds, for exercising
	// the client retry loop.
	FlakyEntryID int32 = 2002
	// DownEntryID always returns a 500.
	DownEntryID int32 = 3003
	// TestLeagueID has two standings pages.
	TestLeagueID int32 = 9001
	// LiveGameweekID is the only gameweek with live data.
	LiveGameweekID int32 = 2
)

type FakeFPLServer struct {
	s *httptest.Server

	mu            sync.Mutex
	flakyFailures int
}

func NewFakeFPLServer() *FakeFPLServer {
	f := &FakeFPLServer{}

	r := chi.NewRouter()
	r.Get("/bootstrap-static/", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, "bootstrap.json")
	})
	r.Get("/entry/{entryID}/", f.entryHandler)
	r.Get("/entry/{entryID}/history/", f.historyHandler)
	r.Get("/leagues-classic/{leagueID}/standings/", f.standingsHandler)
	r.Get("/event/{gameweekID}/live/", f.liveHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

// ResetFlaky restores the flaky entry's failure budget so the next two
// requests for it fail again.
func (f *FakeFPLServer) ResetFlaky() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flakyFailures = 0
}

func (f *FakeFPLServer) entryHandler(w http.ResponseWriter, r *http.Request) {
	switch entryIDParam(r) {
	case HappyEntryID:
		serveFile(w, "entry_1001.json")
	case FlakyEntryID:
		if f.failFlaky() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		serveFile(w, "entry_2002.json")
	case DownEntryID:
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *FakeFPLServer) historyHandler(w http.ResponseWriter, r *http.Request) {
	switch entryIDParam(r) {
	case HappyEntryID, FlakyEntryID:
		serveFile(w, "entry_history.json")
	case DownEntryID:
		w.WriteHeader(http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *FakeFPLServer) standingsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID, _ := strconv.ParseInt(chi.URLParam(r, "leagueID"), 10, 32)
	if int32(leagueID) != TestLeagueID {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch r.URL.Query().Get("page") {
	case "", "1":
		serveFile(w, "standings_9001_page1.json")
	case "2":
		serveFile(w, "standings_9001_page2.json")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *FakeFPLServer) liveHandler(w http.ResponseWriter, r *http.Request) {
	gameweekID, _ := strconv.ParseInt(chi.URLParam(r, "gameweekID"), 10, 32)
	if int32(gameweekID) != LiveGameweekID {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, "live_2.json")
}

// failFlaky burns one of the flaky entry's two failures and reports whether
// this request should fail.
func (f *FakeFPLServer) failFlaky() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flakyFailures < 2 {
		f.flakyFailures++
		return true
	}
	return false
}

func entryIDParam(r *http.Request) int32 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "entryID"), 10, 32)
	return int32(id)
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile(fmt.Sprintf("fpldata/%s", name))
	if err != nil {
		log.Printf("error reading fpldata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
