package db_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/bcheye/fantasy-foundry/db"
	"github.com/bcheye/fantasy-foundry/model"
	"github.com/bcheye/fantasy-foundry/testutils"
)

var testDB *testutils.TestDB

func TestMain(m *testing.M) {
	testDB = testutils.NewTestDB()
	code := m.Run()
	testDB.Shutdown()
	os.Exit(code)
}

func TestListPlayers(t *testing.T) {
	players, err := testDB.DB.ListPlayers(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != len(testutils.TestPlayers) {
		t.Fatalf("expected %d players, got %d", len(testutils.TestPlayers), len(players))
	}

	// Results are ordered by player id.
	if players[0].ID != 58 || players[0].Name != "Raya" {
		t.Errorf("unexpected first player: %+v", players[0])
	}
	if players[0].Cost != 5.5 {
		t.Errorf("expected cost 5.5, got %v", players[0].Cost)
	}
}

func TestUpsertPlayersLastWriteWins(t *testing.T) {
	ctx := context.Background()

	updated := testutils.TestPlayers[1] // Saka
	updated.TotalPoints = 25
	updated.Cost = 10.4

	if err := testDB.DB.UpsertPlayers(ctx, []model.Player{updated}); err != nil {
		t.Fatalf("unexpected error re-upserting: %v", err)
	}

	players, err := testDB.DB.ListPlayers(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range players {
		if p.ID == updated.ID {
			if p.TotalPoints != 25 || p.Cost != 10.4 {
				t.Errorf("expected updated values, got points=%d cost=%v", p.TotalPoints, p.Cost)
			}
		}
	}

	// Restore the seed row for the other tests.
	if err := testDB.DB.UpsertPlayers(ctx, testutils.TestPlayers); err != nil {
		t.Fatalf("unexpected error restoring seed data: %v", err)
	}
}

func TestGetTopPlayers(t *testing.T) {
	ctx := context.Background()

	top, err := testDB.DB.GetTopPlayers(ctx, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 players, got %d", len(top))
	}
	if top[0].PlayerName != "M.Salah" || top[0].TotalPoints != 29 {
		t.Errorf("unexpected leader: %+v", top[0])
	}
	if top[0].Team != "Liverpool" || top[0].Position != "Midfielder" {
		t.Errorf("expected joined team and position names, got: %+v", top[0])
	}

	// Position 1 only has the goalkeeper.
	keepers, err := testDB.DB.GetTopPlayers(ctx, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keepers) != 1 || keepers[0].PlayerName != "Raya" {
		t.Errorf("expected only Raya for position 1, got: %+v", keepers)
	}
}

func TestGetCurrentGameweek(t *testing.T) {
	gw, err := testDB.DB.GetCurrentGameweek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.ID != 2 || !gw.IsCurrent {
		t.Errorf("expected gameweek 2 to be current, got: %+v", gw)
	}
}

func TestOverview(t *testing.T) {
	ctx := context.Background()

	row := model.Overview{
		EntryID: 1001, CurrentGameweek: 2, OverallPoints: 128,
		OverallRank: 245301, GameweekPoints: 66, TeamValue: 1003,
	}
	if err := testDB.DB.UpsertOverview(ctx, []model.Overview{row}); err != nil {
		t.Fatalf("unexpected error upserting overview: %v", err)
	}

	got, err := testDB.DB.GetOverview(ctx, 1001, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != row {
		t.Errorf("expected %+v, got %+v", row, *got)
	}

	// Re-upserting the same key with new values overwrites.
	row.GameweekPoints = 70
	if err := testDB.DB.UpsertOverview(ctx, []model.Overview{row}); err != nil {
		t.Fatalf("unexpected error re-upserting overview: %v", err)
	}
	got, err = testDB.DB.GetOverview(ctx, 1001, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GameweekPoints != 70 {
		t.Errorf("expected gameweek points 70, got %d", got.GameweekPoints)
	}

	if _, err := testDB.DB.GetOverview(ctx, 555555, 2); !errors.Is(err, db.ErrOverviewNotFound) {
		t.Errorf("expected ErrOverviewNotFound, got: %v", err)
	}
}

func TestGameweekHistory(t *testing.T) {
	ctx := context.Background()

	rows := []model.GameweekHistory{
		{EntryID: 1001, Gameweek: 1, Points: 62, TotalPoints: 62, TeamValue: 1000, PointsOnBench: 7},
		{EntryID: 1001, Gameweek: 2, Points: 66, TotalPoints: 128, TeamValue: 1003, Cost: 4},
	}
	if err := testDB.DB.UpsertGameweekHistory(ctx, rows); err != nil {
		t.Fatalf("unexpected error upserting history: %v", err)
	}

	got, err := testDB.DB.GetGameweekHistory(ctx, 1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Gameweek != 1 || got[1].Gameweek != 2 {
		t.Errorf("expected rows ordered by gameweek, got: %+v", got)
	}
	if got[1].Cost != 4 {
		t.Errorf("expected transfer cost 4 in gameweek 2, got %d", got[1].Cost)
	}
}

func TestMiniLeagueSummaries(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 7, 20, 9, 15, 0, 0, time.UTC)

	leagues := []model.MiniLeague{
		{EntryID: 1001, LeagueID: 9001, Name: "The Office League", Created: created, LeagueType: "x"},
	}
	entries := []model.MiniLeagueEntry{
		{EntryID: 1001, LeagueID: 9001, EntryName: "Foundry FC", PlayerName: "Ada Mensah", Rank: 2, Total: 128},
	}
	scores := []model.MiniLeagueGameweekScore{
		{EntryID: 1001, LeagueID: 9001, Gameweek: 1, Points: 62},
		{EntryID: 1001, LeagueID: 9001, Gameweek: 2, Points: 66, Cost: 4},
	}

	if err := testDB.DB.UpsertMiniLeagues(ctx, leagues); err != nil {
		t.Fatalf("unexpected error upserting leagues: %v", err)
	}
	if err := testDB.DB.UpsertMiniLeagueEntries(ctx, entries); err != nil {
		t.Fatalf("unexpected error upserting entries: %v", err)
	}
	if err := testDB.DB.UpsertMiniLeagueGameweekScores(ctx, scores); err != nil {
		t.Fatalf("unexpected error upserting scores: %v", err)
	}

	summaries, err := testDB.DB.GetMiniLeagueSummaries(ctx, 1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}

	s := summaries[0]
	if s.LeagueID != 9001 || s.Rank != 2 || s.Total != 128 {
		t.Errorf("unexpected summary: %+v", s)
	}
	// The latest gameweek's points come from the scores table.
	if s.LatestGameweek != 2 || s.LatestGWPoints != 66 {
		t.Errorf("expected latest gameweek 2 with 66 points, got: %+v", s)
	}
}

func TestListInvitationalLeagues(t *testing.T) {
	ctx := context.Background()

	leagues := []model.MiniLeague{
		{EntryID: 1001, LeagueID: 9100, Name: "Keep Me", LeagueType: "x"},
		{EntryID: 1001, LeagueID: 9101, Name: "Exclude Me", LeagueType: "x"},
		{EntryID: 1001, LeagueID: 9102, Name: "Public", LeagueType: "s"},
	}
	if err := testDB.DB.UpsertMiniLeagues(ctx, leagues); err != nil {
		t.Fatalf("unexpected error upserting leagues: %v", err)
	}

	got, err := testDB.DB.ListInvitationalLeagues(ctx, []int32{9101})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, l := range got {
		if l.LeagueID == 9101 {
			t.Error("excluded league 9101 was returned")
		}
		if l.LeagueType != model.LeagueTypeInvitational {
			t.Errorf("public league leaked into results: %+v", l)
		}
	}

	found := false
	for _, l := range got {
		if l.LeagueID == 9100 {
			found = true
		}
	}
	if !found {
		t.Error("expected league 9100 in results")
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()

	u := &model.User{
		FirstName:    "Ada",
		LastName:     "Mensah",
		Email:        "ada@example.com",
		PasswordHash: "not-a-real-hash",
		FPLEntryID:   1001,
	}
	if err := testDB.DB.InsertUser(ctx, u); err != nil {
		t.Fatalf("unexpected error inserting user: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected the generated id to be written back")
	}
	if u.Created.IsZero() || u.Updated.IsZero() {
		t.Error("expected timestamps to be set")
	}

	dup := &model.User{Email: "ada@example.com", PasswordHash: "other"}
	if err := testDB.DB.InsertUser(ctx, dup); !errors.Is(err, db.ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got: %v", err)
	}

	got, err := testDB.DB.GetUserByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != u.ID || got.FPLEntryID != 1001 {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := testDB.DB.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, db.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
