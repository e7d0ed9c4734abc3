package fpl

import (
	"errors"
	"testing"

	"github.com/bcheye/fantasy-foundry/model"
)

func testEntry() *Entry {
	return &Entry{
		ID:                 1001,
		Name:               "Foundry FC",
		PlayerFirstName:    "Ada",
		PlayerLastName:     "Mensah",
		SummaryOverallPts:  128,
		SummaryOverallRank: 245301,
		SummaryEventPts:    66,
		CurrentEvent:       2,
		LastDeadlineValue:  1003,
		Leagues: EntryLeagues{
			Classic: []ClassicLeague{
				{ID: 9001, Name: "The Office League", Created: "2025-07-20T09:15:00Z", LeagueType: "x", EntryRank: 2},
				{ID: 314, Name: "Overall", Created: "2025-07-01T00:00:00Z", LeagueType: "s", EntryRank: 245301},
			},
		},
	}
}

func TestToOverview(t *testing.T) {
	o, err := testEntry().ToOverview()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.EntryID != 1001 || o.CurrentGameweek != 2 {
		t.Errorf("expected overview keyed (1001, 2), got (%d, %d)", o.EntryID, o.CurrentGameweek)
	}
	if o.OverallPoints != 128 || o.GameweekPoints != 66 {
		t.Errorf("unexpected points in overview: %+v", o)
	}
}

func TestToMiniLeagues(t *testing.T) {
	leagues, err := testEntry().ToMiniLeagues()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(leagues) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(leagues))
	}
	if leagues[0].LeagueType != model.LeagueTypeInvitational {
		t.Errorf("expected league type %q, got %q", model.LeagueTypeInvitational, leagues[0].LeagueType)
	}
	if leagues[0].Created.IsZero() {
		t.Error("expected created timestamp to be parsed")
	}
}

func TestToMiniLeaguesBadCreated(t *testing.T) {
	e := testEntry()
	e.Leagues.Classic[0].Created = "garbage"

	leagues, err := e.ToMiniLeagues()
	if err != nil {
		t.Fatalf("a bad created timestamp should not be fatal: %v", err)
	}
	if !leagues[0].Created.IsZero() {
		t.Errorf("expected zero created time, got %v", leagues[0].Created)
	}
}

func TestToMiniLeagueEntries(t *testing.T) {
	entries, err := testEntry().ToMiniLeagueEntries()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].PlayerName != "Ada Mensah" {
		t.Errorf("expected player name 'Ada Mensah', got %q", entries[0].PlayerName)
	}
	if entries[0].Rank != 2 || entries[0].Total != 128 {
		t.Errorf("unexpected standing: %+v", entries[0])
	}
}

func TestEntryMissingID(t *testing.T) {
	e := &Entry{}
	if _, err := e.ToOverview(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord from ToOverview, got: %v", err)
	}
	if _, err := e.ToMiniLeagues(); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord from ToMiniLeagues, got: %v", err)
	}
}
