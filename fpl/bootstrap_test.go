package fpl

import (
	"errors"
	"testing"
	"time"
)

func TestToPlayersConvertsCost(t *testing.T) {
	b := &Bootstrap{
		Players: []BootstrapPlayer{
			{ID: 58, WebName: "Raya", Team: 1, ElementType: 1, NowCost: 55},
			{ID: 233, WebName: "M.Salah", Team: 2, ElementType: 3, NowCost: 131},
		},
	}

	players, err := b.ToPlayers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if players[0].Cost != 5.5 {
		t.Errorf("expected cost 5.5, got %v", players[0].Cost)
	}
	if players[1].Cost != 13.1 {
		t.Errorf("expected cost 13.1, got %v", players[1].Cost)
	}
}

func TestToPlayersMissingID(t *testing.T) {
	b := &Bootstrap{
		Players: []BootstrapPlayer{{WebName: "Nobody"}},
	}

	_, err := b.ToPlayers()
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got: %v", err)
	}
}

func TestToGameweeksDeadlineFormats(t *testing.T) {
	b := &Bootstrap{
		Gameweeks: []BootstrapGameweek{
			{ID: 1, Name: "Gameweek 1", DeadlineTime: "2025-08-15T17:30:00Z"},
			{ID: 2, Name: "Gameweek 2", DeadlineTime: "2025-08-22T17:30:00"},
		},
	}

	gameweeks, err := b.ToGameweeks()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want1 := time.Date(2025, 8, 15, 17, 30, 0, 0, time.UTC)
	if !gameweeks[0].DeadlineTime.Equal(want1) {
		t.Errorf("expected deadline %v, got %v", want1, gameweeks[0].DeadlineTime)
	}

	// Without a zone marker the timestamp is taken as UTC.
	want2 := time.Date(2025, 8, 22, 17, 30, 0, 0, time.UTC)
	if !gameweeks[1].DeadlineTime.Equal(want2) {
		t.Errorf("expected deadline %v, got %v", want2, gameweeks[1].DeadlineTime)
	}
}

func TestToGameweeksBadDeadline(t *testing.T) {
	b := &Bootstrap{
		Gameweeks: []BootstrapGameweek{
			{ID: 1, Name: "Gameweek 1", DeadlineTime: "next friday"},
		},
	}

	_, err := b.ToGameweeks()
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got: %v", err)
	}
}
