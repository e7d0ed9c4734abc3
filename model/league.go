package model

import "time"

// LeagueTypeInvitational marks a private/invitational classic mini-league.
const LeagueTypeInvitational = "x"

// MiniLeague is a league membership row, keyed by (entry, league). The entry
// id is the manager the row was discovered through.
type MiniLeague struct {
	EntryID    int32     `json:"entry_id"`
	LeagueID   int32     `json:"league_id"`
	Name       string    `json:"name"`
	Created    time.Time `json:"created"`
	LeagueType string    `json:"league_type"`
}

// MiniLeagueEntry is one manager's standing within a league.
type MiniLeagueEntry struct {
	EntryID    int32  `json:"entry_id"`
	LeagueID   int32  `json:"league_id"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Rank       int32  `json:"rank"`
	Total      int32  `json:"total"`
}

// MiniLeagueGameweekScore is one manager's score for one gameweek within a
// league, keyed by (entry, gameweek, league).
type MiniLeagueGameweekScore struct {
	EntryID  int32 `json:"entry_id"`
	LeagueID int32 `json:"league_id"`
	Gameweek int32 `json:"gameweek"`
	Points   int32 `json:"points"`
	Cost     int32 `json:"cost"`
}

// MiniLeagueSummary is a row of the mini-leagues view: league metadata joined
// with the requesting entry's rank, total and latest-gameweek points.
type MiniLeagueSummary struct {
	LeagueID       int32     `json:"league_id"`
	Name           string    `json:"name"`
	Created        time.Time `json:"created"`
	LeagueType     string    `json:"league_type"`
	Rank           int32     `json:"rank"`
	Total          int32     `json:"total"`
	LatestGameweek int32     `json:"latest_gw"`
	LatestGWPoints int32     `json:"latest_gw_points"`
}
