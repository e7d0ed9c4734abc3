package model

// Overview is a manager's season summary, one row per (entry, gameweek).
type Overview struct {
	EntryID         int32 `json:"entry_id"`
	CurrentGameweek int32 `json:"current_gameweek"`
	OverallPoints   int32 `json:"overall_points"`
	OverallRank     int32 `json:"overall_rank"`
	GameweekPoints  int32 `json:"gameweek_points"`
	TeamValue       int32 `json:"team_value"`
}

// GameweekHistory is one gameweek of a manager's season, keyed by
// (entry, gameweek). Only gameweeks present in the upstream payload are
// stored; missing rounds are not backfilled.
type GameweekHistory struct {
	EntryID       int32 `json:"entry_id"`
	Gameweek      int32 `json:"gameweek"`
	Points        int32 `json:"points"`
	TotalPoints   int32 `json:"total_points"`
	OverallRank   int32 `json:"overall_rank"`
	TeamValue     int32 `json:"team_value"`
	Cost          int32 `json:"cost"`
	PointsOnBench int32 `json:"points_on_bench"`
}
