package model

// Player holds a footballer's reference data plus the cumulative season
// statistics that change on every bootstrap or live-gameweek sync. Cost is in
// millions, the upstream API reports tenths.
type Player struct {
	ID                int32   `json:"player_id"`
	FirstName         string  `json:"first_name"`
	SecondName        string  `json:"second_name"`
	Name              string  `json:"name"`
	TeamID            int32   `json:"team"`
	PositionTypeID    int32   `json:"position_type_id"`
	Cost              float64 `json:"cost"`
	TotalPoints       int32   `json:"total_points"`
	SelectedByPercent string  `json:"selected_by_percent"`
	Minutes           int32   `json:"minutes"`
	GoalsScored       int32   `json:"goals_scored"`
	Assists           int32   `json:"assists"`
	CleanSheets       int32   `json:"clean_sheets"`
	YellowCards       int32   `json:"yellow_cards"`
	RedCards          int32   `json:"red_cards"`
}

// PlayerStats is the volatile subset of player columns updated by a
// live-gameweek sync. It is applied as a partial update, never a full upsert.
type PlayerStats struct {
	PlayerID    int32 `json:"player_id"`
	Minutes     int32 `json:"minutes"`
	GoalsScored int32 `json:"goals_scored"`
	Assists     int32 `json:"assists"`
	CleanSheets int32 `json:"clean_sheets"`
	YellowCards int32 `json:"yellow_cards"`
	RedCards    int32 `json:"red_cards"`
}

// TopPlayer is a row of the ranked top-performing-players view, joined across
// players, positions and teams.
type TopPlayer struct {
	PlayerID    int32   `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	TotalPoints int32   `json:"total_points"`
	Cost        float64 `json:"cost"`
	Position    string  `json:"position"`
	Team        string  `json:"team"`
}
