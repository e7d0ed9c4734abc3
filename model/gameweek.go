package model

import "time"

// Gameweek is one scoring round of the season. The upstream source guarantees
// at most one row with IsCurrent set, the database does not enforce it.
type Gameweek struct {
	ID                int32     `json:"gameweek_id"`
	Name              string    `json:"name"`
	DeadlineTime      time.Time `json:"deadline_time"`
	AverageEntryScore int32     `json:"average_entry_score"`
	Finished          bool      `json:"finished"`
	DataChecked       bool      `json:"data_checked"`
	IsCurrent         bool      `json:"is_current"`
	IsNext            bool      `json:"is_next"`
}
