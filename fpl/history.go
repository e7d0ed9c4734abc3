package fpl

import (
	"fmt"

	"github.com/bcheye/fantasy-foundry/model"
)

// EntryHistory is the entry/{id}/history/ payload. Only the current-season
// rounds are used.
type EntryHistory struct {
	Current []HistoryGameweek `json:"current"`
}

type HistoryGameweek struct {
	Event              int32 `json:"event"`
	Points             int32 `json:"points"`
	TotalPoints        int32 `json:"total_points"`
	OverallRank        int32 `json:"overall_rank"`
	Value              int32 `json:"value"`
	EventTransfersCost int32 `json:"event_transfers_cost"`
	PointsOnBench      int32 `json:"points_on_bench"`
}

// ToGameweekHistory maps the season rounds to history rows for the entry.
// Rounds absent from the payload are simply absent, never zero-backfilled.
func (h *EntryHistory) ToGameweekHistory(entryID int32) ([]model.GameweekHistory, error) {
	result := make([]model.GameweekHistory, 0, len(h.Current))
	for _, gw := range h.Current {
		if gw.Event == 0 {
			return nil, fmt.Errorf("history row for entry %d missing event: %w", entryID, ErrMalformedRecord)
		}
		result = append(result, model.GameweekHistory{
			EntryID:       entryID,
			Gameweek:      gw.Event,
			Points:        gw.Points,
			TotalPoints:   gw.TotalPoints,
			OverallRank:   gw.OverallRank,
			TeamValue:     gw.Value,
			Cost:          gw.EventTransfersCost,
			PointsOnBench: gw.PointsOnBench,
		})
	}
	return result, nil
}

// ToGameweekScores maps the season rounds to per-league score rows.
func (h *EntryHistory) ToGameweekScores(entryID, leagueID int32) ([]model.MiniLeagueGameweekScore, error) {
	result := make([]model.MiniLeagueGameweekScore, 0, len(h.Current))
	for _, gw := range h.Current {
		if gw.Event == 0 {
			return nil, fmt.Errorf("history row for entry %d missing event: %w", entryID, ErrMalformedRecord)
		}
		result = append(result, model.MiniLeagueGameweekScore{
			EntryID:  entryID,
			LeagueID: leagueID,
			Gameweek: gw.Event,
			Points:   gw.Points,
			Cost:     gw.EventTransfersCost,
		})
	}
	return result, nil
}
