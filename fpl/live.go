package fpl

import (
	"fmt"

	"github.com/bcheye/fantasy-foundry/model"
)

// LiveGameweek is the event/{id}/live/ payload: in-round statistics for every
// player.
type LiveGameweek struct {
	Elements []LiveElement `json:"elements"`
}

type LiveElement struct {
	ID    int32     `json:"id"`
	Stats LiveStats `json:"stats"`
}

type LiveStats struct {
	Minutes     int32 `json:"minutes"`
	GoalsScored int32 `json:"goals_scored"`
	Assists     int32 `json:"assists"`
	CleanSheets int32 `json:"clean_sheets"`
	YellowCards int32 `json:"yellow_cards"`
	RedCards    int32 `json:"red_cards"`
}

// ToPlayerStats maps the live elements to partial stat updates.
func (l *LiveGameweek) ToPlayerStats() ([]model.PlayerStats, error) {
	result := make([]model.PlayerStats, 0, len(l.Elements))
	for _, e := range l.Elements {
		if e.ID == 0 {
			return nil, fmt.Errorf("live element missing id: %w", ErrMalformedRecord)
		}
		result = append(result, model.PlayerStats{
			PlayerID:    e.ID,
			Minutes:     e.Stats.Minutes,
			GoalsScored: e.Stats.GoalsScored,
			Assists:     e.Stats.Assists,
			CleanSheets: e.Stats.CleanSheets,
			YellowCards: e.Stats.YellowCards,
			RedCards:    e.Stats.RedCards,
		})
	}
	return result, nil
}
