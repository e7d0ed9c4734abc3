package fpl

import (
	"fmt"
	"time"

	"github.com/bcheye/fantasy-foundry/model"
)

// Bootstrap is the bootstrap-static payload: every piece of reference data for
// the current season in one response.
type Bootstrap struct {
	Teams     []BootstrapTeam     `json:"teams"`
	Positions []BootstrapPosition `json:"element_types"`
	Players   []BootstrapPlayer   `json:"elements"`
	Gameweeks []BootstrapGameweek `json:"events"`
}

type BootstrapTeam struct {
	ID                  int32  `json:"id"`
	Name                string `json:"name"`
	ShortName           string `json:"short_name"`
	StrengthOverallHome int32  `json:"strength_overall_home"`
	StrengthOverallAway int32  `json:"strength_overall_away"`
}

type BootstrapPosition struct {
	ID           int32  `json:"id"`
	SingularName string `json:"singular_name"`
	PluralName   string `json:"plural_name"`
}

type BootstrapPlayer struct {
	ID                int32  `json:"id"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	WebName           string `json:"web_name"`
	Team              int32  `json:"team"`
	ElementType       int32  `json:"element_type"`
	NowCost           int32  `json:"now_cost"`
	TotalPoints       int32  `json:"total_points"`
	SelectedByPercent string `json:"selected_by_percent"`
	Minutes           int32  `json:"minutes"`
	GoalsScored       int32  `json:"goals_scored"`
	Assists           int32  `json:"assists"`
	CleanSheets       int32  `json:"clean_sheets"`
	YellowCards       int32  `json:"yellow_cards"`
	RedCards          int32  `json:"red_cards"`
}

type BootstrapGameweek struct {
	ID                int32  `json:"id"`
	Name              string `json:"name"`
	DeadlineTime      string `json:"deadline_time"`
	AverageEntryScore int32  `json:"average_entry_score"`
	Finished          bool   `json:"finished"`
	DataChecked       bool   `json:"data_checked"`
	IsCurrent         bool   `json:"is_current"`
	IsNext            bool   `json:"is_next"`
}

// ToTeams maps the teams sub-collection to model rows.
func (b *Bootstrap) ToTeams() ([]model.Team, error) {
	result := make([]model.Team, 0, len(b.Teams))
	for _, t := range b.Teams {
		if t.ID == 0 {
			return nil, fmt.Errorf("team %q missing id: %w", t.Name, ErrMalformedRecord)
		}
		result = append(result, model.Team{
			ID:                  t.ID,
			Name:                t.Name,
			ShortName:           t.ShortName,
			StrengthOverallHome: t.StrengthOverallHome,
			StrengthOverallAway: t.StrengthOverallAway,
		})
	}
	return result, nil
}

// ToPositions maps the element_types sub-collection to model rows.
func (b *Bootstrap) ToPositions() ([]model.Position, error) {
	result := make([]model.Position, 0, len(b.Positions))
	for _, p := range b.Positions {
		if p.ID == 0 {
			return nil, fmt.Errorf("position %q missing id: %w", p.SingularName, ErrMalformedRecord)
		}
		result = append(result, model.Position{
			ID:           p.ID,
			SingularName: p.SingularName,
			PluralName:   p.PluralName,
		})
	}
	return result, nil
}

// ToPlayers maps the elements sub-collection to model rows, converting
// now_cost from tenths to millions.
func (b *Bootstrap) ToPlayers() ([]model.Player, error) {
	result := make([]model.Player, 0, len(b.Players))
	for _, p := range b.Players {
		if p.ID == 0 {
			return nil, fmt.Errorf("player %q missing id: %w", p.WebName, ErrMalformedRecord)
		}
		result = append(result, model.Player{
			ID:                p.ID,
			FirstName:         p.FirstName,
			SecondName:        p.SecondName,
			Name:              p.WebName,
			TeamID:            p.Team,
			PositionTypeID:    p.ElementType,
			Cost:              float64(p.NowCost) / 10,
			TotalPoints:       p.TotalPoints,
			SelectedByPercent: p.SelectedByPercent,
			Minutes:           p.Minutes,
			GoalsScored:       p.GoalsScored,
			Assists:           p.Assists,
			CleanSheets:       p.CleanSheets,
			YellowCards:       p.YellowCards,
			RedCards:          p.RedCards,
		})
	}
	return result, nil
}

// ToGameweeks maps the events sub-collection to model rows.
func (b *Bootstrap) ToGameweeks() ([]model.Gameweek, error) {
	result := make([]model.Gameweek, 0, len(b.Gameweeks))
	for _, gw := range b.Gameweeks {
		if gw.ID == 0 {
			return nil, fmt.Errorf("gameweek %q missing id: %w", gw.Name, ErrMalformedRecord)
		}
		deadline, err := parseTimestamp(gw.DeadlineTime)
		if err != nil {
			return nil, fmt.Errorf("gameweek %d bad deadline %q: %w", gw.ID, gw.DeadlineTime, ErrMalformedRecord)
		}
		result = append(result, model.Gameweek{
			ID:                gw.ID,
			Name:              gw.Name,
			DeadlineTime:      deadline,
			AverageEntryScore: gw.AverageEntryScore,
			Finished:          gw.Finished,
			DataChecked:       gw.DataChecked,
			IsCurrent:         gw.IsCurrent,
			IsNext:            gw.IsNext,
		})
	}
	return result, nil
}

// parseTimestamp parses an ISO-8601 timestamp, with or without the trailing
// zone marker the FPL API sometimes omits. Zoneless values are taken as UTC.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
}
