package fpl

import (
	"fmt"

	"github.com/bcheye/fantasy-foundry/model"
)

// Entry is the entry/{id}/ payload: a manager's profile and the leagues they
// belong to.
type Entry struct {
	ID                 int32        `json:"id"`
	Name               string       `json:"name"`
	PlayerFirstName    string       `json:"player_first_name"`
	PlayerLastName     string       `json:"player_last_name"`
	SummaryOverallPts  int32        `json:"summary_overall_points"`
	SummaryOverallRank int32        `json:"summary_overall_rank"`
	SummaryEventPts    int32        `json:"summary_event_points"`
	CurrentEvent       int32        `json:"current_event"`
	LastDeadlineValue  int32        `json:"last_deadline_value"`
	Leagues            EntryLeagues `json:"leagues"`
}

type EntryLeagues struct {
	Classic []ClassicLeague `json:"classic"`
}

type ClassicLeague struct {
	ID         int32  `json:"id"`
	Name       string `json:"name"`
	Created    string `json:"created"`
	LeagueType string `json:"league_type"`
	EntryRank  int32  `json:"entry_rank"`
}

// PlayerName is the manager's full name as stored in league entry rows.
func (e *Entry) PlayerName() string {
	return fmt.Sprintf("%s %s", e.PlayerFirstName, e.PlayerLastName)
}

// ToOverview maps the profile summary to an overview row keyed by the entry's
// current gameweek.
func (e *Entry) ToOverview() (*model.Overview, error) {
	if e.ID == 0 {
		return nil, fmt.Errorf("entry missing id: %w", ErrMalformedRecord)
	}
	return &model.Overview{
		EntryID:         e.ID,
		CurrentGameweek: e.CurrentEvent,
		OverallPoints:   e.SummaryOverallPts,
		OverallRank:     e.SummaryOverallRank,
		GameweekPoints:  e.SummaryEventPts,
		TeamValue:       e.LastDeadlineValue,
	}, nil
}

// ToMiniLeagues maps the classic league memberships to mini-league rows owned
// by this entry. Leagues with an unparseable creation timestamp get a zero
// time rather than failing the whole profile.
func (e *Entry) ToMiniLeagues() ([]model.MiniLeague, error) {
	if e.ID == 0 {
		return nil, fmt.Errorf("entry missing id: %w", ErrMalformedRecord)
	}
	result := make([]model.MiniLeague, 0, len(e.Leagues.Classic))
	for _, l := range e.Leagues.Classic {
		if l.ID == 0 {
			return nil, fmt.Errorf("league %q for entry %d missing id: %w", l.Name, e.ID, ErrMalformedRecord)
		}
		ml := model.MiniLeague{
			EntryID:    e.ID,
			LeagueID:   l.ID,
			Name:       l.Name,
			LeagueType: l.LeagueType,
		}
		if l.Created != "" {
			if created, err := parseTimestamp(l.Created); err == nil {
				ml.Created = created
			}
		}
		result = append(result, ml)
	}
	return result, nil
}

// ToMiniLeagueEntries maps the profile to one standing row per classic league
// membership.
func (e *Entry) ToMiniLeagueEntries() ([]model.MiniLeagueEntry, error) {
	if e.ID == 0 {
		return nil, fmt.Errorf("entry missing id: %w", ErrMalformedRecord)
	}
	result := make([]model.MiniLeagueEntry, 0, len(e.Leagues.Classic))
	for _, l := range e.Leagues.Classic {
		if l.ID == 0 {
			return nil, fmt.Errorf("league %q for entry %d missing id: %w", l.Name, e.ID, ErrMalformedRecord)
		}
		result = append(result, model.MiniLeagueEntry{
			EntryID:    e.ID,
			LeagueID:   l.ID,
			EntryName:  e.Name,
			PlayerName: e.PlayerName(),
			Rank:       l.EntryRank,
			Total:      e.SummaryOverallPts,
		})
	}
	return result, nil
}
