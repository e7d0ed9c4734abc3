package fpl

import (
	"fmt"

	"github.com/bcheye/fantasy-foundry/model"
)

// StandingsPage is one page of the leagues-classic standings payload.
type StandingsPage struct {
	League    StandingsLeague `json:"league"`
	Standings Standings       `json:"standings"`
}

type StandingsLeague struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

type Standings struct {
	HasNext bool              `json:"has_next"`
	Page    int               `json:"page"`
	Results []StandingsResult `json:"results"`
}

type StandingsResult struct {
	Entry      int32  `json:"entry"`
	EntryName  string `json:"entry_name"`
	PlayerName string `json:"player_name"`
	Rank       int32  `json:"rank"`
	Total      int32  `json:"total"`
}

// HasNext reports whether the source has a further page.
func (p *StandingsPage) HasNext() bool {
	return p.Standings.HasNext
}

// ToMiniLeague maps the league header to a mini-league row owned by the given
// entry. League type is always invitational on this path, the standings
// payload does not carry it.
func (p *StandingsPage) ToMiniLeague(ownerEntryID int32) (*model.MiniLeague, error) {
	if p.League.ID == 0 {
		return nil, fmt.Errorf("standings league missing id: %w", ErrMalformedRecord)
	}
	ml := &model.MiniLeague{
		EntryID:    ownerEntryID,
		LeagueID:   p.League.ID,
		Name:       p.League.Name,
		LeagueType: model.LeagueTypeInvitational,
	}
	if p.League.Created != "" {
		if created, err := parseTimestamp(p.League.Created); err == nil {
			ml.Created = created
		}
	}
	return ml, nil
}

// ToMiniLeagueEntries maps the page results to standing rows.
func (p *StandingsPage) ToMiniLeagueEntries(leagueID int32) ([]model.MiniLeagueEntry, error) {
	result := make([]model.MiniLeagueEntry, 0, len(p.Standings.Results))
	for _, r := range p.Standings.Results {
		if r.Entry == 0 {
			return nil, fmt.Errorf("standings row %q in league %d missing entry id: %w", r.EntryName, leagueID, ErrMalformedRecord)
		}
		result = append(result, model.MiniLeagueEntry{
			EntryID:    r.Entry,
			LeagueID:   leagueID,
			EntryName:  r.EntryName,
			PlayerName: r.PlayerName,
			Rank:       r.Rank,
			Total:      r.Total,
		})
	}
	return result, nil
}

// MemberIDs returns the entry ids present on this page.
func (p *StandingsPage) MemberIDs() []int32 {
	ids := make([]int32, 0, len(p.Standings.Results))
	for _, r := range p.Standings.Results {
		ids = append(ids, r.Entry)
	}
	return ids
}
