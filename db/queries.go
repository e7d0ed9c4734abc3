package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bcheye/fantasy-foundry/model"
)

func (db *postgresDB) ListPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	const query = `SELECT player_id, first_name, second_name, name, team, position_type_id,
				cost, total_points, selected_by_percent, minutes, goals_scored,
				assists, clean_sheets, yellow_cards, red_cards
			FROM fpl.players
			ORDER BY player_id
			LIMIT @limit`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, limit)
	for rows.Next() {
		var p model.Player
		err := rows.Scan(&p.ID, &p.FirstName, &p.SecondName, &p.Name, &p.TeamID,
			&p.PositionTypeID, &p.Cost, &p.TotalPoints, &p.SelectedByPercent,
			&p.Minutes, &p.GoalsScored, &p.Assists, &p.CleanSheets,
			&p.YellowCards, &p.RedCards)
		if err != nil {
			return nil, fmt.Errorf("error scanning player: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetTopPlayers(ctx context.Context, positionTypeID int32, limit int) ([]model.TopPlayer, error) {
	const query = `SELECT p.player_id, p.name, p.total_points, p.cost,
				pos.singular_name, t.name
			FROM fpl.players p
			JOIN fpl.positions pos ON p.position_type_id = pos.position_type_id
			JOIN fpl.teams t ON p.team = t.team_id
			WHERE (@positionTypeID = 0 OR p.position_type_id = @positionTypeID)
			ORDER BY p.total_points DESC
			LIMIT @limit`

	args := pgx.NamedArgs{
		"positionTypeID": positionTypeID,
		"limit":          limit,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying top players: %w", err)
	}
	defer rows.Close()

	results := make([]model.TopPlayer, 0, limit)
	for rows.Next() {
		var tp model.TopPlayer
		err := rows.Scan(&tp.PlayerID, &tp.PlayerName, &tp.TotalPoints, &tp.Cost,
			&tp.Position, &tp.Team)
		if err != nil {
			return nil, fmt.Errorf("error scanning top player: %w", err)
		}
		results = append(results, tp)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetGameweekHistory(ctx context.Context, entryID int32) ([]model.GameweekHistory, error) {
	const query = `SELECT entry_id, gameweek, points, total_points, overall_rank,
				team_value, cost, points_on_bench
			FROM fpl.gameweek_history
			WHERE entry_id=@entryID
			ORDER BY gameweek`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"entryID": entryID})
	if err != nil {
		return nil, fmt.Errorf("error querying gameweek history: %w", err)
	}
	defer rows.Close()

	results := make([]model.GameweekHistory, 0, 38)
	for rows.Next() {
		var gw model.GameweekHistory
		err := rows.Scan(&gw.EntryID, &gw.Gameweek, &gw.Points, &gw.TotalPoints,
			&gw.OverallRank, &gw.TeamValue, &gw.Cost, &gw.PointsOnBench)
		if err != nil {
			return nil, fmt.Errorf("error scanning gameweek history: %w", err)
		}
		results = append(results, gw)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetCurrentGameweek(ctx context.Context) (*model.Gameweek, error) {
	const query = `SELECT gameweek_id, name, deadline_time, average_entry_score,
				finished, data_checked, is_current, is_next
			FROM fpl.gameweeks
			WHERE is_current`

	var gw model.Gameweek
	var deadline pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query)
	err := row.Scan(&gw.ID, &gw.Name, &deadline, &gw.AverageEntryScore,
		&gw.Finished, &gw.DataChecked, &gw.IsCurrent, &gw.IsNext)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoCurrentGameweek
		}
		return nil, fmt.Errorf("error querying current gameweek: %w", err)
	}
	gw.DeadlineTime = deadline.Time
	return &gw, nil
}

func (db *postgresDB) GetOverview(ctx context.Context, entryID, gameweekID int32) (*model.Overview, error) {
	const query = `SELECT entry_id, current_gameweek, overall_points, overall_rank,
				gameweek_points, team_value
			FROM fpl.overview
			WHERE entry_id=@entryID AND current_gameweek=@gameweekID`

	args := pgx.NamedArgs{
		"entryID":    entryID,
		"gameweekID": gameweekID,
	}
	var o model.Overview
	row := db.pool.QueryRow(ctx, query, args)
	err := row.Scan(&o.EntryID, &o.CurrentGameweek, &o.OverallPoints,
		&o.OverallRank, &o.GameweekPoints, &o.TeamValue)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOverviewNotFound
		}
		return nil, fmt.Errorf("error querying overview: %w", err)
	}
	return &o, nil
}

func (db *postgresDB) GetMiniLeagueSummaries(ctx context.Context, entryID int32) ([]model.MiniLeagueSummary, error) {
	const query = `SELECT ml.league_id, ml.name, ml.created, ml.league_type,
				mle.rank, mle.total, latest.latest_gw, s.points
			FROM fpl.mini_leagues ml
			JOIN fpl.mini_league_entries mle
				ON ml.league_id = mle.league_id AND mle.entry_id = @entryID
			JOIN (
				SELECT league_id, MAX(gameweek) AS latest_gw
				FROM fpl.mini_league_gameweek_scores
				GROUP BY league_id
			) latest ON ml.league_id = latest.league_id
			JOIN fpl.mini_league_gameweek_scores s
				ON s.league_id = ml.league_id
				AND s.entry_id = @entryID
				AND s.gameweek = latest.latest_gw
			WHERE ml.entry_id = @entryID`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"entryID": entryID})
	if err != nil {
		return nil, fmt.Errorf("error querying mini league summaries: %w", err)
	}
	defer rows.Close()

	results := make([]model.MiniLeagueSummary, 0, 8)
	for rows.Next() {
		var s model.MiniLeagueSummary
		var created pgtype.Timestamptz
		err := rows.Scan(&s.LeagueID, &s.Name, &created, &s.LeagueType,
			&s.Rank, &s.Total, &s.LatestGameweek, &s.LatestGWPoints)
		if err != nil {
			return nil, fmt.Errorf("error scanning mini league summary: %w", err)
		}
		s.Created = created.Time
		results = append(results, s)
	}
	return results, rows.Err()
}

func (db *postgresDB) ListInvitationalLeagues(ctx context.Context, excluded []int32) ([]model.MiniLeague, error) {
	const query = `SELECT DISTINCT ON (league_id) entry_id, league_id, name, created, league_type
			FROM fpl.mini_leagues
			WHERE league_type=@leagueType AND league_id != ALL(@excluded)
			ORDER BY league_id`

	if excluded == nil {
		excluded = []int32{}
	}
	args := pgx.NamedArgs{
		"leagueType": model.LeagueTypeInvitational,
		"excluded":   excluded,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying invitational leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.MiniLeague, 0, 8)
	for rows.Next() {
		var l model.MiniLeague
		var created pgtype.Timestamptz
		err := rows.Scan(&l.EntryID, &l.LeagueID, &l.Name, &created, &l.LeagueType)
		if err != nil {
			return nil, fmt.Errorf("error scanning invitational league: %w", err)
		}
		l.Created = created.Time
		results = append(results, l)
	}
	return results, rows.Err()
}
