package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bcheye/fantasy-foundry/model"
)

func (db *postgresDB) UpsertTeams(ctx context.Context, teams []model.Team) error {
	const query = `INSERT INTO fpl.teams (team_id, name, short_name, strength_overall_home, strength_overall_away)
		VALUES (@teamID, @name, @shortName, @strengthHome, @strengthAway)
		ON CONFLICT (team_id) DO UPDATE SET
			name=EXCLUDED.name,
			short_name=EXCLUDED.short_name,
			strength_overall_home=EXCLUDED.strength_overall_home,
			strength_overall_away=EXCLUDED.strength_overall_away`

	args := make([]pgx.NamedArgs, 0, len(teams))
	for _, t := range teams {
		args = append(args, pgx.NamedArgs{
			"teamID":       t.ID,
			"name":         t.Name,
			"shortName":    t.ShortName,
			"strengthHome": t.StrengthOverallHome,
			"strengthAway": t.StrengthOverallAway,
		})
	}
	return db.execBatch(ctx, "teams", query, args)
}

func (db *postgresDB) UpsertPositions(ctx context.Context, positions []model.Position) error {
	const query = `INSERT INTO fpl.positions (position_type_id, singular_name, plural_name)
		VALUES (@positionTypeID, @singularName, @pluralName)
		ON CONFLICT (position_type_id) DO UPDATE SET
			singular_name=EXCLUDED.singular_name,
			plural_name=EXCLUDED.plural_name`

	args := make([]pgx.NamedArgs, 0, len(positions))
	for _, p := range positions {
		args = append(args, pgx.NamedArgs{
			"positionTypeID": p.ID,
			"singularName":   p.SingularName,
			"pluralName":     p.PluralName,
		})
	}
	return db.execBatch(ctx, "positions", query, args)
}

func (db *postgresDB) UpsertPlayers(ctx context.Context, players []model.Player) error {
	const query = `INSERT INTO fpl.players (
			player_id, first_name, second_name, name, team, position_type_id,
			cost, total_points, selected_by_percent, minutes, goals_scored,
			assists, clean_sheets, yellow_cards, red_cards
		) VALUES (
			@playerID, @firstName, @secondName, @name, @team, @positionTypeID,
			@cost, @totalPoints, @selectedByPercent, @minutes, @goalsScored,
			@assists, @cleanSheets, @yellowCards, @redCards
		)
		ON CONFLICT (player_id) DO UPDATE SET
			first_name=EXCLUDED.first_name,
			second_name=EXCLUDED.second_name,
			name=EXCLUDED.name,
			team=EXCLUDED.team,
			position_type_id=EXCLUDED.position_type_id,
			cost=EXCLUDED.cost,
			total_points=EXCLUDED.total_points,
			selected_by_percent=EXCLUDED.selected_by_percent,
			minutes=EXCLUDED.minutes,
			goals_scored=EXCLUDED.goals_scored,
			assists=EXCLUDED.assists,
			clean_sheets=EXCLUDED.clean_sheets,
			yellow_cards=EXCLUDED.yellow_cards,
			red_cards=EXCLUDED.red_cards`

	args := make([]pgx.NamedArgs, 0, len(players))
	for _, p := range players {
		args = append(args, pgx.NamedArgs{
			"playerID":          p.ID,
			"firstName":         p.FirstName,
			"secondName":        p.SecondName,
			"name":              p.Name,
			"team":              p.TeamID,
			"positionTypeID":    p.PositionTypeID,
			"cost":              p.Cost,
			"totalPoints":       p.TotalPoints,
			"selectedByPercent": p.SelectedByPercent,
			"minutes":           p.Minutes,
			"goalsScored":       p.GoalsScored,
			"assists":           p.Assists,
			"cleanSheets":       p.CleanSheets,
			"yellowCards":       p.YellowCards,
			"redCards":          p.RedCards,
		})
	}
	return db.execBatch(ctx, "players", query, args)
}

func (db *postgresDB) UpsertGameweeks(ctx context.Context, gameweeks []model.Gameweek) error {
	const query = `INSERT INTO fpl.gameweeks (
			gameweek_id, name, deadline_time, average_entry_score,
			finished, data_checked, is_current, is_next
		) VALUES (
			@gameweekID, @name, @deadlineTime, @averageEntryScore,
			@finished, @dataChecked, @isCurrent, @isNext
		)
		ON CONFLICT (gameweek_id) DO UPDATE SET
			name=EXCLUDED.name,
			deadline_time=EXCLUDED.deadline_time,
			average_entry_score=EXCLUDED.average_entry_score,
			finished=EXCLUDED.finished,
			data_checked=EXCLUDED.data_checked,
			is_current=EXCLUDED.is_current,
			is_next=EXCLUDED.is_next`

	args := make([]pgx.NamedArgs, 0, len(gameweeks))
	for _, gw := range gameweeks {
		args = append(args, pgx.NamedArgs{
			"gameweekID": gw.ID,
			"name":       gw.Name,
			"deadlineTime": pgtype.Timestamptz{
				Time:  gw.DeadlineTime,
				Valid: true,
			},
			"averageEntryScore": gw.AverageEntryScore,
			"finished":          gw.Finished,
			"dataChecked":       gw.DataChecked,
			"isCurrent":         gw.IsCurrent,
			"isNext":            gw.IsNext,
		})
	}
	return db.execBatch(ctx, "gameweeks", query, args)
}

func (db *postgresDB) UpsertOverview(ctx context.Context, rows []model.Overview) error {
	const query = `INSERT INTO fpl.overview (
			entry_id, current_gameweek, overall_points, overall_rank,
			gameweek_points, team_value
		) VALUES (
			@entryID, @currentGameweek, @overallPoints, @overallRank,
			@gameweekPoints, @teamValue
		)
		ON CONFLICT (entry_id, current_gameweek) DO UPDATE SET
			overall_points=EXCLUDED.overall_points,
			overall_rank=EXCLUDED.overall_rank,
			gameweek_points=EXCLUDED.gameweek_points,
			team_value=EXCLUDED.team_value`

	args := make([]pgx.NamedArgs, 0, len(rows))
	for _, o := range rows {
		args = append(args, pgx.NamedArgs{
			"entryID":         o.EntryID,
			"currentGameweek": o.CurrentGameweek,
			"overallPoints":   o.OverallPoints,
			"overallRank":     o.OverallRank,
			"gameweekPoints":  o.GameweekPoints,
			"teamValue":       o.TeamValue,
		})
	}
	return db.execBatch(ctx, "overview", query, args)
}

func (db *postgresDB) UpsertGameweekHistory(ctx context.Context, rows []model.GameweekHistory) error {
	const query = `INSERT INTO fpl.gameweek_history (
			entry_id, gameweek, points, total_points, overall_rank,
			team_value, cost, points_on_bench
		) VALUES (
			@entryID, @gameweek, @points, @totalPoints, @overallRank,
			@teamValue, @cost, @pointsOnBench
		)
		ON CONFLICT (entry_id, gameweek) DO UPDATE SET
			points=EXCLUDED.points,
			total_points=EXCLUDED.total_points,
			overall_rank=EXCLUDED.overall_rank,
			team_value=EXCLUDED.team_value,
			cost=EXCLUDED.cost,
			points_on_bench=EXCLUDED.points_on_bench`

	args := make([]pgx.NamedArgs, 0, len(rows))
	for _, gw := range rows {
		args = append(args, pgx.NamedArgs{
			"entryID":       gw.EntryID,
			"gameweek":      gw.Gameweek,
			"points":        gw.Points,
			"totalPoints":   gw.TotalPoints,
			"overallRank":   gw.OverallRank,
			"teamValue":     gw.TeamValue,
			"cost":          gw.Cost,
			"pointsOnBench": gw.PointsOnBench,
		})
	}
	return db.execBatch(ctx, "gameweek_history", query, args)
}

func (db *postgresDB) UpsertMiniLeagues(ctx context.Context, rows []model.MiniLeague) error {
	const query = `INSERT INTO fpl.mini_leagues (entry_id, league_id, name, created, league_type)
		VALUES (@entryID, @leagueID, @name, @created, @leagueType)
		ON CONFLICT (entry_id, league_id) DO UPDATE SET
			name=EXCLUDED.name,
			created=EXCLUDED.created,
			league_type=EXCLUDED.league_type`

	args := make([]pgx.NamedArgs, 0, len(rows))
	for _, l := range rows {
		args = append(args, pgx.NamedArgs{
			"entryID":  l.EntryID,
			"leagueID": l.LeagueID,
			"name":     l.Name,
			"created": pgtype.Timestamptz{
				Time:  l.Created,
				Valid: !l.Created.IsZero(),
			},
			"leagueType": l.LeagueType,
		})
	}
	return db.execBatch(ctx, "mini_leagues", query, args)
}

func (db *postgresDB) UpsertMiniLeagueEntries(ctx context.Context, rows []model.MiniLeagueEntry) error {
	const query = `INSERT INTO fpl.mini_league_entries (entry_id, league_id, entry_name, player_name, rank, total)
		VALUES (@entryID, @leagueID, @entryName, @playerName, @rank, @total)
		ON CONFLICT (entry_id, league_id) DO UPDATE SET
			entry_name=EXCLUDED.entry_name,
			player_name=EXCLUDED.player_name,
			rank=EXCLUDED.rank,
			total=EXCLUDED.total`

	args := make([]pgx.NamedArgs, 0, len(rows))
	for _, e := range rows {
		args = append(args, pgx.NamedArgs{
			"entryID":    e.EntryID,
			"leagueID":   e.LeagueID,
			"entryName":  e.EntryName,
			"playerName": e.PlayerName,
			"rank":       e.Rank,
			"total":      e.Total,
		})
	}
	return db.execBatch(ctx, "mini_league_entries", query, args)
}

func (db *postgresDB) UpsertMiniLeagueGameweekScores(ctx context.Context, rows []model.MiniLeagueGameweekScore) error {
	const query = `INSERT INTO fpl.mini_league_gameweek_scores (entry_id, league_id, gameweek, points, cost)
		VALUES (@entryID, @leagueID, @gameweek, @points, @cost)
		ON CONFLICT (entry_id, gameweek, league_id) DO UPDATE SET
			points=EXCLUDED.points,
			cost=EXCLUDED.cost`

	args := make([]pgx.NamedArgs, 0, len(rows))
	for _, s := range rows {
		args = append(args, pgx.NamedArgs{
			"entryID":  s.EntryID,
			"leagueID": s.LeagueID,
			"gameweek": s.Gameweek,
			"points":   s.Points,
			"cost":     s.Cost,
		})
	}
	return db.execBatch(ctx, "mini_league_gameweek_scores", query, args)
}

// UpdatePlayerStats applies live stats to player rows already present. It
// deliberately does not insert: live payloads carry no reference data.
func (db *postgresDB) UpdatePlayerStats(ctx context.Context, stats []model.PlayerStats) error {
	const query = `UPDATE fpl.players SET
			minutes=@minutes,
			goals_scored=@goalsScored,
			assists=@assists,
			clean_sheets=@cleanSheets,
			yellow_cards=@yellowCards,
			red_cards=@redCards
		WHERE player_id=@playerID`

	args := make([]pgx.NamedArgs, 0, len(stats))
	for _, s := range stats {
		args = append(args, pgx.NamedArgs{
			"playerID":    s.PlayerID,
			"minutes":     s.Minutes,
			"goalsScored": s.GoalsScored,
			"assists":     s.Assists,
			"cleanSheets": s.CleanSheets,
			"yellowCards": s.YellowCards,
			"redCards":    s.RedCards,
		})
	}
	return db.execBatch(ctx, "players", query, args)
}

// execBatch runs one statement per arg set inside a single transaction. An
// empty batch is a no-op. Errors name the table so callers can report which
// write failed.
func (db *postgresDB) execBatch(ctx context.Context, table, query string, args []pgx.NamedArgs) error {
	if len(args) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction for %s: %w", table, err)
	}
	defer tx.Rollback(ctx)

	for _, a := range args {
		if _, err := tx.Exec(ctx, query, a); err != nil {
			return fmt.Errorf("error writing to %s: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing write to %s: %w", table, err)
	}
	return nil
}
