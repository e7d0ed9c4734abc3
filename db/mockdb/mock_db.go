package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bcheye/fantasy-foundry/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) UpsertTeams(ctx context.Context, teams []model.Team) error {
	args := db.Called(ctx, teams)
	return args.Error(0)
}

func (db *DB) UpsertPositions(ctx context.Context, positions []model.Position) error {
	args := db.Called(ctx, positions)
	return args.Error(0)
}

func (db *DB) UpsertPlayers(ctx context.Context, players []model.Player) error {
	args := db.Called(ctx, players)
	return args.Error(0)
}

func (db *DB) UpsertGameweeks(ctx context.Context, gameweeks []model.Gameweek) error {
	args := db.Called(ctx, gameweeks)
	return args.Error(0)
}

func (db *DB) UpsertOverview(ctx context.Context, rows []model.Overview) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) UpsertGameweekHistory(ctx context.Context, rows []model.GameweekHistory) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) UpsertMiniLeagues(ctx context.Context, rows []model.MiniLeague) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) UpsertMiniLeagueEntries(ctx context.Context, rows []model.MiniLeagueEntry) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) UpsertMiniLeagueGameweekScores(ctx context.Context, rows []model.MiniLeagueGameweekScore) error {
	args := db.Called(ctx, rows)
	return args.Error(0)
}

func (db *DB) UpdatePlayerStats(ctx context.Context, stats []model.PlayerStats) error {
	args := db.Called(ctx, stats)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	args := db.Called(ctx, limit)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) GetTopPlayers(ctx context.Context, positionTypeID int32, limit int) ([]model.TopPlayer, error) {
	args := db.Called(ctx, positionTypeID, limit)

	var r []model.TopPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TopPlayer)
	}
	return r, args.Error(1)
}

func (db *DB) GetGameweekHistory(ctx context.Context, entryID int32) ([]model.GameweekHistory, error) {
	args := db.Called(ctx, entryID)

	var r []model.GameweekHistory
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GameweekHistory)
	}
	return r, args.Error(1)
}

func (db *DB) GetCurrentGameweek(ctx context.Context) (*model.Gameweek, error) {
	args := db.Called(ctx)

	var gw *model.Gameweek
	if args.Get(0) != nil {
		gw = args.Get(0).(*model.Gameweek)
	}
	return gw, args.Error(1)
}

func (db *DB) GetOverview(ctx context.Context, entryID, gameweekID int32) (*model.Overview, error) {
	args := db.Called(ctx, entryID, gameweekID)

	var o *model.Overview
	if args.Get(0) != nil {
		o = args.Get(0).(*model.Overview)
	}
	return o, args.Error(1)
}

func (db *DB) GetMiniLeagueSummaries(ctx context.Context, entryID int32) ([]model.MiniLeagueSummary, error) {
	args := db.Called(ctx, entryID)

	var r []model.MiniLeagueSummary
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MiniLeagueSummary)
	}
	return r, args.Error(1)
}

func (db *DB) ListInvitationalLeagues(ctx context.Context, excluded []int32) ([]model.MiniLeague, error) {
	args := db.Called(ctx, excluded)

	var r []model.MiniLeague
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MiniLeague)
	}
	return r, args.Error(1)
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := db.Called(ctx, email)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}

func (db *DB) InsertUser(ctx context.Context, u *model.User) error {
	args := db.Called(ctx, u)
	return args.Error(0)
}
