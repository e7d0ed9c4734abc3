package db

import (
	"context"

	"github.com/bcheye/fantasy-foundry/model"
)

// DB is the upsert store. Every UpsertX call is a single transaction: each row
// is inserted, and a conflict on the table's natural key updates every non-key
// column in place. An empty batch succeeds trivially. A failing row fails the
// whole batch with an error naming the table.
type DB interface {
	UpsertTeams(ctx context.Context, teams []model.Team) error
	UpsertPositions(ctx context.Context, positions []model.Position) error
	UpsertPlayers(ctx context.Context, players []model.Player) error
	UpsertGameweeks(ctx context.Context, gameweeks []model.Gameweek) error
	UpsertOverview(ctx context.Context, rows []model.Overview) error
	UpsertGameweekHistory(ctx context.Context, rows []model.GameweekHistory) error
	UpsertMiniLeagues(ctx context.Context, rows []model.MiniLeague) error
	UpsertMiniLeagueEntries(ctx context.Context, rows []model.MiniLeagueEntry) error
	UpsertMiniLeagueGameweekScores(ctx context.Context, rows []model.MiniLeagueGameweekScore) error

	// UpdatePlayerStats applies live-gameweek stats to existing player rows.
	// Unlike the upserts it never inserts; unknown players are skipped.
	UpdatePlayerStats(ctx context.Context, stats []model.PlayerStats) error

	ListPlayers(ctx context.Context, limit int) ([]model.Player, error)
	GetTopPlayers(ctx context.Context, positionTypeID int32, limit int) ([]model.TopPlayer, error)
	GetGameweekHistory(ctx context.Context, entryID int32) ([]model.GameweekHistory, error)
	// GetCurrentGameweek returns ErrNoCurrentGameweek when no row has
	// is_current set.
	GetCurrentGameweek(ctx context.Context) (*model.Gameweek, error)
	GetOverview(ctx context.Context, entryID, gameweekID int32) (*model.Overview, error)
	GetMiniLeagueSummaries(ctx context.Context, entryID int32) ([]model.MiniLeagueSummary, error)
	// ListInvitationalLeagues returns the distinct type "x" league ids known
	// to the store, excluding the given ids.
	ListInvitationalLeagues(ctx context.Context, excluded []int32) ([]model.MiniLeague, error)

	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	InsertUser(ctx context.Context, u *model.User) error
}
