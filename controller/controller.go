package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/bcheye/fantasy-foundry/db"
	"github.com/bcheye/fantasy-foundry/fpl"
	"github.com/bcheye/fantasy-foundry/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// SyncBootstrap refreshes all reference data (teams, positions, players,
	// gameweeks) from one bootstrap-static fetch. Sub-collection failures do
	// not stop the remaining collections; the joined error reports them all.
	SyncBootstrap(ctx context.Context) error
	// SyncEntry refreshes a manager's overview, league memberships and
	// gameweek history. The profile and history fetches run in parallel and
	// both must succeed before anything is written.
	SyncEntry(ctx context.Context, entryID int32) error
	SyncEntryHistory(ctx context.Context, entryID int32) error
	// SyncLeagueMembers syncs every member of a league discovered from its
	// standings pages, always including anchorEntryID. Per-member failures
	// are counted in the report and never abort the other members.
	SyncLeagueMembers(ctx context.Context, leagueID, anchorEntryID int32) (*model.SyncReport, error)
	// SyncInvitationalLeagues discovers the invitational classic leagues the
	// seed entry belongs to and runs a league-members sync for each.
	SyncInvitationalLeagues(ctx context.Context, seedEntryID int32) (*model.SyncReport, error)
	SyncLiveGameweek(ctx context.Context, gameweekID int32) error
	RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	ListPlayers(ctx context.Context, limit int) ([]model.Player, error)
	GetTopPlayers(ctx context.Context, positionTypeID int32, limit int) ([]model.TopPlayer, error)
	GetGameweekHistory(ctx context.Context, entryID int32) ([]model.GameweekHistory, error)
	// GetOverview returns the entry's overview row for the current gameweek.
	GetOverview(ctx context.Context, entryID int32) (*model.Overview, error)
	GetMiniLeagues(ctx context.Context, entryID int32) ([]model.MiniLeagueSummary, error)

	Signup(ctx context.Context, u *model.User, password string) error
	Login(ctx context.Context, email, password string) (*model.User, error)
}

const (
	defaultStandingsPageLimit = 5
	defaultMemberWorkers      = 20
)

type controller struct {
	clock clock.Clock
	fpl   fpl.Client
	db    db.DB

	// standingsPageLimit caps how many standings pages a league sync will
	// fetch regardless of has_next.
	standingsPageLimit int
	// memberWorkers bounds the concurrent per-member syncs in a league
	// fan-out.
	memberWorkers int
}

func New(clock clock.Clock, fplClient fpl.Client, db db.DB) (C, error) {
	c := &controller{
		clock:              clock,
		fpl:                fplClient,
		db:                 db,
		standingsPageLimit: defaultStandingsPageLimit,
		memberWorkers:      defaultMemberWorkers,
	}
	return c, nil
}
