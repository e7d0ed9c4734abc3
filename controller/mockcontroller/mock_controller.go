package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bcheye/fantasy-foundry/model"
)

type C struct {
	mock.Mock
}

func (c *C) SyncBootstrap(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) SyncEntry(ctx context.Context, entryID int32) error {
	args := c.Called(ctx, entryID)
	return args.Error(0)
}

func (c *C) SyncEntryHistory(ctx context.Context, entryID int32) error {
	args := c.Called(ctx, entryID)
	return args.Error(0)
}

func (c *C) SyncLeagueMembers(ctx context.Context, leagueID, anchorEntryID int32) (*model.SyncReport, error) {
	args := c.Called(ctx, leagueID, anchorEntryID)

	var r *model.SyncReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.SyncReport)
	}
	return r, args.Error(1)
}

func (c *C) SyncInvitationalLeagues(ctx context.Context, seedEntryID int32) (*model.SyncReport, error) {
	args := c.Called(ctx, seedEntryID)

	var r *model.SyncReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.SyncReport)
	}
	return r, args.Error(1)
}

func (c *C) SyncLiveGameweek(ctx context.Context, gameweekID int32) error {
	args := c.Called(ctx, gameweekID)
	return args.Error(0)
}

func (c *C) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) ListPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	args := c.Called(ctx, limit)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) GetTopPlayers(ctx context.Context, positionTypeID int32, limit int) ([]model.TopPlayer, error) {
	args := c.Called(ctx, positionTypeID, limit)

	var r []model.TopPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TopPlayer)
	}
	return r, args.Error(1)
}

func (c *C) GetGameweekHistory(ctx context.Context, entryID int32) ([]model.GameweekHistory, error) {
	args := c.Called(ctx, entryID)

	var r []model.GameweekHistory
	if args.Get(0) != nil {
		r = args.Get(0).([]model.GameweekHistory)
	}
	return r, args.Error(1)
}

func (c *C) GetOverview(ctx context.Context, entryID int32) (*model.Overview, error) {
	args := c.Called(ctx, entryID)

	var o *model.Overview
	if args.Get(0) != nil {
		o = args.Get(0).(*model.Overview)
	}
	return o, args.Error(1)
}

func (c *C) GetMiniLeagues(ctx context.Context, entryID int32) ([]model.MiniLeagueSummary, error) {
	args := c.Called(ctx, entryID)

	var r []model.MiniLeagueSummary
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MiniLeagueSummary)
	}
	return r, args.Error(1)
}

func (c *C) Signup(ctx context.Context, u *model.User, password string) error {
	args := c.Called(ctx, u, password)
	return args.Error(0)
}

func (c *C) Login(ctx context.Context, email, password string) (*model.User, error) {
	args := c.Called(ctx, email, password)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}
	return u, args.Error(1)
}
