package mockfpl

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bcheye/fantasy-foundry/fpl"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetBootstrap(ctx context.Context) (*fpl.Bootstrap, error) {
	args := c.Called(ctx)

	var b *fpl.Bootstrap
	if args.Get(0) != nil {
		b = args.Get(0).(*fpl.Bootstrap)
	}
	return b, args.Error(1)
}

func (c *Client) GetEntry(ctx context.Context, entryID int32) (*fpl.Entry, error) {
	args := c.Called(ctx, entryID)

	var e *fpl.Entry
	if args.Get(0) != nil {
		e = args.Get(0).(*fpl.Entry)
	}
	return e, args.Error(1)
}

func (c *Client) GetEntryHistory(ctx context.Context, entryID int32) (*fpl.EntryHistory, error) {
	args := c.Called(ctx, entryID)

	var h *fpl.EntryHistory
	if args.Get(0) != nil {
		h = args.Get(0).(*fpl.EntryHistory)
	}
	return h, args.Error(1)
}

func (c *Client) GetStandingsPage(ctx context.Context, leagueID int32, page int) (*fpl.StandingsPage, error) {
	args := c.Called(ctx, leagueID, page)

	var s *fpl.StandingsPage
	if args.Get(0) != nil {
		s = args.Get(0).(*fpl.StandingsPage)
	}
	return s, args.Error(1)
}

func (c *Client) GetLiveGameweek(ctx context.Context, gameweekID int32) (*fpl.LiveGameweek, error) {
	args := c.Called(ctx, gameweekID)

	var l *fpl.LiveGameweek
	if args.Get(0) != nil {
		l = args.Get(0).(*fpl.LiveGameweek)
	}
	return l, args.Error(1)
}
