package controller

import (
	"context"

	"github.com/bcheye/fantasy-foundry/model"
)

func (c *controller) ListPlayers(ctx context.Context, limit int) ([]model.Player, error) {
	return c.db.ListPlayers(ctx, limit)
}

func (c *controller) GetTopPlayers(ctx context.Context, positionTypeID int32, limit int) ([]model.TopPlayer, error) {
	return c.db.GetTopPlayers(ctx, positionTypeID, limit)
}

func (c *controller) GetGameweekHistory(ctx context.Context, entryID int32) ([]model.GameweekHistory, error) {
	return c.db.GetGameweekHistory(ctx, entryID)
}

// GetOverview resolves the current gameweek and returns the entry's overview
// row for it. Passes through db.ErrNoCurrentGameweek and db.ErrOverviewNotFound.
func (c *controller) GetOverview(ctx context.Context, entryID int32) (*model.Overview, error) {
	gw, err := c.db.GetCurrentGameweek(ctx)
	if err != nil {
		return nil, err
	}
	return c.db.GetOverview(ctx, entryID, gw.ID)
}

func (c *controller) GetMiniLeagues(ctx context.Context, entryID int32) ([]model.MiniLeagueSummary, error) {
	return c.db.GetMiniLeagueSummaries(ctx, entryID)
}
