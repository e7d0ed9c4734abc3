package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bcheye/fantasy-foundry/fpl"
	"github.com/bcheye/fantasy-foundry/model"
)

// Leagues that look invitational upstream but are public promotions and would
// drag thousands of members into a fan-out.
var excludedLeagueIDs = []int32{
	1194, 1024840, 780750, 797211, 1647816, 1473122,
	1054607, 1001856, 866318, 697404, 154756, 34236,
}

func (c *controller) SyncBootstrap(ctx context.Context) error {
	start := c.clock.Now()
	log.Printf("bootstrap sync starting at %v", start.Format(time.DateTime))

	b, err := c.fpl.GetBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("error fetching bootstrap data: %w", err)
	}

	// Each sub-collection is attempted even if an earlier one failed. They
	// come from the same payload but land in independent tables.
	var errs []error

	if teams, err := b.ToTeams(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertTeams(ctx, teams); err != nil {
		errs = append(errs, err)
	}

	if positions, err := b.ToPositions(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertPositions(ctx, positions); err != nil {
		errs = append(errs, err)
	}

	if players, err := b.ToPlayers(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertPlayers(ctx, players); err != nil {
		errs = append(errs, err)
	}

	if gameweeks, err := b.ToGameweeks(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertGameweeks(ctx, gameweeks); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("bootstrap sync finished with errors: %w", err)
	}

	log.Printf("bootstrap sync finished, took %v", c.clock.Now().Sub(start))
	return nil
}

func (c *controller) SyncEntry(ctx context.Context, entryID int32) error {
	entry, history, err := c.fetchEntryPair(ctx, entryID)
	if err != nil {
		return err
	}

	var errs []error

	if overview, err := entry.ToOverview(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertOverview(ctx, []model.Overview{*overview}); err != nil {
		errs = append(errs, err)
	}

	if leagues, err := entry.ToMiniLeagues(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertMiniLeagues(ctx, leagues); err != nil {
		errs = append(errs, err)
	}

	if leagueEntries, err := entry.ToMiniLeagueEntries(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertMiniLeagueEntries(ctx, leagueEntries); err != nil {
		errs = append(errs, err)
	}

	if rows, err := history.ToGameweekHistory(entryID); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertGameweekHistory(ctx, rows); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("entry %d sync finished with errors: %w", entryID, err)
	}
	return nil
}

func (c *controller) SyncEntryHistory(ctx context.Context, entryID int32) error {
	history, err := c.fpl.GetEntryHistory(ctx, entryID)
	if err != nil {
		return fmt.Errorf("error fetching history for entry %d: %w", entryID, err)
	}

	rows, err := history.ToGameweekHistory(entryID)
	if err != nil {
		return err
	}
	return c.db.UpsertGameweekHistory(ctx, rows)
}

func (c *controller) SyncLeagueMembers(ctx context.Context, leagueID, anchorEntryID int32) (*model.SyncReport, error) {
	log.Printf("starting sync for league %d", leagueID)

	memberIDs, err := c.fetchLeagueStandings(ctx, leagueID, anchorEntryID)
	if err != nil {
		return nil, err
	}

	report := &model.SyncReport{}

	g := &errgroup.Group{}
	g.SetLimit(c.memberWorkers)
	for _, id := range memberIDs {
		id := id
		g.Go(func() error {
			// Failures are recorded, never returned: one slow or broken
			// member must not cancel its siblings.
			if err := c.syncLeagueMember(ctx, leagueID, id); err != nil {
				log.Printf("error syncing entry %d in league %d: %v", id, leagueID, err)
				report.RecordFailure(id)
			} else {
				report.RecordSuccess()
			}
			return nil
		})
	}
	g.Wait()

	log.Printf("league %d sync finished: %s", leagueID, report)
	return report, nil
}

// fetchLeagueStandings walks the standings pages, upserting the league header
// and the standing rows as it goes, and returns the member entry ids. The
// anchor entry is always part of the result even when the fetched pages never
// mention it. Pagination halts on has_next=false or the configured page cap,
// whichever comes first.
func (c *controller) fetchLeagueStandings(ctx context.Context, leagueID, anchorEntryID int32) ([]int32, error) {
	seen := make(map[int32]bool)
	memberIDs := make([]int32, 0, 64)

	for page := 1; page <= c.standingsPageLimit; page++ {
		sp, err := c.fpl.GetStandingsPage(ctx, leagueID, page)
		if err != nil {
			return nil, fmt.Errorf("error fetching standings page %d for league %d: %w", page, leagueID, err)
		}

		if page == 1 {
			league, err := sp.ToMiniLeague(anchorEntryID)
			if err != nil {
				return nil, err
			}
			if err := c.db.UpsertMiniLeagues(ctx, []model.MiniLeague{*league}); err != nil {
				return nil, err
			}
		}

		entries, err := sp.ToMiniLeagueEntries(leagueID)
		if err != nil {
			return nil, err
		}
		if err := c.db.UpsertMiniLeagueEntries(ctx, entries); err != nil {
			return nil, err
		}

		for _, id := range sp.MemberIDs() {
			if !seen[id] {
				seen[id] = true
				memberIDs = append(memberIDs, id)
			}
		}

		if !sp.HasNext() {
			break
		}
	}

	if !seen[anchorEntryID] {
		memberIDs = append(memberIDs, anchorEntryID)
	}
	return memberIDs, nil
}

// syncLeagueMember refreshes one member's overview, season history and
// per-league scores. Nothing is written unless both fetches succeed.
func (c *controller) syncLeagueMember(ctx context.Context, leagueID, entryID int32) error {
	entry, history, err := c.fetchEntryPair(ctx, entryID)
	if err != nil {
		return err
	}

	var errs []error

	if overview, err := entry.ToOverview(); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertOverview(ctx, []model.Overview{*overview}); err != nil {
		errs = append(errs, err)
	}

	if rows, err := history.ToGameweekHistory(entryID); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertGameweekHistory(ctx, rows); err != nil {
		errs = append(errs, err)
	}

	if scores, err := history.ToGameweekScores(entryID, leagueID); err != nil {
		errs = append(errs, err)
	} else if err := c.db.UpsertMiniLeagueGameweekScores(ctx, scores); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c *controller) SyncInvitationalLeagues(ctx context.Context, seedEntryID int32) (*model.SyncReport, error) {
	// The seed entry's profile populates its league memberships, which is
	// where the invitational leagues are discovered from.
	if err := c.SyncEntry(ctx, seedEntryID); err != nil {
		return nil, fmt.Errorf("error syncing seed entry %d: %w", seedEntryID, err)
	}

	leagues, err := c.db.ListInvitationalLeagues(ctx, excludedLeagueIDs)
	if err != nil {
		return nil, err
	}
	if len(leagues) == 0 {
		log.Printf("no invitational leagues found for entry %d", seedEntryID)
		return &model.SyncReport{}, nil
	}

	report := &model.SyncReport{}
	for _, l := range leagues {
		lr, err := c.SyncLeagueMembers(ctx, l.LeagueID, seedEntryID)
		if err != nil {
			log.Printf("error syncing league %d (%s): %v", l.LeagueID, l.Name, err)
			report.RecordLeagueFailure(l.LeagueID)
			continue
		}
		report.Merge(lr)
	}

	return report, nil
}

func (c *controller) SyncLiveGameweek(ctx context.Context, gameweekID int32) error {
	live, err := c.fpl.GetLiveGameweek(ctx, gameweekID)
	if err != nil {
		return fmt.Errorf("error fetching live data for gameweek %d: %w", gameweekID, err)
	}

	stats, err := live.ToPlayerStats()
	if err != nil {
		return err
	}
	return c.db.UpdatePlayerStats(ctx, stats)
}

func (c *controller) RunPeriodicSync(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)

			if err := c.SyncBootstrap(ctx); err != nil {
				log.Printf("%v", err)
			}
			cancel()
		}
	}
}

// fetchEntryPair fetches a manager's profile and history concurrently. Both
// must succeed; the two payloads feed tables that are only consistent
// together.
func (c *controller) fetchEntryPair(ctx context.Context, entryID int32) (*fpl.Entry, *fpl.EntryHistory, error) {
	var entry *fpl.Entry
	var history *fpl.EntryHistory

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		e, err := c.fpl.GetEntry(gctx, entryID)
		if err != nil {
			return err
		}
		entry = e
		return nil
	})
	g.Go(func() error {
		h, err := c.fpl.GetEntryHistory(gctx, entryID)
		if err != nil {
			return err
		}
		history = h
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("error fetching entry %d: %w", entryID, err)
	}
	return entry, history, nil
}
