package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("email already exists")
	ErrOverviewNotFound  = errors.New("overview not found")
	ErrNoCurrentGameweek = errors.New("no current gameweek")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	// The league fan-out runs up to 20 concurrent member syncs, each of which
	// writes. Keep the pool at least that wide to avoid exhaustion stalls.
	if cfg.MaxConns < 25 {
		cfg.MaxConns = 25
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}
