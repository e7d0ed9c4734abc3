package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/bcheye/fantasy-foundry/model"
)

func (db *postgresDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, first_name, last_name, email, password_hash,
				fpl_entry_id, created_at, updated_at
			FROM fpl.users WHERE email=@email`

	var u model.User
	var created, updated pgtype.Timestamptz
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"email": email})
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.FPLEntryID, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	u.Created = created.Time
	u.Updated = updated.Time
	return &u, nil
}

func (db *postgresDB) InsertUser(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO fpl.users (first_name, last_name, email, password_hash, fpl_entry_id, created_at, updated_at)
			VALUES (@firstName, @lastName, @email, @passwordHash, @fplEntryID, @now, @now)
			RETURNING id`

	now := pgtype.Timestamptz{
		Time:  db.clock.Now().UTC(),
		Valid: true,
	}
	args := pgx.NamedArgs{
		"firstName":    u.FirstName,
		"lastName":     u.LastName,
		"email":        u.Email,
		"passwordHash": u.PasswordHash,
		"fplEntryID":   u.FPLEntryID,
		"now":          now,
	}

	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation, the only expected conflict is the email.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailExists
		}
		return fmt.Errorf("error inserting user: %w", err)
	}

	u.Created = now.Time
	u.Updated = now.Time
	return nil
}
