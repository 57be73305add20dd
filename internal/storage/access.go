// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/location-service/internal/types"
)

func (s *Storage) GetGrantByGranteeAndLocation(ctx context.Context, uid, lid int64) (*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetGrantByGranteeAndLocation")
	defer span.End()

	var g types.AccessGrant
	err := s.db.Statement(ctx).
		Select("aid", "uid", "lid", "type").
		From("access").
		Where(sq.Eq{"uid": uid, "lid": lid}).
		QueryRowContext(ctx).
		Scan(&g.AID, &g.UID, &g.LID, &g.Mode)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}

	return &g, nil
}

func (s *Storage) ListGrantsByLocation(ctx context.Context, lid int64) ([]*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListGrantsByLocation")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("aid", "uid", "lid", "type").
		From("access").
		Where(sq.Eq{"lid": lid}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grants: %w", err)
	}
	defer rows.Close()

	var grants []*types.AccessGrant
	for rows.Next() {
		var g types.AccessGrant
		if err := rows.Scan(&g.AID, &g.UID, &g.LID, &g.Mode); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return grants, nil
}

func (s *Storage) ListUsersByLocation(ctx context.Context, lid int64) ([]*types.UserAccess, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByLocation")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("u.first_name", "u.last_name", "u.email", "a.type").
		From("access a").
		Join("users u ON u.uid = a.uid").
		Where(sq.Eq{"a.lid": lid}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list location users: %w", err)
	}
	defer rows.Close()

	var users []*types.UserAccess
	for rows.Next() {
		var ua types.UserAccess
		if err := rows.Scan(&ua.FirstName, &ua.LastName, &ua.Email, &ua.AccessType); err != nil {
			return nil, fmt.Errorf("failed to scan location user: %w", err)
		}
		users = append(users, &ua)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// UpsertGrant inserts a grant or overwrites the mode of the existing
// (uid, lid) row in place, preserving aid. A single statement relying
// on the unique key, so concurrent grants cannot produce duplicates or
// lost updates. The returned bool is true when a row was inserted.
func (s *Storage) UpsertGrant(ctx context.Context, uid, lid int64, mode types.AccessMode) (*types.AccessGrant, bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertGrant")
	defer span.End()

	var g types.AccessGrant
	var inserted bool
	err := s.db.Statement(ctx).
		Insert("access").
		Columns("uid", "lid", "type").
		Values(uid, lid, string(mode)).
		Suffix("ON CONFLICT (uid, lid) DO UPDATE SET type = EXCLUDED.type RETURNING aid, uid, lid, type, (xmax = 0)").
		QueryRowContext(ctx).
		Scan(&g.AID, &g.UID, &g.LID, &g.Mode, &inserted)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, false, ErrForeignKeyViolation
		}
		return nil, false, fmt.Errorf("failed to upsert grant: %w", err)
	}

	return &g, inserted, nil
}

// ToggleGrantMode flips admin to read-only and anything else to admin,
// as one conditional update. No row matching (uid, lid) is ErrNotFound.
func (s *Storage) ToggleGrantMode(ctx context.Context, uid, lid int64) (*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ToggleGrantMode")
	defer span.End()

	var g types.AccessGrant
	err := s.db.Statement(ctx).
		Update("access").
		Set("type", sq.Expr(
			"CASE WHEN type = ? THEN ? ELSE ? END",
			string(types.AccessModeAdmin), string(types.AccessModeReadOnly), string(types.AccessModeAdmin),
		)).
		Where(sq.Eq{"uid": uid, "lid": lid}).
		Suffix("RETURNING aid, uid, lid, type").
		QueryRowContext(ctx).
		Scan(&g.AID, &g.UID, &g.LID, &g.Mode)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to toggle grant mode: %w", err)
	}

	return &g, nil
}

func (s *Storage) DeleteGrantByGranteeAndLocation(ctx context.Context, uid, lid int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteGrantByGranteeAndLocation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("access").
		Where(sq.Eq{"uid": uid, "lid": lid}).
		ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete grant: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}
