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

func (s *Storage) GetLocationByOwnerAndID(ctx context.Context, uid, lid int64) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLocationByOwnerAndID")
	defer span.End()

	return s.getLocation(ctx, sq.Eq{"uid": uid, "lid": lid})
}

func (s *Storage) GetLocationByID(ctx context.Context, lid int64) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLocationByID")
	defer span.End()

	return s.getLocation(ctx, sq.Eq{"lid": lid})
}

func (s *Storage) getLocation(ctx context.Context, pred sq.Eq) (*types.Location, error) {
	var l types.Location
	err := s.db.Statement(ctx).
		Select("lid", "uid", "name", "address").
		From("location").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&l.LID, &l.UID, &l.Name, &l.Address)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return &l, nil
}

func (s *Storage) ListLocationsByOwner(ctx context.Context, uid int64) ([]*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLocationsByOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("lid", "uid", "name", "address").
		From("location").
		Where(sq.Eq{"uid": uid}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []*types.Location
	for rows.Next() {
		var l types.Location
		if err := rows.Scan(&l.LID, &l.UID, &l.Name, &l.Address); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return locations, nil
}

// ListSharedLocations returns every location shared with uid through a
// grant, joined with the owning user's email and the grant mode.
func (s *Storage) ListSharedLocations(ctx context.Context, uid int64) ([]*types.SharedLocation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSharedLocations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("l.lid", "u.email", "l.name", "l.address", "a.type").
		From("location l").
		Join("access a ON l.lid = a.lid").
		Join("users u ON u.uid = l.uid").
		Where(sq.Eq{"a.uid": uid}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared locations: %w", err)
	}
	defer rows.Close()

	var shared []*types.SharedLocation
	for rows.Next() {
		var sl types.SharedLocation
		if err := rows.Scan(&sl.LID, &sl.Email, &sl.Name, &sl.Address, &sl.AccessType); err != nil {
			return nil, fmt.Errorf("failed to scan shared location: %w", err)
		}
		shared = append(shared, &sl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shared, nil
}

func (s *Storage) CreateLocation(ctx context.Context, location *types.Location) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLocation")
	defer span.End()

	var created types.Location
	err := s.db.Statement(ctx).
		Insert("location").
		Columns("uid", "name", "address").
		Values(location.UID, location.Name, location.Address).
		Suffix("RETURNING lid, uid, name, address").
		QueryRowContext(ctx).
		Scan(&created.LID, &created.UID, &created.Name, &created.Address)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert location: %w", err)
	}

	return &created, nil
}

// DeleteLocationByID drops the location and every grant pointing at it.
func (s *Storage) DeleteLocationByID(ctx context.Context, lid int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLocationByID")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.db.Statement(ctx).
			Delete("access").
			Where(sq.Eq{"lid": lid}).
			ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to delete location grants: %w", err)
		}

		res, err := s.db.Statement(ctx).
			Delete("location").
			Where(sq.Eq{"lid": lid}).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete location: %w", err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}

		return nil
	})
}
