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

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *Storage) GetUserByID(ctx context.Context, uid int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"uid": uid})
}

// GetUserByEmailAndPassword resolves login credentials. The credential
// comparison happens in the store, matching the schema's storage model.
func (s *Storage) GetUserByEmailAndPassword(ctx context.Context, email, password string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmailAndPassword")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email, "password": password})
}

func (s *Storage) getUser(ctx context.Context, pred sq.Eq) (*types.User, error) {
	var u types.User
	err := s.db.Statement(ctx).
		Select("uid", "first_name", "last_name", "email", "password").
		From("users").
		Where(pred).
		QueryRowContext(ctx).
		Scan(&u.UID, &u.FirstName, &u.LastName, &u.Email, &u.Password)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	var created types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("first_name", "last_name", "email", "password").
		Values(user.FirstName, user.LastName, user.Email, user.Password).
		Suffix("RETURNING uid, first_name, last_name, email, password").
		QueryRowContext(ctx).
		Scan(&created.UID, &created.FirstName, &created.LastName, &created.Email, &created.Password)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

// DeleteUserByID removes the user together with the grants they hold
// and the locations they own, in one transaction.
func (s *Storage) DeleteUserByID(ctx context.Context, uid int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUserByID")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.db.Statement(ctx).
			Delete("access").
			Where(sq.Or{
				sq.Eq{"uid": uid},
				sq.Expr("lid IN (SELECT lid FROM location WHERE uid = ?)", uid),
			}).
			ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to delete user grants: %w", err)
		}

		if _, err := s.db.Statement(ctx).
			Delete("location").
			Where(sq.Eq{"uid": uid}).
			ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to delete user locations: %w", err)
		}

		res, err := s.db.Statement(ctx).
			Delete("users").
			Where(sq.Eq{"uid": uid}).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
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
