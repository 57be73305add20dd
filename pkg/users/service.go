// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	users   UserStoreInterface
	history RecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(users UserStoreInterface, history RecorderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		users:   users,
		history: history,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Register(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Register")
	defer span.End()

	if user.FirstName == "" || user.LastName == "" || user.Email == "" || user.Password == "" {
		return nil, fmt.Errorf("all user fields are required: %w", types.ErrBadRequest)
	}

	if _, err := mail.ParseAddress(user.Email); err != nil {
		return nil, fmt.Errorf("invalid email address: %w", types.ErrBadRequest)
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("email already registered: %w", types.ErrBadRequest)
		}
		return nil, err
	}

	s.logger.Infof("registered user %s", logging.HideEmail(created.Email))
	s.history.Created(ctx, created.UID, types.AuditObjectUser, created)

	return created, nil
}

// Login resolves the credential pair to a user. A miss on either field
// yields the same unauthorized error, the store never reveals which
// one failed.
func (s *Service) Login(ctx context.Context, email, password string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Login")
	defer span.End()

	user, err := s.users.GetUserByEmailAndPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Infof("failed login for %s", logging.HideEmail(email))
			return nil, fmt.Errorf("invalid credentials: %w", types.ErrUnauthorized)
		}
		return nil, err
	}

	return user, nil
}

func (s *Service) Get(ctx context.Context, uid int64) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Get")
	defer span.End()

	user, err := s.users.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", uid, types.ErrNotFound)
		}
		return nil, err
	}

	return user, nil
}

// Delete removes the user, their locations and every grant touching
// either, in one transaction.
func (s *Service) Delete(ctx context.Context, uid int64) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.Delete")
	defer span.End()

	if err := s.users.DeleteUserByID(ctx, uid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %d: %w", uid, types.ErrNotFound)
		}
		return err
	}

	s.history.Deleted(ctx, uid, types.AuditObjectUser, &types.User{UID: uid})
	return nil
}
