// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Service manages access grant lifecycle. It performs no authorization
// itself; callers consult the authorization engine before invoking
// state-changing operations.
type Service struct {
	users   UserStoreInterface
	access  AccessStoreInterface
	history RecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	users UserStoreInterface,
	access AccessStoreInterface,
	history RecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		users:   users,
		access:  access,
		history: history,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Grant shares a location with the user behind granteeEmail. Repeating
// a share overwrites the mode in place, preserving the grant id;
// repeating it with the same mode is a no-op that still returns the
// grant. The upsert is a single statement keyed on (uid, lid), so
// concurrent grants cannot create duplicate rows.
func (s *Service) Grant(ctx context.Context, ownerUID int64, granteeEmail string, lid int64, mode types.AccessMode) (*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Grant")
	defer span.End()

	if !mode.Valid() {
		return nil, fmt.Errorf("invalid share mode %q: %w", mode, types.ErrBadRequest)
	}

	grantee, err := s.users.GetUserByEmail(ctx, granteeEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("user not found: %s", logging.HideEmail(granteeEmail))
			return nil, fmt.Errorf("user: %w", types.ErrNotFound)
		}
		return nil, err
	}

	grant, inserted, err := s.access.UpsertGrant(ctx, grantee.UID, lid, mode)
	if err != nil {
		return nil, err
	}

	if inserted {
		s.history.Created(ctx, grantee.UID, types.AuditObjectAccess, grant)
	} else {
		old := *grant
		old.Mode = mode.Other()
		s.history.Updated(ctx, grantee.UID, types.AuditObjectAccess, &old, grant)
	}

	s.logger.Infof("access granted to %s on location %d", logging.HideEmail(granteeEmail), lid)
	return grant, nil
}

// Revoke removes the grantee's grant on lid and reports whether a row
// was actually removed. An unknown grantee email is a no-op, un-sharing
// something uncertain is harmless.
func (s *Service) Revoke(ctx context.Context, ownerUID, lid int64, granteeEmail string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Revoke")
	defer span.End()

	grantee, err := s.users.GetUserByEmail(ctx, granteeEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("user not found: %s", logging.HideEmail(granteeEmail))
			return false, nil
		}
		return false, err
	}

	deleted, err := s.access.DeleteGrantByGranteeAndLocation(ctx, grantee.UID, lid)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Infof("access revoked for %s on location %d", logging.HideEmail(granteeEmail), lid)
		s.history.Deleted(ctx, ownerUID, types.AuditObjectAccess, &types.AccessGrant{UID: grantee.UID, LID: lid})
	} else {
		s.logger.Infof("no access found for %s on location %d", logging.HideEmail(granteeEmail), lid)
	}

	return deleted, nil
}

// Toggle flips the grantee's mode between admin and read-only. It is a
// strict two-state flip executed as one conditional update, so there is
// no read-modify-write window. Toggling access that was never granted
// fails with not found.
func (s *Service) Toggle(ctx context.Context, ownerUID, lid int64, granteeEmail string) (*types.AccessGrant, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.Toggle")
	defer span.End()

	grantee, err := s.users.GetUserByEmail(ctx, granteeEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("user not found: %s", logging.HideEmail(granteeEmail))
			return nil, fmt.Errorf("user: %w", types.ErrNotFound)
		}
		return nil, err
	}

	grant, err := s.access.ToggleGrantMode(ctx, grantee.UID, lid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("no access found for %s on location %d", logging.HideEmail(granteeEmail), lid)
			return nil, fmt.Errorf("access grant: %w", types.ErrNotFound)
		}
		return nil, err
	}

	old := *grant
	old.Mode = grant.Mode.Other()
	s.history.Updated(ctx, ownerUID, types.AuditObjectAccess, &old, grant)

	s.logger.Infof("access mode changed for %s on location %d", logging.HideEmail(granteeEmail), lid)
	return grant, nil
}

func (s *Service) ListLocationUsers(ctx context.Context, lid int64) ([]*types.UserAccess, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ListLocationUsers")
	defer span.End()

	return s.access.ListUsersByLocation(ctx, lid)
}
