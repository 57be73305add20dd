// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locations

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	users     UserStoreInterface
	locations LocationStoreInterface
	access    AccessStoreInterface
	history   RecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	users UserStoreInterface,
	locations LocationStoreInterface,
	access AccessStoreInterface,
	history RecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		users:     users,
		locations: locations,
		access:    access,
		history:   history,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// ListForUser returns the union of the locations uid owns and the
// locations shared with uid. The caller identity, the owned list and
// the shared list are three independent reads fetched concurrently and
// joined once all resolve. Owned rows carry the caller's own email and
// the "owner" tag; shared rows carry the grant's mode. Ownership and
// grants are disjoint, so no lid appears twice. Ordering is
// unspecified.
func (s *Service) ListForUser(ctx context.Context, uid int64) ([]*types.SharedLocation, error) {
	ctx, span := s.tracer.Start(ctx, "locations.Service.ListForUser")
	defer span.End()

	var (
		user   *types.User
		owned  []*types.Location
		shared []*types.SharedLocation
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.users.GetUserByID(gctx, uid)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("user %d: %w", uid, types.ErrNotFound)
			}
			return err
		}
		user = u
		return nil
	})

	g.Go(func() error {
		var err error
		owned, err = s.locations.ListLocationsByOwner(gctx, uid)
		return err
	})

	g.Go(func() error {
		var err error
		shared, err = s.locations.ListSharedLocations(gctx, uid)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*types.SharedLocation, 0, len(shared)+len(owned))
	result = append(result, shared...)
	for _, l := range owned {
		result = append(result, &types.SharedLocation{
			LID:        l.LID,
			Email:      user.Email,
			Name:       l.Name,
			Address:    l.Address,
			AccessType: types.AccessTypeOwner,
		})
	}

	return result, nil
}

// ListOwned returns every location uid owns together with its grants,
// the per-location grant lookups fan out concurrently.
func (s *Service) ListOwned(ctx context.Context, uid int64) ([]*types.LocationDetail, error) {
	ctx, span := s.tracer.Start(ctx, "locations.Service.ListOwned")
	defer span.End()

	owned, err := s.locations.ListLocationsByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}

	details := make([]*types.LocationDetail, len(owned))

	g, gctx := errgroup.WithContext(ctx)
	for i, l := range owned {
		g.Go(func() error {
			grants, err := s.access.ListGrantsByLocation(gctx, l.LID)
			if err != nil {
				return err
			}
			details[i] = &types.LocationDetail{Location: l, Accesses: grants}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return details, nil
}

func (s *Service) Create(ctx context.Context, uid int64, name, address string) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "locations.Service.Create")
	defer span.End()

	if _, err := s.users.GetUserByID(ctx, uid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", uid, types.ErrNotFound)
		}
		return nil, err
	}

	location, err := s.locations.CreateLocation(ctx, &types.Location{
		UID:     uid,
		Name:    name,
		Address: address,
	})
	if err != nil {
		return nil, err
	}

	s.history.Created(ctx, uid, types.AuditObjectLocation, location)
	return location, nil
}

func (s *Service) Get(ctx context.Context, lid int64) (*types.Location, error) {
	ctx, span := s.tracer.Start(ctx, "locations.Service.Get")
	defer span.End()

	location, err := s.locations.GetLocationByID(ctx, lid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("location %d: %w", lid, types.ErrNotFound)
		}
		return nil, err
	}

	return location, nil
}

func (s *Service) Delete(ctx context.Context, actionBy, lid int64) error {
	ctx, span := s.tracer.Start(ctx, "locations.Service.Delete")
	defer span.End()

	if err := s.locations.DeleteLocationByID(ctx, lid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("location %d: %w", lid, types.ErrNotFound)
		}
		return err
	}

	s.history.Deleted(ctx, actionBy, types.AuditObjectLocation, &types.Location{LID: lid})
	return nil
}
