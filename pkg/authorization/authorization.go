// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer decides owner-only and owner-or-admin access to locations.
// It is a pure query composition over the two stores and never returns
// an error: an infrastructure failure on either lookup degrades to
// deny.
type Authorizer struct {
	locations LocationStoreInterface
	access    AccessStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IsOwner reports whether uid owns the location lid.
func (a *Authorizer) IsOwner(ctx context.Context, uid, lid int64) bool {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsOwner")
	defer span.End()

	if uid <= 0 {
		return false
	}

	return a.ownsLocation(ctx, uid, lid)
}

// IsOwnerOrAdmin reports whether uid owns lid or holds an admin grant
// on it. Read-only grants never satisfy this check. The two lookups are
// independent reads and run concurrently; the result is their OR.
func (a *Authorizer) IsOwnerOrAdmin(ctx context.Context, uid, lid int64) bool {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsOwnerOrAdmin")
	defer span.End()

	if uid <= 0 {
		return false
	}

	ownerCh := make(chan bool, 1)
	adminCh := make(chan bool, 1)

	go func() {
		ownerCh <- a.ownsLocation(ctx, uid, lid)
	}()
	go func() {
		adminCh <- a.hasAdminGrant(ctx, uid, lid)
	}()

	owner := <-ownerCh
	admin := <-adminCh

	return owner || admin
}

func (a *Authorizer) ownsLocation(ctx context.Context, uid, lid int64) bool {
	location, err := a.locations.GetLocationByOwnerAndID(ctx, uid, lid)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Errorf("ownership lookup failed for uid %d lid %d, denying: %v", uid, lid, err)
		}
		return false
	}

	return location != nil
}

func (a *Authorizer) hasAdminGrant(ctx context.Context, uid, lid int64) bool {
	grant, err := a.access.GetGrantByGranteeAndLocation(ctx, uid, lid)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Errorf("grant lookup failed for uid %d lid %d, denying: %v", uid, lid, err)
		}
		return false
	}

	return grant.Mode == types.AccessModeAdmin
}

func NewAuthorizer(locations LocationStoreInterface, access AccessStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.locations = locations
	a.access = access

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
