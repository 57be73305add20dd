// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locations

import (
	"context"

	"github.com/canonical/location-service/internal/types"
)

type ServiceInterface interface {
	ListForUser(ctx context.Context, uid int64) ([]*types.SharedLocation, error)
	ListOwned(ctx context.Context, uid int64) ([]*types.LocationDetail, error)
	Create(ctx context.Context, uid int64, name, address string) (*types.Location, error)
	Get(ctx context.Context, lid int64) (*types.Location, error)
	Delete(ctx context.Context, actionBy, lid int64) error
}

type UserStoreInterface interface {
	GetUserByID(ctx context.Context, uid int64) (*types.User, error)
}

type LocationStoreInterface interface {
	GetLocationByID(ctx context.Context, lid int64) (*types.Location, error)
	ListLocationsByOwner(ctx context.Context, uid int64) ([]*types.Location, error)
	ListSharedLocations(ctx context.Context, uid int64) ([]*types.SharedLocation, error)
	CreateLocation(ctx context.Context, location *types.Location) (*types.Location, error)
	DeleteLocationByID(ctx context.Context, lid int64) error
}

type AccessStoreInterface interface {
	ListGrantsByLocation(ctx context.Context, lid int64) ([]*types.AccessGrant, error)
}

type RecorderInterface interface {
	Created(ctx context.Context, actionBy int64, objectType string, object interface{})
	Updated(ctx context.Context, actionBy int64, objectType string, oldObject, newObject interface{})
	Deleted(ctx context.Context, actionBy int64, objectType string, object interface{})
}

type AuthorizerInterface interface {
	IsOwner(ctx context.Context, uid, lid int64) bool
	IsOwnerOrAdmin(ctx context.Context, uid, lid int64) bool
}
