// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/location-service/internal/types"
)

type UserStoreInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, uid int64) (*types.User, error)
	GetUserByEmailAndPassword(ctx context.Context, email, password string) (*types.User, error)
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	DeleteUserByID(ctx context.Context, uid int64) error
}

type LocationStoreInterface interface {
	GetLocationByOwnerAndID(ctx context.Context, uid, lid int64) (*types.Location, error)
	GetLocationByID(ctx context.Context, lid int64) (*types.Location, error)
	ListLocationsByOwner(ctx context.Context, uid int64) ([]*types.Location, error)
	ListSharedLocations(ctx context.Context, uid int64) ([]*types.SharedLocation, error)
	CreateLocation(ctx context.Context, location *types.Location) (*types.Location, error)
	DeleteLocationByID(ctx context.Context, lid int64) error
}

type AccessStoreInterface interface {
	GetGrantByGranteeAndLocation(ctx context.Context, uid, lid int64) (*types.AccessGrant, error)
	ListGrantsByLocation(ctx context.Context, lid int64) ([]*types.AccessGrant, error)
	ListUsersByLocation(ctx context.Context, lid int64) ([]*types.UserAccess, error)
	UpsertGrant(ctx context.Context, uid, lid int64, mode types.AccessMode) (*types.AccessGrant, bool, error)
	ToggleGrantMode(ctx context.Context, uid, lid int64) (*types.AccessGrant, error)
	DeleteGrantByGranteeAndLocation(ctx context.Context, uid, lid int64) (bool, error)
}

type AuditStoreInterface interface {
	CreateAuditEvent(ctx context.Context, event *types.AuditEvent) error
}

type StorageInterface interface {
	UserStoreInterface
	LocationStoreInterface
	AccessStoreInterface
	AuditStoreInterface
}
