// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/location-service/internal/types"
)

type ServiceInterface interface {
	Grant(ctx context.Context, ownerUID int64, granteeEmail string, lid int64, mode types.AccessMode) (*types.AccessGrant, error)
	Revoke(ctx context.Context, ownerUID, lid int64, granteeEmail string) (bool, error)
	Toggle(ctx context.Context, ownerUID, lid int64, granteeEmail string) (*types.AccessGrant, error)
	ListLocationUsers(ctx context.Context, lid int64) ([]*types.UserAccess, error)
}

type UserStoreInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}

type AccessStoreInterface interface {
	UpsertGrant(ctx context.Context, uid, lid int64, mode types.AccessMode) (*types.AccessGrant, bool, error)
	ToggleGrantMode(ctx context.Context, uid, lid int64) (*types.AccessGrant, error)
	DeleteGrantByGranteeAndLocation(ctx context.Context, uid, lid int64) (bool, error)
	ListUsersByLocation(ctx context.Context, lid int64) ([]*types.UserAccess, error)
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
