// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/location-service/internal/types"
)

type AuthorizerInterface interface {
	IsOwner(ctx context.Context, uid, lid int64) bool
	IsOwnerOrAdmin(ctx context.Context, uid, lid int64) bool
}

type LocationStoreInterface interface {
	GetLocationByOwnerAndID(ctx context.Context, uid, lid int64) (*types.Location, error)
}

type AccessStoreInterface interface {
	GetGrantByGranteeAndLocation(ctx context.Context, uid, lid int64) (*types.AccessGrant, error)
}
