// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/location-service/internal/types"
)

type ServiceInterface interface {
	Register(ctx context.Context, user *types.User) (*types.User, error)
	Login(ctx context.Context, email, password string) (*types.User, error)
	Get(ctx context.Context, uid int64) (*types.User, error)
	Delete(ctx context.Context, uid int64) error
}

type UserStoreInterface interface {
	GetUserByID(ctx context.Context, uid int64) (*types.User, error)
	GetUserByEmailAndPassword(ctx context.Context, email, password string) (*types.User, error)
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	DeleteUserByID(ctx context.Context, uid int64) error
}

type RecorderInterface interface {
	Created(ctx context.Context, actionBy int64, objectType string, object interface{})
	Updated(ctx context.Context, actionBy int64, objectType string, oldObject, newObject interface{})
	Deleted(ctx context.Context, actionBy int64, objectType string, object interface{})
}
