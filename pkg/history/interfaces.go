// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package history

import (
	"context"

	"github.com/canonical/location-service/internal/types"
)

type RecorderInterface interface {
	Created(ctx context.Context, actionBy int64, objectType string, object interface{})
	Updated(ctx context.Context, actionBy int64, objectType string, oldObject, newObject interface{})
	Deleted(ctx context.Context, actionBy int64, objectType string, object interface{})
}

type AuditStoreInterface interface {
	CreateAuditEvent(ctx context.Context, event *types.AuditEvent) error
}
