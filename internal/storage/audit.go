// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"github.com/canonical/location-service/internal/types"
)

func (s *Storage) CreateAuditEvent(ctx context.Context, event *types.AuditEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAuditEvent")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("history").
		Columns("id", "action_by", "object_type", "action", "details").
		Values(event.ID, event.ActionBy, event.ObjectType, event.Action, event.Details).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}

	return nil
}
