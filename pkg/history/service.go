// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
)

var _ RecorderInterface = (*Service)(nil)

// Service records audit events. Recording failures are logged and never
// fail the business operation that produced them.
type Service struct {
	store AuditStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(store AuditStoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		store:   store,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Created(ctx context.Context, actionBy int64, objectType string, object interface{}) {
	ctx, span := s.tracer.Start(ctx, "history.Service.Created")
	defer span.End()

	s.record(ctx, actionBy, objectType, types.AuditActionCreated, s.marshal(object))
}

func (s *Service) Updated(ctx context.Context, actionBy int64, objectType string, oldObject, newObject interface{}) {
	ctx, span := s.tracer.Start(ctx, "history.Service.Updated")
	defer span.End()

	details := fmt.Sprintf("%s -> %s", s.marshal(oldObject), s.marshal(newObject))
	s.record(ctx, actionBy, objectType, types.AuditActionUpdated, details)
}

func (s *Service) Deleted(ctx context.Context, actionBy int64, objectType string, object interface{}) {
	ctx, span := s.tracer.Start(ctx, "history.Service.Deleted")
	defer span.End()

	s.record(ctx, actionBy, objectType, types.AuditActionDeleted, s.marshal(object))
}

func (s *Service) record(ctx context.Context, actionBy int64, objectType, action, details string) {
	event := &types.AuditEvent{
		ID:         uuid.NewString(),
		ActionBy:   actionBy,
		ObjectType: objectType,
		Action:     action,
		Details:    details,
	}

	if err := s.store.CreateAuditEvent(ctx, event); err != nil {
		s.logger.Errorf("failed to record %s %s event: %v", objectType, action, err)
	}
}

func (s *Service) marshal(object interface{}) string {
	data, err := json.Marshal(object)
	if err != nil {
		s.logger.Errorf("failed to marshal audit payload: %v", err)
		return "{}"
	}
	return string(data)
}
