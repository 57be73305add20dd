// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Grant(t *testing.T) {
	ownerUID := int64(1)
	granteeEmail := "grantee@example.com"
	grantee := &types.User{UID: 2, Email: granteeEmail}
	lid := int64(42)
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		mode          types.AccessMode
		setupMocks    func(*MockUserStoreInterface, *MockAccessStoreInterface, *MockRecorderInterface, *MockLoggerInterface)
		expectedGrant *types.AccessGrant
		expectedErr   error
	}{
		{
			name: "fresh grant records creation",
			mode: types.AccessModeReadOnly,
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				grant := &types.AccessGrant{AID: 10, UID: grantee.UID, LID: lid, Mode: types.AccessModeReadOnly}
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().UpsertGrant(gomock.Any(), grantee.UID, lid, types.AccessModeReadOnly).Return(grant, true, nil)
				mockRecorder.EXPECT().Created(gomock.Any(), grantee.UID, types.AuditObjectAccess, grant)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedGrant: &types.AccessGrant{AID: 10, UID: 2, LID: lid, Mode: types.AccessModeReadOnly},
		},
		{
			name: "regrant keeps id and records update",
			mode: types.AccessModeAdmin,
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				grant := &types.AccessGrant{AID: 10, UID: grantee.UID, LID: lid, Mode: types.AccessModeAdmin}
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().UpsertGrant(gomock.Any(), grantee.UID, lid, types.AccessModeAdmin).Return(grant, false, nil)
				mockRecorder.EXPECT().Updated(gomock.Any(), grantee.UID, types.AuditObjectAccess, gomock.Any(), grant)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedGrant: &types.AccessGrant{AID: 10, UID: 2, LID: lid, Mode: types.AccessModeAdmin},
		},
		{
			name:        "invalid mode",
			mode:        types.AccessMode("write"),
			setupMocks:  func(*MockUserStoreInterface, *MockAccessStoreInterface, *MockRecorderInterface, *MockLoggerInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name: "unknown grantee",
			mode: types.AccessModeReadOnly,
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage error",
			mode: types.AccessModeReadOnly,
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().UpsertGrant(gomock.Any(), grantee.UID, lid, types.AccessModeReadOnly).Return(nil, false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockUsers, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "access.Service.Grant").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockUsers, mockAccess, mockRecorder, mockLogger)

			grant, err := s.Grant(context.Background(), ownerUID, granteeEmail, lid, tc.mode)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *grant != *tc.expectedGrant {
				t.Errorf("expected grant %+v, got %+v", tc.expectedGrant, grant)
			}
		})
	}
}

func TestService_Revoke(t *testing.T) {
	ownerUID := int64(1)
	granteeEmail := "grantee@example.com"
	grantee := &types.User{UID: 2, Email: granteeEmail}
	lid := int64(42)
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		setupMocks      func(*MockUserStoreInterface, *MockAccessStoreInterface, *MockRecorderInterface, *MockLoggerInterface)
		expectedRevoked bool
		expectedErr     error
	}{
		{
			name: "revoked",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().DeleteGrantByGranteeAndLocation(gomock.Any(), grantee.UID, lid).Return(true, nil)
				mockRecorder.EXPECT().Deleted(gomock.Any(), ownerUID, types.AuditObjectAccess, gomock.Any())
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedRevoked: true,
		},
		{
			name: "nothing to revoke",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().DeleteGrantByGranteeAndLocation(gomock.Any(), grantee.UID, lid).Return(false, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedRevoked: false,
		},
		{
			name: "unknown grantee is a no-op",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedRevoked: false,
		},
		{
			name: "storage error",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().DeleteGrantByGranteeAndLocation(gomock.Any(), grantee.UID, lid).Return(false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockUsers, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "access.Service.Revoke").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockUsers, mockAccess, mockRecorder, mockLogger)

			revoked, err := s.Revoke(context.Background(), ownerUID, lid, granteeEmail)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if revoked != tc.expectedRevoked {
				t.Errorf("expected revoked %v, got %v", tc.expectedRevoked, revoked)
			}
		})
	}
}

func TestService_Toggle(t *testing.T) {
	ownerUID := int64(1)
	granteeEmail := "grantee@example.com"
	grantee := &types.User{UID: 2, Email: granteeEmail}
	lid := int64(42)
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(*MockUserStoreInterface, *MockAccessStoreInterface, *MockRecorderInterface, *MockLoggerInterface)
		expectedMode types.AccessMode
		expectedErr  error
	}{
		{
			name: "admin becomes read-only",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				flipped := &types.AccessGrant{AID: 10, UID: grantee.UID, LID: lid, Mode: types.AccessModeReadOnly}
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().ToggleGrantMode(gomock.Any(), grantee.UID, lid).Return(flipped, nil)
				mockRecorder.EXPECT().Updated(gomock.Any(), ownerUID, types.AuditObjectAccess,
					&types.AccessGrant{AID: 10, UID: grantee.UID, LID: lid, Mode: types.AccessModeAdmin}, flipped)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedMode: types.AccessModeReadOnly,
		},
		{
			name: "read-only becomes admin",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				flipped := &types.AccessGrant{AID: 10, UID: grantee.UID, LID: lid, Mode: types.AccessModeAdmin}
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().ToggleGrantMode(gomock.Any(), grantee.UID, lid).Return(flipped, nil)
				mockRecorder.EXPECT().Updated(gomock.Any(), ownerUID, types.AuditObjectAccess,
					&types.AccessGrant{AID: 10, UID: grantee.UID, LID: lid, Mode: types.AccessModeReadOnly}, flipped)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedMode: types.AccessModeAdmin,
		},
		{
			name: "no grant to toggle",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().ToggleGrantMode(gomock.Any(), grantee.UID, lid).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "unknown grantee",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage error",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockAccess *MockAccessStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil)
				mockAccess.EXPECT().ToggleGrantMode(gomock.Any(), grantee.UID, lid).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockUsers, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "access.Service.Toggle").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockUsers, mockAccess, mockRecorder, mockLogger)

			grant, err := s.Toggle(context.Background(), ownerUID, lid, granteeEmail)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if grant.Mode != tc.expectedMode {
				t.Errorf("expected mode %s, got %s", tc.expectedMode, grant.Mode)
			}
		})
	}
}

func TestService_ListLocationUsers(t *testing.T) {
	lid := int64(42)
	expected := []*types.UserAccess{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", AccessType: types.AccessModeAdmin},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", AccessType: types.AccessModeReadOnly},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserStoreInterface(ctrl)
	mockAccess := NewMockAccessStoreInterface(ctrl)
	mockRecorder := NewMockRecorderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockUsers, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "access.Service.ListLocationUsers").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockAccess.EXPECT().ListUsersByLocation(gomock.Any(), lid).Return(expected, nil)

	users, err := s.ListLocationUsers(context.Background(), lid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != len(expected) {
		t.Errorf("expected %d users, got %d", len(expected), len(users))
	}
}

// TestService_ShareLifecycle walks one grant through its whole life:
// share read-only, re-share as admin (same row), toggle back, revoke,
// revoke again, toggle what is gone.
func TestService_ShareLifecycle(t *testing.T) {
	ownerUID := int64(1)
	granteeEmail := "grantee@example.com"
	grantee := &types.User{UID: 2, Email: granteeEmail}
	lid := int64(42)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserStoreInterface(ctrl)
	mockAccess := NewMockAccessStoreInterface(ctrl)
	mockRecorder := NewMockRecorderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockUsers, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockRecorder.EXPECT().Created(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRecorder.EXPECT().Updated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockRecorder.EXPECT().Deleted(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockUsers.EXPECT().GetUserByEmail(gomock.Any(), granteeEmail).Return(grantee, nil).AnyTimes()

	// In-memory stand-in for the access table keyed on (uid, lid).
	var stored *types.AccessGrant
	nextAID := int64(100)

	mockAccess.EXPECT().UpsertGrant(gomock.Any(), grantee.UID, lid, gomock.Any()).DoAndReturn(
		func(ctx context.Context, uid, lid int64, mode types.AccessMode) (*types.AccessGrant, bool, error) {
			if stored == nil {
				stored = &types.AccessGrant{AID: nextAID, UID: uid, LID: lid, Mode: mode}
				nextAID++
				g := *stored
				return &g, true, nil
			}
			stored.Mode = mode
			g := *stored
			return &g, false, nil
		}).AnyTimes()
	mockAccess.EXPECT().ToggleGrantMode(gomock.Any(), grantee.UID, lid).DoAndReturn(
		func(ctx context.Context, uid, lid int64) (*types.AccessGrant, error) {
			if stored == nil {
				return nil, storage.ErrNotFound
			}
			stored.Mode = stored.Mode.Other()
			g := *stored
			return &g, nil
		}).AnyTimes()
	mockAccess.EXPECT().DeleteGrantByGranteeAndLocation(gomock.Any(), grantee.UID, lid).DoAndReturn(
		func(ctx context.Context, uid, lid int64) (bool, error) {
			if stored == nil {
				return false, nil
			}
			stored = nil
			return true, nil
		}).AnyTimes()

	ctx := context.Background()

	first, err := s.Grant(ctx, ownerUID, granteeEmail, lid, types.AccessModeReadOnly)
	if err != nil {
		t.Fatalf("initial grant failed: %v", err)
	}
	if first.Mode != types.AccessModeReadOnly {
		t.Fatalf("expected read-only, got %s", first.Mode)
	}

	second, err := s.Grant(ctx, ownerUID, granteeEmail, lid, types.AccessModeAdmin)
	if err != nil {
		t.Fatalf("regrant failed: %v", err)
	}
	if second.AID != first.AID {
		t.Errorf("regrant changed grant id: %d -> %d", first.AID, second.AID)
	}
	if second.Mode != types.AccessModeAdmin {
		t.Errorf("expected admin after regrant, got %s", second.Mode)
	}

	toggled, err := s.Toggle(ctx, ownerUID, lid, granteeEmail)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Mode != types.AccessModeReadOnly {
		t.Errorf("expected read-only after toggle, got %s", toggled.Mode)
	}

	back, err := s.Toggle(ctx, ownerUID, lid, granteeEmail)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if back.Mode != second.Mode {
		t.Errorf("two toggles should restore %s, got %s", second.Mode, back.Mode)
	}

	revoked, err := s.Revoke(ctx, ownerUID, lid, granteeEmail)
	if err != nil || !revoked {
		t.Fatalf("expected revoke to remove the grant, got (%v, %v)", revoked, err)
	}

	revoked, err = s.Revoke(ctx, ownerUID, lid, granteeEmail)
	if err != nil {
		t.Fatalf("second revoke errored: %v", err)
	}
	if revoked {
		t.Error("second revoke reported a removed grant")
	}

	if _, err := s.Toggle(ctx, ownerUID, lid, granteeEmail); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("toggle after revoke: expected not found, got %v", err)
	}
}
