// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locations

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package locations -destination ./mock_locations.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package locations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package locations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package locations -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ListForUser(t *testing.T) {
	uid := int64(7)
	caller := &types.User{UID: uid, Email: "owner@example.com"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name          string
		setupMocks    func(*MockUserStoreInterface, *MockLocationStoreInterface)
		expectedCount int
		expectedErr   error
	}{
		{
			name: "owned and shared combined",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface) {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(caller, nil)
				mockLocations.EXPECT().ListLocationsByOwner(gomock.Any(), uid).Return([]*types.Location{
					{LID: 1, UID: uid, Name: "Home", Address: "1 Main St"},
					{LID: 2, UID: uid, Name: "Office", Address: "2 Main St"},
				}, nil)
				mockLocations.EXPECT().ListSharedLocations(gomock.Any(), uid).Return([]*types.SharedLocation{
					{LID: 3, Email: "friend@example.com", Name: "Cabin", Address: "3 Lake Rd", AccessType: "read-only"},
				}, nil)
			},
			expectedCount: 3,
		},
		{
			name: "no locations",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface) {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(caller, nil)
				mockLocations.EXPECT().ListLocationsByOwner(gomock.Any(), uid).Return([]*types.Location{}, nil)
				mockLocations.EXPECT().ListSharedLocations(gomock.Any(), uid).Return([]*types.SharedLocation{}, nil)
			},
			expectedCount: 0,
		},
		{
			name: "unknown user",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface) {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)
				mockLocations.EXPECT().ListLocationsByOwner(gomock.Any(), uid).Return([]*types.Location{}, nil).AnyTimes()
				mockLocations.EXPECT().ListSharedLocations(gomock.Any(), uid).Return([]*types.SharedLocation{}, nil).AnyTimes()
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "owned fetch fails",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface) {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(caller, nil).AnyTimes()
				mockLocations.EXPECT().ListLocationsByOwner(gomock.Any(), uid).Return(nil, dbErr)
				mockLocations.EXPECT().ListSharedLocations(gomock.Any(), uid).Return([]*types.SharedLocation{}, nil).AnyTimes()
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserStoreInterface(ctrl)
			mockLocations := NewMockLocationStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockUsers, mockLocations, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "locations.Service.ListForUser").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockUsers, mockLocations)

			result, err := s.ListForUser(context.Background(), uid)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result) != tc.expectedCount {
				t.Fatalf("expected %d locations, got %d", tc.expectedCount, len(result))
			}

			seen := make(map[int64]bool)
			for _, l := range result {
				if seen[l.LID] {
					t.Errorf("location %d appears twice", l.LID)
				}
				seen[l.LID] = true

				if l.AccessType == types.AccessTypeOwner && l.Email != caller.Email {
					t.Errorf("owned location %d carries email %s, want %s", l.LID, l.Email, caller.Email)
				}
			}
		})
	}
}

func TestService_ListOwned(t *testing.T) {
	uid := int64(7)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserStoreInterface(ctrl)
	mockLocations := NewMockLocationStoreInterface(ctrl)
	mockAccess := NewMockAccessStoreInterface(ctrl)
	mockRecorder := NewMockRecorderInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockUsers, mockLocations, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "locations.Service.ListOwned").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockLocations.EXPECT().ListLocationsByOwner(gomock.Any(), uid).Return([]*types.Location{
		{LID: 1, UID: uid, Name: "Home"},
		{LID: 2, UID: uid, Name: "Office"},
	}, nil)
	mockAccess.EXPECT().ListGrantsByLocation(gomock.Any(), int64(1)).Return([]*types.AccessGrant{
		{AID: 10, UID: 2, LID: 1, Mode: types.AccessModeAdmin},
	}, nil)
	mockAccess.EXPECT().ListGrantsByLocation(gomock.Any(), int64(2)).Return([]*types.AccessGrant{}, nil)

	details, err := s.ListOwned(context.Background(), uid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(details))
	}
	for _, d := range details {
		if d == nil || d.Location == nil {
			t.Fatal("missing detail entry")
		}
		if d.Location.LID == 1 && len(d.Accesses) != 1 {
			t.Errorf("expected 1 grant on location 1, got %d", len(d.Accesses))
		}
	}
}

func TestService_Create(t *testing.T) {
	uid := int64(7)
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockUserStoreInterface, *MockLocationStoreInterface, *MockRecorderInterface)
		expectedErr error
	}{
		{
			name: "created",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface, mockRecorder *MockRecorderInterface) {
				created := &types.Location{LID: 1, UID: uid, Name: "Home", Address: "1 Main St"}
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(&types.User{UID: uid}, nil)
				mockLocations.EXPECT().CreateLocation(gomock.Any(), &types.Location{UID: uid, Name: "Home", Address: "1 Main St"}).
					Return(created, nil)
				mockRecorder.EXPECT().Created(gomock.Any(), uid, types.AuditObjectLocation, created)
			},
		},
		{
			name: "unknown owner",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface, mockRecorder *MockRecorderInterface) {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "storage error",
			setupMocks: func(mockUsers *MockUserStoreInterface, mockLocations *MockLocationStoreInterface, mockRecorder *MockRecorderInterface) {
				mockUsers.EXPECT().GetUserByID(gomock.Any(), uid).Return(&types.User{UID: uid}, nil)
				mockLocations.EXPECT().CreateLocation(gomock.Any(), gomock.Any()).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserStoreInterface(ctrl)
			mockLocations := NewMockLocationStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockUsers, mockLocations, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "locations.Service.Create").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockUsers, mockLocations, mockRecorder)

			location, err := s.Create(context.Background(), uid, "Home", "1 Main St")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if location.LID == 0 {
				t.Error("expected assigned location id")
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	uid := int64(7)
	lid := int64(42)

	testCases := []struct {
		name        string
		setupMocks  func(*MockLocationStoreInterface, *MockRecorderInterface)
		expectedErr error
	}{
		{
			name: "deleted",
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockRecorder *MockRecorderInterface) {
				mockLocations.EXPECT().DeleteLocationByID(gomock.Any(), lid).Return(nil)
				mockRecorder.EXPECT().Deleted(gomock.Any(), uid, types.AuditObjectLocation, gomock.Any())
			},
		},
		{
			name: "unknown location",
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockRecorder *MockRecorderInterface) {
				mockLocations.EXPECT().DeleteLocationByID(gomock.Any(), lid).Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := NewMockUserStoreInterface(ctrl)
			mockLocations := NewMockLocationStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockUsers, mockLocations, mockAccess, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "locations.Service.Delete").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockLocations, mockRecorder)

			err := s.Delete(context.Background(), uid, lid)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
