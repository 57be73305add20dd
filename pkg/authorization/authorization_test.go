// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAuthorizer_IsOwner(t *testing.T) {
	uid := int64(7)
	lid := int64(42)

	testCases := []struct {
		name           string
		uid            int64
		setupMocks     func(*MockLocationStoreInterface, *MockLoggerInterface)
		expectedResult bool
	}{
		{
			name: "owner",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).
					Return(&types.Location{LID: lid, UID: uid}, nil)
			},
			expectedResult: true,
		},
		{
			name: "not owner",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).
					Return(nil, storage.ErrNotFound)
			},
			expectedResult: false,
		},
		{
			name:           "invalid uid",
			uid:            0,
			setupMocks:     func(*MockLocationStoreInterface, *MockLoggerInterface) {},
			expectedResult: false,
		},
		{
			name: "store error denies",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).
					Return(nil, errors.New("connection refused"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedResult: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLocations := NewMockLocationStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockLocations, mockAccess, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.IsOwner").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockLocations, mockLogger)

			if result := a.IsOwner(context.Background(), tc.uid, lid); result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_IsOwnerOrAdmin(t *testing.T) {
	uid := int64(7)
	lid := int64(42)
	location := &types.Location{LID: lid, UID: uid}

	testCases := []struct {
		name           string
		uid            int64
		setupMocks     func(*MockLocationStoreInterface, *MockAccessStoreInterface, *MockLoggerInterface)
		expectedResult bool
	}{
		{
			name: "owner without grant",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockAccess *MockAccessStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).Return(location, nil)
				mockAccess.EXPECT().GetGrantByGranteeAndLocation(gomock.Any(), uid, lid).Return(nil, storage.ErrNotFound)
			},
			expectedResult: true,
		},
		{
			name: "admin grantee",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockAccess *MockAccessStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).Return(nil, storage.ErrNotFound)
				mockAccess.EXPECT().GetGrantByGranteeAndLocation(gomock.Any(), uid, lid).
					Return(&types.AccessGrant{AID: 1, UID: uid, LID: lid, Mode: types.AccessModeAdmin}, nil)
			},
			expectedResult: true,
		},
		{
			name: "read-only grantee denied",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockAccess *MockAccessStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).Return(nil, storage.ErrNotFound)
				mockAccess.EXPECT().GetGrantByGranteeAndLocation(gomock.Any(), uid, lid).
					Return(&types.AccessGrant{AID: 1, UID: uid, LID: lid, Mode: types.AccessModeReadOnly}, nil)
			},
			expectedResult: false,
		},
		{
			name: "neither owner nor grantee",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockAccess *MockAccessStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).Return(nil, storage.ErrNotFound)
				mockAccess.EXPECT().GetGrantByGranteeAndLocation(gomock.Any(), uid, lid).Return(nil, storage.ErrNotFound)
			},
			expectedResult: false,
		},
		{
			name: "owner lookup error degrades to grant check",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockAccess *MockAccessStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).
					Return(nil, errors.New("connection refused"))
				mockAccess.EXPECT().GetGrantByGranteeAndLocation(gomock.Any(), uid, lid).
					Return(&types.AccessGrant{AID: 1, UID: uid, LID: lid, Mode: types.AccessModeAdmin}, nil)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedResult: true,
		},
		{
			name: "both lookups fail denies",
			uid:  uid,
			setupMocks: func(mockLocations *MockLocationStoreInterface, mockAccess *MockAccessStoreInterface, mockLogger *MockLoggerInterface) {
				mockLocations.EXPECT().GetLocationByOwnerAndID(gomock.Any(), uid, lid).
					Return(nil, errors.New("connection refused"))
				mockAccess.EXPECT().GetGrantByGranteeAndLocation(gomock.Any(), uid, lid).
					Return(nil, errors.New("connection refused"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(2)
			},
			expectedResult: false,
		},
		{
			name:           "invalid uid",
			uid:            -1,
			setupMocks:     func(*MockLocationStoreInterface, *MockAccessStoreInterface, *MockLoggerInterface) {},
			expectedResult: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLocations := NewMockLocationStoreInterface(ctrl)
			mockAccess := NewMockAccessStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockLocations, mockAccess, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.IsOwnerOrAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockLocations, mockAccess, mockLogger)

			if result := a.IsOwnerOrAdmin(context.Background(), tc.uid, lid); result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}
