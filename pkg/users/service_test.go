// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_users.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Register(t *testing.T) {
	newUser := &types.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret",
	}

	testCases := []struct {
		name        string
		user        *types.User
		setupMocks  func(*MockUserStoreInterface, *MockRecorderInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "registered",
			user: newUser,
			setupMocks: func(mockStore *MockUserStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				created := &types.User{UID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
				mockStore.EXPECT().CreateUser(gomock.Any(), newUser).Return(created, nil)
				mockRecorder.EXPECT().Created(gomock.Any(), created.UID, types.AuditObjectUser, created)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "missing field",
			user:        &types.User{FirstName: "Ada", Email: "ada@example.com", Password: "s3cret"},
			setupMocks:  func(*MockUserStoreInterface, *MockRecorderInterface, *MockLoggerInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name:        "malformed email",
			user:        &types.User{FirstName: "Ada", LastName: "Lovelace", Email: "nope", Password: "s3cret"},
			setupMocks:  func(*MockUserStoreInterface, *MockRecorderInterface, *MockLoggerInterface) {},
			expectedErr: types.ErrBadRequest,
		},
		{
			name: "duplicate email",
			user: newUser,
			setupMocks: func(mockStore *MockUserStoreInterface, mockRecorder *MockRecorderInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().CreateUser(gomock.Any(), newUser).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: types.ErrBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockUserStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStore, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "users.Service.Register").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStore, mockRecorder, mockLogger)

			user, err := s.Register(context.Background(), tc.user)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.UID == 0 {
				t.Error("expected assigned uid")
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	email := "ada@example.com"
	password := "s3cret"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockUserStoreInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "valid credentials",
			setupMocks: func(mockStore *MockUserStoreInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().GetUserByEmailAndPassword(gomock.Any(), email, password).
					Return(&types.User{UID: 1, Email: email}, nil)
			},
		},
		{
			name: "invalid credentials",
			setupMocks: func(mockStore *MockUserStoreInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().GetUserByEmailAndPassword(gomock.Any(), email, password).
					Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: types.ErrUnauthorized,
		},
		{
			name: "storage error",
			setupMocks: func(mockStore *MockUserStoreInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().GetUserByEmailAndPassword(gomock.Any(), email, password).
					Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockUserStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStore, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "users.Service.Login").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStore, mockLogger)

			user, err := s.Login(context.Background(), email, password)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Email != email {
				t.Errorf("expected email %s, got %s", email, user.Email)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	uid := int64(7)

	testCases := []struct {
		name        string
		setupMocks  func(*MockUserStoreInterface, *MockRecorderInterface)
		expectedErr error
	}{
		{
			name: "deleted",
			setupMocks: func(mockStore *MockUserStoreInterface, mockRecorder *MockRecorderInterface) {
				mockStore.EXPECT().DeleteUserByID(gomock.Any(), uid).Return(nil)
				mockRecorder.EXPECT().Deleted(gomock.Any(), uid, types.AuditObjectUser, gomock.Any())
			},
		},
		{
			name: "unknown user",
			setupMocks: func(mockStore *MockUserStoreInterface, mockRecorder *MockRecorderInterface) {
				mockStore.EXPECT().DeleteUserByID(gomock.Any(), uid).Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockUserStoreInterface(ctrl)
			mockRecorder := NewMockRecorderInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStore, mockRecorder, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "users.Service.Delete").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStore, mockRecorder)

			err := s.Delete(context.Background(), uid)

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
