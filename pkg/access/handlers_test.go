// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/canonical/location-service/internal/http/types"
	"github.com/canonical/location-service/internal/types"
	"github.com/canonical/location-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go

func TestAPI_HandleGrant(t *testing.T) {
	uid := int64(1)
	lid := int64(42)

	testCases := []struct {
		name           string
		authorization  string
		target         string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockAuthorizerInterface)
		expectedStatus int
	}{
		{
			name:          "created",
			authorization: "1",
			target:        "/locations/42/access",
			requestBody:   GrantRequest{Email: "grantee@example.com", Mode: "read-only"},
			setupMocks: func(mockSvc *MockServiceInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().IsOwnerOrAdmin(gomock.Any(), uid, lid).Return(true)
				mockSvc.EXPECT().Grant(gomock.Any(), uid, "grantee@example.com", lid, types.AccessModeReadOnly).
					Return(&types.AccessGrant{AID: 10, UID: 2, LID: lid, Mode: types.AccessModeReadOnly}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing principal",
			authorization:  "",
			target:         "/locations/42/access",
			requestBody:    GrantRequest{Email: "grantee@example.com", Mode: "read-only"},
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid location id",
			authorization:  "1",
			target:         "/locations/abc/access",
			requestBody:    GrantRequest{Email: "grantee@example.com", Mode: "read-only"},
			setupMocks:     func(*MockServiceInterface, *MockAuthorizerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "forbidden",
			authorization: "1",
			target:        "/locations/42/access",
			requestBody:   GrantRequest{Email: "grantee@example.com", Mode: "read-only"},
			setupMocks: func(mockSvc *MockServiceInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().IsOwnerOrAdmin(gomock.Any(), uid, lid).Return(false)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:          "invalid email",
			authorization: "1",
			target:        "/locations/42/access",
			requestBody:   GrantRequest{Email: "not-an-email", Mode: "read-only"},
			setupMocks: func(mockSvc *MockServiceInterface, mockAuthz *MockAuthorizerInterface) {
				mockAuthz.EXPECT().IsOwnerOrAdmin(gomock.Any(), uid, lid).Return(true)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				}).AnyTimes()

			tc.setupMocks(mockService, mockAuthz)

			router := chi.NewRouter()
			router.Use(authentication.NewMiddleware(mockTracer, mockMonitor, mockLogger).Authenticate())
			NewAPI(mockService, mockAuthz, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(router)

			body, _ := json.Marshal(tc.requestBody)
			req := httptest.NewRequest(http.MethodPost, tc.target, bytes.NewReader(body))
			if tc.authorization != "" {
				req.Header.Set("Authorization", tc.authorization)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rec.Code)
			}
		})
	}
}

func TestAPI_HandleRevoke(t *testing.T) {
	uid := int64(1)
	lid := int64(42)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	mockAuthz.EXPECT().IsOwnerOrAdmin(gomock.Any(), uid, lid).Return(true)
	mockService.EXPECT().Revoke(gomock.Any(), uid, lid, "grantee@example.com").Return(true, nil)

	router := chi.NewRouter()
	router.Use(authentication.NewMiddleware(mockTracer, mockMonitor, mockLogger).Authenticate())
	NewAPI(mockService, mockAuthz, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(router)

	body, _ := json.Marshal(GranteeRequest{Email: "grantee@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/locations/42/access/revoke", bytes.NewReader(body))
	req.Header.Set("Authorization", "1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp httptypes.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestAPI_HandleList(t *testing.T) {
	uid := int64(1)
	lid := int64(42)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	mockAuthz.EXPECT().IsOwnerOrAdmin(gomock.Any(), uid, lid).Return(true)
	mockService.EXPECT().ListLocationUsers(gomock.Any(), lid).Return([]*types.UserAccess{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", AccessType: types.AccessModeAdmin},
	}, nil)

	router := chi.NewRouter()
	router.Use(authentication.NewMiddleware(mockTracer, mockMonitor, mockLogger).Authenticate())
	NewAPI(mockService, mockAuthz, mockTracer, mockMonitor, mockLogger).RegisterEndpoints(router)

	req := httptest.NewRequest(http.MethodGet, "/locations/42/access", nil)
	req.Header.Set("Authorization", "1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
