// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"strconv"

	httptypes "github.com/canonical/location-service/internal/http/types"
	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
)

// Middleware resolves the caller identity from the Authorization
// header. The token is an opaque numeric uid issued at login; there is
// no session protocol at this layer.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
				return
			}

			uid, err := strconv.ParseInt(header, 10, 64)
			if err != nil || uid <= 0 {
				httptypes.WriteErrorResponse(w, fmt.Errorf("invalid principal: %w", types.ErrBadRequest))
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), uid)))
		})
	}
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	mdw := new(Middleware)

	mdw.tracer = tracer
	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
