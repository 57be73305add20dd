// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/storage"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/pkg/access"
	"github.com/canonical/location-service/pkg/authentication"
	"github.com/canonical/location-service/pkg/authorization"
	"github.com/canonical/location-service/pkg/history"
	"github.com/canonical/location-service/pkg/locations"
	"github.com/canonical/location-service/pkg/metrics"
	"github.com/canonical/location-service/pkg/status"
	"github.com/canonical/location-service/pkg/users"
)

func NewRouter(
	s storage.StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	recorder := history.NewService(s, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(s, s, tracer, monitor, logger)

	userService := users.NewService(s, recorder, tracer, monitor, logger)
	locationService := locations.NewService(s, s, s, recorder, tracer, monitor, logger)
	accessService := access.NewService(s, s, recorder, tracer, monitor, logger)

	userAPI := users.NewAPI(userService, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	userAPI.RegisterPublicEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(tracer, monitor, logger).Authenticate())

		userAPI.RegisterEndpoints(r)
		locations.NewAPI(locationService, authorizer, tracer, monitor, logger).RegisterEndpoints(r)
		access.NewAPI(accessService, authorizer, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         300,
		},
	)
}
