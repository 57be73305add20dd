// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locations

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/location-service/internal/http/types"
	"github.com/canonical/location-service/internal/logging"
	"github.com/canonical/location-service/internal/monitoring"
	"github.com/canonical/location-service/internal/tracing"
	"github.com/canonical/location-service/internal/types"
	"github.com/canonical/location-service/pkg/authentication"
)

type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type API struct {
	service    ServiceInterface
	authorizer AuthorizerInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authorizer AuthorizerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.authorizer = authorizer

	a.validate = validator.New()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/locations/all", a.handleListAll)
	mux.Get("/user/locations", a.handleListOwned)
	mux.Get("/locations/{lid}", a.handleDetail)
	mux.Post("/locations", a.handleCreate)
	mux.Delete("/locations/{lid}", a.handleDelete)
}

// handleListAll returns every location the caller can see, owned and
// shared alike.
func (a *API) handleListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "locations.API.handleListAll")
	defer span.End()

	uid, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return
	}

	locations, err := a.service.ListForUser(ctx, uid)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, locations)
}

func (a *API) handleListOwned(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "locations.API.handleListOwned")
	defer span.End()

	uid, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return
	}

	details, err := a.service.ListOwned(ctx, uid)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, details)
}

func (a *API) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "locations.API.handleDetail")
	defer span.End()

	uid, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return
	}

	lid, err := strconv.ParseInt(chi.URLParam(r, "lid"), 10, 64)
	if err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid location id: %w", types.ErrBadRequest))
		return
	}

	if !a.authorizer.IsOwnerOrAdmin(ctx, uid, lid) {
		httptypes.WriteErrorResponse(w, fmt.Errorf("access denied: %w", types.ErrForbidden))
		return
	}

	location, err := a.service.Get(ctx, lid)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, location)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "locations.API.handleCreate")
	defer span.End()

	uid, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return
	}

	req := new(CreateLocationRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid request body: %w", types.ErrBadRequest))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("%v: %w", err, types.ErrBadRequest))
		return
	}

	location, err := a.service.Create(ctx, uid, req.Name, req.Address)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, location)
}

// handleDelete removes a location the caller owns or administers,
// together with every grant on it.
func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "locations.API.handleDelete")
	defer span.End()

	uid, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return
	}

	lid, err := strconv.ParseInt(chi.URLParam(r, "lid"), 10, 64)
	if err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid location id: %w", types.ErrBadRequest))
		return
	}

	if !a.authorizer.IsOwnerOrAdmin(ctx, uid, lid) {
		httptypes.WriteErrorResponse(w, fmt.Errorf("access denied: %w", types.ErrForbidden))
		return
	}

	if err := a.service.Delete(ctx, uid, lid); err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}
