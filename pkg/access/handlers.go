// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
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

type GrantRequest struct {
	Email string `json:"email" validate:"required,email"`
	Mode  string `json:"mode" validate:"required"`
}

type GranteeRequest struct {
	Email string `json:"email" validate:"required,email"`
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
	mux.Get("/locations/{lid}/access", a.handleList)
	mux.Post("/locations/{lid}/access", a.handleGrant)
	mux.Put("/locations/{lid}/access", a.handleToggle)
	mux.Post("/locations/{lid}/access/revoke", a.handleRevoke)
}

func (a *API) handleGrant(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.handleGrant")
	defer span.End()

	uid, lid, ok := a.authorizeOwnerOrAdmin(ctx, w, r)
	if !ok {
		return
	}

	req := new(GrantRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid request body: %w", types.ErrBadRequest))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("%v: %w", err, types.ErrBadRequest))
		return
	}

	grant, err := a.service.Grant(ctx, uid, req.Email, lid, types.AccessMode(req.Mode))
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, grant)
}

func (a *API) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.handleToggle")
	defer span.End()

	uid, lid, ok := a.authorizeOwnerOrAdmin(ctx, w, r)
	if !ok {
		return
	}

	req := new(GranteeRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid request body: %w", types.ErrBadRequest))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("%v: %w", err, types.ErrBadRequest))
		return
	}

	grant, err := a.service.Toggle(ctx, uid, lid, req.Email)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, grant)
}

func (a *API) handleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.handleRevoke")
	defer span.End()

	uid, lid, ok := a.authorizeOwnerOrAdmin(ctx, w, r)
	if !ok {
		return
	}

	req := new(GranteeRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid request body: %w", types.ErrBadRequest))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("%v: %w", err, types.ErrBadRequest))
		return
	}

	deleted, err := a.service.Revoke(ctx, uid, lid, req.Email)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, map[string]bool{"revoked": deleted})
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.handleList")
	defer span.End()

	_, lid, ok := a.authorizeOwnerOrAdmin(ctx, w, r)
	if !ok {
		return
	}

	users, err := a.service.ListLocationUsers(ctx, lid)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, users)
}

// authorizeOwnerOrAdmin resolves the caller and target location and
// consults the authorization engine before any state-changing or
// data-returning work. Writes the error response on failure.
func (a *API) authorizeOwnerOrAdmin(ctx context.Context, w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	uid, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return 0, 0, false
	}

	lid, err := strconv.ParseInt(chi.URLParam(r, "lid"), 10, 64)
	if err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid location id: %w", types.ErrBadRequest))
		return 0, 0, false
	}

	if !a.authorizer.IsOwnerOrAdmin(ctx, uid, lid) {
		httptypes.WriteErrorResponse(w, fmt.Errorf("access denied: %w", types.ErrForbidden))
		return 0, 0, false
	}

	return uid, lid, true
}
