// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type API struct {
	service ServiceInterface

	validate *validator.Validate
	tracer   tracing.TracingInterface
	monitor  monitoring.MonitorInterface
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.validate = validator.New()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// RegisterPublicEndpoints mounts the routes reachable without a
// principal.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Post("/register", a.handleRegister)
	mux.Post("/login", a.handleLogin)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/users/{uid}", a.handleGet)
	mux.Delete("/users/{uid}", a.handleDelete)
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleRegister")
	defer span.End()

	req := new(RegisterRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid request body: %w", types.ErrBadRequest))
		return
	}

	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("%v: %w", err, types.ErrBadRequest))
		return
	}

	user, err := a.service.Register(ctx, &types.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, user)
}

// handleLogin exchanges credentials for the caller's principal. The
// resolved uid travels back in the Authorization header, the same
// header authenticated requests present.
func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleLogin")
	defer span.End()

	req := new(LoginRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid request body: %w", types.ErrBadRequest))
		return
	}

	// A malformed credential pair is indistinguishable from a wrong one.
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid credentials: %w", types.ErrUnauthorized))
		return
	}

	user, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	w.Header().Set("Authorization", strconv.FormatInt(user.UID, 10))
	httptypes.WriteResponse(w, http.StatusOK, user)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleGet")
	defer span.End()

	uid, ok := a.authorizeSelf(ctx, w, r)
	if !ok {
		return
	}

	user, err := a.service.Get(ctx, uid)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, user)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.handleDelete")
	defer span.End()

	uid, ok := a.authorizeSelf(ctx, w, r)
	if !ok {
		return
	}

	if err := a.service.Delete(ctx, uid); err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}

// authorizeSelf lets a user operate on their own record only.
func (a *API) authorizeSelf(ctx context.Context, w http.ResponseWriter, r *http.Request) (int64, bool) {
	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok {
		httptypes.WriteErrorResponse(w, fmt.Errorf("missing principal: %w", types.ErrUnauthorized))
		return 0, false
	}

	uid, err := strconv.ParseInt(chi.URLParam(r, "uid"), 10, 64)
	if err != nil {
		httptypes.WriteErrorResponse(w, fmt.Errorf("invalid user id: %w", types.ErrBadRequest))
		return 0, false
	}

	if uid != principal {
		httptypes.WriteErrorResponse(w, fmt.Errorf("access denied: %w", types.ErrForbidden))
		return 0, false
	}

	return uid, true
}
