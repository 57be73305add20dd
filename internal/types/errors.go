// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

// Domain error sentinels. Services wrap them with %w; the HTTP layer
// maps them to status codes in one place. Anything not matching one of
// these is treated as an infrastructure failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrBadRequest   = errors.New("bad request")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)
