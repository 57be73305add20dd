// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type principalContextKey struct{}

// ContextWithPrincipal attaches the authenticated caller uid.
func ContextWithPrincipal(ctx context.Context, uid int64) context.Context {
	return context.WithValue(ctx, principalContextKey{}, uid)
}

// PrincipalFromContext extracts the caller uid set by the middleware.
func PrincipalFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(principalContextKey{}).(int64)
	return uid, ok
}
