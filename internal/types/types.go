// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// AccessMode is the level at which a location is shared with a grantee.
type AccessMode string

const (
	AccessModeAdmin    AccessMode = "admin"
	AccessModeReadOnly AccessMode = "read-only"

	// AccessTypeOwner tags rows in the aggregated view that the caller
	// owns outright. It is never stored in the access table.
	AccessTypeOwner = "owner"
)

// Valid reports whether the mode is one of the two recognized values.
func (m AccessMode) Valid() bool {
	return m == AccessModeAdmin || m == AccessModeReadOnly
}

// Other returns the opposite element of the two-mode set.
func (m AccessMode) Other() AccessMode {
	if m == AccessModeAdmin {
		return AccessModeReadOnly
	}
	return AccessModeAdmin
}

type User struct {
	UID       int64  `db:"uid" json:"uid"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`
	Password  string `db:"password" json:"-"`
}

type Location struct {
	LID     int64  `db:"lid" json:"lid"`
	UID     int64  `db:"uid" json:"uid"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
}

// AccessGrant authorizes one user to access one location at a given
// mode. At most one grant exists per (uid, lid) pair, and never for the
// location's own owner.
type AccessGrant struct {
	AID  int64      `db:"aid" json:"aid"`
	UID  int64      `db:"uid" json:"uid"`
	LID  int64      `db:"lid" json:"lid"`
	Mode AccessMode `db:"type" json:"mode"`
}

// SharedLocation is one row of the aggregated per-user view. Email is
// the owning user's email; AccessType is "owner" or the grant's mode.
type SharedLocation struct {
	LID        int64  `json:"lid"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	AccessType string `json:"access_type"`
}

// UserAccess describes one grantee on a location.
type UserAccess struct {
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email"`
	AccessType AccessMode `json:"access_type"`
}

// LocationDetail is an owned location together with its grants.
type LocationDetail struct {
	Location *Location      `json:"location"`
	Accesses []*AccessGrant `json:"accesses"`
}

// AuditEvent records who changed what. Produced by the services,
// persisted by the audit store, never consumed by the core.
type AuditEvent struct {
	ID         string    `db:"id" json:"id"`
	ActionBy   int64     `db:"action_by" json:"action_by"`
	ObjectType string    `db:"object_type" json:"object_type"`
	Action     string    `db:"action" json:"action"`
	Details    string    `db:"details" json:"details"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

const (
	AuditObjectAccess   = "ACCESS"
	AuditObjectLocation = "LOCATION"
	AuditObjectUser     = "USER"

	AuditActionCreated = "CREATED"
	AuditActionUpdated = "UPDATED"
	AuditActionDeleted = "DELETED"
)
