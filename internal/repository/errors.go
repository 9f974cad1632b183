// Package repository provides data access over the JSON document
// store.  Sentinel errors let handlers distinguish failure scenarios
// and pick the matching HTTP status without string matching.
package repository

import "errors"

// ErrCaseNotFound is returned when a case lookup matches no stored
// record, or when a public lookup hits a rejected case.  Handlers
// translate this into HTTP 404.
var ErrCaseNotFound = errors.New("case not found")

// ErrUserNotFound is returned when no account exists for an email.
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidStatus is returned when a moderation transition names a
// value outside the fixed PENDING/APPROVED/REJECTED set.  Handlers
// translate this into HTTP 400.
var ErrInvalidStatus = errors.New("invalid status")

// ErrEmailRequired is returned when a subscription upsert arrives
// without an email address.
var ErrEmailRequired = errors.New("email required")
