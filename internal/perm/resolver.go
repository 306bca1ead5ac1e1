// Package perm computes effective permissions from a user's applicable
// roles in a room.
package perm

import (
	"sort"

	"github.com/roomwatch/roomwatch/internal/db/models"
)

// sortRoles orders roles ascending by position, ties broken by ID so
// resolution is a total order. The input slice is not modified.
func sortRoles(roles []models.Role) []models.Role {
	sorted := make([]models.Role, len(roles))
	copy(sorted, roles)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}

		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// resolveFlag scans pre-sorted roles and returns the first definite state.
// All-unset falls through to a deny.
func resolveFlag(sorted []models.Role, flag models.PermissionFlag) bool {
	for i := range sorted {
		switch sorted[i].Permissions.Get(flag) {
		case models.PermAllowed:
			return true
		case models.PermForbidden:
			return false
		case models.PermUnset:
			continue
		}
	}

	// default deny: resolution never yields an unset outcome
	return false
}

// resolveTimeout scans pre-sorted roles and returns the first explicit
// delay. All-inherit falls through to no delay; unlike the flag rule this
// one fails open, on purpose, since the timeout is an operational knob and
// not an access gate.
func resolveTimeout(sorted []models.Role) int {
	for i := range sorted {
		if sorted[i].MessageTimeout.Explicit() {
			return sorted[i].MessageTimeout.Seconds()
		}
	}

	return 0
}

// Resolve computes the effective answer for a single flag: the
// highest-precedence (lowest position) role with a definite value wins.
// The result is always a definite allow or deny.
func Resolve(roles []models.Role, flag models.PermissionFlag) bool {
	return resolveFlag(sortRoles(roles), flag)
}

// ResolveTimeout computes the effective message delay in seconds:
// the highest-precedence role with an explicit (>= 0) timeout wins.
func ResolveTimeout(roles []models.Role) int {
	return resolveTimeout(sortRoles(roles))
}

// Effective is the resolved permission vector for one (user, room) pair.
// It is immutable after construction and safe for concurrent use.
type Effective struct {
	allowed map[models.PermissionFlag]bool
	timeout int
}

// Allows reports the resolved answer for the given flag.
func (e *Effective) Allows(flag models.PermissionFlag) bool {
	return e.allowed[flag]
}

// MessageTimeout returns the resolved delay between messages in seconds.
func (e *Effective) MessageTimeout() int {
	return e.timeout
}

// Vector returns a copy of the resolved flag vector.
func (e *Effective) Vector() map[models.PermissionFlag]bool {
	out := make(map[models.PermissionFlag]bool, len(e.allowed))
	for flag, allowed := range e.allowed {
		out[flag] = allowed
	}

	return out
}

// ResolveAll resolves the entire catalog in one pass: the roles are sorted
// once and every flag scans the same order, so the cost stays linear in the
// number of applicable roles per flag.
func ResolveAll(roles []models.Role) *Effective {
	sorted := sortRoles(roles)

	eff := &Effective{
		allowed: make(map[models.PermissionFlag]bool, len(models.Flags)),
		timeout: resolveTimeout(sorted),
	}

	for _, flag := range models.Flags {
		eff.allowed[flag] = resolveFlag(sorted, flag)
	}

	return eff
}
