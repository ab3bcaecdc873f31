// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for index-set operations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - NewOptions resolver, consumed by every ...Option operation.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Membership strategy decides how Delete/DeleteRows/DeleteColumns test
//     whether a position belongs to the deletion set. Both strategies return
//     identical results and identical errors; only the cost differs:
//     MembershipLinear is O(n·k) time and O(1) extra space,
//     MembershipBitmap is O(n+k) time and O(n) extra space.
package matrix

// Membership selects the index-set membership test used by deletions.
type Membership int

const (
	// MembershipLinear scans the index set for each position.
	MembershipLinear Membership = iota
	// MembershipBitmap marks deleted positions in a []bool of the operand length.
	MembershipBitmap
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMembership keeps the linear scan: index sets are expected to be
	// small relative to the operand.
	DefaultMembership = MembershipLinear
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	membership Membership // DefaultMembership
}

// Membership reports the configured membership strategy.
func (o Options) Membership() Membership { return o.membership }

// WithBitmapMembership switches deletions to the bitmap membership test.
// Implementation:
//   - Stage 1: set membership=MembershipBitmap.
//
// Behavior highlights:
//   - Observable results and errors are identical to the linear strategy.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer it when the index set is a large fraction of the operand.
func WithBitmapMembership() Option {
	return func(o *Options) { o.membership = MembershipBitmap }
}

// WithLinearMembership restores the default linear scan.
func WithLinearMembership() Option {
	return func(o *Options) { o.membership = MembershipLinear }
}

// NewOptions applies user options in order over the documented defaults;
// nil options are skipped. Callers may use it to inspect the effective
// configuration.
func NewOptions(user ...Option) Options {
	o := Options{
		membership: DefaultMembership,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
