// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "errors"

// Sentinel error kinds, wrapped with fmt.Errorf("%w: ...", ...) by callers
// that need to attach context (a token, a line number, a card).
var (
	// ErrInvalidToken is returned for an unparsable card or header token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrDeckInconsistent is returned when a game file holds more instances
	// of a card than the active variant allows, a suit the variant does not
	// deal, or a card before any section header. Pool cards left over after
	// AssignLeftCards are not an error.
	ErrDeckInconsistent = errors.New("deck inconsistent")
	// ErrSearchOverflow is returned when the search exceeds its
	// pre-allocated successor arena.
	ErrSearchOverflow = errors.New("search overflow")
	// ErrPoolExhausted is returned when AssignLeftCards runs out of pool
	// cards before every unknown slot is resolved.
	ErrPoolExhausted = errors.New("pool exhausted")
)
