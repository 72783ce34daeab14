// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move.go implements the three move kinds. The original solver packs
// these into one struct with two bool flags (off, talon); this module
// uses a sum type instead, which carries the same information as the
// flag pair but cannot encode an invalid combination of the two flags.

package engine

// Kind identifies which of the three move shapes a Move describes.
type Kind uint8

const (
	// Regular moves cards [Index..] from one tableau pile onto another.
	Regular Kind = iota
	// ToFoundation takes a completed 13-card run off a tableau pile.
	ToFoundation
	// FromReserve deals one card from a reserve row onto every tableau pile.
	FromReserve
)

// Move is a single candidate or recorded transition between Decks.
type Move struct {
	Kind  Kind
	From  uint8 // tableau pile index for Regular/ToFoundation
	To    uint8 // tableau pile index for Regular
	Index uint8 // start index of the moved run for Regular/ToFoundation
}

// NewRegular builds a Regular move.
func NewRegular(from, to, index int) Move {
	return Move{Kind: Regular, From: uint8(from), To: uint8(to), Index: uint8(index)}
}

// NewToFoundation builds a ToFoundation move.
func NewToFoundation(from, index int) Move {
	return Move{Kind: ToFoundation, From: uint8(from), Index: uint8(index)}
}

// NewFromReserve builds a FromReserve move.
func NewFromReserve(reserveIndex int) Move {
	return Move{Kind: FromReserve, From: uint8(reserveIndex)}
}
