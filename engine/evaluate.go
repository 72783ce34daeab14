// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// evaluate.go implements the frontier ordering used by the search: the
// "weighted" comparison of spec.md §4.6, and a shell sort over it in the
// style of the source engine's move ordering (engine/move_ordering.go),
// which keeps its own hand-rolled sort rather than reaching for the
// standard library's sort package.

package engine

// Less reports whether d should be searched before other: smaller chaos
// first, then larger playable+inOff+freePlays, then (only once chaos has
// bottomed out at zero) larger freePlays and smaller inOff, and finally
// smaller deck id as a deterministic tie-break.
func (d *Deck) Less(other *Deck) bool {
	dc, oc := d.Chaos(), other.Chaos()
	if dc != oc {
		return dc < oc
	}

	dw := d.PlayableCards() + d.InOff() + d.FreePlays()
	ow := other.PlayableCards() + other.InOff() + other.FreePlays()
	if dw != ow {
		return dw > ow
	}

	if dc == 0 {
		dfp, ofp := d.FreePlays(), other.FreePlays()
		if dfp != ofp {
			return dfp > ofp
		}
		dio, oio := d.InOff(), other.InOff()
		if dio != oio {
			return dio < oio
		}
	}

	return d.ID() < other.ID()
}

// Gaps from Best Increments for the Average Case of Shellsort, Marcin Ciura.
var shellSortGaps = [...]int{132, 57, 23, 10, 4, 1}

// SortByWeight orders decks in place by the §4.6 ordering, smallest first.
func SortByWeight(decks []*Deck) {
	for _, gap := range shellSortGaps {
		for i := gap; i < len(decks); i++ {
			j := i
			tmp := decks[j]
			for ; j >= gap && tmp.Less(decks[j-gap]); j -= gap {
				decks[j] = decks[j-gap]
			}
			decks[j] = tmp
		}
	}
}
