// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

func TestLessOrdersByChaosFirst(t *testing.T) {
	low := emptyDeck()
	low.Play[0] = mustPile(t, "KS", "QS")

	high := emptyDeck()
	high.Play[0] = mustPile(t, "KS", "QH")

	if !low.Less(high) {
		t.Errorf("a lower-chaos deck should sort before a higher-chaos one")
	}
	if high.Less(low) {
		t.Errorf("Less should not be symmetric here")
	}
}

func TestLessTieBreaksOnWeight(t *testing.T) {
	a := emptyDeck()
	a.Play[0] = mustPile(t, "KS", "QH") // chaos 2, nine free plays
	b := emptyDeck()
	b.Play[0] = mustPile(t, "KS", "QH")
	b.Play[1] = CreateEmpty() // already empty: chaos and free plays stay equal to a's

	// Give b strictly more playable+inOff+freePlays by handing it a
	// completed foundation run the other lacks.
	for i := 0; i < 1; i++ {
		b.Off = b.Off.AddCard(NewCard(King, Spades, true, false))
	}

	if !b.Less(a) {
		t.Errorf("a deck with a completed foundation run should sort first once chaos ties")
	}
}

func TestLessDeterministicTieBreakOnID(t *testing.T) {
	a := emptyDeck()
	a.Play[0] = mustPile(t, "KS")
	b := emptyDeck()
	b.Play[1] = mustPile(t, "KS")

	got := a.Less(b)
	want := a.ID() < b.ID()
	if got != want {
		t.Errorf("Less fell back to ID tie-break incorrectly: got %v, want %v", got, want)
	}
	// Flipping operands must flip the result, since no other field differs.
	if a.Less(b) == b.Less(a) {
		t.Errorf("exactly one of a.Less(b)/b.Less(a) should hold when only ID differs")
	}
}

func TestSortByWeightOrdersAscending(t *testing.T) {
	decks := make([]*Deck, 0, 4)
	for _, tokens := range [][]string{
		{"KS", "QH"}, // chaos 2
		{"KS", "QS"}, // chaos 1
		nil,          // chaos 0
		{"KS", "JS"}, // chaos 2 (rank skip)
	} {
		d := emptyDeck()
		d.Play[0] = mustPile(t, tokens...)
		decks = append(decks, d)
	}

	SortByWeight(decks)

	for i := 1; i < len(decks); i++ {
		if decks[i].Less(decks[i-1]) {
			t.Fatalf("decks not sorted ascending at index %d: chaos %d before chaos %d",
				i, decks[i-1].Chaos(), decks[i].Chaos())
		}
	}
	if decks[0].Chaos() != 0 {
		t.Errorf("smallest-chaos deck should sort first, got chaos %d", decks[0].Chaos())
	}
}
