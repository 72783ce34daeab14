// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// invariants_test.go is this module's perft analogue (see SPEC_FULL.md
// §3): instead of counting generated nodes against golden data, it walks
// random legal move sequences from seeded two-suit deals and asserts
// spec.md §8's invariants hold at every step.
package engine_test

import (
	"math/rand/v2"
	"testing"

	"spider/engine"
)

// dealTwoSuit builds a standard-shaped initial deal: four tableau piles
// of six cards, six of five (54 cards total), the remaining 50 cards
// split into five 10-card face-down reserve piles. Every card used comes
// from a full two-suit 104-card pack (4 copies of each of the 26
// Spades/Hearts (suit,rank) pairs), shuffled by a seeded RNG.
func dealTwoSuit(seed uint64) *engine.Deck {
	var pool []engine.Card
	for _, s := range []engine.Suit{engine.Spades, engine.Hearts} {
		for r := engine.Ace; r <= engine.King; r++ {
			for i := 0; i < 4; i++ {
				pool = append(pool, engine.NewCard(r, s, false, false))
			}
		}
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xabcdef))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	d := engine.NewDeck()
	next := 0
	for i := 0; i < engine.TableauPiles; i++ {
		n := 5
		if i < 4 {
			n = 6
		}
		for j := 0; j < n; j++ {
			c := pool[next]
			next++
			if j == n-1 {
				c = c.WithFaceUp(true)
			}
			d.AddCard(i, c)
		}
	}
	for i := 0; i < engine.ReservePiles; i++ {
		for j := 0; j < engine.CardsPerReserveDeal; j++ {
			d.AddCard(engine.TableauPiles+i, pool[next])
			next++
		}
	}
	return d
}

func totalCardInstances(d *engine.Deck) int {
	n := 0
	for _, p := range d.Play {
		n += p.CardCount()
	}
	for _, p := range d.Talon {
		n += p.CardCount()
	}
	n += d.Off.CardCount() * 13
	return n
}

func checkInvariants(t *testing.T, d *engine.Deck, step int) {
	t.Helper()
	if got := totalCardInstances(d); got != engine.MaxCards {
		t.Fatalf("step %d: total card instances = %d, want %d", step, got, engine.MaxCards)
	}
	if c := d.Off.CardCount(); c < 0 || c > 8 {
		t.Fatalf("step %d: Off.CardCount() = %d, want 0..8", step, c)
	}
	if d.IsWon() != (d.Off.CardCount() == 8) {
		t.Fatalf("step %d: IsWon() disagrees with Off.CardCount()==8", step)
	}
	for i, p := range d.Play {
		if !p.Empty() && !p.At(p.CardCount()-1).FaceUp() {
			t.Fatalf("step %d: play[%d] top card is face-down", step, i)
		}
	}
	for i, p := range d.Talon {
		if c := p.CardCount(); c != 0 && c != engine.CardsPerReserveDeal {
			t.Fatalf("step %d: talon[%d].CardCount() = %d, want 0 or %d", step, i, c, engine.CardsPerReserveDeal)
		}
	}
	if d.MovesIndex > engine.MaxMoves {
		t.Fatalf("step %d: MovesIndex = %d, exceeds MaxMoves %d", step, d.MovesIndex, engine.MaxMoves)
	}
}

func TestInvariantsHoldAlongRandomLegalWalks(t *testing.T) {
	const walks = 8
	const stepsPerWalk = 200

	for w := 0; w < walks; w++ {
		seed := uint64(w) + 1
		d := dealTwoSuit(seed)
		checkInvariants(t, d, 0)

		rng := rand.New(rand.NewPCG(seed^0x5a5a5a5a, seed))
		var moves []engine.Move
		for step := 1; step <= stepsPerWalk; step++ {
			d.GetMoves(&moves)
			if len(moves) == 0 {
				break
			}
			choice := moves[rng.IntN(len(moves))]
			var next engine.Deck
			d.ApplyMove(choice, &next)
			checkInvariants(t, &next, step)
			d = &next
			if d.IsWon() {
				break
			}
		}
	}
}

// Deck identity depends only on play and talon, not on off or on the move
// trail: two decks with identical tableau/reserve state but different
// foundations and different recorded move counts must share an id.
func TestDeckIDDependsOnlyOnPlayAndTalon(t *testing.T) {
	a := engine.NewDeck()
	a.AddCard(0, engine.NewCard(engine.Nine, engine.Hearts, true, false))

	b := engine.NewDeck()
	b.AddCard(0, engine.NewCard(engine.Nine, engine.Hearts, true, false))
	b.Off = b.Off.AddCard(engine.NewCard(engine.King, engine.Spades, true, false))
	b.Moves[0] = engine.NewFromReserve(0)
	b.MovesIndex = 1

	if a.ID() != b.ID() {
		t.Errorf("ID() should ignore Off and the move trail")
	}
}
