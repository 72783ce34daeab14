// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pile.go implements the immutable, interned Pile value and its global
// intern table. Two piles with identical card sequences are always the
// same *Pile, so equality and lookup reduce to pointer comparison; see
// DESIGN.md for why this is safe to trust on the hash alone.

package engine

import "spider/engine/xhash"

// MaxCards is the largest a Pile can ever grow, two full decks.
const MaxCards = 104

// Pile is an immutable, interned sequence of cards with cached features.
// Every exported method that looks like a mutation instead returns the
// (possibly identical) interned Pile for the new contents.
type Pile struct {
	cards []Card
	hash  uint64
	chaos int
	seqOf [4]int // sequenceOf cache, indexed by Suit
}

var pileTable = map[uint64]*Pile{}

// internPile looks up a pile by the hash of its bytes, returning the
// existing pile on a hit or computing and inserting a new one on a miss.
// Trusting the hash without a byte comparison on hit is the documented
// trade-off from spec.md §4.8/§9: xxhash's 64-bit output makes an
// undetected collision indistinguishable from noise at the scale this
// solver runs at.
func internPile(cards []Card) *Pile {
	raw := make([]byte, len(cards))
	for i, c := range cards {
		raw[i] = byte(c)
	}
	h := xhash.Bytes(raw)
	if p, ok := pileTable[h]; ok {
		return p
	}
	p := &Pile{cards: cards, hash: h}
	p.chaos = computeChaos(cards)
	for s := Spades; s <= Diamonds; s++ {
		p.seqOf[s] = sequenceOfUncached(cards, s)
	}
	pileTable[h] = p
	return p
}

// ResetPileTable clears the global intern table. The search engine calls
// this at the start of a fresh solve to avoid unbounded growth across
// independent solver invocations within one process (the -r recursive
// re-solve mode runs many searches back to back).
func ResetPileTable() {
	pileTable = map[uint64]*Pile{}
}

var emptyPile = internPile(nil)

// CreateEmpty returns the canonical empty pile.
func CreateEmpty() *Pile { return emptyPile }

// CardCount returns the number of cards in the pile.
func (p *Pile) CardCount() int { return len(p.cards) }

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool { return len(p.cards) == 0 }

// At returns the card at position i.
func (p *Pile) At(i int) Card { return p.cards[i] }

// Hash returns the pile's cached 64-bit identity hash.
func (p *Pile) Hash() uint64 { return p.hash }

// Chaos returns the pile's cached chaos score.
func (p *Pile) Chaos() int { return p.chaos }

// SequenceOf returns the length of the maximal suffix in descending suited
// sequence whose top card is of suit s; 0 if the pile is empty or its top
// card is not of suit s.
func (p *Pile) SequenceOf(s Suit) int { return p.seqOf[s] }

// PlayableCards returns the length of the movable top-run: fewer than two
// cards are trivially movable as-is, otherwise it is the top suited run.
func (p *Pile) PlayableCards() int {
	if len(p.cards) < 2 {
		return len(p.cards)
	}
	return p.SequenceOf(p.cards[len(p.cards)-1].Suit())
}

// AddCard returns the pile with c appended.
func (p *Pile) AddCard(c Card) *Pile {
	next := append(append([]Card{}, p.cards...), c)
	return internPile(next)
}

// Remove returns the pile truncated to length index; if index > 0, the
// newly-exposed top card (at index-1) becomes face-up.
func (p *Pile) Remove(index int) *Pile {
	if index <= 0 {
		return internPile(nil)
	}
	next := append([]Card{}, p.cards[:index]...)
	next[index-1] = next[index-1].WithFaceUp(true)
	return internPile(next)
}

// CopyFrom returns the pile with other[index:] appended.
func (p *Pile) CopyFrom(other *Pile, index int) *Pile {
	next := append(append([]Card{}, p.cards...), other.cards[index:]...)
	return internPile(next)
}

// ReplaceAt returns the pile with the card at index overwritten by c.
func (p *Pile) ReplaceAt(index int, c Card) *Pile {
	next := append([]Card{}, p.cards...)
	next[index] = c
	return internPile(next)
}

// AssignLeftCards returns the pile with every unknown card replaced by the
// next card consumed from pool, preserving each slot's original face-up
// flag. It fails with ErrPoolExhausted if pool runs out first; running out
// of unknown slots before pool does is not an error (see SPEC_FULL.md §6).
func (p *Pile) AssignLeftCards(pool *[]Card) (*Pile, error) {
	next := append([]Card{}, p.cards...)
	for i, c := range next {
		if !c.Unknown() {
			continue
		}
		if len(*pool) == 0 {
			return nil, ErrPoolExhausted
		}
		drawn := (*pool)[0]
		*pool = (*pool)[1:]
		next[i] = drawn.WithFaceUp(c.FaceUp())
	}
	return internPile(next), nil
}

// computeChaos walks the pile and counts the number of positions that do
// not continue the previous card's in-sequence run; the first card always
// costs 1.
func computeChaos(cards []Card) int {
	chaos := 0
	var prev Card
	var havePrev bool
	for _, c := range cards {
		if !havePrev || !c.InSequenceTo(prev) {
			chaos++
		}
		prev = c
		havePrev = true
	}
	return chaos
}

// sequenceOfUncached computes SequenceOf without relying on the cache,
// used once at pile-creation time to populate seqOf.
func sequenceOfUncached(cards []Card, s Suit) int {
	n := len(cards)
	if n == 0 {
		return 0
	}
	i := n - 1
	top := cards[i]
	if top.Suit() != s {
		return 0
	}
	for i > 0 && top.InSequenceTo(cards[i-1]) {
		i--
		top = cards[i]
	}
	return n - i
}
