// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// deck.go implements the full game position: ten tableau piles, five
// reserve deals, one foundation pile, and the recorded move trail that
// produced the position.

package engine

import (
	"fmt"

	"spider/engine/xhash"
)

const (
	// TableauPiles is the number of working tableau columns.
	TableauPiles = 10
	// ReservePiles is the number of reserve (talon) deals.
	ReservePiles = 5
	// CardsPerReserveDeal is the exact size of a non-empty reserve pile.
	CardsPerReserveDeal = TableauPiles
	// MaxMoves bounds the recorded move trail.
	MaxMoves = 230
	// pile indices used by AddCard, mirroring the game-file section order.
	offPileIndex = TableauPiles + ReservePiles
)

// Deck is a complete game position plus the trail of moves that produced
// it. Piles are shared, interned references; copying a Deck is cheap.
type Deck struct {
	Play       [TableauPiles]*Pile
	Talon      [ReservePiles]*Pile
	Off        *Pile
	Moves      [MaxMoves]Move
	MovesIndex int
}

// NewDeck returns an empty Deck: every pile is the canonical empty pile.
func NewDeck() *Deck {
	d := &Deck{Off: CreateEmpty()}
	for i := range d.Play {
		d.Play[i] = CreateEmpty()
	}
	for i := range d.Talon {
		d.Talon[i] = CreateEmpty()
	}
	return d
}

// AddCard appends c to the pile addressed by index: 0..9 are tableau
// piles, 10..14 are reserve deals, 15 is the foundation. This mirrors the
// harness contract from spec.md §3 (addCard(pile_index, card)).
func (d *Deck) AddCard(pileIndex int, c Card) {
	switch {
	case pileIndex < TableauPiles:
		d.Play[pileIndex] = d.Play[pileIndex].AddCard(c)
	case pileIndex < TableauPiles+ReservePiles:
		i := pileIndex - TableauPiles
		d.Talon[i] = d.Talon[i].AddCard(c)
	case pileIndex == offPileIndex:
		d.Off = d.Off.AddCard(c)
	default:
		panic(fmt.Sprintf("engine: pile index %d out of range", pileIndex))
	}
}

// AssignLeftCards resolves every unknown card in the tableau and reserve
// piles by drawing from pool, in encounter order. The foundation is not
// visited: an unknown card placed there stays unknown.
func (d *Deck) AssignLeftCards(pool *[]Card) error {
	for i := range d.Play {
		p, err := d.Play[i].AssignLeftCards(pool)
		if err != nil {
			return err
		}
		d.Play[i] = p
	}
	for i := range d.Talon {
		p, err := d.Talon[i].AssignLeftCards(pool)
		if err != nil {
			return err
		}
		d.Talon[i] = p
	}
	return nil
}

// ID is the deck's 64-bit position identity: the combined hash of the ten
// tableau and five reserve piles. The foundation is excluded on purpose
// (see spec.md §8 "Deck id stability"): two decks differing only in
// whether a completed suit has been taken off share identity, since the
// search's de-dup should not distinguish "about to take it off" states.
func (d *Deck) ID() uint64 {
	h := xhash.NewDigest()
	for _, p := range d.Play {
		h.Push(p.Hash())
	}
	for _, p := range d.Talon {
		h.Push(p.Hash())
	}
	return h.Finish()
}

// Chaos is the §4.6 heuristic: summed per-pile chaos plus a fixed penalty
// per non-empty reserve pile (reserves still waiting to be dealt keep the
// position from looking "solved").
func (d *Deck) Chaos() int {
	chaos := 0
	for _, p := range d.Play {
		chaos += p.Chaos()
	}
	return chaos + 11*d.LeftTalons()
}

// PlayableCards sums the movable top-run length of every tableau pile.
func (d *Deck) PlayableCards() int {
	n := 0
	for _, p := range d.Play {
		n += p.PlayableCards()
	}
	return n
}

// InOff is the number of cards the completed foundation runs represent.
func (d *Deck) InOff() int { return d.Off.CardCount() * 13 }

// FreePlays is the number of empty tableau piles.
func (d *Deck) FreePlays() int {
	n := 0
	for _, p := range d.Play {
		if p.Empty() {
			n++
		}
	}
	return n
}

// LeftTalons is the number of reserve piles still waiting to be dealt.
func (d *Deck) LeftTalons() int {
	n := 0
	for _, p := range d.Talon {
		if !p.Empty() {
			n++
		}
	}
	return n
}

// IsWon reports whether all eight suit runs have been completed.
func (d *Deck) IsWon() bool { return d.Off.CardCount() == 8 }

// GetMoves enumerates legal, non-redundant successor moves into *out,
// reusing its backing array. See spec.md §4.4 for the full rule set.
func (d *Deck) GetMoves(out *[]Move) {
	*out = (*out)[:0]
	if d.MovesIndex >= MaxMoves-1 {
		return
	}

	nextTalon := -1
	for i, p := range d.Talon {
		if !p.Empty() {
			nextTalon = i
			break
		}
	}

	anyEmpty := false
	for from := 0; from < TableauPiles; from++ {
		pile := d.Play[from]
		if pile.Empty() {
			anyEmpty = true
			continue
		}

		count := pile.CardCount()
		topSuit := pile.At(count - 1).Suit()
		runLen := pile.SequenceOf(topSuit)
		runStart := count - runLen
		fromSeq := runLen // pile.SequenceOf(topSuit), cached, reused per index below

		for idx := count - 1; idx >= runStart; idx-- {
			cur := pile.At(idx)
			runLengthHere := count - idx

			if runLengthHere == 13 {
				*out = (*out)[:0]
				*out = append(*out, NewToFoundation(from, idx))
				return
			}

			brokenSeq := 0
			if idx > 0 && cur.InSequenceTo(pile.At(idx-1)) {
				brokenSeq = runLengthHere
			}

			emptyAllowed := true
			if nextTalon == -1 && (idx == 0 || brokenSeq > 0) {
				emptyAllowed = false
			}
			emittedEmpty := false

			destRank := int(cur.Rank()) + 1
			for to := 0; to < TableauPiles; to++ {
				if to == from {
					continue
				}
				dest := d.Play[to]
				if !dest.Empty() {
					destTop := dest.At(dest.CardCount() - 1)
					if int(destTop.Rank()) != destRank {
						continue
					}
					if brokenSeq > 0 && !(dest.SequenceOf(topSuit)+brokenSeq > fromSeq) {
						continue
					}
					*out = append(*out, NewRegular(from, to, idx))
				} else {
					if emittedEmpty || !emptyAllowed {
						continue
					}
					*out = append(*out, NewRegular(from, to, idx))
					emittedEmpty = true
				}
			}
		}
	}

	if !anyEmpty && nextTalon >= 0 {
		*out = append(*out, NewFromReserve(nextTalon))
	}
}

// ApplyMove copies this deck into out (cheap: piles are shared
// references), appends m to its move trail, then performs the move.
func (d *Deck) ApplyMove(m Move, out *Deck) {
	*out = *d
	out.Moves[out.MovesIndex] = m
	out.MovesIndex++

	switch m.Kind {
	case Regular:
		from, to, index := int(m.From), int(m.To), int(m.Index)
		out.Play[to] = out.Play[to].CopyFrom(out.Play[from], index)
		out.Play[from] = out.Play[from].Remove(index)
	case ToFoundation:
		from, index := int(m.From), int(m.Index)
		king := out.Play[from].At(out.Play[from].CardCount() - 13)
		out.Off = out.Off.AddCard(king)
		out.Play[from] = out.Play[from].Remove(index)
	case FromReserve:
		r := int(m.From)
		reserve := out.Talon[r]
		for to := 0; to < TableauPiles; to++ {
			c := reserve.At(to).WithFaceUp(true)
			out.Play[to] = out.Play[to].AddCard(c)
		}
		out.Talon[r] = CreateEmpty()
	}
}

// ExplainMove renders a move the way spec.md §6 wants it printed. Used by
// callers for non-foundation moves; ToFoundation moves are silent (per
// §6) and should not be passed here by the caller's printing loop. A move
// onto an empty pile names its destination card as "empty".
func (d *Deck) ExplainMove(m Move) string {
	switch m.Kind {
	case FromReserve:
		return "Draw another talon"
	case ToFoundation:
		return fmt.Sprintf("Move 13 cards from %d to foundation", m.From)
	default:
		from, to, index := int(m.From), int(m.To), int(m.Index)
		fromCard := d.Play[from].At(index)
		toPile := d.Play[to]
		toCard := "empty"
		if !toPile.Empty() {
			toCard = toPile.At(toPile.CardCount() - 1).String()
		}
		return fmt.Sprintf("Move %d cards from %d to %d - %s->%s",
			d.Play[from].CardCount()-index, from, to, fromCard, toCard)
	}
}
