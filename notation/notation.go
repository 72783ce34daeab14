// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package notation implements parsing of the line-oriented Spider game
// file format: reading a deal, expanding compact run tokens, and filling
// in unknown cards from a seeded shuffle of the cards the file left
// unaccounted for.
package notation

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"

	"spider/engine"
)

// Variant selects which suits are dealt and how many physical copies of
// each (suit,rank) pair the merged two-deck pack contains.
type Variant int

const (
	// TwoSuit deals Spades and Hearts, four copies of each of the 26
	// (suit,rank) pairs (4*26 = 104 cards).
	TwoSuit Variant = iota
	// OneSuit deals Spades only, eight copies of each of the 13 ranks
	// (8*13 = 104 cards).
	OneSuit
)

// TotalCards is the number of cards in play under either variant.
const TotalCards = 104

func copiesPerCard(v Variant) int {
	if v == OneSuit {
		return 8
	}
	return 4
}

func allowedSuit(v Variant, s engine.Suit) bool {
	if v == OneSuit {
		return s == engine.Spades
	}
	return s == engine.Spades || s == engine.Hearts
}

// cardKey identifies a (suit,rank) pair, ignoring face-up/unknown.
type cardKey struct {
	Suit engine.Suit
	Rank engine.Rank
}

func keyOf(c engine.Card) cardKey { return cardKey{c.Suit(), c.Rank()} }

var headerIndex = map[string]int{
	"Play0:": 0, "Play1:": 1, "Play2:": 2, "Play3:": 3, "Play4:": 4,
	"Play5:": 5, "Play6:": 6, "Play7:": 7, "Play8:": 8, "Play9:": 9,
	"Deal0:": 10, "Deal1:": 11, "Deal2:": 12, "Deal3:": 13, "Deal4:": 14,
	"Off:": 15,
}

const offIndex = 15

// expandRun expands a six-character compact token "RS..rs" (first rank,
// first suit, two literal dots, last rank, last suit) into the individual
// face-up, known cards of that suit from first_rank down to last_rank.
func expandRun(token string) ([]engine.Card, error) {
	if len(token) != 6 || token[2:4] != ".." {
		return nil, fmt.Errorf("%w: run token %q", engine.ErrInvalidToken, token)
	}
	first, err := engine.ParseCard(token[0:2])
	if err != nil {
		return nil, err
	}
	last, err := engine.ParseCard(token[4:6])
	if err != nil {
		return nil, err
	}
	if first.Suit() != last.Suit() || first.Rank() < last.Rank() {
		return nil, fmt.Errorf("%w: run token %q is not a descending single-suit run", engine.ErrInvalidToken, token)
	}
	cards := make([]engine.Card, 0, int(first.Rank()-last.Rank())+1)
	for r := first.Rank(); ; r-- {
		cards = append(cards, engine.NewCard(r, first.Suit(), true, false))
		if r == last.Rank() {
			break
		}
	}
	return cards, nil
}

// Load reads a game file from r and returns a resolved Deck: every unknown
// card token in a Play or Deal section is filled in from the cards the
// file itself left unaccounted for, drawn in an order determined by seed. diag receives
// the "Required left:" diagnostic (see spec.md §6) if the pool runs out;
// pass io.Discard to suppress it.
func Load(r io.Reader, variant Variant, seed uint64, diag io.Writer) (*engine.Deck, error) {
	deck := engine.NewDeck()
	known := map[cardKey]int{}
	target := -1

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		for i := 0; i < len(line); {
			for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
				i++
			}
			start := i
			for i < len(line) && line[i] != ' ' && line[i] != '\t' {
				i++
			}
			if start == i {
				continue
			}
			token := line[start:i]
			if token[0] == '#' {
				break // rest of line is a comment
			}
			if idx, ok := headerIndex[token]; ok {
				target = idx
				continue
			}
			if target < 0 {
				return nil, fmt.Errorf("%w: line %d: card token %q before any section header", engine.ErrDeckInconsistent, lineNum, token)
			}

			// cards are tallied against the variant's per-card limits;
			// placed is what actually gets appended to the target pile.
			// They differ only for a run token landing in Off: the run
			// accounts for all 13 cards of the completed suit, but the
			// off pile itself stores just the run's head card (see
			// deck.go's ApplyMove, which does the same on a live solve).
			var cards, placed []engine.Card
			if len(token) == 6 {
				run, err := expandRun(token)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				cards = run
				if target == offIndex {
					placed = run[:1]
				} else {
					placed = run
				}
			} else {
				c, err := engine.ParseCard(token)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				cards = []engine.Card{c}
				placed = cards
			}

			for _, c := range cards {
				if c.Unknown() {
					continue
				}
				if !allowedSuit(variant, c.Suit()) {
					return nil, fmt.Errorf("%w: line %d: suit %c not valid for this variant", engine.ErrDeckInconsistent, lineNum, token[len(token)-1])
				}
				k := keyOf(c)
				known[k]++
				if known[k] > copiesPerCard(variant) {
					return nil, fmt.Errorf("%w: line %d: too many of card %s", engine.ErrDeckInconsistent, lineNum, c)
				}
			}
			for _, c := range placed {
				deck.AddCard(target, c)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	pool := buildPool(variant, known)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	if err := deck.AssignLeftCards(&pool); err != nil {
		reportShortfall(diag, variant, deck)
		return nil, err
	}
	return deck, nil
}

// buildPool returns one Card per card instance the variant requires but
// the file did not explicitly place, in deterministic (suit, rank) order
// ready to be shuffled.
func buildPool(variant Variant, known map[cardKey]int) []engine.Card {
	var pool []engine.Card
	suits := []engine.Suit{engine.Spades, engine.Hearts, engine.Clubs, engine.Diamonds}
	for _, s := range suits {
		if !allowedSuit(variant, s) {
			continue
		}
		for r := engine.Ace; r <= engine.King; r++ {
			need := copiesPerCard(variant) - known[cardKey{s, r}]
			for ; need > 0; need-- {
				pool = append(pool, engine.NewCard(r, s, true, false))
			}
		}
	}
	return pool
}

// reportShortfall writes the "Required left:" diagnostic: every card the
// variant still requires that the deck, as it stands after the failed
// assignment, does not yet fully account for.
func reportShortfall(w io.Writer, variant Variant, deck *engine.Deck) {
	actual := map[cardKey]int{}
	tally := func(p *engine.Pile) {
		for i := 0; i < p.CardCount(); i++ {
			c := p.At(i)
			if !c.Unknown() {
				actual[keyOf(c)]++
			}
		}
	}
	for _, p := range deck.Play {
		tally(p)
	}
	for _, p := range deck.Talon {
		tally(p)
	}
	// Each card resting in Off represents a completed King..Ace run of its
	// suit: all 13 ranks are accounted for, not just the stored card.
	for i := 0; i < deck.Off.CardCount(); i++ {
		s := deck.Off.At(i).Suit()
		for r := engine.Ace; r <= engine.King; r++ {
			actual[cardKey{s, r}]++
		}
	}

	fmt.Fprintln(w, "Required left:")
	suits := []engine.Suit{engine.Spades, engine.Hearts, engine.Clubs, engine.Diamonds}
	for _, s := range suits {
		if !allowedSuit(variant, s) {
			continue
		}
		for r := engine.Ace; r <= engine.King; r++ {
			missing := copiesPerCard(variant) - actual[cardKey{s, r}]
			for ; missing > 0; missing-- {
				fmt.Fprintln(w, engine.NewCard(r, s, true, false))
			}
		}
	}
}
