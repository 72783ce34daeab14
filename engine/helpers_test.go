// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "testing"

// mustPile builds a Pile from card tokens, bottom to top, failing the
// test on a bad token.
func mustPile(t *testing.T, tokens ...string) *Pile {
	t.Helper()
	p := CreateEmpty()
	for _, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			t.Fatalf("mustPile: %v", err)
		}
		p = p.AddCard(c)
	}
	return p
}

// emptyDeck returns a Deck with every pile empty.
func emptyDeck() *Deck {
	return NewDeck()
}
