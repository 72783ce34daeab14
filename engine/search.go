// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// search.go implements the bucketed best-first search of spec.md §4.7:
// a layered BFS where the frontier is split into six buckets by
// leftTalons() and only the best cap decks per bucket survive each
// depth, ordered by the §4.6 weighted comparison.

package engine

import "fmt"

// seenGenerations is N from spec.md §5: the rolling de-dup filter keeps
// this many of the most recent depths' seen-sets live at once.
const seenGenerations = 2

// ShortestPath runs the bucketed search starting from d. On success it
// copies the winning deck's move trail into d and returns the positive
// depth at which the win was found. On exhaustion (no successors
// produced at some depth without reaching a win) it returns the negative
// depth reached. cap bounds the number of decks retained per bucket.
func (d *Deck) ShortestPath(cap int, log Logger) (int, error) {
	if log == nil {
		log = NulLogger{}
	}
	log.BeginSearch()
	defer log.EndSearch()

	ResetPileTable()
	// Piles created before the reset stay live (d's own piles and the
	// canonical empty pile); register them again so equal contents keep
	// resolving to the same *Pile during this search.
	for _, p := range d.Play {
		pileTable[p.hash] = p
	}
	for _, p := range d.Talon {
		pileTable[p.hash] = p
	}
	pileTable[d.Off.hash] = d.Off
	pileTable[emptyPile.hash] = emptyPile

	var unvisited [ReservePiles + 1][]*Deck
	unvisited[d.LeftTalons()] = []*Deck{d}

	arenaCap := cap * (ReservePiles + 1) * 30
	newUnvisited := make([]*Deck, 0, arenaCap)

	var seen [seenGenerations]map[uint64]struct{}
	for i := range seen {
		seen[i] = make(map[uint64]struct{})
	}

	depth := 0
	var moveBuf []Move
	for {
		frontierSize := 0
		for _, bucket := range unvisited {
			frontierSize += len(bucket)
		}

		generated := 0
		writeSeen := depth % seenGenerations
		for _, bucket := range unvisited {
			for _, cur := range bucket {
				cur.GetMoves(&moveBuf)
				for _, m := range moveBuf {
					succ := new(Deck)
					cur.ApplyMove(m, succ)
					id := succ.ID()

					seenBefore := false
					for _, s := range seen {
						if _, ok := s[id]; ok {
							seenBefore = true
							break
						}
					}
					if seenBefore {
						continue
					}
					seen[writeSeen][id] = struct{}{}

					if len(newUnvisited) >= arenaCap {
						return 0, fmt.Errorf("%w: exceeded %d successors at depth %d", ErrSearchOverflow, arenaCap, depth)
					}
					newUnvisited = append(newUnvisited, succ)
					generated++
				}
			}
		}

		for i := range unvisited {
			unvisited[i] = unvisited[i][:0]
		}

		SortByWeight(newUnvisited)

		admitted := 0
		wonMoves := -1
		for _, succ := range newUnvisited {
			if succ.IsWon() {
				d.Moves = succ.Moves
				d.MovesIndex = succ.MovesIndex
				wonMoves = succ.MovesIndex
				break
			}
			b := succ.LeftTalons()
			if len(unvisited[b]) < cap {
				unvisited[b] = append(unvisited[b], succ)
				admitted++
			}
		}

		log.PrintDepth(Stats{Depth: depth, Frontier: frontierSize, Generated: generated, Admitted: admitted})

		if wonMoves >= 0 {
			return wonMoves, nil
		}

		newUnvisited = newUnvisited[:0]
		depth++

		clearGen := depth % seenGenerations
		seen[clearGen] = make(map[uint64]struct{})

		if generated == 0 {
			return -depth, nil
		}
	}
}
