// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// spider reads a two-suit (or one-suit) Spider solitaire deal from a
// game file and searches for a winning move sequence.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"spider/engine"
	"spider/notation"
)

func main() {
	log.SetFlags(log.Lshortfile)

	var cap int
	flag.IntVar(&cap, "c", 500, "per-bucket frontier cap")
	flag.IntVar(&cap, "cap", 500, "per-bucket frontier cap")
	var debug bool
	flag.BoolVar(&debug, "d", false, "enable verbose search logging")
	flag.BoolVar(&debug, "debug", false, "enable verbose search logging")
	recurse := flag.Bool("r", false, "recursively re-solve, keeping the best move count found")
	variantName := flag.String("variant", "two-suit", "deal variant: two-suit or one-suit")
	seed := flag.Uint64("seed", 0, "shuffle seed for unknown cards (0 picks one from the current time and logs it)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: spider [flags] <game-file>")
		os.Exit(1)
	}

	var variant notation.Variant
	switch *variantName {
	case "two-suit":
		variant = notation.TwoSuit
	case "one-suit":
		variant = notation.OneSuit
	default:
		log.Printf("unknown variant %q", *variantName)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
		log.Printf("using seed %d", s)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
	defer f.Close()

	deck, err := notation.Load(f, variant, s, os.Stderr)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}

	var logger engine.Logger = engine.NulLogger{}
	if debug {
		logger = engine.StderrLogger{Print: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		}}
	}

	best := -1
	curCap := cap
	for {
		// Every run starts from the dealt position with an empty trail; a
		// previous success leaves its winning trail in deck.
		deck.MovesIndex = 0
		depth, err := deck.ShortestPath(curCap, logger)
		if err != nil {
			log.Print(err)
			os.Exit(1)
		}
		if depth > 0 && (best < 0 || depth < best) {
			best = depth
			printSolution(os.Stdout, deck)
		}
		if !*recurse || depth <= 0 {
			break
		}
		curCap /= 2
		if curCap < 1 {
			break
		}
	}
}

// printSolution replays deck's recorded move trail from its starting
// position and prints every non-foundation move, numbered consecutively;
// ToFoundation moves are silent per spec.md §6.
func printSolution(w *os.File, deck *engine.Deck) {
	cursor := &engine.Deck{Play: deck.Play, Talon: deck.Talon, Off: deck.Off}
	n := 1
	for i := 0; i < deck.MovesIndex; i++ {
		m := deck.Moves[i]
		if m.Kind != engine.ToFoundation {
			fmt.Fprintf(w, "%d %s\n", n, cursor.ExplainMove(m))
			n++
		}
		var next engine.Deck
		cursor.ApplyMove(m, &next)
		cursor = &next
	}
}
