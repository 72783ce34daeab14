// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// logger.go adapts the source engine's Logger/NulLogger pattern
// (engine.go in the teacher repo) from chess principal-variation logging
// to search-progress logging: one call per depth instead of one call per
// completed iterative-deepening ply.

package engine

// Stats summarizes one depth of the bucketed search.
type Stats struct {
	Depth     int // current search depth
	Frontier  int // number of decks carried into this depth
	Admitted  int // number of successors admitted to the next frontier
	Generated int // number of successor candidates generated this depth
}

// Logger logs search progress.
type Logger interface {
	// BeginSearch signals a new search is started.
	BeginSearch()
	// EndSearch signals the end of a search, successful or not.
	EndSearch()
	// PrintDepth logs progress after one depth of the search completes.
	PrintDepth(stats Stats)
}

// NulLogger is a Logger that does nothing.
type NulLogger struct{}

func (NulLogger) BeginSearch()     {}
func (NulLogger) EndSearch()       {}
func (NulLogger) PrintDepth(Stats) {}

// StderrLogger is a Logger that writes one line per depth to stderr via
// the supplied print function, used by cmd/spider's -debug flag.
type StderrLogger struct {
	Print func(format string, args ...interface{})
}

func (l StderrLogger) BeginSearch() {
	l.Print("search: started\n")
}

func (l StderrLogger) EndSearch() {
	l.Print("search: finished\n")
}

func (l StderrLogger) PrintDepth(s Stats) {
	l.Print("depth %d: frontier=%d generated=%d admitted=%d\n",
		s.Depth, s.Frontier, s.Generated, s.Admitted)
}
