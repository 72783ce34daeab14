// Copyright 2024 The Spider Solver Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xhash implements the 64-bit hash primitive used for pile and
// deck identity, backed by xxhash (github.com/cespare/xxhash/v2).
package xhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Bytes hashes a raw byte buffer, used for pile identity: the intern table
// is keyed by Bytes(cards[:count]).
func Bytes(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}

// Digest is a streaming hash used to combine a fixed sequence of per-pile
// hashes into one deck identity. Push corresponds to spec's push(u64),
// Finish to finish() -> u64.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest returns a ready-to-use Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Push folds one more 64-bit value into the digest.
func (h *Digest) Push(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:])
}

// Finish returns the combined 64-bit hash of every value pushed so far.
func (h *Digest) Finish() uint64 {
	return h.d.Sum64()
}
