// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store implements the content-addressed chunk collection
// (spec.md §4.1): insertion-ordered enumeration, re-learning of identical
// attribute tuples as reinforcement rather than duplication, and an
// optional secondary index over a declared subset of attributes.
package store

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/value"
)

// Store holds a memory's chunks.
type Store struct {
	order []*chunk.Chunk
	bySig map[string]*chunk.Chunk

	indexAttrs []string
	index      map[string][]*chunk.Chunk
}

// New returns an empty store, optionally indexed over the given attribute
// names (spec.md §3's Memory.index parameter).
func New(indexAttrs ...string) *Store {
	s := &Store{bySig: make(map[string]*chunk.Chunk)}
	if len(indexAttrs) > 0 {
		s.indexAttrs = append([]string(nil), indexAttrs...)
		s.index = make(map[string][]*chunk.Chunk)
	}
	return s
}

// IndexAttrs returns the attribute names the secondary index is built
// over, or nil if none was declared.
func (s *Store) IndexAttrs() []string { return s.indexAttrs }

// Learn canonicalizes attrs, finds or creates the matching chunk, and
// appends t to its reinforcement history. Returns the chunk and whether it
// was newly created.
func (s *Store) Learn(attrs chunk.Attrs, t float64) (*chunk.Chunk, bool) {
	sig := attrs.Signature()
	if c, ok := s.bySig[sig]; ok {
		c.Reinforce(t)
		return c, false
	}
	c := chunk.New(attrs, t)
	s.bySig[sig] = c
	s.order = append(s.order, c)
	s.indexAdd(c)
	return c, true
}

// Forget removes one occurrence of t from the chunk matching attrs,
// deleting the chunk entirely if that empties its history. Reports
// whether a matching timestamp was found.
func (s *Store) Forget(attrs chunk.Attrs, t float64) bool {
	sig := attrs.Signature()
	c, ok := s.bySig[sig]
	if !ok {
		return false
	}
	if !c.Forget(t) {
		return false
	}
	if c.Empty() {
		delete(s.bySig, sig)
		s.indexRemove(c)
		for i, oc := range s.order {
			if oc == c {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	return true
}

// Chunks returns all chunks in insertion order.
func (s *Store) Chunks() []*chunk.Chunk {
	return slices.Clone(s.order)
}

// Reset clears all chunks, then re-inserts the chunks in keep as they are,
// reinforcement histories included (spec.md §3: "reset... optionally
// preserves prepopulated chunks").
func (s *Store) Reset(keep []*chunk.Chunk) {
	s.order = nil
	s.bySig = make(map[string]*chunk.Chunk)
	if s.indexAttrs != nil {
		s.index = make(map[string][]*chunk.Chunk)
	}
	for _, c := range keep {
		s.bySig[c.Attrs.Signature()] = c
		s.order = append(s.order, c)
		s.indexAdd(c)
	}
}

// Lookup returns the chunks sharing the given values for every indexed
// attribute, and whether values actually covers the full indexed tuple (a
// partial covering falls back to a linear scan by the caller, since this
// store's index is keyed on the complete indexed tuple, per spec.md §4.1).
func (s *Store) Lookup(values map[string]value.Value) ([]*chunk.Chunk, bool) {
	if s.indexAttrs == nil {
		return nil, false
	}
	for _, a := range s.indexAttrs {
		if _, ok := values[a]; !ok {
			return nil, false
		}
	}
	key := s.indexKey(values)
	return s.index[key], true
}

func (s *Store) indexKey(values map[string]value.Value) string {
	parts := make([]string, len(s.indexAttrs))
	for i, a := range s.indexAttrs {
		parts[i] = values[a].Signature()
	}
	return strings.Join(parts, "\x1f")
}

func (s *Store) indexAdd(c *chunk.Chunk) {
	if s.indexAttrs == nil {
		return
	}
	values := make(map[string]value.Value, len(s.indexAttrs))
	for _, a := range s.indexAttrs {
		v, ok := c.Attrs.Get(a)
		if !ok {
			return // chunk doesn't carry every indexed attribute; not indexable
		}
		values[a] = v
	}
	key := s.indexKey(values)
	s.index[key] = append(s.index[key], c)
}

func (s *Store) indexRemove(c *chunk.Chunk) {
	if s.indexAttrs == nil {
		return
	}
	values := make(map[string]value.Value, len(s.indexAttrs))
	for _, a := range s.indexAttrs {
		v, ok := c.Attrs.Get(a)
		if !ok {
			return
		}
		values[a] = v
	}
	key := s.indexKey(values)
	bucket := s.index[key]
	for i, oc := range bucket {
		if oc == c {
			s.index[key] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
}
