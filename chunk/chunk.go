// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chunk defines the immutable attribute-tuple chunk that is the
// basic unit of declarative memory, along with its canonicalized attribute
// representation used for content addressing.
package chunk

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cogmod/actr/value"
)

// Attr is a single attribute-name/value pair.
type Attr struct {
	Name  string
	Value value.Value
}

// Attrs is a canonicalized (name-sorted) attribute tuple. Two Attrs built
// from the same name/value mapping, regardless of input order, canonicalize
// to an identical Attrs and share one Signature.
type Attrs []Attr

// NewAttrs canonicalizes a mapping into a sorted Attrs tuple.
func NewAttrs(m map[string]value.Value) Attrs {
	a := make(Attrs, 0, len(m))
	for k, v := range m {
		a = append(a, Attr{Name: k, Value: v})
	}
	sort.Slice(a, func(i, j int) bool { return a[i].Name < a[j].Name })
	return a
}

// Get returns the value of the named attribute, and whether it is present.
func (a Attrs) Get(name string) (value.Value, bool) {
	for _, at := range a {
		if at.Name == name {
			return at.Value, true
		}
	}
	return value.Value{}, false
}

// Signature is the deterministic content-addressing key for a is attribute
// tuple: equal attribute mappings (regardless of construction order)
// always produce the same signature.
func (a Attrs) Signature() string {
	var sb strings.Builder
	for i, at := range a {
		if i > 0 {
			sb.WriteByte('\x1f')
		}
		sb.WriteString(at.Name)
		sb.WriteByte('=')
		sb.WriteString(at.Value.Signature())
	}
	return sb.String()
}

// Chunk is an immutable attribute-tuple experience with a reinforcement
// history. Attrs never change after construction; only ReinforcedAt grows,
// and only by appending (spec.md §3: "mutated only to append timestamps").
type Chunk struct {
	ID           uuid.UUID
	Attrs        Attrs
	Created      float64
	ReinforcedAt []float64 // strictly non-decreasing
}

// New constructs a chunk first reinforced at t.
func New(attrs Attrs, t float64) *Chunk {
	return &Chunk{
		ID:           uuid.New(),
		Attrs:        attrs,
		Created:      t,
		ReinforcedAt: []float64{t},
	}
}

// FromMap canonicalizes m and constructs a chunk first reinforced at t, a
// convenience composing NewAttrs and New for callers that don't need the
// intermediate Attrs value.
func FromMap(m map[string]value.Value, t float64) *Chunk {
	return New(NewAttrs(m), t)
}

// Reinforce appends a reinforcement timestamp. The caller is responsible
// for spec.md's ordering invariant (t >= last timestamp); Memory.Learn
// enforces it before calling this.
func (c *Chunk) Reinforce(t float64) {
	c.ReinforcedAt = append(c.ReinforcedAt, t)
}

// Forget removes one occurrence of t from the reinforcement history,
// reporting whether one was found. Does not delete the chunk itself --
// callers (store.Store) decide whether an empty history means deletion.
func (c *Chunk) Forget(t float64) bool {
	for i, rt := range c.ReinforcedAt {
		if rt == t {
			c.ReinforcedAt = append(c.ReinforcedAt[:i], c.ReinforcedAt[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of reinforcements (the reference count).
func (c *Chunk) Count() int { return len(c.ReinforcedAt) }

// Empty reports whether the chunk has no remaining reinforcements and
// should be deleted.
func (c *Chunk) Empty() bool { return len(c.ReinforcedAt) == 0 }
