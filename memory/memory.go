// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cogmod/actr/actrerr"
	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/history"
	"github.com/cogmod/actr/value"
)

// Learn records one experience: attrs, canonicalized, is looked up in the
// store and either creates a new chunk or reinforces the existing one at
// the current time. advance, if non-zero, is applied afterward via Advance
// (spec.md §4.1: "learn(attributes, advance=0)"). Requires advance >= 0.
func (m *Memory) Learn(attrs map[string]value.Value, advance float64) (uuid.UUID, error) {
	if advance < 0 {
		return uuid.Nil, fmt.Errorf("memory.Learn: advance must be >= 0, got %g: %w", advance, actrerr.ErrInvalidTime)
	}
	c, _ := m.store.Learn(chunk.NewAttrs(attrs), m.currentTime)
	if advance > 0 {
		if err := m.Advance(advance); err != nil {
			return uuid.Nil, err
		}
	}
	return c.ID, nil
}

// Prepopulate learns attrs as Learn does, but additionally marks the
// resulting chunk as prepopulated so that Reset(true) preserves it
// (spec.md §3: "reset... optionally preserves prepopulated chunks").
func (m *Memory) Prepopulate(attrs map[string]value.Value) uuid.UUID {
	c, _ := m.store.Learn(chunk.NewAttrs(attrs), m.currentTime)
	if m.prepop == nil {
		m.prepop = make(map[uuid.UUID]bool)
	}
	m.prepop[c.ID] = true
	return c.ID
}

// Forget removes one reinforcement of attrs at t, deleting the chunk
// entirely if that empties its history. Reports whether a matching
// timestamp was found.
func (m *Memory) Forget(attrs map[string]value.Value, t float64) bool {
	return m.store.Forget(chunk.NewAttrs(attrs), t)
}

// Advance moves current_time forward by delta, flushing any fixed_noise
// cache entries (spec.md §9: "flushed on scope exit or on advance"; a
// frozen cache additionally keeps accumulating under the new time). Requires
// delta >= 0: time never runs backward (spec.md §4.7).
func (m *Memory) Advance(delta float64) error {
	if delta < 0 {
		return fmt.Errorf("memory.Advance: delta must be >= 0, got %g: %w", delta, actrerr.ErrInvalidTime)
	}
	m.currentTime += delta
	m.noise.Flush()
	return nil
}

// Reset discards all chunks and clears activation history. When
// preservePrepopulated is true, chunks previously marked with Prepopulate
// are kept, with their reinforcement histories unchanged; current time is
// not reset.
func (m *Memory) Reset(preservePrepopulated bool) {
	var keep []*chunk.Chunk
	if preservePrepopulated {
		for _, c := range m.store.Chunks() {
			if m.prepop[c.ID] {
				keep = append(keep, c)
			}
		}
	} else {
		m.prepop = nil
	}
	m.store.Reset(keep)
	m.history.Clear()
	m.noise.Flush()
}

// Chunks returns every chunk currently in the store, in insertion order.
func (m *Memory) Chunks() []*chunk.Chunk {
	return m.store.Chunks()
}

// PrintChunks renders every chunk as a table: one row per chunk, columns
// for each attribute name observed across all chunks plus the reinforcement
// count (spec.md §6: "print_chunks... human-readable summary").
func (m *Memory) PrintChunks() string {
	chunks := m.store.Chunks()
	names := attributeNames(chunks)

	var sb strings.Builder
	sb.WriteString("id\t")
	for _, n := range names {
		sb.WriteString(n)
		sb.WriteByte('\t')
	}
	sb.WriteString("count\n")

	for _, c := range chunks {
		sb.WriteString(c.ID.String())
		sb.WriteByte('\t')
		for _, n := range names {
			if v, ok := c.Attrs.Get(n); ok {
				sb.WriteString(v.String())
			}
			sb.WriteByte('\t')
		}
		fmt.Fprintf(&sb, "%d\n", c.Count())
	}
	return sb.String()
}

func attributeNames(chunks []*chunk.Chunk) []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range chunks {
		for _, a := range c.Attrs {
			if !seen[a.Name] {
				seen[a.Name] = true
				names = append(names, a.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// EnableActivationHistory turns activation-history recording on or off
// (spec.md §4.6).
func (m *Memory) EnableActivationHistory(on bool) { m.history.Enable(on) }

// ActivationHistoryEnabled reports whether recording is active.
func (m *Memory) ActivationHistoryEnabled() bool { return m.history.Enabled() }

// ActivationHistory returns every recorded record across all calls since
// the last Clear or Reset.
func (m *Memory) ActivationHistory() []history.Record {
	return m.history.Records()
}

// ClearActivationHistory discards all recorded history without disabling
// future recording.
func (m *Memory) ClearActivationHistory() { m.history.Clear() }

// FixedNoise begins a fixed_noise scope: every chunk's noise sample at the
// current time is drawn once and reused for the remainder of the scope. The
// returned restore function must be called to exit the scope, typically via
// defer (spec.md §9: "express as guard objects that snapshot prior state on
// entry and restore on any exit path").
func (m *Memory) FixedNoise() (restore func()) {
	return m.noise.Freeze()
}
