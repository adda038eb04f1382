// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history implements the activation-history recorder of spec.md
// §4.6: an optional, append-only trace of the intermediate quantities
// computed by each retrieval or blend, grounded structurally on the
// teacher's elog (named, typed records collected across calls) but
// simplified to a flat per-call slice since this library has no
// eval-mode/time-scale scoping to track.
package history

import (
	"github.com/google/uuid"

	"github.com/cogmod/actr/chunk"
)

// Record is one candidate's contribution to one retrieval or blend call.
type Record struct {
	Call         int // which retrieve/blend call this belongs to, 0-based
	ChunkID      uuid.UUID
	Attrs        chunk.Attrs
	ReinforcedAt []float64
	BaseLevel    float64
	Noise        float64
	Mismatch     float64
	Activation   float64
	Probability  float64 // retrieval probability; 0 for plain retrieve
	Eligible     bool
}

// Trace is the set of Records belonging to one retrieval/blend call,
// together with the output attribute (if any) and each eligible record's
// output value, which salience needs alongside the trace (spec.md §4.5).
type Trace struct {
	Records    []Record
	OutputAttr string
	Output     map[uuid.UUID]float64
}

// Recorder is the lazy, finite-length trace buffer a Memory owns when
// activation history is enabled (spec.md §4.6, §9).
type Recorder struct {
	enabled bool
	calls   int
	records []Record
	last    Trace
}

// Enable turns recording on or off.
func (r *Recorder) Enable(on bool) { r.enabled = on }

// Enabled reports whether recording is active.
func (r *Recorder) Enabled() bool { return r.enabled }

// Clear discards all recorded history (spec.md: "cleared on reset or on
// explicit clear").
func (r *Recorder) Clear() {
	r.calls = 0
	r.records = nil
	r.last = Trace{}
}

// Records returns every recorded record, across all calls, in call order.
func (r *Recorder) Records() []Record {
	return append([]Record(nil), r.records...)
}

// Append records one call's worth of results, if recording is enabled. When
// output is non-nil (a blend, discrete_blend, or best_blend call) it also
// becomes the trace salience reads back -- a plain retrieve's call (whose
// output is always nil) must never shadow the most recent blend.
func (r *Recorder) Append(call []Record, outputAttr string, output map[uuid.UUID]float64) {
	if !r.enabled {
		return
	}
	for i := range call {
		call[i].Call = r.calls
	}
	r.records = append(r.records, call...)
	if output != nil {
		r.last = Trace{Records: call, OutputAttr: outputAttr, Output: output}
	}
	r.calls++
}

// LastTrace returns the most recently recorded blend's trace, and whether
// one exists (spec.md §4.5: "computed from the recorded trace of the most
// recent blend") -- an interleaved plain retrieve does not affect this.
func (r *Recorder) LastTrace() (Trace, bool) {
	if r.last.Records == nil {
		return Trace{}, false
	}
	return r.last, true
}
