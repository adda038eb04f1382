// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"github.com/google/uuid"

	"github.com/cogmod/actr/activation"
	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/history"
	"github.com/cogmod/actr/rng"
	"github.com/cogmod/actr/value"
)

// attempt is the filtered, activated candidate pool for one retrieve/blend
// call: chunks[i]'s activation is results[i] (spec.md §4.7's "validate,
// filter, activate, threshold-cull" pipeline, already collapsed into one
// pass by run).
type attempt struct {
	chunks  []*chunk.Chunk
	results []activation.Result
}

func (m *Memory) engine() *activation.Engine {
	return &activation.Engine{
		Decay:     m.decay,
		Sigma:     m.noiseSigma,
		Mismatch:  m.mismatch,
		Optimized: m.optimized,
		Registry:  m.registry,
		Source:    m.rngSrc,
		Noise:     &m.noise,
	}
}

// candidatePool returns the chunks worth activating against probe: the
// store's secondary index narrows this when every indexed attribute is
// both present in probe and has no registered similarity function (so an
// exact-match index lookup can't wrongly exclude a merely-similar chunk);
// otherwise every chunk in the store is a candidate.
func (m *Memory) candidatePool(probe map[string]value.Value) []*chunk.Chunk {
	indexed := m.store.IndexAttrs()
	if indexed != nil {
		exact := true
		for _, a := range indexed {
			if _, ok := probe[a]; !ok || m.registry.Defined(a) {
				exact = false
				break
			}
		}
		if exact {
			if chunks, ok := m.store.Lookup(probe); ok {
				return chunks
			}
		}
	}
	return m.store.Chunks()
}

// run executes the filter/activate/threshold-cull stages of spec.md §4.7
// against probe at the current time.
func (m *Memory) run(probe map[string]value.Value) attempt {
	eng := m.engine()
	pool := m.candidatePool(probe)
	at := attempt{}
	for _, c := range pool {
		r := eng.Activation(c, probe, m.currentTime)
		if !r.Eligible {
			continue
		}
		if m.threshold != nil && r.Total < *m.threshold {
			continue
		}
		at.chunks = append(at.chunks, c)
		at.results = append(at.results, r)
	}
	return at
}

// Retrieve selects the single chunk matching probe with the greatest total
// activation, breaking ties uniformly at random (spec.md §4.4). Returns
// (nil, nil) when no chunk survives filtering and thresholding. When
// rehearse is true, the selected chunk is reinforced at the current time,
// same as calling Learn with its own attributes (spec.md §4.4:
// "retrieve(probe, rehearse=False)").
func (m *Memory) Retrieve(probe map[string]value.Value, rehearse bool) (*chunk.Chunk, error) {
	at := m.run(probe)
	m.recordAttempt(at, "", nil, nil)
	if len(at.chunks) == 0 {
		return nil, nil
	}
	totals := make([]float64, len(at.results))
	for i, r := range at.results {
		totals[i] = r.Total
	}
	idx := rng.ChooseMax(m.rngSrc, totals)
	chosen := at.chunks[idx]
	if rehearse {
		m.store.Learn(chosen.Attrs, m.currentTime)
	}
	return chosen, nil
}

func (m *Memory) recordAttempt(at attempt, outputAttr string, probs []float64, output map[uuid.UUID]float64) {
	if !m.history.Enabled() || len(at.chunks) == 0 {
		return
	}
	recs := make([]history.Record, len(at.chunks))
	for i, c := range at.chunks {
		p := 0.0
		if probs != nil {
			p = probs[i]
		}
		recs[i] = history.Record{
			ChunkID:      c.ID,
			Attrs:        c.Attrs,
			ReinforcedAt: append([]float64(nil), c.ReinforcedAt...),
			BaseLevel:    at.results[i].BaseLevel,
			Noise:        at.results[i].Noise,
			Mismatch:     at.results[i].Mismatch,
			Activation:   at.results[i].Total,
			Probability:  p,
			Eligible:     true,
		}
	}
	m.history.Append(recs, outputAttr, output)
}

// recordWeighted records a blend's cohort (which may be a strict subset of
// a wider attempt, after blendCohort's outputAttr filtering) along with its
// softmax weights and output values, for Salience to read back later. It
// reuses the activation results already computed by run/blendCohort rather
// than recomputing them, since noise sampled outside a fixed_noise scope is
// drawn fresh every call and would otherwise disagree with the blend just
// computed from it.
func (m *Memory) recordWeighted(chunks []*chunk.Chunk, results []activation.Result, weights []float64, outputAttr string, output map[uuid.UUID]float64) {
	if !m.history.Enabled() || len(chunks) == 0 {
		return
	}
	recs := make([]history.Record, len(chunks))
	for i, c := range chunks {
		recs[i] = history.Record{
			ChunkID:      c.ID,
			Attrs:        c.Attrs,
			ReinforcedAt: append([]float64(nil), c.ReinforcedAt...),
			BaseLevel:    results[i].BaseLevel,
			Noise:        results[i].Noise,
			Mismatch:     results[i].Mismatch,
			Activation:   results[i].Total,
			Probability:  weights[i],
			Eligible:     true,
		}
	}
	m.history.Append(recs, outputAttr, output)
}
