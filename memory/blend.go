// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/cogmod/actr/activation"
	"github.com/cogmod/actr/actrerr"
	"github.com/cogmod/actr/chunk"
	"github.com/cogmod/actr/rng"
	"github.com/cogmod/actr/value"
)

// softmax returns exp(totals[i]/tau) / sum, computed with the max-subtraction
// stabilization the teacher uses in decoder.SoftMax.Forward before taking
// the exponential, so a well-separated activation never overflows.
func softmax(totals []float64, tau float64) []float64 {
	max := math.Inf(-1)
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	exps := make([]float64, len(totals))
	sum := 0.0
	for i, t := range totals {
		e := math.Exp((t - max) / tau)
		exps[i] = e
		sum += e
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// blendCohort filters at down to the candidates carrying outputAttr as a
// number, reporting the chunks, their activations, and the numeric output
// values in parallel slices. An outputAttr absent from every candidate in
// at is actrerr.ErrUnknownAttribute; present but non-numeric on any
// candidate is actrerr.ErrNonNumericBlend.
func blendCohort(at attempt, outputAttr string) (chunks []*chunk.Chunk, results []activation.Result, outs []float64, err error) {
	sawAttr := false
	for i, c := range at.chunks {
		v, ok := c.Attrs.Get(outputAttr)
		if !ok {
			continue
		}
		sawAttr = true
		f, ok := v.Float()
		if !ok {
			return nil, nil, nil, fmt.Errorf("memory: attribute %q is not numeric on chunk %s: %w", outputAttr, c.ID, actrerr.ErrNonNumericBlend)
		}
		chunks = append(chunks, c)
		results = append(results, at.results[i])
		outs = append(outs, f)
	}
	if !sawAttr && len(at.chunks) > 0 {
		return nil, nil, nil, fmt.Errorf("memory: attribute %q is absent from every candidate: %w", outputAttr, actrerr.ErrUnknownAttribute)
	}
	return chunks, results, outs, nil
}

// Blend computes the activation-weighted average of outputAttr across every
// chunk matching probe (spec.md §4.4): BV = sum(w_i * v_i), where w_i =
// softmax(A_i / tau). Returns nil (no error) when no chunk matches probe at
// all; returns an error when candidates exist but outputAttr can't be
// blended on them.
func (m *Memory) Blend(outputAttr string, probe map[string]value.Value) (*float64, error) {
	tau, err := m.tau()
	if err != nil {
		return nil, err
	}
	at := m.run(probe)
	chunks, results, outs, err := blendCohort(at, outputAttr)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}
	totals := make([]float64, len(results))
	for i, r := range results {
		totals[i] = r.Total
	}
	weights := softmax(totals, tau)
	bv := 0.0
	for i, w := range weights {
		bv += w * outs[i]
	}
	output := make(map[uuid.UUID]float64, len(chunks))
	for i, c := range chunks {
		output[c.ID] = outs[i]
	}
	m.recordWeighted(chunks, results, weights, outputAttr, output)
	return &bv, nil
}

// DiscreteBlend picks the value of outputAttr whose sub-cohort of candidates
// (those sharing that value) carries the greatest aggregate retrieval
// weight, sum(exp(A_i/tau)) over the sub-cohort (spec.md §4.4). outputAttr
// need not be numeric -- unlike Blend, the values themselves are never
// averaged, only grouped. Returns nil (no error) when no chunk matches
// probe.
func (m *Memory) DiscreteBlend(outputAttr string, probe map[string]value.Value) (*value.Value, error) {
	tau, err := m.tau()
	if err != nil {
		return nil, err
	}
	at := m.run(probe)

	type group struct {
		value  value.Value
		weight float64
	}
	groups := make(map[string]*group)
	var order []string
	sawAttr := false
	for i, c := range at.chunks {
		v, ok := c.Attrs.Get(outputAttr)
		if !ok {
			continue
		}
		sawAttr = true
		sig := v.Signature()
		g, ok := groups[sig]
		if !ok {
			g = &group{value: v}
			groups[sig] = g
			order = append(order, sig)
		}
		g.weight += math.Exp(at.results[i].Total / tau)
	}
	if !sawAttr {
		if len(at.chunks) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("memory: attribute %q is absent from every candidate: %w", outputAttr, actrerr.ErrUnknownAttribute)
	}

	weights := make([]float64, len(order))
	for i, sig := range order {
		weights[i] = groups[sig].weight
	}
	idx := rng.ChooseMax(m.rngSrc, weights)
	best := groups[order[idx]].value
	return &best, nil
}

// BestBlend evaluates Blend(outputAttr, probe + {choiceAttr: c}) for every c
// in choices and returns the choice achieving the greatest blended value,
// along with that value, breaking ties uniformly at random (spec.md §4.4).
// Choices for which Blend finds no matching candidates are skipped. Returns
// (nil, nil, nil) if every choice is skipped.
func (m *Memory) BestBlend(outputAttr string, choices []value.Value, choiceAttr string, probe map[string]value.Value) (*value.Value, *float64, error) {
	type candidate struct {
		choice value.Value
		bv     float64
	}
	var survivors []candidate
	for _, c := range choices {
		merged := make(map[string]value.Value, len(probe)+1)
		for k, v := range probe {
			merged[k] = v
		}
		merged[choiceAttr] = c
		bv, err := m.Blend(outputAttr, merged)
		if err != nil {
			return nil, nil, err
		}
		if bv == nil {
			continue
		}
		survivors = append(survivors, candidate{choice: c, bv: *bv})
	}
	if len(survivors) == 0 {
		return nil, nil, nil
	}
	bvs := make([]float64, len(survivors))
	for i, s := range survivors {
		bvs[i] = s.bv
	}
	idx := rng.ChooseMax(m.rngSrc, bvs)
	return &survivors[idx].choice, &survivors[idx].bv, nil
}
