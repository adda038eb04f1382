// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory implements the Memory handle of spec.md §6: the
// orchestrator tying together the chunk store, similarity registry,
// activation engine, history recorder, and salience engine into learn,
// advance, retrieve, blend, and related operations.
package memory

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/cogmod/actr/activation"
	"github.com/cogmod/actr/actrerr"
	"github.com/cogmod/actr/history"
	"github.com/cogmod/actr/rng"
	"github.com/cogmod/actr/salience"
	"github.com/cogmod/actr/simil"
	"github.com/cogmod/actr/store"
)

// Memory is a single declarative-memory instance. It is not safe for
// concurrent use by multiple goroutines without external exclusion
// (spec.md §5); independent Memory values may run in parallel freely.
type Memory struct {
	store    *store.Store
	registry *simil.Registry
	rngSrc   *rng.StdSource
	noise    rng.NoiseCache
	history  history.Recorder

	currentTime float64
	prepop      map[uuid.UUID]bool

	noiseSigma         float64
	decay              *float64
	temperature        *float64
	mismatch           *float64
	threshold          *float64
	optimized          activation.Optimized
	useACTRSimilarity  bool
	derivativeFallback salience.Fallback
}

// New returns a Memory with spec.md §6 default parameters: noise=0.25,
// decay=0.5, temperature auto (sigma*sqrt(2)), mismatch disabled,
// threshold disabled, optimized_learning off. index, when given, declares
// the attribute names the chunk store should maintain a secondary index
// over (spec.md §4.1).
func New(index ...string) *Memory {
	decay := 0.5
	m := &Memory{
		store:      store.New(index...),
		registry:   simil.NewRegistry(),
		rngSrc:     rng.NewStdSource(1),
		noiseSigma: 0.25,
		decay:      &decay,
	}
	return m
}

// Seed reseeds the per-memory RNG (spec.md §5: "per-memory, seedable").
func (m *Memory) Seed(seed int64) {
	m.rngSrc = rng.NewStdSource(seed)
}

// CurrentTime returns t, the memory's current time.
func (m *Memory) CurrentTime() float64 { return m.currentTime }

// SetNoise sets sigma, the logistic noise scale. Requires sigma >= 0.
func (m *Memory) SetNoise(sigma float64) error {
	if sigma < 0 {
		return fmt.Errorf("memory.SetNoise: sigma must be >= 0, got %g: %w", sigma, actrerr.ErrInvalidParameter)
	}
	m.noiseSigma = sigma
	return nil
}

// SetDecay sets d, the base-level decay exponent, or disables decay when d
// is nil. Requires *d >= 0.
func (m *Memory) SetDecay(d *float64) error {
	if d != nil && *d < 0 {
		return fmt.Errorf("memory.SetDecay: decay must be >= 0, got %g: %w", *d, actrerr.ErrInvalidParameter)
	}
	if err := m.validateOptimizedAgainst(d, m.optimized); err != nil {
		return err
	}
	m.decay = d
	return nil
}

// SetTemperature sets tau, the blending softmax temperature, or clears it
// to use the default sigma*sqrt(2) when tau is nil. Requires *tau > 0.
func (m *Memory) SetTemperature(tau *float64) error {
	if tau != nil && *tau <= 0 {
		return fmt.Errorf("memory.SetTemperature: temperature must be > 0, got %g: %w", *tau, actrerr.ErrInvalidParameter)
	}
	m.temperature = tau
	return nil
}

// SetMismatch sets mu, the partial-matching mismatch multiplier, or
// disables partial matching when mu is nil (only exact matches survive).
// Requires *mu >= 0.
func (m *Memory) SetMismatch(mu *float64) error {
	if mu != nil && *mu < 0 {
		return fmt.Errorf("memory.SetMismatch: mismatch must be >= 0, got %g: %w", *mu, actrerr.ErrInvalidParameter)
	}
	m.mismatch = mu
	return nil
}

// SetThreshold sets the minimum activation for a successful retrieval, or
// disables the floor when threshold is nil.
func (m *Memory) SetThreshold(threshold *float64) error {
	m.threshold = threshold
	return nil
}

// SetOptimizedLearningOff disables optimized learning (the default): base
// level uses full reinforcement history.
func (m *Memory) SetOptimizedLearningOff() {
	m.optimized = activation.Optimized{Mode: activation.OptOff}
}

// SetOptimizedLearningOn enables the approximate base-level formula using
// only the first-occurrence time and count. Requires decay < 1.
func (m *Memory) SetOptimizedLearningOn() error {
	opt := activation.Optimized{Mode: activation.OptOn}
	if err := m.validateOptimizedAgainst(m.decay, opt); err != nil {
		return err
	}
	m.optimized = opt
	return nil
}

// SetOptimizedLearningK enables the mixed exact/approximate base-level
// formula using the k most recent timestamps exactly. Requires k >= 1 and
// decay < 1.
func (m *Memory) SetOptimizedLearningK(k int) error {
	if k < 1 {
		return fmt.Errorf("memory.SetOptimizedLearningK: k must be >= 1, got %d: %w", k, actrerr.ErrInvalidParameter)
	}
	opt := activation.Optimized{Mode: activation.OptK, K: k}
	if err := m.validateOptimizedAgainst(m.decay, opt); err != nil {
		return err
	}
	m.optimized = opt
	return nil
}

func (m *Memory) validateOptimizedAgainst(decay *float64, opt activation.Optimized) error {
	if decay == nil || opt.Mode == activation.OptOff {
		return nil
	}
	if *decay >= 1 {
		return fmt.Errorf("memory: optimized_learning requires decay < 1, got %g: %w", *decay, actrerr.ErrInvalidParameter)
	}
	return nil
}

// SetUseACTRSimilarity switches the similarity scale between natural
// ([0,1], the default) and ACT-R ([-1,0]).
func (m *Memory) SetUseACTRSimilarity(on bool) {
	m.useACTRSimilarity = on
	m.registry.UseACTRScale(on)
}

// SetDerivativeFallback selects the policy used when salience requests a
// derivative at a probe value equal to a candidate's value (spec.md §9).
func (m *Memory) SetDerivativeFallback(f salience.Fallback) {
	m.derivativeFallback = f
}

// Similarity assigns a similarity function and weight to an attribute, or
// clears it when fn is nil. Pass simil.Equality to use the built-in
// equality similarity (spec.md §4.2: "Passing fn=True designates an
// attribute as using the built-in equality similarity"). weight == 0
// selects the default of 1; a negative weight is rejected with
// actrerr.ErrInvalidParameter.
func (m *Memory) Similarity(attr string, fn simil.Fn, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("memory.Similarity: weight must be > 0, got %g: %w", weight, actrerr.ErrInvalidParameter)
	}
	if weight == 0 {
		weight = 1
	}
	m.registry.Set(attr, fn, weight)
	return nil
}

// SetSimilarityDerivative assigns (or, with d nil, clears) attr's
// derivative function, used by Salience.
func (m *Memory) SetSimilarityDerivative(attr string, d simil.DerivativeFn) {
	m.registry.SetDerivative(attr, d)
}

func (m *Memory) tau() (float64, error) {
	if m.temperature != nil {
		return *m.temperature, nil
	}
	tau := m.noiseSigma * math.Sqrt2
	if tau <= 0 {
		return 0, fmt.Errorf("memory: temperature has no explicit value and sigma*sqrt(2) is not > 0: %w", actrerr.ErrInvalidParameter)
	}
	return tau, nil
}
