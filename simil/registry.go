// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simil implements the per-memory similarity-function registry:
// per-attribute similarity and derivative functions, weights, the ACT-R /
// natural scale offset, and the memoization caches described in spec.md
// §4.2.
package simil

import "github.com/cogmod/actr/value"

// Fn computes the similarity of two attribute values. Results are expected
// in [0,1] on the natural scale (1 = identical, 0 = maximally dissimilar),
// or in [-1,0] when the registry is in ACT-R mode, in which case the
// registry adds 1 before caching -- see Registry.UseACTRScale.
type Fn func(x, y value.Value) float64

// DerivativeFn computes d/dx Fn(x, y) for x != y. Need not be symmetric.
type DerivativeFn func(x, y value.Value) float64

// Equality is the built-in equality similarity (1 for equal values, 0
// otherwise); callers select it by passing Equality as the Fn.
func Equality(x, y value.Value) float64 {
	if x.Equal(y) {
		return 1
	}
	return 0
}

// entry holds one attribute's registered functions, weight, and caches.
// Caches live per-entry so reassigning Fn or Deriv for one attribute never
// disturbs any other attribute's cache (spec.md §4.2: "invalidation...
// must be total for that attribute").
type entry struct {
	fn     Fn
	weight float64
	deriv  DerivativeFn

	simCache   map[string]float64 // keyed by unordered pair (symmetric)
	derivCache map[string]float64 // keyed by ordered pair (asymmetric)
}

// Registry is a memory's per-attribute similarity configuration.
type Registry struct {
	entries map[string]*entry
	actr    bool // use_actr_similarity: natural = 1 + actr
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// UseACTRScale switches the registry between natural ([0,1]) and ACT-R
// ([-1,0]) similarity scale for the values returned by caller-supplied Fns.
// The cache always stores values on the natural scale (spec.md §4.2).
func (r *Registry) UseACTRScale(on bool) { r.actr = on }

// Set assigns (or, with fn == nil, clears) the similarity function and
// weight for attr. Reassignment invalidates attr's similarity cache.
func (r *Registry) Set(attr string, fn Fn, weight float64) {
	e := r.entryFor(attr)
	e.fn = fn
	e.weight = weight
	e.simCache = nil
}

// SetDerivative assigns (or, with d == nil, clears) the derivative function
// for attr. Reassignment invalidates attr's derivative cache.
func (r *Registry) SetDerivative(attr string, d DerivativeFn) {
	e := r.entryFor(attr)
	e.deriv = d
	e.derivCache = nil
}

func (r *Registry) entryFor(attr string) *entry {
	e, ok := r.entries[attr]
	if !ok {
		e = &entry{weight: 1}
		r.entries[attr] = e
	}
	return e
}

// Defined reports whether attr has a similarity function registered.
func (r *Registry) Defined(attr string) bool {
	e, ok := r.entries[attr]
	return ok && e.fn != nil
}

// Weight returns attr's registered weight, defaulting to 1.
func (r *Registry) Weight(attr string) float64 {
	e, ok := r.entries[attr]
	if !ok || e.weight == 0 {
		return 1
	}
	return e.weight
}

// Similarity returns the natural-scale similarity of x and y for attr,
// memoized by their unordered pair (spec.md §8: "ξ(x,y) ≡ ξ(y,x)").
func (r *Registry) Similarity(attr string, x, y value.Value) float64 {
	e := r.entries[attr]
	if e == nil || e.fn == nil {
		return 1
	}
	key := pairKey(x, y)
	if e.simCache == nil {
		e.simCache = make(map[string]float64)
	}
	if v, ok := e.simCache[key]; ok {
		return v
	}
	raw := e.fn(x, y)
	if r.actr {
		raw = 1 + raw
	}
	e.simCache[key] = raw
	return raw
}

// HasDerivative reports whether attr has a derivative function registered.
func (r *Registry) HasDerivative(attr string) bool {
	e, ok := r.entries[attr]
	return ok && e.deriv != nil
}

// Derivative returns d/dx Fn(x,y) for attr, memoized by the ordered pair
// (x, y) since derivatives need not be symmetric. Callers must not invoke
// this when x == y; that case is a policy decision made above this
// package (spec.md §4.5, §9).
func (r *Registry) Derivative(attr string, x, y value.Value) float64 {
	e := r.entries[attr]
	if e == nil || e.deriv == nil {
		return 0
	}
	key := orderedKey(x, y)
	if e.derivCache == nil {
		e.derivCache = make(map[string]float64)
	}
	if v, ok := e.derivCache[key]; ok {
		return v
	}
	v := e.deriv(x, y)
	e.derivCache[key] = v
	return v
}

func pairKey(x, y value.Value) string {
	a, b := x.Signature(), y.Signature()
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

func orderedKey(x, y value.Value) string {
	return x.Signature() + "\x00" + y.Signature()
}
