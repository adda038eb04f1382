// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package actr is the overall repository for a declarative-memory engine
implementing a subset of ACT-R's declarative memory: content-addressed
chunk storage, activation-based probabilistic retrieval, blending, and
salience analysis.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* value defines the tagged scalar type (number, string, boolean, symbol)
used for every chunk attribute.

* chunk defines the immutable attribute-tuple chunk and its canonicalized,
content-addressable attribute representation.

* rng provides the per-memory randomization used for logistic activation
noise and uniform tie-breaking among maximal values -- never a
package-global generator.

* simil implements the per-attribute similarity and derivative function
registry, with memoized, invalidation-on-reassignment caches.

* store implements the chunk collection: insertion-ordered enumeration,
re-learning as reinforcement, and an optional secondary index.

* activation computes base-level activation, logistic noise, and the
partial-matching mismatch penalty that sum to total chunk activation.

* history implements the optional activation-history recorder consumed
by salience and by external introspection.

* salience computes the partial-derivative salience of a probe attribute
against the most recently recorded blend.

* actrerr defines the library's error kinds as wrapped sentinel errors.

* memory ties all of the above together into the Memory handle: learn,
advance, retrieve, blend, discrete_blend, best_blend, forget, reset, the
scoped fixed_noise acquisition, and the activation_history on/off switch.

* applog and cfg are ambient support packages for the demonstration
binaries under cmd/, providing structured logging and layered
configuration respectively.

* cmd/rps and cmd/ibl are runnable demonstrations: a mutual
instance-based-learning rock-paper-scissors match, and the safe/risky
instance-based-learning choice model exhibiting risk aversion.
*/
package actr
