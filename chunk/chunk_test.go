// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogmod/actr/value"
)

func TestSignatureOrderIndependent(t *testing.T) {
	a := NewAttrs(map[string]value.Value{"r": value.Num(1), "h": value.Num(2)})
	b := NewAttrs(map[string]value.Value{"h": value.Num(2), "r": value.Num(1)})
	assert.Equal(t, a.Signature(), b.Signature())
}

func TestSignatureDiffersOnValue(t *testing.T) {
	a := NewAttrs(map[string]value.Value{"r": value.Num(1)})
	b := NewAttrs(map[string]value.Value{"r": value.Num(2)})
	assert.NotEqual(t, a.Signature(), b.Signature())
}

func TestReinforceAndForget(t *testing.T) {
	c := New(NewAttrs(map[string]value.Value{"r": value.Num(1)}), 0)
	c.Reinforce(1)
	c.Reinforce(1)
	assert.Equal(t, 3, c.Count())
	assert.True(t, c.Forget(1))
	assert.Equal(t, 2, c.Count())
	assert.False(t, c.Forget(99))
}

func TestEmpty(t *testing.T) {
	c := New(NewAttrs(map[string]value.Value{"r": value.Num(1)}), 0)
	assert.False(t, c.Empty())
	c.Forget(0)
	assert.True(t, c.Empty())
}
