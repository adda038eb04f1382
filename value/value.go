// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value defines the tagged scalar variant used for chunk attribute
// values: numbers, strings, booleans, or symbols.
package value

import (
	"fmt"
	"math"
)

// Kind identifies which variant of Value is populated.
type Kind int

// The supported scalar kinds.
const (
	Number Kind = iota
	Text
	Bool
	Symbol
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Text:
		return "Text"
	case Bool:
		return "Bool"
	case Symbol:
		return "Symbol"
	default:
		return "Unknown"
	}
}

// Value is an immutable hashable scalar: a number, a string, a boolean, or
// a symbol (an interned-style string used for categorical attribute
// values, distinct from free text only by convention).
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Num wraps a numeric value.
func Num(f float64) Value { return Value{kind: Number, num: f} }

// Str wraps a text value.
func Str(s string) Value { return Value{kind: Text, str: s} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: Bool, b: b} }

// Sym wraps a symbol value (a categorical label).
func Sym(s string) Value { return Value{kind: Symbol, str: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v holds a numeric value.
func (v Value) IsNumber() bool { return v.kind == Number }

// Float returns the numeric value, and whether v actually holds one.
func (v Value) Float() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.num, true
}

// Equal reports whether v and o carry the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.num == o.num
	case Bool:
		return v.b == o.b
	default:
		return v.str == o.str
	}
}

// String renders v for use as a map key component and for display, e.g. in
// print_chunks output.
func (v Value) String() string {
	switch v.kind {
	case Number:
		if math.Trunc(v.num) == v.num && !math.IsInf(v.num, 0) {
			return fmt.Sprintf("%d", int64(v.num))
		}
		return fmt.Sprintf("%g", v.num)
	case Bool:
		return fmt.Sprintf("%t", v.b)
	default:
		return v.str
	}
}

// Signature is a stable, collision-resistant key component distinguishing
// values of different kinds that happen to render identically (e.g. the
// text "true" versus the boolean true).
func (v Value) Signature() string {
	return fmt.Sprintf("%d:%s", v.kind, v.String())
}
