// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logic

import (
	"strings"

	"github.com/pkg/errors"
)

// A Vector is a fixed-width bus of signal levels. Index 0 is the least
// significant bit; the string form is written MSB first, like a numeral.
//
type Vector []Level

// NewVector returns a width-bit vector with every bit set to l.
//
func NewVector(width int, l Level) Vector {
	v := make(Vector, width)
	for i := range v {
		v[i] = l
	}
	return v
}

// ParseVector converts a string of signal literals ("1010", "10ZX") to a
// Vector. The leftmost literal becomes the most significant bit.
//
func ParseVector(s string) (Vector, error) {
	rs := []rune(s)
	v := make(Vector, len(rs))
	for i, r := range rs {
		l, err := ParseLevel(r)
		if err != nil {
			return nil, errors.Wrapf(err, "bit %d of %q", len(rs)-1-i, s)
		}
		v[len(rs)-1-i] = l
	}
	return v, nil
}

// VectorFromUint64 returns a width-bit vector holding the low width bits
// of n. If width exceeds 64, the bits past the 64th are Low.
//
func VectorFromUint64(width int, n uint64) Vector {
	v := make(Vector, width)
	for i := range v {
		v[i] = FromBool(n&(1<<uint(i)) != 0)
	}
	return v
}

// Uint64 converts v to an unsigned integer. The second return value is
// false if the returned value is not an exact reading of v: some bit is
// non-driving, or a bit past the 64th is high. Such bits read as 0 in
// the returned value.
//
func (v Vector) Uint64() (uint64, bool) {
	var n uint64
	ok := true
	for i, l := range v {
		if !l.IsDriving() {
			ok = false
			continue
		}
		if l == High {
			if i >= 64 {
				ok = false
				continue
			}
			n |= 1 << uint(i)
		}
	}
	return n, ok
}

// Clone returns an independent copy of v.
//
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// Equal returns true if v and o have the same width and the same level
// in every position.
//
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// String returns v as signal literals, MSB first.
//
func (v Vector) String() string {
	var b strings.Builder
	for i := len(v) - 1; i >= 0; i-- {
		b.WriteString(v[i].String())
	}
	return b.String()
}
