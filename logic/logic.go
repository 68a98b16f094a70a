// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logic models one-bit hardware logic values and fixed-width
// vectors of them.
//
// A Level is a closed enumeration: the two driving states Low and High,
// plus HighZ (high-impedance, undriven) and Undefined (unknown or
// conflicting). Keeping the non-driving states around lets a simulation
// detect uninitialized or badly resolved signals instead of silently
// reading them as false.
//
package logic

import "github.com/pkg/errors"

// A Level is the state of a one-bit signal.
//
type Level uint8

// Signal states. Low and High are the only driving states.
//
const (
	Low Level = iota
	High
	HighZ
	Undefined
)

// ParseLevel converts a signal literal to a Level. Accepted literals
// follow the usual HDL conventions: '0', 'L' for Low, '1', 'H' for High,
// 'Z' for high-impedance, and 'X', 'U', 'W' or '-' for Undefined.
//
func ParseLevel(r rune) (Level, error) {
	switch r {
	case '0', 'L', 'l':
		return Low, nil
	case '1', 'H', 'h':
		return High, nil
	case 'Z', 'z':
		return HighZ, nil
	case 'X', 'x', 'U', 'u', 'W', 'w', '-':
		return Undefined, nil
	}
	return Undefined, errors.Errorf("unknown signal literal %q", r)
}

// FromBool converts a boolean wire state to a Level.
//
func FromBool(b bool) Level {
	if b {
		return High
	}
	return Low
}

// Bool returns the boolean wire state of l. Non-driving levels read as
// false, like an undriven input in a two-state simulator.
//
func (l Level) Bool() bool {
	return l == High
}

// IsDriving returns true if l is one of the two driven states.
//
func (l Level) IsDriving() bool {
	return l == Low || l == High
}

// Invert returns the logical complement of l. Non-driving levels invert
// to Undefined.
//
func (l Level) Invert() Level {
	switch l {
	case Low:
		return High
	case High:
		return Low
	}
	return Undefined
}

// Combine resolves two drivers of the same wire. A driving level wins
// over HighZ; conflicting or undefined drivers resolve to Undefined.
//
func (l Level) Combine(o Level) Level {
	switch {
	case l == o:
		return l
	case l == HighZ && o.IsDriving():
		return o
	case o == HighZ && l.IsDriving():
		return l
	}
	return Undefined
}

// String returns the HDL literal for l.
//
func (l Level) String() string {
	switch l {
	case Low:
		return "0"
	case High:
		return "1"
	case HighZ:
		return "Z"
	}
	return "X"
}
