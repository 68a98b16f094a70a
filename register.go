// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package syncreg

import (
	"github.com/db47h/syncreg/logic"
)

// A Config holds the construction parameters of a Register. They map to
// the generics of the hardware component and are bound once, at
// construction; a Register cannot be reconfigured.
//
type Config struct {
	// Size is the width of the data path in bits. Must be >= 1.
	Size int

	// ResetActiveLevel is the level at which the Reset input is
	// considered asserted. Must be a driving level. The zero value is
	// logic.Low (an active-low reset); use DefaultConfig for the
	// conventional active-high reset.
	ResetActiveLevel logic.Level

	// ResetValue is the output forced by an asserted reset. If nil, the
	// all-zero vector is used. When set, its width must equal Size.
	ResetValue logic.Vector
}

// DefaultConfig returns the conventional configuration for a size-bit
// register: active-high reset, all-zero reset value.
//
func DefaultConfig(size int) Config {
	return Config{Size: size, ResetActiveLevel: logic.High}
}

// Validate checks the construction parameters. It returns an
// *InvalidParameterError describing the first offending parameter, or
// nil.
//
func (cfg *Config) Validate() error {
	if cfg.Size < 1 {
		return &InvalidParameterError{Param: "Size", Reason: "must be a positive integer"}
	}
	if !cfg.ResetActiveLevel.IsDriving() {
		return &InvalidParameterError{Param: "ResetActiveLevel", Reason: "must be a driving level (0 or 1)"}
	}
	if cfg.ResetValue != nil && len(cfg.ResetValue) != cfg.Size {
		return &InvalidParameterError{Param: "ResetValue", Reason: "width does not match Size"}
	}
	return nil
}

// A Register is a simulated synchronous register. Its output doubles as
// its internal state: there is no separate shadow register.
//
// A Register is not safe for concurrent use; it models a device driven by
// a single clock and must be ticked from one goroutine at a time.
//
type Register struct {
	size        int
	resetActive logic.Level
	resetValue  logic.Vector
	out         logic.Vector
}

// New builds a Register from cfg. The initial output is the reset value.
//
func New(cfg Config) (*Register, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rv := cfg.ResetValue
	if rv == nil {
		rv = logic.NewVector(cfg.Size, logic.Low)
	} else {
		rv = rv.Clone()
	}
	return &Register{
		size:        cfg.Size,
		resetActive: cfg.ResetActiveLevel,
		resetValue:  rv,
		out:         rv.Clone(),
	}, nil
}

// Size returns the width of the data path in bits.
//
func (r *Register) Size() int { return r.size }

// Out returns a copy of the current output.
//
func (r *Register) Out() logic.Vector { return r.out.Clone() }

// Tick applies one clock edge to the register and returns the resulting
// output.
//
// On a rising edge the reset input is checked first: if it equals the
// configured active level the output becomes the reset value, whatever
// the enable input says. Otherwise, if enable is high the data input is
// captured. Otherwise the output is held. A non-rising tick never changes
// the output, for any input values.
//
// Tick fails with a *WidthMismatchError, leaving the register untouched,
// if dataIn is not exactly Size bits wide.
//
func (r *Register) Tick(rising bool, reset, enable logic.Level, dataIn logic.Vector) (logic.Vector, error) {
	if len(dataIn) != r.size {
		return nil, &WidthMismatchError{Want: r.size, Got: len(dataIn)}
	}
	if !rising {
		return r.out.Clone(), nil
	}
	switch {
	case reset == r.resetActive:
		copy(r.out, r.resetValue)
	case enable == logic.High:
		copy(r.out, dataIn)
	}
	return r.out.Clone(), nil
}
