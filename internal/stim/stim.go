// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package stim loads register stimulus files.
//
// A stimulus file is a YAML document holding the register configuration
// and one input record per clock cycle:
//
//	register:
//	  size: 4
//	  reset_active_level: "1"
//	  reset_value: "0000"
//	cycles:
//	  - {reset: "0", enable: "1", data_in: "1010"}
//	  - {reset: "1", enable: "1", data_in: "1111"}
//
// reset_active_level and reset_value are optional and default to "1" and
// the all-zero vector.
//
package stim

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/syncreg"
	"github.com/db47h/syncreg/logic"
)

// Level wraps logic.Level for YAML decoding from a signal literal like
// "0" or "1".
//
type Level struct {
	logic.Level
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (l *Level) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	rs := []rune(s)
	if len(rs) != 1 {
		return errors.Errorf("line %d: signal level must be a single literal, got %q", n.Line, s)
	}
	v, err := logic.ParseLevel(rs[0])
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	l.Level = v
	return nil
}

// Vector wraps logic.Vector for YAML decoding from a literal string like
// "1010".
//
type Vector struct {
	logic.Vector
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
func (v *Vector) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	vec, err := logic.ParseVector(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", n.Line)
	}
	v.Vector = vec
	return nil
}

// Register is the register configuration section.
//
type Register struct {
	Size             int     `yaml:"size"`
	ResetActiveLevel *Level  `yaml:"reset_active_level"`
	ResetValue       *Vector `yaml:"reset_value"`
}

// Cycle is the set of register inputs for one clock cycle.
//
type Cycle struct {
	Reset  Level  `yaml:"reset"`
	Enable Level  `yaml:"enable"`
	DataIn Vector `yaml:"data_in"`
}

// File is a parsed stimulus file.
//
type File struct {
	Register Register `yaml:"register"`
	Cycles   []Cycle  `yaml:"cycles"`
}

// Config converts the register section to a syncreg.Config, applying
// defaults for omitted fields. The result is not validated; that is left
// to syncreg.New.
//
func (f *File) Config() syncreg.Config {
	cfg := syncreg.DefaultConfig(f.Register.Size)
	if f.Register.ResetActiveLevel != nil {
		cfg.ResetActiveLevel = f.Register.ResetActiveLevel.Level
	}
	if f.Register.ResetValue != nil {
		cfg.ResetValue = f.Register.ResetValue.Vector
	}
	return cfg
}

// Read parses a stimulus file from r.
//
func Read(r io.Reader) (*File, error) {
	var f File
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "failed to parse stimulus file")
	}
	if len(f.Cycles) == 0 {
		return nil, errors.New("stimulus file has no cycles")
	}
	// width errors are caught here, with the offending cycle, rather than
	// left to surface from the register mid-run
	size := f.Register.Size
	if f.Register.ResetValue != nil && len(f.Register.ResetValue.Vector) != size {
		return nil, errors.Errorf("reset_value is %d bits wide, register size is %d",
			len(f.Register.ResetValue.Vector), size)
	}
	for i := range f.Cycles {
		if got := len(f.Cycles[i].DataIn.Vector); got != size {
			return nil, errors.Errorf("cycle %d: data_in is %d bits wide, register size is %d",
				i, got, size)
		}
	}
	return &f, nil
}

// Load parses the stimulus file at path.
//
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open stimulus file")
	}
	defer fh.Close()
	f, err := Read(fh)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return f, nil
}
