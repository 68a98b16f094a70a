// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bench drives one or more synchronous registers from a single
// modeled clock.
//
// All devices on a bench share one clock domain: the stimuli of every
// stage are sampled before any device is ticked, so a stage's inputs for
// a given edge can never observe another stage's output from the same
// edge.
//
package bench

import (
	"runtime"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/db47h/syncreg/logic"
)

// A Device is a clocked component that can be placed on a bench.
// syncreg.Register implements it.
//
type Device interface {
	// Size returns the data path width in bits.
	Size() int
	// Tick applies one clock edge. See syncreg.Register.Tick.
	Tick(rising bool, reset, enable logic.Level, dataIn logic.Vector) (logic.Vector, error)
}

// A StimulusFn computes a device's inputs for a clock cycle.
//
type StimulusFn func(cycle uint64) (reset, enable logic.Level, dataIn logic.Vector)

// A ProbeFn observes a device's output after the rising edge of a cycle.
//
type ProbeFn func(out logic.Vector)

// A Stage is one device on the bench together with its stimulus and an
// optional output probe.
//
type Stage struct {
	// Stage name, used in error messages. If empty, the stage's index on
	// the bench is used.
	Name string

	Dev      Device
	Stimulus StimulusFn
	Probe    ProbeFn
}

// stage is the bench-internal state of a Stage: the inputs sampled for
// the current edge and the result of the last tick.
type stage struct {
	Stage

	reset  logic.Level
	enable logic.Level
	in     logic.Vector
	out    logic.Vector
	err    error
}

// A Bench runs a set of stages in lock step with a two-phase clock.
//
// Callers must call Dispose once the bench is no longer needed in order
// to stop the worker goroutines.
//
type Bench struct {
	stages []*stage
	cycle  uint64
	rising bool

	wc []chan struct{}
	wg sync.WaitGroup
}

// New builds a bench from the given stages.
//
// workers is the number of goroutines used to tick the devices on every
// edge. If less or equal to 0, the value of GOMAXPROCS is used. Each
// device is owned by exactly one worker, so devices never race with one
// another.
//
func New(workers int, stages ...Stage) (*Bench, error) {
	if len(stages) == 0 {
		return nil, errors.New("empty stage list")
	}
	b := &Bench{stages: make([]*stage, len(stages))}
	for i, s := range stages {
		if s.Dev == nil {
			return nil, errors.Errorf("stage %d: nil device", i)
		}
		if s.Stimulus == nil {
			return nil, errors.Errorf("stage %d: nil stimulus", i)
		}
		if s.Name == "" {
			s.Name = strconv.Itoa(i)
		}
		b.stages[i] = &stage{Stage: s}
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers <= 0 {
		workers = 1
	}
	ss := b.stages
	for len(ss) > 0 {
		size := len(ss) / workers
		if size*workers < len(ss) {
			size++
		}
		wc := make(chan struct{}, 1)
		b.wc = append(b.wc, wc)
		go worker(b, ss[:size], wc)
		ss = ss[size:]
		workers--
	}
	return b, nil
}

func worker(b *Bench, ss []*stage, wc <-chan struct{}) {
	for {
		_, ok := <-wc
		if !ok {
			b.wg.Done()
			return
		}
		for _, s := range ss {
			s.out, s.err = s.Dev.Tick(b.rising, s.reset, s.enable, s.in)
		}
		b.wg.Done()
	}
}

// step triggers the workers for one edge and waits for them.
func (b *Bench) step(rising bool) error {
	b.rising = rising
	b.wg.Add(len(b.wc))
	for _, wc := range b.wc {
		wc <- struct{}{}
	}
	b.wg.Wait()
	for _, s := range b.stages {
		if s.err != nil {
			return errors.Wrap(s.err, "stage "+s.Name)
		}
	}
	return nil
}

// Tick runs the rising edge of the current cycle: stimuli are sampled
// for all stages first, then every device is ticked and the probes are
// called with the post-edge outputs.
//
func (b *Bench) Tick() error {
	for _, s := range b.stages {
		s.reset, s.enable, s.in = s.Stimulus(b.cycle)
	}
	if err := b.step(true); err != nil {
		return err
	}
	for _, s := range b.stages {
		if s.Probe != nil {
			s.Probe(s.out)
		}
	}
	return nil
}

// Tock runs the falling edge of the current cycle. Devices are
// edge-triggered on the rising edge only, so this never changes any
// output; it is modeled so that devices see both phases of the clock.
//
func (b *Bench) Tock() error {
	err := b.step(false)
	b.cycle++
	return err
}

// TickTock runs one full clock cycle.
//
func (b *Bench) TickTock() error {
	if err := b.Tick(); err != nil {
		return err
	}
	return b.Tock()
}

// Run runs n full clock cycles, stopping at the first error.
//
func (b *Bench) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := b.TickTock(); err != nil {
			return err
		}
	}
	return nil
}

// Cycle returns the number of completed clock cycles.
//
func (b *Bench) Cycle() uint64 {
	return b.cycle
}

// Dispose stops the worker goroutines. The bench must not be used after
// calling Dispose.
//
func (b *Bench) Dispose() {
	b.wg.Add(len(b.wc))
	for _, wc := range b.wc {
		close(wc)
	}
	b.wg.Wait()
}
