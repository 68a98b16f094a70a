// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package regtest provides utility functions for testing register
// implementations against each other.
//
package regtest

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/db47h/syncreg/bench"
	"github.com/db47h/syncreg/logic"
)

func randLevel(rng *rand.Rand) logic.Level {
	return logic.FromBool(rng.Int63()&(1<<62) != 0)
}

// Compare drives two devices of the same width with identical
// pseudo-random stimuli for the given number of clock cycles and fails t
// at the first cycle where their outputs diverge.
//
// The stimulus stream is deterministic for a given seed, so a failing
// seed can be replayed.
//
func Compare(t *testing.T, cycles int, seed int64, a, b bench.Device) {
	t.Helper()

	if a.Size() != b.Size() {
		t.Fatalf("device widths differ: %d vs %d", a.Size(), b.Size())
	}
	size := a.Size()
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < cycles; i++ {
		var (
			reset  = randLevel(rng)
			enable = randLevel(rng)
			in     = make(logic.Vector, size)
		)
		for k := range in {
			in[k] = randLevel(rng)
		}
		// occasional non-rising tick, which must be a no-op for both
		rising := rng.Intn(4) != 0

		oa, err := a.Tick(rising, reset, enable, in)
		if err != nil {
			t.Fatalf("cycle %d: device a: %v", i, err)
		}
		ob, err := b.Tick(rising, reset, enable, in)
		if err != nil {
			t.Fatalf("cycle %d: device b: %v", i, err)
		}
		if !oa.Equal(ob) {
			t.Fatalf("cycle %d: outputs diverge (rising=%v reset=%v enable=%v in=%v):\n%s",
				i, rising, reset, enable, in, cmp.Diff(oa.String(), ob.String()))
		}
	}
}
