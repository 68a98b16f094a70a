package regtest_test

import (
	"testing"

	"github.com/db47h/syncreg"
	"github.com/db47h/syncreg/logic"
	"github.com/db47h/syncreg/regtest"
)

// model is a naive reference register written directly from the port
// contract, with none of syncreg.Register's copying or validation.
type model struct {
	active logic.Level
	out    logic.Vector
}

func (m *model) Size() int { return len(m.out) }

func (m *model) Tick(rising bool, reset, enable logic.Level, in logic.Vector) (logic.Vector, error) {
	if rising {
		if reset == m.active {
			m.out = make(logic.Vector, len(m.out))
		} else if enable == logic.High {
			m.out = in.Clone()
		}
	}
	return m.out, nil
}

func TestRegister_matches_model(t *testing.T) {
	for _, size := range []int{1, 4, 16} {
		r, err := syncreg.New(syncreg.DefaultConfig(size))
		if err != nil {
			t.Fatal(err)
		}
		m := &model{active: logic.High, out: make(logic.Vector, size)}
		regtest.Compare(t, 5000, int64(size), r, m)
	}
}

func TestRegister_matches_model_active_low(t *testing.T) {
	r, err := syncreg.New(syncreg.Config{Size: 8, ResetActiveLevel: logic.Low})
	if err != nil {
		t.Fatal(err)
	}
	m := &model{active: logic.Low, out: make(logic.Vector, 8)}
	regtest.Compare(t, 5000, 8, r, m)
}
