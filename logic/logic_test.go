package logic_test

import (
	"testing"

	"github.com/db47h/syncreg/logic"
)

func TestParseLevel(t *testing.T) {
	td := []struct {
		in  rune
		out logic.Level
		err bool
	}{
		{'0', logic.Low, false},
		{'1', logic.High, false},
		{'L', logic.Low, false},
		{'h', logic.High, false},
		{'Z', logic.HighZ, false},
		{'z', logic.HighZ, false},
		{'X', logic.Undefined, false},
		{'U', logic.Undefined, false},
		{'-', logic.Undefined, false},
		{'2', logic.Undefined, true},
		{'?', logic.Undefined, true},
	}
	for _, d := range td {
		l, err := logic.ParseLevel(d.in)
		if d.err {
			if err == nil {
				t.Errorf("ParseLevel(%q): expected error", d.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", d.in, err)
			continue
		}
		if l != d.out {
			t.Errorf("ParseLevel(%q) = %v, expected %v", d.in, l, d.out)
		}
	}
}

func TestLevel_Combine(t *testing.T) {
	td := []struct {
		a, b, out logic.Level
	}{
		{logic.Low, logic.Low, logic.Low},
		{logic.High, logic.High, logic.High},
		{logic.Low, logic.High, logic.Undefined},
		{logic.HighZ, logic.High, logic.High},
		{logic.Low, logic.HighZ, logic.Low},
		{logic.HighZ, logic.HighZ, logic.HighZ},
		{logic.Undefined, logic.High, logic.Undefined},
		{logic.HighZ, logic.Undefined, logic.Undefined},
	}
	for _, d := range td {
		if out := d.a.Combine(d.b); out != d.out {
			t.Errorf("%v.Combine(%v) = %v, expected %v", d.a, d.b, out, d.out)
		}
		if out := d.b.Combine(d.a); out != d.out {
			t.Errorf("%v.Combine(%v) = %v, expected %v", d.b, d.a, out, d.out)
		}
	}
}

func TestLevel_Invert(t *testing.T) {
	td := []struct {
		in, out logic.Level
	}{
		{logic.Low, logic.High},
		{logic.High, logic.Low},
		{logic.HighZ, logic.Undefined},
		{logic.Undefined, logic.Undefined},
	}
	for _, d := range td {
		if out := d.in.Invert(); out != d.out {
			t.Errorf("%v.Invert() = %v, expected %v", d.in, out, d.out)
		}
	}
}

func TestLevel_IsDriving(t *testing.T) {
	if !logic.Low.IsDriving() || !logic.High.IsDriving() {
		t.Error("Low and High must be driving")
	}
	if logic.HighZ.IsDriving() || logic.Undefined.IsDriving() {
		t.Error("HighZ and Undefined must not be driving")
	}
}
