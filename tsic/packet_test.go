// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tsic

import (
	"errors"
	"math"
	"math/bits"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestDecode(t *testing.T) {
	for v := uint16(0); v < 1<<packetBits; v++ {
		p, err := decode(v)
		even := bits.OnesCount16(v)%2 == 0
		if even != (err == nil) {
			t.Fatalf("decode(%#b): err=%v, even parity=%t", v, err, even)
		}
		if err != nil {
			if !errors.Is(err, ErrParity) {
				t.Fatalf("decode(%#b): expected ErrParity, got %v", v, err)
			}
			continue
		}
		if uint16(p) != v>>1 {
			t.Fatalf("decode(%#b)=%#x, expected %#x", v, p, v>>1)
		}
	}
}

func TestDecode_scenarios(t *testing.T) {
	if p, err := decode(0b111111110); err != nil || p != 255 {
		t.Errorf("expected 255, got %d, %v", p, err)
	}
	if _, err := decode(0b111111111); !errors.Is(err, ErrParity) {
		t.Errorf("expected ErrParity, got %v", err)
	}
}

func TestCombine(t *testing.T) {
	for h := 0; h < 256; h += 7 {
		for l := 0; l < 256; l += 5 {
			tp := combine(packet(h), packet(l), TSIC306)
			if expected := uint16(h)<<8 | uint16(l); tp.Raw() != expected {
				t.Fatalf("combine(%#x, %#x)=%#x, expected %#x", h, l, tp.Raw(), expected)
			}
		}
	}
	tp := combine(0x19, 0x33, TSIC306)
	if tp.Raw() != 6451 {
		t.Fatalf("expected 6451, got %d", tp.Raw())
	}
	if c := tp.Celsius(); math.Abs(c-580.2882266731802) > 1e-9 {
		t.Errorf("expected ~580.28°C, got %f", c)
	}
}

func TestCelsius(t *testing.T) {
	var testData = []struct {
		model    Model
		raw      uint16
		expected float64
	}{
		{TSIC306, 0, -50},
		{TSIC306, 2047, 150},
		{TSIC206, 2047, 150},
		{TSIC506, 0, -10},
		{TSIC506, 2047, 60},
		{TSIC716, 16383, 60},
		{TSIC716, 0, -10},
	}
	for _, entry := range testData {
		tp := Temperature{raw: entry.raw, model: entry.model}
		if c := tp.Celsius(); math.Abs(c-entry.expected) > 1e-9 {
			t.Errorf("%s raw=%d: expected %f, got %f", entry.model, entry.raw, entry.expected, c)
		}
		if c := tp.Physic().Celsius(); math.Abs(c-entry.expected) > 1e-6 {
			t.Errorf("%s raw=%d: expected %f, got %s", entry.model, entry.raw, entry.expected, tp.Physic())
		}
	}
}

func TestCelsius_monotonic(t *testing.T) {
	step := 200.0 / 2047
	prev := Temperature{model: TSIC306}.Celsius()
	for raw := 1; raw <= 2047; raw++ {
		c := Temperature{raw: uint16(raw), model: TSIC306}.Celsius()
		if c <= prev || math.Abs(c-prev-step) > 1e-9 {
			t.Fatalf("raw=%d: %f does not follow %f linearly", raw, c, prev)
		}
		prev = c
	}
}

func TestModel(t *testing.T) {
	m, err := ParseModel("tsic506")
	if err != nil || m != TSIC506 {
		t.Fatalf("expected TSIC506, got %s, %v", m, err)
	}
	if _, err := ParseModel("tsic999"); err == nil {
		t.Fatal("expected error for unknown model")
	}
	if s := Model(42).String(); s != "Model(42)" {
		t.Errorf("unexpected %q", s)
	}
	lo, hi := TSIC306.Range()
	if lo != physic.ZeroCelsius-50*physic.Kelvin || hi != physic.ZeroCelsius+150*physic.Kelvin {
		t.Errorf("unexpected range %s - %s", lo, hi)
	}
	if r := TSIC306.Resolution(); r != 97703957*physic.NanoKelvin {
		t.Errorf("unexpected resolution %d", r)
	}
}
