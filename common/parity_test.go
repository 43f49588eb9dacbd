// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestEvenParity(t *testing.T) {
	var tests = []struct {
		v      uint16
		result bool
	}{
		{v: 0, result: true},
		{v: 0b111111110, result: true},
		{v: 0b111111111, result: false},
		{v: 0b000110011, result: true},
		{v: 0b100000000, result: false},
		{v: 0xffff, result: true},
	}
	for _, test := range tests {
		if res := EvenParity(test.v); res != test.result {
			t.Errorf("EvenParity(%#b)!=%t received %t", test.v, test.result, res)
		}
	}
}

func TestParityBit(t *testing.T) {
	for v := uint16(0); v < 256; v++ {
		framed := v<<1 | ParityBit(v)
		if !EvenParity(framed) {
			t.Errorf("ParityBit(%#x)=%d does not make %#b even", v, ParityBit(v), framed)
		}
	}
}
