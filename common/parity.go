// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains bit level helpers shared by serial protocol
// decoders.
package common

import "math/bits"

// EvenParity reports whether v, parity bit included, has an even number of
// set bits.
func EvenParity(v uint16) bool {
	return bits.OnesCount16(v)%2 == 0
}

// ParityBit returns the bit to append to v so that the result has even
// parity.
func ParityBit(v uint16) uint16 {
	return uint16(bits.OnesCount16(v) & 1)
}
