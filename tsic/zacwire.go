// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tsic

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// packetBits is 8 data bits followed by the parity bit.
const packetBits = 9

// readPacket acquires one ZACWire packet.
//
// When the falling edge of the start bit occurs, the time until the rising
// edge is the strobe. Each of the following bits starts with a falling edge;
// the line is sampled one strobe after it. Because every bit restarts the
// sampling window, timing errors do not accumulate along the packet.
func (d *Dev) readPacket() (packet, error) {
	if err := d.waitFor(gpio.Low); err != nil {
		return 0, err
	}
	strobe, err := d.strobe()
	if err != nil {
		return 0, err
	}
	var raw uint16
	for range packetBits {
		if err := d.waitFor(gpio.Low); err != nil {
			return 0, err
		}
		spin(strobe)
		raw <<= 1
		if d.data.Read() == gpio.High {
			raw |= 1
		}
		if err := d.waitFor(gpio.High); err != nil {
			return 0, err
		}
	}
	return decode(raw)
}

// strobe measures how long the line stays low from now on, in increments of
// Opts.StrobeSampling. The caller must have just seen the falling edge.
//
// The strobe is around 62µs at the nominal 8kHz bit rate.
func (d *Dev) strobe() (time.Duration, error) {
	var l time.Duration
	for d.data.Read() == gpio.Low {
		l += d.opts.StrobeSampling
		if d.opts.EdgeTimeout > 0 && l > d.opts.EdgeTimeout {
			return 0, fmt.Errorf("%w: %s low for %s", ErrLineStuck, d.data, l)
		}
		spin(d.opts.StrobeSampling)
	}
	return l, nil
}

// waitFor polls the signal pin until it reads l.
func (d *Dev) waitFor(l gpio.Level) error {
	if d.opts.EdgeTimeout < 0 {
		for d.data.Read() != l {
		}
		return nil
	}
	deadline := now().Add(d.opts.EdgeTimeout)
	for d.data.Read() != l {
		if now().After(deadline) {
			return fmt.Errorf("%w: %s did not go %s within %s", ErrLineStuck, d.data, l, d.opts.EdgeTimeout)
		}
	}
	return nil
}
