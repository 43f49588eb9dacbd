// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tsic

import (
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/zacwire/common"
	"periph.io/x/conn/v3/physic"
)

// packet is one parity checked byte of a reading.
type packet uint8

// decode validates the 9 raw bits of a packet. The parity bit is the least
// significant one.
func decode(raw uint16) (packet, error) {
	raw &= 1<<packetBits - 1
	if !common.EvenParity(raw) {
		return 0, fmt.Errorf("%w: raw bits %#03x", ErrParity, raw)
	}
	return packet(raw >> 1), nil
}

// Model is a TSIC sensor variant. They share the protocol and differ by their
// transfer function.
type Model uint8

const (
	TSIC306 Model = iota
	TSIC206
	TSIC506
	TSIC716
)

type transfer struct {
	name   string
	lo, hi int64  // °C
	full   uint16 // raw value at hi
}

var transfers = [...]transfer{
	TSIC306: {"TSIC306", -50, 150, 2047},
	TSIC206: {"TSIC206", -50, 150, 2047},
	TSIC506: {"TSIC506", -10, 60, 2047},
	TSIC716: {"TSIC716", -10, 60, 16383},
}

func (m Model) valid() bool {
	return int(m) < len(transfers)
}

func (m Model) String() string {
	if !m.valid() {
		return fmt.Sprintf("Model(%d)", uint8(m))
	}
	return transfers[m].name
}

// Range returns the temperatures matching the raw values 0 and full scale.
func (m Model) Range() (lo, hi physic.Temperature) {
	t := transfers[m]
	return physic.ZeroCelsius + physic.Temperature(t.lo)*physic.Kelvin,
		physic.ZeroCelsius + physic.Temperature(t.hi)*physic.Kelvin
}

// Resolution returns the temperature step of one raw count.
func (m Model) Resolution() physic.Temperature {
	t := transfers[m]
	return physic.Temperature((t.hi - t.lo) * int64(physic.Kelvin) / int64(t.full))
}

// ParseModel returns the Model named s, case insensitive.
func ParseModel(s string) (Model, error) {
	for i, t := range transfers {
		if strings.EqualFold(t.name, s) {
			return Model(i), nil
		}
	}
	return 0, fmt.Errorf("tsic: unknown model %q", s)
}

// Temperature is one reading: the high and low packets as a 16 bit raw value.
type Temperature struct {
	raw   uint16
	model Model
}

func combine(high, low packet, m Model) Temperature {
	return Temperature{raw: uint16(high)<<8 | uint16(low), model: m}
}

// Raw returns the value as transmitted by the sensor.
func (t Temperature) Raw() uint16 {
	return t.raw
}

// Model returns the sensor model that produced the reading.
func (t Temperature) Model() Model {
	return t.model
}

// Celsius converts the raw value with the data sheet transfer function, e.g.
// raw × 200 / 2047 - 50 for a TSIC306.
func (t Temperature) Celsius() float64 {
	tr := transfers[t.model]
	return float64(t.raw)*float64(tr.hi-tr.lo)/float64(tr.full) + float64(tr.lo)
}

// Physic converts the reading to a physic.Temperature, computed in integer
// nano kelvin.
func (t Temperature) Physic() physic.Temperature {
	tr := transfers[t.model]
	span := physic.Temperature(int64(t.raw) * (tr.hi - tr.lo) * int64(physic.Kelvin) / int64(tr.full))
	return physic.ZeroCelsius + physic.Temperature(tr.lo)*physic.Kelvin + span
}

func (t Temperature) String() string {
	return t.Physic().String()
}
