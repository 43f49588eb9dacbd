// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tsic

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// power sequences the sensor supply. A nil pin means the supply is not
// managed and every operation succeeds without touching anything.
type power struct {
	pin    gpio.PinOut
	settle time.Duration
}

func (p *power) managed() bool {
	return p.pin != nil
}

// up raises VDD and waits for the sensor output to settle.
func (p *power) up() error {
	if !p.managed() {
		return nil
	}
	if err := p.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("%w %s high: %w", ErrPinWrite, p.pin, err)
	}
	spin(p.settle)
	return nil
}

func (p *power) down() error {
	if !p.managed() {
		return nil
	}
	if err := p.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("%w %s low: %w", ErrPinWrite, p.pin, err)
	}
	return nil
}
