// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tsic

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3/cpu"
)

var (
	// ErrParity is returned when a packet fails its even parity check. It is
	// usually transient; a new Read is likely to succeed.
	ErrParity = errors.New("tsic: parity check failed")
	// ErrPinRead is returned when the signal pin cannot be accessed.
	ErrPinRead = errors.New("tsic: failed to read signal pin")
	// ErrPinWrite is returned when the supply pin cannot be driven.
	ErrPinWrite = errors.New("tsic: failed to drive supply pin")
	// ErrLineStuck is returned when the signal line does not change level
	// within Opts.EdgeTimeout.
	ErrLineStuck = errors.New("tsic: signal line stuck")
)

const (
	// StrobeSampling is the increment used to measure the strobe. The
	// application note recommends 128kHz (7.8µs); the delay has microsecond
	// granularity.
	StrobeSampling = 8 * time.Microsecond
	// PowerUpDelay lets the sensor output settle after VDD is raised.
	PowerUpDelay = 50 * time.Microsecond
	// EdgeTimeout bounds every wait for the signal line to change. The sensor
	// transmits at 10Hz so a fresh packet always starts within 100ms.
	EdgeTimeout = 250 * time.Millisecond

	minInterval = 100 * time.Millisecond
)

// Replaced in tests to run on a simulated clock.
var (
	spin = cpu.Nanospin
	now  = time.Now
)

// Opts holds the configuration options. Zero durations select the default.
type Opts struct {
	Model Model
	// StrobeSampling is the polling increment while measuring the strobe.
	StrobeSampling time.Duration
	// PowerUpDelay is waited after raising the supply pin.
	PowerUpDelay time.Duration
	// EdgeTimeout bounds each wait for an edge. A negative value waits
	// forever.
	EdgeTimeout time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Model:          TSIC306,
	StrobeSampling: StrobeSampling,
	PowerUpDelay:   PowerUpDelay,
	EdgeTimeout:    EdgeTimeout,
}

// Dev is a handle to a TSIC sensor.
//
// Dev owns both pins; nothing else may use them while it is in use.
type Dev struct {
	data  gpio.PinIn
	power power
	opts  Opts

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// New returns a TSIC sensor reading its signal on data.
//
// vdd is the pin powering the sensor. It may be nil when the sensor is
// permanently powered, in which case no power sequencing happens at all. When
// vdd is given the sensor is powered down immediately.
//
// If opts is nil, DefaultOpts is used.
func New(data gpio.PinIn, vdd gpio.PinOut, opts *Opts) (*Dev, error) {
	if data == nil {
		return nil, errors.New("tsic: data pin is required")
	}
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if err := o.fill(); err != nil {
		return nil, err
	}
	d := &Dev{data: data, power: power{pin: vdd, settle: o.PowerUpDelay}, opts: o}
	if err := d.power.down(); err != nil {
		return nil, err
	}
	return d, nil
}

func (o *Opts) fill() error {
	if !o.Model.valid() {
		return fmt.Errorf("tsic: unknown model %d", o.Model)
	}
	if o.StrobeSampling < 0 {
		return errors.New("tsic: invalid strobe sampling increment")
	}
	if o.StrobeSampling == 0 {
		o.StrobeSampling = StrobeSampling
	}
	if o.PowerUpDelay < 0 {
		return errors.New("tsic: invalid power up delay")
	}
	if o.PowerUpDelay == 0 {
		o.PowerUpDelay = PowerUpDelay
	}
	if o.EdgeTimeout == 0 {
		o.EdgeTimeout = EdgeTimeout
	}
	return nil
}

// Read acquires one temperature reading.
//
// The sensor is powered up first when a supply pin is managed and always
// powered down before returning. When only that final power down fails, the
// valid reading is returned along with an error wrapping ErrPinWrite.
//
// No retry happens; on ErrParity the caller may simply call Read again.
func (d *Dev) Read() (Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.read()
}

func (d *Dev) read() (Temperature, error) {
	if err := d.data.In(gpio.PullNoChange, gpio.NoEdge); err != nil {
		return Temperature{}, fmt.Errorf("%w %s: %w", ErrPinRead, d.data, err)
	}
	if err := d.power.up(); err != nil {
		_ = d.power.down()
		return Temperature{}, err
	}
	high, err := d.readPacket()
	if err != nil {
		_ = d.power.down()
		return Temperature{}, fmt.Errorf("%w (first packet)", err)
	}
	low, err := d.readPacket()
	if err != nil {
		_ = d.power.down()
		return Temperature{}, fmt.Errorf("%w (second packet)", err)
	}
	t := combine(high, low, d.opts.Model)
	return t, d.power.down()
}

// Sense reads the temperature into env. Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	t, err := d.Read()
	if err != nil {
		return err
	}
	env.Temperature = t.Physic()
	return nil
}

// SenseContinuous reads the sensor every interval and sends the readings on
// the returned channel. Failed readings are dropped. Call Halt to stop; the
// channel is then closed. Implements physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minInterval {
		return nil, fmt.Errorf("tsic: invalid interval %s, minimum %s", interval, minInterval)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("tsic: already sensing continuously")
	}
	d.stop = make(chan struct{})
	ch := make(chan physic.Env, 16)
	d.wg.Add(1)
	go d.sense(interval, ch, d.stop)
	return ch, nil
}

func (d *Dev) sense(interval time.Duration, ch chan<- physic.Env, stop <-chan struct{}) {
	defer d.wg.Done()
	defer close(ch)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		d.mu.Lock()
		select {
		case <-stop:
			d.mu.Unlock()
			return
		default:
		}
		t, err := d.read()
		d.mu.Unlock()
		if err != nil {
			continue
		}
		select {
		case ch <- physic.Env{Temperature: t.Physic()}:
		case <-stop:
			return
		}
	}
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = d.opts.Model.Resolution()
	env.Pressure = 0
	env.Humidity = 0
}

// Halt stops continuous sensing and powers the sensor down when a supply
// pin is managed. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	err := d.power.down()
	d.mu.Unlock()
	d.wg.Wait()
	return err
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s}", d.opts.Model, d.data)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
