// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermobar shows temperature readings on the terminal as a bar
// colored from blue (cold) to red (hot) using ANSI color codes.
//
// Useful to watch a sensor while its display is still coming by mail.
package thermobar

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for this bar.
type Opts struct {
	// Width is the number of terminal cells of the bar.
	Width int
	// Min and Max are the temperatures at the two ends of the bar.
	Min, Max physic.Temperature
	Palette  *ansi256.Palette

	_ struct{}
}

// Dev is a thermometer bar drawn on the console.
type Dev struct {
	w       io.Writer
	opts    Opts
	palette ansi256.Palette

	cells []color.NRGBA
	buf   bytes.Buffer
}

var empty = color.NRGBA{0x30, 0x30, 0x30, 0xff}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes its ANSI output to w.
func NewWriter(w io.Writer, opts *Opts) (*Dev, error) {
	if opts.Width <= 0 {
		return nil, errors.New("thermobar: invalid width")
	}
	if opts.Min >= opts.Max {
		return nil, errors.New("thermobar: invalid temperature range")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		w:       w,
		opts:    *opts,
		palette: *p,
		cells:   make([]color.NRGBA, opts.Width),
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ThermoBar{%s, %s}", d.opts.Min, d.opts.Max)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors and moves to the next line.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Show redraws the bar for t. Temperatures outside the range are clamped.
func (d *Dev) Show(t physic.Temperature) error {
	n := d.filled(t)
	last := len(d.cells) - 1
	for i := range d.cells {
		if i >= n {
			d.cells[i] = empty
			continue
		}
		var r byte
		if last > 0 {
			r = byte(i * 0xff / last)
		} else {
			r = 0xff
		}
		d.cells[i] = color.NRGBA{r, 0x40, 0xff - r, 0xff}
	}
	return d.refresh(t)
}

// filled returns the number of lit cells for t.
func (d *Dev) filled(t physic.Temperature) int {
	if t <= d.opts.Min {
		return 0
	}
	if t >= d.opts.Max {
		return len(d.cells)
	}
	return int(int64(t-d.opts.Min) * int64(len(d.cells)) / int64(d.opts.Max-d.opts.Min))
}

func (d *Dev) refresh(t physic.Temperature) error {
	// Reuse the buffer to avoid allocating per reading.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for _, c := range d.cells {
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %s ", t)
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
