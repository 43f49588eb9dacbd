// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gauge renders a temperature reading as an image: the value in large
// digits above a horizontal bar spanning the sensor range.
//
// The image can be sent to any display.Drawer, e.g. an ssd1306 OLED or an
// inky e-paper panel, or saved as PNG.
package gauge

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options of a Gauge.
type Opts struct {
	Width, Height int
	// Min and Max are the temperatures at both ends of the bar.
	Min, Max physic.Temperature
	// FontSize in points. Defaults to a third of Height.
	FontSize float64
}

// Gauge renders readings.
type Gauge struct {
	opts Opts
	face font.Face
}

// New returns a Gauge using the Go regular font.
func New(opts *Opts) (*Gauge, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("gauge: invalid size")
	}
	if opts.Min >= opts.Max {
		return nil, errors.New("gauge: invalid temperature range")
	}
	o := *opts
	if o.FontSize == 0 {
		o.FontSize = float64(o.Height) / 3
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("gauge: %w", err)
	}
	return &Gauge{opts: o, face: truetype.NewFace(f, &truetype.Options{Size: o.FontSize})}, nil
}

// Render returns the image of t.
func (g *Gauge) Render(t physic.Temperature) image.Image {
	w, h := float64(g.opts.Width), float64(g.opts.Height)
	margin := h / 16
	barH := h / 4
	barY := h - barH - margin
	barW := w - 2*margin
	frac := g.fraction(t)

	dc := gg.NewContext(g.opts.Width, g.opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.85, 0.85, 0.85)
	dc.DrawRectangle(margin, barY, barW, barH)
	dc.Fill()
	if frac > 0 {
		dc.SetRGB(frac, 0.25, 1-frac)
		dc.DrawRectangle(margin, barY, barW*frac, barH)
		dc.Fill()
	}

	dc.SetFontFace(g.face)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f°C", t.Celsius()), w/2, barY/2, 0.5, 0.5)
	return dc.Image()
}

// Draw renders t on the whole surface of dst.
func (g *Gauge) Draw(dst display.Drawer, t physic.Temperature) error {
	return dst.Draw(dst.Bounds(), g.Render(t), image.Point{})
}

// SavePNG renders t into the PNG file path.
func (g *Gauge) SavePNG(path string, t physic.Temperature) error {
	return gg.SavePNG(path, g.Render(t))
}

// fraction returns the position of t in the range, clamped to [0, 1].
func (g *Gauge) fraction(t physic.Temperature) float64 {
	switch {
	case t <= g.opts.Min:
		return 0
	case t >= g.opts.Max:
		return 1
	}
	return float64(t-g.opts.Min) / float64(g.opts.Max-g.opts.Min)
}
