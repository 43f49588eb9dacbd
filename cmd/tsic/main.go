// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// tsic reads a TSIC temperature sensor connected to a host GPIO.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/GermanBionicSystems/zacwire/gauge"
	"github.com/GermanBionicSystems/zacwire/thermobar"
	"github.com/GermanBionicSystems/zacwire/tsic"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var (
	dataName string
	vddName  string
	model    string
	count    int
	interval time.Duration
	bar      bool
	pngPath  string
)

var rootCmd = &cobra.Command{
	Use:   "tsic",
	Short: "Read a TSIC temperature sensor over ZACWire",
	Long: `Read temperatures from a TSIC sensor whose signal line is connected to a
GPIO of this host.

When --vdd is given the sensor is powered from that GPIO only while reading.
Failed readings are reported and the next interval is tried; parity errors
are usually transient.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	log.SetFlags(log.Lmicroseconds)
	f := rootCmd.Flags()
	f.StringVar(&dataName, "data", "", "GPIO connected to the sensor signal line")
	f.StringVar(&vddName, "vdd", "", "GPIO powering the sensor, leave empty when permanently powered")
	f.StringVar(&model, "model", "tsic306", "sensor model: tsic206, tsic306, tsic506 or tsic716")
	f.IntVarP(&count, "count", "n", 1, "number of readings, 0 to read until interrupted")
	f.DurationVarP(&interval, "interval", "i", time.Second, "time between readings")
	f.BoolVar(&bar, "bar", false, "show readings as a colored bar")
	f.StringVar(&pngPath, "png", "", "write the last reading as a PNG image")
	_ = rootCmd.MarkFlagRequired("data")
}

func run(cmd *cobra.Command, args []string) error {
	m, err := tsic.ParseModel(model)
	if err != nil {
		return err
	}
	if count < 0 {
		return errors.New("--count must be positive")
	}
	if _, err := host.Init(); err != nil {
		return err
	}
	data := gpioreg.ByName(dataName)
	if data == nil {
		return fmt.Errorf("invalid GPIO %q", dataName)
	}
	var vdd gpio.PinOut
	if vddName != "" {
		p := gpioreg.ByName(vddName)
		if p == nil {
			return fmt.Errorf("invalid GPIO %q", vddName)
		}
		vdd = p
	}

	opts := tsic.DefaultOpts
	opts.Model = m
	d, err := tsic.New(data, vdd, &opts)
	if err != nil {
		return err
	}
	defer d.Halt()

	var b *thermobar.Dev
	if bar {
		lo, hi := m.Range()
		if b, err = thermobar.New(&thermobar.Opts{Width: 40, Min: lo, Max: hi}); err != nil {
			return err
		}
		defer b.Halt()
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	var last *tsic.Temperature
	for i := 0; count == 0 || i < count; i++ {
		if i != 0 {
			select {
			case <-interrupted:
				return save(last, m)
			case <-time.After(interval):
			}
		}
		t, err := d.Read()
		if err != nil {
			log.Printf("%s: %v", d, err)
			continue
		}
		last = &t
		if b != nil {
			if err := b.Show(t.Physic()); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%s: %.2f°C (raw %#04x)\n", d, t.Celsius(), t.Raw())
	}
	return save(last, m)
}

// save writes t as a PNG image when requested.
func save(t *tsic.Temperature, m tsic.Model) error {
	if pngPath == "" || t == nil {
		return nil
	}
	lo, hi := m.Range()
	g, err := gauge.New(&gauge.Opts{Width: 256, Height: 128, Min: lo, Max: hi})
	if err != nil {
		return err
	}
	return g.SavePNG(pngPath, t.Physic())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tsic: %s.\n", err)
		os.Exit(1)
	}
}
