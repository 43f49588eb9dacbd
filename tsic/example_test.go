// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tsic_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/GermanBionicSystems/zacwire/tsic"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// The signal line is on GPIO17; GPIO27 powers the sensor.
	data := gpioreg.ByName("GPIO17")
	vdd := gpioreg.ByName("GPIO27")
	if data == nil || vdd == nil {
		log.Fatal("failed to find GPIO pins")
	}

	d, err := tsic.New(data, vdd, nil) // nil for default options or &tsic.DefaultOpts
	if err != nil {
		log.Fatalf("failed to initialize TSIC: %v", err)
	}
	defer d.Halt()

	// A parity error is usually transient; retrying is up to the caller.
	t, err := d.Read()
	for i := 0; errors.Is(err, tsic.ErrParity) && i < 3; i++ {
		t, err = d.Read()
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.2f°C\n", t.Celsius())
}
