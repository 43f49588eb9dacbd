// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package zacwire is a container for the TSIC ZACWire temperature sensor
// driver and the tools built around it.
//
// See package tsic for the driver itself.
package zacwire
