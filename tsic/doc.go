// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tsic reads Innovative Sensor Technology TSIC digital temperature
// sensors over their single ZACWire signal line.
//
// The sensor transmits a reading as two packets. Each packet starts with a
// start bit whose low phase, the strobe, is half a bit period long. Every
// following bit begins with a falling edge; the line is sampled one strobe
// length after that edge. The strobe is measured again for every packet since
// it drifts with the die temperature.
//
// The signal pin is polled in a busy loop, so readings are only reliable on a
// host where the calling goroutine is not preempted for long. Lock the
// goroutine to its thread with runtime.LockOSThread when in doubt.
//
// When a supply pin is given, the sensor is powered only for the duration of
// a read. This guarantees the first falling edge seen is the start of a fresh
// reading and never leaves the sensor mid transmission after an error.
//
// Supported models: TSIC206, TSIC306 (-50°C - 150°C, 11 bits), TSIC506
// (-10°C - 60°C, 11 bits), TSIC716 (-10°C - 60°C, 14 bits).
//
// # Datasheet
//
// https://www.ist-ag.com/sites/default/files/DTTSic20x_30x_E.pdf
//
// https://www.ist-ag.com/sites/default/files/ATTSic_E.pdf
package tsic
