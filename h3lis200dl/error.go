// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package h3lis200dl

import "fmt"

// WrongChipIDError is returned by NewI2C when the WHO_AM_I register does not
// hold DeviceID. The device on the bus is not an H3LIS200DL.
type WrongChipIDError struct {
	ID byte
}

func (e *WrongChipIDError) Error() string {
	return fmt.Sprintf("h3lis200dl: wrong chip id %#02x, expected %#02x", e.ID, DeviceID)
}

// BusError wraps a failure reported by the I²C bus. The underlying error is
// returned unchanged by Unwrap.
type BusError struct {
	Op  string
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("h3lis200dl: %s: %v", e.Op, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// UnrecognizedConfigError is returned when a register field holds a bit
// pattern with no defined meaning, or when a value being encoded is not one
// of the defined constants.
type UnrecognizedConfigError struct {
	Field string
	Bits  byte
}

func (e *UnrecognizedConfigError) Error() string {
	return fmt.Sprintf("h3lis200dl: unrecognized %s bits %08b", e.Field, e.Bits)
}
