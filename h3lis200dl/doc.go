// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package h3lis200dl controls an ST H3LIS200DL high-g 3-axis accelerometer
// over I²C.
//
// The device is identified by its WHO_AM_I register on construction. The
// measurement range and data rate are configured through CTRL_REG1, which
// can be read back and written with CtrlReg1 and SetCtrlReg1.
//
// Acceleration reads the three output registers in a single multi-byte
// transaction. The 12 significant bits of each axis are scaled by a fixed
// factor of 0.78 per count.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/h3lis200dl.pdf
package h3lis200dl
