// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for device drivers.
//
// The h3lis200dl package drives the ST H3LIS200DL accelerometer over I²C.
package devices
