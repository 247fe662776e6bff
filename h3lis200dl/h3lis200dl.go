// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package h3lis200dl

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// scale converts a right-aligned 12 bit sample to the output unit.
const scale float32 = 0.78

// DebugF is the signature of the debug tracing function.
type DebugF func(string, ...interface{})

// Opts holds the configuration options for the device.
type Opts struct {
	// Config, if not nil, is written to CTRL_REG1 once the device is
	// identified. When nil the register is left untouched.
	Config *CtrlReg1Config
}

// DefaultOpts turns the device on in normal mode at 50Hz with all axes
// enabled.
var DefaultOpts = Opts{
	Config: &CtrlReg1Config{
		PowerMode: NormalMode,
		DataRate:  Odr50,
		XEnabled:  true,
		YEnabled:  true,
		ZEnabled:  true,
	},
}

// Dev is a handle to an H3LIS200DL accelerometer.
//
// Dev is not safe for concurrent use; the bus transactions of two callers
// would interleave.
type Dev struct {
	d     *i2c.Dev
	debug DebugF
}

// Acceleration is a sample of the three axes.
type Acceleration struct {
	X float32
	Y float32
	Z float32
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%.2f Y:%.2f Z:%.2f", a.X, a.Y, a.Z)
}

// NewI2C returns an object that communicates over I²C to an H3LIS200DL at
// addr, usually PrimaryAddress or SecondaryAddress. The WHO_AM_I register is
// read once; if it does not match DeviceID a *WrongChipIDError is returned
// and nothing else is sent to the device. The Opts can be nil.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, debug: noop}
	id, err := d.readReg(WhoAmI)
	if err != nil {
		return nil, err
	}
	if id != DeviceID {
		return nil, &WrongChipIDError{ID: id}
	}
	if opts != nil && opts.Config != nil {
		if err := d.SetCtrlReg1(*opts.Config); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("H3LIS200DL{%s}", d.d)
}

// EnableDebug sets a function to trace register accesses.
func (d *Dev) EnableDebug(f DebugF) {
	if f == nil {
		f = noop
	}
	d.debug = f
}

// Acceleration reads the X, Y and Z output registers in one transaction.
//
// Each axis is a little endian two's complement value whose 4 low bits are
// not significant; they are dropped with a sign preserving shift before
// scaling.
func (d *Dev) Acceleration() (Acceleration, error) {
	var buf [6]byte
	if err := d.readRegs(OutX, buf[:]); err != nil {
		return Acceleration{}, err
	}
	return Acceleration{
		X: countToAcceleration(buf[0], buf[1]),
		Y: countToAcceleration(buf[2], buf[3]),
		Z: countToAcceleration(buf[4], buf[5]),
	}, nil
}

// CtrlReg1 reads and decodes CTRL_REG1.
func (d *Dev) CtrlReg1() (CtrlReg1Config, error) {
	b, err := d.readReg(CtrlReg1)
	if err != nil {
		return CtrlReg1Config{}, err
	}
	return DecodeCtrlReg1(b)
}

// SetCtrlReg1 encodes c and writes it to CTRL_REG1.
func (d *Dev) SetCtrlReg1(c CtrlReg1Config) error {
	b, err := c.Encode()
	if err != nil {
		return err
	}
	return d.writeReg(CtrlReg1, b)
}

// Halt implements conn.Resource. The device has no background activity to
// stop, so it does nothing.
func (d *Dev) Halt() error {
	return nil
}

// countToAcceleration combines the low and high bytes of an axis sample.
func countToAcceleration(low, high byte) float32 {
	raw := int16(uint16(high)<<8 | uint16(low))
	return float32(raw>>4) * scale
}

func (d *Dev) readReg(reg Register) (byte, error) {
	var r [1]byte
	if err := d.d.Tx([]byte{reg.Addr()}, r[:]); err != nil {
		return 0, &BusError{Op: "read " + reg.String(), Err: err}
	}
	d.debug("read %s: %#02x", reg, r[0])
	return r[0], nil
}

// readRegs reads len(r) consecutive registers starting at reg.
func (d *Dev) readRegs(reg Register, r []byte) error {
	if err := d.d.Tx([]byte{reg.Addr() | subMulti}, r); err != nil {
		return &BusError{Op: "read " + reg.String(), Err: err}
	}
	d.debug("read %s: % x", reg, r)
	return nil
}

func (d *Dev) writeReg(reg Register, value byte) error {
	d.debug("write %s: %#02x", reg, value)
	if err := d.d.Tx([]byte{reg.Addr(), value}, nil); err != nil {
		return &BusError{Op: "write " + reg.String(), Err: err}
	}
	return nil
}

func noop(string, ...interface{}) {}

var _ conn.Resource = &Dev{}
