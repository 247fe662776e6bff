// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package h3lis200dl

import "fmt"

const (
	// PrimaryAddress is the I²C address with the SA0 pin pulled low.
	PrimaryAddress uint16 = 0b0011000
	// SecondaryAddress is the I²C address with the SA0 pin pulled high.
	SecondaryAddress uint16 = 0b0011001

	// DeviceID is the content of the WHO_AM_I register.
	DeviceID byte = 0b0011_0010

	// subMulti is OR'ed with a register address to auto-increment the
	// address on multi-byte reads.
	subMulti byte = 0b1000_0000
)

// Register is the address of a device register.
type Register byte

const (
	WhoAmI        Register = 0x0F
	CtrlReg1      Register = 0x20
	CtrlReg2      Register = 0x21
	CtrlReg3      Register = 0x22
	CtrlReg4      Register = 0x23
	CtrlReg5      Register = 0x24
	HPFilterReset Register = 0x25
	Reference     Register = 0x26
	StatusReg     Register = 0x27
	OutX          Register = 0x29
	OutY          Register = 0x2B
	OutZ          Register = 0x2D
	Int1Cfg       Register = 0x30
	Int1Src       Register = 0x31
	Int1Ths       Register = 0x32
	Int1Duration  Register = 0x33
	Int2Cfg       Register = 0x34
	Int2Src       Register = 0x35
	Int2Ths       Register = 0x36
	Int2Duration  Register = 0x37
)

var registerNames = map[Register]string{
	WhoAmI:        "WHO_AM_I",
	CtrlReg1:      "CTRL_REG1",
	CtrlReg2:      "CTRL_REG2",
	CtrlReg3:      "CTRL_REG3",
	CtrlReg4:      "CTRL_REG4",
	CtrlReg5:      "CTRL_REG5",
	HPFilterReset: "HP_FILTER_RESET",
	Reference:     "REFERENCE",
	StatusReg:     "STATUS_REG",
	OutX:          "OUT_X",
	OutY:          "OUT_Y",
	OutZ:          "OUT_Z",
	Int1Cfg:       "INT1_CFG",
	Int1Src:       "INT1_SRC",
	Int1Ths:       "INT1_THS",
	Int1Duration:  "INT1_DURATION",
	Int2Cfg:       "INT2_CFG",
	Int2Src:       "INT2_SRC",
	Int2Ths:       "INT2_THS",
	Int2Duration:  "INT2_DURATION",
}

// Addr returns the register address as sent on the bus.
func (r Register) Addr() byte {
	return byte(r)
}

func (r Register) String() string {
	if s, ok := registerNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Register(%#02x)", byte(r))
}

// PowerMode selects between power down, normal mode and the low-power
// output data rates. It occupies bits 7-5 of CTRL_REG1.
type PowerMode byte

const (
	PowerDown PowerMode = iota
	NormalMode
	HzHalf
	Hz1
	Hz2
	Hz5
	Hz10
)

// DataRate selects the output data rate in normal mode. It occupies bits
// 4-3 of CTRL_REG1.
type DataRate byte

const (
	Odr50 DataRate = iota
	Odr100
	Odr400
	Odr1000
)

const (
	powerModeMask byte = 0b1110_0000
	dataRateMask  byte = 0b0001_1000
	zEnableBit    byte = 0b0000_0100
	yEnableBit    byte = 0b0000_0010
	xEnableBit    byte = 0b0000_0001
)

// Bit patterns of each PowerMode, in place in CTRL_REG1. 0b111 is not
// assigned.
var powerModeBits = [...]byte{
	PowerDown:  0b0000_0000,
	NormalMode: 0b0010_0000,
	HzHalf:     0b0100_0000,
	Hz1:        0b0110_0000,
	Hz2:        0b1000_0000,
	Hz5:        0b1010_0000,
	Hz10:       0b1100_0000,
}

// Bit patterns of each DataRate, in place in CTRL_REG1.
var dataRateBits = [...]byte{
	Odr50:   0b0000_0000,
	Odr100:  0b0000_1000,
	Odr400:  0b0001_0000,
	Odr1000: 0b0001_1000,
}

var lowPassCutoffs = [...]uint32{
	Odr50:   37,
	Odr100:  74,
	Odr400:  292,
	Odr1000: 780,
}

// Reverse lookups, built from the tables above.
var (
	powerModeByBits = map[byte]PowerMode{}
	dataRateByBits  = map[byte]DataRate{}
)

func init() {
	for m, b := range powerModeBits {
		powerModeByBits[b] = PowerMode(m)
	}
	for r, b := range dataRateBits {
		dataRateByBits[b] = DataRate(r)
	}
}

func (p PowerMode) String() string {
	switch p {
	case PowerDown:
		return "PowerDown"
	case NormalMode:
		return "NormalMode"
	case HzHalf:
		return "0.5Hz"
	case Hz1:
		return "1Hz"
	case Hz2:
		return "2Hz"
	case Hz5:
		return "5Hz"
	case Hz10:
		return "10Hz"
	}
	return fmt.Sprintf("PowerMode(%d)", byte(p))
}

func (d DataRate) String() string {
	switch d {
	case Odr50:
		return "50Hz"
	case Odr100:
		return "100Hz"
	case Odr400:
		return "400Hz"
	case Odr1000:
		return "1000Hz"
	}
	return fmt.Sprintf("DataRate(%d)", byte(d))
}

// LowPassCutoff returns the low-pass filter cut-off associated with the data
// rate, as listed in the datasheet table for CTRL_REG1. It returns 0 for an
// undefined DataRate.
func (d DataRate) LowPassCutoff() uint32 {
	if int(d) >= len(lowPassCutoffs) {
		return 0
	}
	return lowPassCutoffs[d]
}

// CtrlReg1Config is the decoded content of CTRL_REG1.
type CtrlReg1Config struct {
	PowerMode PowerMode
	DataRate  DataRate
	XEnabled  bool
	YEnabled  bool
	ZEnabled  bool
}

// DecodeCtrlReg1 decodes the raw content of CTRL_REG1. It returns an
// *UnrecognizedConfigError if the power mode field holds the unassigned
// pattern 0b111.
func DecodeCtrlReg1(b byte) (CtrlReg1Config, error) {
	pm, ok := powerModeByBits[b&powerModeMask]
	if !ok {
		return CtrlReg1Config{}, &UnrecognizedConfigError{Field: "power mode", Bits: b & powerModeMask}
	}
	// All four data rate patterns are assigned.
	dr := dataRateByBits[b&dataRateMask]
	return CtrlReg1Config{
		PowerMode: pm,
		DataRate:  dr,
		XEnabled:  b&xEnableBit != 0,
		YEnabled:  b&yEnableBit != 0,
		ZEnabled:  b&zEnableBit != 0,
	}, nil
}

// Encode returns the raw CTRL_REG1 content for c.
func (c CtrlReg1Config) Encode() (byte, error) {
	if int(c.PowerMode) >= len(powerModeBits) {
		return 0, &UnrecognizedConfigError{Field: "power mode", Bits: byte(c.PowerMode)}
	}
	if int(c.DataRate) >= len(dataRateBits) {
		return 0, &UnrecognizedConfigError{Field: "data rate", Bits: byte(c.DataRate)}
	}
	b := powerModeBits[c.PowerMode] | dataRateBits[c.DataRate]
	if c.ZEnabled {
		b |= zEnableBit
	}
	if c.YEnabled {
		b |= yEnableBit
	}
	if c.XEnabled {
		b |= xEnableBit
	}
	return b, nil
}

func (c CtrlReg1Config) String() string {
	return fmt.Sprintf("CtrlReg1{PowerMode:%s DataRate:%s X:%t Y:%t Z:%t}", c.PowerMode, c.DataRate, c.XEnabled, c.YEnabled, c.ZEnabled)
}
