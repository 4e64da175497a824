// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package adis implements the register-access and burst-telemetry protocol
// layer for ADIS inertial measurement units attached over SPI. It provides
// paged register access with page-switch elision, a generic bitfield
// abstraction over the device's register map, a checksummed burst-read
// protocol and a device diagnostics tracker.
//
// A Device is not internally synchronized. Callers embedding it in a
// concurrent environment must serialize all access to one handle.
package adis

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Config carries the construction-time sample-timing selection.
type Config struct {
	SyncMode SyncMode
	// ExtClk is the external clock frequency in Hz. It is ignored unless
	// SyncMode is an externally clocked mode.
	ExtClk uint32
}

// Device is the handle for one physical IMU. It owns its bus connection and
// optional reset line and carries the protocol state: the cached register
// page, the last-observed clock frequencies and the live diagnostic
// snapshot.
type Device struct {
	conn  spi.Conn
	reset gpio.PinOut // nil when no reset line is wired
	info  *ChipInfo

	// currentPage caches the page selected on the device; -1 forces a
	// page-select write on the next register access.
	currentPage int32

	extClk  uint32 // Hz, last configured external clock
	clkFreq uint32 // Hz, clock the sample rate is currently derived from

	diag DiagFlags

	tx [10]byte
	rx [4]byte
}

// New builds a Device over conn, runs the bring-up sequence (reset,
// self-test, flash memory test, diagnostics read, product ID check) and
// programs the requested sync mode. reset may be nil, in which case the
// software reset command substitutes for the hardware pulse.
func New(conn spi.Conn, reset gpio.PinOut, info *ChipInfo, cfg Config) (*Device, error) {
	d := &Device{
		conn:  conn,
		reset: reset,
		info:  info,
	}

	if info.HasPaging {
		d.currentPage = -1
	}

	if d.reset != nil {
		// Hold the device in reset until bring-up releases it.
		if err := d.reset.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("adis: reset line: %w", err)
		}
	}

	if err := d.InitialStartup(); err != nil {
		return nil, err
	}

	if err := d.WriteSyncMode(cfg.SyncMode, cfg.ExtClk); err != nil {
		return nil, err
	}

	return d, nil
}

// InitialStartup runs the device bring-up sequence: reset, sensor self-test,
// flash memory test, diagnostics read and product ID verification. A product
// ID mismatch is logged but not fatal.
func (d *Device) InitialStartup() error {
	if d.reset != nil {
		if err := d.reset.Out(gpio.High); err != nil {
			return fmt.Errorf("adis: reset line: %w", err)
		}
		time.Sleep(d.info.Timeouts.Reset)
	} else {
		if err := d.CmdSwRes(); err != nil {
			return err
		}
	}

	if err := d.CmdSnsrSelfTest(); err != nil {
		return err
	}

	if err := d.CmdFlsMemTest(); err != nil {
		return err
	}

	if _, err := d.ReadDiagStat(); err != nil {
		return err
	}

	prodID, err := d.ReadProdID()
	if err != nil {
		return err
	}
	if prodID != d.info.ProdID {
		log.Printf("adis: device ID %d and product ID %d do not match", prodID, d.info.ProdID)
	}

	return nil
}

// Info returns the chip descriptor the device was built with.
func (d *Device) Info() *ChipInfo {
	return d.info
}
