// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"

	"github.com/relabs-tech/adis_imu/internal/adis"
	"github.com/relabs-tech/adis_imu/internal/config"
	"github.com/relabs-tech/adis_imu/internal/imu"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// SampleReader defines the interface for reading decoded burst samples.
type SampleReader interface {
	ReadSample() (imu.Sample, error)
}

type imuSource struct {
	dev     *adis.Device
	burst32 bool
}

// NewIMUSource opens the configured SPI bus, brings up the ADIS16505 and
// applies the configured signal chain. The device handle is also registered
// with the IMU manager so the register debug tooling can reach it.
func NewIMUSource() (SampleReader, error) {
	cfg := config.Get()

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("IMU: periph host init: %w", err)
	}

	port, err := spireg.Open(cfg.IMUSPIDevice)
	if err != nil {
		return nil, fmt.Errorf("IMU: SPI port (%s): %w", cfg.IMUSPIDevice, err)
	}

	// The ADIS family talks SPI mode 3.
	conn, err := port.Connect(physic.Frequency(cfg.IMUSPISpeedHz)*physic.Hertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("IMU: SPI connect (%s @ %d Hz): %w", cfg.IMUSPIDevice, cfg.IMUSPISpeedHz, err)
	}

	// The hardware reset line is optional; without it bring-up falls back
	// to the software reset command.
	var reset gpio.PinOut
	if cfg.IMUResetPin != "" {
		reset = gpioreg.ByName(cfg.IMUResetPin)
		if reset == nil {
			log.Printf("IMU: reset pin %q not found, using software reset", cfg.IMUResetPin)
		}
	}

	dev, err := adis.New(conn, reset, adis.ADIS16505, adis.Config{
		SyncMode: adis.SyncMode(cfg.IMUSyncMode),
		ExtClk:   uint32(cfg.IMUExtClkHz),
	})
	if err != nil {
		return nil, fmt.Errorf("IMU: bring-up: %w", err)
	}

	if err := dev.WriteDecRate(uint32(cfg.IMUDecRate)); err != nil {
		return nil, fmt.Errorf("IMU: set decimation rate: %w", err)
	}
	log.Printf("IMU: decimation rate set to %d", cfg.IMUDecRate)

	if err := dev.WriteFiltSizeVarB(uint32(cfg.IMUFiltSizeVarB)); err != nil {
		return nil, fmt.Errorf("IMU: set filter size: %w", err)
	}
	log.Printf("IMU: Bartlett filter size set to %d", cfg.IMUFiltSizeVarB)

	var burst32 uint32
	if cfg.IMUBurst32 {
		burst32 = 1
	}
	if err := dev.WriteBurst32(burst32); err != nil {
		return nil, fmt.Errorf("IMU: set burst width: %w", err)
	}
	log.Printf("IMU: 32-bit burst mode: %v", cfg.IMUBurst32)

	src := &imuSource{dev: dev, burst32: cfg.IMUBurst32}
	GetIMUManager().bind(dev, src)
	return src, nil
}

// ReadSample runs one burst transaction and decodes the frame.
func (s *imuSource) ReadSample() (imu.Sample, error) {
	sel := adis.Burst16
	if s.burst32 {
		sel = adis.Burst32
	}

	payload, err := s.dev.ReadBurstData(sel.FrameSize(), sel)
	if err != nil {
		return imu.Sample{}, err
	}

	return imu.DecodeSample(payload, s.burst32)
}
