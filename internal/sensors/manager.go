// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/relabs-tech/adis_imu/internal/adis"
	"github.com/relabs-tech/adis_imu/internal/imu"
)

// IMUManager serializes access to the single device handle between the
// producer loop and the register debug tooling. The adis.Device itself is
// not internally synchronized.
type IMUManager struct {
	mu  sync.Mutex
	dev *adis.Device
	src SampleReader
}

var (
	imuManager     *IMUManager
	imuManagerOnce sync.Once
)

// GetIMUManager returns the process-wide IMU manager.
func GetIMUManager() *IMUManager {
	imuManagerOnce.Do(func() {
		imuManager = &IMUManager{}
	})
	return imuManager
}

func (m *IMUManager) bind(dev *adis.Device, src SampleReader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dev = dev
	m.src = src
}

func (m *IMUManager) device() (*adis.Device, error) {
	if m.dev == nil {
		return nil, fmt.Errorf("IMU not initialized")
	}
	return m.dev, nil
}

// ReadSample reads one decoded burst sample.
func (m *IMUManager) ReadSample() (imu.Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.src == nil {
		return imu.Sample{}, fmt.Errorf("IMU not initialized")
	}
	return m.src.ReadSample()
}

// ReadRegister reads one 16-bit register at the given paged address.
func (m *IMUManager) ReadRegister(addr uint32) (uint16, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return 0, err
	}
	val, err := dev.ReadReg(addr, 2)
	return uint16(val), err
}

// WriteRegister writes one 16-bit register at the given paged address.
func (m *IMUManager) WriteRegister(addr uint32, value uint16) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return err
	}
	return dev.WriteReg(addr, uint32(value), 2)
}

// ReadAllRegisters reads every register in the metadata table.
func (m *IMUManager) ReadAllRegisters() (map[uint32]uint16, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return nil, err
	}

	out := make(map[uint32]uint16)
	for _, reg := range getADIS16505RegisterMap() {
		addr, err := strconv.ParseUint(reg.Address, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("register map entry %s: %w", reg.Name, err)
		}
		val, err := dev.ReadReg(uint32(addr), 2)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", reg.Name, err)
		}
		out[uint32(addr)] = uint16(val)
	}
	return out, nil
}

// ReadDiagStat reads and decodes the diagnostic status register.
func (m *IMUManager) ReadDiagStat() (adis.DiagFlags, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return adis.DiagFlags{}, err
	}
	return dev.ReadDiagStat()
}

// DiagSnapshot returns the last diagnostic snapshot without bus traffic.
func (m *IMUManager) DiagSnapshot() (adis.DiagFlags, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return adis.DiagFlags{}, err
	}
	return dev.DiagSnapshot(), nil
}

// WriteGyroBias writes all three gyroscope bias registers.
func (m *IMUManager) WriteGyroBias(x, y, z int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return err
	}
	if err := dev.WriteXGBias(uint32(x)); err != nil {
		return fmt.Errorf("x gyro bias: %w", err)
	}
	if err := dev.WriteYGBias(uint32(y)); err != nil {
		return fmt.Errorf("y gyro bias: %w", err)
	}
	if err := dev.WriteZGBias(uint32(z)); err != nil {
		return fmt.Errorf("z gyro bias: %w", err)
	}
	return nil
}

// WriteAccelBias writes all three accelerometer bias registers.
func (m *IMUManager) WriteAccelBias(x, y, z int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return err
	}
	if err := dev.WriteXABias(uint32(x)); err != nil {
		return fmt.Errorf("x accel bias: %w", err)
	}
	if err := dev.WriteYABias(uint32(y)); err != nil {
		return fmt.Errorf("y accel bias: %w", err)
	}
	if err := dev.WriteZABias(uint32(z)); err != nil {
		return fmt.Errorf("z accel bias: %w", err)
	}
	return nil
}

// FlashUpdate commits the current register configuration to flash.
func (m *IMUManager) FlashUpdate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return err
	}
	return dev.CmdFlsMemUpdate()
}

// FactoryRestore restores the factory calibration.
func (m *IMUManager) FactoryRestore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return err
	}
	return dev.CmdFactCalibRestore()
}

// Reinitialize reruns the device bring-up sequence.
func (m *IMUManager) Reinitialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dev, err := m.device()
	if err != nil {
		return err
	}
	return dev.InitialStartup()
}

// GetRegisterMap returns the register metadata table.
func (m *IMUManager) GetRegisterMap() []RegisterInfo {
	return getADIS16505RegisterMap()
}
