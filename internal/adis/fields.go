package adis

import (
	"fmt"
	"time"
)

// readFieldU32 reads the register backing f and right-justifies the field
// bits.
func (d *Device) readFieldU32(f Field) (uint32, error) {
	val, err := d.ReadReg(f.Reg, f.Size)
	if err != nil {
		return 0, err
	}
	return fieldGet(f.Mask, val), nil
}

// readFieldS32 is readFieldU32 with sign extension from the mask width.
func (d *Device) readFieldS32(f Field) (int32, error) {
	val, err := d.ReadReg(f.Reg, f.Size)
	if err != nil {
		return 0, err
	}
	return fieldGetSigned(f.Mask, val), nil
}

// writeFieldU32 writes val into the field f. A value wider than the field
// fails with ErrOutOfRange before any bus transfer.
func (d *Device) writeFieldU32(f Field, val uint32) error {
	if val > fieldGet(f.Mask, f.Mask) {
		return fmt.Errorf("adis: field value 0x%x exceeds mask 0x%x: %w", val, f.Mask, ErrOutOfRange)
	}
	return d.UpdateBits(f.Reg, f.Mask, val, f.Size)
}

// command writes the field's mask as a raw register value, pulsing the
// command bit.
func (d *Device) command(f Field) error {
	return d.WriteReg(f.Reg, f.Mask, f.Size)
}

// ReadXGyro reads the raw gyroscope value on the x axis.
func (d *Device) ReadXGyro() (int32, error) { return d.readFieldS32(d.info.Fields.XGyro) }

// ReadYGyro reads the raw gyroscope value on the y axis.
func (d *Device) ReadYGyro() (int32, error) { return d.readFieldS32(d.info.Fields.YGyro) }

// ReadZGyro reads the raw gyroscope value on the z axis.
func (d *Device) ReadZGyro() (int32, error) { return d.readFieldS32(d.info.Fields.ZGyro) }

// ReadXAccl reads the raw acceleration value on the x axis.
func (d *Device) ReadXAccl() (int32, error) { return d.readFieldS32(d.info.Fields.XAccl) }

// ReadYAccl reads the raw acceleration value on the y axis.
func (d *Device) ReadYAccl() (int32, error) { return d.readFieldS32(d.info.Fields.YAccl) }

// ReadZAccl reads the raw acceleration value on the z axis.
func (d *Device) ReadZAccl() (int32, error) { return d.readFieldS32(d.info.Fields.ZAccl) }

// ReadTempOut reads the raw temperature value.
func (d *Device) ReadTempOut() (int32, error) { return d.readFieldS32(d.info.Fields.TempOut) }

// ReadTimeStamp reads the raw time stamp value.
func (d *Device) ReadTimeStamp() (uint32, error) { return d.readFieldU32(d.info.Fields.TimeStamp) }

// ReadDataCntr reads the data counter value.
func (d *Device) ReadDataCntr() (uint32, error) { return d.readFieldU32(d.info.Fields.DataCntr) }

// ReadXDeltAng reads the raw delta angle on the x axis.
func (d *Device) ReadXDeltAng() (int32, error) { return d.readFieldS32(d.info.Fields.XDeltAng) }

// ReadYDeltAng reads the raw delta angle on the y axis.
func (d *Device) ReadYDeltAng() (int32, error) { return d.readFieldS32(d.info.Fields.YDeltAng) }

// ReadZDeltAng reads the raw delta angle on the z axis.
func (d *Device) ReadZDeltAng() (int32, error) { return d.readFieldS32(d.info.Fields.ZDeltAng) }

// ReadXDeltVel reads the raw delta velocity on the x axis.
func (d *Device) ReadXDeltVel() (int32, error) { return d.readFieldS32(d.info.Fields.XDeltVel) }

// ReadYDeltVel reads the raw delta velocity on the y axis.
func (d *Device) ReadYDeltVel() (int32, error) { return d.readFieldS32(d.info.Fields.YDeltVel) }

// ReadZDeltVel reads the raw delta velocity on the z axis.
func (d *Device) ReadZDeltVel() (int32, error) { return d.readFieldS32(d.info.Fields.ZDeltVel) }

// ReadXGBias reads the gyroscope offset correction on the x axis.
func (d *Device) ReadXGBias() (int32, error) { return d.readFieldS32(d.info.Fields.XGBias) }

// WriteXGBias writes the gyroscope offset correction on the x axis.
func (d *Device) WriteXGBias(v uint32) error { return d.writeFieldU32(d.info.Fields.XGBias, v) }

// ReadYGBias reads the gyroscope offset correction on the y axis.
func (d *Device) ReadYGBias() (int32, error) { return d.readFieldS32(d.info.Fields.YGBias) }

// WriteYGBias writes the gyroscope offset correction on the y axis.
func (d *Device) WriteYGBias(v uint32) error { return d.writeFieldU32(d.info.Fields.YGBias, v) }

// ReadZGBias reads the gyroscope offset correction on the z axis.
func (d *Device) ReadZGBias() (int32, error) { return d.readFieldS32(d.info.Fields.ZGBias) }

// WriteZGBias writes the gyroscope offset correction on the z axis.
func (d *Device) WriteZGBias(v uint32) error { return d.writeFieldU32(d.info.Fields.ZGBias, v) }

// ReadXABias reads the acceleration offset correction on the x axis.
func (d *Device) ReadXABias() (int32, error) { return d.readFieldS32(d.info.Fields.XABias) }

// WriteXABias writes the acceleration offset correction on the x axis.
func (d *Device) WriteXABias(v uint32) error { return d.writeFieldU32(d.info.Fields.XABias, v) }

// ReadYABias reads the acceleration offset correction on the y axis.
func (d *Device) ReadYABias() (int32, error) { return d.readFieldS32(d.info.Fields.YABias) }

// WriteYABias writes the acceleration offset correction on the y axis.
func (d *Device) WriteYABias(v uint32) error { return d.writeFieldU32(d.info.Fields.YABias, v) }

// ReadZABias reads the acceleration offset correction on the z axis.
func (d *Device) ReadZABias() (int32, error) { return d.readFieldS32(d.info.Fields.ZABias) }

// WriteZABias writes the acceleration offset correction on the z axis.
func (d *Device) WriteZABias(v uint32) error { return d.writeFieldU32(d.info.Fields.ZABias, v) }

// ReadFiltSizeVarB reads the Bartlett window filter size.
func (d *Device) ReadFiltSizeVarB() (uint32, error) {
	return d.readFieldU32(d.info.Fields.FiltSizeVarB)
}

// WriteFiltSizeVarB writes the Bartlett window filter size, bounded by the
// variant maximum, and waits the documented settle delay.
func (d *Device) WriteFiltSizeVarB(v uint32) error {
	if v > d.info.FiltSizeVarBMax {
		return fmt.Errorf("adis: filter size %d exceeds maximum %d: %w", v, d.info.FiltSizeVarBMax, ErrOutOfRange)
	}

	if err := d.writeFieldU32(d.info.Fields.FiltSizeVarB, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.FiltSizeVarBUpdate)
	return nil
}

// ReadGyroMeasRange reads the encoded gyroscope measurement range.
func (d *Device) ReadGyroMeasRange() (uint32, error) {
	return d.readFieldU32(d.info.Fields.GyroMeasRange)
}

// ReadDrPolarity reads the encoded data ready polarity.
func (d *Device) ReadDrPolarity() (uint32, error) {
	return d.readFieldU32(d.info.Fields.DrPolarity)
}

// WriteDrPolarity writes the data ready polarity (0 or 1).
func (d *Device) WriteDrPolarity(v uint32) error {
	if v > 1 {
		return fmt.Errorf("adis: data ready polarity %d: %w", v, ErrOutOfRange)
	}

	if err := d.writeFieldU32(d.info.Fields.DrPolarity, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.MscRegUpdate)
	return nil
}

// ReadSyncPolarity reads the encoded sync polarity.
func (d *Device) ReadSyncPolarity() (uint32, error) {
	return d.readFieldU32(d.info.Fields.SyncPolarity)
}

// WriteSyncPolarity writes the sync polarity (0 or 1).
func (d *Device) WriteSyncPolarity(v uint32) error {
	if v > 1 {
		return fmt.Errorf("adis: sync polarity %d: %w", v, ErrOutOfRange)
	}

	if err := d.writeFieldU32(d.info.Fields.SyncPolarity, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.MscRegUpdate)
	return nil
}

// ReadSyncMode reads the encoded synchronization mode.
func (d *Device) ReadSyncMode() (SyncMode, error) {
	v, err := d.readFieldU32(d.info.Fields.SyncMode)
	return SyncMode(v), err
}

// WriteSyncMode programs the synchronization mode. For externally clocked
// modes extClk is validated against the variant's per-mode frequency range
// before anything is written; for scaled sync a default up-scale factor is
// derived first so the internal sample rate lands in the preferred
// 1900-2100 Hz band.
func (d *Device) WriteSyncMode(mode SyncMode, extClk uint32) error {
	if mode > d.info.SyncModeMax {
		return fmt.Errorf("adis: sync mode %d exceeds maximum %d: %w", mode, d.info.SyncModeMax, ErrOutOfRange)
	}

	if mode != SyncDefault && mode != SyncOutput {
		// Sync pulse is external.
		lim := d.info.SyncClkFreqLimits[mode]
		if extClk < lim.Min || extClk > lim.Max {
			return fmt.Errorf("adis: external clock %d Hz outside [%d, %d] for sync mode %d: %w",
				extClk, lim.Min, lim.Max, mode, ErrOutOfRange)
		}

		d.extClk = extClk
		d.clkFreq = extClk

		if mode == SyncScaled {
			// The sample rate is clk_freq * up_scale; default to the
			// highest multiple of the input clock inside the optimal
			// 1900-2100 sps window.
			if err := d.WriteUpScale(2100 / d.clkFreq); err != nil {
				return err
			}
		}
	} else {
		d.clkFreq = d.info.IntClk
	}

	return d.writeFieldU32(d.info.Fields.SyncMode, uint32(mode))
}

// ReadSensBw reads the encoded internal sensor bandwidth.
func (d *Device) ReadSensBw() (uint32, error) {
	return d.readFieldU32(d.info.Fields.SensBw)
}

// WriteSensBw writes the encoded internal sensor bandwidth and waits the
// documented settle delay.
func (d *Device) WriteSensBw(v uint32) error {
	if err := d.writeFieldU32(d.info.Fields.SensBw, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.SensBwUpdate)
	return nil
}

// ReadPtOfPercAlgnmt reads the point of percussion alignment enable bit.
func (d *Device) ReadPtOfPercAlgnmt() (uint32, error) {
	return d.readFieldU32(d.info.Fields.PtOfPercAlgnmt)
}

// WritePtOfPercAlgnmt writes the point of percussion alignment enable bit.
func (d *Device) WritePtOfPercAlgnmt(v uint32) error {
	if err := d.writeFieldU32(d.info.Fields.PtOfPercAlgnmt, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.MscRegUpdate)
	return nil
}

// ReadLinearAcclComp reads the linear acceleration compensation enable bit.
func (d *Device) ReadLinearAcclComp() (uint32, error) {
	return d.readFieldU32(d.info.Fields.LinearAcclComp)
}

// WriteLinearAcclComp writes the linear acceleration compensation enable
// bit.
func (d *Device) WriteLinearAcclComp(v uint32) error {
	if err := d.writeFieldU32(d.info.Fields.LinearAcclComp, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.MscRegUpdate)
	return nil
}

// ReadBurstSel reads the encoded burst selection bit.
func (d *Device) ReadBurstSel() (uint32, error) {
	return d.readFieldU32(d.info.Fields.BurstSel)
}

// WriteBurstSel writes the encoded burst selection bit.
func (d *Device) WriteBurstSel(v uint32) error {
	if err := d.writeFieldU32(d.info.Fields.BurstSel, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.MscRegUpdate)
	return nil
}

// ReadBurst32 reads the 32-bit burst enable bit.
func (d *Device) ReadBurst32() (uint32, error) {
	return d.readFieldU32(d.info.Fields.Burst32)
}

// WriteBurst32 writes the 32-bit burst enable bit.
func (d *Device) WriteBurst32(v uint32) error {
	if err := d.writeFieldU32(d.info.Fields.Burst32, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.MscRegUpdate)
	return nil
}

// ReadUpScale reads the external clock scale factor.
func (d *Device) ReadUpScale() (uint32, error) {
	return d.readFieldU32(d.info.Fields.UpScale)
}

// WriteUpScale writes the external clock scale factor. Any value is allowed
// unless the device is in scaled sync mode, in which case clk_freq * scale
// must land in the 1900-2100 Hz band.
func (d *Device) WriteUpScale(scale uint32) error {
	mode, err := d.ReadSyncMode()
	if err != nil {
		return err
	}

	if mode == SyncScaled && (d.clkFreq*scale > 2100 || d.clkFreq*scale < 1900) {
		return fmt.Errorf("adis: sample rate %d Hz outside [1900, 2100]: %w", d.clkFreq*scale, ErrOutOfRange)
	}

	return d.writeFieldU32(d.info.Fields.UpScale, scale)
}

// ReadDecRate reads the decimation rate.
func (d *Device) ReadDecRate() (uint32, error) {
	return d.readFieldU32(d.info.Fields.DecRate)
}

// WriteDecRate writes the decimation rate, bounded by the variant maximum,
// and waits the documented settle delay.
func (d *Device) WriteDecRate(v uint32) error {
	if v > d.info.DecRateMax {
		return fmt.Errorf("adis: decimation rate %d exceeds maximum %d: %w", v, d.info.DecRateMax, ErrOutOfRange)
	}

	if err := d.writeFieldU32(d.info.Fields.DecRate, v); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.DecRateUpdate)
	return nil
}

// UpdateExtClkFreq records a new external clock frequency, validating it
// against the current sync mode's range when the device is externally
// clocked. In other modes the value is stored but unused.
func (d *Device) UpdateExtClkFreq(clkFreq uint32) error {
	mode, err := d.ReadSyncMode()
	if err != nil {
		return err
	}

	if mode != SyncDefault && mode != SyncOutput {
		lim := d.info.SyncClkFreqLimits[mode]
		if clkFreq < lim.Min || clkFreq > lim.Max {
			return fmt.Errorf("adis: external clock %d Hz outside [%d, %d]: %w",
				clkFreq, lim.Min, lim.Max, ErrOutOfRange)
		}
	}

	d.extClk = clkFreq
	return nil
}

// CmdFactCalibRestore restores the factory calibration.
func (d *Device) CmdFactCalibRestore() error {
	return d.command(d.info.Fields.FactCalibRestore)
}

// CmdSnsrSelfTest triggers the sensor self test and waits for it to
// complete.
func (d *Device) CmdSnsrSelfTest() error {
	if err := d.command(d.info.Fields.SnsrSelfTest); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.SelfTest)
	return nil
}

// CmdFlsMemUpdate commits the current configuration to flash. The flash
// counter must be read back after every update, which also refreshes the
// write-count-exceeded flag.
func (d *Device) CmdFlsMemUpdate() error {
	if err := d.command(d.info.Fields.FlsMemUpdate); err != nil {
		return err
	}

	_, err := d.ReadFlsMemWrCntr()
	return err
}

// CmdFlsMemTest triggers the flash memory test.
func (d *Device) CmdFlsMemTest() error {
	return d.command(d.info.Fields.FlsMemTest)
}

// CmdSwRes issues the software reset command and waits the reset settle
// time.
func (d *Device) CmdSwRes() error {
	if err := d.command(d.info.Fields.SwRes); err != nil {
		return err
	}

	time.Sleep(d.info.Timeouts.SwReset)
	return nil
}

// ReadFirmRev reads the firmware revision.
func (d *Device) ReadFirmRev() (uint32, error) { return d.readFieldU32(d.info.Fields.FirmRev) }

// ReadFirmD reads the firmware factory configuration day.
func (d *Device) ReadFirmD() (uint32, error) { return d.readFieldU32(d.info.Fields.FirmD) }

// ReadFirmM reads the firmware factory configuration month.
func (d *Device) ReadFirmM() (uint32, error) { return d.readFieldU32(d.info.Fields.FirmM) }

// ReadFirmY reads the firmware factory configuration year.
func (d *Device) ReadFirmY() (uint32, error) { return d.readFieldU32(d.info.Fields.FirmY) }

// ReadProdID reads the product ID.
func (d *Device) ReadProdID() (uint32, error) { return d.readFieldU32(d.info.Fields.ProdID) }

// ReadSerialNum reads the lot-specific serial number.
func (d *Device) ReadSerialNum() (uint32, error) { return d.readFieldU32(d.info.Fields.SerialNum) }

// ReadUsrScr1 reads user scratch register 1.
func (d *Device) ReadUsrScr1() (uint32, error) { return d.readFieldU32(d.info.Fields.UsrScr1) }

// WriteUsrScr1 writes user scratch register 1.
func (d *Device) WriteUsrScr1(v uint32) error { return d.writeFieldU32(d.info.Fields.UsrScr1, v) }

// ReadUsrScr2 reads user scratch register 2.
func (d *Device) ReadUsrScr2() (uint32, error) { return d.readFieldU32(d.info.Fields.UsrScr2) }

// WriteUsrScr2 writes user scratch register 2.
func (d *Device) WriteUsrScr2(v uint32) error { return d.writeFieldU32(d.info.Fields.UsrScr2, v) }

// ReadUsrScr3 reads user scratch register 3.
func (d *Device) ReadUsrScr3() (uint32, error) { return d.readFieldU32(d.info.Fields.UsrScr3) }

// WriteUsrScr3 writes user scratch register 3.
func (d *Device) WriteUsrScr3(v uint32) error { return d.writeFieldU32(d.info.Fields.UsrScr3, v) }

// ReadFlsMemWrCntr reads the flash write cycle counter and latches the
// write-count-exceeded flag when the counter passes the variant's endurance
// limit.
func (d *Device) ReadFlsMemWrCntr() (uint32, error) {
	cnt, err := d.readFieldU32(d.info.Fields.FlsMemWrCntr)
	if err != nil {
		return 0, err
	}

	if cnt > d.info.FlsMemWrCntrMax {
		d.diag.FlsMemWrCntExceed = true
	}

	return cnt, nil
}
