package adis

// DiagFlags is the device-wide diagnostic snapshot. It is updated on every
// status read and every burst read; ChecksumErr and FlsMemWrCntExceed are
// derived locally rather than from the status register and persist until the
// next burst read or flash-counter read respectively.
type DiagFlags struct {
	DataPathOverrun     bool `json:"data_path_overrun"`
	FlsMemUpdateFailure bool `json:"fls_mem_update_failure"`
	SpiCommErr          bool `json:"spi_comm_err"`
	StandbyMode         bool `json:"standby_mode"`
	SnsrFailure         bool `json:"snsr_failure"`
	MemFailure          bool `json:"mem_failure"`
	ClkErr              bool `json:"clk_err"`
	Gyro1Failure        bool `json:"gyro1_failure"`
	Gyro2Failure        bool `json:"gyro2_failure"`
	AcclFailure         bool `json:"accl_failure"`
	ChecksumErr         bool `json:"checksum_err"`
	FlsMemWrCntExceed   bool `json:"fls_mem_wr_cnt_exceed"`
}

// updateDiagFlags decodes stat into the snapshot using the variant's flag
// position map. ChecksumErr and FlsMemWrCntExceed are left untouched.
func (d *Device) updateDiagFlags(stat uint16) {
	fm := d.info.Fields

	d.diag.DataPathOverrun = stat&fm.DiagDataPathOverrunMask != 0
	d.diag.FlsMemUpdateFailure = stat&fm.DiagFlsMemUpdateFailureMask != 0
	d.diag.SpiCommErr = stat&fm.DiagSpiCommErrMask != 0
	d.diag.StandbyMode = stat&fm.DiagStandbyModeMask != 0
	d.diag.SnsrFailure = stat&fm.DiagSnsrFailureMask != 0
	d.diag.MemFailure = stat&fm.DiagMemFailureMask != 0
	d.diag.ClkErr = stat&fm.DiagClkErrMask != 0
	d.diag.Gyro1Failure = stat&fm.DiagGyro1FailureMask != 0
	d.diag.Gyro2Failure = stat&fm.DiagGyro2FailureMask != 0
	d.diag.AcclFailure = stat&fm.DiagAcclFailureMask != 0
}

// ReadDiagStat reads the status register, persists the decoded flags into
// the device snapshot and returns a copy.
func (d *Device) ReadDiagStat() (DiagFlags, error) {
	f := d.info.Fields.DiagStat

	val, err := d.ReadReg(f.Reg, f.Size)
	if err != nil {
		return DiagFlags{}, err
	}

	d.updateDiagFlags(uint16(val))
	return d.diag, nil
}

// DiagSnapshot returns the cached diagnostic snapshot without a bus
// transaction.
func (d *Device) DiagSnapshot() DiagFlags {
	return d.diag
}

// ReadDiagDataPathOverrun reads the data path overrun flag.
func (d *Device) ReadDiagDataPathOverrun() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.DataPathOverrun, err
}

// ReadDiagFlsMemUpdateFailure reads the flash memory update failure flag.
func (d *Device) ReadDiagFlsMemUpdateFailure() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.FlsMemUpdateFailure, err
}

// ReadDiagSpiCommErr reads the SPI communication error flag.
func (d *Device) ReadDiagSpiCommErr() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.SpiCommErr, err
}

// ReadDiagStandbyMode reads the standby mode flag.
func (d *Device) ReadDiagStandbyMode() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.StandbyMode, err
}

// ReadDiagSnsrFailure reads the sensor self-test failure flag.
func (d *Device) ReadDiagSnsrFailure() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.SnsrFailure, err
}

// ReadDiagMemFailure reads the flash memory test failure flag.
func (d *Device) ReadDiagMemFailure() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.MemFailure, err
}

// ReadDiagClkErr reads the clock error flag.
func (d *Device) ReadDiagClkErr() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.ClkErr, err
}

// ReadDiagGyro1Failure reads the gyroscope 1 self-test failure flag.
func (d *Device) ReadDiagGyro1Failure() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.Gyro1Failure, err
}

// ReadDiagGyro2Failure reads the gyroscope 2 self-test failure flag.
func (d *Device) ReadDiagGyro2Failure() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.Gyro2Failure, err
}

// ReadDiagAcclFailure reads the accelerometer self-test failure flag.
func (d *Device) ReadDiagAcclFailure() (bool, error) {
	flags, err := d.ReadDiagStat()
	return flags.AcclFailure, err
}

// DiagChecksumErr reads the cached checksum error flag. It is set only as a
// side effect of burst reads, so no bus transaction is performed.
func (d *Device) DiagChecksumErr() bool {
	return d.diag.ChecksumErr
}

// DiagFlsMemWrCntExceed reads the cached flash-write-count-exceeded flag. It
// is set only as a side effect of flash counter reads, so no bus transaction
// is performed.
func (d *Device) DiagFlsMemWrCntExceed() bool {
	return d.diag.FlsMemWrCntExceed
}
