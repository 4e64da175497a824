package adis

import "testing"

func TestReadDiagStat(t *testing.T) {
	d, sim := newTestDevice()
	fm := d.info.Fields
	sim.setReg16(fm.DiagStat.Reg, fm.DiagSnsrFailureMask|fm.DiagClkErrMask)

	flags, err := d.ReadDiagStat()
	if err != nil {
		t.Fatalf("read diag stat: %v", err)
	}
	if !flags.SnsrFailure || !flags.ClkErr {
		t.Errorf("expected sensor failure and clock error, got %+v", flags)
	}
	if flags.DataPathOverrun || flags.MemFailure || flags.AcclFailure {
		t.Errorf("unexpected flags set: %+v", flags)
	}
}

func TestDiagSnapshotPersists(t *testing.T) {
	d, sim := newTestDevice()
	fm := d.info.Fields
	sim.setReg16(fm.DiagStat.Reg, fm.DiagMemFailureMask)

	if _, err := d.ReadDiagStat(); err != nil {
		t.Fatalf("read diag stat: %v", err)
	}
	if !d.DiagSnapshot().MemFailure {
		t.Error("snapshot missing memory failure flag")
	}

	// A later read with the flag gone must clear it.
	sim.setReg16(fm.DiagStat.Reg, 0)
	if _, err := d.ReadDiagStat(); err != nil {
		t.Fatalf("read diag stat: %v", err)
	}
	if d.DiagSnapshot().MemFailure {
		t.Error("stale memory failure flag in snapshot")
	}
}

func TestReadDiagWrappers(t *testing.T) {
	d, sim := newTestDevice()
	fm := d.info.Fields

	cases := []struct {
		name string
		mask uint16
		read func() (bool, error)
	}{
		{"DataPathOverrun", fm.DiagDataPathOverrunMask, d.ReadDiagDataPathOverrun},
		{"FlsMemUpdateFailure", fm.DiagFlsMemUpdateFailureMask, d.ReadDiagFlsMemUpdateFailure},
		{"SpiCommErr", fm.DiagSpiCommErrMask, d.ReadDiagSpiCommErr},
		{"StandbyMode", fm.DiagStandbyModeMask, d.ReadDiagStandbyMode},
		{"SnsrFailure", fm.DiagSnsrFailureMask, d.ReadDiagSnsrFailure},
		{"MemFailure", fm.DiagMemFailureMask, d.ReadDiagMemFailure},
		{"ClkErr", fm.DiagClkErrMask, d.ReadDiagClkErr},
		{"Gyro1Failure", fm.DiagGyro1FailureMask, d.ReadDiagGyro1Failure},
		{"Gyro2Failure", fm.DiagGyro2FailureMask, d.ReadDiagGyro2Failure},
		{"AcclFailure", fm.DiagAcclFailureMask, d.ReadDiagAcclFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim.setReg16(fm.DiagStat.Reg, tc.mask)
			set, err := tc.read()
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !set {
				t.Error("flag not reported set")
			}

			sim.setReg16(fm.DiagStat.Reg, 0)
			set, err = tc.read()
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if set {
				t.Error("flag not reported clear")
			}
		})
	}
}

func TestCachedDiagAccessorsDoNoIO(t *testing.T) {
	d, sim := newTestDevice()
	d.diag.ChecksumErr = true
	d.diag.FlsMemWrCntExceed = true
	before := len(sim.frames)

	if !d.DiagChecksumErr() {
		t.Error("checksum error flag not reported")
	}
	if !d.DiagFlsMemWrCntExceed() {
		t.Error("flash write counter flag not reported")
	}
	if len(sim.frames) != before {
		t.Errorf("cached accessors touched the bus: %d new frames", len(sim.frames)-before)
	}
}
