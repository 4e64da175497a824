package adis

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestNewHardwareReset(t *testing.T) {
	sim := newSimBus()
	sim.setReg16(0x72, 16505)
	reset := &gpiotest.Pin{N: "SIM_RST"}

	d, err := New(sim, reset, testChipInfo(), Config{SyncMode: SyncDefault})
	if err != nil {
		t.Fatalf("bring-up: %v", err)
	}

	if reset.L != gpio.High {
		t.Error("reset line not released after bring-up")
	}
	if d.clkFreq != d.info.IntClk {
		t.Errorf("expected internal clock %d Hz, got %d", d.info.IntClk, d.clkFreq)
	}

	flags := d.DiagSnapshot()
	if flags != (DiagFlags{}) {
		t.Errorf("unexpected diagnostics after clean bring-up: %+v", flags)
	}

	// Self test and flash test must both have been commanded.
	fm := d.info.Fields
	if sim.regs[fm.SnsrSelfTest.Reg]&uint16(fm.FlsMemTest.Mask) == 0 {
		t.Error("flash memory test not commanded")
	}
}

func TestNewSoftwareResetFallback(t *testing.T) {
	sim := newSimBus()
	sim.setReg16(0x72, 16505)

	d, err := New(sim, nil, testChipInfo(), Config{SyncMode: SyncDefault})
	if err != nil {
		t.Fatalf("bring-up: %v", err)
	}

	fm := d.info.Fields
	// With no reset line the software reset command carries the bring-up.
	// The low data byte of the first GLOB_CMD write must be the reset bit.
	found := false
	for _, f := range sim.frames {
		if f[0] == writeCmd(fm.SwRes.Reg) && f[1] == byte(fm.SwRes.Mask) {
			found = true
			break
		}
	}
	if !found {
		t.Error("software reset command never issued")
	}
}

func TestNewExternalSync(t *testing.T) {
	sim := newSimBus()
	sim.setReg16(0x72, 16505)

	d, err := New(sim, nil, testChipInfo(), Config{SyncMode: SyncDirect, ExtClk: 2000})
	if err != nil {
		t.Fatalf("bring-up: %v", err)
	}

	mode, err := d.ReadSyncMode()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if mode != SyncDirect {
		t.Errorf("expected direct sync, got %d", mode)
	}
	if d.clkFreq != 2000 {
		t.Errorf("expected clock 2000 Hz, got %d", d.clkFreq)
	}
}

func TestNewRejectsBadExternalClock(t *testing.T) {
	sim := newSimBus()
	sim.setReg16(0x72, 16505)

	if _, err := New(sim, nil, testChipInfo(), Config{SyncMode: SyncDirect, ExtClk: 100}); err == nil {
		t.Fatal("expected bring-up to fail on out-of-range external clock")
	}
}

func TestNewLogsProductIDMismatch(t *testing.T) {
	sim := newSimBus()
	sim.setReg16(0x72, 16500)

	// A wrong product ID is logged, not fatal.
	d, err := New(sim, nil, testChipInfo(), Config{SyncMode: SyncDefault})
	if err != nil {
		t.Fatalf("bring-up: %v", err)
	}
	id, err := d.ReadProdID()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if id != 16500 {
		t.Errorf("expected product ID 16500, got %d", id)
	}
}
