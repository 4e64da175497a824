package adis

import (
	"errors"
	"testing"
)

func TestReadReg(t *testing.T) {
	t.Run("TwoBytes", func(t *testing.T) {
		d, sim := newTestDevice()
		sim.setReg16(0x64, 0x01FF)

		got, err := d.ReadReg(0x64, 2)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != 0x01FF {
			t.Errorf("expected 0x01FF, got 0x%x", got)
		}
	})

	t.Run("FourBytes", func(t *testing.T) {
		d, sim := newTestDevice()
		sim.setReg32(0x40, 0xDEADBEEF)

		got, err := d.ReadReg(0x40, 4)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != 0xDEADBEEF {
			t.Errorf("expected 0xDEADBEEF, got 0x%x", got)
		}
	})

	t.Run("FourBytesHighBeforeLow", func(t *testing.T) {
		d, sim := newTestDevice()
		sim.setReg32(0x40, 0x12345678)

		if _, err := d.ReadReg(0x40, 4); err != nil {
			t.Fatalf("read: %v", err)
		}

		// frames: page select, read(reg+2), read(reg).
		if len(sim.frames) != 3 {
			t.Fatalf("expected 3 command frames, got %d", len(sim.frames))
		}
		if sim.frames[1][0] != readCmd(0x42) {
			t.Errorf("first data frame addresses 0x%02x, want 0x42", sim.frames[1][0])
		}
		if sim.frames[2][0] != readCmd(0x40) {
			t.Errorf("second data frame addresses 0x%02x, want 0x40", sim.frames[2][0])
		}
	})

	t.Run("InvalidSize", func(t *testing.T) {
		d, _ := newTestDevice()
		if _, err := d.ReadReg(0x64, 3); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize, got %v", err)
		}
		if _, err := d.ReadReg(0x64, 1); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize for 1-byte read, got %v", err)
		}
	})
}

func TestWriteReg(t *testing.T) {
	t.Run("RoundTripAllSizes", func(t *testing.T) {
		d, _ := newTestDevice()

		for _, tc := range []struct {
			reg, val, size uint32
		}{
			{0x76, 0xAB, 1},
			{0x76, 0xBEEF, 2},
			{0x40, 0xCAFEBABE, 4},
		} {
			if err := d.WriteReg(tc.reg, tc.val, tc.size); err != nil {
				t.Fatalf("write size %d: %v", tc.size, err)
			}
			readSize := tc.size
			if readSize == 1 {
				readSize = 2
			}
			got, err := d.ReadReg(tc.reg, readSize)
			if err != nil {
				t.Fatalf("read back size %d: %v", tc.size, err)
			}
			if tc.size == 1 {
				got &= 0xFF
			}
			if got != tc.val {
				t.Errorf("size %d: wrote 0x%x, read back 0x%x", tc.size, tc.val, got)
			}
		}
	})

	t.Run("LowToHighEmission", func(t *testing.T) {
		d, sim := newTestDevice()

		if err := d.WriteReg(0x40, 0x01020304, 4); err != nil {
			t.Fatalf("write: %v", err)
		}

		// frames: page select, then write(reg)..write(reg+3).
		if len(sim.frames) != 5 {
			t.Fatalf("expected 5 command frames, got %d", len(sim.frames))
		}
		for i := 0; i < 4; i++ {
			want := writeCmd(0x40 + uint32(i))
			if sim.frames[1+i][0] != want {
				t.Errorf("frame %d addresses 0x%02x, want 0x%02x", i, sim.frames[1+i][0], want)
			}
		}
		// write(reg) carries the LSB.
		if sim.frames[1][1] != 0x04 {
			t.Errorf("lowest sub-register got 0x%02x, want 0x04", sim.frames[1][1])
		}
		if sim.frames[4][1] != 0x01 {
			t.Errorf("highest sub-register got 0x%02x, want 0x01", sim.frames[4][1])
		}
	})

	t.Run("InvalidSize", func(t *testing.T) {
		d, _ := newTestDevice()
		if err := d.WriteReg(0x64, 0, 3); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("expected ErrInvalidSize, got %v", err)
		}
	})
}

func TestPageSwitchElision(t *testing.T) {
	t.Run("SamePageSelectsOnce", func(t *testing.T) {
		d, sim := newTestDevice()

		if _, err := d.ReadReg(0x64, 2); err != nil {
			t.Fatalf("read: %v", err)
		}
		if _, err := d.ReadReg(0x72, 2); err != nil {
			t.Fatalf("read: %v", err)
		}
		if sim.pageSelects != 1 {
			t.Errorf("expected 1 page select, got %d", sim.pageSelects)
		}
	})

	t.Run("DifferentPagesSelectEach", func(t *testing.T) {
		d, sim := newTestDevice()
		sim.setReg16(pageSize+0x10, 0x1234)

		if _, err := d.ReadReg(0x64, 2); err != nil {
			t.Fatalf("read page 0: %v", err)
		}
		got, err := d.ReadReg(pageSize+0x10, 2)
		if err != nil {
			t.Fatalf("read page 1: %v", err)
		}
		if got != 0x1234 {
			t.Errorf("expected 0x1234 from page 1, got 0x%x", got)
		}
		if sim.pageSelects != 2 {
			t.Errorf("expected 2 page selects, got %d", sim.pageSelects)
		}
	})
}

func TestPageCacheOnBusError(t *testing.T) {
	d, sim := newTestDevice()
	sim.setReg16(0x64, 0x0123)
	errBus := errors.New("bus broke")

	sim.failNext = errBus
	if _, err := d.ReadReg(0x64, 2); !errors.Is(err, errBus) {
		t.Fatalf("expected injected bus error, got %v", err)
	}

	// The failed batch never selected the page, so the cache must still
	// force a page select on retry.
	got, err := d.ReadReg(0x64, 2)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got != 0x0123 {
		t.Errorf("retry read 0x%x, want 0x0123", got)
	}
	if sim.pageSelects != 1 {
		t.Errorf("expected the retry to issue 1 page select, got %d", sim.pageSelects)
	}
}

func TestUpdateBits(t *testing.T) {
	d, sim := newTestDevice()
	sim.setReg16(0x60, 0x10C1)

	if err := d.UpdateBits(0x60, 0x001C, 2, 2); err != nil {
		t.Fatalf("update bits: %v", err)
	}

	got, err := d.ReadReg(0x60, 2)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got != 0x10C9 {
		t.Errorf("expected 0x10C9, got 0x%x", got)
	}
}
