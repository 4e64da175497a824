package imu

import (
	"encoding/binary"
	"testing"
)

func TestDecodeSample16(t *testing.T) {
	payload := make([]byte, 18)
	binary.BigEndian.PutUint16(payload[0:], 0x0080)           // diag
	binary.BigEndian.PutUint16(payload[2:], 0xFFFF)           // gx = -1
	binary.BigEndian.PutUint16(payload[4:], 100)              // gy
	binary.BigEndian.PutUint16(payload[6:], 0x8000)           // gz = -32768
	binary.BigEndian.PutUint16(payload[8:], 200)              // ax
	binary.BigEndian.PutUint16(payload[10:], uint16(0xFF38)) // ay = -200
	binary.BigEndian.PutUint16(payload[12:], 300)             // az
	binary.BigEndian.PutUint16(payload[14:], 0x0123)          // temp
	binary.BigEndian.PutUint16(payload[16:], 42)              // counter

	s, err := DecodeSample(payload, false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if s.DiagStat != 0x0080 {
		t.Errorf("diag: expected 0x0080, got %#x", s.DiagStat)
	}
	if s.Gx != -1 || s.Gy != 100 || s.Gz != -32768 {
		t.Errorf("gyro: got %d %d %d", s.Gx, s.Gy, s.Gz)
	}
	if s.Ax != 200 || s.Ay != -200 || s.Az != 300 {
		t.Errorf("accel: got %d %d %d", s.Ax, s.Ay, s.Az)
	}
	if s.Temp != 0x0123 {
		t.Errorf("temp: expected 0x0123, got %d", s.Temp)
	}
	if s.DataCntr != 42 {
		t.Errorf("counter: expected 42, got %d", s.DataCntr)
	}
}

func TestDecodeSample32(t *testing.T) {
	put32 := func(p []byte, v uint32) {
		binary.BigEndian.PutUint16(p, uint16(v))      // low word first
		binary.BigEndian.PutUint16(p[2:], uint16(v>>16))
	}

	payload := make([]byte, 30)
	put32(payload[2:], 0xFFFFFFFF)  // gx = -1
	put32(payload[6:], 1<<20)       // gy
	put32(payload[10:], 0x80000000) // gz = min int32
	put32(payload[14:], 7)          // ax
	put32(payload[18:], 0xFFFFFF38) // ay = -200
	put32(payload[22:], 0)          // az
	binary.BigEndian.PutUint16(payload[26:], uint16(0xFFFE)) // temp = -2
	binary.BigEndian.PutUint16(payload[28:], 9)              // counter

	s, err := DecodeSample(payload, true)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if s.Gx != -1 || s.Gy != 1<<20 || s.Gz != -2147483648 {
		t.Errorf("gyro: got %d %d %d", s.Gx, s.Gy, s.Gz)
	}
	if s.Ax != 7 || s.Ay != -200 || s.Az != 0 {
		t.Errorf("accel: got %d %d %d", s.Ax, s.Ay, s.Az)
	}
	if s.Temp != -2 {
		t.Errorf("temp: expected -2, got %d", s.Temp)
	}
	if s.DataCntr != 9 {
		t.Errorf("counter: expected 9, got %d", s.DataCntr)
	}
}

func TestDecodeSampleLengthMismatch(t *testing.T) {
	if _, err := DecodeSample(make([]byte, 18), true); err == nil {
		t.Error("expected error decoding 16-bit payload as 32-bit")
	}
	if _, err := DecodeSample(make([]byte, 30), false); err == nil {
		t.Error("expected error decoding 32-bit payload as 16-bit")
	}
	if _, err := DecodeSample(nil, false); err == nil {
		t.Error("expected error decoding empty payload")
	}
}
