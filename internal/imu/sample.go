// Package imu holds the decoded burst telemetry sample shared between the
// producer and its consumers.
package imu

import (
	"encoding/binary"
	"fmt"
)

// Sample is one decoded burst frame. Gyro and accelerometer values are raw
// device counts; their width (and therefore scale) depends on the burst mode
// the frame was captured in.
type Sample struct {
	DiagStat uint16 `json:"diag_stat"`

	Gx int32 `json:"gx"` // gyro
	Gy int32 `json:"gy"`
	Gz int32 `json:"gz"`

	Ax int32 `json:"ax"` // accel
	Ay int32 `json:"ay"`
	Az int32 `json:"az"`

	Temp     int32  `json:"temp"`
	DataCntr uint16 `json:"data_cntr"`
}

// Burst payload lengths, checksum already stripped.
const (
	payloadLen16 = 18
	payloadLen32 = 30
)

// DecodeSample unpacks a checksum-verified burst payload. In 16-bit mode
// every quantity is one big-endian word; in 32-bit mode gyro and accel are
// two words each, low word first, while temperature and the data counter
// stay 16 bit.
func DecodeSample(payload []byte, burst32 bool) (Sample, error) {
	want := payloadLen16
	if burst32 {
		want = payloadLen32
	}
	if len(payload) != want {
		return Sample{}, fmt.Errorf("imu: burst payload is %d bytes, expected %d", len(payload), want)
	}

	s := Sample{DiagStat: binary.BigEndian.Uint16(payload[0:2])}

	if burst32 {
		s.Gx = word32(payload[2:])
		s.Gy = word32(payload[6:])
		s.Gz = word32(payload[10:])
		s.Ax = word32(payload[14:])
		s.Ay = word32(payload[18:])
		s.Az = word32(payload[22:])
		s.Temp = word16(payload[26:])
		s.DataCntr = binary.BigEndian.Uint16(payload[28:30])
		return s, nil
	}

	s.Gx = word16(payload[2:])
	s.Gy = word16(payload[4:])
	s.Gz = word16(payload[6:])
	s.Ax = word16(payload[8:])
	s.Ay = word16(payload[10:])
	s.Az = word16(payload[12:])
	s.Temp = word16(payload[14:])
	s.DataCntr = binary.BigEndian.Uint16(payload[16:18])
	return s, nil
}

func word16(p []byte) int32 {
	return int32(int16(binary.BigEndian.Uint16(p)))
}

func word32(p []byte) int32 {
	low := binary.BigEndian.Uint16(p)
	high := binary.BigEndian.Uint16(p[2:])
	return int32(uint32(high)<<16 | uint32(low))
}
