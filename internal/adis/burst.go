package adis

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3/spi"
)

// BurstSize selects the burst frame width.
type BurstSize uint8

const (
	// Burst16 selects 16-bit burst fields (20-byte frame).
	Burst16 BurstSize = iota
	// Burst32 selects 32-bit burst fields (32-byte frame).
	Burst32
)

const (
	burstCmdMSB  = 0x68
	burstCmdLSB  = 0x00
	burstCmdSize = 2
	// ChecksumSize is the width of the burst frame checksum trailer.
	ChecksumSize = 2
)

var burstFrameBytes = [...]int{
	Burst16: 20,
	Burst32: 32,
}

// FrameSize returns the total burst frame length in bytes, checksum trailer
// included.
func (s BurstSize) FrameSize() int {
	return burstFrameBytes[s]
}

// validateChecksum verifies the running-subtraction checksum of a burst
// frame: the trailing 2 bytes, big-endian, must equal the byte sum of the
// rest of the frame.
func validateChecksum(buf []byte) bool {
	checksum := binary.BigEndian.Uint16(buf[len(buf)-ChecksumSize:])
	for _, b := range buf[:len(buf)-ChecksumSize] {
		checksum -= uint16(b)
	}
	return checksum == 0
}

// ReadBurstData issues one framed burst transaction and returns up to
// maxBytes of the frame payload, checksum trailer excluded. The payload
// starts with the diagnostic word, which is also decoded into the device
// snapshot. On checksum mismatch the checksum-error flag is set, no other
// flag is touched, no data is returned and the error wraps ErrChecksum.
//
// Burst mode samples all axes in one SPI exchange; a sequence of
// independent register reads cannot guarantee that atomicity.
func (d *Device) ReadBurstData(maxBytes int, sel BurstSize) ([]byte, error) {
	msgSize := sel.FrameSize()
	if maxBytes < 0 {
		maxBytes = 0
	}
	if maxBytes > msgSize-ChecksumSize {
		maxBytes = msgSize - ChecksumSize
	}

	buf := make([]byte, burstCmdSize+msgSize)
	buf[0] = burstCmdMSB
	buf[1] = burstCmdLSB

	// Single full-duplex exchange: the 2-byte command clocks out while the
	// frame clocks in behind it. Command bytes are not checksummed.
	if err := d.conn.TxPackets([]spi.Packet{{W: buf, R: buf}}); err != nil {
		return nil, fmt.Errorf("adis: burst read: %w", err)
	}

	payload := buf[burstCmdSize:]
	if !validateChecksum(payload) {
		d.diag.ChecksumErr = true
		return nil, ErrChecksum
	}
	d.diag.ChecksumErr = false

	// The first payload word is DIAG_STAT; every burst read refreshes the
	// snapshot the same way a direct status read does.
	d.updateDiagFlags(binary.BigEndian.Uint16(payload[0:2]))

	out := make([]byte, maxBytes)
	copy(out, payload)
	return out, nil
}
