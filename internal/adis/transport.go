package adis

import (
	"encoding/binary"
	"fmt"
	"time"

	"periph.io/x/conn/v3/spi"
)

const (
	pageSize  = 0x80
	regPageID = 0x00
)

// writeCmd frames a 7-bit register address as a write command byte.
func writeCmd(reg uint32) byte {
	return 0x80 | byte(reg&0x7F)
}

// readCmd frames a 7-bit register address as a read command byte.
func readCmd(reg uint32) byte {
	return byte(reg & 0x7F)
}

// ReadReg reads a size-byte value from the register pair starting at reg,
// which must be the lower of the two addresses. Supported sizes are 2 and 4
// bytes. A page-select write is prepended only when the cached page differs
// from the target page; the cache is updated only after the whole batch
// succeeds, so a failed transfer forces a re-select on retry.
//
// The device pipelines responses: each 2-byte frame returns the value
// requested by the previous frame. For 4-byte reads the upper sub-register
// is requested before the lower one; the device auto-increments internally
// and the last frame before latching determines the returned word pairing,
// so this ordering must not change.
func (d *Device) ReadReg(reg, size uint32) (uint32, error) {
	page := reg / pageSize
	pkts := make([]spi.Packet, 0, 4)

	if d.currentPage != int32(page) {
		d.tx[0] = writeCmd(regPageID)
		d.tx[1] = byte(page)
		pkts = append(pkts, spi.Packet{W: d.tx[0:2], KeepCS: true})
	}

	switch size {
	case 4:
		d.tx[2] = readCmd(reg + 2)
		d.tx[3] = 0
		pkts = append(pkts, spi.Packet{W: d.tx[2:4], KeepCS: true})
		fallthrough
	case 2:
		d.tx[4] = readCmd(reg)
		d.tx[5] = 0
		pkts = append(pkts,
			spi.Packet{W: d.tx[4:6], R: d.rx[0:2], KeepCS: true},
			spi.Packet{R: d.rx[2:4]})
	default:
		return 0, ErrInvalidSize
	}

	if err := d.conn.TxPackets(pkts); err != nil {
		return 0, fmt.Errorf("adis: read reg 0x%02x: %w", reg, err)
	}
	d.currentPage = int32(page)

	if d.info.ReadDelay > 0 {
		time.Sleep(d.info.ReadDelay)
	}

	switch size {
	case 4:
		return binary.BigEndian.Uint32(d.rx[0:4]), nil
	default:
		return uint32(binary.BigEndian.Uint16(d.rx[2:4])), nil
	}
}

// WriteReg writes the low size bytes of val to the register pair starting at
// reg. Supported sizes are 1, 2 and 4 bytes. Sub-register writes are emitted
// from the lowest address upward, one byte per 2-byte frame, all within a
// single chip-select-held batch (page select included when needed).
func (d *Device) WriteReg(reg, val, size uint32) error {
	page := reg / pageSize
	pkts := make([]spi.Packet, 0, 5)

	if d.currentPage != int32(page) {
		d.tx[0] = writeCmd(regPageID)
		d.tx[1] = byte(page)
		pkts = append(pkts, spi.Packet{W: d.tx[0:2], KeepCS: true})
	}

	switch size {
	case 4:
		d.tx[8] = writeCmd(reg + 3)
		d.tx[9] = byte(val >> 24)
		d.tx[6] = writeCmd(reg + 2)
		d.tx[7] = byte(val >> 16)
		fallthrough
	case 2:
		d.tx[4] = writeCmd(reg + 1)
		d.tx[5] = byte(val >> 8)
		fallthrough
	case 1:
		d.tx[2] = writeCmd(reg)
		d.tx[3] = byte(val)
	default:
		return ErrInvalidSize
	}

	for i := uint32(1); i <= size; i++ {
		pkts = append(pkts, spi.Packet{W: d.tx[2*i : 2*i+2], KeepCS: true})
	}
	pkts[len(pkts)-1].KeepCS = false

	if err := d.conn.TxPackets(pkts); err != nil {
		return fmt.Errorf("adis: write reg 0x%02x: %w", reg, err)
	}
	d.currentPage = int32(page)

	if d.info.WriteDelay > 0 {
		time.Sleep(d.info.WriteDelay)
	}

	return nil
}

// UpdateBits performs a read-modify-write of the bits of reg selected by
// mask.
func (d *Device) UpdateBits(reg, mask, val, size uint32) error {
	old, err := d.ReadReg(reg, size)
	if err != nil {
		return err
	}

	return d.WriteReg(reg, (old&^mask)|fieldPrep(mask, val), size)
}
