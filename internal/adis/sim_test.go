package adis

import (
	"encoding/binary"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/spi"
)

// simBus simulates the device side of the protocol behind a spi.Conn: a
// paged 16-bit register file with the real pipeline behavior (each 2-byte
// frame shifts out the response to the previous frame's command) plus burst
// frame generation.
type simBus struct {
	regs    map[uint32]uint16 // absolute even address -> register value
	page    uint32
	pending uint16

	frames      [][]byte // every 2-byte command frame, in emission order
	pageSelects int
	burstReads  int
	failNext    error // when set, the next batch fails untouched

	burstDiag    uint16
	burstVals16  [8]uint16 // gx gy gz ax ay az temp cnt
	burstVals32  [6]uint32 // gx gy gz ax ay az
	corruptBurst bool
}

func newSimBus() *simBus {
	return &simBus{regs: make(map[uint32]uint16)}
}

func (s *simBus) setReg16(addr uint32, v uint16) {
	s.regs[addr] = v
}

func (s *simBus) setReg32(addr uint32, v uint32) {
	s.regs[addr] = uint16(v)
	s.regs[addr+2] = uint16(v >> 16)
}

func (s *simBus) String() string { return "simbus" }

func (s *simBus) Duplex() conn.Duplex { return conn.Full }

func (s *simBus) Tx(w, r []byte) error {
	return s.TxPackets([]spi.Packet{{W: w, R: r}})
}

func (s *simBus) TxPackets(p []spi.Packet) error {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}

	if len(p) == 1 && len(p[0].W) > 2 && p[0].W[0] == burstCmdMSB {
		s.burstReads++
		fr := s.burstFrame(len(p[0].W) - burstCmdSize)
		copy(p[0].R[burstCmdSize:], fr)
		return nil
	}

	for _, pkt := range p {
		if pkt.R != nil {
			binary.BigEndian.PutUint16(pkt.R, s.pending)
		}
		if len(pkt.W) < 2 {
			continue
		}
		s.frames = append(s.frames, append([]byte(nil), pkt.W...))

		cmd, data := pkt.W[0], pkt.W[1]
		if cmd&0x80 != 0 {
			addr := uint32(cmd & 0x7F)
			if addr == regPageID {
				s.page = uint32(data)
				s.pageSelects++
				continue
			}
			abs := s.page*pageSize + addr
			base := abs &^ 1
			cur := s.regs[base]
			if abs&1 != 0 {
				cur = cur&0x00FF | uint16(data)<<8
			} else {
				cur = cur&0xFF00 | uint16(data)
			}
			s.regs[base] = cur
			continue
		}

		s.pending = s.regs[s.page*pageSize+uint32(cmd&0x7F)]
	}
	return nil
}

func (s *simBus) burstFrame(size int) []byte {
	buf := make([]byte, size)
	binary.BigEndian.PutUint16(buf[0:], s.burstDiag)
	if size == burstFrameBytes[Burst16] {
		for i, v := range s.burstVals16 {
			binary.BigEndian.PutUint16(buf[2+2*i:], v)
		}
	} else {
		for i, v := range s.burstVals32 {
			// Low word first, then the high word.
			binary.BigEndian.PutUint16(buf[2+4*i:], uint16(v))
			binary.BigEndian.PutUint16(buf[4+4*i:], uint16(v>>16))
		}
		binary.BigEndian.PutUint16(buf[26:], s.burstVals16[6])
		binary.BigEndian.PutUint16(buf[28:], s.burstVals16[7])
	}

	var sum uint16
	for _, b := range buf[:size-ChecksumSize] {
		sum += uint16(b)
	}
	if s.corruptBurst {
		sum ^= 0x0100
	}
	binary.BigEndian.PutUint16(buf[size-ChecksumSize:], sum)
	return buf
}

// testChipInfo clones the ADIS16505 descriptor with zeroed settle delays so
// tests run without sleeping, and with a scaled-sync range wide enough to
// exercise the up-scale band check.
func testChipInfo() *ChipInfo {
	fields := adis16505FieldMap
	info := &ChipInfo{
		Name:   "adis16505-sim",
		ProdID: 16505,

		Fields:   &fields,
		Timeouts: &Timeouts{},

		SyncClkFreqLimits: [4]FreqRange{
			SyncDirect: {Min: 1900, Max: 2100},
			SyncScaled: {Min: 1, Max: 2100},
		},
		SyncModeMax: SyncOutput,

		DecRateMax:      1999,
		FiltSizeVarBMax: 6,
		FlsMemWrCntrMax: 10000,

		IntClk: 2000,

		HasPaging: true,

		ReadDelay:  0 * time.Microsecond,
		WriteDelay: 0 * time.Microsecond,
	}
	return info
}

// newTestDevice wires a Device straight to a fresh simBus, skipping
// bring-up.
func newTestDevice() (*Device, *simBus) {
	sim := newSimBus()
	sim.setReg16(0x72, 16505)
	d := &Device{
		conn:        sim,
		info:        testChipInfo(),
		currentPage: -1,
	}
	return d, sim
}
