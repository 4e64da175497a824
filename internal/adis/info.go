package adis

import "time"

// SyncMode selects the device's sample timing source.
type SyncMode uint32

const (
	// SyncDefault uses the internal clock.
	SyncDefault SyncMode = iota
	// SyncDirect samples on an externally supplied clock.
	SyncDirect
	// SyncScaled multiplies an external clock by the up-scale factor.
	SyncScaled
	// SyncOutput drives the sync pin as an output.
	SyncOutput
)

// Field maps a logical quantity onto specific bits of a specific register.
// Reg is the byte address of the lower register in the paged address space,
// Size the register width in bytes (1, 2 or 4), Mask the bit window.
type Field struct {
	Reg  uint32
	Size uint32
	Mask uint32
}

// FreqRange is an inclusive external clock frequency range in Hz.
type FreqRange struct {
	Min uint32
	Max uint32
}

// Timeouts holds the per-device settle delays applied after writes that need
// device-internal update time. These are unconditional sleeps, not polled
// waits.
type Timeouts struct {
	Reset              time.Duration
	SwReset            time.Duration
	SelfTest           time.Duration
	FiltSizeVarBUpdate time.Duration
	DecRateUpdate      time.Duration
	MscRegUpdate       time.Duration
	SensBwUpdate       time.Duration
}

// FieldMap associates every logical quantity with its Field descriptor, and
// carries the bit position of each diagnostic flag within the status word.
// Flag positions vary across device variants sharing this core.
type FieldMap struct {
	DiagStat Field

	XGyro Field
	YGyro Field
	ZGyro Field
	XAccl Field
	YAccl Field
	ZAccl Field

	TempOut   Field
	TimeStamp Field
	DataCntr  Field

	XDeltAng Field
	YDeltAng Field
	ZDeltAng Field
	XDeltVel Field
	YDeltVel Field
	ZDeltVel Field

	XGBias Field
	YGBias Field
	ZGBias Field
	XABias Field
	YABias Field
	ZABias Field

	FiltSizeVarB  Field
	GyroMeasRange Field

	DrPolarity     Field
	SyncPolarity   Field
	SyncMode       Field
	SensBw         Field
	PtOfPercAlgnmt Field
	LinearAcclComp Field
	BurstSel       Field
	Burst32        Field

	UpScale Field
	DecRate Field

	FactCalibRestore Field
	SnsrSelfTest     Field
	FlsMemUpdate     Field
	FlsMemTest       Field
	SwRes            Field

	FirmRev   Field
	FirmD     Field
	FirmM     Field
	FirmY     Field
	ProdID    Field
	SerialNum Field

	UsrScr1 Field
	UsrScr2 Field
	UsrScr3 Field

	FlsMemWrCntr Field

	DiagDataPathOverrunMask     uint16
	DiagFlsMemUpdateFailureMask uint16
	DiagSpiCommErrMask          uint16
	DiagStandbyModeMask         uint16
	DiagSnsrFailureMask         uint16
	DiagMemFailureMask          uint16
	DiagClkErrMask              uint16
	DiagGyro1FailureMask        uint16
	DiagGyro2FailureMask        uint16
	DiagAcclFailureMask         uint16
}

// ChipInfo is the immutable per-variant descriptor supplied at construction.
// It is shared and read-only for the lifetime of every Device that
// references it.
type ChipInfo struct {
	Name   string
	ProdID uint32

	Fields   *FieldMap
	Timeouts *Timeouts

	// SyncClkFreqLimits is indexed by SyncMode. Entries for internally
	// clocked modes are unused.
	SyncClkFreqLimits [4]FreqRange
	SyncModeMax       SyncMode

	DecRateMax      uint32
	FiltSizeVarBMax uint32
	FlsMemWrCntrMax uint32

	// IntClk is the internal sample clock in Hz, used when the device is
	// not externally clocked.
	IntClk uint32

	HasPaging bool

	// ReadDelay and WriteDelay are the trailing chip-select deselect gaps
	// applied after the final transfer of a register access.
	ReadDelay  time.Duration
	WriteDelay time.Duration
}
