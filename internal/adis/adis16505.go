package adis

import "time"

// ADIS16505 describes the ADIS1650x family. All registers live on page 0;
// the paged transport still selects the page once after reset because the
// page cache starts at the unknown sentinel.
var ADIS16505 = &ChipInfo{
	Name:   "adis16505",
	ProdID: 16505,

	Fields:   &adis16505FieldMap,
	Timeouts: &adis16505Timeouts,

	SyncClkFreqLimits: [4]FreqRange{
		SyncDirect: {Min: 1900, Max: 2100},
		SyncScaled: {Min: 1, Max: 128},
	},
	SyncModeMax: SyncOutput,

	DecRateMax:      1999,
	FiltSizeVarBMax: 6,
	FlsMemWrCntrMax: 10000,

	IntClk: 2000,

	HasPaging: true,

	ReadDelay:  16 * time.Microsecond,
	WriteDelay: 20 * time.Microsecond,
}

var adis16505Timeouts = Timeouts{
	Reset:              260 * time.Millisecond,
	SwReset:            260 * time.Millisecond,
	SelfTest:           14 * time.Millisecond,
	FiltSizeVarBUpdate: 30 * time.Microsecond,
	DecRateUpdate:      30 * time.Microsecond,
	MscRegUpdate:       200 * time.Microsecond,
	SensBwUpdate:       250 * time.Millisecond,
}

var adis16505FieldMap = FieldMap{
	DiagStat: Field{Reg: 0x02, Size: 2, Mask: 0xFFFF},

	XGyro: Field{Reg: 0x04, Size: 4, Mask: 0xFFFFFFFF},
	YGyro: Field{Reg: 0x08, Size: 4, Mask: 0xFFFFFFFF},
	ZGyro: Field{Reg: 0x0C, Size: 4, Mask: 0xFFFFFFFF},
	XAccl: Field{Reg: 0x10, Size: 4, Mask: 0xFFFFFFFF},
	YAccl: Field{Reg: 0x14, Size: 4, Mask: 0xFFFFFFFF},
	ZAccl: Field{Reg: 0x18, Size: 4, Mask: 0xFFFFFFFF},

	TempOut:   Field{Reg: 0x1C, Size: 2, Mask: 0xFFFF},
	TimeStamp: Field{Reg: 0x1E, Size: 2, Mask: 0xFFFF},
	DataCntr:  Field{Reg: 0x22, Size: 2, Mask: 0xFFFF},

	XDeltAng: Field{Reg: 0x24, Size: 4, Mask: 0xFFFFFFFF},
	YDeltAng: Field{Reg: 0x28, Size: 4, Mask: 0xFFFFFFFF},
	ZDeltAng: Field{Reg: 0x2C, Size: 4, Mask: 0xFFFFFFFF},
	XDeltVel: Field{Reg: 0x30, Size: 4, Mask: 0xFFFFFFFF},
	YDeltVel: Field{Reg: 0x34, Size: 4, Mask: 0xFFFFFFFF},
	ZDeltVel: Field{Reg: 0x38, Size: 4, Mask: 0xFFFFFFFF},

	XGBias: Field{Reg: 0x40, Size: 4, Mask: 0xFFFFFFFF},
	YGBias: Field{Reg: 0x44, Size: 4, Mask: 0xFFFFFFFF},
	ZGBias: Field{Reg: 0x48, Size: 4, Mask: 0xFFFFFFFF},
	XABias: Field{Reg: 0x4C, Size: 4, Mask: 0xFFFFFFFF},
	YABias: Field{Reg: 0x50, Size: 4, Mask: 0xFFFFFFFF},
	ZABias: Field{Reg: 0x54, Size: 4, Mask: 0xFFFFFFFF},

	FiltSizeVarB:  Field{Reg: 0x5C, Size: 2, Mask: 0x0007},
	GyroMeasRange: Field{Reg: 0x5E, Size: 2, Mask: 0x000C},

	DrPolarity:     Field{Reg: 0x60, Size: 2, Mask: 0x0001},
	SyncPolarity:   Field{Reg: 0x60, Size: 2, Mask: 0x0002},
	SyncMode:       Field{Reg: 0x60, Size: 2, Mask: 0x001C},
	PtOfPercAlgnmt: Field{Reg: 0x60, Size: 2, Mask: 0x0040},
	LinearAcclComp: Field{Reg: 0x60, Size: 2, Mask: 0x0080},
	BurstSel:       Field{Reg: 0x60, Size: 2, Mask: 0x0100},
	Burst32:        Field{Reg: 0x60, Size: 2, Mask: 0x0200},
	SensBw:         Field{Reg: 0x60, Size: 2, Mask: 0x1000},

	UpScale: Field{Reg: 0x62, Size: 2, Mask: 0xFFFF},
	DecRate: Field{Reg: 0x64, Size: 2, Mask: 0x07FF},

	FactCalibRestore: Field{Reg: 0x68, Size: 2, Mask: 0x0002},
	SnsrSelfTest:     Field{Reg: 0x68, Size: 2, Mask: 0x0004},
	FlsMemUpdate:     Field{Reg: 0x68, Size: 2, Mask: 0x0008},
	FlsMemTest:       Field{Reg: 0x68, Size: 2, Mask: 0x0010},
	SwRes:            Field{Reg: 0x68, Size: 2, Mask: 0x0080},

	FirmRev:   Field{Reg: 0x6C, Size: 2, Mask: 0xFFFF},
	FirmD:     Field{Reg: 0x6E, Size: 2, Mask: 0x00FF},
	FirmM:     Field{Reg: 0x6E, Size: 2, Mask: 0xFF00},
	FirmY:     Field{Reg: 0x70, Size: 2, Mask: 0xFFFF},
	ProdID:    Field{Reg: 0x72, Size: 2, Mask: 0xFFFF},
	SerialNum: Field{Reg: 0x74, Size: 2, Mask: 0xFFFF},

	UsrScr1: Field{Reg: 0x76, Size: 2, Mask: 0xFFFF},
	UsrScr2: Field{Reg: 0x78, Size: 2, Mask: 0xFFFF},
	UsrScr3: Field{Reg: 0x7A, Size: 2, Mask: 0xFFFF},

	FlsMemWrCntr: Field{Reg: 0x7C, Size: 4, Mask: 0xFFFFFFFF},

	DiagDataPathOverrunMask:     1 << 1,
	DiagFlsMemUpdateFailureMask: 1 << 2,
	DiagSpiCommErrMask:          1 << 3,
	DiagStandbyModeMask:         1 << 4,
	DiagSnsrFailureMask:         1 << 5,
	DiagMemFailureMask:          1 << 6,
	DiagClkErrMask:              1 << 7,
	DiagGyro1FailureMask:        1 << 8,
	DiagGyro2FailureMask:        1 << 9,
	DiagAcclFailureMask:         1 << 10,
}
