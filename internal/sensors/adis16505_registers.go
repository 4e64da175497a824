// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

// RegisterInfo describes one register for the debug tooling.
type RegisterInfo struct {
	Address     string     `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"` // "R", "W", "RW"
	Default     string     `json:"default,omitempty"`
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// BitField describes one named bit window within a register.
type BitField struct {
	Bits        string `json:"bits"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// getADIS16505RegisterMap returns metadata for the ADIS16505 page 0 register
// file. This provides register names, descriptions, access types, and bit
// field definitions.
func getADIS16505RegisterMap() []RegisterInfo {
	return []RegisterInfo{
		// Status
		{Address: "0x02", Name: "DIAG_STAT", Description: "Diagnostic Status", Access: "R", Default: "0x0000",
			BitFields: []BitField{
				{Bits: "1", Name: "DATA_PATH_OVERRUN", Description: "Data path overrun", Values: ""},
				{Bits: "2", Name: "FLS_MEM_UPDATE_FAILURE", Description: "Flash memory update failure", Values: ""},
				{Bits: "3", Name: "SPI_COMM_ERR", Description: "SPI communication error", Values: ""},
				{Bits: "4", Name: "STANDBY_MODE", Description: "Standby mode (low supply voltage)", Values: ""},
				{Bits: "5", Name: "SNSR_FAILURE", Description: "Sensor self-test failure", Values: ""},
				{Bits: "6", Name: "MEM_FAILURE", Description: "Flash memory test failure", Values: ""},
				{Bits: "7", Name: "CLK_ERR", Description: "Clock error (external sync lost)", Values: ""},
				{Bits: "8", Name: "GYRO1_FAILURE", Description: "Gyroscope 1 self-test failure", Values: ""},
				{Bits: "9", Name: "GYRO2_FAILURE", Description: "Gyroscope 2 self-test failure", Values: ""},
				{Bits: "10", Name: "ACCL_FAILURE", Description: "Accelerometer self-test failure", Values: ""},
			}},

		// Inertial Outputs (Read-Only)
		{Address: "0x04", Name: "X_GYRO_LOW", Description: "Gyroscope X-Axis Low Word", Access: "R"},
		{Address: "0x06", Name: "X_GYRO_OUT", Description: "Gyroscope X-Axis High Word", Access: "R"},
		{Address: "0x08", Name: "Y_GYRO_LOW", Description: "Gyroscope Y-Axis Low Word", Access: "R"},
		{Address: "0x0A", Name: "Y_GYRO_OUT", Description: "Gyroscope Y-Axis High Word", Access: "R"},
		{Address: "0x0C", Name: "Z_GYRO_LOW", Description: "Gyroscope Z-Axis Low Word", Access: "R"},
		{Address: "0x0E", Name: "Z_GYRO_OUT", Description: "Gyroscope Z-Axis High Word", Access: "R"},
		{Address: "0x10", Name: "X_ACCL_LOW", Description: "Accelerometer X-Axis Low Word", Access: "R"},
		{Address: "0x12", Name: "X_ACCL_OUT", Description: "Accelerometer X-Axis High Word", Access: "R"},
		{Address: "0x14", Name: "Y_ACCL_LOW", Description: "Accelerometer Y-Axis Low Word", Access: "R"},
		{Address: "0x16", Name: "Y_ACCL_OUT", Description: "Accelerometer Y-Axis High Word", Access: "R"},
		{Address: "0x18", Name: "Z_ACCL_LOW", Description: "Accelerometer Z-Axis Low Word", Access: "R"},
		{Address: "0x1A", Name: "Z_ACCL_OUT", Description: "Accelerometer Z-Axis High Word", Access: "R"},
		{Address: "0x1C", Name: "TEMP_OUT", Description: "Temperature Output", Access: "R"},
		{Address: "0x1E", Name: "TIME_STAMP", Description: "PPS-Relative Time Stamp", Access: "R"},
		{Address: "0x22", Name: "DATA_CNTR", Description: "New-Data Sample Counter", Access: "R"},

		// Delta Angle / Delta Velocity (Read-Only)
		{Address: "0x24", Name: "X_DELTANG_LOW", Description: "Delta Angle X-Axis Low Word", Access: "R"},
		{Address: "0x26", Name: "X_DELTANG_OUT", Description: "Delta Angle X-Axis High Word", Access: "R"},
		{Address: "0x28", Name: "Y_DELTANG_LOW", Description: "Delta Angle Y-Axis Low Word", Access: "R"},
		{Address: "0x2A", Name: "Y_DELTANG_OUT", Description: "Delta Angle Y-Axis High Word", Access: "R"},
		{Address: "0x2C", Name: "Z_DELTANG_LOW", Description: "Delta Angle Z-Axis Low Word", Access: "R"},
		{Address: "0x2E", Name: "Z_DELTANG_OUT", Description: "Delta Angle Z-Axis High Word", Access: "R"},
		{Address: "0x30", Name: "X_DELTVEL_LOW", Description: "Delta Velocity X-Axis Low Word", Access: "R"},
		{Address: "0x32", Name: "X_DELTVEL_OUT", Description: "Delta Velocity X-Axis High Word", Access: "R"},
		{Address: "0x34", Name: "Y_DELTVEL_LOW", Description: "Delta Velocity Y-Axis Low Word", Access: "R"},
		{Address: "0x36", Name: "Y_DELTVEL_OUT", Description: "Delta Velocity Y-Axis High Word", Access: "R"},
		{Address: "0x38", Name: "Z_DELTVEL_LOW", Description: "Delta Velocity Z-Axis Low Word", Access: "R"},
		{Address: "0x3A", Name: "Z_DELTVEL_OUT", Description: "Delta Velocity Z-Axis High Word", Access: "R"},

		// Calibration Offsets
		{Address: "0x40", Name: "XG_BIAS_LOW", Description: "Gyroscope X-Axis Bias Low Word", Access: "RW", Default: "0x0000"},
		{Address: "0x42", Name: "XG_BIAS_HIGH", Description: "Gyroscope X-Axis Bias High Word", Access: "RW", Default: "0x0000"},
		{Address: "0x44", Name: "YG_BIAS_LOW", Description: "Gyroscope Y-Axis Bias Low Word", Access: "RW", Default: "0x0000"},
		{Address: "0x46", Name: "YG_BIAS_HIGH", Description: "Gyroscope Y-Axis Bias High Word", Access: "RW", Default: "0x0000"},
		{Address: "0x48", Name: "ZG_BIAS_LOW", Description: "Gyroscope Z-Axis Bias Low Word", Access: "RW", Default: "0x0000"},
		{Address: "0x4A", Name: "ZG_BIAS_HIGH", Description: "Gyroscope Z-Axis Bias High Word", Access: "RW", Default: "0x0000"},
		{Address: "0x4C", Name: "XA_BIAS_LOW", Description: "Accelerometer X-Axis Bias Low Word", Access: "RW", Default: "0x0000"},
		{Address: "0x4E", Name: "XA_BIAS_HIGH", Description: "Accelerometer X-Axis Bias High Word", Access: "RW", Default: "0x0000"},
		{Address: "0x50", Name: "YA_BIAS_LOW", Description: "Accelerometer Y-Axis Bias Low Word", Access: "RW", Default: "0x0000"},
		{Address: "0x52", Name: "YA_BIAS_HIGH", Description: "Accelerometer Y-Axis Bias High Word", Access: "RW", Default: "0x0000"},
		{Address: "0x54", Name: "ZA_BIAS_LOW", Description: "Accelerometer Z-Axis Bias Low Word", Access: "RW", Default: "0x0000"},
		{Address: "0x56", Name: "ZA_BIAS_HIGH", Description: "Accelerometer Z-Axis Bias High Word", Access: "RW", Default: "0x0000"},

		// Signal Chain Configuration
		{Address: "0x5C", Name: "FILT_CTRL", Description: "Bartlett Window Filter Control", Access: "RW", Default: "0x0000",
			BitFields: []BitField{
				{Bits: "2:0", Name: "FILT_SIZE_VAR_B", Description: "Filter size, taps = 2^N", Values: "0-6"},
			}},
		{Address: "0x5E", Name: "RANG_MDL", Description: "Gyroscope Measurement Range Model", Access: "R",
			BitFields: []BitField{
				{Bits: "3:2", Name: "GYRO_MEAS_RANGE", Description: "Measurement range identifier", Values: "0=±125°/s, 1=±500°/s, 3=±2000°/s"},
			}},
		{Address: "0x60", Name: "MSC_CTRL", Description: "Miscellaneous Control", Access: "RW", Default: "0x00C1",
			BitFields: []BitField{
				{Bits: "0", Name: "DR_POLARITY", Description: "Data ready polarity", Values: "0=Active low, 1=Active high"},
				{Bits: "1", Name: "SYNC_POLARITY", Description: "Sync clock edge", Values: "0=Falling, 1=Rising"},
				{Bits: "4:2", Name: "SYNC_MODE", Description: "Sample clock source", Values: "0=Internal, 1=Direct sync, 2=Scaled sync, 3=Pulse output"},
				{Bits: "6", Name: "PT_OF_PERC_ALGNMT", Description: "Point of percussion alignment", Values: "0=Disabled, 1=Enabled"},
				{Bits: "7", Name: "LINEAR_ACCL_COMP", Description: "Linear acceleration compensation", Values: "0=Disabled, 1=Enabled"},
				{Bits: "8", Name: "BURST_SEL", Description: "Burst content", Values: "0=Rate/accel, 1=Delta angle/velocity"},
				{Bits: "9", Name: "BURST32", Description: "Burst word width", Values: "0=16-bit, 1=32-bit"},
				{Bits: "12", Name: "SENS_BW", Description: "Internal sensor bandwidth", Values: "0=370Hz, 1=40Hz"},
			}},
		{Address: "0x62", Name: "UP_SCALE", Description: "Scaled Sync Clock Multiplier", Access: "RW", Default: "0x07D0"},
		{Address: "0x64", Name: "DEC_RATE", Description: "Decimation Rate", Access: "RW", Default: "0x0000",
			BitFields: []BitField{
				{Bits: "10:0", Name: "DEC_RATE", Description: "Output rate = internal rate / (1 + DEC_RATE)", Values: "0-1999"},
			}},

		// Commands
		{Address: "0x68", Name: "GLOB_CMD", Description: "Global Commands", Access: "W",
			BitFields: []BitField{
				{Bits: "1", Name: "FACT_CALIB_RESTORE", Description: "Restore factory calibration", Values: ""},
				{Bits: "2", Name: "SNSR_SELF_TEST", Description: "Run sensor self test", Values: ""},
				{Bits: "3", Name: "FLS_MEM_UPDATE", Description: "Commit configuration to flash", Values: ""},
				{Bits: "4", Name: "FLS_MEM_TEST", Description: "Run flash memory test", Values: ""},
				{Bits: "7", Name: "SW_RES", Description: "Software reset", Values: ""},
			}},

		// Identification (Read-Only)
		{Address: "0x6C", Name: "FIRM_REV", Description: "Firmware Revision", Access: "R"},
		{Address: "0x6E", Name: "FIRM_DM", Description: "Firmware Date: Day / Month", Access: "R",
			BitFields: []BitField{
				{Bits: "7:0", Name: "FIRM_D", Description: "Factory configuration day", Values: ""},
				{Bits: "15:8", Name: "FIRM_M", Description: "Factory configuration month", Values: ""},
			}},
		{Address: "0x70", Name: "FIRM_Y", Description: "Firmware Date: Year", Access: "R"},
		{Address: "0x72", Name: "PROD_ID", Description: "Product Identification", Access: "R", Default: "0x4079"},
		{Address: "0x74", Name: "SERIAL_NUM", Description: "Lot-Specific Serial Number", Access: "R"},

		// Scratch / Flash Endurance
		{Address: "0x76", Name: "USR_SCR_1", Description: "User Scratch Register 1", Access: "RW", Default: "0x0000"},
		{Address: "0x78", Name: "USR_SCR_2", Description: "User Scratch Register 2", Access: "RW", Default: "0x0000"},
		{Address: "0x7A", Name: "USR_SCR_3", Description: "User Scratch Register 3", Access: "RW", Default: "0x0000"},
		{Address: "0x7C", Name: "FLSHCNT_LOW", Description: "Flash Write Counter Low Word", Access: "R"},
		{Address: "0x7E", Name: "FLSHCNT_HIGH", Description: "Flash Write Counter High Word", Access: "R"},
	}
}
