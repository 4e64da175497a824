// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/relabs-tech/adis_imu/internal/sensors"
)

// RegisterDebugSession holds WebSocket connection state for register debugging
type RegisterDebugSession struct {
	Conn *websocket.Conn
}

// Response types
type RegisterResponse struct {
	Type        string                `json:"type"` // "register_data", "register_map", "status", "error"
	Address     string                `json:"addr,omitempty"`
	Value       string                `json:"value,omitempty"`
	Registers   map[string]string     `json:"registers,omitempty"` // for bulk read
	Timestamp   string                `json:"timestamp,omitempty"`
	Message     string                `json:"message,omitempty"`
	Status      string                `json:"status,omitempty"`
	Diag        interface{}           `json:"diag,omitempty"`
	RegisterMap []sensors.RegisterInfo `json:"register_map,omitempty"`
}

// RegisterConfigFile represents the JSON structure for exported register configuration
type RegisterConfigFile struct {
	Version   int               `json:"version"`
	Timestamp string            `json:"timestamp"`
	Registers map[string]string `json:"registers"` // hex address -> hex value
}

// HandleRegisterDebugWS handles the WebSocket connection for register debugging
func HandleRegisterDebugWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("register_debug: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	session := &RegisterDebugSession{Conn: conn}

	// Send register map on connection
	if err := session.sendRegisterMap(); err != nil {
		log.Printf("register_debug: error sending register map: %v", err)
		return
	}

	// Message loop
	for {
		var rawMsg map[string]interface{}
		err := conn.ReadJSON(&rawMsg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("register_debug: websocket error: %v", err)
			}
			break
		}

		action, ok := rawMsg["action"].(string)
		if !ok {
			session.sendError("missing or invalid action field")
			continue
		}

		// Route based on action
		switch action {
		case "get_map":
			session.sendRegisterMap()
		case "read":
			session.handleRead(rawMsg)
		case "read_all":
			session.handleReadAll()
		case "write":
			session.handleWrite(rawMsg)
		case "diag":
			session.handleDiag()
		case "init":
			session.handleInit()
		case "export_config":
			session.handleExportConfig()
		default:
			session.sendError(fmt.Sprintf("unknown action: %s", action))
		}
	}
}

func (s *RegisterDebugSession) handleRead(rawMsg map[string]interface{}) {
	addr, _ := rawMsg["addr"].(string)
	if addr == "" {
		s.sendError("missing addr field")
		return
	}

	// Parse hex address
	var addrVal uint32
	if _, err := fmt.Sscanf(addr, "0x%X", &addrVal); err != nil {
		s.sendError(fmt.Sprintf("invalid address format: %s", addr))
		return
	}

	value, err := sensors.GetIMUManager().ReadRegister(addrVal)
	if err != nil {
		s.sendError(fmt.Sprintf("read error: %v", err))
		return
	}

	// Send response
	resp := RegisterResponse{
		Type:      "register_data",
		Address:   addr,
		Value:     fmt.Sprintf("0x%04X", value),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleReadAll() {
	registers, err := sensors.GetIMUManager().ReadAllRegisters()
	if err != nil {
		s.sendError(fmt.Sprintf("read all error: %v", err))
		return
	}

	// Convert to hex string map
	regMap := make(map[string]string)
	for addr, value := range registers {
		regMap[fmt.Sprintf("0x%02X", addr)] = fmt.Sprintf("0x%04X", value)
	}

	// Send response
	resp := RegisterResponse{
		Type:      "register_data",
		Registers: regMap,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleWrite(rawMsg map[string]interface{}) {
	addr, _ := rawMsg["addr"].(string)
	valueStr, _ := rawMsg["value"].(string)

	if addr == "" || valueStr == "" {
		s.sendError("missing addr or value field")
		return
	}

	// Parse hex address and value
	var addrVal, value uint32
	if _, err := fmt.Sscanf(addr, "0x%X", &addrVal); err != nil {
		s.sendError(fmt.Sprintf("invalid address format: %s", addr))
		return
	}
	if _, err := fmt.Sscanf(valueStr, "0x%X", &value); err != nil {
		s.sendError(fmt.Sprintf("invalid value format: %s", valueStr))
		return
	}
	if value > 0xFFFF {
		s.sendError(fmt.Sprintf("value 0x%X exceeds 16 bits", value))
		return
	}

	if !isRegisterWritable(addrVal) {
		s.sendError(fmt.Sprintf("register 0x%02X is not writable", addrVal))
		return
	}

	if err := sensors.GetIMUManager().WriteRegister(addrVal, uint16(value)); err != nil {
		s.sendError(fmt.Sprintf("write error: %v", err))
		return
	}

	// Send confirmation
	resp := RegisterResponse{
		Type:      "register_data",
		Address:   addr,
		Value:     valueStr,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   "write successful",
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleDiag() {
	flags, err := sensors.GetIMUManager().ReadDiagStat()
	if err != nil {
		s.sendError(fmt.Sprintf("diag error: %v", err))
		return
	}

	resp := RegisterResponse{
		Type:      "status",
		Diag:      flags,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleInit() {
	// Rerun bring-up: reset, self test, flash test, diag read, ID check
	if err := sensors.GetIMUManager().Reinitialize(); err != nil {
		s.sendError(fmt.Sprintf("reinit error: %v", err))
		return
	}

	resp := RegisterResponse{
		Type:    "status",
		Status:  "initialized",
		Message: "IMU reinitialized successfully",
	}
	s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) handleExportConfig() {
	// Read all registers
	registers, err := sensors.GetIMUManager().ReadAllRegisters()
	if err != nil {
		s.sendError(fmt.Sprintf("export error: %v", err))
		return
	}

	// Convert to hex string map
	regMap := make(map[string]string)
	for addr, value := range registers {
		regMap[fmt.Sprintf("0x%02X", addr)] = fmt.Sprintf("0x%04X", value)
	}

	// Create config file structure
	configFile := RegisterConfigFile{
		Version:   1,
		Timestamp: time.Now().Format(time.RFC3339),
		Registers: regMap,
	}

	// Send as download
	configJSON, _ := json.Marshal(configFile)
	rawResp := map[string]interface{}{
		"type":     "export_config",
		"message":  "config exported",
		"config":   string(configJSON),
		"filename": fmt.Sprintf("adis16505_%s_registers.json", time.Now().Format("20060102_150405")),
	}
	s.Conn.WriteJSON(rawResp)
}

func (s *RegisterDebugSession) sendRegisterMap() error {
	resp := RegisterResponse{
		Type:        "register_map",
		RegisterMap: sensors.GetIMUManager().GetRegisterMap(),
	}
	return s.Conn.WriteJSON(resp)
}

func (s *RegisterDebugSession) sendError(message string) {
	resp := RegisterResponse{
		Type:    "error",
		Message: message,
	}
	s.Conn.WriteJSON(resp)
}

// HandleIMUData serves the latest decoded sample via REST API
func HandleIMUData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sample, err := sensors.GetIMUManager().ReadSample()
	if err != nil {
		http.Error(w, fmt.Sprintf(`{"error": "%v"}`, err), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(sample)
}

// isRegisterWritable checks the metadata table's access tag for the address
func isRegisterWritable(addr uint32) bool {
	for _, reg := range sensors.GetIMUManager().GetRegisterMap() {
		var regAddr uint32
		if _, err := fmt.Sscanf(reg.Address, "0x%X", &regAddr); err != nil {
			continue
		}
		if regAddr == addr {
			return strings.Contains(reg.Access, "W")
		}
	}
	return false
}
