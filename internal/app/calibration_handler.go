// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/relabs-tech/adis_imu/internal/sensors"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// CalibrationSession holds the state of an active bias calibration
type CalibrationSession struct {
	Conn         *websocket.Conn
	mu           sync.Mutex
	currentPhase string
	results      CalibrationResult
}

// CalibrationResult is the on-disk record of one bias calibration run.
// Bias values are raw device counts as written to the offset registers.
type CalibrationResult struct {
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`

	// Gyroscope bias null
	GyroBiasX        int32   `json:"gyro_bias_x"`
	GyroBiasY        int32   `json:"gyro_bias_y"`
	GyroBiasZ        int32   `json:"gyro_bias_z"`
	GyroStaticStdDev float64 `json:"gyro_static_stddev"`
	GyroResidual     float64 `json:"gyro_residual_stddev"`
	GyroConfidence   float64 `json:"gyro_confidence"`

	FlashCommitted bool `json:"flash_committed"`

	TotalSamples int `json:"total_samples"`
}

// WebSocket message types
type WSMessage struct {
	Action string `json:"action"` // init, next, flash, restore, cancel
}

type WSResponse struct {
	Type     string                 `json:"type"` // phase, step, progress, stats, complete, error
	Phase    string                 `json:"phase,omitempty"`
	Step     string                 `json:"step,omitempty"`
	Progress float64                `json:"progress,omitempty"`
	Stats    map[string]interface{} `json:"stats,omitempty"`
	Results  interface{}            `json:"results,omitempty"`
	Message  string                 `json:"message,omitempty"`
}

// HandleCalibrationWS handles the WebSocket connection for gyro bias
// calibration. The device must be stationary for the whole run.
func HandleCalibrationWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("calibration: websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	session := &CalibrationSession{
		Conn: conn,
		results: CalibrationResult{
			Version:   1,
			Timestamp: time.Now(),
		},
	}

	// Main message loop
	for {
		var msg WSMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			log.Printf("calibration: websocket read error: %v", err)
			break
		}

		switch msg.Action {
		case "init":
			session.currentPhase = ""
			session.results = CalibrationResult{Version: 1, Timestamp: time.Now()}
			log.Printf("calibration: session initialized")

		case "next":
			session.mu.Lock()
			err := session.runNextStep()
			session.mu.Unlock()
			if err != nil {
				session.sendError(err.Error())
			}

		case "flash":
			session.mu.Lock()
			err := session.commitFlash()
			session.mu.Unlock()
			if err != nil {
				session.sendError(err.Error())
			}

		case "restore":
			if err := sensors.GetIMUManager().FactoryRestore(); err != nil {
				session.sendError(fmt.Sprintf("factory restore: %v", err))
			} else {
				log.Printf("calibration: factory calibration restored")
				session.Conn.WriteJSON(WSResponse{Type: "stats", Message: "factory calibration restored"})
			}

		case "cancel":
			log.Printf("calibration: cancelled by user")
			return
		}
	}
}

func (s *CalibrationSession) runNextStep() error {
	// State machine for calibration phases
	switch s.currentPhase {
	case "":
		s.currentPhase = "gyro"
		return s.runGyroStep()

	case "gyro":
		s.currentPhase = "verify"
		return s.runVerifyStep()

	case "verify":
		return s.complete()
	}

	return nil
}

// runGyroStep averages stationary gyro readings and writes the negated mean
// into the bias offset registers.
func (s *CalibrationSession) runGyroStep() error {
	s.sendPhase("gyro")
	s.sendStep("gyro-static", "gyro")

	mgr := sensors.GetIMUManager()

	s.sendProgress(5)
	time.Sleep(1 * time.Second) // Give user time to place device

	samples := make([][3]float64, 0, 100)
	for i := 0; i < 100; i++ {
		sample, err := mgr.ReadSample()
		if err != nil {
			return err
		}
		samples = append(samples, [3]float64{
			float64(sample.Gx),
			float64(sample.Gy),
			float64(sample.Gz),
		})
		s.sendProgress(5 + float64(i)*0.9)
		time.Sleep(10 * time.Millisecond)
	}

	// The offset registers add to the sensor output, so the bias is the
	// negated mean.
	s.results.GyroBiasX = -int32(math.Round(mean(samples, 0)))
	s.results.GyroBiasY = -int32(math.Round(mean(samples, 1)))
	s.results.GyroBiasZ = -int32(math.Round(mean(samples, 2)))
	s.results.GyroStaticStdDev = (stddev(samples, 0) + stddev(samples, 1) + stddev(samples, 2)) / 3.0
	s.results.TotalSamples += len(samples)

	if err := mgr.WriteGyroBias(s.results.GyroBiasX, s.results.GyroBiasY, s.results.GyroBiasZ); err != nil {
		return fmt.Errorf("write gyro bias: %w", err)
	}
	log.Printf("calibration: gyro bias written x=%d y=%d z=%d",
		s.results.GyroBiasX, s.results.GyroBiasY, s.results.GyroBiasZ)

	s.sendStats()
	s.sendActionReady()
	return nil
}

// runVerifyStep re-samples with the bias applied and reports the residual.
func (s *CalibrationSession) runVerifyStep() error {
	s.sendPhase("verify")
	s.sendStep("gyro-verify", "verify")

	mgr := sensors.GetIMUManager()

	samples := make([][3]float64, 0, 50)
	for i := 0; i < 50; i++ {
		sample, err := mgr.ReadSample()
		if err != nil {
			return err
		}
		samples = append(samples, [3]float64{
			float64(sample.Gx),
			float64(sample.Gy),
			float64(sample.Gz),
		})
		s.sendProgress(float64(i) * 2)
		time.Sleep(10 * time.Millisecond)
	}

	s.results.GyroResidual = (stddev(samples, 0) + stddev(samples, 1) + stddev(samples, 2)) / 3.0
	s.results.TotalSamples += len(samples)

	if s.results.GyroStaticStdDev > 0 {
		s.results.GyroConfidence = 100.0 / (1.0 + s.results.GyroResidual/s.results.GyroStaticStdDev)
	}

	s.sendStats()
	s.sendActionReady()
	return nil
}

// commitFlash persists the written biases across power cycles.
func (s *CalibrationSession) commitFlash() error {
	if err := sensors.GetIMUManager().FlashUpdate(); err != nil {
		return fmt.Errorf("flash update: %w", err)
	}
	s.results.FlashCommitted = true
	log.Printf("calibration: configuration committed to flash")
	s.sendStats()
	return nil
}

func (s *CalibrationSession) complete() error {
	// Save results to file
	filename := fmt.Sprintf("%d_imu_calibration.json", time.Now().Unix())

	// Use current directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	filepath := filepath.Join(cwd, filename)

	data, err := json.MarshalIndent(s.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal calibration results: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write calibration file: %w", err)
	}

	log.Printf("calibration: saved results to %s", filepath)

	// Send completion message
	s.Conn.WriteJSON(WSResponse{
		Type:    "complete",
		Results: map[string]interface{}{"filename": filename},
	})

	return nil
}

func (s *CalibrationSession) sendPhase(phase string) {
	s.Conn.WriteJSON(WSResponse{
		Type:  "phase",
		Phase: phase,
	})
}

func (s *CalibrationSession) sendStep(step, phase string) {
	s.Conn.WriteJSON(WSResponse{
		Type:  "step",
		Step:  step,
		Phase: phase,
	})
}

func (s *CalibrationSession) sendProgress(progress float64) {
	s.Conn.WriteJSON(WSResponse{
		Type:     "progress",
		Progress: progress,
	})
}

func (s *CalibrationSession) sendStats() {
	stats := map[string]interface{}{
		"gyro_bias_x": s.results.GyroBiasX,
		"gyro_bias_y": s.results.GyroBiasY,
		"gyro_bias_z": s.results.GyroBiasZ,
		"residual":    s.results.GyroResidual,
		"confidence":  s.results.GyroConfidence,
		"flashed":     s.results.FlashCommitted,
		"samples":     s.results.TotalSamples,
	}
	s.Conn.WriteJSON(WSResponse{
		Type:  "stats",
		Stats: stats,
	})
}

func (s *CalibrationSession) sendActionReady() {
	s.Conn.WriteJSON(WSResponse{
		Type:    "action",
		Message: "ready",
	})
}

func (s *CalibrationSession) sendError(message string) {
	s.Conn.WriteJSON(WSResponse{
		Type:    "error",
		Message: message,
	})
}

// Helper functions for statistics
func mean(data [][3]float64, axis int) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v[axis]
	}
	return sum / float64(len(data))
}

func stddev(data [][3]float64, axis int) float64 {
	if len(data) == 0 {
		return 0
	}
	m := mean(data, axis)
	variance := 0.0
	for _, v := range data {
		diff := v[axis] - m
		variance += diff * diff
	}
	variance /= float64(len(data))
	return math.Sqrt(variance)
}
