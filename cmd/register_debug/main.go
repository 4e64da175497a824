// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/relabs-tech/adis_imu/internal/app"
	"github.com/relabs-tech/adis_imu/internal/config"
	"github.com/relabs-tech/adis_imu/internal/sensors"
)

func main() {
	configPath := flag.String("config", "./imu_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting ADIS16505 register debug tool (standalone)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Println("Initializing IMU...")
	if _, err := sensors.NewIMUSource(); err != nil {
		log.Fatalf("IMU initialization failed: %v", err)
	}

	http.HandleFunc("/ws", app.HandleRegisterDebugWS)
	http.HandleFunc("/ws/calibration", app.HandleCalibrationWS)

	// API endpoint for live IMU data
	http.HandleFunc("/api/imu", app.HandleIMUData)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/register_debug.html")
	})

	addr := ":8081"
	log.Printf("Register debug tool listening on %s", addr)
	log.Printf("Open http://localhost:8081 in your browser")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
