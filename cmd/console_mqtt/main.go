package main

import (
	"log"

	"github.com/relabs-tech/adis_imu/internal/app"
	"github.com/relabs-tech/adis_imu/internal/config"
)

func main() {
	log.Println("starting IMU console (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal("imu_config.txt"); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsoleMQTT(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
