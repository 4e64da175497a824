package app

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/adis_imu/internal/adis"
	"github.com/relabs-tech/adis_imu/internal/config"
	"github.com/relabs-tech/adis_imu/internal/imu"
)

func RunConsoleMQTT() error {
	cfg := config.Get()

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDConsole)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	// Subscribe to burst samples
	burstToken := client.Subscribe(cfg.TopicIMUBurst, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s imu.Sample
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("console: sample unmarshal error: %v", err)
			return
		}

		fmt.Printf(
			"[IMU ] gx=%8d gy=%8d gz=%8d  ax=%8d ay=%8d az=%8d  temp=%5d cntr=%5d diag=0x%04X\n",
			s.Gx, s.Gy, s.Gz, s.Ax, s.Ay, s.Az, s.Temp, s.DataCntr, s.DiagStat,
		)
	})
	burstToken.Wait()
	if burstToken.Error() != nil {
		return burstToken.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicIMUBurst)

	// Subscribe to diagnostics
	if cfg.TopicIMUDiag != "" {
		diagToken := client.Subscribe(cfg.TopicIMUDiag, 0, func(_ mqtt.Client, msg mqtt.Message) {
			var f adis.DiagFlags
			if err := json.Unmarshal(msg.Payload(), &f); err != nil {
				log.Printf("console: diag unmarshal error: %v", err)
				return
			}

			if f == (adis.DiagFlags{}) {
				return
			}
			fmt.Printf(
				"[DIAG] snsr_fail=%t mem_fail=%t clk_err=%t spi_err=%t overrun=%t standby=%t checksum=%t flash_cnt=%t\n",
				f.SnsrFailure, f.MemFailure, f.ClkErr, f.SpiCommErr,
				f.DataPathOverrun, f.StandbyMode, f.ChecksumErr, f.FlsMemWrCntExceed,
			)
		})
		diagToken.Wait()
		if diagToken.Error() != nil {
			return diagToken.Error()
		}
		log.Printf("console: subscribed to %s", cfg.TopicIMUDiag)
	}

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	return nil
}
