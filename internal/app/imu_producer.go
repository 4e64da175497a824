package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/relabs-tech/adis_imu/internal/adis"
	"github.com/relabs-tech/adis_imu/internal/config"
	"github.com/relabs-tech/adis_imu/internal/sensors"
)

// Initialize Prometheus metrics.
var (
	samplesPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imu_samples_published_total",
		Help: "Burst samples published to MQTT.",
	})

	checksumErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imu_burst_checksum_errors_total",
		Help: "Burst frames dropped on checksum mismatch.",
	})

	readErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "imu_read_errors_total",
		Help: "Burst reads failed for reasons other than checksum.",
	})

	lastDataCntr = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "imu_last_data_cntr",
		Help: "Data counter of the last published sample.",
	})

	diagFlagsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "imu_diag_flags_active",
		Help: "Raw DIAG_STAT word of the last published sample.",
	})
)

// RunIMUProducer samples the IMU on the configured interval and publishes
// decoded burst frames and diagnostics over MQTT.
func RunIMUProducer() error {
	log.Println("starting IMU burst producer")

	cfg := config.Get()

	src, err := sensors.NewIMUSource()
	if err != nil {
		return fmt.Errorf("IMU source: %w", err)
	}

	// --- connect to MQTT ---
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDProducer)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT connect: %w", token.Error())
	}
	defer client.Disconnect(250)

	log.Println("connected to MQTT, starting publish loop")

	prometheus.MustRegister(samplesPublished)
	prometheus.MustRegister(checksumErrors)
	prometheus.MustRegister(readErrors)
	prometheus.MustRegister(lastDataCntr)
	prometheus.MustRegister(diagFlagsActive)

	if cfg.MetricsPort != 0 {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.MetricsPort)
			log.Printf("metrics listening on %s", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.Printf("metrics server error: %v", err)
			}
		}()
	}

	mgr := sensors.GetIMUManager()

	ticker := time.NewTicker(time.Duration(cfg.IMUSampleInterval) * time.Millisecond)
	defer ticker.Stop()

	for t := range ticker.C {
		sample, err := src.ReadSample()
		if err != nil {
			// A corrupt frame is not fatal; the next tick retries.
			if errors.Is(err, adis.ErrChecksum) {
				checksumErrors.Inc()
				log.Printf("burst checksum mismatch, frame dropped")
			} else {
				readErrors.Inc()
				log.Printf("burst read error: %v", err)
			}
			continue
		}

		samplesPublished.Inc()
		lastDataCntr.Set(float64(sample.DataCntr))
		diagFlagsActive.Set(float64(sample.DiagStat))

		payload, err := json.Marshal(sample)
		if err != nil {
			log.Printf("json marshal error (sample): %v", err)
			continue
		}
		if token := client.Publish(cfg.TopicIMUBurst, 0, true, payload); token.Wait() && token.Error() != nil {
			log.Printf("MQTT publish error (burst): %v", token.Error())
			continue
		}

		// Diagnostics ride on their own topic so consumers can watch
		// device health without decoding every sample.
		if cfg.TopicIMUDiag != "" {
			flags, err := mgr.DiagSnapshot()
			if err != nil {
				log.Printf("diag snapshot error: %v", err)
			} else if payload, err := json.Marshal(flags); err != nil {
				log.Printf("json marshal error (diag): %v", err)
			} else {
				client.Publish(cfg.TopicIMUDiag, 0, true, payload)
			}
		}

		if sample.DiagStat != 0 {
			log.Printf("%s tick: DIAG_STAT=0x%04X | gyro gx=%d gy=%d gz=%d | accel ax=%d ay=%d az=%d | cntr=%d",
				t.Format(time.RFC3339),
				sample.DiagStat,
				sample.Gx, sample.Gy, sample.Gz,
				sample.Ax, sample.Ay, sample.Az,
				sample.DataCntr,
			)
		}
	}
	return nil
}
