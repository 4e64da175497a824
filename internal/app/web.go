package app

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/relabs-tech/adis_imu/internal/adis"
	"github.com/relabs-tech/adis_imu/internal/config"
	"github.com/relabs-tech/adis_imu/internal/imu"
)

func RunWeb() error {
	cfg := config.Get()

	var (
		mu         sync.RWMutex
		lastSample imu.Sample
		haveSample bool
		lastDiag   adis.DiagFlags
		haveDiag   bool
	)

	// 1) Connect to MQTT broker
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientIDWeb)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("connected to MQTT broker at %s", cfg.MQTTBroker)

	// 2) Subscribe to burst topic and keep the latest sample
	token := client.Subscribe(cfg.TopicIMUBurst, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var s imu.Sample
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			log.Printf("MQTT payload unmarshal error: %v", err)
			return
		}
		mu.Lock()
		lastSample = s
		haveSample = true
		mu.Unlock()
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("subscribed to MQTT topic %s", cfg.TopicIMUBurst)

	if cfg.TopicIMUDiag != "" {
		token := client.Subscribe(cfg.TopicIMUDiag, 0, func(_ mqtt.Client, msg mqtt.Message) {
			var f adis.DiagFlags
			if err := json.Unmarshal(msg.Payload(), &f); err != nil {
				log.Printf("MQTT payload unmarshal error: %v", err)
				return
			}
			mu.Lock()
			lastDiag = f
			haveDiag = true
			mu.Unlock()
		})
		token.Wait()
		if token.Error() != nil {
			return token.Error()
		}
		log.Printf("subscribed to MQTT topic %s", cfg.TopicIMUDiag)
	}

	// 3) JSON API endpoints: latest sample and diagnostics
	http.HandleFunc("/api/sample", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if !haveSample {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lastSample); err != nil {
			log.Printf("json encode error: %v", err)
		}
	})

	http.HandleFunc("/api/diag", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		defer mu.RUnlock()

		if !haveDiag {
			http.Error(w, "no data yet", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lastDiag); err != nil {
			log.Printf("json encode error: %v", err)
		}
	})

	// 4) Prometheus metrics
	http.Handle("/metrics", promhttp.Handler())

	// 5) Static files from ./web as the root
	fs := http.FileServer(http.Dir("web"))
	http.Handle("/", fs)

	addr := fmt.Sprintf(":%d", cfg.WebServerPort)
	log.Printf("web server listening on %s", addr)
	return http.ListenAndServe(addr, nil)
}
