package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker          string
	MQTTClientIDProducer string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string
	MQTTClientIDDebug   string

	// Topics
	TopicIMUBurst string
	TopicIMUDiag  string

	// IMU Hardware
	IMUSPIDevice string
	IMUSPISpeedHz int
	// IMUResetPin is the GPIO name of the hardware reset line. Optional;
	// when empty the software reset command is used instead.
	IMUResetPin string

	// IMU Sample Timing
	// Sync mode: 0=internal clock, 1=direct external, 2=scaled external, 3=pulse output
	IMUSyncMode int
	IMUExtClkHz int

	// IMU Signal Chain
	IMUDecRate      int // decimation rate, output rate = internal rate / (1 + rate)
	IMUFiltSizeVarB int // Bartlett window filter size (0-6)
	IMUBurst32      bool

	// Timing
	IMUSampleInterval  int // milliseconds
	ConsoleLogInterval int // milliseconds

	// Web Server
	WebServerPort int

	// MetricsPort exposes Prometheus metrics from the producer. Optional;
	// 0 disables the endpoint.
	MetricsPort int
}

// Package-level unexported variables for singleton pattern:
//   - globalConfig: unexported (lowercase) so other packages cannot access it directly.
//     This enforces encapsulation and prevents external code from modifying config without proper locking.
//     Has package-level scope (visible to all functions in this package, persists for program lifetime).
//   - configOnce: ensures InitGlobal() only runs once, even if called multiple times.
//   - configMu: RWMutex protects concurrent access. Write lock (Lock) for initialization,
//     read lock (RLock) for Get() allows multiple concurrent readers without blocking each other.
//
// External code must use InitGlobal() to set and Get() to read, ensuring thread safety.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_PRODUCER":
		c.MQTTClientIDProducer = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DEBUG":
		c.MQTTClientIDDebug = value

	// Topics
	case "TOPIC_IMU_BURST":
		c.TopicIMUBurst = value
	case "TOPIC_IMU_DIAG":
		c.TopicIMUDiag = value

	// IMU Hardware
	case "IMU_SPI_DEVICE":
		c.IMUSPIDevice = value
	case "IMU_SPI_SPEED_HZ":
		speed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_SPI_SPEED_HZ %q: %w", value, err)
		}
		if speed <= 0 {
			return fmt.Errorf("IMU_SPI_SPEED_HZ must be positive, got %d", speed)
		}
		c.IMUSPISpeedHz = speed
	case "IMU_RESET_PIN":
		c.IMUResetPin = value

	// IMU Sample Timing
	case "IMU_SYNC_MODE":
		mode, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_SYNC_MODE %q: %w", value, err)
		}
		if mode < 0 || mode > 3 {
			return fmt.Errorf("IMU_SYNC_MODE must be 0-3 (0=internal, 1=direct, 2=scaled, 3=output), got %d", mode)
		}
		c.IMUSyncMode = mode
	case "IMU_EXT_CLK_HZ":
		freq, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_EXT_CLK_HZ %q: %w", value, err)
		}
		if freq < 0 {
			return fmt.Errorf("IMU_EXT_CLK_HZ must not be negative, got %d", freq)
		}
		c.IMUExtClkHz = freq

	// IMU Signal Chain
	case "IMU_DEC_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_DEC_RATE %q: %w", value, err)
		}
		if rate < 0 {
			return fmt.Errorf("IMU_DEC_RATE must not be negative, got %d", rate)
		}
		c.IMUDecRate = rate
	case "IMU_FILT_SIZE_VAR_B":
		size, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_FILT_SIZE_VAR_B %q: %w", value, err)
		}
		if size < 0 || size > 6 {
			return fmt.Errorf("IMU_FILT_SIZE_VAR_B must be 0-6, got %d", size)
		}
		c.IMUFiltSizeVarB = size
	case "IMU_BURST32":
		switch value {
		case "0":
			c.IMUBurst32 = false
		case "1":
			c.IMUBurst32 = true
		default:
			return fmt.Errorf("IMU_BURST32 must be 0 or 1, got %q", value)
		}

	// Timing
	case "IMU_SAMPLE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid IMU_SAMPLE_INTERVAL %q: %w", value, err)
		}
		c.IMUSampleInterval = interval
	case "CONSOLE_LOG_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid CONSOLE_LOG_INTERVAL %q: %w", value, err)
		}
		c.ConsoleLogInterval = interval

	// Web Server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port
	case "METRICS_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid METRICS_PORT %q: %w", value, err)
		}
		c.MetricsPort = port

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicIMUBurst == "" {
		return fmt.Errorf("TOPIC_IMU_BURST is required")
	}
	if c.IMUSPIDevice == "" {
		return fmt.Errorf("IMU_SPI_DEVICE is required")
	}
	if c.IMUSPISpeedHz == 0 {
		return fmt.Errorf("IMU_SPI_SPEED_HZ is required")
	}
	if c.IMUSampleInterval == 0 {
		return fmt.Errorf("IMU_SAMPLE_INTERVAL is required")
	}
	if c.IMUSyncMode != 0 && c.IMUSyncMode != 3 && c.IMUExtClkHz == 0 {
		return fmt.Errorf("IMU_EXT_CLK_HZ is required for externally clocked sync modes")
	}
	return nil
}

// InitGlobal initializes the global configuration from file.
// Uses sync.Once to ensure this only runs once, even if called multiple times.
// Acquires write lock (configMu.Lock) during initialization to prevent concurrent access.
// This is the only function that can set globalConfig.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance.
// InitGlobal must be called first, or this will return nil.
// Uses read lock (configMu.RLock) to allow multiple concurrent readers without blocking.
// This is thread-safe and efficient for concurrent access across goroutines.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
