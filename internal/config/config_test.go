package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.conf")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `# test configuration
MQTT_BROKER=tcp://localhost:1883
MQTT_CLIENT_ID_PRODUCER=imu_producer

TOPIC_IMU_BURST=sensors/imu/burst
TOPIC_IMU_DIAG=sensors/imu/diag

IMU_SPI_DEVICE=/dev/spidev0.0
IMU_SPI_SPEED_HZ=1000000
IMU_RESET_PIN=GPIO25

IMU_SYNC_MODE=0
IMU_DEC_RATE=3
IMU_FILT_SIZE_VAR_B=2
IMU_BURST32=1

IMU_SAMPLE_INTERVAL=10
WEB_SERVER_PORT=8080
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.MQTTBroker != "tcp://localhost:1883" {
		t.Errorf("broker: got %q", cfg.MQTTBroker)
	}
	if cfg.TopicIMUBurst != "sensors/imu/burst" {
		t.Errorf("burst topic: got %q", cfg.TopicIMUBurst)
	}
	if cfg.IMUSPISpeedHz != 1000000 {
		t.Errorf("spi speed: got %d", cfg.IMUSPISpeedHz)
	}
	if cfg.IMUResetPin != "GPIO25" {
		t.Errorf("reset pin: got %q", cfg.IMUResetPin)
	}
	if !cfg.IMUBurst32 {
		t.Error("burst32 not set")
	}
	if cfg.IMUDecRate != 3 || cfg.IMUFiltSizeVarB != 2 {
		t.Errorf("signal chain: dec %d filt %d", cfg.IMUDecRate, cfg.IMUFiltSizeVarB)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := []struct {
		name string
		line string // appended to an otherwise valid config
		want string
	}{
		{"UnknownKey", "NO_SUCH_KEY=1", "unknown config key"},
		{"BadSyncMode", "IMU_SYNC_MODE=4", "IMU_SYNC_MODE"},
		{"BadFiltSize", "IMU_FILT_SIZE_VAR_B=7", "IMU_FILT_SIZE_VAR_B"},
		{"BadBurst32", "IMU_BURST32=yes", "IMU_BURST32"},
		{"MalformedLine", "IMU_SPI_DEVICE", "invalid config line"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, validConfig+tc.line+"\n"))
			if err == nil {
				t.Fatal("expected load to fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadRequiresExtClkForExternalSync(t *testing.T) {
	body := strings.Replace(validConfig, "IMU_SYNC_MODE=0", "IMU_SYNC_MODE=1", 1)
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatal("expected load to fail without IMU_EXT_CLK_HZ")
	}

	body += "IMU_EXT_CLK_HZ=2000\n"
	cfg, err := Load(writeConfig(t, body))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.IMUExtClkHz != 2000 {
		t.Errorf("ext clk: got %d", cfg.IMUExtClkHz)
	}
}

func TestLoadRequiresBroker(t *testing.T) {
	body := strings.Replace(validConfig, "MQTT_BROKER=tcp://localhost:1883\n", "", 1)
	if _, err := Load(writeConfig(t, body)); err == nil {
		t.Fatal("expected load to fail without MQTT_BROKER")
	}
}
