package sensors

import (
	"sync"

	"github.com/relabs-tech/adis_imu/internal/imu"
)

var (
	imuSourceOnce sync.Once
	imuSourceErr  error
)

// ReadIMUSample reads one decoded burst sample from the ADIS16505,
// running device bring-up on first use.
func ReadIMUSample() (imu.Sample, error) {
	imuSourceOnce.Do(func() {
		_, imuSourceErr = NewIMUSource()
	})
	if imuSourceErr != nil {
		return imu.Sample{}, imuSourceErr
	}
	return GetIMUManager().ReadSample()
}
