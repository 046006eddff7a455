package attendances

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDeviceBinding(t *testing.T) {
	tests := []struct {
		name         string
		storedDevice string
		storedClient string
		device       string
		client       string
		want         DeviceVerdict
	}{
		{
			name:   "FirstCheckinBindsDevice",
			device: "dev-aaa", client: "cli-111",
			want: DeviceFirstBinding,
		},
		{
			name:         "SameDeviceSameClientAllowed",
			storedDevice: "dev-aaa", storedClient: "cli-111",
			device: "dev-aaa", client: "cli-111",
			want: DeviceAllowed,
		},
		{
			name:         "DifferentDeviceRejected",
			storedDevice: "dev-aaa", storedClient: "cli-111",
			device: "dev-bbb", client: "cli-111",
			want: DeviceMismatch,
		},
		{
			name:         "DeviceMatchCheckedBeforeClient",
			storedDevice: "dev-aaa", storedClient: "cli-111",
			device: "dev-bbb", client: "cli-222",
			want: DeviceMismatch,
		},
		{
			name:         "SameDeviceDifferentClientIsCloning",
			storedDevice: "dev-aaa", storedClient: "cli-111",
			device: "dev-aaa", client: "cli-222",
			want: DeviceCloning,
		},
		{
			name:         "LegacyBindingWithoutClientAllowed",
			storedDevice: "dev-aaa", storedClient: "",
			device: "dev-aaa", client: "cli-111",
			want: DeviceAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckDeviceBinding(tt.storedDevice, tt.storedClient, tt.device, tt.client)
			assert.Equal(t, tt.want, got)
		})
	}
}
