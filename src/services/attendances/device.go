package attendances

// DeviceVerdict ผลตรวจ device binding
type DeviceVerdict int

const (
	DeviceAllowed      DeviceVerdict = iota // ตรงกับที่ผูกไว้
	DeviceFirstBinding                      // ยังไม่เคยผูก → ผูกอุปกรณ์นี้
	DeviceMismatch                          // อุปกรณ์ไม่ตรงกับที่ผูกไว้
	DeviceCloning                           // อุปกรณ์ตรงแต่ client signature ไม่ตรง
)

// CheckDeviceBinding ตรวจ signature ที่ส่งมาเทียบกับที่ผูกไว้กับ participant
// เช็คสองชั้น: device signature ก่อน แล้วค่อย client signature
func CheckDeviceBinding(storedDevice, storedClient, device, client string) DeviceVerdict {
	if storedDevice == "" {
		return DeviceFirstBinding
	}
	if storedDevice != device {
		return DeviceMismatch
	}
	if storedClient != "" && storedClient != client {
		return DeviceCloning
	}
	return DeviceAllowed
}
