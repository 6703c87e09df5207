package ttynamed

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// ResetUSB performs a USB-level reset of the device currently at
// devicePath. This can recover hardware that is in a hung/unresponsive
// state without physically replugging it.
//
// Requirements:
// - usbreset utility must be installed (from usbutils package)
// - Requires appropriate permissions (typically root/sudo)
func ResetUSB(source AttributeSource, devicePath string) error {
	attrs, err := source.Attributes(devicePath)
	if err != nil {
		return fmt.Errorf("failed to read device attributes: %w", err)
	}

	if attrs.BusNumber == "" || attrs.DeviceNumber == "" {
		return fmt.Errorf("%w: no USB bus/device numbers for %s", ErrDeviceNotFound, devicePath)
	}

	usbPath, err := formatUSBPath(attrs.BusNumber, attrs.DeviceNumber)
	if err != nil {
		return err
	}

	if !IsUSBResetAvailable() {
		return ErrUSBResetNotAvailable
	}

	cmd := exec.Command("usbreset", usbPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("usbreset failed: %w (output: %s)", err, string(output))
	}

	// Wait for the device to re-enumerate; USB devices typically take
	// 1-2 seconds to become available again.
	time.Sleep(2 * time.Second)

	return nil
}

// formatUSBPath builds the BBB/DDD argument usbreset expects from the
// sysfs bus and device numbers, zero-padded to three digits.
func formatUSBPath(bus, device string) (string, error) {
	busNum, err := strconv.Atoi(bus)
	if err != nil {
		return "", fmt.Errorf("invalid bus number %q: %w", bus, err)
	}
	devNum, err := strconv.Atoi(device)
	if err != nil {
		return "", fmt.Errorf("invalid device number %q: %w", device, err)
	}
	return fmt.Sprintf("%03d/%03d", busNum, devNum), nil
}

// IsUSBResetAvailable checks if usbreset utility is available in PATH
func IsUSBResetAvailable() bool {
	_, err := exec.LookPath("usbreset")
	return err == nil
}
