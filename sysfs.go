package ttynamed

import (
	"os"
	"path/filepath"
	"strings"
)

// SysfsSource reads USB device attributes from the kernel's sysfs tree.
// This is the default attribute source.
type SysfsSource struct {
	Root string // sysfs mount point, defaults to /sys
}

func NewSysfsSource() *SysfsSource {
	return &SysfsSource{Root: "/sys"}
}

// Attributes resolves /sys/class/tty/<name>/device to the USB device
// directory and reads the identity files found there. Devices without a
// sysfs USB ancestry (built-in UARTs, virtual ports) yield an empty
// attribute set, not an error.
func (s *SysfsSource) Attributes(devicePath string) (DeviceAttributes, error) {
	var attrs DeviceAttributes

	root := s.Root
	if root == "" {
		root = "/sys"
	}

	name := filepath.Base(devicePath)
	link := filepath.Join(root, "class", "tty", name, "device")
	resolved, err := filepath.EvalSymlinks(link)
	if err != nil {
		return attrs, nil
	}

	// The link lands inside the USB interface directory
	// (e.g. .../5-2.3.1/5-2.3.1:1.0/ttyUSB0); the identity files live two
	// levels up in the USB device directory.
	interfaceDir := filepath.Dir(resolved)
	deviceDir := filepath.Dir(interfaceDir)

	attrs.VendorID = readSysfsFile(filepath.Join(deviceDir, "idVendor"))
	attrs.ProductID = readSysfsFile(filepath.Join(deviceDir, "idProduct"))
	attrs.SerialNumber = readSysfsFile(filepath.Join(deviceDir, "serial"))
	attrs.Manufacturer = readSysfsFile(filepath.Join(deviceDir, "manufacturer"))
	attrs.Product = readSysfsFile(filepath.Join(deviceDir, "product"))
	attrs.BusNumber = readSysfsFile(filepath.Join(deviceDir, "busnum"))
	attrs.DeviceNumber = readSysfsFile(filepath.Join(deviceDir, "devnum"))

	// The USB device directory name is the kernel's bus-port chain, stable
	// for as long as the device stays in the same physical port. It is the
	// positional fallback for devices without a serial number.
	if attrs.VendorID != "" || attrs.ProductID != "" {
		attrs.BusPath = filepath.Base(deviceDir)
	}

	return attrs, nil
}

// readSysfsFile reads a single sysfs attribute file, returning a trimmed
// string or "" if the file doesn't exist or can't be read
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
