package ttynamed

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// UdevadmSource reads device attributes from the udev property database via
// `udevadm info`. Alternative to SysfsSource for systems where the sysfs
// layout differs from the usual USB interface nesting.
type UdevadmSource struct{}

var (
	udevPropertyRegex = regexp.MustCompile(`^([A-Za-z0-9_]+)=(.*)$`)
	hexEscapeRegex    = regexp.MustCompile(`\\x([0-9a-fA-F]{2})`)
)

// Attributes queries the udev database for the device node. Nodes udev does
// not classify as USB yield an empty attribute set.
func (s *UdevadmSource) Attributes(devicePath string) (DeviceAttributes, error) {
	out, err := exec.Command("udevadm", "info", "-q", "property", "-n", devicePath).Output()
	if err != nil {
		return DeviceAttributes{}, fmt.Errorf("udevadm query for %s failed: %w", devicePath, err)
	}
	return attributesFromUdevProperties(parseUdevProperties(string(out))), nil
}

// parseUdevProperties splits `udevadm info -q property` output into a key
// to value map. Values exported in single quotes are unquoted.
func parseUdevProperties(raw string) map[string]string {
	props := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		m := udevPropertyRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		value := m[2]
		if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
			value = value[1 : len(value)-1]
		}
		props[m[1]] = strings.TrimSpace(value)
	}
	return props
}

// attributesFromUdevProperties maps udev properties onto DeviceAttributes.
// The *_ENC properties carry hex-escaped strings ("FTDI\x20Ltd") and are
// decoded before use.
func attributesFromUdevProperties(props map[string]string) DeviceAttributes {
	if props["ID_BUS"] != "usb" {
		return DeviceAttributes{}
	}

	return DeviceAttributes{
		VendorID:     props["ID_VENDOR_ID"],
		ProductID:    props["ID_MODEL_ID"],
		SerialNumber: props["ID_SERIAL_SHORT"],
		BusPath:      props["ID_PATH"],
		Manufacturer: decodeHexEscapes(props["ID_VENDOR_ENC"]),
		Product:      decodeHexEscapes(props["ID_MODEL_ENC"]),
		BusNumber:    props["BUSNUM"],
		DeviceNumber: props["DEVNUM"],
	}
}

// decodeHexEscapes converts udev's embedded hex literals, so
// "hello\x20world" becomes "hello world". Escapes that don't decode to a
// byte are replaced with "?".
func decodeHexEscapes(raw string) string {
	return hexEscapeRegex.ReplaceAllStringFunc(raw, func(esc string) string {
		val, err := strconv.ParseUint(esc[2:], 16, 8)
		if err != nil {
			return "?"
		}
		return string(rune(val))
	})
}
