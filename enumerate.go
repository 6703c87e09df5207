package ttynamed

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"golang.org/x/sys/unix"
)

// DeviceLister produces a point-in-time snapshot of attached serial
// devices. There is no ordering guarantee across successive calls and no
// guarantee a device present in one snapshot remains present in the next.
type DeviceLister interface {
	Enumerate() ([]Device, error)
}

// Enumerator lists candidate serial device nodes under DevDir and retrieves
// their hardware attributes through Source.
type Enumerator struct {
	DevDir string // defaults to /dev
	Source AttributeSource
}

// Ensure Enumerator implements DeviceLister at compile time
var _ DeviceLister = (*Enumerator)(nil)

func NewEnumerator() *Enumerator {
	return &Enumerator{
		DevDir: "/dev",
		Source: NewSysfsSource(),
	}
}

// Regular expressions for different types of serial devices
var serialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
	regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
	regexp.MustCompile(`^ttyS\d+$`),   // Standard serial ports
	regexp.MustCompile(`^ttyAMA\d+$`), // ARM/Raspberry Pi serial
	regexp.MustCompile(`^ttymxc\d+$`), // i.MX serial ports
	regexp.MustCompile(`^ttyO\d+$`),   // OMAP serial ports
	regexp.MustCompile(`^ttySAC\d+$`), // Samsung serial ports
	regexp.MustCompile(`^ttyTHS\d+$`), // Tegra serial ports
}

// Exclude patterns for virtual terminals and other non-serial devices
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^tty\d+$`),  // Virtual terminals (tty1, tty2, etc.)
	regexp.MustCompile(`^console$`), // Console
	regexp.MustCompile(`^ptmx$`),    // Pseudo-terminal multiplexer
	regexp.MustCompile(`^pty.*$`),   // Pseudo-terminals
	regexp.MustCompile(`^pts/.*$`),  // Pseudo-terminal slaves
}

// Enumerate returns the attached serial devices with their attributes,
// sorted by path. An empty result is not an error; the call fails only when
// the device directory itself cannot be read.
func (e *Enumerator) Enumerate() ([]Device, error) {
	devDir := e.DevDir
	if devDir == "" {
		devDir = "/dev"
	}

	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrEnumeration, devDir, err)
	}

	var devices []Device
	for _, entry := range entries {
		name := entry.Name()
		if matchesExcludePattern(name) || !matchesSerialPattern(name) {
			continue
		}

		path := filepath.Join(devDir, name)
		if !isCharacterDevice(path) {
			continue
		}

		attrs, err := e.Source.Attributes(path)
		if err != nil {
			// One node failing its attribute query doesn't invalidate the
			// snapshot; the device is listed with whatever identity we have.
			attrs = DeviceAttributes{}
		}

		devices = append(devices, Device{Path: path, Attrs: attrs})
	}

	sort.Slice(devices, func(i, j int) bool { return devices[i].Path < devices[j].Path })

	return devices, nil
}

func matchesSerialPattern(name string) bool {
	for _, pattern := range serialPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

func matchesExcludePattern(name string) bool {
	for _, pattern := range excludePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFCHR
}
