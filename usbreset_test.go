package ttynamed

import (
	"errors"
	"testing"
)

// fakeSource returns a fixed attribute set for any device path.
type fakeSource struct {
	attrs DeviceAttributes
	err   error
}

func (f *fakeSource) Attributes(devicePath string) (DeviceAttributes, error) {
	return f.attrs, f.err
}

// TestFormatUSBPath tests the BBB/DDD formatting usbreset expects
func TestFormatUSBPath(t *testing.T) {
	tests := []struct {
		bus      string
		device   string
		expected string
	}{
		{"5", "7", "005/007"},
		{"1", "2", "001/002"},
		{"123", "456", "123/456"},
		{"1", "10", "001/010"},
		{"005", "007", "005/007"},
	}

	for _, tt := range tests {
		formatted, err := formatUSBPath(tt.bus, tt.device)
		if err != nil {
			t.Errorf("formatUSBPath(%q, %q) failed: %v", tt.bus, tt.device, err)
			continue
		}
		if formatted != tt.expected {
			t.Errorf("formatUSBPath(%q, %q) = %q, expected %q",
				tt.bus, tt.device, formatted, tt.expected)
		}
	}
}

// TestFormatUSBPathRejectsNonNumeric tests input validation
func TestFormatUSBPathRejectsNonNumeric(t *testing.T) {
	if _, err := formatUSBPath("x", "7"); err == nil {
		t.Error("Expected error for non-numeric bus number")
	}
	if _, err := formatUSBPath("5", ""); err == nil {
		t.Error("Expected error for empty device number")
	}
}

// TestResetUSBWithoutBusNumbers verifies devices without USB bus metadata
// cannot be reset
func TestResetUSBWithoutBusNumbers(t *testing.T) {
	source := &fakeSource{attrs: DeviceAttributes{VendorID: "10c4"}}

	err := ResetUSB(source, "/dev/ttyUSB0")
	if err == nil {
		t.Fatal("Expected error for device without bus/device numbers")
	}
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

// TestIsUSBResetAvailable tests the availability check doesn't panic
func TestIsUSBResetAvailable(t *testing.T) {
	t.Logf("usbreset available: %v", IsUSBResetAvailable())
}
