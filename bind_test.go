package ttynamed

import (
	"errors"
	"testing"
)

// fakeLister is a fabricated device snapshot for exercising binding and
// resolution without hardware.
type fakeLister struct {
	devices []Device
	err     error
}

func (f *fakeLister) Enumerate() ([]Device, error) {
	return f.devices, f.err
}

func cp2102(serial string) DeviceAttributes {
	return DeviceAttributes{
		VendorID:     "10c4",
		ProductID:    "ea60",
		SerialNumber: serial,
		BusPath:      "1-1.2",
	}
}

// TestBindStoresSerialTriple verifies the preferred criteria set
func TestBindStoresSerialTriple(t *testing.T) {
	binder := &Binder{
		Devices: &fakeLister{devices: []Device{{Path: "/dev/ttyUSB0", Attrs: cp2102("A1B2C3")}}},
		Store:   testStore(t),
	}

	binding, err := binder.Bind("probe1", "/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	expected := Criteria{VendorID: "10c4", ProductID: "ea60", SerialNumber: "A1B2C3"}
	if binding.Criteria != expected {
		t.Errorf("criteria = %+v, expected %+v", binding.Criteria, expected)
	}
	if binding.Criteria.BusPath != "" {
		t.Error("serial-backed criteria must not pin the bus path")
	}
	if binding.Criteria.Degraded() {
		t.Error("serial-backed binding should not be degraded")
	}

	stored, err := binder.Store.Get("probe1")
	if err != nil {
		t.Fatalf("Get after Bind failed: %v", err)
	}
	if stored != binding {
		t.Errorf("stored binding = %+v, expected %+v", stored, binding)
	}
}

// TestBindFallbackWithoutSerial verifies the positional fallback criteria
func TestBindFallbackWithoutSerial(t *testing.T) {
	attrs := DeviceAttributes{VendorID: "1a86", ProductID: "7523", BusPath: "1-1.4"}
	binder := &Binder{
		Devices: &fakeLister{devices: []Device{{Path: "/dev/ttyUSB0", Attrs: attrs}}},
		Store:   testStore(t),
	}

	binding, err := binder.Bind("cheap-adapter", "/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	expected := Criteria{VendorID: "1a86", ProductID: "7523", BusPath: "1-1.4"}
	if binding.Criteria != expected {
		t.Errorf("criteria = %+v, expected %+v", binding.Criteria, expected)
	}
	if !binding.Criteria.Degraded() {
		t.Error("serial-less binding should report degraded")
	}
}

// TestBindDeviceNotAttached tests the error kind for unknown device paths
func TestBindDeviceNotAttached(t *testing.T) {
	binder := &Binder{
		Devices: &fakeLister{devices: []Device{{Path: "/dev/ttyUSB0", Attrs: cp2102("A1B2C3")}}},
		Store:   testStore(t),
	}

	_, err := binder.Bind("probe1", "/dev/ttyUSB9")
	if err == nil {
		t.Fatal("Expected error for unattached device")
	}
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
}

// TestBindRefusesIdentitylessDevice verifies a device with no attributes at
// all cannot be bound
func TestBindRefusesIdentitylessDevice(t *testing.T) {
	binder := &Binder{
		Devices: &fakeLister{devices: []Device{{Path: "/dev/ttyS0"}}},
		Store:   testStore(t),
	}

	_, err := binder.Bind("uart", "/dev/ttyS0")
	if err == nil {
		t.Fatal("Expected error binding a device without identity")
	}
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}
	if _, err := binder.Store.Get("uart"); !errors.Is(err, ErrNameNotBound) {
		t.Error("refused binding must not be stored")
	}
}

// TestBindIdempotent verifies binding twice with the device unchanged
// produces the identical stored binding
func TestBindIdempotent(t *testing.T) {
	binder := &Binder{
		Devices: &fakeLister{devices: []Device{{Path: "/dev/ttyUSB0", Attrs: cp2102("A1B2C3")}}},
		Store:   testStore(t),
	}

	first, err := binder.Bind("probe1", "/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("first Bind failed: %v", err)
	}
	second, err := binder.Bind("probe1", "/dev/ttyUSB0")
	if err != nil {
		t.Fatalf("second Bind failed: %v", err)
	}

	if first != second {
		t.Errorf("bindings differ: %+v vs %+v", first, second)
	}
}

// TestBindOverwritesExistingName verifies rebinding a name replaces the
// criteria outright
func TestBindOverwritesExistingName(t *testing.T) {
	store := testStore(t)

	binder := &Binder{
		Devices: &fakeLister{devices: []Device{{Path: "/dev/ttyUSB0", Attrs: cp2102("OLD")}}},
		Store:   store,
	}
	if _, err := binder.Bind("probe1", "/dev/ttyUSB0"); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	binder.Devices = &fakeLister{devices: []Device{{Path: "/dev/ttyUSB1", Attrs: cp2102("NEW")}}}
	if _, err := binder.Bind("probe1", "/dev/ttyUSB1"); err != nil {
		t.Fatalf("rebind failed: %v", err)
	}

	stored, err := store.Get("probe1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Criteria.SerialNumber != "NEW" {
		t.Errorf("stored serial = %q, expected the rebound value", stored.Criteria.SerialNumber)
	}
}

// TestBindPropagatesEnumerationError verifies enumeration failures surface
// unchanged
func TestBindPropagatesEnumerationError(t *testing.T) {
	binder := &Binder{
		Devices: &fakeLister{err: ErrEnumeration},
		Store:   testStore(t),
	}

	_, err := binder.Bind("probe1", "/dev/ttyUSB0")
	if !errors.Is(err, ErrEnumeration) {
		t.Errorf("Expected ErrEnumeration, got %v", err)
	}
}
