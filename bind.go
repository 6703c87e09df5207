package ttynamed

import "fmt"

// Binder captures the identity of a currently attached device and records
// it under a friendly name.
type Binder struct {
	Devices DeviceLister
	Store   Store
}

func NewBinder(store Store) *Binder {
	return &Binder{
		Devices: NewEnumerator(),
		Store:   store,
	}
}

// Bind records the identifying attributes of the device currently at
// devicePath under name, overwriting any previous binding with that name.
// The stored criteria prefer the (vendor, product, serial) triple; devices
// without a serial number fall back on bus position, reported through
// Criteria.Degraded so the caller can warn about port-dependence.
func (b *Binder) Bind(name, devicePath string) (Binding, error) {
	devices, err := b.Devices.Enumerate()
	if err != nil {
		return Binding{}, err
	}

	var found *Device
	for i := range devices {
		if devices[i].Path == devicePath {
			found = &devices[i]
			break
		}
	}
	if found == nil {
		return Binding{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, devicePath)
	}

	criteria := CriteriaFromAttributes(found.Attrs)
	if criteria.Empty() {
		// Nothing to match on later; binding it would match every device.
		return Binding{}, fmt.Errorf("%w: %s reports no identifying attributes", ErrDeviceNotFound, devicePath)
	}

	binding := Binding{Name: name, Criteria: criteria}
	if err := b.Store.Put(binding); err != nil {
		return Binding{}, err
	}
	return binding, nil
}
