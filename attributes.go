package ttynamed

// DeviceAttributes is an immutable snapshot of the hardware identity of one
// attached serial device. Every field is optional; an absent attribute is an
// empty string. The /dev node is deliberately not part of this set: it
// changes across replug events and must never be used to identify hardware.
type DeviceAttributes struct {
	VendorID     string // USB vendor ID, e.g. "0403"
	ProductID    string // USB product ID, e.g. "6010"
	SerialNumber string // manufacturer-programmed serial string
	BusPath      string // bus-port chain, e.g. "5-2.3.1"; stable per physical port
	Manufacturer string
	Product      string
	BusNumber    string
	DeviceNumber string
}

// AttributeSource retrieves the hardware attributes behind a device node.
// Implementations must treat missing attributes as empty strings rather
// than errors. Injectable so binding and resolution logic can be exercised
// without hardware.
type AttributeSource interface {
	Attributes(devicePath string) (DeviceAttributes, error)
}

// Device pairs a current /dev node with the attributes behind it.
type Device struct {
	Path  string
	Attrs DeviceAttributes
}
