// Package ttynamed resolves user-assigned friendly names to the current
// filesystem handle of a USB serial device.
//
// The kernel hands out serial device nodes (/dev/ttyUSB0, /dev/ttyUSB1, ...)
// in whatever order devices enumerate, so the same physical adapter can land
// on a different node after every replug. ttynamed records the stable,
// hardware-derived identity of a device under a name of your choosing and
// recovers the live node from that identity at lookup time.
//
// # Basic Usage
//
// Bind a name to the device currently at a node, then resolve it later:
//
//	store := ttynamed.NewFileStore(path)
//
//	binder := ttynamed.NewBinder(store)
//	binding, err := binder.Bind("probe1", "/dev/ttyUSB0")
//
//	resolver := ttynamed.NewResolver(store)
//	device, err := resolver.Resolve("probe1")
//	// device is the node the hardware currently occupies, e.g. /dev/ttyUSB3
//
// # Identity Model
//
// A binding stores matching criteria, never the device node itself. The
// preferred criteria set is the (vendor ID, product ID, serial number)
// triple, which survives replugging and port changes. Devices without a
// serial number fall back on (vendor ID, product ID, bus path); such a
// binding is tied to the physical port and Criteria.Degraded reports it.
//
// # Attribute Sources
//
// Hardware identity is read through the AttributeSource interface. The
// default SysfsSource walks /sys/class/tty; UdevadmSource queries the udev
// property database instead. Both tolerate missing attributes. Resolution
// logic is independent of the source, so tests run against fabricated
// device sets.
//
// # Error Handling
//
// Every failure mode has a sentinel for errors.Is checks:
//
//	var (
//	    ErrEnumeration      // the device layer could not be queried
//	    ErrDeviceNotFound   // bind target is not an attached USB serial device
//	    ErrNameNotBound     // no binding stored under that name
//	    ErrDeviceNotPresent // binding exists, device is unplugged
//	    ErrAmbiguousMatch   // more than one attached device matches
//	)
//
// An ambiguous match additionally carries the conflicting candidates in an
// *AmbiguousMatchError, retrievable with errors.As.
//
// # Platform Support
//
// Linux only: enumeration and identity extraction rely on /dev, sysfs and
// udev.
package ttynamed
