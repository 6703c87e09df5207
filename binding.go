package ttynamed

// Criteria is the stored subset of device attributes used to recognise
// hardware at resolution time. It never includes the /dev node.
type Criteria struct {
	VendorID     string `toml:"vendor_id,omitempty"`
	ProductID    string `toml:"product_id,omitempty"`
	SerialNumber string `toml:"serial_number,omitempty"`
	BusPath      string `toml:"bus_path,omitempty"`
}

// Matches reports whether the attributes satisfy every non-empty criteria
// field. Comparison is exact and case-sensitive; there is no partial or
// prefix matching.
func (c Criteria) Matches(attrs DeviceAttributes) bool {
	if c.VendorID != "" && c.VendorID != attrs.VendorID {
		return false
	}
	if c.ProductID != "" && c.ProductID != attrs.ProductID {
		return false
	}
	if c.SerialNumber != "" && c.SerialNumber != attrs.SerialNumber {
		return false
	}
	if c.BusPath != "" && c.BusPath != attrs.BusPath {
		return false
	}
	return true
}

// Empty reports whether no field is set. An empty criteria set would match
// every device, so the Binder refuses to create one.
func (c Criteria) Empty() bool {
	return c == Criteria{}
}

// Degraded reports that the criteria lack a serial number and rely on bus
// position instead: the binding breaks if the device moves to a different
// physical port.
func (c Criteria) Degraded() bool {
	return c.SerialNumber == ""
}

// CriteriaFromAttributes selects the criteria to store for a device. The
// (vendor, product, serial) triple is preferred since it survives replugging
// and port changes; without a serial number the bus path stands in for it.
func CriteriaFromAttributes(attrs DeviceAttributes) Criteria {
	if attrs.SerialNumber != "" {
		return Criteria{
			VendorID:     attrs.VendorID,
			ProductID:    attrs.ProductID,
			SerialNumber: attrs.SerialNumber,
		}
	}
	return Criteria{
		VendorID:  attrs.VendorID,
		ProductID: attrs.ProductID,
		BusPath:   attrs.BusPath,
	}
}

// Binding is the persistent association between a friendly name and the
// criteria recorded when it was created.
type Binding struct {
	Name     string
	Criteria Criteria
}
