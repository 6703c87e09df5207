package ttynamed

import "testing"

// TestCriteriaMatches tests the matching rule: every non-empty criteria
// field must match exactly
func TestCriteriaMatches(t *testing.T) {
	attrs := DeviceAttributes{
		VendorID:     "10c4",
		ProductID:    "ea60",
		SerialNumber: "A1B2C3",
		BusPath:      "1-1.2",
	}

	tests := []struct {
		name     string
		criteria Criteria
		expected bool
	}{
		{
			"full serial triple",
			Criteria{VendorID: "10c4", ProductID: "ea60", SerialNumber: "A1B2C3"},
			true,
		},
		{
			"positional fallback",
			Criteria{VendorID: "10c4", ProductID: "ea60", BusPath: "1-1.2"},
			true,
		},
		{
			"wrong serial",
			Criteria{VendorID: "10c4", ProductID: "ea60", SerialNumber: "XXXXXX"},
			false,
		},
		{
			"wrong port",
			Criteria{VendorID: "10c4", ProductID: "ea60", BusPath: "1-1.4"},
			false,
		},
		{
			"case sensitive",
			Criteria{VendorID: "10C4"},
			false,
		},
		{
			"no prefix matching",
			Criteria{SerialNumber: "A1B2"},
			false,
		},
		{
			"empty fields are ignored",
			Criteria{SerialNumber: "A1B2C3"},
			true,
		},
		{
			"criteria field absent on device",
			Criteria{VendorID: "10c4", SerialNumber: "A1B2C3", BusPath: "1-1.2", ProductID: "ea60"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Matches(attrs); got != tt.expected {
				t.Errorf("Matches() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

// TestCriteriaMatchesAbsentAttribute verifies a criteria field set on the
// binding but absent on the device is a mismatch
func TestCriteriaMatchesAbsentAttribute(t *testing.T) {
	criteria := Criteria{VendorID: "10c4", SerialNumber: "A1B2C3"}
	attrs := DeviceAttributes{VendorID: "10c4"} // no serial reported

	if criteria.Matches(attrs) {
		t.Error("criteria requiring a serial must not match a device without one")
	}
}

// TestCriteriaFromAttributes tests criteria selection at bind time
func TestCriteriaFromAttributes(t *testing.T) {
	t.Run("serial available", func(t *testing.T) {
		criteria := CriteriaFromAttributes(DeviceAttributes{
			VendorID:     "0403",
			ProductID:    "6010",
			SerialNumber: "FT123456",
			BusPath:      "5-2.3.1",
		})

		expected := Criteria{VendorID: "0403", ProductID: "6010", SerialNumber: "FT123456"}
		if criteria != expected {
			t.Errorf("criteria = %+v, expected %+v", criteria, expected)
		}
		if criteria.Degraded() {
			t.Error("serial-backed criteria should not be degraded")
		}
	})

	t.Run("serial absent", func(t *testing.T) {
		criteria := CriteriaFromAttributes(DeviceAttributes{
			VendorID:  "1a86",
			ProductID: "7523",
			BusPath:   "1-1.4",
		})

		expected := Criteria{VendorID: "1a86", ProductID: "7523", BusPath: "1-1.4"}
		if criteria != expected {
			t.Errorf("criteria = %+v, expected %+v", criteria, expected)
		}
		if !criteria.Degraded() {
			t.Error("positional fallback criteria should report degraded")
		}
	})
}

// TestCriteriaEmpty tests the empty check guarding against match-everything
// bindings
func TestCriteriaEmpty(t *testing.T) {
	if !(Criteria{}).Empty() {
		t.Error("zero criteria should be empty")
	}
	if (Criteria{VendorID: "10c4"}).Empty() {
		t.Error("criteria with a vendor ID should not be empty")
	}
}
