package ttynamed

import "fmt"

// Resolver recovers the current /dev node for a friendly name by matching
// its stored criteria against a live enumeration snapshot. Each call is a
// stateless point-in-time lookup; nothing is retried.
type Resolver struct {
	Devices DeviceLister
	Store   Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{
		Devices: NewEnumerator(),
		Store:   store,
	}
}

// Resolve returns the device node the named hardware currently occupies.
// Exactly one attached device must match the stored criteria: none yields
// ErrDeviceNotPresent, several yield an *AmbiguousMatchError rather than an
// arbitrary pick.
func (r *Resolver) Resolve(name string) (string, error) {
	binding, err := r.Store.Get(name)
	if err != nil {
		return "", err
	}

	devices, err := r.Devices.Enumerate()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, dev := range devices {
		if binding.Criteria.Matches(dev.Attrs) {
			matches = append(matches, dev.Path)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrDeviceNotPresent, name)
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousMatchError{Name: name, Candidates: matches}
	}
}
