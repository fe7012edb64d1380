package macaddrs

import "sort"

// Set is an unordered collection of unique MAC address strings.
type Set map[string]struct{}

// Add inserts addr. Adding an address already present is a no-op.
func (s Set) Add(addr string) {
	s[addr] = struct{}{}
}

// Contains reports whether addr is in the set.
func (s Set) Contains(addr string) bool {
	_, ok := s[addr]
	return ok
}

// Len returns the number of addresses.
func (s Set) Len() int {
	return len(s)
}

// Slice returns the addresses in no particular order.
func (s Set) Slice() []string {
	addrs := make([]string, 0, len(s))
	for addr := range s {
		addrs = append(addrs, addr)
	}

	return addrs
}

// Sorted returns the addresses in lexical order, for stable display.
func (s Set) Sorted() []string {
	addrs := s.Slice()
	sort.Strings(addrs)

	return addrs
}
