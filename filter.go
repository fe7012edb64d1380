package macaddrs

import "strings"

// Filter decides whether a line of command output is scanned for addresses.
// A Filter must accept any string and must not have side effects.
type Filter func(line string) bool

// virtualInterfacePrefixes lists interface name prefixes that represent
// virtual, VPN, bridge, or ephemeral interfaces.
var virtualInterfacePrefixes = []string{
	// VPN and tunnel interfaces
	"utun", "tun", "tap", "ipsec", "ppp",
	// Docker and container bridges
	"docker", "br-", "veth",
	// Virtual bridges and switches
	"virbr", "vnet", "vmnet",
	// Thunderbolt bridge (changes with docking state)
	"bridge",
	// Loopback variants
	"lo",
	// WireGuard
	"wg",
	// Parallels / VirtualBox / VMware
	"vnic", "vboxnet",
}

// AcceptAll is the default filter. It accepts every line.
func AcceptAll(string) bool {
	return true
}

// Contains returns a filter accepting lines that contain substr.
func Contains(substr string) Filter {
	return func(line string) bool {
		return strings.Contains(line, substr)
	}
}

// Not inverts f.
func Not(f Filter) Filter {
	return func(line string) bool {
		return !f(line)
	}
}

// AnyOf accepts a line when at least one of filters does.
// With no filters it rejects every line.
func AnyOf(filters ...Filter) Filter {
	return func(line string) bool {
		for _, f := range filters {
			if f(line) {
				return true
			}
		}

		return false
	}
}

// AllOf accepts a line when every one of filters does.
// With no filters it accepts every line.
func AllOf(filters ...Filter) Filter {
	return func(line string) bool {
		for _, f := range filters {
			if !f(line) {
				return false
			}
		}

		return true
	}
}

// SkipVirtualInterfaces rejects lines that start with the name of a virtual,
// VPN, bridge, or container interface, such as "docker0" or "2: veth1a2b:".
// Indented lines and lines naming physical interfaces are accepted.
//
// It suits output where the address shares the interface name line, such as
// classic ifconfig ("eth0  Link encap:Ethernet  HWaddr ...").
func SkipVirtualInterfaces(line string) bool {
	return !isVirtualInterface(interfaceName(line))
}

// interfaceName returns the interface name a line starts with, or "" when
// the line is indented. A leading "N:" index, as printed by ip link, is
// skipped and a trailing ':' is trimmed.
func interfaceName(line string) string {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return ""
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	name := fields[0]
	if len(fields) > 1 && isIndex(name) {
		name = fields[1]
	}

	return strings.TrimSuffix(name, ":")
}

func isIndex(field string) bool {
	digits := strings.TrimSuffix(field, ":")
	if digits == "" || digits == field {
		return false
	}

	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// isVirtualInterface returns true if the interface name matches a known
// virtual, VPN, or bridge prefix.
func isVirtualInterface(name string) bool {
	if name == "" {
		return false
	}

	lower := strings.ToLower(name)
	for _, prefix := range virtualInterfacePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}
