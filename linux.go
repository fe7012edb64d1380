//go:build linux

package macaddrs

// platformSources prefers net-tools ifconfig and falls back to iproute2,
// which is the only tool left on many minimal distributions.
func platformSources() ([]Source, error) {
	return []Source{
		{Name: "/sbin/ifconfig", Args: []string{"-a"}, Delimiter: DelimiterColon},
		{Name: "/sbin/ip", Args: []string{"link"}, Delimiter: DelimiterColon},
	}, nil
}
