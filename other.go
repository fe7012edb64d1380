//go:build !linux && !darwin && !windows

package macaddrs

// platformSources covers the BSDs and other Unix systems, all of which ship
// ifconfig in /sbin.
func platformSources() ([]Source, error) {
	return []Source{
		{Name: "/sbin/ifconfig", Args: []string{"-a"}, Delimiter: DelimiterColon},
	}, nil
}
