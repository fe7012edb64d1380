//go:build darwin

package macaddrs

func platformSources() ([]Source, error) {
	return []Source{
		{Name: "/sbin/ifconfig", Args: []string{"-a"}, Delimiter: DelimiterColon},
	}, nil
}
