//go:build windows

package macaddrs

import (
	"os"
	"path/filepath"
)

// platformSources locates getmac.exe under %SystemRoot%\System32. getmac
// prints addresses as 10-7B-44-8E-84-A5.
func platformSources() ([]Source, error) {
	root, ok := os.LookupEnv("SystemRoot")
	if !ok || root == "" {
		return nil, ErrSystemRootUnset
	}

	return []Source{
		{Name: filepath.Join(root, "System32", "getmac.exe"), Delimiter: DelimiterHyphen},
	}, nil
}
