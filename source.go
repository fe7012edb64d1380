package macaddrs

import "strings"

// Source names a network configuration command and the delimiter its
// output uses between address groups.
type Source struct {
	Name      string   // executable, absolute path preferred
	Args      []string // arguments passed to Name
	Delimiter string   // character class body, see DelimiterColon
}

// String returns the command line of s.
func (s Source) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}

	return s.Name + " " + strings.Join(s.Args, " ")
}

// DefaultSources returns the commands consulted on the current platform,
// in the order they are tried.
func DefaultSources() ([]Source, error) {
	return platformSources()
}
