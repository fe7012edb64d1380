package macaddrs

import "strings"

// Extract returns the unique MAC addresses found in output, a command's raw
// text, whose groups are joined by delimiter. Only lines accepted by filter
// are scanned; a nil filter accepts every line. All-zero placeholder
// addresses are dropped. Addresses keep the case they have in output.
//
// Both matchers are built before any line is read, so an unusable delimiter
// fails with an [*ExtractError] wrapping a [*PatternError] and no partial
// result.
func Extract(output, delimiter string, filter Filter) (Set, error) {
	if filter == nil {
		filter = AcceptAll
	}

	addr, err := addressPattern(delimiter)
	if err != nil {
		return nil, &ExtractError{Err: err}
	}

	zero, err := zeroAddressPattern(delimiter)
	if err != nil {
		return nil, &ExtractError{Err: err}
	}

	addrs := make(Set)
	lines := strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n")

	for _, line := range lines {
		if !filter(line) {
			continue
		}

		for _, loc := range addr.FindAllStringIndex(line, -1) {
			if loc[0] == loc[1] {
				return nil, &ExtractError{Err: ErrEmptyMatch}
			}

			candidate := line[loc[0]:loc[1]]
			if zero.MatchString(candidate) {
				continue
			}

			addrs.Add(candidate)
		}
	}

	return addrs, nil
}
