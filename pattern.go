package macaddrs

import (
	"fmt"
	"regexp"
)

// Delimiters understood by the platform sources. Each is the body of a
// regular expression character class, so a hyphen has to be escaped.
const (
	// DelimiterColon joins groups in ifconfig and ip output, e.g. 10:7b:44:8e:84:a5.
	DelimiterColon = ":"
	// DelimiterHyphen joins groups in getmac output, e.g. 10-7B-44-8E-84-A5.
	DelimiterHyphen = `\-`
)

// addressPattern compiles the general MAC address shape for delimiter:
// six groups of two alphanumerics, the first five followed by the delimiter.
// The pattern is unanchored so it matches inside labelled lines.
func addressPattern(delimiter string) (*regexp.Regexp, error) {
	return compileDelimited(`([A-Za-z0-9]{2}[%s]){5}[A-Za-z0-9]{2}`, delimiter)
}

// zeroAddressPattern compiles the all-zero placeholder shape for delimiter.
func zeroAddressPattern(delimiter string) (*regexp.Regexp, error) {
	return compileDelimited(`(0{2}[%s]){5}0{2}`, delimiter)
}

func compileDelimited(format, delimiter string) (*regexp.Regexp, error) {
	if delimiter == "" {
		return nil, &PatternError{Delimiter: delimiter, Err: ErrEmptyDelimiter}
	}

	re, err := regexp.Compile(fmt.Sprintf(format, delimiter))
	if err != nil {
		return nil, &PatternError{Delimiter: delimiter, Err: err}
	}

	return re, nil
}
