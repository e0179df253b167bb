// internal/classify/classify.go
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// StripSegments is the number of leading path segments replaced by the
// storage prefix.
const StripSegments = 6

// Mate tokens recognised by the aggregator.
const (
	Mate1 = "R_1"
	Mate2 = "R_2"
)

// filenameRE splits a FASTQ filename into chip prefix, sample-well and mate.
// The dots are wildcards on purpose: run filenames use both '.' and '_'.
var filenameRE = regexp.MustCompile(`(.*C\d{1,2}_)(S_\d).(R{1,2}_\d).fq.gz`)

// PathFormatError reports a raw file path too short to rewrite.
type PathFormatError struct {
	Path     string
	Segments int
}

func (e *PathFormatError) Error() string {
	return fmt.Sprintf("path %q has %d segments, need at least %d", e.Path, e.Segments, StripSegments)
}

// Classification is what the filename says about a row.
type Classification struct {
	Well    string // "S_<d>", empty when unmatched
	Mate    string // "R_<d>" or "RR_<d>", empty when unmatched
	Matched bool
}

// RewritePath drops the first StripSegments segments of raw and prepends prefix.
func RewritePath(raw, prefix string) (string, error) {
	parts := strings.Split(raw, "/")
	if len(parts) < StripSegments {
		return "", &PathFormatError{Path: raw, Segments: len(parts)}
	}
	return prefix + strings.Join(parts[StripSegments:], "/"), nil
}

// Classify matches the filename component of raw.
func Classify(raw string) Classification {
	m := filenameRE.FindStringSubmatch(raw[strings.LastIndexByte(raw, '/')+1:])
	if m == nil {
		return Classification{}
	}
	return Classification{Well: m[2], Mate: m[3], Matched: true}
}
