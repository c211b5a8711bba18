package vpn

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rshade/vpnmenu/internal/runner"
)

var (
	ansiPattern   = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	noticePattern = regexp.MustCompile(`(?i)new version .* is available`)
	namePattern   = regexp.MustCompile(`^[\p{L}\p{N}_.'()&-]+$`)
)

// spinnerFrames are the progress glyphs nordvpn writes before real output.
var spinnerFrames = map[string]struct{}{
	"-": {}, `\`: {}, "|": {}, "/": {},
}

// ParseList extracts the names from a countries or groups listing.
//
// The client prefixes output with a carriage-return spinner, may wrap
// names across several lines, and can interleave update notices. Names
// keep the order the client printed them in. An output that yields no
// names, or a token that cannot be a name, is reported as ErrParse.
func ParseList(output string) ([]string, error) {
	cleaned := ansiPattern.ReplaceAllString(output, "")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")

	var names []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if skipLine(line) {
			continue
		}
		for _, tok := range strings.FieldsFunc(line, isSeparator) {
			if _, spin := spinnerFrames[tok]; spin {
				continue
			}
			if !namePattern.MatchString(tok) {
				return nil, runner.ParseError("unexpected token %q in list output", tok)
			}
			names = append(names, tok)
		}
	}

	if len(names) == 0 {
		return nil, runner.ParseError("list output contained no entries")
	}
	return names, nil
}

func skipLine(line string) bool {
	switch {
	case line == "":
		return true
	case strings.HasPrefix(line, "*"):
		return true
	case strings.HasSuffix(line, ":"):
		return true
	case noticePattern.MatchString(line):
		return true
	}
	return false
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
