package datev

import "strings"

// IsDatevShaped is a cheap check run before Decode: at least two non-empty
// lines, and a first line that is either an EXTF preamble or a semicolon
// header with at least ten columns.
func IsDatevShaped(text string) bool {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
		if len(lines) == 2 {
			break
		}
	}
	if len(lines) < 2 {
		return false
	}

	first := lines[0]
	if isExtfLine(first) {
		return true
	}
	return strings.Count(first, ";")+1 >= minRowFields
}
