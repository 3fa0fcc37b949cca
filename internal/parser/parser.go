package parser

import (
	"fmt"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
)

// Parse detects the vendor of text and runs its parser. Unknown files fail
// with domain.ErrUnsupportedFormat; nothing is parsed for them.
func Parse(text string) (*Result, error) {
	format := Detect(text)
	if format == FormatUnknown {
		return nil, domain.ErrUnsupportedFormat
	}
	return ParseAs(format, text)
}

// ParseAs runs the parser of an explicitly chosen format.
func ParseAs(format Format, text string) (*Result, error) {
	fn, ok := Lookup(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return fn(text), nil
}
