// Package parser recognizes vendor statement exports and turns them into raw
// positions. Every supported vendor is a Format tag bound to one ParseFunc.
package parser

import (
	"github.com/grachmannico95/statement-reconciler/internal/domain"
)

type Format string

const (
	FormatUnknown     Format = "unknown"
	FormatVRBank      Format = "vr_bank"
	FormatBilderlings Format = "bilderlings"
	FormatKingdom     Format = "kingdom_bank"
	FormatAmex        Format = "amex"
	FormatSoldo       Format = "soldo"
	FormatSumUp       Format = "sumup"
	FormatPayPal      Format = "paypal"
	FormatRelio       Format = "relio"
	FormatQonto       Format = "qonto"
)

// ParseFunc parses a decoded statement file of one format.
type ParseFunc func(text string) *Result

var parsers = map[Format]ParseFunc{
	FormatVRBank:      parseVRBank,
	FormatBilderlings: parseBilderlings,
	FormatKingdom:     parseKingdom,
	FormatAmex:        parseAmex,
	FormatSoldo:       parseSoldo,
	FormatSumUp:       parseSumUp,
	FormatPayPal:      parsePayPal,
	FormatRelio:       parseRelio,
	FormatQonto:       parseQonto,
}

// Lookup returns the parser bound to format.
func Lookup(format Format) (ParseFunc, bool) {
	fn, ok := parsers[format]
	return fn, ok
}

// Formats lists the supported formats in detection priority order.
func Formats() []Format {
	out := make([]Format, len(detectors))
	for i, d := range detectors {
		out[i] = d.format
	}
	return out
}

// StatementKind suggests the statement kind a file of this format belongs to.
func (f Format) StatementKind() domain.StatementKind {
	switch f {
	case FormatAmex, FormatSoldo:
		return domain.StatementKindCard
	case FormatPayPal, FormatSumUp:
		return domain.StatementKindPaymentProcessor
	default:
		return domain.StatementKindBankAccount
	}
}

func (f Format) String() string {
	return string(f)
}
