package parser

import "strings"

type detector struct {
	format Format
	match  func(header, lower string) bool
}

// detectors run in priority order. A header that satisfies several
// predicates belongs to the earliest one: VR Bank headers also satisfy the
// Relio predicate, Soldo and SumUp headers also satisfy the PayPal one.
var detectors = []detector{
	{FormatVRBank, func(header, _ string) bool {
		return strings.Contains(header, "Bezeichnung Auftragskonto") &&
			strings.Contains(header, "IBAN Auftragskonto") &&
			strings.Contains(header, ";")
	}},
	{FormatBilderlings, func(_, lower string) bool {
		return containsAll(lower, "date", "time", "balance", "reference", ";")
	}},
	{FormatKingdom, func(_, lower string) bool {
		return containsAll(lower, "debit", "credit", "balance")
	}},
	{FormatAmex, func(_, lower string) bool {
		return containsAny(lower, "card member", "kartenmitglied")
	}},
	{FormatSoldo, func(_, lower string) bool {
		return containsAny(lower, "card name", "kartenname") &&
			containsAny(lower, "wallet", "konto")
	}},
	{FormatSumUp, func(_, lower string) bool {
		return containsAny(lower, "transaction id", "transaktions-id") &&
			containsAny(lower, "datum", "date") &&
			containsAny(lower, "amount", "betrag")
	}},
	{FormatPayPal, func(_, lower string) bool {
		return containsAny(lower, "datum", "date") &&
			containsAny(lower, "transaktionscode", "transaction id") &&
			containsAny(lower, "brutto", "gross", "netto", "net")
	}},
	{FormatRelio, func(_, lower string) bool {
		return containsAny(lower, "buchungsdatum", "booking date", "valuta", "value date") &&
			containsAny(lower, "betrag", "amount") &&
			containsAny(lower, "saldo", "balance")
	}},
	{FormatQonto, func(_, lower string) bool {
		return (containsAny(lower, "settled_at", "emitted_at") || containsAll(lower, "date", "label")) &&
			containsAny(lower, "local_amount", "amount")
	}},
}

// Detect classifies a decoded file by its header line. Only the first line
// is inspected.
func Detect(text string) Format {
	header := firstLine(strings.TrimPrefix(text, "\ufeff"))
	if strings.TrimSpace(header) == "" {
		return FormatUnknown
	}
	lower := strings.ToLower(header)

	for _, d := range detectors {
		if d.match(header, lower) {
			return d.format
		}
	}
	return FormatUnknown
}

// Matching lists every format whose predicate accepts the header, in
// priority order. Detect returns the first entry.
func Matching(text string) []Format {
	header := firstLine(strings.TrimPrefix(text, "\ufeff"))
	lower := strings.ToLower(header)

	var out []Format
	for _, d := range detectors {
		if d.match(header, lower) {
			out = append(out, d.format)
		}
	}
	return out
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

func containsAny(s string, parts ...string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
