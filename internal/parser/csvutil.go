package parser

import (
	"encoding/csv"
	"strings"

	"github.com/grachmannico95/statement-reconciler/internal/locale"
	"github.com/shopspring/decimal"
)

// record is one data row; out-of-range lookups read as empty cells.
type record []string

func (r record) get(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

func (r record) blank() bool {
	for _, f := range r {
		if f != "" {
			return false
		}
	}
	return true
}

// columnSet resolves header names case-insensitively.
type columnSet struct {
	lower []string
}

// exact returns the index of the first synonym that equals a column name.
// Synonyms are tried in order, so earlier ones win.
func (c columnSet) exact(synonyms ...string) int {
	for _, s := range synonyms {
		for i, name := range c.lower {
			if name == s {
				return i
			}
		}
	}
	return -1
}

// containing returns the first column whose name contains any of parts.
func (c columnSet) containing(parts ...string) int {
	for i, name := range c.lower {
		for _, p := range parts {
			if strings.Contains(name, p) {
				return i
			}
		}
	}
	return -1
}

type table struct {
	columns columnSet
	rows    []record
}

// each calls fn for every non-blank data row with its 1-based row number.
func (t *table) each(fn func(row int, rec record)) {
	for i, rec := range t.rows {
		if rec.blank() {
			continue
		}
		fn(i+1, rec)
	}
}

func firstLine(text string) string {
	text = strings.TrimLeft(text, "\r\n")
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		return text[:idx]
	}
	return text
}

// inferDelimiter picks semicolon only when it outnumbers commas in the header.
func inferDelimiter(header string) rune {
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}

// readTable splits text into header and data rows. A zero delimiter is
// inferred from the header line. On failure the returned table is nil and the
// result already carries the file-level error.
func readTable(format Format, text string, delimiter rune) (*table, *Result) {
	res := newResult(format)

	if strings.TrimSpace(text) == "" {
		res.fileError("file is empty")
		return nil, res
	}
	if delimiter == 0 {
		delimiter = inferDelimiter(firstLine(text))
	}
	res.Header.Delimiter = string(delimiter)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		res.fileError("malformed file: %v", err)
		return nil, res
	}
	if len(records) == 0 {
		res.fileError("file has no header line")
		return nil, res
	}

	header := make([]string, len(records[0]))
	lower := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(strings.Trim(name, `"`))
		lower[i] = strings.ToLower(header[i])
	}
	res.Header.Columns = header

	rows := make([]record, 0, len(records)-1)
	for _, rec := range records[1:] {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, record(rec))
	}

	return &table{columns: columnSet{lower: lower}, rows: rows}, res
}

func equalsAny(value string, options ...string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}

func (p *RawPosition) parseDate(raw string) {
	if raw == "" {
		p.errorf("date is missing")
		return
	}
	date, ok := locale.ParseFlexibleDate(raw)
	if !ok {
		p.errorf("invalid date: %q", raw)
		return
	}
	p.Date = date
}

func (p *RawPosition) parseAmount(raw string) decimal.Decimal {
	if raw == "" {
		p.errorf("amount is missing")
		return decimal.Zero
	}
	amount, ok := locale.ParseAmountField(raw)
	if !ok {
		p.errorf("invalid amount: %q", raw)
	}
	return amount
}

// optionalAmount parses a cell that may be absent. Garbage is reported as a
// warning and treated as absent.
func (p *RawPosition) optionalAmount(name, raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	amount, ok := locale.ParseAmountField(raw)
	if !ok {
		p.warnf("ignoring unreadable %s: %q", name, raw)
		return nil
	}
	return &amount
}
