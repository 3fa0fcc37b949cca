package datev

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/locale"
	"github.com/shopspring/decimal"
)

const minRowFields = 10

// Record is one decoded booking row. RowIndex counts data rows from 1.
type Record struct {
	RowIndex       int                `json:"row_index"`
	Amount         decimal.Decimal    `json:"amount"`
	DebitCredit    domain.DebitCredit `json:"debit_credit"`
	Currency       string             `json:"currency"`
	Account        string             `json:"account"`
	ContraAccount  string             `json:"contra_account"`
	PostingKey     string             `json:"posting_key,omitempty"`
	Date           time.Time          `json:"date"`
	DocumentNumber string             `json:"document_number"`
	Discount       *decimal.Decimal   `json:"discount,omitempty"`
	Text           string             `json:"text"`
	Errors         []string           `json:"errors"`
	Warnings       []string           `json:"warnings"`
}

func (r *Record) Valid() bool {
	return len(r.Errors) == 0
}

type Stats struct {
	TotalRows   int             `json:"total_rows"`
	ValidRows   int             `json:"valid_rows"`
	InvalidRows int             `json:"invalid_rows"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type DecodeResult struct {
	Header   Header   `json:"header"`
	Columns  []string `json:"columns"`
	Records  []Record `json:"records"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Stats    Stats    `json:"stats"`
}

// ValidRecords returns the records without row errors.
func (r *DecodeResult) ValidRecords() []Record {
	out := make([]Record, 0, r.Stats.ValidRows)
	for _, rec := range r.Records {
		if rec.Valid() {
			out = append(out, rec)
		}
	}
	return out
}

// Decode parses an EXTF batch or a plain semicolon export whose first line
// is the column header.
func Decode(text string) *DecodeResult {
	res := &DecodeResult{
		Records:  []Record{},
		Errors:   []string{},
		Warnings: []string{},
	}

	if strings.TrimSpace(text) == "" {
		res.Errors = append(res.Errors, "file is empty")
		return res
	}

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, "\ufeff")))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	lines, err := reader.ReadAll()
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("malformed file: %v", err))
		return res
	}

	dataStart := 1
	if len(lines) > 0 && len(lines[0]) > 0 && isExtfLine(lines[0][0]) {
		res.Header = decodeHeader(lines[0])
		dataStart = 2
	}
	if len(lines) < dataStart {
		res.Errors = append(res.Errors, "column header line is missing")
		return res
	}
	res.Columns = unquoteAll(lines[dataStart-1])

	total := decimal.Zero

	for i := dataStart; i < len(lines); i++ {
		row := i + 1 - dataStart
		fields := unquoteAll(lines[i])

		if len(fields) < minRowFields {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d has only %d fields, skipped", row, len(fields)))
			continue
		}

		rec := decodeRecord(row, fields, res.Header)
		if rec.Valid() {
			total = total.Add(rec.Amount)
		}
		res.Records = append(res.Records, rec)
	}

	valid := 0
	for _, rec := range res.Records {
		if rec.Valid() {
			valid++
		}
	}
	res.Stats = Stats{
		TotalRows:   len(res.Records),
		ValidRows:   valid,
		InvalidRows: len(res.Records) - valid,
		TotalAmount: total,
	}
	return res
}

func decodeRecord(row int, fields []string, header Header) Record {
	rec := Record{
		RowIndex: row,
		Errors:   []string{},
		Warnings: []string{},
	}
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	fail := func(format string, args ...interface{}) {
		rec.Errors = append(rec.Errors, fmt.Sprintf(format, args...))
	}
	warn := func(format string, args ...interface{}) {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf(format, args...))
	}

	if amount, ok := locale.ParseGermanAmount(get(0)); ok && !amount.IsZero() {
		rec.Amount = amount
	} else {
		fail("invalid amount: %q", get(0))
	}

	switch flag := domain.DebitCredit(strings.ToUpper(get(1))); flag {
	case domain.Debit, domain.Credit:
		rec.DebitCredit = flag
	default:
		fail("invalid debit/credit flag: %q", get(1))
	}

	rec.Currency = get(2)
	if rec.Currency == "" {
		rec.Currency = "EUR"
	}

	rec.Account = get(6)
	if !numeric.MatchString(rec.Account) {
		fail("invalid account: %q", rec.Account)
	}
	rec.ContraAccount = get(7)
	if !numeric.MatchString(rec.ContraAccount) {
		fail("invalid contra account: %q", rec.ContraAccount)
	}
	rec.PostingKey = get(8)

	if date, ok := header.RowDate(get(9)); ok {
		rec.Date = date
	} else {
		fail("invalid document date: %q", get(9))
	}

	rec.DocumentNumber = get(10)
	if rec.DocumentNumber == "" {
		rec.DocumentNumber = get(11)
	}
	if rec.DocumentNumber == "" {
		rec.DocumentNumber = strconv.Itoa(row)
		warn("document number missing, using row number %d", row)
	}

	if raw := get(12); raw != "" {
		if discount, ok := locale.ParseGermanAmount(raw); ok {
			rec.Discount = &discount
		}
	}

	rec.Text = get(13)
	if rec.Text == "" {
		warn("booking text missing")
	}

	return rec
}
