package parser

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/grachmannico95/statement-reconciler/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	maxTextLength = 255
	staleYears    = 10
)

// now is replaced in tests to pin the stale-date window.
var now = time.Now

type Header struct {
	Format    Format   `json:"format"`
	Columns   []string `json:"columns"`
	Delimiter string   `json:"delimiter"`
	Valid     bool     `json:"valid"`
}

// RawPosition is one parsed data row before normalization. RowIndex is the
// 1-based number of the data row, not counting the header line.
type RawPosition struct {
	RowIndex  int              `json:"row_index"`
	Date      time.Time        `json:"date"`
	Text      string           `json:"text"`
	Amount    decimal.Decimal  `json:"amount"`
	Balance   *decimal.Decimal `json:"balance,omitempty"`
	Reference string           `json:"reference,omitempty"`
	Category  string           `json:"category,omitempty"`
	Currency  string           `json:"currency,omitempty"`
	Errors    []string         `json:"errors"`
	Warnings  []string         `json:"warnings"`
}

func (p *RawPosition) Valid() bool {
	return len(p.Errors) == 0
}

func (p *RawPosition) errorf(format string, args ...interface{}) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

func (p *RawPosition) warnf(format string, args ...interface{}) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

type Stats struct {
	TotalRows   int `json:"total_rows"`
	ValidRows   int `json:"valid_rows"`
	InvalidRows int `json:"invalid_rows"`
}

// Result is the outcome of parsing one file. File-level Errors mean nothing
// in Positions may be used; row problems live on the positions themselves.
type Result struct {
	Header    Header        `json:"header"`
	Positions []RawPosition `json:"positions"`
	Errors    []string      `json:"errors"`
	Warnings  []string      `json:"warnings"`
	Stats     Stats         `json:"stats"`
}

func newResult(format Format) *Result {
	return &Result{
		Header:    Header{Format: format},
		Positions: []RawPosition{},
		Errors:    []string{},
		Warnings:  []string{},
	}
}

// HasFileErrors reports whether the file as a whole was rejected.
func (r *Result) HasFileErrors() bool {
	return len(r.Errors) > 0
}

// ValidPositions returns the positions without row errors, in file order.
func (r *Result) ValidPositions() []RawPosition {
	out := make([]RawPosition, 0, r.Stats.ValidRows)
	for _, p := range r.Positions {
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}

// Err returns a *FileError when the file was rejected, nil otherwise.
func (r *Result) Err() error {
	if !r.HasFileErrors() {
		return nil
	}
	return &FileError{Format: r.Header.Format, Messages: r.Errors}
}

// FileError carries the file-level messages of a rejected file. It matches
// domain.ErrInvalidFile with errors.Is.
type FileError struct {
	Format   Format
	Messages []string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s file rejected: %s", e.Format, strings.Join(e.Messages, "; "))
}

func (e *FileError) Unwrap() error {
	return domain.ErrInvalidFile
}

func (r *Result) fileError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) requireColumn(name string, idx int) {
	if idx < 0 {
		r.fileError("column %q not found", name)
	}
}

func (r *Result) add(p RawPosition) {
	if p.Errors == nil {
		p.Errors = []string{}
	}
	if p.Warnings == nil {
		p.Warnings = []string{}
	}
	r.Positions = append(r.Positions, p)
}

// finish applies the checks shared by all vendors and computes the stats.
func (r *Result) finish() *Result {
	if r.HasFileErrors() {
		r.Header.Valid = false
		r.Positions = []RawPosition{}
		r.Stats = Stats{}
		return r
	}

	today := now()
	valid := 0
	for i := range r.Positions {
		p := &r.Positions[i]
		p.Text = clipText(p.Text)
		if !p.Date.IsZero() && isStale(p.Date, today) {
			p.warnf("date %s is more than %d years away from today", p.Date.Format("2006-01-02"), staleYears)
		}
		if p.Valid() {
			valid++
		}
	}

	r.Stats = Stats{
		TotalRows:   len(r.Positions),
		ValidRows:   valid,
		InvalidRows: len(r.Positions) - valid,
	}
	if valid == 0 && len(r.Positions) > 0 {
		r.Warnings = append(r.Warnings, "no valid rows found, check the file format")
	}
	return r
}

func isStale(date, today time.Time) bool {
	return date.Before(today.AddDate(-staleYears, 0, 0)) || date.After(today.AddDate(staleYears, 0, 0))
}

func clipText(s string) string {
	if utf8.RuneCountInString(s) <= maxTextLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxTextLength-1]) + "…"
}
