// Package datev reads and writes DATEV EXTF booking batches
// ("Buchungsstapel"): a metadata preamble line, a column header line and
// semicolon separated booking rows.
//
// The preamble is decoded by structural predicates over bounded field
// windows instead of fixed offsets. Accepted layouts are EXTF 510 as written
// by Encode and the EXTF 700 series; a field whose predicate finds nothing
// stays empty.
package datev

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/locale"
)

const extfTag = "EXTF"

var (
	advisorPattern = regexp.MustCompile(`^\d{4,7}$`)
	clientPattern  = regexp.MustCompile(`^\d{1,5}$`)
	monthPattern   = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	eightDigits    = regexp.MustCompile(`^\d{8}$`)
	numeric        = regexp.MustCompile(`^\d+$`)
)

// field windows, half-open [from, to)
var (
	advisorWindow    = [2]int{6, 12}
	fiscalYearWindow = [2]int{8, 14}
	periodWindow     = [2]int{12, 20}
)

type Header struct {
	IsExtf          bool       `json:"is_extf"`
	Version         string     `json:"version,omitempty"`
	Category        string     `json:"category,omitempty"`
	AdvisorNumber   string     `json:"advisor_number,omitempty"`
	ClientNumber    string     `json:"client_number,omitempty"`
	FiscalYearStart int        `json:"fiscal_year_start,omitempty"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
}

// ReferenceYear is the fallback year for DDMM row dates.
func (h Header) ReferenceYear() int {
	if h.From != nil {
		return h.From.Year()
	}
	return 0
}

// RowDate resolves a DDMM or DDMMYYYY row date. A DDMM date gets the first
// year of the header period that places it inside [From, To]; without such a
// year it falls back to ReferenceYear.
func (h Header) RowDate(raw string) (time.Time, bool) {
	date, ok := locale.ParseFixedDate(raw, h.ReferenceYear())
	if !ok || h.From == nil || h.To == nil {
		return date, ok
	}

	from, to := domain.CalendarDay(*h.From), domain.CalendarDay(*h.To)
	for year := from.Year(); year <= to.Year(); year++ {
		candidate, ok := locale.ParseFixedDate(raw, year)
		if ok && !candidate.Before(from) && !candidate.After(to) {
			return candidate, true
		}
	}
	return date, true
}

func decodeHeader(fields []string) Header {
	h := Header{IsExtf: true}
	fields = unquoteAll(fields)

	if len(fields) > 1 {
		h.Version = fields[1]
	}
	for i := 2; i < len(fields) && i < 5; i++ {
		if fields[i] != "" && !numeric.MatchString(fields[i]) {
			h.Category = fields[i]
			break
		}
	}

	taken := map[int]bool{}
	for i := advisorWindow[0]; i < advisorWindow[1] && i < len(fields); i++ {
		if advisorPattern.MatchString(fields[i]) {
			h.AdvisorNumber = fields[i]
			taken[i] = true
			if i+1 < len(fields) && clientPattern.MatchString(fields[i+1]) {
				h.ClientNumber = fields[i+1]
				taken[i+1] = true
			}
			break
		}
	}

	for i := fiscalYearWindow[0]; i < fiscalYearWindow[1] && i < len(fields); i++ {
		if taken[i] {
			continue
		}
		if monthPattern.MatchString(fields[i]) {
			h.FiscalYearStart, _ = strconv.Atoi(fields[i])
			break
		}
		if t, ok := parseHeaderDate(fields[i]); ok {
			h.FiscalYearStart = int(t.Month())
			taken[i] = true
			break
		}
	}

	for i := periodWindow[0]; i+1 < periodWindow[1] && i+1 < len(fields); i++ {
		if taken[i] {
			continue
		}
		from, ok := parseHeaderDate(fields[i])
		if !ok {
			continue
		}
		to, ok := parseHeaderDate(fields[i+1])
		if !ok || to.Before(from) {
			continue
		}
		h.From, h.To = &from, &to
		break
	}

	return h
}

// parseHeaderDate accepts DDMMYYYY and YYYYMMDD.
func parseHeaderDate(s string) (time.Time, bool) {
	if !eightDigits.MatchString(s) {
		return time.Time{}, false
	}
	if t, ok := locale.ParseFixedDate(s, 0); ok {
		return t, true
	}
	t, err := time.Parse("20060102", s)
	if err != nil || t.Year() < 1900 || t.Year() > 2100 {
		return time.Time{}, false
	}
	return t, true
}

func isExtfLine(line string) bool {
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	return strings.HasPrefix(line, extfTag) || strings.HasPrefix(line, `"`+extfTag+`"`)
}

func unquoteAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(strings.Trim(strings.TrimSpace(f), `"`))
	}
	return out
}
