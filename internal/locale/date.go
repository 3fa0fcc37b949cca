package locale

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dottedDate = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	slashDate  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	isoDate    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	nonDigits  = regexp.MustCompile(`\D`)
)

// CommonFormats is the fallback list tried after the explicit day-first and
// ISO notations did not match. US month-first dates land here when the
// day-first reading is not a real calendar date.
var CommonFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"2006/01/02",
	"02.01.06",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2-Jan-2006",
	"02-Jan-2006",
	"02-Jan-06",
	"January 2, 2006",
}

// ParseFlexibleDate tries DD.MM.YYYY, DD/MM/YYYY and YYYY-MM-DD, then the
// CommonFormats list. The result is the calendar day at midnight UTC.
func ParseFlexibleDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}

	if m := dottedDate.FindStringSubmatch(s); m != nil {
		if t, ok := calendarDate(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := slashDate.FindStringSubmatch(s); m != nil {
		if t, ok := calendarDate(m[3], m[2], m[1]); ok {
			return t, true
		}
	}
	if m := isoDate.FindStringSubmatch(s); m != nil {
		return calendarDate(m[1], m[2], m[3])
	}

	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, s); err == nil {
			y, mo, d := t.Date()
			return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ParseFixedDate decodes the digit-only dates used by DATEV: DDMM (year taken
// from referenceYear, or the current year when referenceYear is zero) and
// DDMMYYYY with a year between 1900 and 2100.
func ParseFixedDate(text string, referenceYear int) (time.Time, bool) {
	digits := nonDigits.ReplaceAllString(text, "")

	var day, month, year string
	switch len(digits) {
	case 4:
		if referenceYear == 0 {
			referenceYear = time.Now().Year()
		}
		day, month, year = digits[0:2], digits[2:4], strconv.Itoa(referenceYear)
	case 8:
		day, month, year = digits[0:2], digits[2:4], digits[4:8]
		if y, _ := strconv.Atoi(year); y < 1900 || y > 2100 {
			return time.Time{}, false
		}
	default:
		return time.Time{}, false
	}

	return calendarDate(year, month, day)
}

// FormatFixedDate renders t as DDMM.
func FormatFixedDate(t time.Time) string {
	return t.Format("0201")
}

// FormatFixedDateLong renders t as DDMMYYYY.
func FormatFixedDateLong(t time.Time) string {
	return t.Format("02012006")
}

func calendarDate(year, month, day string) (time.Time, bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return time.Time{}, false
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m {
		return time.Time{}, false
	}
	return t, true
}
