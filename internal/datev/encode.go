package datev

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/locale"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	formatVersion  = 510
	formatCategory = 16
	categoryName   = "Buchungsstapel"
	categoryRev    = 1
	accountLength  = 4
)

// Metadata fills the EXTF preamble.
type Metadata struct {
	AdvisorNumber   string
	ClientNumber    string
	FiscalYearStart int
	From            time.Time
	To              time.Time
	ExportedBy      string
	CreatedAt       time.Time
}

// row is one booking line; the csv tags are the fixed column header.
type row struct {
	Amount         string `csv:"Umsatz (ohne Soll/Haben-Kz)"`
	DebitCredit    string `csv:"Soll/Haben-Kennzeichen"`
	Currency       string `csv:"WKZ Umsatz"`
	Rate           string `csv:"Kurs"`
	BaseAmount     string `csv:"Basis-Umsatz"`
	BaseCurrency   string `csv:"WKZ Basis-Umsatz"`
	Account        string `csv:"Konto"`
	ContraAccount  string `csv:"Gegenkonto (ohne BU-Schlüssel)"`
	PostingKey     string `csv:"BU-Schlüssel"`
	Date           string `csv:"Belegdatum"`
	DocumentNumber string `csv:"Belegfeld 1"`
	DocumentField2 string `csv:"Belegfeld 2"`
	Discount       string `csv:"Skonto"`
	Text           string `csv:"Buchungstext"`
}

// FlagFor returns the Soll/Haben marker written for b. An explicit flag on
// the booking wins; otherwise accounts starting with 4 to 7 are credited.
// The fallback follows the SKR 03/04 layouts and is not valid for every
// chart of accounts.
func FlagFor(b domain.Booking) domain.DebitCredit {
	if b.DebitCredit == domain.Debit || b.DebitCredit == domain.Credit {
		return b.DebitCredit
	}
	account := strings.TrimSpace(b.Account)
	if account != "" && account[0] >= '4' && account[0] <= '7' {
		return domain.Credit
	}
	return domain.Debit
}

// Encode writes bookings as an EXTF batch.
func Encode(w io.Writer, bookings []domain.Booking, meta Metadata) error {
	if _, err := io.WriteString(w, preamble(meta)+"\r\n"); err != nil {
		return fmt.Errorf("write preamble: %w", err)
	}

	rows := make([]row, 0, len(bookings))
	for _, b := range bookings {
		currency := b.Currency
		if currency == "" {
			currency = "EUR"
		}
		rows = append(rows, row{
			Amount:         locale.FormatGermanAmount(b.Gross.Abs()),
			DebitCredit:    string(FlagFor(b)),
			Currency:       currency,
			BaseAmount:     locale.FormatGermanAmount(b.Net.Abs()),
			BaseCurrency:   currency,
			Account:        b.Account,
			ContraAccount:  b.ContraAccount,
			PostingKey:     b.PostingKey,
			Date:           locale.FormatFixedDate(b.Date),
			DocumentNumber: b.DocumentNumber,
			Text:           b.Text,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = ';'
	csvWriter.UseCRLF = true

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("write bookings: %w", err)
	}
	return nil
}

// EncodeString is Encode into a string.
func EncodeString(bookings []domain.Booking, meta Metadata) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, bookings, meta); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWindows1252 converts an encoded batch to the code page DATEV imports
// expect. Characters outside the code page are replaced.
func ToWindows1252(content string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, err := enc.Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("convert to windows-1252: %w", err)
	}
	return out, nil
}

func preamble(meta Metadata) string {
	created := meta.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	exportedBy := meta.ExportedBy
	if exportedBy == "" {
		exportedBy = "statement-reconciler"
	}

	fiscalYear := ""
	if meta.FiscalYearStart >= 1 && meta.FiscalYearStart <= 12 {
		year := meta.From.Year()
		if meta.From.IsZero() {
			year = created.Year()
		}
		fiscalYear = time.Date(year, time.Month(meta.FiscalYearStart), 1, 0, 0, 0, 0, time.UTC).Format("20060102")
	}

	fields := []string{
		quote(extfTag),
		fmt.Sprint(formatVersion),
		quote(categoryName),
		fmt.Sprint(formatCategory),
		fmt.Sprint(categoryRev),
		locale.FormatFixedDateLong(created),
		"",
		quote("RE"),
		quote(exportedBy),
		"",
		meta.AdvisorNumber,
		meta.ClientNumber,
		fiscalYear,
		fmt.Sprint(accountLength),
		fixedDateOrEmpty(meta.From),
		fixedDateOrEmpty(meta.To),
	}
	return strings.Join(fields, ";")
}

func fixedDateOrEmpty(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return locale.FormatFixedDateLong(t)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
