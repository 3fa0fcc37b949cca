package parser

import (
	"github.com/grachmannico95/statement-reconciler/internal/locale"
)

// parseVRBank reads the semicolon export of the Volks- und Raiffeisenbanken.
// Amounts are signed German numbers, dates DD.MM.YYYY.
func parseVRBank(text string) *Result {
	tbl, res := readTable(FormatVRBank, text, ';')
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.exact("buchungstag")
	purposeCol := cols.exact("verwendungszweck")
	bookingTextCol := cols.exact("buchungstext")
	amountCol := cols.exact("betrag")
	partyCol := cols.exact("name zahlungsbeteiligter")
	categoryCol := cols.exact("kategorie")
	balanceCol := cols.exact("saldo nach buchung")
	currencyCol := cols.exact("waehrung", "währung")

	res.requireColumn("Buchungstag", dateCol)
	res.requireColumn("Betrag", amountCol)
	if purposeCol < 0 && bookingTextCol < 0 {
		res.fileError("neither %q nor %q column found", "Verwendungszweck", "Buchungstext")
	}
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	tbl.each(func(row int, rec record) {
		pos := RawPosition{RowIndex: row}

		raw := rec.get(dateCol)
		if date, ok := locale.ParseFixedDate(raw, 0); ok && len(raw) >= 8 {
			pos.Date = date
		} else {
			pos.parseDate(raw)
		}

		rawAmount := rec.get(amountCol)
		if amount, ok := locale.ParseGermanAmount(rawAmount); ok {
			pos.Amount = amount
		} else if rawAmount == "" {
			pos.errorf("amount is missing")
		} else {
			pos.errorf("invalid amount: %q", rawAmount)
		}

		pos.Text = rec.get(purposeCol)
		if pos.Text == "" {
			pos.Text = rec.get(bookingTextCol)
		}
		if pos.Text == "" {
			pos.errorf("booking text is missing")
		}

		pos.Reference = rec.get(partyCol)
		pos.Category = rec.get(categoryCol)
		pos.Currency = rec.get(currencyCol)
		if raw := rec.get(balanceCol); raw != "" {
			if balance, ok := locale.ParseGermanAmount(raw); ok {
				pos.Balance = &balance
			}
		}

		res.add(pos)
	})

	return res.finish()
}
