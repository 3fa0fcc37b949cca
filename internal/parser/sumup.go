package parser

import (
	"strings"

	"github.com/grachmannico95/statement-reconciler/internal/locale"
)

// parseSumUp reads SumUp transaction reports. Fees are reported per row but
// not deducted; the gross amount is booked and the fee noted as a warning.
func parseSumUp(text string) *Result {
	tbl, res := readTable(FormatSumUp, text, 0)
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	txCol := cols.containing("transaction id", "transaktions-id")
	dateCol := cols.exact("datum", "date")
	typeCol := cols.exact("typ", "type")
	methodCol := cols.containing("payment method", "zahlungsmethode")
	amountCol := cols.exact("amount", "betrag")
	feeCol := cols.exact("fee", "gebühr", "gebuhr")
	netCol := cols.containing("net amount", "nettobetrag")
	statusCol := cols.exact("status")
	descriptionCol := cols.exact("description", "beschreibung")
	customerCol := cols.containing("customer name", "kundenname")
	last4Col := cols.containing("card last 4", "letzte 4 ziffern")
	currencyCol := cols.exact("currency", "währung", "waehrung")

	res.requireColumn("Date", dateCol)
	if amountCol < 0 && netCol < 0 {
		res.fileError("neither %q nor %q column found", "Amount", "Net Amount")
	}
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	if amountCol < 0 {
		amountCol = netCol
	}

	tbl.each(func(row int, rec record) {
		if !equalsAny(rec.get(statusCol), "successful", "erfolgreich", "success") {
			return
		}

		pos := RawPosition{RowIndex: row}
		pos.parseDate(rec.get(dateCol))
		pos.Amount = pos.parseAmount(rec.get(amountCol))

		kind, method := rec.get(typeCol), rec.get(methodCol)
		pos.Text = sumUpText(rec.get(customerCol), method, rec.get(last4Col), rec.get(descriptionCol))
		if pos.Text == "" {
			pos.Text = kind
		}
		if pos.Text == "" {
			pos.Text = "SumUp transaction"
		}

		switch {
		case kind != "" && method != "":
			pos.Category = kind + " (" + method + ")"
		case method != "":
			pos.Category = method
		default:
			pos.Category = kind
		}

		pos.Reference = rec.get(txCol)
		pos.Currency = rec.get(currencyCol)

		if fee := locale.ParseFlexibleAmount(rec.get(feeCol)); !fee.IsZero() {
			pos.warnf("fee of %s not deducted", fee.StringFixed(2))
		}

		res.add(pos)
	})

	return res.finish()
}

// sumUpText builds "Customer (Method ****1234) - Description", leaving out
// whatever part is empty.
func sumUpText(customer, method, last4, description string) string {
	var b strings.Builder
	b.WriteString(customer)

	if method != "" {
		label := method
		if last4 != "" && strings.Contains(strings.ToLower(method), "card") {
			label = method + " ****" + last4
		}
		if b.Len() > 0 {
			b.WriteString(" (" + label + ")")
		} else {
			b.WriteString(label)
		}
	}

	if description != "" {
		if b.Len() > 0 {
			b.WriteString(" - ")
		}
		b.WriteString(description)
	}
	return strings.TrimSpace(b.String())
}
