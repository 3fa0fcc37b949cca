package parser

// parsePayPal reads PayPal activity downloads. Only completed transactions are
// kept; the gross column is preferred over net.
func parsePayPal(text string) *Result {
	tbl, res := readTable(FormatPayPal, text, 0)
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.exact("datum", "date")
	nameCol := cols.exact("name")
	typeCol := cols.exact("typ", "type")
	statusCol := cols.exact("status")
	grossCol := cols.exact("brutto", "gross")
	netCol := cols.exact("netto", "net")
	currencyCol := cols.exact("währung", "waehrung", "currency")
	txCol := cols.containing("transaktionscode", "transaction id", "transaktions-id")

	res.requireColumn("Date", dateCol)
	if grossCol < 0 && netCol < 0 {
		res.fileError("neither %q nor %q column found", "Gross", "Net")
	}
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	amountCol := grossCol
	if amountCol < 0 {
		amountCol = netCol
	}

	tbl.each(func(row int, rec record) {
		if !equalsAny(rec.get(statusCol), "completed", "abgeschlossen") {
			return
		}

		pos := RawPosition{RowIndex: row}
		pos.parseDate(rec.get(dateCol))
		pos.Amount = pos.parseAmount(rec.get(amountCol))

		name, kind := rec.get(nameCol), rec.get(typeCol)
		pos.Text = name
		if kind != "" {
			pos.Text = name + " (" + kind + ")"
		}
		if pos.Text == "" {
			pos.errorf("name is missing")
		}

		pos.Reference = rec.get(txCol)
		pos.Category = kind
		pos.Currency = rec.get(currencyCol)

		res.add(pos)
	})

	return res.finish()
}
