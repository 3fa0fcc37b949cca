package parser

func parseRelio(text string) *Result {
	tbl, res := readTable(FormatRelio, text, 0)
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.containing("buchungsdatum", "booking date")
	if dateCol < 0 {
		dateCol = cols.exact("datum", "date")
	}
	valueDateCol := cols.containing("valuta", "value date")
	descriptionCol := cols.containing("buchungstext", "beschreibung", "description")
	if descriptionCol < 0 {
		descriptionCol = cols.exact("text")
	}
	amountCol := cols.exact("betrag", "amount")
	balanceCol := cols.exact("saldo", "balance")
	referenceCol := cols.containing("referenz", "reference")
	categoryCol := cols.exact("kategorie", "category")
	currencyCol := cols.exact("währung", "waehrung", "currency")

	if dateCol < 0 && valueDateCol < 0 {
		res.fileError("neither booking date nor value date column found")
	}
	res.requireColumn("Amount", amountCol)
	res.requireColumn("Description", descriptionCol)
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	tbl.each(func(row int, rec record) {
		pos := RawPosition{RowIndex: row}

		rawDate := rec.get(dateCol)
		if rawDate == "" {
			rawDate = rec.get(valueDateCol)
		}
		pos.parseDate(rawDate)
		pos.Amount = pos.parseAmount(rec.get(amountCol))

		pos.Text = rec.get(descriptionCol)
		if pos.Text == "" {
			pos.errorf("description is missing")
		}

		pos.Balance = pos.optionalAmount("balance", rec.get(balanceCol))
		pos.Reference = rec.get(referenceCol)
		pos.Category = rec.get(categoryCol)
		pos.Currency = rec.get(currencyCol)

		res.add(pos)
	})

	return res.finish()
}
