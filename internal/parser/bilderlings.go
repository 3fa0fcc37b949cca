package parser

func parseBilderlings(text string) *Result {
	tbl, res := readTable(FormatBilderlings, text, ';')
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.exact("date")
	descriptionCol := cols.exact("description")
	amountCol := cols.exact("amount")
	currencyCol := cols.exact("currency")
	balanceCol := cols.exact("balance")
	referenceCol := cols.exact("reference")
	statusCol := cols.exact("status")

	res.requireColumn("Date", dateCol)
	res.requireColumn("Amount", amountCol)
	res.requireColumn("Description", descriptionCol)
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	tbl.each(func(row int, rec record) {
		if statusCol >= 0 && !equalsAny(rec.get(statusCol), "completed", "complete") {
			return
		}

		pos := RawPosition{RowIndex: row}
		pos.parseDate(rec.get(dateCol))
		pos.Amount = pos.parseAmount(rec.get(amountCol))

		pos.Text = rec.get(descriptionCol)
		if pos.Text == "" {
			pos.errorf("description is missing")
		}

		pos.Reference = rec.get(referenceCol)
		pos.Currency = rec.get(currencyCol)
		pos.Category = pos.Currency
		pos.Balance = pos.optionalAmount("balance", rec.get(balanceCol))

		res.add(pos)
	})

	return res.finish()
}
