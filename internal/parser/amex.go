package parser

// parseAmex reads card statements where charges are positive and refunds
// negative; the sign is flipped to the ledger orientation.
func parseAmex(text string) *Result {
	tbl, res := readTable(FormatAmex, text, 0)
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.exact("date", "datum")
	descriptionCol := cols.exact("description", "beschreibung")
	memberCol := cols.containing("card member", "kartenmitglied")
	accountCol := cols.containing("account", "kontonummer")
	amountCol := cols.exact("amount", "betrag")

	res.requireColumn("Date", dateCol)
	res.requireColumn("Amount", amountCol)
	res.requireColumn("Description", descriptionCol)
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	tbl.each(func(row int, rec record) {
		pos := RawPosition{RowIndex: row}
		pos.parseDate(rec.get(dateCol))
		pos.Amount = pos.parseAmount(rec.get(amountCol)).Neg()

		description := rec.get(descriptionCol)
		member := rec.get(memberCol)
		switch {
		case description == "":
			pos.errorf("description is missing")
		case member != "":
			pos.Text = description + " (" + member + ")"
		default:
			pos.Text = description
		}

		pos.Reference = rec.get(accountCol)
		pos.Category = member

		res.add(pos)
	})

	return res.finish()
}
