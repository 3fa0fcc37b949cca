package parser

func parseSoldo(text string) *Result {
	tbl, res := readTable(FormatSoldo, text, 0)
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	txCol := cols.containing("transaction id", "transaktions-id")
	dateCol := cols.exact("date", "datum")
	descriptionCol := cols.exact("description", "beschreibung")
	categoryCol := cols.exact("category", "kategorie")
	cardNameCol := cols.containing("card name", "kartenname")
	cardLast4Col := cols.containing("card last 4", "letzte 4")
	amountCol := cols.exact("amount", "betrag")
	currencyCol := cols.exact("currency", "währung", "waehrung")
	statusCol := cols.exact("status")
	walletCol := cols.exact("wallet", "konto")

	res.requireColumn("Date", dateCol)
	res.requireColumn("Amount", amountCol)
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	tbl.each(func(row int, rec record) {
		if statusCol >= 0 && !equalsAny(rec.get(statusCol), "completed", "complete", "abgeschlossen") {
			return
		}

		pos := RawPosition{RowIndex: row}
		pos.parseDate(rec.get(dateCol))
		pos.Amount = pos.parseAmount(rec.get(amountCol))

		pos.Text = rec.get(descriptionCol)
		if pos.Text == "" {
			pos.Text = "Soldo transaction"
		}
		if card := rec.get(cardNameCol); card != "" {
			if last4 := rec.get(cardLast4Col); last4 != "" {
				pos.Text += " (Card: " + card + " ****" + last4 + ")"
			} else {
				pos.Text += " (Card: " + card + ")"
			}
		}

		category, wallet := rec.get(categoryCol), rec.get(walletCol)
		switch {
		case category != "" && wallet != "":
			pos.Category = category + " (" + wallet + ")"
		case category != "":
			pos.Category = category
		default:
			pos.Category = wallet
		}

		pos.Reference = rec.get(txCol)
		pos.Currency = rec.get(currencyCol)

		res.add(pos)
	})

	return res.finish()
}
