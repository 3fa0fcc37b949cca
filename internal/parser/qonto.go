package parser

import (
	"github.com/grachmannico95/statement-reconciler/internal/locale"
)

func parseQonto(text string) *Result {
	tbl, res := readTable(FormatQonto, text, 0)
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.exact("settled_at", "emitted_at", "date", "datum")
	labelCol := cols.exact("label", "description", "beschreibung")
	amountCol := cols.exact("local_amount", "amount", "betrag")
	statusCol := cols.exact("status", "transaction_status")
	categoryCol := cols.exact("category", "kategorie")
	referenceCol := cols.exact("reference", "transaction_id", "id")
	vatCol := cols.exact("vat_amount", "vat", "mwst")
	currencyCol := cols.exact("local_currency", "currency")

	res.requireColumn("Date", dateCol)
	res.requireColumn("Amount", amountCol)
	if res.HasFileErrors() {
		return res.finish()
	}
	res.Header.Valid = true

	tbl.each(func(row int, rec record) {
		if statusCol >= 0 && !equalsAny(rec.get(statusCol), "completed", "settled", "abgeschlossen", "") {
			return
		}

		pos := RawPosition{RowIndex: row}
		pos.parseDate(rec.get(dateCol))
		pos.Amount = pos.parseAmount(rec.get(amountCol))

		pos.Text = rec.get(labelCol)
		if pos.Text == "" {
			pos.Text = "Qonto transaction"
		}
		pos.Category = rec.get(categoryCol)
		pos.Reference = rec.get(referenceCol)
		pos.Currency = rec.get(currencyCol)

		if vat := locale.ParseFlexibleAmount(rec.get(vatCol)); !vat.IsZero() {
			pos.warnf("VAT amount %s reported", vat.StringFixed(2))
		}

		res.add(pos)
	})

	return res.finish()
}
