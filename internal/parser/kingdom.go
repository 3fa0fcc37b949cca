package parser

import (
	"github.com/grachmannico95/statement-reconciler/internal/locale"
	"github.com/shopspring/decimal"
)

// parseKingdom reads exports with separate debit and credit columns, both
// unsigned. A positive credit is an inflow, otherwise the debit is an outflow.
func parseKingdom(text string) *Result {
	tbl, res := readTable(FormatKingdom, text, ',')
	if tbl == nil {
		return res.finish()
	}

	cols := tbl.columns
	dateCol := cols.exact("date")
	valueDateCol := cols.exact("value date")
	descriptionCol := cols.exact("description")
	referenceCol := cols.exact("reference")
	debitCol := cols.exact("debit")
	creditCol := cols.exact("credit")
	balanceCol := cols.exact("balance")

	res.requireColumn("Date", dateCol)
	if debitCol < 0 || creditCol < 0 {
		res.fileError("columns %q and %q are both required", "Debit", "Credit")
	}
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
		pos.Amount = splitAmount(&pos, rec.get(debitCol), rec.get(creditCol))

		pos.Text = rec.get(descriptionCol)
		if pos.Text == "" {
			pos.errorf("description is missing")
		}
		pos.Reference = rec.get(referenceCol)
		pos.Balance = pos.optionalAmount("balance", rec.get(balanceCol))

		res.add(pos)
	})

	return res.finish()
}

func splitAmount(pos *RawPosition, rawDebit, rawCredit string) decimal.Decimal {
	if rawDebit == "" && rawCredit == "" {
		pos.errorf("neither debit nor credit given")
		return decimal.Zero
	}

	var debit, credit decimal.Decimal
	if rawCredit != "" {
		v, ok := locale.ParseAmountField(rawCredit)
		if !ok {
			pos.errorf("invalid credit: %q", rawCredit)
			return decimal.Zero
		}
		credit = v
	}
	if rawDebit != "" {
		v, ok := locale.ParseAmountField(rawDebit)
		if !ok {
			pos.errorf("invalid debit: %q", rawDebit)
			return decimal.Zero
		}
		debit = v
	}

	if credit.IsPositive() {
		return credit
	}
	return debit.Abs().Neg()
}
