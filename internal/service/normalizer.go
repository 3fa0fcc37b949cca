package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/parser"
)

const defaultCurrency = "EUR"

// normalizePositions turns clean raw rows into open positions of statement.
func normalizePositions(statement *domain.Statement, raw []parser.RawPosition) []domain.StatementPosition {
	out := make([]domain.StatementPosition, 0, len(raw))

	for _, p := range raw {
		currency := strings.ToUpper(strings.TrimSpace(p.Currency))
		if currency == "" {
			currency = statement.Currency
		}
		if currency == "" {
			currency = defaultCurrency
		}

		out = append(out, domain.StatementPosition{
			ID:          uuid.New().String(),
			StatementID: statement.ID,
			Date:        p.Date,
			Description: strings.TrimSpace(p.Text),
			Amount:      p.Amount,
			Balance:     p.Balance,
			Reference:   p.Reference,
			Category:    p.Category,
			Currency:    currency,
			Status:      domain.PositionStatusOpen,
			RowIndex:    p.RowIndex,
		})
	}

	return out
}

// rowErrors flattens the row problems of a parse result for the caller.
func rowErrors(res *parser.Result) []RowError {
	out := []RowError{}
	for _, p := range res.Positions {
		for _, msg := range p.Errors {
			out = append(out, RowError{Row: p.RowIndex, Message: msg})
		}
	}
	return out
}

func rowWarnings(res *parser.Result) []RowError {
	out := []RowError{}
	for _, msg := range res.Warnings {
		out = append(out, RowError{Message: msg})
	}
	for _, p := range res.Positions {
		for _, msg := range p.Warnings {
			out = append(out, RowError{Row: p.RowIndex, Message: msg})
		}
	}
	return out
}
