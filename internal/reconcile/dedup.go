// Package reconcile holds the duplicate rule applied at import time and the
// tolerance rule that pairs statement positions with ledger bookings.
package reconcile

import (
	"strings"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/shopspring/decimal"
)

var duplicateTolerance = decimal.RequireFromString("0.01")

// IsDuplicate reports whether two positions describe the same transaction:
// same calendar date, amounts at most one cent apart and equal text after
// trimming and case folding.
func IsDuplicate(a, b domain.StatementPosition) bool {
	ay, am, ad := a.Date.Date()
	by, bm, bd := b.Date.Date()
	if ay != by || am != bm || ad != bd {
		return false
	}
	if a.Amount.Sub(b.Amount).Abs().GreaterThan(duplicateTolerance) {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(a.Description), strings.TrimSpace(b.Description))
}

// FilterDuplicates splits fresh into positions to insert and the number of
// positions already present in existing. Fresh positions are only compared
// against existing ones, so two identical rows in the same file are both kept.
func FilterDuplicates(existing, fresh []domain.StatementPosition) ([]domain.StatementPosition, int) {
	kept := make([]domain.StatementPosition, 0, len(fresh))
	skipped := 0

	for _, p := range fresh {
		if containsDuplicate(existing, p) {
			skipped++
			continue
		}
		kept = append(kept, p)
	}

	return kept, skipped
}

func containsDuplicate(existing []domain.StatementPosition, p domain.StatementPosition) bool {
	for _, e := range existing {
		if IsDuplicate(e, p) {
			return true
		}
	}
	return false
}
