package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/shopspring/decimal"
)

// Tolerance bounds a booking search around a position. Days is inclusive on
// both sides; the amount difference must stay strictly below Amount.
type Tolerance struct {
	Days   int
	Amount decimal.Decimal
	Limit  int
}

var (
	AutoTolerance = Tolerance{
		Days:   3,
		Amount: decimal.RequireFromString("0.02"),
		Limit:  1,
	}
	ManualTolerance = Tolerance{
		Days:   7,
		Amount: decimal.RequireFromString("0.05"),
		Limit:  10,
	}
)

// Matcher looks up bookings for positions of one company.
type Matcher struct {
	bookings domain.BookingLookup
}

func NewMatcher(bookings domain.BookingLookup) *Matcher {
	return &Matcher{bookings: bookings}
}

// Query builds the ledger query for a position under tol.
func Query(companyID string, position domain.StatementPosition, tol Tolerance) domain.BookingQuery {
	y, m, d := position.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return domain.BookingQuery{
		CompanyID: companyID,
		From:      day.AddDate(0, 0, -tol.Days),
		To:        day.AddDate(0, 0, tol.Days),
		Amount:    position.Amount.Abs(),
		Tolerance: tol.Amount,
		Limit:     tol.Limit,
	}
}

// Candidates returns bookings within tol of position, ordered by date.
func (m *Matcher) Candidates(ctx context.Context, companyID string, position domain.StatementPosition, tol Tolerance) ([]domain.Booking, error) {
	bookings, err := m.bookings.FindBookings(ctx, Query(companyID, position, tol))
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	if tol.Limit > 0 && len(bookings) > tol.Limit {
		bookings = bookings[:tol.Limit]
	}
	return bookings, nil
}

// First returns the first booking within the automatic tolerance, or nil.
// Candidates are taken in date order; no closer match is searched for.
func (m *Matcher) First(ctx context.Context, companyID string, position domain.StatementPosition) (*domain.Booking, error) {
	bookings, err := m.Candidates(ctx, companyID, position, AutoTolerance)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}

// within reports whether booking satisfies tol for position, with the same
// semantics as the store query.
func within(position domain.StatementPosition, booking domain.Booking, tol Tolerance) bool {
	return Query("", position, tol).Matches(booking)
}
