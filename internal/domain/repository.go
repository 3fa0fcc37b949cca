package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type StatementFilter struct {
	CompanyID string
	Kind      StatementKind
	Status    StatementStatus
}

// StatementStore persists statements and their positions.
type StatementStore interface {
	// Statements
	CreateStatement(ctx context.Context, statement *Statement) error
	GetStatement(ctx context.Context, statementID string) (*Statement, error)
	ListStatements(ctx context.Context, filter StatementFilter) ([]Statement, error)
	UpdateStatementStatus(ctx context.Context, statementID string, status StatementStatus) error
	DeleteStatement(ctx context.Context, statementID string) error

	// Positions
	ListPositions(ctx context.Context, statementID string) ([]StatementPosition, error)
	GetPosition(ctx context.Context, positionID string) (*StatementPosition, error)
	InsertPositions(ctx context.Context, statementID string, positions []StatementPosition) error
	UpdatePosition(ctx context.Context, position *StatementPosition) error
}

// BookingQuery selects bookings of one company whose date lies in [From, To]
// and whose absolute gross lies strictly within Tolerance of |Amount|.
type BookingQuery struct {
	CompanyID string
	From      time.Time
	To        time.Time
	Amount    decimal.Decimal
	Tolerance decimal.Decimal
	Limit     int
}

// Matches reports whether b satisfies the query, ignoring Limit.
func (q BookingQuery) Matches(b Booking) bool {
	if q.CompanyID != "" && b.CompanyID != q.CompanyID {
		return false
	}
	day := CalendarDay(b.Date)
	if day.Before(q.From) || day.After(q.To) {
		return false
	}
	return b.Gross.Abs().Sub(q.Amount.Abs()).Abs().LessThan(q.Tolerance)
}

// CalendarDay drops the time of day, keeping the date t shows in its own
// location, as UTC midnight.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// BookingLookup is the read side of the ledger used for reconciliation.
// Results are ordered by date ascending, then by id.
type BookingLookup interface {
	FindBookings(ctx context.Context, query BookingQuery) ([]Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
}

type BookingFilter struct {
	CompanyID string
	From      *time.Time
	To        *time.Time
	Accounts  []string
	Status    BookingStatus
}

// Ledger is the write side of the ledger collaborator.
type Ledger interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	ListBookings(ctx context.Context, filter BookingFilter) ([]Booking, error)
}

type CompanyDirectory interface {
	GetCompanyProfile(ctx context.Context, companyID string) (*CompanyProfile, error)
}
