package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/reconcile"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type AutoMatchResult struct {
	Matched int                    `json:"matched"`
	Status  domain.StatementStatus `json:"status"`
}

// BookingDraft carries what the caller adds to a position when a booking is
// created from it.
type BookingDraft struct {
	Account        string           `json:"account"`
	ContraAccount  string           `json:"contra_account"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	DocumentNumber string           `json:"document_number"`
	Text           string           `json:"text"`
}

type ReconciliationService interface {
	AutoMatch(ctx context.Context, statementID string) (*AutoMatchResult, error)
	FindCandidates(ctx context.Context, positionID string) ([]domain.Booking, error)
	Assign(ctx context.Context, positionID, bookingID string) (*domain.StatementPosition, error)
	Unassign(ctx context.Context, positionID string) (*domain.StatementPosition, error)
	Ignore(ctx context.Context, positionID string) (*domain.StatementPosition, error)
	CreateBookingFromPosition(ctx context.Context, positionID string, draft BookingDraft) (*domain.Booking, error)
}

type reconciliationService struct {
	store    domain.StatementStore
	bookings domain.BookingLookup
	ledger   domain.Ledger
	matcher  *reconcile.Matcher
	locks    *StatementLocks
	logger   *logger.Logger
}

func NewReconciliationService(store domain.StatementStore, bookings domain.BookingLookup, ledger domain.Ledger, locks *StatementLocks, log *logger.Logger) ReconciliationService {
	return &reconciliationService{
		store:    store,
		bookings: bookings,
		ledger:   ledger,
		matcher:  reconcile.NewMatcher(bookings),
		locks:    locks,
		logger:   log,
	}
}

// AutoMatch binds every open position of a statement to the first booking
// within the automatic tolerance.
func (s *reconciliationService) AutoMatch(ctx context.Context, statementID string) (*AutoMatchResult, error) {
	ctx = logger.WithStatementID(ctx, statementID)

	unlock := s.locks.Lock(statementID)
	defer unlock()

	statement, err := s.store.GetStatement(ctx, statementID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithCompanyID(ctx, statement.CompanyID)

	matched, err := autoMatchPositions(ctx, s.store, s.matcher, statement)
	if err != nil {
		s.logger.Error(ctx, "Auto-match failed",
			"matched", matched,
			"error", err,
		)
		return nil, err
	}

	status, err := refreshStatus(ctx, s.store, statementID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Auto-match finished",
		"matched", matched,
		"status", status,
	)

	return &AutoMatchResult{Matched: matched, Status: status}, nil
}

func (s *reconciliationService) FindCandidates(ctx context.Context, positionID string) ([]domain.Booking, error) {
	position, statement, err := s.load(ctx, positionID)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithCompanyID(logger.WithStatementID(ctx, statement.ID), statement.CompanyID)

	candidates, err := s.matcher.Candidates(ctx, statement.CompanyID, *position, reconcile.ManualTolerance)
	if err != nil {
		s.logger.Error(ctx, "Candidate search failed",
			"position_id", positionID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Candidates found",
		"position_id", positionID,
		"count", len(candidates),
	)

	return candidates, nil
}

func (s *reconciliationService) Assign(ctx context.Context, positionID, bookingID string) (*domain.StatementPosition, error) {
	position, statement, unlock, err := s.lockPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	ctx = logger.WithCompanyID(logger.WithStatementID(ctx, statement.ID), statement.CompanyID)

	if position.Status == domain.PositionStatusMatched {
		return nil, domain.ErrPositionLocked
	}

	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CompanyID != "" && booking.CompanyID != statement.CompanyID {
		return nil, fmt.Errorf("%w: booking belongs to another company", domain.ErrInvalidInput)
	}

	return s.setStatus(ctx, position, domain.PositionStatusMatched, &booking.ID)
}

func (s *reconciliationService) Unassign(ctx context.Context, positionID string) (*domain.StatementPosition, error) {
	position, statement, unlock, err := s.lockPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	ctx = logger.WithCompanyID(logger.WithStatementID(ctx, statement.ID), statement.CompanyID)

	return s.setStatus(ctx, position, domain.PositionStatusOpen, nil)
}

func (s *reconciliationService) Ignore(ctx context.Context, positionID string) (*domain.StatementPosition, error) {
	position, statement, unlock, err := s.lockPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	ctx = logger.WithCompanyID(logger.WithStatementID(ctx, statement.ID), statement.CompanyID)

	if position.Status == domain.PositionStatusMatched {
		return nil, domain.ErrPositionLocked
	}

	return s.setStatus(ctx, position, domain.PositionStatusIgnored, nil)
}

// CreateBookingFromPosition books an unmatched position with the accounts
// the caller supplies and matches the position to the new booking.
func (s *reconciliationService) CreateBookingFromPosition(ctx context.Context, positionID string, draft BookingDraft) (*domain.Booking, error) {
	account := strings.TrimSpace(draft.Account)
	contra := strings.TrimSpace(draft.ContraAccount)
	if !isAccountNumber(account) || !isAccountNumber(contra) {
		return nil, fmt.Errorf("%w: account and contra_account must be numeric", domain.ErrInvalidInput)
	}
	if draft.TaxRate != nil && (draft.TaxRate.IsNegative() || draft.TaxRate.GreaterThanOrEqual(hundred)) {
		return nil, fmt.Errorf("%w: tax_rate must be between 0 and 100", domain.ErrInvalidInput)
	}

	position, statement, unlock, err := s.lockPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	ctx = logger.WithCompanyID(logger.WithStatementID(ctx, statement.ID), statement.CompanyID)

	if position.Status == domain.PositionStatusMatched {
		return nil, domain.ErrPositionLocked
	}

	gross := position.Amount.Abs()
	net := gross
	rate := decimal.Zero
	if draft.TaxRate != nil {
		rate = *draft.TaxRate
		net = netFromGross(gross, rate)
	}

	text := strings.TrimSpace(draft.Text)
	if text == "" {
		text = position.Description
	}
	document := strings.TrimSpace(draft.DocumentNumber)
	if document == "" {
		document = position.Reference
	}

	booking := &domain.Booking{
		ID:             uuid.New().String(),
		CompanyID:      statement.CompanyID,
		Date:           position.Date,
		DocumentNumber: document,
		Gross:          gross,
		Net:            net,
		TaxRate:        rate,
		Account:        account,
		ContraAccount:  contra,
		Text:           text,
		Kind:           domain.ClassifyAccount(account),
		PartnerType:    domain.ClassifyPartner(contra),
		Status:         domain.BookingStatusDraft,
		Currency:       position.Currency,
		CreatedAt:      now(),
	}

	if err := s.ledger.CreateBooking(ctx, booking); err != nil {
		s.logger.Error(ctx, "Failed to create booking from position",
			"position_id", positionID,
			"error", err,
		)
		return nil, err
	}

	if _, err := s.setStatus(ctx, position, domain.PositionStatusMatched, &booking.ID); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Booking created from position",
		"position_id", positionID,
		"booking_id", booking.ID,
	)

	return booking, nil
}

func (s *reconciliationService) load(ctx context.Context, positionID string) (*domain.StatementPosition, *domain.Statement, error) {
	position, err := s.store.GetPosition(ctx, positionID)
	if err != nil {
		return nil, nil, err
	}
	statement, err := s.store.GetStatement(ctx, position.StatementID)
	if err != nil {
		return nil, nil, err
	}
	return position, statement, nil
}

// lockPosition takes the lock of the position's statement and reads the
// position again under it.
func (s *reconciliationService) lockPosition(ctx context.Context, positionID string) (*domain.StatementPosition, *domain.Statement, func(), error) {
	position, statement, err := s.load(ctx, positionID)
	if err != nil {
		return nil, nil, nil, err
	}

	unlock := s.locks.Lock(statement.ID)
	position, err = s.store.GetPosition(ctx, positionID)
	if err != nil {
		unlock()
		return nil, nil, nil, err
	}

	return position, statement, unlock, nil
}

func (s *reconciliationService) setStatus(ctx context.Context, position *domain.StatementPosition, status domain.PositionStatus, bookingID *string) (*domain.StatementPosition, error) {
	position.Status = status
	position.BookingID = bookingID

	if err := s.store.UpdatePosition(ctx, position); err != nil {
		s.logger.Error(ctx, "Failed to update position",
			"position_id", position.ID,
			"error", err,
		)
		return nil, err
	}

	statementStatus, err := refreshStatus(ctx, s.store, position.StatementID)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Position updated",
		"position_id", position.ID,
		"status", status,
		"statement_status", statementStatus,
	)

	return position, nil
}

// autoMatchPositions runs the automatic rule over the open positions of
// statement. Callers hold the statement lock.
func autoMatchPositions(ctx context.Context, store domain.StatementStore, matcher *reconcile.Matcher, statement *domain.Statement) (int, error) {
	positions, err := store.ListPositions(ctx, statement.ID)
	if err != nil {
		return 0, err
	}

	matched := 0
	for i := range positions {
		p := positions[i]
		if p.Status != domain.PositionStatusOpen {
			continue
		}

		booking, err := matcher.First(ctx, statement.CompanyID, p)
		if err != nil {
			return matched, err
		}
		if booking == nil {
			continue
		}

		bookingID := booking.ID
		p.Status = domain.PositionStatusMatched
		p.BookingID = &bookingID
		if err := store.UpdatePosition(ctx, &p); err != nil {
			return matched, err
		}
		matched++
	}

	return matched, nil
}

// refreshStatus stores the status derived from the statement's positions.
func refreshStatus(ctx context.Context, store domain.StatementStore, statementID string) (domain.StatementStatus, error) {
	positions, err := store.ListPositions(ctx, statementID)
	if err != nil {
		return "", err
	}

	status := domain.DeriveStatementStatus(positions)
	if err := store.UpdateStatementStatus(ctx, statementID, status); err != nil {
		return "", err
	}

	return status, nil
}

// netFromGross removes the tax share from a gross amount.
func netFromGross(gross, rate decimal.Decimal) decimal.Decimal {
	tax := gross.Mul(rate).Div(hundred.Add(rate))
	return gross.Sub(tax).Round(2)
}

func isAccountNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
