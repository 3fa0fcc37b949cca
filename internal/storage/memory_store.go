package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
)

// MemoryStore keeps statements, positions, bookings and company profiles in
// process memory. It implements every store interface of the domain package.
// Values are copied in and out so callers never share state with the store.
type MemoryStore struct {
	statements map[string]*domain.Statement
	positions  map[string][]string
	byID       map[string]*domain.StatementPosition
	bookings   map[string]*domain.Booking
	companies  map[string]*domain.CompanyProfile
	mu         sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		statements: make(map[string]*domain.Statement),
		positions:  make(map[string][]string),
		byID:       make(map[string]*domain.StatementPosition),
		bookings:   make(map[string]*domain.Booking),
		companies:  make(map[string]*domain.CompanyProfile),
	}
}

func (s *MemoryStore) CreateStatement(ctx context.Context, statement *domain.Statement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if statement.CreatedAt.IsZero() {
		statement.CreatedAt = time.Now()
	}
	if statement.Status == "" {
		statement.Status = domain.StatementStatusNew
	}

	stored := *statement
	s.statements[statement.ID] = &stored
	s.positions[statement.ID] = []string{}

	return nil
}

func (s *MemoryStore) GetStatement(ctx context.Context, statementID string) (*domain.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statement, exists := s.statements[statementID]
	if !exists {
		return nil, domain.ErrStatementNotFound
	}

	out := *statement
	return &out, nil
}

func (s *MemoryStore) ListStatements(ctx context.Context, filter domain.StatementFilter) ([]domain.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Statement{}
	for _, statement := range s.statements {
		if filter.CompanyID != "" && statement.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Kind != "" && statement.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && statement.Status != filter.Status {
			continue
		}
		out = append(out, *statement)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (s *MemoryStore) UpdateStatementStatus(ctx context.Context, statementID string, status domain.StatementStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	statement, exists := s.statements[statementID]
	if !exists {
		return domain.ErrStatementNotFound
	}

	statement.Status = status

	return nil
}

// DeleteStatement removes the statement together with its positions.
func (s *MemoryStore) DeleteStatement(ctx context.Context, statementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.statements[statementID]; !exists {
		return domain.ErrStatementNotFound
	}

	for _, positionID := range s.positions[statementID] {
		delete(s.byID, positionID)
	}
	delete(s.positions, statementID)
	delete(s.statements, statementID)

	return nil
}

// ListPositions returns the positions of a statement in insertion order.
func (s *MemoryStore) ListPositions(ctx context.Context, statementID string) ([]domain.StatementPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, exists := s.positions[statementID]
	if !exists {
		return nil, domain.ErrStatementNotFound
	}

	out := make([]domain.StatementPosition, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.byID[id])
	}

	return out, nil
}

func (s *MemoryStore) GetPosition(ctx context.Context, positionID string) (*domain.StatementPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	position, exists := s.byID[positionID]
	if !exists {
		return nil, domain.ErrPositionNotFound
	}

	out := *position
	return &out, nil
}

func (s *MemoryStore) InsertPositions(ctx context.Context, statementID string, positions []domain.StatementPosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.statements[statementID]; !exists {
		return domain.ErrStatementNotFound
	}

	now := time.Now()
	for i := range positions {
		stored := positions[i]
		stored.StatementID = statementID
		if stored.CreatedAt.IsZero() {
			stored.CreatedAt = now
		}
		s.byID[stored.ID] = &stored
		s.positions[statementID] = append(s.positions[statementID], stored.ID)
	}

	return nil
}

func (s *MemoryStore) UpdatePosition(ctx context.Context, position *domain.StatementPosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[position.ID]; !exists {
		return domain.ErrPositionNotFound
	}

	stored := *position
	s.byID[position.ID] = &stored

	return nil
}

// FindBookings returns bookings matching query, ordered by date then id.
func (s *MemoryStore) FindBookings(ctx context.Context, query domain.BookingQuery) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Booking{}
	for _, booking := range s.bookings {
		if query.Matches(*booking) {
			out = append(out, *booking)
		}
	}
	sortByDate(out, false)

	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}

	return out, nil
}

func (s *MemoryStore) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, exists := s.bookings[bookingID]
	if !exists {
		return nil, domain.ErrBookingNotFound
	}

	out := *booking
	return &out, nil
}

func (s *MemoryStore) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	stored := *booking
	s.bookings[booking.ID] = &stored

	return nil
}

// ListBookings returns the bookings of a company matching filter, newest
// first.
func (s *MemoryStore) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make(map[string]bool, len(filter.Accounts))
	for _, a := range filter.Accounts {
		accounts[a] = true
	}

	out := []domain.Booking{}
	for _, booking := range s.bookings {
		if filter.CompanyID != "" && booking.CompanyID != filter.CompanyID {
			continue
		}
		day := domain.CalendarDay(booking.Date)
		if filter.From != nil && day.Before(domain.CalendarDay(*filter.From)) {
			continue
		}
		if filter.To != nil && day.After(domain.CalendarDay(*filter.To)) {
			continue
		}
		if len(accounts) > 0 && !accounts[booking.Account] && !accounts[booking.ContraAccount] {
			continue
		}
		if filter.Status != "" && booking.Status != filter.Status {
			continue
		}
		out = append(out, *booking)
	}
	sortByDate(out, true)

	return out, nil
}

func (s *MemoryStore) GetCompanyProfile(ctx context.Context, companyID string) (*domain.CompanyProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, exists := s.companies[companyID]
	if !exists {
		return nil, domain.ErrCompanyNotFound
	}

	out := *profile
	return &out, nil
}

// SaveCompanyProfile registers or replaces a company profile. The server
// seeds profiles from DATEV_COMPANIES at startup.
func (s *MemoryStore) SaveCompanyProfile(ctx context.Context, profile *domain.CompanyProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *profile
	s.companies[profile.ID] = &stored

	return nil
}

func sortByDate(bookings []domain.Booking, descending bool) {
	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.Date.Equal(b.Date) {
			if descending {
				return a.Date.After(b.Date)
			}
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})
}
