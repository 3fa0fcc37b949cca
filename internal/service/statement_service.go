package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/parser"
	"github.com/grachmannico95/statement-reconciler/internal/reconcile"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/shopspring/decimal"
)

// now is replaced in tests.
var now = time.Now

type RowError struct {
	Row     int    `json:"row,omitempty"`
	Message string `json:"message"`
}

type ImportOptions struct {
	// AutoMatch overrides the configured auto-match default when set.
	AutoMatch *bool
}

type ImportResult struct {
	Imported    int                    `json:"imported"`
	Skipped     int                    `json:"skipped"`
	Errors      []RowError             `json:"errors"`
	Warnings    []RowError             `json:"warnings"`
	Format      parser.Format          `json:"format"`
	Encoding    parser.Encoding        `json:"encoding"`
	Stats       parser.Stats           `json:"stats"`
	AutoMatched int                    `json:"auto_matched"`
	Status      domain.StatementStatus `json:"status"`
}

type PreviewResult struct {
	Format   parser.Format        `json:"format"`
	Encoding parser.Encoding      `json:"encoding"`
	Kind     domain.StatementKind `json:"suggested_kind"`
	Result   *parser.Result       `json:"result"`
}

type CreateStatementInput struct {
	CompanyID      string               `json:"company_id"`
	Kind           domain.StatementKind `json:"kind"`
	AccountRef     string               `json:"account_ref"`
	Currency       string               `json:"currency"`
	PeriodFrom     *time.Time           `json:"period_from"`
	PeriodTo       *time.Time           `json:"period_to"`
	OpeningBalance *decimal.Decimal     `json:"opening_balance"`
	ClosingBalance *decimal.Decimal     `json:"closing_balance"`
	FileName       string               `json:"file_name"`
}

type PositionSummary struct {
	Open    int `json:"open"`
	Matched int `json:"matched"`
	Ignored int `json:"ignored"`
}

type StatementDetail struct {
	Statement domain.Statement           `json:"statement"`
	Positions []domain.StatementPosition `json:"positions"`
	Summary   PositionSummary            `json:"summary"`
}

type StatementStats struct {
	Total         int                            `json:"total"`
	ByStatus      map[domain.StatementStatus]int `json:"by_status"`
	ByKind        map[domain.StatementKind]int   `json:"by_kind"`
	OpenPositions int                            `json:"open_positions"`
}

type StatementService interface {
	CreateStatement(ctx context.Context, input CreateStatementInput) (*domain.Statement, error)
	GetStatement(ctx context.Context, statementID string) (*StatementDetail, error)
	ListStatements(ctx context.Context, filter domain.StatementFilter) ([]domain.Statement, error)
	DeleteStatement(ctx context.Context, statementID string) error
	UpdateStatementStatus(ctx context.Context, statementID string, status domain.StatementStatus) (*domain.Statement, error)
	Stats(ctx context.Context, companyID string) (*StatementStats, error)

	ImportCSV(ctx context.Context, statementID string, content []byte, opts ImportOptions) (*ImportResult, error)
	PreviewCSV(ctx context.Context, content []byte) (*PreviewResult, error)
	ExportPositionsCSV(ctx context.Context, statementID string, w io.Writer) error
}

type statementService struct {
	store   domain.StatementStore
	matcher *reconcile.Matcher
	locks   *StatementLocks
	cfg     config.ImportConfig
	logger  *logger.Logger
}

func NewStatementService(store domain.StatementStore, bookings domain.BookingLookup, locks *StatementLocks, cfg config.ImportConfig, log *logger.Logger) StatementService {
	return &statementService{
		store:   store,
		matcher: reconcile.NewMatcher(bookings),
		locks:   locks,
		cfg:     cfg,
		logger:  log,
	}
}

func (s *statementService) CreateStatement(ctx context.Context, input CreateStatementInput) (*domain.Statement, error) {
	if strings.TrimSpace(input.CompanyID) == "" {
		return nil, fmt.Errorf("%w: company_id is required", domain.ErrInvalidInput)
	}
	if input.Kind == "" {
		input.Kind = domain.StatementKindBankAccount
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown statement kind %q", domain.ErrInvalidInput, input.Kind)
	}
	if input.PeriodFrom != nil && input.PeriodTo != nil && input.PeriodTo.Before(*input.PeriodFrom) {
		return nil, fmt.Errorf("%w: period_to is before period_from", domain.ErrInvalidInput)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	statement := &domain.Statement{
		ID:             uuid.New().String(),
		CompanyID:      input.CompanyID,
		Kind:           input.Kind,
		AccountRef:     input.AccountRef,
		PeriodFrom:     input.PeriodFrom,
		PeriodTo:       input.PeriodTo,
		OpeningBalance: input.OpeningBalance,
		ClosingBalance: input.ClosingBalance,
		Currency:       currency,
		Status:         domain.StatementStatusNew,
		FileName:       input.FileName,
		CreatedAt:      now(),
	}

	ctx = logger.WithStatementID(logger.WithCompanyID(ctx, statement.CompanyID), statement.ID)

	if err := s.store.CreateStatement(ctx, statement); err != nil {
		s.logger.Error(ctx, "Failed to create statement",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Statement created",
		"kind", statement.Kind,
	)

	return statement, nil
}

func (s *statementService) GetStatement(ctx context.Context, statementID string) (*StatementDetail, error) {
	ctx = logger.WithStatementID(ctx, statementID)

	statement, err := s.store.GetStatement(ctx, statementID)
	if err != nil {
		s.logger.Debug(ctx, "Statement lookup failed",
			"error", err,
		)
		return nil, err
	}

	positions, err := s.store.ListPositions(ctx, statementID)
	if err != nil {
		s.logger.Error(ctx, "Failed to list positions",
			"error", err,
		)
		return nil, err
	}

	detail := &StatementDetail{
		Statement: *statement,
		Positions: positions,
	}
	for _, p := range positions {
		switch p.Status {
		case domain.PositionStatusMatched:
			detail.Summary.Matched++
		case domain.PositionStatusIgnored:
			detail.Summary.Ignored++
		default:
			detail.Summary.Open++
		}
	}

	return detail, nil
}

func (s *statementService) ListStatements(ctx context.Context, filter domain.StatementFilter) ([]domain.Statement, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown statement kind %q", domain.ErrInvalidInput, filter.Kind)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, filter.Status)
	}

	statements, err := s.store.ListStatements(ctx, filter)
	if err != nil {
		s.logger.Error(ctx, "Failed to list statements",
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Statements listed",
		"count", len(statements),
	)

	return statements, nil
}

func (s *statementService) DeleteStatement(ctx context.Context, statementID string) error {
	ctx = logger.WithStatementID(ctx, statementID)

	unlock := s.locks.Lock(statementID)
	defer unlock()

	if err := s.store.DeleteStatement(ctx, statementID); err != nil {
		s.logger.Warn(ctx, "Failed to delete statement",
			"error", err,
		)
		return err
	}

	s.logger.Info(ctx, "Statement deleted")

	return nil
}

// UpdateStatementStatus overrides the derived status. The next position
// change recomputes it from the positions again.
func (s *statementService) UpdateStatementStatus(ctx context.Context, statementID string, status domain.StatementStatus) (*domain.Statement, error) {
	ctx = logger.WithStatementID(ctx, statementID)

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	if err := s.store.UpdateStatementStatus(ctx, statementID, status); err != nil {
		s.logger.Warn(ctx, "Failed to update statement status",
			"status", status,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Statement status overridden",
		"status", status,
	)

	return s.store.GetStatement(ctx, statementID)
}

func (s *statementService) Stats(ctx context.Context, companyID string) (*StatementStats, error) {
	ctx = logger.WithCompanyID(ctx, companyID)

	statements, err := s.store.ListStatements(ctx, domain.StatementFilter{CompanyID: companyID})
	if err != nil {
		s.logger.Error(ctx, "Failed to list statements for stats",
			"error", err,
		)
		return nil, err
	}

	stats := &StatementStats{
		Total: len(statements),
		ByStatus: map[domain.StatementStatus]int{
			domain.StatementStatusNew:        0,
			domain.StatementStatusInProgress: 0,
			domain.StatementStatusCompleted:  0,
		},
		ByKind: map[domain.StatementKind]int{},
	}

	for _, statement := range statements {
		stats.ByStatus[statement.Status]++
		stats.ByKind[statement.Kind]++

		positions, err := s.store.ListPositions(ctx, statement.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range positions {
			if p.Status == domain.PositionStatusOpen {
				stats.OpenPositions++
			}
		}
	}

	return stats, nil
}

// ImportCSV detects, parses and stores the positions of a statement file.
// File-level problems abort before anything is written. Rows that fail to
// parse are reported and left out; rows already stored are skipped.
func (s *statementService) ImportCSV(ctx context.Context, statementID string, content []byte, opts ImportOptions) (*ImportResult, error) {
	ctx = logger.WithStatementID(ctx, statementID)

	if s.cfg.MaxUploadBytes > 0 && len(content) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidInput, s.cfg.MaxUploadBytes)
	}

	unlock := s.locks.Lock(statementID)
	defer unlock()

	statement, err := s.store.GetStatement(ctx, statementID)
	if err != nil {
		s.logger.Warn(ctx, "Import target not found",
			"error", err,
		)
		return nil, err
	}
	ctx = logger.WithCompanyID(ctx, statement.CompanyID)

	text, encoding := parser.DecodeText(content)
	format := parser.Detect(text)
	if format == parser.FormatUnknown {
		s.logger.Warn(ctx, "Unsupported statement format",
			"bytes", len(content),
			"encoding", encoding,
		)
		return nil, domain.ErrUnsupportedFormat
	}

	s.logger.Info(ctx, "Parsing statement file",
		"format", format,
		"encoding", encoding,
	)

	res, err := parser.ParseAs(format, text)
	if err != nil {
		return nil, err
	}
	if err := res.Err(); err != nil {
		s.logger.Warn(ctx, "Statement file rejected",
			"format", format,
			"error", err,
		)
		return nil, err
	}

	result := &ImportResult{
		Errors:   rowErrors(res),
		Warnings: rowWarnings(res),
		Format:   format,
		Encoding: encoding,
		Stats:    res.Stats,
		Status:   statement.Status,
	}

	valid := res.ValidPositions()
	if len(valid) == 0 {
		s.logger.Warn(ctx, "No valid rows in statement file",
			"total_rows", res.Stats.TotalRows,
		)
		return result, domain.ErrNoValidRows
	}

	existing, err := s.store.ListPositions(ctx, statementID)
	if err != nil {
		s.logger.Error(ctx, "Failed to load existing positions",
			"error", err,
		)
		return nil, err
	}

	fresh, skipped := reconcile.FilterDuplicates(existing, normalizePositions(statement, valid))
	result.Skipped = skipped

	if len(fresh) > 0 {
		if err := s.store.InsertPositions(ctx, statementID, fresh); err != nil {
			s.logger.Error(ctx, "Failed to store positions",
				"error", err,
			)
			return nil, err
		}
	}
	result.Imported = len(fresh)

	autoMatch := s.cfg.AutoMatch
	if opts.AutoMatch != nil {
		autoMatch = *opts.AutoMatch
	}
	if autoMatch && len(fresh) > 0 {
		matched, err := autoMatchPositions(ctx, s.store, s.matcher, statement)
		if err != nil {
			s.logger.Error(ctx, "Auto-match after import failed",
				"error", err,
			)
			return nil, err
		}
		result.AutoMatched = matched
	}

	status, err := refreshStatus(ctx, s.store, statementID)
	if err != nil {
		return nil, err
	}
	result.Status = status

	s.logger.Info(ctx, "Statement imported",
		"format", format,
		"imported", result.Imported,
		"skipped", result.Skipped,
		"invalid_rows", res.Stats.InvalidRows,
		"auto_matched", result.AutoMatched,
	)

	return result, nil
}

func (s *statementService) PreviewCSV(ctx context.Context, content []byte) (*PreviewResult, error) {
	text, encoding := parser.DecodeText(content)

	res, err := parser.Parse(text)
	if err != nil {
		s.logger.Debug(ctx, "Preview failed",
			"error", err,
		)
		return nil, err
	}

	return &PreviewResult{
		Format:   res.Header.Format,
		Encoding: encoding,
		Kind:     res.Header.Format.StatementKind(),
		Result:   res,
	}, nil
}

type positionRow struct {
	Row         int    `csv:"row"`
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Balance     string `csv:"balance"`
	Currency    string `csv:"currency"`
	Reference   string `csv:"reference"`
	Category    string `csv:"category"`
	Status      string `csv:"status"`
	BookingID   string `csv:"booking_id"`
}

// ExportPositionsCSV writes the positions of a statement as comma separated
// rows with a header line.
func (s *statementService) ExportPositionsCSV(ctx context.Context, statementID string, w io.Writer) error {
	ctx = logger.WithStatementID(ctx, statementID)

	if _, err := s.store.GetStatement(ctx, statementID); err != nil {
		return err
	}

	positions, err := s.store.ListPositions(ctx, statementID)
	if err != nil {
		return err
	}

	rows := make([]positionRow, 0, len(positions))
	for _, p := range positions {
		row := positionRow{
			Row:         p.RowIndex,
			Date:        p.Date.Format("2006-01-02"),
			Description: p.Description,
			Amount:      p.Amount.StringFixed(2),
			Currency:    p.Currency,
			Reference:   p.Reference,
			Category:    p.Category,
			Status:      string(p.Status),
		}
		if p.Balance != nil {
			row.Balance = p.Balance.StringFixed(2)
		}
		if p.BookingID != nil {
			row.BookingID = *p.BookingID
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		s.logger.Error(ctx, "Failed to write positions export",
			"error", err,
		)
		return fmt.Errorf("write positions: %w", err)
	}

	s.logger.Debug(ctx, "Positions exported",
		"count", len(rows),
	)

	return nil
}
