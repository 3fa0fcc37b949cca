package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/datev"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/parser"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/shopspring/decimal"
)

type DatevImportResult struct {
	Imported   int        `json:"imported"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors"`
	BookingIDs []string   `json:"booking_ids"`
}

type ExportRequest struct {
	CompanyID string
	From      *time.Time
	To        *time.Time
	Accounts  []string
	Status    domain.BookingStatus
}

type ExportResult struct {
	Content  string `json:"content"`
	FileName string `json:"file_name"`
	Count    int    `json:"count"`
}

type DatevService interface {
	ParseDatev(ctx context.Context, content []byte) (*datev.DecodeResult, error)
	ImportDatev(ctx context.Context, companyID string, records []datev.Record) (*DatevImportResult, error)
	ExportDatev(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

type datevService struct {
	ledger    domain.Ledger
	companies domain.CompanyDirectory
	cfg       config.DatevConfig
	logger    *logger.Logger
}

func NewDatevService(ledger domain.Ledger, companies domain.CompanyDirectory, cfg config.DatevConfig, log *logger.Logger) DatevService {
	return &datevService{
		ledger:    ledger,
		companies: companies,
		cfg:       cfg,
		logger:    log,
	}
}

// ParseDatev decodes a batch for preview. Nothing is stored.
func (s *datevService) ParseDatev(ctx context.Context, content []byte) (*datev.DecodeResult, error) {
	text, encoding := parser.DecodeText(content)

	if !datev.IsDatevShaped(text) {
		s.logger.Debug(ctx, "Rejected non-DATEV file",
			"bytes", len(content),
		)
		return nil, domain.ErrInvalidDatevFile
	}

	res := datev.Decode(text)
	if len(res.Errors) > 0 {
		return res, fmt.Errorf("%w: %s", domain.ErrInvalidDatevFile, strings.Join(res.Errors, "; "))
	}

	s.logger.Info(ctx, "DATEV file parsed",
		"encoding", encoding,
		"extf", res.Header.IsExtf,
		"total_rows", res.Stats.TotalRows,
		"valid_rows", res.Stats.ValidRows,
	)

	return res, nil
}

// ImportDatev stores decoded records as checked bookings. Records with row
// errors, and records the ledger refuses, are counted as failed.
func (s *datevService) ImportDatev(ctx context.Context, companyID string, records []datev.Record) (*DatevImportResult, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, fmt.Errorf("%w: company_id is required", domain.ErrInvalidInput)
	}
	ctx = logger.WithCompanyID(ctx, companyID)

	result := &DatevImportResult{
		Errors:     []RowError{},
		BookingIDs: []string{},
	}

	for _, rec := range records {
		if !rec.Valid() {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: rec.RowIndex, Message: strings.Join(rec.Errors, "; ")})
			continue
		}

		booking := s.bookingFromRecord(companyID, rec)
		if err := s.ledger.CreateBooking(ctx, booking); err != nil {
			s.logger.Warn(ctx, "Ledger rejected DATEV booking",
				"row", rec.RowIndex,
				"error", err,
			)
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: rec.RowIndex, Message: err.Error()})
			continue
		}

		result.Imported++
		result.BookingIDs = append(result.BookingIDs, booking.ID)
	}

	s.logger.Info(ctx, "DATEV bookings imported",
		"imported", result.Imported,
		"failed", result.Failed,
	)

	return result, nil
}

func (s *datevService) bookingFromRecord(companyID string, rec datev.Record) *domain.Booking {
	gross := rec.Amount.Abs()
	rate := s.cfg.DefaultTaxRate
	net := gross.Div(decimal.NewFromInt(1).Add(rate.Div(hundred))).Round(2)

	text := rec.Text
	if text == "" {
		text = "DATEV import " + rec.DocumentNumber
	}

	return &domain.Booking{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Date:           rec.Date,
		DocumentNumber: rec.DocumentNumber,
		Gross:          gross,
		Net:            net,
		TaxRate:        rate,
		Account:        rec.Account,
		ContraAccount:  rec.ContraAccount,
		Text:           text,
		Kind:           domain.ClassifyAccount(rec.Account),
		PartnerType:    domain.ClassifyPartner(rec.ContraAccount),
		Status:         domain.BookingStatusChecked,
		DebitCredit:    rec.DebitCredit,
		PostingKey:     rec.PostingKey,
		Currency:       rec.Currency,
		CreatedAt:      now(),
	}
}

// ExportDatev renders the bookings selected by req as an EXTF batch, newest
// first.
func (s *datevService) ExportDatev(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	if strings.TrimSpace(req.CompanyID) == "" {
		return nil, fmt.Errorf("%w: company_id is required", domain.ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		return nil, fmt.Errorf("%w: to is before from", domain.ErrInvalidInput)
	}
	ctx = logger.WithCompanyID(ctx, req.CompanyID)

	profile, err := s.companies.GetCompanyProfile(ctx, req.CompanyID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error(ctx, "Failed to load company profile",
				"error", err,
			)
			return nil, err
		}
		s.logger.Warn(ctx, "No company profile, exporting without advisor and client numbers")
		profile = &domain.CompanyProfile{ID: req.CompanyID}
	}

	bookings, err := s.ledger.ListBookings(ctx, domain.BookingFilter{
		CompanyID: req.CompanyID,
		From:      req.From,
		To:        req.To,
		Accounts:  req.Accounts,
		Status:    req.Status,
	})
	if err != nil {
		s.logger.Error(ctx, "Failed to list bookings for export",
			"error", err,
		)
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, domain.ErrNothingToExport
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].Date.After(bookings[j].Date)
	})

	created := now()
	meta := datev.Metadata{
		AdvisorNumber:   profile.AdvisorNumber,
		ClientNumber:    profile.ClientNumber,
		FiscalYearStart: profile.FiscalYearStart,
		ExportedBy:      s.cfg.ExportedBy,
		CreatedAt:       created,
		From:            bookings[len(bookings)-1].Date,
		To:              bookings[0].Date,
	}
	if meta.FiscalYearStart == 0 {
		meta.FiscalYearStart = 1
	}
	if req.From != nil {
		meta.From = *req.From
	}
	if req.To != nil {
		meta.To = *req.To
	}

	content, err := datev.EncodeString(bookings, meta)
	if err != nil {
		s.logger.Error(ctx, "Failed to encode DATEV export",
			"error", err,
		)
		return nil, err
	}

	client := profile.ClientNumber
	if client == "" {
		client = req.CompanyID
	}
	fileName := fmt.Sprintf("EXTF_%s_%s.csv", client, created.Format("2006-01-02"))

	s.logger.Info(ctx, "DATEV export created",
		"count", len(bookings),
		"file_name", fileName,
	)

	return &ExportResult{
		Content:  content,
		FileName: fileName,
		Count:    len(bookings),
	}, nil
}
