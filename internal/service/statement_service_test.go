package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/parser"
	"github.com/grachmannico95/statement-reconciler/internal/storage"
	"github.com/grachmannico95/statement-reconciler/mocks"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var importConfig = config.ImportConfig{MaxUploadBytes: 1 << 20}

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "parser", "testdata", name))
	require.NoError(t, err)
	return raw
}

func newMemoryServices(t *testing.T) (*storage.MemoryStore, StatementService, ReconciliationService) {
	t.Helper()
	store := storage.NewMemoryStore()
	locks := NewStatementLocks()
	log := logger.NewNop()
	return store,
		NewStatementService(store, store, locks, importConfig, log),
		NewReconciliationService(store, store, store, locks, log)
}

func createStatement(t *testing.T, svc StatementService) *domain.Statement {
	t.Helper()
	statement, err := svc.CreateStatement(context.Background(), CreateStatementInput{
		CompanyID: "company-1",
		Kind:      domain.StatementKindPaymentProcessor,
	})
	require.NoError(t, err)
	return statement
}

func TestNewStatementService(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	lookup := mocks.NewMockBookingLookup(t)

	svc := NewStatementService(store, lookup, NewStatementLocks(), importConfig, logger.NewNop())

	assert.NotNil(t, svc)
	assert.Implements(t, (*StatementService)(nil), svc)
}

func TestCreateStatement_Success(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	store.EXPECT().
		CreateStatement(mock.Anything, mock.AnythingOfType("*domain.Statement")).
		Return(nil).
		Once()

	statement, err := svc.CreateStatement(context.Background(), CreateStatementInput{
		CompanyID: "company-1",
		Currency:  "chf",
	})

	require.NoError(t, err)
	assert.Len(t, statement.ID, 36)
	assert.Equal(t, domain.StatementKindBankAccount, statement.Kind)
	assert.Equal(t, domain.StatementStatusNew, statement.Status)
	assert.Equal(t, "CHF", statement.Currency)
}

func TestCreateStatement_Validation(t *testing.T) {
	svc := NewStatementService(mocks.NewMockStatementStore(t), mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())
	from := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input CreateStatementInput
	}{
		{"missing company", CreateStatementInput{}},
		{"unknown kind", CreateStatementInput{CompanyID: "c", Kind: "savings"}},
		{"reversed period", CreateStatementInput{CompanyID: "c", PeriodFrom: &from, PeriodTo: &to}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStatement(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreateStatement_StoreError(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())
	expectedError := errors.New("database error")

	store.EXPECT().
		CreateStatement(mock.Anything, mock.Anything).
		Return(expectedError).
		Once()

	_, err := svc.CreateStatement(context.Background(), CreateStatementInput{CompanyID: "company-1"})

	assert.Equal(t, expectedError, err)
}

func TestGetStatement_Summary(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())
	ctx := context.Background()

	store.EXPECT().
		GetStatement(mock.Anything, "st-1").
		Return(&domain.Statement{ID: "st-1", Status: domain.StatementStatusInProgress}, nil).
		Once()
	store.EXPECT().
		ListPositions(mock.Anything, "st-1").
		Return([]domain.StatementPosition{
			{ID: "p-1", Status: domain.PositionStatusOpen},
			{ID: "p-2", Status: domain.PositionStatusMatched},
			{ID: "p-3", Status: domain.PositionStatusMatched},
			{ID: "p-4", Status: domain.PositionStatusIgnored},
		}, nil).
		Once()

	detail, err := svc.GetStatement(ctx, "st-1")

	require.NoError(t, err)
	assert.Equal(t, "st-1", detail.Statement.ID)
	assert.Len(t, detail.Positions, 4)
	assert.Equal(t, PositionSummary{Open: 1, Matched: 2, Ignored: 1}, detail.Summary)
}

func TestGetStatement_NotFound(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	store.EXPECT().
		GetStatement(mock.Anything, "missing").
		Return(nil, domain.ErrStatementNotFound).
		Once()

	_, err := svc.GetStatement(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListStatements_InvalidFilter(t *testing.T) {
	svc := NewStatementService(mocks.NewMockStatementStore(t), mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	_, err := svc.ListStatements(context.Background(), domain.StatementFilter{Status: "done"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.ListStatements(context.Background(), domain.StatementFilter{Kind: "savings"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatementStatus(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())
	ctx := context.Background()

	_, err := svc.UpdateStatementStatus(ctx, "st-1", "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	store.EXPECT().
		UpdateStatementStatus(mock.Anything, "st-1", domain.StatementStatusCompleted).
		Return(nil).
		Once()
	store.EXPECT().
		GetStatement(mock.Anything, "st-1").
		Return(&domain.Statement{ID: "st-1", Status: domain.StatementStatusCompleted}, nil).
		Once()

	statement, err := svc.UpdateStatementStatus(ctx, "st-1", domain.StatementStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatementStatusCompleted, statement.Status)
}

func TestImportCSV_Idempotent(t *testing.T) {
	_, svc, _ := newMemoryServices(t)
	ctx := context.Background()
	statement := createStatement(t, svc)

	first, err := svc.ImportCSV(ctx, statement.ID, fixture(t, "paypal.csv"), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Imported)
	assert.Equal(t, 0, first.Skipped)
	assert.Equal(t, parser.FormatPayPal, first.Format)
	assert.Equal(t, parser.EncodingUTF8, first.Encoding)
	assert.Empty(t, first.Errors)
	assert.Equal(t, domain.StatementStatusNew, first.Status)

	second, err := svc.ImportCSV(ctx, statement.ID, fixture(t, "paypal.csv"), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 3, second.Skipped)

	detail, err := svc.GetStatement(ctx, statement.ID)
	require.NoError(t, err)
	require.Len(t, detail.Positions, 3)
	for _, p := range detail.Positions {
		assert.Equal(t, domain.PositionStatusOpen, p.Status)
		assert.Equal(t, "EUR", p.Currency)
		assert.Regexp(t, `^.+ \(.+\)$`, p.Description)
	}
}

func TestImportCSV_PayPalStatusFollowsMatches(t *testing.T) {
	store, svc, recon := newMemoryServices(t)
	ctx := context.Background()
	statement := createStatement(t, svc)

	_, err := svc.ImportCSV(ctx, statement.ID, fixture(t, "paypal.csv"), ImportOptions{})
	require.NoError(t, err)

	result, err := recon.AutoMatch(ctx, statement.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Matched)
	assert.Equal(t, domain.StatementStatusNew, result.Status)

	require.NoError(t, store.CreateBooking(ctx, &domain.Booking{
		ID:        "b-1",
		CompanyID: "company-1",
		Date:      time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC),
		Gross:     decimal.RequireFromString("45.50"),
	}))

	result, err = recon.AutoMatch(ctx, statement.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, domain.StatementStatusInProgress, result.Status)

	stored, err := store.GetStatement(ctx, statement.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatementStatusInProgress, stored.Status)
}

func TestImportCSV_AutoMatchOption(t *testing.T) {
	store, svc, _ := newMemoryServices(t)
	ctx := context.Background()
	statement := createStatement(t, svc)

	require.NoError(t, store.CreateBooking(ctx, &domain.Booking{
		ID:        "b-1",
		CompanyID: "company-1",
		Date:      time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Gross:     decimal.RequireFromString("100.00"),
	}))

	enabled := true
	result, err := svc.ImportCSV(ctx, statement.ID, fixture(t, "paypal.csv"), ImportOptions{AutoMatch: &enabled})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Imported)
	assert.Equal(t, 1, result.AutoMatched)
	assert.Equal(t, domain.StatementStatusInProgress, result.Status)
}

func TestImportCSV_RowErrorsReported(t *testing.T) {
	_, svc, _ := newMemoryServices(t)
	ctx := context.Background()
	statement := createStatement(t, svc)

	var b strings.Builder
	b.WriteString("Buchungsdatum;Valuta;Buchungstext;Betrag;Saldo;Referenz\n")
	b.WriteString("10.06.2024;10.06.2024;Miete;-2.000,00;;R1\n")
	b.WriteString("11.06.2024;11.06.2024;Kaputt;;;R2\n")

	result, err := svc.ImportCSV(ctx, statement.ID, []byte(b.String()), ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, []RowError{{Row: 2, Message: "amount is missing"}}, result.Errors)
	assert.Equal(t, parser.Stats{TotalRows: 2, ValidRows: 1, InvalidRows: 1}, result.Stats)
}

func TestImportCSV_UnsupportedFormat(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	store.EXPECT().
		GetStatement(mock.Anything, "st-1").
		Return(&domain.Statement{ID: "st-1", CompanyID: "company-1"}, nil).
		Once()

	_, err := svc.ImportCSV(context.Background(), "st-1", []byte("foo,bar\n1,2\n"), ImportOptions{})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestImportCSV_FileRejected(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	store.EXPECT().
		GetStatement(mock.Anything, "st-1").
		Return(&domain.Statement{ID: "st-1", CompanyID: "company-1"}, nil).
		Once()

	content := "Buchungsdatum;Valuta;Betrag;Saldo;Referenz\n10.06.2024;10.06.2024;-5,00;;R1\n"
	_, err := svc.ImportCSV(context.Background(), "st-1", []byte(content), ImportOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidFile)
	var fileErr *parser.FileError
	assert.ErrorAs(t, err, &fileErr)
}

func TestImportCSV_NoValidRows(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	store.EXPECT().
		GetStatement(mock.Anything, "st-1").
		Return(&domain.Statement{ID: "st-1", CompanyID: "company-1"}, nil).
		Once()

	content := "Buchungsdatum;Valuta;Buchungstext;Betrag;Saldo;Referenz\nkein datum;;Miete;abc;;R1\n"
	result, err := svc.ImportCSV(context.Background(), "st-1", []byte(content), ImportOptions{})

	assert.ErrorIs(t, err, domain.ErrNoValidRows)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Imported)
	assert.NotEmpty(t, result.Errors)
}

func TestImportCSV_StatementNotFound(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	store.EXPECT().
		GetStatement(mock.Anything, "missing").
		Return(nil, domain.ErrStatementNotFound).
		Once()

	_, err := svc.ImportCSV(context.Background(), "missing", fixture(t, "paypal.csv"), ImportOptions{})

	assert.ErrorIs(t, err, domain.ErrStatementNotFound)
}

func TestImportCSV_TooLarge(t *testing.T) {
	svc := NewStatementService(mocks.NewMockStatementStore(t), mocks.NewMockBookingLookup(t), NewStatementLocks(),
		config.ImportConfig{MaxUploadBytes: 10}, logger.NewNop())

	_, err := svc.ImportCSV(context.Background(), "st-1", []byte("01234567890"), ImportOptions{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportCSV_InsertError(t *testing.T) {
	store := mocks.NewMockStatementStore(t)
	svc := NewStatementService(store, mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())
	expectedError := errors.New("database error")

	store.EXPECT().
		GetStatement(mock.Anything, "st-1").
		Return(&domain.Statement{ID: "st-1", CompanyID: "company-1"}, nil).
		Once()
	store.EXPECT().
		ListPositions(mock.Anything, "st-1").
		Return([]domain.StatementPosition{}, nil).
		Once()
	store.EXPECT().
		InsertPositions(mock.Anything, "st-1", mock.AnythingOfType("[]domain.StatementPosition")).
		Return(expectedError).
		Once()

	_, err := svc.ImportCSV(context.Background(), "st-1", fixture(t, "paypal.csv"), ImportOptions{})

	assert.Equal(t, expectedError, err)
}

func TestPreviewCSV(t *testing.T) {
	svc := NewStatementService(mocks.NewMockStatementStore(t), mocks.NewMockBookingLookup(t), NewStatementLocks(), importConfig, logger.NewNop())

	preview, err := svc.PreviewCSV(context.Background(), fixture(t, "amex.csv"))
	require.NoError(t, err)
	assert.Equal(t, parser.FormatAmex, preview.Format)
	assert.Equal(t, domain.StatementKindCard, preview.Kind)
	assert.Len(t, preview.Result.Positions, 2)

	_, err = svc.PreviewCSV(context.Background(), []byte("nothing;here\n"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestStats(t *testing.T) {
	_, svc, recon := newMemoryServices(t)
	ctx := context.Background()

	first := createStatement(t, svc)
	createStatement(t, svc)
	_, err := svc.ImportCSV(ctx, first.ID, fixture(t, "paypal.csv"), ImportOptions{})
	require.NoError(t, err)

	detail, err := svc.GetStatement(ctx, first.ID)
	require.NoError(t, err)
	for _, p := range detail.Positions {
		_, err := recon.Ignore(ctx, p.ID)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx, "company-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[domain.StatementStatusCompleted])
	assert.Equal(t, 1, stats.ByStatus[domain.StatementStatusNew])
	assert.Equal(t, 0, stats.ByStatus[domain.StatementStatusInProgress])
	assert.Equal(t, 2, stats.ByKind[domain.StatementKindPaymentProcessor])
	assert.Equal(t, 0, stats.OpenPositions)
}

func TestDeleteStatement(t *testing.T) {
	store, svc, _ := newMemoryServices(t)
	ctx := context.Background()
	statement := createStatement(t, svc)

	_, err := svc.ImportCSV(ctx, statement.ID, fixture(t, "paypal.csv"), ImportOptions{})
	require.NoError(t, err)
	detail, err := svc.GetStatement(ctx, statement.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStatement(ctx, statement.ID))

	_, err = store.GetPosition(ctx, detail.Positions[0].ID)
	assert.ErrorIs(t, err, domain.ErrPositionNotFound)
	assert.ErrorIs(t, svc.DeleteStatement(ctx, statement.ID), domain.ErrStatementNotFound)
}

func TestExportPositionsCSV(t *testing.T) {
	_, svc, _ := newMemoryServices(t)
	ctx := context.Background()
	statement := createStatement(t, svc)

	_, err := svc.ImportCSV(ctx, statement.ID, fixture(t, "paypal.csv"), ImportOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportPositionsCSV(ctx, statement.ID, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "row,date,description,amount,balance,currency,reference,category,status,booking_id", lines[0])
	assert.Equal(t, "1,2024-05-01,Max Muster (Payment Received),100.00,,EUR,TX1,Payment Received,open,", lines[1])
}
