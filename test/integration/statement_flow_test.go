package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/config"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/handler"
	"github.com/grachmannico95/statement-reconciler/internal/server"
	"github.com/grachmannico95/statement-reconciler/internal/service"
	"github.com/grachmannico95/statement-reconciler/internal/storage"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

func setupTestServer(t *testing.T) (*httptest.Server, *storage.MemoryStore) {
	log := logger.NewNop()
	store := storage.NewMemoryStore()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Import: config.ImportConfig{
			MaxUploadBytes: 1 << 20,
		},
		Datev: config.DatevConfig{
			DefaultTaxRate: decimal.NewFromInt(19),
			ExportedBy:     "integration",
		},
	}

	locks := service.NewStatementLocks()
	statementService := service.NewStatementService(store, store, locks, cfg.Import, log)
	reconciliationService := service.NewReconciliationService(store, store, store, locks, log)
	datevService := service.NewDatevService(store, store, cfg.Datev, log)

	srv := server.New(cfg, log,
		handler.NewStatementHandler(statementService, log),
		handler.NewPositionHandler(reconciliationService, log),
		handler.NewDatevHandler(datevService, log),
		handler.NewHealthHandler(),
	)

	testServer := httptest.NewServer(srv.Handler())
	t.Cleanup(testServer.Close)

	return testServer, store
}

func TestHealthCheck(t *testing.T) {
	srv, _ := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "ok", result["status"])
	assert.NotEmpty(t, result["timestamp"])
}

func TestTraceIDIsEchoed(t *testing.T) {
	srv, _ := setupTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Trace-ID", "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "trace-123", resp.Header.Get("X-Trace-ID"))
}

func TestStatementImportFlow(t *testing.T) {
	srv, _ := setupTestServer(t)
	statementID := createStatement(t, srv.URL, domain.StatementKindPaymentProcessor)
	content := readFixture(t, "paypal.csv")

	var first service.ImportResult
	status := uploadMultipart(t, srv.URL+"/statements/"+statementID+"/import", "paypal.csv", content, &first)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, first.Imported)
	assert.Equal(t, 0, first.Skipped)
	assert.Equal(t, "paypal", string(first.Format))
	assert.Equal(t, domain.StatementStatusNew, first.Status)

	// the same file again, as a raw body this time
	var second service.ImportResult
	status = postRaw(t, srv.URL+"/statements/"+statementID+"/import", content, &second)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, second.Imported)
	assert.Equal(t, 3, second.Skipped)

	detail := getStatement(t, srv.URL, statementID)
	require.Len(t, detail.Positions, 3)
	assert.Equal(t, "Max Muster (Payment Received)", detail.Positions[0].Description)
	assert.Equal(t, service.PositionSummary{Open: 3}, detail.Summary)

	resp, err := http.Get(srv.URL + "/statements/" + statementID + "/positions.csv")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(body), "\n"))
}

func TestReconciliationFlow(t *testing.T) {
	srv, store := setupTestServer(t)
	require.NoError(t, store.CreateBooking(context.Background(), &domain.Booking{
		ID:        "booking-1",
		CompanyID: companyID,
		Date:      time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC),
		Gross:     decimal.RequireFromString("45.50"),
		Account:   "6300",
		Status:    domain.BookingStatusChecked,
	}))

	statementID := createStatement(t, srv.URL, domain.StatementKindPaymentProcessor)

	var imported service.ImportResult
	status := postRaw(t, srv.URL+"/statements/"+statementID+"/import?auto_match=true", readFixture(t, "paypal.csv"), &imported)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, imported.AutoMatched)
	assert.Equal(t, domain.StatementStatusInProgress, imported.Status)

	detail := getStatement(t, srv.URL, statementID)
	require.Len(t, detail.Positions, 3)
	matched := detail.Positions[1]
	require.Equal(t, domain.PositionStatusMatched, matched.Status)
	require.NotNil(t, matched.BookingID)
	assert.Equal(t, "booking-1", *matched.BookingID)

	// a matched position is locked until it is unassigned
	var conflict map[string]interface{}
	status = postJSON(t, srv.URL+"/positions/"+matched.ID+"/assign", map[string]string{"booking_id": "booking-1"}, &conflict)
	assert.Equal(t, http.StatusConflict, status)

	var position domain.StatementPosition
	status = postJSON(t, srv.URL+"/positions/"+matched.ID+"/unassign", nil, &position)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.PositionStatusOpen, position.Status)
	assert.Nil(t, position.BookingID)

	var candidates struct {
		Items []domain.Booking `json:"items"`
	}
	status = getJSON(t, srv.URL+"/positions/"+matched.ID+"/candidates", &candidates)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, candidates.Items, 1)
	assert.Equal(t, "booking-1", candidates.Items[0].ID)

	status = postJSON(t, srv.URL+"/positions/"+matched.ID+"/assign", map[string]string{"booking_id": "booking-1"}, &position)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.PositionStatusMatched, position.Status)

	for _, p := range []domain.StatementPosition{detail.Positions[0], detail.Positions[2]} {
		status = postJSON(t, srv.URL+"/positions/"+p.ID+"/ignore", nil, &position)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, domain.PositionStatusIgnored, position.Status)
	}

	detail = getStatement(t, srv.URL, statementID)
	assert.Equal(t, domain.StatementStatusCompleted, detail.Statement.Status)
	assert.Equal(t, service.PositionSummary{Matched: 1, Ignored: 2}, detail.Summary)
}

func TestCreateBookingFromPosition(t *testing.T) {
	srv, _ := setupTestServer(t)
	statementID := createStatement(t, srv.URL, domain.StatementKindPaymentProcessor)

	status := postRaw(t, srv.URL+"/statements/"+statementID+"/import", readFixture(t, "paypal.csv"), nil)
	require.Equal(t, http.StatusOK, status)
	detail := getStatement(t, srv.URL, statementID)
	hosting := detail.Positions[2]

	var booking domain.Booking
	status = postJSON(t, srv.URL+"/positions/"+hosting.ID+"/booking", map[string]interface{}{
		"account":        "6300",
		"contra_account": "70001",
		"tax_rate":       19,
	}, &booking)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, decimal.RequireFromString("9.99").Equal(booking.Gross))
	assert.True(t, decimal.RequireFromString("8.39").Equal(booking.Net), "net %s", booking.Net)
	assert.Equal(t, "Hosting Ltd (Subscription Payment)", booking.Text)
	assert.Equal(t, domain.BookingKindExpense, booking.Kind)
	assert.Equal(t, domain.PartnerTypeVendor, booking.PartnerType)

	var invalid map[string]interface{}
	status = postJSON(t, srv.URL+"/positions/"+detail.Positions[0].ID+"/booking", map[string]string{
		"account": "cash",
	}, &invalid)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	detail = getStatement(t, srv.URL, statementID)
	assert.Equal(t, domain.PositionStatusMatched, detail.Positions[2].Status)
	assert.Equal(t, domain.StatementStatusInProgress, detail.Statement.Status)
}

const datevBatch = `"EXTF";510;"Buchungsstapel";16;1;01032024;;"RE";"tests";;29098;55003;20240101;4;01012024;31122024
Umsatz (ohne Soll/Haben-Kz);Soll/Haben-Kennzeichen;WKZ Umsatz;Kurs;Basis-Umsatz;WKZ Basis-Umsatz;Konto;Gegenkonto (ohne BU-Schlüssel);BU-Schlüssel;Belegdatum;Belegfeld 1;Belegfeld 2;Skonto;Buchungstext
119,00;S;EUR;;;;8400;10001;;0302;RE-1;;;Beratung
59,50;H;EUR;;;;4930;70001;;1502;ER-7;;;Büro Bedarf
`

func TestDatevImportExportFlow(t *testing.T) {
	srv, _ := setupTestServer(t)

	var parsed map[string]interface{}
	status := postRaw(t, srv.URL+"/datev/parse", []byte(datevBatch), &parsed)
	require.Equal(t, http.StatusOK, status)

	var imported service.DatevImportResult
	status = postRaw(t, srv.URL+"/datev/import?company_id="+companyID, []byte(datevBatch), &imported)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, imported.Imported)
	assert.Equal(t, 0, imported.Failed)

	resp, err := http.Get(srv.URL + "/datev/export?company_id=" + companyID + "&from=2024-01-01&to=2024-12-31")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "EXTF_company-1_")
	assert.Equal(t, "2", resp.Header.Get("X-Export-Count"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(body), "\r\n"), "\r\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], `"EXTF";510;"Buchungsstapel"`))
	assert.True(t, strings.HasSuffix(lines[0], ";01012024;31122024"), lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "59,50;H;"), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "Büro Bedarf"), lines[2])

	legacy, err := http.Get(srv.URL + "/datev/export?company_id=" + companyID + "&charset=windows-1252")
	require.NoError(t, err)
	defer legacy.Body.Close()
	require.Equal(t, http.StatusOK, legacy.StatusCode)
	assert.Contains(t, legacy.Header.Get("Content-Type"), "windows-1252")
	raw, err := io.ReadAll(legacy.Body)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(raw, []byte{'B', 0xFC, 'r', 'o'}))
}

func TestDatevErrors(t *testing.T) {
	srv, _ := setupTestServer(t)

	var body map[string]interface{}
	status := postRaw(t, srv.URL+"/datev/parse", []byte("Date,Amount\n2024-01-01,5\n"), &body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status = postRaw(t, srv.URL+"/datev/import", []byte(datevBatch), &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = getJSON(t, srv.URL+"/datev/export?company_id=nobody", &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = getJSON(t, srv.URL+"/datev/export?company_id="+companyID+"&from=01.01.2024", &body)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStatementErrors(t *testing.T) {
	srv, _ := setupTestServer(t)
	statementID := createStatement(t, srv.URL, domain.StatementKindBankAccount)

	var body map[string]interface{}
	status := postRaw(t, srv.URL+"/statements/missing/import", readFixture(t, "paypal.csv"), &body)
	assert.Equal(t, http.StatusNotFound, status)

	status = postRaw(t, srv.URL+"/statements/"+statementID+"/import", []byte("foo,bar\n1,2\n"), &body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, domain.ErrUnsupportedFormat.Error(), body["error"])

	status = postRaw(t, srv.URL+"/statements/"+statementID+"/import?auto_match=maybe", readFixture(t, "paypal.csv"), &body)
	assert.Equal(t, http.StatusBadRequest, status)

	status = patchJSON(t, srv.URL+"/statements/"+statementID+"/status", map[string]string{"status": "archived"}, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status = postJSON(t, srv.URL+"/statements", map[string]string{"kind": "card"}, &body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestStatementLifecycle(t *testing.T) {
	srv, _ := setupTestServer(t)
	bankID := createStatement(t, srv.URL, domain.StatementKindBankAccount)
	cardID := createStatement(t, srv.URL, domain.StatementKindCard)

	var preview service.PreviewResult
	status := postRaw(t, srv.URL+"/statements/preview", readFixture(t, "amex.csv"), &preview)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "amex", string(preview.Format))
	assert.Equal(t, domain.StatementKindCard, preview.Kind)

	var list struct {
		Items []domain.Statement `json:"items"`
		Total int                `json:"total"`
	}
	status = getJSON(t, srv.URL+"/statements?company_id="+companyID+"&kind=card", &list)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, cardID, list.Items[0].ID)

	var statement domain.Statement
	status = patchJSON(t, srv.URL+"/statements/"+bankID+"/status", map[string]string{"status": "completed"}, &statement)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.StatementStatusCompleted, statement.Status)

	var stats service.StatementStats
	status = getJSON(t, srv.URL+"/statements/stats?company_id="+companyID, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[domain.StatementStatusCompleted])
	assert.Equal(t, 1, stats.ByStatus[domain.StatementStatusNew])

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/statements/"+bankID, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var missing map[string]interface{}
	status = getJSON(t, srv.URL+"/statements/"+bankID, &missing)
	assert.Equal(t, http.StatusNotFound, status)
}

func createStatement(t *testing.T, baseURL string, kind domain.StatementKind) string {
	t.Helper()

	var statement domain.Statement
	status := postJSON(t, baseURL+"/statements", map[string]string{
		"company_id": companyID,
		"kind":       string(kind),
	}, &statement)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, statement.ID)
	assert.Equal(t, domain.StatementStatusNew, statement.Status)

	return statement.ID
}

func getStatement(t *testing.T, baseURL, statementID string) service.StatementDetail {
	t.Helper()

	var detail service.StatementDetail
	status := getJSON(t, baseURL+"/statements/"+statementID, &detail)
	require.Equal(t, http.StatusOK, status)
	return detail
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	content, err := os.ReadFile("../../internal/parser/testdata/" + name)
	require.NoError(t, err)
	return content
}

func uploadMultipart(t *testing.T, url, fileName string, content []byte, out interface{}) int {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url, writer.FormDataContentType(), body)
	require.NoError(t, err)
	defer resp.Body.Close()

	decode(t, resp, out)
	return resp.StatusCode
}

func postRaw(t *testing.T, url string, content []byte, out interface{}) int {
	t.Helper()

	resp, err := http.Post(url, "text/csv", bytes.NewReader(content))
	require.NoError(t, err)
	defer resp.Body.Close()

	decode(t, resp, out)
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, payload, out interface{}) int {
	t.Helper()
	return sendJSON(t, http.MethodPost, url, payload, out)
}

func patchJSON(t *testing.T, url string, payload, out interface{}) int {
	t.Helper()
	return sendJSON(t, http.MethodPatch, url, payload, out)
}

func sendJSON(t *testing.T, method, url string, payload, out interface{}) int {
	t.Helper()

	var body io.Reader = http.NoBody
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	decode(t, resp, out)
	return resp.StatusCode
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	decode(t, resp, out)
	return resp.StatusCode
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if out == nil {
		return
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
