package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type StatementKind string

const (
	StatementKindBankAccount      StatementKind = "bank_account"
	StatementKindCard             StatementKind = "card"
	StatementKindPaymentProcessor StatementKind = "payment_processor"
)

func (k StatementKind) Valid() bool {
	switch k {
	case StatementKindBankAccount, StatementKindCard, StatementKindPaymentProcessor:
		return true
	}
	return false
}

type StatementStatus string

const (
	StatementStatusNew        StatementStatus = "new"
	StatementStatusInProgress StatementStatus = "in_progress"
	StatementStatusCompleted  StatementStatus = "completed"
)

func (s StatementStatus) Valid() bool {
	switch s {
	case StatementStatusNew, StatementStatusInProgress, StatementStatusCompleted:
		return true
	}
	return false
}

type PositionStatus string

const (
	PositionStatusOpen    PositionStatus = "open"
	PositionStatusMatched PositionStatus = "matched"
	PositionStatusIgnored PositionStatus = "ignored"
)

// Statement is one imported bank, card or payment processor export.
type Statement struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	Kind           StatementKind    `json:"kind"`
	AccountRef     string           `json:"account_ref"`
	PeriodFrom     *time.Time       `json:"period_from,omitempty"`
	PeriodTo       *time.Time       `json:"period_to,omitempty"`
	OpeningBalance *decimal.Decimal `json:"opening_balance,omitempty"`
	ClosingBalance *decimal.Decimal `json:"closing_balance,omitempty"`
	Currency       string           `json:"currency"`
	Status         StatementStatus  `json:"status"`
	FileRef        string           `json:"file_ref,omitempty"`
	FileName       string           `json:"file_name,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// StatementPosition is one normalized transaction line of a statement.
// Amounts follow the ledger orientation: outflows negative, inflows positive.
type StatementPosition struct {
	ID          string           `json:"id"`
	StatementID string           `json:"statement_id"`
	Date        time.Time        `json:"date"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Reference   string           `json:"reference,omitempty"`
	Category    string           `json:"category,omitempty"`
	Currency    string           `json:"currency"`
	Status      PositionStatus   `json:"status"`
	BookingID   *string          `json:"booking_id,omitempty"`
	RowIndex    int              `json:"row_index"`
	CreatedAt   time.Time        `json:"created_at"`
}

type BookingKind string

const (
	BookingKindRevenue BookingKind = "revenue"
	BookingKindExpense BookingKind = "expense"
	BookingKindAsset   BookingKind = "asset"
	BookingKindOther   BookingKind = "other"
)

type PartnerType string

const (
	PartnerTypeVendor   PartnerType = "vendor"
	PartnerTypeCustomer PartnerType = "customer"
	PartnerTypeOther    PartnerType = "other"
)

type BookingStatus string

const (
	BookingStatusDraft    BookingStatus = "draft"
	BookingStatusChecked  BookingStatus = "checked"
	BookingStatusExported BookingStatus = "exported"
)

// DebitCredit is the DATEV Soll/Haben marker.
type DebitCredit string

const (
	Debit  DebitCredit = "S"
	Credit DebitCredit = "H"
)

// Booking is a ledger entry owned by the ledger collaborator.
type Booking struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	Date           time.Time       `json:"date"`
	DocumentNumber string          `json:"document_number"`
	Gross          decimal.Decimal `json:"gross"`
	Net            decimal.Decimal `json:"net"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Account        string          `json:"account"`
	ContraAccount  string          `json:"contra_account"`
	Text           string          `json:"text"`
	Kind           BookingKind     `json:"kind"`
	PartnerType    PartnerType     `json:"partner_type"`
	Status         BookingStatus   `json:"status"`
	DebitCredit    DebitCredit     `json:"debit_credit,omitempty"`
	PostingKey     string          `json:"posting_key,omitempty"`
	Currency       string          `json:"currency"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CompanyProfile holds the identifiers a DATEV export header needs.
type CompanyProfile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AdvisorNumber   string `json:"advisor_number,omitempty"`
	ClientNumber    string `json:"client_number,omitempty"`
	FiscalYearStart int    `json:"fiscal_year_start,omitempty"`
}

// DeriveStatementStatus computes a statement's status from its positions:
// completed when every position is matched or ignored, in progress when at
// least one is matched, new otherwise.
func DeriveStatementStatus(positions []StatementPosition) StatementStatus {
	if len(positions) == 0 {
		return StatementStatusNew
	}

	settled, matched := 0, 0
	for _, p := range positions {
		switch p.Status {
		case PositionStatusMatched:
			matched++
			settled++
		case PositionStatusIgnored:
			settled++
		}
	}

	switch {
	case settled == len(positions):
		return StatementStatusCompleted
	case matched > 0:
		return StatementStatusInProgress
	default:
		return StatementStatusNew
	}
}

// ClassifyAccount maps a SKR-style account number to a booking kind by its
// leading digit.
func ClassifyAccount(account string) BookingKind {
	switch leadingDigit(account) {
	case '4':
		return BookingKindRevenue
	case '6', '7':
		return BookingKindExpense
	case '0':
		return BookingKindAsset
	default:
		return BookingKindOther
	}
}

// ClassifyPartner maps a contra account to the kind of business partner it
// belongs to.
func ClassifyPartner(contraAccount string) PartnerType {
	switch leadingDigit(contraAccount) {
	case '7':
		return PartnerTypeVendor
	case '1':
		return PartnerTypeCustomer
	default:
		return PartnerTypeOther
	}
}

func leadingDigit(account string) byte {
	account = strings.TrimSpace(account)
	if account == "" {
		return 0
	}
	return account[0]
}
