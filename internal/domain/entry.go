package domain

import (
	"github.com/shopspring/decimal"
)

// Entry is a single holding as known to the positions backend. Each asset
// type has its own concrete entry struct.
type Entry interface {
	AssetType() AssetType
	EntryID() string
	EntrySource() Source
	EntryName() string
}

// EntryBase carries the fields every entry shares.
type EntryBase struct {
	ID     string `json:"id,omitempty"`
	Source Source `json:"source,omitempty"`
}

func (b EntryBase) EntryID() string     { return b.ID }
func (b EntryBase) EntrySource() Source { return b.Source }

// AccountEntry is a bank account.
type AccountEntry struct {
	EntryBase
	Name         string          `json:"name"`
	IBAN         string          `json:"iban,omitempty"`
	Type         string          `json:"type"`
	Currency     string          `json:"currency"`
	Total        decimal.Decimal `json:"total"`
	InterestRate decimal.Decimal `json:"interest"`
}

func (AccountEntry) AssetType() AssetType { return AssetTypeAccount }
func (e AccountEntry) EntryName() string  { return e.Name }

// CardEntry is a debit or credit card, optionally tied to an account.
type CardEntry struct {
	EntryBase
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Currency       string          `json:"currency"`
	Used           decimal.Decimal `json:"used"`
	Limit          decimal.Decimal `json:"limit"`
	RelatedAccount *string         `json:"related_account"`
}

func (CardEntry) AssetType() AssetType { return AssetTypeCard }
func (e CardEntry) EntryName() string  { return e.Name }

// LoanEntry is a loan or mortgage.
type LoanEntry struct {
	EntryBase
	Name                 string          `json:"name"`
	Type                 string          `json:"type"`
	Currency             string          `json:"currency"`
	LoanAmount           decimal.Decimal `json:"loan_amount"`
	CurrentInstallment   decimal.Decimal `json:"current_installment"`
	InterestRate         decimal.Decimal `json:"interest_rate"`
	PrincipalOutstanding decimal.Decimal `json:"principal_outstanding"`
	Creation             string          `json:"creation"`
	Maturity             string          `json:"maturity"`
}

func (LoanEntry) AssetType() AssetType { return AssetTypeLoan }
func (e LoanEntry) EntryName() string  { return e.Name }

// FundPortfolioEntry groups funds held at one manager, optionally funded from an account.
type FundPortfolioEntry struct {
	EntryBase
	Name              string          `json:"name"`
	Currency          string          `json:"currency"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	MarketValue       decimal.Decimal `json:"market_value"`
	AccountID         *string         `json:"account_id"`
}

func (FundPortfolioEntry) AssetType() AssetType { return AssetTypeFundPortfolio }
func (e FundPortfolioEntry) EntryName() string  { return e.Name }

// PortfolioRef is the portfolio a fund belongs to.
type PortfolioRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// FundEntry is an investment fund position.
type FundEntry struct {
	EntryBase
	Name              string          `json:"name"`
	ISIN              string          `json:"isin"`
	Shares            decimal.Decimal `json:"shares"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	AverageBuyPrice   decimal.Decimal `json:"average_buy_price"`
	MarketValue       decimal.Decimal `json:"market_value"`
	Currency          string          `json:"currency"`
	Portfolio         *PortfolioRef   `json:"portfolio"`
}

func (FundEntry) AssetType() AssetType { return AssetTypeFund }
func (e FundEntry) EntryName() string  { return e.Name }

// StockEntry is a stock or ETF position.
type StockEntry struct {
	EntryBase
	Name            string          `json:"name"`
	Ticker          string          `json:"ticker"`
	ISIN            string          `json:"isin"`
	Type            string          `json:"type"`
	Shares          decimal.Decimal `json:"shares"`
	AverageBuyPrice decimal.Decimal `json:"average_buy_price"`
	MarketValue     decimal.Decimal `json:"market_value"`
	Currency        string          `json:"currency"`
}

func (StockEntry) AssetType() AssetType { return AssetTypeStock }
func (e StockEntry) EntryName() string  { return e.Name }

// DepositEntry is a term deposit.
type DepositEntry struct {
	EntryBase
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Creation     string          `json:"creation"`
	Maturity     string          `json:"maturity"`
}

func (DepositEntry) AssetType() AssetType { return AssetTypeDeposit }
func (e DepositEntry) EntryName() string  { return e.Name }

// FactoringEntry is an invoice factoring note.
type FactoringEntry struct {
	EntryBase
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	StartDate    string          `json:"start"`
	MaturityDate string          `json:"maturity"`
	State        string          `json:"state"`
}

func (FactoringEntry) AssetType() AssetType { return AssetTypeFactoring }
func (e FactoringEntry) EntryName() string  { return e.Name }

// RealEstateCFEntry is a real estate crowdfunding note.
type RealEstateCFEntry struct {
	EntryBase
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	Currency      string          `json:"currency"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	StartDate     string          `json:"start"`
	MaturityDate  string          `json:"maturity"`
	Type          string          `json:"type"`
	State         string          `json:"state"`
}

func (RealEstateCFEntry) AssetType() AssetType { return AssetTypeRealEstateCF }
func (e RealEstateCFEntry) EntryName() string  { return e.Name }

// CryptoEntry is a crypto asset holding.
type CryptoEntry struct {
	EntryBase
	Name              string          `json:"name"`
	Symbol            string          `json:"symbol"`
	Amount            decimal.Decimal `json:"amount"`
	InitialInvestment decimal.Decimal `json:"initial_investment"`
	AverageBuyPrice   decimal.Decimal `json:"average_buy_price"`
	Currency          string          `json:"currency"`
}

func (CryptoEntry) AssetType() AssetType { return AssetTypeCrypto }
func (e CryptoEntry) EntryName() string  { return e.Name }
