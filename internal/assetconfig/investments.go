package assetconfig

import (
	"github.com/iho/positiondraft/internal/domain"
)

// FundPortfolioConfig configures fund portfolios. A portfolio may reference
// the account it is funded from.
type FundPortfolioConfig struct{ base }

func NewFundPortfolioConfig() *FundPortfolioConfig {
	return &FundPortfolioConfig{base{
		assetType: domain.AssetTypeFundPortfolio,
		label:     "Portfolio",
		rules: map[string]string{
			"name":               "required,max=100",
			"currency":           "required,currency",
			"initial_investment": "omitempty,decimal",
			"market_value":       "omitempty,decimal",
			"account_id":         "omitempty,max=64",
		},
		nonNegative: []string{"initial_investment", "market_value"},
		defaults:    domain.Form{"currency": "EUR"},
	}}
}

func (c *FundPortfolioConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *FundPortfolioConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.FundPortfolioEntry)
	return domain.Form{
		"name":               e.Name,
		"currency":           e.Currency,
		"initial_investment": formDecimal(e.InitialInvestment),
		"market_value":       formDecimal(e.MarketValue),
		"account_id":         derefString(e.AccountID),
	}
}

func (c *FundPortfolioConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "initial_investment", "market_value")
	if !ok {
		return nil
	}
	return domain.FundPortfolioEntry{
		EntryBase:         baseFrom(previous),
		Name:              form.Get("name"),
		Currency:          currency(form),
		InitialInvestment: v[0],
		MarketValue:       v[1],
		AccountID:         optionalString(form, "account_id"),
	}
}

func (c *FundPortfolioConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.FundPortfolioEntry)
	return map[string]any{
		"entity":             d.Entity.Key(),
		"name":               e.Name,
		"currency":           e.Currency,
		"initial_investment": e.InitialInvestment.String(),
		"market_value":       e.MarketValue.String(),
		"account_id":         nullableString(e.AccountID),
	}
}

func (c *FundPortfolioConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.FundPortfolioEntry)
	return domain.PayloadEntry{
		"id":                 e.ID,
		"name":               e.Name,
		"currency":           e.Currency,
		"initial_investment": num(e.InitialInvestment),
		"market_value":       num(e.MarketValue),
		"account_id":         nullableString(e.AccountID),
	}
}

// FundConfig configures investment funds. A fund may reference its portfolio.
type FundConfig struct{ base }

func NewFundConfig() *FundConfig {
	return &FundConfig{base{
		assetType: domain.AssetTypeFund,
		label:     "Fund",
		rules: map[string]string{
			"name":               "required,max=100",
			"isin":               "omitempty,alphanum,len=12",
			"shares":             "required,decimal",
			"initial_investment": "omitempty,decimal",
			"average_buy_price":  "required,decimal",
			"market_value":       "omitempty,decimal",
			"currency":           "required,currency",
			"portfolio":          "omitempty,max=64",
		},
		nonNegative: []string{"shares", "initial_investment", "average_buy_price", "market_value"},
		defaults:    domain.Form{"currency": "EUR"},
	}}
}

func (c *FundConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *FundConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.FundEntry)
	form := domain.Form{
		"name":               e.Name,
		"isin":               e.ISIN,
		"shares":             formDecimal(e.Shares),
		"initial_investment": formDecimal(e.InitialInvestment),
		"average_buy_price":  formDecimal(e.AverageBuyPrice),
		"market_value":       formDecimal(e.MarketValue),
		"currency":           e.Currency,
		"portfolio":          "",
	}
	if e.Portfolio != nil {
		form["portfolio"] = e.Portfolio.ID
	}
	return form
}

func (c *FundConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "shares", "initial_investment", "average_buy_price", "market_value")
	if !ok {
		return nil
	}
	entry := domain.FundEntry{
		EntryBase:         baseFrom(previous),
		Name:              form.Get("name"),
		ISIN:              form.Get("isin"),
		Shares:            v[0],
		InitialInvestment: v[1],
		AverageBuyPrice:   v[2],
		MarketValue:       v[3],
		Currency:          currency(form),
	}
	if id := form.Get("portfolio"); id != "" {
		entry.Portfolio = &domain.PortfolioRef{ID: id}
		if prev, ok := previous.(domain.FundEntry); ok && prev.Portfolio != nil && prev.Portfolio.ID == id {
			entry.Portfolio.Name = prev.Portfolio.Name
		}
	}
	return entry
}

// NormalizeDraftForCompare ignores the portfolio name, which the backend
// derives from the portfolio id.
func (c *FundConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.FundEntry)
	var portfolio any
	if e.Portfolio != nil {
		portfolio = e.Portfolio.ID
	}
	return map[string]any{
		"entity":             d.Entity.Key(),
		"name":               e.Name,
		"isin":               e.ISIN,
		"shares":             e.Shares.String(),
		"initial_investment": e.InitialInvestment.String(),
		"average_buy_price":  e.AverageBuyPrice.String(),
		"market_value":       e.MarketValue.String(),
		"currency":           e.Currency,
		"portfolio":          portfolio,
	}
}

func (c *FundConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.FundEntry)
	var portfolio any
	if e.Portfolio != nil {
		portfolio = map[string]any{"id": e.Portfolio.ID}
	}
	return domain.PayloadEntry{
		"id":                 e.ID,
		"name":               e.Name,
		"isin":               e.ISIN,
		"shares":             num(e.Shares),
		"initial_investment": num(e.InitialInvestment),
		"average_buy_price":  num(e.AverageBuyPrice),
		"market_value":       num(e.MarketValue),
		"currency":           e.Currency,
		"portfolio":          portfolio,
	}
}

// MergeCosmetic shows a clean draft with the backend's portfolio name.
func (c *FundConfig) MergeCosmetic(baseEntry, draft domain.Entry) domain.Entry {
	b, ok := baseEntry.(domain.FundEntry)
	if !ok {
		return draft
	}
	d, ok := draft.(domain.FundEntry)
	if !ok {
		return baseEntry
	}
	if d.Portfolio != nil && b.Portfolio != nil && d.Portfolio.ID == b.Portfolio.ID {
		p := *d.Portfolio
		p.Name = b.Portfolio.Name
		d.Portfolio = &p
	}
	return d
}

// StockConfig configures stocks and ETFs.
type StockConfig struct{ base }

func NewStockConfig() *StockConfig {
	return &StockConfig{base{
		assetType: domain.AssetTypeStock,
		label:     "Stock",
		rules: map[string]string{
			"name":              "omitempty,max=100",
			"ticker":            "omitempty,max=16",
			"isin":              "omitempty,alphanum,len=12",
			"type":              "required,oneof=STOCK ETF",
			"shares":            "required,decimal",
			"average_buy_price": "required,decimal",
			"market_value":      "omitempty,decimal",
			"currency":          "required,currency",
		},
		nonNegative: []string{"shares", "average_buy_price", "market_value"},
		defaults:    domain.Form{"type": "STOCK", "currency": "EUR"},
	}}
}

func (c *StockConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *StockConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.StockEntry)
	return domain.Form{
		"name":              e.Name,
		"ticker":            e.Ticker,
		"isin":              e.ISIN,
		"type":              e.Type,
		"shares":            formDecimal(e.Shares),
		"average_buy_price": formDecimal(e.AverageBuyPrice),
		"market_value":      formDecimal(e.MarketValue),
		"currency":          e.Currency,
	}
}

func (c *StockConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "shares", "average_buy_price", "market_value")
	if !ok {
		return nil
	}
	return domain.StockEntry{
		EntryBase:       baseFrom(previous),
		Name:            form.Get("name"),
		Ticker:          form.Get("ticker"),
		ISIN:            form.Get("isin"),
		Type:            form.Get("type"),
		Shares:          v[0],
		AverageBuyPrice: v[1],
		MarketValue:     v[2],
		Currency:        currency(form),
	}
}

func (c *StockConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.StockEntry)
	return map[string]any{
		"entity":            d.Entity.Key(),
		"name":              e.Name,
		"ticker":            e.Ticker,
		"isin":              e.ISIN,
		"type":              e.Type,
		"shares":            e.Shares.String(),
		"average_buy_price": e.AverageBuyPrice.String(),
		"market_value":      e.MarketValue.String(),
		"currency":          e.Currency,
	}
}

func (c *StockConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.StockEntry)
	return domain.PayloadEntry{
		"id":                e.ID,
		"name":              e.Name,
		"ticker":            e.Ticker,
		"isin":              e.ISIN,
		"type":              e.Type,
		"shares":            num(e.Shares),
		"average_buy_price": num(e.AverageBuyPrice),
		"market_value":      num(e.MarketValue),
		"currency":          e.Currency,
	}
}

// DisplayName falls back to the ticker for unnamed positions.
func (c *StockConfig) DisplayName(d domain.Draft) string {
	if e, ok := d.Entry.(domain.StockEntry); ok && e.Name == "" && e.Ticker != "" {
		return e.Ticker
	}
	return c.base.DisplayName(d)
}

// CryptoConfig configures crypto holdings.
type CryptoConfig struct{ base }

func NewCryptoConfig() *CryptoConfig {
	return &CryptoConfig{base{
		assetType: domain.AssetTypeCrypto,
		label:     "Crypto",
		rules: map[string]string{
			"name":               "omitempty,max=100",
			"symbol":             "required,max=16",
			"amount":             "required,decimal",
			"initial_investment": "omitempty,decimal",
			"average_buy_price":  "omitempty,decimal",
			"currency":           "required,currency",
		},
		nonNegative: []string{"amount", "initial_investment", "average_buy_price"},
		defaults:    domain.Form{"currency": "EUR"},
	}}
}

func (c *CryptoConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *CryptoConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.CryptoEntry)
	return domain.Form{
		"name":               e.Name,
		"symbol":             e.Symbol,
		"amount":             formDecimal(e.Amount),
		"initial_investment": formDecimal(e.InitialInvestment),
		"average_buy_price":  formDecimal(e.AverageBuyPrice),
		"currency":           e.Currency,
	}
}

func (c *CryptoConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "amount", "initial_investment", "average_buy_price")
	if !ok {
		return nil
	}
	return domain.CryptoEntry{
		EntryBase:         baseFrom(previous),
		Name:              form.Get("name"),
		Symbol:            form.Get("symbol"),
		Amount:            v[0],
		InitialInvestment: v[1],
		AverageBuyPrice:   v[2],
		Currency:          currency(form),
	}
}

func (c *CryptoConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.CryptoEntry)
	return map[string]any{
		"entity":             d.Entity.Key(),
		"name":               e.Name,
		"symbol":             e.Symbol,
		"amount":             e.Amount.String(),
		"initial_investment": e.InitialInvestment.String(),
		"average_buy_price":  e.AverageBuyPrice.String(),
		"currency":           e.Currency,
	}
}

func (c *CryptoConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.CryptoEntry)
	return domain.PayloadEntry{
		"id":                 e.ID,
		"name":               e.Name,
		"symbol":             e.Symbol,
		"amount":             num(e.Amount),
		"initial_investment": num(e.InitialInvestment),
		"average_buy_price":  num(e.AverageBuyPrice),
		"currency":           e.Currency,
	}
}

func (c *CryptoConfig) DisplayName(d domain.Draft) string {
	if e, ok := d.Entry.(domain.CryptoEntry); ok && e.Name == "" && e.Symbol != "" {
		return e.Symbol
	}
	return c.base.DisplayName(d)
}
