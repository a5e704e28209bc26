package assetconfig

import (
	"github.com/iho/positiondraft/internal/domain"
)

// AccountConfig configures bank accounts.
type AccountConfig struct{ base }

func NewAccountConfig() *AccountConfig {
	return &AccountConfig{base{
		assetType: domain.AssetTypeAccount,
		label:     "Account",
		rules: map[string]string{
			"name":     "required,max=100",
			"iban":     "omitempty,max=34",
			"type":     "required,oneof=CHECKING SAVINGS BROKERAGE VIRTUAL_WALLET",
			"currency": "required,currency",
			"total":    "required,decimal",
			"interest": "omitempty,decimal",
		},
		nonNegative: []string{"interest"},
		defaults:    domain.Form{"type": "CHECKING", "currency": "EUR"},
	}}
}

func (c *AccountConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *AccountConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.AccountEntry)
	return domain.Form{
		"name":     e.Name,
		"iban":     e.IBAN,
		"type":     e.Type,
		"currency": e.Currency,
		"total":    formDecimal(e.Total),
		"interest": formDecimal(e.InterestRate),
	}
}

func (c *AccountConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "total", "interest")
	if !ok {
		return nil
	}
	return domain.AccountEntry{
		EntryBase:    baseFrom(previous),
		Name:         form.Get("name"),
		IBAN:         form.Get("iban"),
		Type:         form.Get("type"),
		Currency:     currency(form),
		Total:        v[0],
		InterestRate: v[1],
	}
}

func (c *AccountConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.AccountEntry)
	return map[string]any{
		"entity":   d.Entity.Key(),
		"name":     e.Name,
		"iban":     e.IBAN,
		"type":     e.Type,
		"currency": e.Currency,
		"total":    e.Total.String(),
		"interest": e.InterestRate.String(),
	}
}

func (c *AccountConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.AccountEntry)
	return domain.PayloadEntry{
		"id":       e.ID,
		"name":     e.Name,
		"iban":     e.IBAN,
		"type":     e.Type,
		"currency": e.Currency,
		"total":    num(e.Total),
		"interest": num(e.InterestRate),
	}
}

// CardConfig configures cards. A card may reference an account.
type CardConfig struct{ base }

func NewCardConfig() *CardConfig {
	return &CardConfig{base{
		assetType: domain.AssetTypeCard,
		label:     "Card",
		rules: map[string]string{
			"name":            "required,max=100",
			"type":            "required,oneof=CREDIT DEBIT",
			"currency":        "required,currency",
			"used":            "required,decimal",
			"limit":           "omitempty,decimal",
			"related_account": "omitempty,max=64",
		},
		nonNegative: []string{"used", "limit"},
		defaults:    domain.Form{"type": "DEBIT", "currency": "EUR"},
	}}
}

func (c *CardConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *CardConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.CardEntry)
	return domain.Form{
		"name":            e.Name,
		"type":            e.Type,
		"currency":        e.Currency,
		"used":            formDecimal(e.Used),
		"limit":           formDecimal(e.Limit),
		"related_account": derefString(e.RelatedAccount),
	}
}

func (c *CardConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "used", "limit")
	if !ok {
		return nil
	}
	return domain.CardEntry{
		EntryBase:      baseFrom(previous),
		Name:           form.Get("name"),
		Type:           form.Get("type"),
		Currency:       currency(form),
		Used:           v[0],
		Limit:          v[1],
		RelatedAccount: optionalString(form, "related_account"),
	}
}

func (c *CardConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.CardEntry)
	return map[string]any{
		"entity":          d.Entity.Key(),
		"name":            e.Name,
		"type":            e.Type,
		"currency":        e.Currency,
		"used":            e.Used.String(),
		"limit":           e.Limit.String(),
		"related_account": nullableString(e.RelatedAccount),
	}
}

func (c *CardConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.CardEntry)
	return domain.PayloadEntry{
		"id":              e.ID,
		"name":            e.Name,
		"type":            e.Type,
		"currency":        e.Currency,
		"used":            num(e.Used),
		"limit":           num(e.Limit),
		"related_account": nullableString(e.RelatedAccount),
	}
}

// LoanConfig configures loans and mortgages.
type LoanConfig struct{ base }

func NewLoanConfig() *LoanConfig {
	return &LoanConfig{base{
		assetType: domain.AssetTypeLoan,
		label:     "Loan",
		rules: map[string]string{
			"name":                  "required,max=100",
			"type":                  "required,oneof=MORTGAGE STANDARD",
			"currency":              "required,currency",
			"loan_amount":           "required,decimal",
			"current_installment":   "required,decimal",
			"interest_rate":         "required,decimal",
			"principal_outstanding": "required,decimal",
			"creation":              "required,datetime=" + dateLayout,
			"maturity":              "required,datetime=" + dateLayout,
		},
		nonNegative: []string{"loan_amount", "current_installment", "interest_rate", "principal_outstanding"},
		defaults:    domain.Form{"type": "STANDARD", "currency": "EUR"},
	}}
}

func (c *LoanConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *LoanConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.LoanEntry)
	return domain.Form{
		"name":                  e.Name,
		"type":                  e.Type,
		"currency":              e.Currency,
		"loan_amount":           formDecimal(e.LoanAmount),
		"current_installment":   formDecimal(e.CurrentInstallment),
		"interest_rate":         formDecimal(e.InterestRate),
		"principal_outstanding": formDecimal(e.PrincipalOutstanding),
		"creation":              e.Creation,
		"maturity":              e.Maturity,
	}
}

func (c *LoanConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "loan_amount", "current_installment", "interest_rate", "principal_outstanding")
	if !ok {
		return nil
	}
	return domain.LoanEntry{
		EntryBase:            baseFrom(previous),
		Name:                 form.Get("name"),
		Type:                 form.Get("type"),
		Currency:             currency(form),
		LoanAmount:           v[0],
		CurrentInstallment:   v[1],
		InterestRate:         v[2],
		PrincipalOutstanding: v[3],
		Creation:             form.Get("creation"),
		Maturity:             form.Get("maturity"),
	}
}

func (c *LoanConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.LoanEntry)
	return map[string]any{
		"entity":                d.Entity.Key(),
		"name":                  e.Name,
		"type":                  e.Type,
		"currency":              e.Currency,
		"loan_amount":           e.LoanAmount.String(),
		"current_installment":   e.CurrentInstallment.String(),
		"interest_rate":         e.InterestRate.String(),
		"principal_outstanding": e.PrincipalOutstanding.String(),
		"creation":              e.Creation,
		"maturity":              e.Maturity,
	}
}

func (c *LoanConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.LoanEntry)
	return domain.PayloadEntry{
		"id":                    e.ID,
		"name":                  e.Name,
		"type":                  e.Type,
		"currency":              e.Currency,
		"loan_amount":           num(e.LoanAmount),
		"current_installment":   num(e.CurrentInstallment),
		"interest_rate":         num(e.InterestRate),
		"principal_outstanding": num(e.PrincipalOutstanding),
		"creation":              e.Creation,
		"maturity":              e.Maturity,
	}
}
