package assetconfig

import (
	"github.com/iho/positiondraft/internal/domain"
)

// DepositConfig configures term deposits.
type DepositConfig struct{ base }

func NewDepositConfig() *DepositConfig {
	return &DepositConfig{base{
		assetType: domain.AssetTypeDeposit,
		label:     "Deposit",
		rules: map[string]string{
			"name":          "required,max=100",
			"amount":        "required,decimal",
			"currency":      "required,currency",
			"interest_rate": "required,decimal",
			"creation":      "required,datetime=" + dateLayout,
			"maturity":      "required,datetime=" + dateLayout,
		},
		nonNegative: []string{"amount", "interest_rate"},
		defaults:    domain.Form{"currency": "EUR"},
	}}
}

func (c *DepositConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *DepositConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.DepositEntry)
	return domain.Form{
		"name":          e.Name,
		"amount":        formDecimal(e.Amount),
		"currency":      e.Currency,
		"interest_rate": formDecimal(e.InterestRate),
		"creation":      e.Creation,
		"maturity":      e.Maturity,
	}
}

func (c *DepositConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "amount", "interest_rate")
	if !ok {
		return nil
	}
	return domain.DepositEntry{
		EntryBase:    baseFrom(previous),
		Name:         form.Get("name"),
		Amount:       v[0],
		Currency:     currency(form),
		InterestRate: v[1],
		Creation:     form.Get("creation"),
		Maturity:     form.Get("maturity"),
	}
}

func (c *DepositConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.DepositEntry)
	return map[string]any{
		"entity":        d.Entity.Key(),
		"name":          e.Name,
		"amount":        e.Amount.String(),
		"currency":      e.Currency,
		"interest_rate": e.InterestRate.String(),
		"creation":      e.Creation,
		"maturity":      e.Maturity,
	}
}

func (c *DepositConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.DepositEntry)
	return domain.PayloadEntry{
		"id":            e.ID,
		"name":          e.Name,
		"amount":        num(e.Amount),
		"currency":      e.Currency,
		"interest_rate": num(e.InterestRate),
		"creation":      e.Creation,
		"maturity":      e.Maturity,
	}
}

// FactoringConfig configures invoice factoring notes.
type FactoringConfig struct{ base }

func NewFactoringConfig() *FactoringConfig {
	return &FactoringConfig{base{
		assetType: domain.AssetTypeFactoring,
		label:     "Factoring",
		rules: map[string]string{
			"name":          "required,max=100",
			"amount":        "required,decimal",
			"currency":      "required,currency",
			"interest_rate": "required,decimal",
			"start":         "required,datetime=" + dateLayout,
			"maturity":      "required,datetime=" + dateLayout,
			"state":         "required,oneof=ACTIVE MATURED DEFAULTED",
		},
		nonNegative: []string{"amount", "interest_rate"},
		defaults:    domain.Form{"currency": "EUR", "state": "ACTIVE"},
	}}
}

func (c *FactoringConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *FactoringConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.FactoringEntry)
	return domain.Form{
		"name":          e.Name,
		"amount":        formDecimal(e.Amount),
		"currency":      e.Currency,
		"interest_rate": formDecimal(e.InterestRate),
		"start":         e.StartDate,
		"maturity":      e.MaturityDate,
		"state":         e.State,
	}
}

func (c *FactoringConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "amount", "interest_rate")
	if !ok {
		return nil
	}
	return domain.FactoringEntry{
		EntryBase:    baseFrom(previous),
		Name:         form.Get("name"),
		Amount:       v[0],
		Currency:     currency(form),
		InterestRate: v[1],
		StartDate:    form.Get("start"),
		MaturityDate: form.Get("maturity"),
		State:        form.Get("state"),
	}
}

func (c *FactoringConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.FactoringEntry)
	return map[string]any{
		"entity":        d.Entity.Key(),
		"name":          e.Name,
		"amount":        e.Amount.String(),
		"currency":      e.Currency,
		"interest_rate": e.InterestRate.String(),
		"start":         e.StartDate,
		"maturity":      e.MaturityDate,
		"state":         e.State,
	}
}

func (c *FactoringConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.FactoringEntry)
	return domain.PayloadEntry{
		"id":            e.ID,
		"name":          e.Name,
		"amount":        num(e.Amount),
		"currency":      e.Currency,
		"interest_rate": num(e.InterestRate),
		"start":         e.StartDate,
		"maturity":      e.MaturityDate,
		"state":         e.State,
	}
}

// RealEstateCFConfig configures real estate crowdfunding notes.
type RealEstateCFConfig struct{ base }

func NewRealEstateCFConfig() *RealEstateCFConfig {
	return &RealEstateCFConfig{base{
		assetType: domain.AssetTypeRealEstateCF,
		label:     "Real estate",
		rules: map[string]string{
			"name":           "required,max=100",
			"amount":         "required,decimal",
			"pending_amount": "omitempty,decimal",
			"currency":       "required,currency",
			"interest_rate":  "required,decimal",
			"start":          "required,datetime=" + dateLayout,
			"maturity":       "required,datetime=" + dateLayout,
			"type":           "required,oneof=LENDING EQUITY",
			"state":          "required,oneof=ACTIVE MATURED DEFAULTED",
		},
		nonNegative: []string{"amount", "pending_amount", "interest_rate"},
		defaults:    domain.Form{"currency": "EUR", "type": "LENDING", "state": "ACTIVE"},
	}}
}

func (c *RealEstateCFConfig) BuildDraftsFromPositions(s *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	return c.buildDrafts(s, entities, newLocalID)
}

func (c *RealEstateCFConfig) DraftToForm(d domain.Draft) domain.Form {
	e, _ := d.Entry.(domain.RealEstateCFEntry)
	return domain.Form{
		"name":           e.Name,
		"amount":         formDecimal(e.Amount),
		"pending_amount": formDecimal(e.PendingAmount),
		"currency":       e.Currency,
		"interest_rate":  formDecimal(e.InterestRate),
		"start":          e.StartDate,
		"maturity":       e.MaturityDate,
		"type":           e.Type,
		"state":          e.State,
	}
}

func (c *RealEstateCFConfig) BuildEntryFromForm(form domain.Form, previous domain.Entry) domain.Entry {
	v, ok := decimals(form, "amount", "pending_amount", "interest_rate")
	if !ok {
		return nil
	}
	return domain.RealEstateCFEntry{
		EntryBase:     baseFrom(previous),
		Name:          form.Get("name"),
		Amount:        v[0],
		PendingAmount: v[1],
		Currency:      currency(form),
		InterestRate:  v[2],
		StartDate:     form.Get("start"),
		MaturityDate:  form.Get("maturity"),
		Type:          form.Get("type"),
		State:         form.Get("state"),
	}
}

func (c *RealEstateCFConfig) NormalizeDraftForCompare(d domain.Draft) map[string]any {
	e, _ := d.Entry.(domain.RealEstateCFEntry)
	return map[string]any{
		"entity":         d.Entity.Key(),
		"name":           e.Name,
		"amount":         e.Amount.String(),
		"pending_amount": e.PendingAmount.String(),
		"currency":       e.Currency,
		"interest_rate":  e.InterestRate.String(),
		"start":          e.StartDate,
		"maturity":       e.MaturityDate,
		"type":           e.Type,
		"state":          e.State,
	}
}

func (c *RealEstateCFConfig) ToPayloadEntry(d domain.Draft) domain.PayloadEntry {
	e, _ := d.Entry.(domain.RealEstateCFEntry)
	return domain.PayloadEntry{
		"id":             e.ID,
		"name":           e.Name,
		"amount":         num(e.Amount),
		"pending_amount": num(e.PendingAmount),
		"currency":       e.Currency,
		"interest_rate":  num(e.InterestRate),
		"start":          e.StartDate,
		"maturity":       e.MaturityDate,
		"type":           e.Type,
		"state":          e.State,
	}
}
