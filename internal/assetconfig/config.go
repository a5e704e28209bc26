// Package assetconfig holds the per-asset-type form, comparison and payload
// behaviour plugged into the position managers.
package assetconfig

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/usecase"
)

const dateLayout = "2006-01-02"

var validate = mustValidator(newValidator())

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	rules := map[string]validator.Func{
		"decimal": func(fl validator.FieldLevel) bool {
			_, err := parseDecimal(fl.Field().String())
			return err == nil
		},
		"currency": func(fl validator.FieldLevel) bool {
			return money.GetCurrency(strings.ToUpper(strings.TrimSpace(fl.Field().String()))) != nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register %q rule: %w", tag, err)
		}
	}
	return v, nil
}

func mustValidator(v *validator.Validate, err error) *validator.Validate {
	if err != nil {
		panic(err)
	}
	return v
}

// All returns the configuration of every supported asset type.
func All() []usecase.AssetConfig {
	return []usecase.AssetConfig{
		NewAccountConfig(),
		NewCardConfig(),
		NewLoanConfig(),
		NewFundPortfolioConfig(),
		NewFundConfig(),
		NewStockConfig(),
		NewDepositConfig(),
		NewFactoringConfig(),
		NewRealEstateCFConfig(),
		NewCryptoConfig(),
	}
}

// ForType returns the configuration of t.
func ForType(t domain.AssetType) (usecase.AssetConfig, error) {
	for _, cfg := range All() {
		if cfg.AssetType() == t {
			return cfg, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAssetType, t)
}

// base implements the parts of usecase.AssetConfig that do not depend on the entry type.
type base struct {
	assetType domain.AssetType
	label     string
	rules     map[string]string
	// nonNegative fields must hold a value >= 0 when filled in.
	nonNegative []string
	defaults    domain.Form
}

func (b base) AssetType() domain.AssetType { return b.assetType }

func (b base) CreateEmptyForm(entityID string) domain.Form {
	form := domain.Form{}
	for field := range b.rules {
		form[field] = ""
	}
	for k, v := range b.defaults {
		form[k] = v
	}
	form[domain.FieldEntityID] = entityID
	return form
}

// ValidateForm checks the form against the declared rules.
func (b base) ValidateForm(form domain.Form) domain.FieldErrors {
	errs := domain.FieldErrors{}

	data := make(map[string]any, len(b.rules))
	rules := make(map[string]any, len(b.rules))
	for field, rule := range b.rules {
		data[field] = form.Get(field)
		rules[field] = rule
	}

	for field, res := range validate.ValidateMap(data, rules) {
		err, ok := res.(error)
		if !ok {
			continue
		}
		errs.Add(field, messageFor(err))
	}

	for _, field := range b.nonNegative {
		if _, failed := errs[field]; failed {
			continue
		}
		raw := form.Get(field)
		if raw == "" {
			continue
		}
		if d, err := parseDecimal(raw); err == nil && d.IsNegative() {
			errs.Add(field, "Must not be negative")
		}
	}

	return errs
}

func (b base) DisplayName(d domain.Draft) string {
	if d.Entry != nil {
		if name := strings.TrimSpace(d.Entry.EntryName()); name != "" {
			return name
		}
	}
	return b.label
}

// buildDrafts seeds one draft per manual entry of the asset type. Entities
// are visited in list order, then any others by id.
func (b base) buildDrafts(snapshot *domain.Snapshot, entities []domain.Entity, newLocalID func() string) []domain.Draft {
	if snapshot == nil {
		return []domain.Draft{}
	}

	names := make(map[string]string, len(entities))
	ids := make([]string, 0, len(snapshot.Positions))
	for _, e := range entities {
		names[e.ID] = e.Name
		if _, ok := snapshot.Positions[e.ID]; ok {
			ids = append(ids, e.ID)
		}
	}
	var rest []string
	for id := range snapshot.Positions {
		if _, ok := names[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	ids = append(ids, rest...)

	drafts := []domain.Draft{}
	for _, id := range ids {
		for _, entry := range snapshot.ManualEntries(id, b.assetType) {
			drafts = append(drafts, domain.Draft{
				LocalID:    newLocalID(),
				OriginalID: entry.EntryID(),
				Entity:     domain.ExistingEntity(id),
				EntityName: names[id],
				Entry:      entry,
			})
		}
	}
	return drafts
}

func messageFor(err error) string {
	var verrs validator.ValidationErrors
	if ve, ok := err.(validator.ValidationErrors); ok {
		verrs = ve
	}
	if len(verrs) == 0 {
		return "Invalid value"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "decimal":
		return "Enter a valid number"
	case "currency":
		return "Unknown currency"
	case "datetime":
		return "Enter a date as YYYY-MM-DD"
	case "oneof":
		return "Select one of: " + fe.Param()
	case "max":
		return "Too long"
	default:
		return "Invalid value"
	}
}

// parseDecimal accepts both dot and comma as decimal separator.
func parseDecimal(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	return decimal.NewFromString(raw)
}

// decimalField parses an optional numeric field. Empty means zero.
func decimalField(form domain.Form, field string) (decimal.Decimal, bool) {
	raw := form.Get(field)
	if raw == "" {
		return decimal.Zero, true
	}
	d, err := parseDecimal(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// decimals parses several numeric fields, failing if any is malformed.
func decimals(form domain.Form, fields ...string) ([]decimal.Decimal, bool) {
	out := make([]decimal.Decimal, len(fields))
	for i, f := range fields {
		d, ok := decimalField(form, f)
		if !ok {
			return nil, false
		}
		out[i] = d
	}
	return out, true
}

func formDecimal(d decimal.Decimal) string { return d.String() }

func num(d decimal.Decimal) json.Number { return json.Number(d.String()) }

func currency(form domain.Form) string {
	return strings.ToUpper(form.Get("currency"))
}

func optionalString(form domain.Form, field string) *string {
	v := form.Get(field)
	if v == "" {
		return nil
	}
	return &v
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// baseFrom keeps id and source of the entry being edited.
func baseFrom(previous domain.Entry) domain.EntryBase {
	if previous == nil {
		return domain.EntryBase{Source: domain.SourceManual}
	}
	b := domain.EntryBase{ID: previous.EntryID(), Source: previous.EntrySource()}
	if b.Source == "" {
		b.Source = domain.SourceManual
	}
	return b
}
