package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/wI2L/jsondiff"

	"github.com/iho/positiondraft/internal/domain"
)

// DirtyChecker compares drafts against the baseline captured when edit mode
// was entered.
type DirtyChecker struct {
	cfg       AssetConfig
	baseline  map[string]domain.Draft
	canonical map[string]string
}

// NewDirtyChecker indexes baseline drafts by original id.
func NewDirtyChecker(cfg AssetConfig, baseline []domain.Draft) *DirtyChecker {
	c := &DirtyChecker{
		cfg:       cfg,
		baseline:  make(map[string]domain.Draft, len(baseline)),
		canonical: make(map[string]string, len(baseline)),
	}
	for _, d := range baseline {
		if d.OriginalID == "" {
			continue
		}
		c.baseline[d.OriginalID] = d
		c.canonical[d.OriginalID] = CanonicalJSON(cfg.NormalizeDraftForCompare(d))
	}
	return c
}

// IsDirty reports whether d must be saved. New drafts are always dirty.
func (c *DirtyChecker) IsDirty(d domain.Draft) bool {
	if d.IsNew() {
		return true
	}
	base, ok := c.canonical[d.OriginalID]
	if !ok {
		return true
	}
	return CanonicalJSON(c.cfg.NormalizeDraftForCompare(d)) != base
}

// Baseline returns the baseline draft d was seeded from.
func (c *DirtyChecker) Baseline(originalID string) (domain.Draft, bool) {
	d, ok := c.baseline[originalID]
	return d, ok
}

// DirtyFields lists the top-level normalized fields that differ from the baseline.
func (c *DirtyChecker) DirtyFields(d domain.Draft) []string {
	base, ok := c.baseline[d.OriginalID]
	if d.IsNew() || !ok {
		return nil
	}
	return changedFields(c.cfg.NormalizeDraftForCompare(base), c.cfg.NormalizeDraftForCompare(d))
}

// CanonicalJSON serializes v with object keys sorted at every depth, so two
// values that only differ in key order serialize identically.
func CanonicalJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return string(raw)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

// changedFields returns the sorted top-level keys touched by a JSON patch from a to b.
func changedFields(a, b any) []string {
	patch, err := jsondiff.Compare(a, b)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{}, len(patch))
	for _, op := range patch {
		field := strings.TrimPrefix(string(op.Path), "/")
		if i := strings.IndexByte(field, '/'); i >= 0 {
			field = field[:i]
		}
		if field == "" {
			continue
		}
		seen[field] = struct{}{}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
