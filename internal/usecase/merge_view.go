package usecase

import (
	"strconv"

	"github.com/iho/positiondraft/internal/domain"
)

// ItemState tags a merged item.
type ItemState string

const (
	ItemUnmodified ItemState = "unmodified"
	ItemDirty      ItemState = "dirty"
	ItemNew        ItemState = "new"
)

// MergedItem is one row of the display list.
type MergedItem struct {
	Key   string
	Entry domain.Entry
	// Draft is set when the row is backed by a draft.
	Draft *domain.Draft
	State ItemState
}

// IsDirty reports whether the row shows edited values.
func (i MergedItem) IsDirty() bool { return i.State == ItemDirty }

// IsNew reports whether the row shows an entry not yet saved.
func (i MergedItem) IsNew() bool { return i.State == ItemNew }

// MergeInput is what BuildMergeView needs for one asset type.
type MergeInput struct {
	// Baseline holds the backend entries in display order.
	Baseline []domain.Entry
	Drafts   []domain.Draft
	Deleted  domain.IDSet
	IsDirty  func(domain.Draft) bool
	// Cosmetic is optional.
	Cosmetic CosmeticMerger
}

// BuildMergeView merges backend entries with drafts. Tombstoned entries are
// dropped, dirty drafts replace their backend entry in place, and new drafts
// are appended in draft order. Keys are unique within the result.
func BuildMergeView(in MergeInput) []MergedItem {
	byOriginal := make(map[string]int, len(in.Drafts))
	for i, d := range in.Drafts {
		if d.OriginalID != "" {
			if _, ok := byOriginal[d.OriginalID]; !ok {
				byOriginal[d.OriginalID] = i
			}
		}
	}

	keys := newKeySet(len(in.Baseline) + len(in.Drafts))
	items := make([]MergedItem, 0, len(in.Baseline)+len(in.Drafts))
	consumed := make(map[int]struct{}, len(in.Drafts))

	for i, entry := range in.Baseline {
		originalID := entry.EntryID()
		if originalID == "" {
			items = append(items, MergedItem{
				Key:   keys.claim("baseline-" + strconv.Itoa(i)),
				Entry: entry,
				State: ItemUnmodified,
			})
			continue
		}
		if in.Deleted.Has(originalID) {
			continue
		}

		idx, ok := byOriginal[originalID]
		if !ok {
			items = append(items, MergedItem{Key: keys.claim(originalID), Entry: entry, State: ItemUnmodified})
			continue
		}
		consumed[idx] = struct{}{}

		draft := in.Drafts[idx]
		if in.IsDirty != nil && in.IsDirty(draft) {
			items = append(items, MergedItem{Key: keys.claim(originalID), Entry: draft.Entry, Draft: &draft, State: ItemDirty})
			continue
		}

		shown := entry
		if in.Cosmetic != nil && draft.Entry != nil {
			shown = in.Cosmetic.MergeCosmetic(entry, draft.Entry)
		}
		items = append(items, MergedItem{Key: keys.claim(originalID), Entry: shown, Draft: &draft, State: ItemUnmodified})
	}

	for i, d := range in.Drafts {
		if _, ok := consumed[i]; ok || !d.IsNew() {
			continue
		}
		draft := d
		items = append(items, MergedItem{Key: keys.claim(d.LocalID), Entry: d.Entry, Draft: &draft, State: ItemNew})
	}

	return items
}

type keySet map[string]struct{}

func newKeySet(n int) keySet { return make(keySet, n) }

// claim returns key, or key suffixed with a counter if it is already taken.
func (s keySet) claim(key string) string {
	candidate := key
	for n := 2; ; n++ {
		if _, taken := s[candidate]; !taken {
			s[candidate] = struct{}{}
			return candidate
		}
		candidate = key + "#" + strconv.Itoa(n)
	}
}
