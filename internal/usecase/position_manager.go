package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/positiondraft/internal/domain"
	"github.com/iho/positiondraft/internal/infrastructure/metrics"
)

// ManagerState is the editing state of a PositionManager.
type ManagerState int

const (
	StateViewing ManagerState = iota
	StateEditing
	StateFormOpen
	StateConfirmDiscard
)

func (s ManagerState) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEditing:
		return "editing"
	case StateFormOpen:
		return "form_open"
	case StateConfirmDiscard:
		return "confirm_discard"
	default:
		return "unknown"
	}
}

// PositionManager stages the drafts of one asset type. It is not safe for
// concurrent use: calls are expected from a single goroutine, the way UI
// events are delivered.
type PositionManager struct {
	ws      *Workspace
	cfg     AssetConfig
	t       domain.AssetType
	logger  zerolog.Logger
	metrics *metrics.Metrics

	state         ManagerState
	initialDrafts []domain.Draft
	// baseline is initialDrafts as of entering edit mode.
	baseline []domain.Draft
	checker  *DirtyChecker
	drafts   []domain.Draft
	dirty    bool
	form     *FormSession
	saving   bool

	// quiet suppresses reacting to store notifications caused by this manager.
	quiet       int
	unsubscribe func()
}

func newPositionManager(ws *Workspace, cfg AssetConfig) *PositionManager {
	m := &PositionManager{
		ws:            ws,
		cfg:           cfg,
		t:             cfg.AssetType(),
		logger:        ws.logger.With().Str("asset_type", string(cfg.AssetType())).Logger(),
		metrics:       ws.metrics,
		initialDrafts: []domain.Draft{},
		drafts:        []domain.Draft{},
	}
	m.checker = NewDirtyChecker(cfg, nil)
	m.unsubscribe = ws.store.Subscribe(m.onStoreChange)
	return m
}

// AssetType returns the managed asset type.
func (m *PositionManager) AssetType() domain.AssetType { return m.t }

// Config returns the asset configuration.
func (m *PositionManager) Config() AssetConfig { return m.cfg }

// State returns the current state.
func (m *PositionManager) State() ManagerState { return m.state }

// IsEditing reports whether edits are being staged.
func (m *PositionManager) IsEditing() bool { return m.state != StateViewing }

// IsDirty reports whether the session holds unsaved changes.
func (m *PositionManager) IsDirty() bool { return m.dirty }

// Drafts returns the working list. Callers must not modify it.
func (m *PositionManager) Drafts() []domain.Draft { return m.drafts }

// Draft returns the working draft with localID.
func (m *PositionManager) Draft(localID string) (domain.Draft, bool) {
	if i := m.indexOf(localID); i >= 0 {
		return m.drafts[i], true
	}
	return domain.Draft{}, false
}

// Form returns the open form, or nil.
func (m *PositionManager) Form() *FormSession { return m.form }

// IsDraftDirty reports whether d differs from the baseline.
func (m *PositionManager) IsDraftDirty(d domain.Draft) bool { return m.checker.IsDirty(d) }

// DirtyFields lists the fields of d that differ from the baseline.
func (m *PositionManager) DirtyFields(d domain.Draft) []string { return m.checker.DirtyFields(d) }

// DeletedOriginalIDs returns the baseline ids missing from the working list.
func (m *PositionManager) DeletedOriginalIDs() domain.IDSet {
	present := make(domain.IDSet, len(m.drafts))
	for _, d := range m.drafts {
		if d.OriginalID != "" {
			present[d.OriginalID] = struct{}{}
		}
	}
	deleted := make(domain.IDSet)
	for _, d := range m.baseline {
		if d.OriginalID != "" && !present.Has(d.OriginalID) {
			deleted[d.OriginalID] = struct{}{}
		}
	}
	return deleted
}

// refresh recomputes the drafts seeded from the backend. The working list
// follows them only while not editing.
func (m *PositionManager) refresh(snapshot *domain.Snapshot, entities []domain.Entity) {
	drafts := m.cfg.BuildDraftsFromPositions(snapshot, entities, m.ws.idGen.Generate)
	if drafts == nil {
		drafts = []domain.Draft{}
	}
	m.initialDrafts = drafts
	if m.state == StateViewing {
		m.resetToInitial()
	}
}

// EnterEditMode freezes the working list as an editable copy. Snapshot
// refreshes no longer replace it until the session ends.
func (m *PositionManager) EnterEditMode() {
	if m.state != StateViewing {
		return
	}
	m.beginEdit()
	m.drafts = cloneDrafts(m.drafts)
	m.publish()
}

func (m *PositionManager) beginEdit() {
	m.baseline = m.initialDrafts
	m.checker = NewDirtyChecker(m.cfg, m.baseline)
	m.state = StateEditing
	m.dirty = false
}

// OpenCreate opens an empty form. The entity defaults to entityHint, or to the
// only entity when exactly one exists.
func (m *PositionManager) OpenCreate(entityHint string) (*FormSession, error) {
	if err := m.requireNoForm(); err != nil {
		return nil, err
	}
	m.EnterEditMode()

	entityID := strings.TrimSpace(entityHint)
	if entityID == "" && len(m.ws.entities) == 1 {
		entityID = m.ws.entities[0].ID
	}

	form := m.cfg.CreateEmptyForm(entityID)
	if form == nil {
		form = domain.Form{}
	}
	form[domain.FieldEntityID] = entityID
	if _, ok := form[domain.FieldNewEntityName]; !ok {
		form[domain.FieldNewEntityName] = ""
	}
	if entityID == "" && len(m.AvailableEntities()) == 0 {
		form[domain.FieldEntityMode] = domain.EntityModeCreate
	} else {
		form[domain.FieldEntityMode] = domain.EntityModeSelect
	}

	m.form = newFormSession(form, nil)
	m.state = StateFormOpen
	return m.form, nil
}

// OpenEdit opens a form populated from the draft with localID.
func (m *PositionManager) OpenEdit(localID string) (*FormSession, error) {
	if err := m.requireNoForm(); err != nil {
		return nil, err
	}
	i := m.indexOf(localID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDraftNotFound, localID)
	}
	m.EnterEditMode()

	draft := m.drafts[i]
	form := m.cfg.DraftToForm(draft)
	if form == nil {
		form = domain.Form{}
	}
	form[domain.FieldEntityMode] = domain.EntityModeSelect
	form[domain.FieldEntityID] = draft.Entity.Key()
	form[domain.FieldNewEntityName] = ""

	m.form = newFormSession(form, &draft)
	m.state = StateFormOpen
	return m.form, nil
}

// SubmitForm validates the open form and upserts the resulting draft.
// Field problems are returned as FieldErrors with a nil error and leave the
// form open. An entry that cannot be built yields domain.ErrInvalidEntry.
func (m *PositionManager) SubmitForm() (domain.FieldErrors, error) {
	if m.form == nil || m.state != StateFormOpen {
		return nil, domain.ErrNoFormOpen
	}
	session := m.form
	form := session.form

	errs := m.cfg.ValidateForm(form)
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	ref, entityName := m.resolveEntity(form, session.editing, errs)
	if len(errs) > 0 {
		session.errors = errs
		return errs, nil
	}

	var previous domain.Entry
	if session.editing != nil {
		previous = session.editing.Entry
	}
	entry := m.cfg.BuildEntryFromForm(form, previous)
	if entry == nil {
		m.ws.notifier.Error(msgInvalidEntry)
		return nil, domain.ErrInvalidEntry
	}

	draft := domain.Draft{
		Entity:     ref,
		EntityName: entityName,
		Entry:      entry,
	}
	if session.editing != nil {
		draft.LocalID = session.editing.LocalID
		draft.OriginalID = session.editing.OriginalID
	} else {
		draft.LocalID = m.ws.idGen.Generate()
	}

	next := cloneDrafts(m.drafts)
	if i := indexOf(next, draft.LocalID); i >= 0 {
		next[i] = draft
	} else {
		next = append(next, draft)
	}

	m.drafts = next
	m.dirty = true
	m.form = nil
	m.state = StateEditing
	m.publish()
	return nil, nil
}

// CloseForm closes the open form. Unsaved form changes are only discarded
// after confirmation; it returns false when the user keeps the form open.
func (m *PositionManager) CloseForm(ctx context.Context) bool {
	if m.form == nil {
		return true
	}
	if m.form.HasUnsavedChanges() {
		m.state = StateConfirmDiscard
		if !m.ws.confirmer.Confirm(ctx, msgConfirmCloseForm) {
			m.state = StateFormOpen
			return false
		}
	}
	m.form = nil
	m.state = StateEditing
	return true
}

// DeleteWarning returns the text describing which dependents deleting the
// draft would unlink, or "".
func (m *PositionManager) DeleteWarning(localID string) string {
	i := m.indexOf(localID)
	if i < 0 || !m.ws.links.HasDependents(m.t) {
		return ""
	}
	return WarningMessage(m.ws.links.Dependents(m.t, m.drafts[i]))
}

// Delete removes a draft after confirmation, unlinking dependent drafts of
// other asset types first. It returns false when the user declined.
func (m *PositionManager) Delete(ctx context.Context, localID string) (bool, error) {
	if err := m.requireNoForm(); err != nil {
		return false, err
	}
	i := m.indexOf(localID)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", domain.ErrDraftNotFound, localID)
	}
	target := m.drafts[i]

	prompt := fmt.Sprintf(msgConfirmDelete, m.cfg.DisplayName(target))
	if warning := m.DeleteWarning(localID); warning != "" {
		prompt += " " + warning
	}
	if !m.ws.confirmer.Confirm(ctx, prompt) {
		return false, nil
	}

	m.EnterEditMode()
	if m.ws.links.HasDependents(m.t) {
		m.ws.links.Unlink(m.t, target)
	}

	next := make([]domain.Draft, 0, len(m.drafts))
	for _, d := range m.drafts {
		if d.LocalID != localID {
			next = append(next, d)
		}
	}

	m.drafts = next
	m.dirty = true
	m.publish()
	return true, nil
}

// Cancel leaves edit mode, discarding staged changes after confirmation when
// there are any. Dependent managers whose drafts were rewritten by this
// session are reverted too. Links to drafts still deleted in another asset
// type's session are nulled again, which keeps the reverted manager editing.
// It returns false when the user declined.
func (m *PositionManager) Cancel(ctx context.Context) bool {
	if m.state == StateViewing {
		return true
	}
	participants := m.ws.participants(m)
	if anyDirty(participants) || (m.form != nil && m.form.HasUnsavedChanges()) {
		if !m.ws.confirmer.Confirm(ctx, msgConfirmCancel) {
			return false
		}
	}
	for _, p := range participants {
		p.discard()
	}
	for _, p := range participants {
		m.ws.unlinkDeleted(p.t)
	}
	return true
}

// Save commits the staged changes of this manager, and of dependent managers
// whose drafts were rewritten, in one batch.
func (m *PositionManager) Save(ctx context.Context) error {
	switch m.state {
	case StateViewing:
		return domain.ErrNotEditing
	case StateFormOpen, StateConfirmDiscard:
		return domain.ErrFormOpen
	}
	if m.saving {
		return domain.ErrInvalidState
	}
	m.saving = true
	defer func() { m.saving = false }()

	return m.ws.save(ctx, m.ws.participants(m))
}

// AvailableEntities returns the backend entities followed by the entities
// still to be created that any asset type's drafts reference by name.
func (m *PositionManager) AvailableEntities() []domain.Entity {
	out := make([]domain.Entity, 0, len(m.ws.entities))
	seen := make(map[string]struct{}, len(m.ws.entities))
	for _, e := range m.ws.entities {
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	for _, ref := range m.pendingEntities() {
		key := ref.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, domain.Entity{ID: key, Name: ref.PendingName(), Pending: true})
	}
	return out
}

// MergeView builds the display list from the snapshot and the working drafts.
func (m *PositionManager) MergeView() []MergedItem {
	in := MergeInput{
		Baseline: m.ws.baselineEntries(m.t),
		Drafts:   m.drafts,
		Deleted:  m.ws.store.GetDeletedOriginalIDs(m.t),
		IsDirty:  m.checker.IsDirty,
	}
	if cm, ok := m.cfg.(CosmeticMerger); ok {
		in.Cosmetic = cm
	}
	return BuildMergeView(in)
}

// Close detaches the manager and clears its drafts from the store, so the
// next session starts from the backend state.
func (m *PositionManager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.ws.store.ClearDrafts(m.t)
}

// resolveEntity turns the entity fields of the form into a ref, recording
// problems in errs.
func (m *PositionManager) resolveEntity(form domain.Form, editing *domain.Draft, errs domain.FieldErrors) (domain.EntityRef, string) {
	if form.EntityMode() == domain.EntityModeCreate {
		name := form.Get(domain.FieldNewEntityName)
		if name == "" {
			errs.Add(domain.FieldNewEntityName, msgEntityNameRequired)
			return domain.EntityRef{}, ""
		}
		if m.entityNameTaken(name, editing) {
			errs.Add(domain.FieldNewEntityName, msgEntityNameTaken)
			return domain.EntityRef{}, ""
		}
		if editing != nil && editing.Entity.IsPending() {
			return editing.Entity.WithPendingName(name), name
		}
		return domain.PendingEntity(m.ws.idGen.Generate(), name), name
	}

	id := form.Get(domain.FieldEntityID)
	if id == "" {
		errs.Add(domain.FieldEntityID, msgEntityRequired)
		return domain.EntityRef{}, ""
	}
	for _, e := range m.ws.entities {
		if e.ID == id {
			return domain.ExistingEntity(e.ID), e.Name
		}
	}
	for _, ref := range m.pendingEntities() {
		if ref.Key() == id {
			return ref, ref.PendingName()
		}
	}
	errs.Add(domain.FieldEntityID, msgEntityUnknown)
	return domain.EntityRef{}, ""
}

// entityNameTaken checks name against backend entities and against the new
// entities of this asset type's other drafts.
func (m *PositionManager) entityNameTaken(name string, editing *domain.Draft) bool {
	for _, e := range m.ws.entities {
		if strings.EqualFold(strings.TrimSpace(e.Name), name) {
			return true
		}
	}
	for _, d := range m.drafts {
		if editing != nil && d.LocalID == editing.LocalID {
			continue
		}
		if d.Entity.IsPending() && strings.EqualFold(d.Entity.PendingName(), name) {
			return true
		}
	}
	return false
}

// pendingEntities scans every asset type's drafts for named entities that
// will be created on save, in a stable order.
func (m *PositionManager) pendingEntities() []domain.EntityRef {
	all := m.ws.store.AllDrafts()
	all[m.t] = m.drafts

	types := make([]domain.AssetType, 0, len(all))
	for t := range all {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return assetOrder(types[i]) < assetOrder(types[j]) })

	var out []domain.EntityRef
	seen := make(map[string]struct{})
	for _, t := range types {
		for _, d := range all[t] {
			if !d.Entity.IsPending() || d.Entity.PendingName() == "" {
				continue
			}
			if _, ok := seen[d.Entity.Key()]; ok {
				continue
			}
			seen[d.Entity.Key()] = struct{}{}
			out = append(out, d.Entity)
		}
	}
	return out
}

// onStoreChange adopts rewrites of this asset type's list made by others,
// such as links nulled by the link resolver.
func (m *PositionManager) onStoreChange() {
	if m.quiet > 0 || m.ws.settling > 0 {
		return
	}
	current := m.ws.store.GetDrafts(m.t)
	if domain.SameDraftList(current, m.drafts) {
		return
	}

	if m.state == StateViewing {
		m.beginEdit()
	}
	m.drafts = current
	m.dirty = true

	m.quiet++
	m.ws.store.SetDeletedOriginalIDs(m.t, m.DeletedOriginalIDs())
	m.quiet--

	m.logger.Debug().Int("drafts", len(current)).Msg("adopted drafts rewritten by another asset type")
}

// publish makes the working list and the derived deleted ids visible.
func (m *PositionManager) publish() {
	m.quiet++
	defer func() { m.quiet-- }()

	m.ws.store.SetDrafts(m.t, m.drafts)
	m.ws.store.SetDeletedOriginalIDs(m.t, m.DeletedOriginalIDs())

	if m.metrics != nil {
		m.metrics.DraftsPublished.WithLabelValues(string(m.t)).Inc()
	}
}

// resetToInitial points the working list back at the backend drafts.
func (m *PositionManager) resetToInitial() {
	m.baseline = m.initialDrafts
	m.checker = NewDirtyChecker(m.cfg, m.baseline)
	m.drafts = m.initialDrafts
	m.dirty = false
	m.publish()
}

// discard drops the session and returns to viewing.
func (m *PositionManager) discard() {
	m.form = nil
	m.state = StateViewing
	m.resetToInitial()
}

// finishSave ends the session after a successful save. The next refresh
// publishes the drafts rebuilt from the backend.
func (m *PositionManager) finishSave() {
	m.form = nil
	m.state = StateViewing
	m.dirty = false
	m.drafts = m.initialDrafts
	m.baseline = m.initialDrafts
	m.checker = NewDirtyChecker(m.cfg, m.baseline)
}

func (m *PositionManager) requireNoForm() error {
	if m.state == StateFormOpen || m.state == StateConfirmDiscard {
		return domain.ErrFormOpen
	}
	return nil
}

func (m *PositionManager) indexOf(localID string) int {
	return indexOf(m.drafts, localID)
}

func indexOf(drafts []domain.Draft, localID string) int {
	for i, d := range drafts {
		if d.LocalID == localID {
			return i
		}
	}
	return -1
}

func cloneDrafts(drafts []domain.Draft) []domain.Draft {
	out := make([]domain.Draft, len(drafts), len(drafts)+1)
	copy(out, drafts)
	return out
}

func anyDirty(managers []*PositionManager) bool {
	for _, m := range managers {
		if m.dirty {
			return true
		}
	}
	return false
}

func assetOrder(t domain.AssetType) int {
	for i, a := range domain.AllAssetTypes {
		if a == t {
			return i
		}
	}
	return len(domain.AllAssetTypes)
}
