package usecase

import (
	"context"
	"errors"
	"time"

	"clinica-agenda/internal/domain/entity"
	"clinica-agenda/internal/domain/repository"
	"clinica-agenda/pkg/apierror"
	"clinica-agenda/pkg/codes"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSaveInFlight   = errors.New("a save is already in progress")
	ErrNotSubmittable = errors.New("draft is not valid or has no changes to save")
	ErrNotFound       = errors.New("schedule not found in the current page")
	ErrNoConfirmation = errors.New("deactivation has not been confirmed")
)

// Notice is a dismissible user-facing message. There is no fatal path in the
// session: every failure ends in a notice and the user may retry.
type Notice struct {
	Type string // "error" or "success"
	Text string
}

// ScheduleSession drives one editing session over the medical-schedule
// collaborator: the draft and its pure transitions, derived capacity and
// code-preview state, validity/dirtiness gates, and the save/update/
// deactivate orchestration.
//
// The session is event-driven and not goroutine-safe; callers serialize
// access. Each remote recomputation carries a generation counter captured
// before the call and rechecked before applying the result, so a response
// that outlived its inputs is discarded instead of applied.
type ScheduleSession struct {
	log       *logrus.Logger
	schedules repository.ScheduleRepository
	capacity  repository.CapacityRepository
	lookups   repository.LookupRepository

	id  uuid.UUID
	now func() time.Time

	draft    entity.ScheduleDraft
	baseline entity.ScheduleDraft
	selected *entity.ScheduleRecord

	capacitySnap entity.CapacitySnapshot
	capacityGen  uint64
	previewBatch entity.CodePreviewBatch
	previewGen   uint64
	listGen      uint64

	saving               bool
	confirmingDeactivate bool
	notice               *Notice

	filter  entity.ScheduleFilter
	page    int
	perPage int
	rows    []entity.ScheduleRecord
	meta    entity.PageMeta

	doctors       []entity.LookupOption
	specialties   []entity.LookupOption
	offices       []entity.LookupOption
	shifts        []entity.LookupOption
	lookupsLoaded bool
}

func NewScheduleSession(
	log *logrus.Logger,
	schedules repository.ScheduleRepository,
	capacity repository.CapacityRepository,
	lookups repository.LookupRepository,
	perPage int,
) *ScheduleSession {
	if perPage < 1 {
		perPage = 10
	}
	s := &ScheduleSession{
		log:       log,
		schedules: schedules,
		capacity:  capacity,
		lookups:   lookups,
		id:        uuid.New(),
		now:       time.Now,
		page:      1,
		perPage:   perPage,
	}
	s.draft = entity.NewDraft(s.now())
	s.previewBatch = entity.CodePreviewBatch{Display: codes.Placeholder}
	return s
}

// --- read accessors ---

func (s *ScheduleSession) ID() uuid.UUID                     { return s.id }
func (s *ScheduleSession) Draft() entity.ScheduleDraft       { return s.draft }
func (s *ScheduleSession) Capacity() entity.CapacitySnapshot { return s.capacitySnap }
func (s *ScheduleSession) Preview() entity.CodePreviewBatch  { return s.previewBatch }
func (s *ScheduleSession) Rows() []entity.ScheduleRecord     { return s.rows }
func (s *ScheduleSession) Meta() entity.PageMeta             { return s.meta }
func (s *ScheduleSession) Notice() *Notice                   { return s.notice }
func (s *ScheduleSession) Saving() bool                      { return s.saving }
func (s *ScheduleSession) ConfirmingDeactivate() bool        { return s.confirmingDeactivate }

func (s *ScheduleSession) Doctors() []entity.LookupOption     { return s.doctors }
func (s *ScheduleSession) Specialties() []entity.LookupOption { return s.specialties }
func (s *ScheduleSession) Offices() []entity.LookupOption     { return s.offices }
func (s *ScheduleSession) Shifts() []entity.LookupOption      { return s.shifts }

// Selected returns the record currently loaded for editing, nil in create mode.
func (s *ScheduleSession) Selected() *entity.ScheduleRecord {
	if s.selected == nil {
		return nil
	}
	record := *s.selected
	return &record
}

func (s *ScheduleSession) editing() bool { return s.selected != nil }

// Editing reports whether the session is mutating an existing record.
func (s *ScheduleSession) Editing() bool { return s.editing() }

func (s *ScheduleSession) ClearNotice() { s.notice = nil }

// IsValid reports whether the draft is structurally submittable.
func (s *ScheduleSession) IsValid() bool {
	return s.draft.Valid(s.editing())
}

// IsDirty reports whether there is anything to save. In edit mode it diffs
// against the baseline captured at load time; in create mode there is no
// baseline yet, so dirty means the draft has enough content to attempt a save.
func (s *ScheduleSession) IsDirty() bool {
	if s.editing() {
		return s.draft.DirtyAgainst(s.baseline)
	}
	return s.draft.EnoughToCreate()
}

// CanSave is the single gate for the save action.
func (s *ScheduleSession) CanSave() bool {
	return s.IsValid() && s.IsDirty() && !s.saving
}

// --- lookups ---

// LoadLookups fetches the reference collections once. The snapshot is
// immutable for the session's lifetime; a failed collection degrades to an
// empty list and the session stays usable.
func (s *ScheduleSession) LoadLookups(ctx context.Context) {
	if s.lookupsLoaded {
		return
	}
	s.doctors = s.loadLookup(ctx, entity.LookupDoctors)
	s.specialties = s.loadLookup(ctx, entity.LookupSpecialties)
	s.offices = s.loadLookup(ctx, entity.LookupOffices)
	s.shifts = s.loadLookup(ctx, entity.LookupShifts)
	s.lookupsLoaded = true
}

func (s *ScheduleSession) loadLookup(ctx context.Context, kind entity.LookupKind) []entity.LookupOption {
	options, err := s.lookups.Active(ctx, kind)
	if err != nil {
		s.log.Warnf("Failed to load %s lookup: %+v", kind, err)
		return nil
	}
	return options
}

// --- date interactions ---

// SetMode switches the selection mode, hard-resetting every date view, and
// invalidates the code preview. Meaningless while editing a saved record.
func (s *ScheduleSession) SetMode(ctx context.Context, mode entity.SelectionMode) {
	if s.saving || s.editing() {
		return
	}
	s.draft = s.draft.WithMode(mode, s.now())
	s.RefreshPreview(ctx)
}

func (s *ScheduleSession) PickDaily(ctx context.Context, date time.Time) {
	if s.saving {
		return
	}
	s.draft = s.draft.PickDaily(date, s.editing())
	s.RefreshPreview(ctx)
}

func (s *ScheduleSession) ToggleRandom(ctx context.Context, date time.Time) {
	if s.saving || s.editing() {
		return
	}
	s.draft = s.draft.ToggleRandom(date)
	s.RefreshPreview(ctx)
}

func (s *ScheduleSession) PickRange(ctx context.Context, date time.Time) {
	if s.saving || s.editing() {
		return
	}
	s.draft = s.draft.PickRange(date)
	s.RefreshPreview(ctx)
}

// --- field setters ---

// SetDoctor changes the doctor and recomputes capacity. Capacity recompute is
// triggered only here and in SetShift; unrelated edits never refetch it.
func (s *ScheduleSession) SetDoctor(ctx context.Context, id int) {
	if s.saving || s.draft.DoctorID == id {
		return
	}
	s.draft.DoctorID = id
	s.recomputeCapacity(ctx)
}

func (s *ScheduleSession) SetShift(ctx context.Context, id int) {
	if s.saving || s.draft.ShiftID == id {
		return
	}
	s.draft.ShiftID = id
	s.recomputeCapacity(ctx)
}

func (s *ScheduleSession) SetSpecialty(id int) {
	if s.saving {
		return
	}
	s.draft.SpecialtyID = id
}

func (s *ScheduleSession) SetOffice(id int) {
	if s.saving {
		return
	}
	s.draft.OfficeID = id
}

func (s *ScheduleSession) SetType(t entity.ScheduleType) {
	if s.saving {
		return
	}
	s.draft.Type = t
}

func (s *ScheduleSession) SetStatus(status entity.ScheduleStatus) {
	if s.saving {
		return
	}
	s.draft.Status = status
}

// --- derived state recomputation ---

// recomputeCapacity resolves the slot count for the current doctor/shift
// pair. An unset id zeroes the slots synchronously, without a remote call and
// without waiting on any response already in flight (the generation bump
// orphans it). A failed computation also zeroes the slots and raises a
// notice; the draft stays editable but cannot become valid until a recompute
// succeeds.
func (s *ScheduleSession) recomputeCapacity(ctx context.Context) {
	s.capacityGen++
	gen := s.capacityGen

	doctorID, shiftID := s.draft.DoctorID, s.draft.ShiftID
	if doctorID <= 0 || shiftID <= 0 {
		s.capacitySnap = entity.CapacitySnapshot{}
		s.draft.Slots = 0
		return
	}

	snapshot, err := s.capacity.Compute(ctx, doctorID, shiftID)
	if gen != s.capacityGen {
		return // inputs changed while the call was out; drop the stale result
	}
	if err != nil {
		s.log.Warnf("Failed to compute capacity for doctor %d shift %d: %+v", doctorID, shiftID, err)
		s.capacitySnap = entity.CapacitySnapshot{}
		s.draft.Slots = 0
		s.notice = &Notice{Type: "error", Text: apierror.UserMessage(err)}
		return
	}

	s.capacitySnap = *snapshot
	s.draft.Slots = snapshot.Slots
}

// RefreshPreview recomputes the advisory code preview from the next
// sequential id and the resolved batch size. Editing sessions and empty
// batches render the placeholder without touching the network; a failed or
// non-positive next id degrades to the placeholder silently.
func (s *ScheduleSession) RefreshPreview(ctx context.Context) {
	s.previewGen++
	gen := s.previewGen

	if s.editing() {
		s.previewBatch = entity.CodePreviewBatch{Display: codes.Placeholder}
		return
	}
	count := len(s.draft.ResolveBatch())
	if count == 0 {
		s.previewBatch = entity.CodePreviewBatch{Display: codes.Placeholder}
		return
	}

	nextID, err := s.schedules.NextID(ctx)
	if gen != s.previewGen {
		return
	}
	if err != nil || nextID <= 0 {
		if err != nil {
			s.log.Warnf("Failed to fetch next schedule id: %+v", err)
		}
		s.previewBatch = entity.CodePreviewBatch{Count: count, Display: codes.Placeholder}
		return
	}

	s.previewBatch = entity.CodePreviewBatch{
		StartID: nextID,
		Count:   count,
		Codes:   codes.Preview(nextID, count),
		Display: codes.Summarize(nextID, count),
	}
}

// --- list state ---

func (s *ScheduleSession) SetFilter(filter entity.ScheduleFilter) {
	s.filter = filter
	s.page = 1
}

func (s *ScheduleSession) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// RefreshList reloads the current page. On failure the previous rows are kept
// and a notice is raised; a refresh superseded by a newer one is discarded.
func (s *ScheduleSession) RefreshList(ctx context.Context) error {
	s.listGen++
	gen := s.listGen

	rows, meta, err := s.schedules.List(ctx, &s.filter, s.page, s.perPage)
	if gen != s.listGen {
		return nil
	}
	if err != nil {
		s.log.Warnf("Failed to list schedules: %+v", err)
		s.notice = &Notice{Type: "error", Text: apierror.UserMessage(err)}
		return err
	}

	s.rows = rows
	s.meta = *meta
	return nil
}

// Select loads the record with the given id from the current page into edit
// mode.
func (s *ScheduleSession) Select(id int) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.loadForEdit(&s.rows[i])
			return nil
		}
	}
	return ErrNotFound
}

// NewRecord leaves edit mode and starts a fresh create-mode draft.
func (s *ScheduleSession) NewRecord(ctx context.Context) {
	if s.saving {
		return
	}
	s.selected = nil
	s.baseline = entity.ScheduleDraft{}
	s.capacitySnap = entity.CapacitySnapshot{}
	s.confirmingDeactivate = false
	s.draft = entity.NewDraft(s.now())
	s.RefreshPreview(ctx)
}

// loadForEdit pins the draft to the record's single date and captures the
// immutable baseline dirtiness is diffed against.
func (s *ScheduleSession) loadForEdit(record *entity.ScheduleRecord) {
	selected := *record
	s.selected = &selected
	s.confirmingDeactivate = false

	s.draft = entity.ScheduleDraft{
		Mode:         entity.ModeDaily,
		SelectedDate: record.Date,
		DoctorID:     record.DoctorID,
		SpecialtyID:  record.SpecialtyID,
		OfficeID:     record.OfficeID,
		ShiftID:      record.ShiftID,
		Slots:        record.Slots,
		Type:         record.Type,
		Status:       record.Status,
	}
	s.baseline = s.draft
	s.capacitySnap = entity.CapacitySnapshot{Slots: record.Slots}
	s.previewBatch = entity.CodePreviewBatch{Display: codes.Placeholder}
}

// --- submission ---

// Save submits the draft: one batched create carrying every resolved date, or
// a single full-field update while editing. On success the list is refreshed
// and the affected record is reloaded into edit mode so server-side
// normalization is reflected and the dirty flag clears.
func (s *ScheduleSession) Save(ctx context.Context) error {
	if s.saving {
		return ErrSaveInFlight
	}
	if !s.IsValid() || !s.IsDirty() {
		return ErrNotSubmittable
	}

	s.saving = true
	defer func() { s.saving = false }()

	if s.editing() {
		return s.saveUpdate(ctx)
	}
	return s.saveCreate(ctx)
}

func (s *ScheduleSession) saveCreate(ctx context.Context) error {
	dates := s.draft.ResolveBatch()
	if len(dates) == 0 {
		return ErrNotSubmittable
	}

	input := s.draft.Input()
	created, err := s.schedules.CreateBatch(ctx, &input, dates)
	if err != nil {
		s.log.Warnf("Failed to create schedule batch: %+v", err)
		s.notice = &Notice{Type: "error", Text: apierror.UserMessage(err)}
		return err
	}

	s.page = 1
	s.refreshAfterWrite(ctx)
	if len(created) > 0 {
		s.loadForEdit(&created[0])
	}
	s.notice = &Notice{Type: "success", Text: "Programación registrada correctamente."}
	return nil
}

func (s *ScheduleSession) saveUpdate(ctx context.Context) error {
	input := s.draft.Input()
	updated, err := s.schedules.Update(ctx, s.selected.ID, &input)
	if err != nil {
		s.log.Warnf("Failed to update schedule %d: %+v", s.selected.ID, err)
		s.notice = &Notice{Type: "error", Text: apierror.UserMessage(err)}
		return err
	}

	s.refreshAfterWrite(ctx)
	if updated != nil {
		s.loadForEdit(updated)
	}
	s.notice = &Notice{Type: "success", Text: "Programación actualizada correctamente."}
	return nil
}

// refreshAfterWrite reloads the list without letting a list failure mask the
// outcome of the write that just succeeded.
func (s *ScheduleSession) refreshAfterWrite(ctx context.Context) {
	s.listGen++
	gen := s.listGen
	rows, meta, err := s.schedules.List(ctx, &s.filter, s.page, s.perPage)
	if gen != s.listGen || err != nil {
		if err != nil {
			s.log.Warnf("Failed to refresh schedule list after save: %+v", err)
		}
		return
	}
	s.rows = rows
	s.meta = *meta
}

// Cancel restores the baseline in edit mode or fully resets the create-mode
// draft, and clears any pending notice.
func (s *ScheduleSession) Cancel() {
	if s.saving {
		return
	}
	if s.editing() {
		s.draft = s.baseline
		s.capacitySnap = entity.CapacitySnapshot{Slots: s.baseline.Slots}
	} else {
		s.draft = entity.NewDraft(s.now())
		s.capacitySnap = entity.CapacitySnapshot{}
	}
	s.notice = nil
	s.confirmingDeactivate = false
}

// --- deactivation ---

// RequestDeactivate opens the confirmation step. It is a strict no-op when
// nothing is selected, a save is in flight, or the record is already
// inactive: deactivation is irreversible through this engine and must never
// be offered twice.
func (s *ScheduleSession) RequestDeactivate() bool {
	if s.saving || s.selected == nil || s.selected.Status == entity.StatusInactive {
		return false
	}
	s.confirmingDeactivate = true
	return true
}

// DismissDeactivate closes the confirmation step without acting.
func (s *ScheduleSession) DismissDeactivate() {
	s.confirmingDeactivate = false
}

// ConfirmDeactivate performs the deactivation previously requested. The
// dialog closes whatever the outcome; on failure the record keeps its
// pre-attempt state locally so it cannot drift from the server.
func (s *ScheduleSession) ConfirmDeactivate(ctx context.Context) error {
	if !s.confirmingDeactivate {
		return ErrNoConfirmation
	}
	if s.saving {
		return ErrSaveInFlight
	}
	s.confirmingDeactivate = false

	s.saving = true
	defer func() { s.saving = false }()

	record, err := s.schedules.Deactivate(ctx, s.selected.ID)
	if err != nil {
		s.log.Warnf("Failed to deactivate schedule %d: %+v", s.selected.ID, err)
		s.notice = &Notice{Type: "error", Text: apierror.UserMessage(err)}
		return err
	}

	s.refreshAfterWrite(ctx)
	if record != nil {
		s.loadForEdit(record)
	}
	s.notice = &Notice{Type: "success", Text: "Programación desactivada."}
	return nil
}
