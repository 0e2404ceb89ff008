package entity

import (
	"time"

	"clinica-agenda/pkg/dateutil"
)

// SelectionMode governs how many concrete calendar dates a create batch
// resolves to.
type SelectionMode string

const (
	ModeDaily  SelectionMode = "DIARIO"
	ModeRandom SelectionMode = "ALEATORIO"
	ModeRange  SelectionMode = "RANGO"
)

// ScheduleDraft is the in-progress schedule being created or edited. All
// transitions are pure: they return a new draft and never mutate the
// receiver, so derived state can only be a function of the current value.
type ScheduleDraft struct {
	Mode          SelectionMode
	SelectedDate  time.Time
	SelectedDates []time.Time
	RangeStart    *time.Time
	RangeEnd      *time.Time
	DoctorID      int
	SpecialtyID   int
	OfficeID      int
	ShiftID       int
	Slots         int // derived by the capacity resolver, never user-edited
	Type          ScheduleType
	Status        ScheduleStatus
}

// NewDraft is the blank create-mode draft anchored at today.
func NewDraft(today time.Time) ScheduleDraft {
	return ScheduleDraft{
		Mode:         ModeDaily,
		SelectedDate: dateutil.StartOfDay(today),
		Type:         TypeNormal,
		Status:       StatusActive,
	}
}

// WithMode switches the selection mode. Switching is a hard reset of all
// three date views, not a projection of the prior selection.
func (d ScheduleDraft) WithMode(mode SelectionMode, today time.Time) ScheduleDraft {
	d.Mode = mode
	d.SelectedDate = dateutil.StartOfDay(today)
	d.SelectedDates = nil
	d.RangeStart = nil
	d.RangeEnd = nil
	return d
}

// PickDaily anchors the draft on a single date. In create mode the random
// set and range collapse onto the same day so no view disagrees with the
// anchor; in edit mode only the record's own date moves.
func (d ScheduleDraft) PickDaily(date time.Time, editing bool) ScheduleDraft {
	day := dateutil.StartOfDay(date)
	d.SelectedDate = day
	if editing {
		return d
	}
	d.SelectedDates = []time.Time{day}
	start, end := day, day
	d.RangeStart = &start
	d.RangeEnd = &end
	return d
}

// ToggleRandom adds date to the random set, or removes it when a same-day
// entry already exists. The set stays sorted and deduplicated by day.
func (d ScheduleDraft) ToggleRandom(date time.Time) ScheduleDraft {
	d.SelectedDates = dateutil.ToggleDay(d.SelectedDates, date)
	return d
}

// PickRange runs the three-state range toggle: no start sets the start, a
// lone start sets the end (even chronologically before the start), and a
// complete range restarts with the new date as start. The third click is the
// only way to redefine a range.
func (d ScheduleDraft) PickRange(date time.Time) ScheduleDraft {
	day := dateutil.StartOfDay(date)
	switch {
	case d.RangeStart == nil:
		d.RangeStart = &day
		d.RangeEnd = nil
	case d.RangeEnd == nil:
		d.RangeEnd = &day
	default:
		d.RangeStart = &day
		d.RangeEnd = nil
	}
	return d
}

// ResolveBatch produces the ordered list of concrete dates a save would
// submit. Range resolves day-by-day over the closed interval, tolerating
// reversed bounds; an incomplete range resolves to nothing.
func (d ScheduleDraft) ResolveBatch() []time.Time {
	switch d.Mode {
	case ModeRandom:
		return dateutil.SortUnique(d.SelectedDates)
	case ModeRange:
		if d.RangeStart == nil || d.RangeEnd == nil {
			return nil
		}
		return dateutil.DaysBetween(*d.RangeStart, *d.RangeEnd)
	default:
		if d.SelectedDate.IsZero() {
			return nil
		}
		return []time.Time{dateutil.StartOfDay(d.SelectedDate)}
	}
}

// datesSatisfied is the mode-specific date requirement for create mode.
func (d ScheduleDraft) datesSatisfied() bool {
	switch d.Mode {
	case ModeRandom:
		return len(d.SelectedDates) > 0
	case ModeRange:
		return d.RangeStart != nil && d.RangeEnd != nil
	default:
		return !d.SelectedDate.IsZero()
	}
}

// Valid reports whether the draft is structurally submittable. Edit mode
// skips the date requirement: a persisted record already owns its one date.
func (d ScheduleDraft) Valid(editing bool) bool {
	if d.DoctorID <= 0 || d.SpecialtyID <= 0 || d.OfficeID <= 0 || d.ShiftID <= 0 {
		return false
	}
	if d.Slots < 1 {
		return false
	}
	if editing {
		return true
	}
	return d.datesSatisfied()
}

// EnoughToCreate is create-mode dirtiness: there is no baseline before the
// first save, so "dirty" means the draft carries enough content to attempt
// one — any foreign key touched plus the mode's date requirement.
func (d ScheduleDraft) EnoughToCreate() bool {
	touched := d.DoctorID > 0 || d.SpecialtyID > 0 || d.OfficeID > 0 || d.ShiftID > 0
	return touched && d.datesSatisfied()
}

// DirtyAgainst diffs the seven tracked fields against the edit baseline.
func (d ScheduleDraft) DirtyAgainst(baseline ScheduleDraft) bool {
	return !dateutil.SameDay(d.SelectedDate, baseline.SelectedDate) ||
		d.DoctorID != baseline.DoctorID ||
		d.SpecialtyID != baseline.SpecialtyID ||
		d.OfficeID != baseline.OfficeID ||
		d.ShiftID != baseline.ShiftID ||
		d.Type != baseline.Type ||
		d.Status != baseline.Status
}

// Input snapshots the draft's shared field set for submission.
func (d ScheduleDraft) Input() ScheduleInput {
	return ScheduleInput{
		Date:        dateutil.StartOfDay(d.SelectedDate),
		DoctorID:    d.DoctorID,
		SpecialtyID: d.SpecialtyID,
		OfficeID:    d.OfficeID,
		ShiftID:     d.ShiftID,
		Slots:       d.Slots,
		Type:        d.Type,
		Status:      d.Status,
	}
}
