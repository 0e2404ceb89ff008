package entity

import (
	"time"
)

type ScheduleType string

const (
	TypeNormal        ScheduleType = "NORMAL"
	TypeExtraordinary ScheduleType = "EXTRAORDINARIA"
)

// CoerceType maps any unknown wire value to the documented default.
func CoerceType(s string) ScheduleType {
	switch ScheduleType(s) {
	case TypeNormal, TypeExtraordinary:
		return ScheduleType(s)
	default:
		return TypeNormal
	}
}

type ScheduleStatus string

const (
	StatusActive    ScheduleStatus = "ACTIVO"
	StatusInactive  ScheduleStatus = "INACTIVO"
	StatusSuspended ScheduleStatus = "SUSPENDIDO"
)

// CoerceStatus maps any unknown wire value to the documented default.
func CoerceStatus(s string) ScheduleStatus {
	switch ScheduleStatus(s) {
	case StatusActive, StatusInactive, StatusSuspended:
		return ScheduleStatus(s)
	default:
		return StatusActive
	}
}

// ScheduleRecord is a persisted medical schedule as the collaborator returns
// it. The server owns ids, codes and status transitions; this engine never
// fabricates any of them.
type ScheduleRecord struct {
	ID          int
	Code        string
	Date        time.Time
	DoctorID    int
	SpecialtyID int
	OfficeID    int
	ShiftID     int
	Doctor      LookupOption
	Specialty   LookupOption
	Office      LookupOption
	Shift       LookupOption
	Slots       int
	Type        ScheduleType
	Status      ScheduleStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScheduleInput is the shared field set submitted on create and update.
// Create pairs it with the resolved date batch; update pairs it with the
// record's single date.
type ScheduleInput struct {
	Date        time.Time
	DoctorID    int
	SpecialtyID int
	OfficeID    int
	ShiftID     int
	Slots       int
	Type        ScheduleType
	Status      ScheduleStatus
}
