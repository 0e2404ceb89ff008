package converter

import (
	"time"

	"clinica-agenda/internal/delivery/dto"
	"clinica-agenda/internal/domain/entity"
	"clinica-agenda/pkg/dateutil"
)

// RowToSchedule converts a collaborator row to a ScheduleRecord. Unknown
// tipo/estado values coerce to the documented defaults instead of failing,
// and an unparseable fecha is left as the zero time.
func RowToSchedule(row *dto.ScheduleRow) *entity.ScheduleRecord {
	if row == nil {
		return nil
	}

	date, _ := dateutil.Parse(row.Fecha)

	return &entity.ScheduleRecord{
		ID:          row.ID,
		Code:        row.Codigo,
		Date:        date,
		DoctorID:    row.MedicoID,
		SpecialtyID: row.EspecialidadID,
		OfficeID:    row.ConsultorioID,
		ShiftID:     row.TurnoID,
		Doctor:      rowToLookup(row.Medico),
		Specialty:   rowToLookup(row.Especialidad),
		Office:      rowToLookup(row.Consultorio),
		Shift:       rowToLookup(row.Turno),
		Slots:       row.Cupos,
		Type:        entity.CoerceType(row.Tipo),
		Status:      entity.CoerceStatus(row.Estado),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// RowsToSchedules converts a page of collaborator rows.
func RowsToSchedules(rows []dto.ScheduleRow) []entity.ScheduleRecord {
	records := make([]entity.ScheduleRecord, len(rows))
	for i := range rows {
		records[i] = *RowToSchedule(&rows[i])
	}
	return records
}

func rowToLookup(row *dto.LookupRow) entity.LookupOption {
	if row == nil {
		return entity.LookupOption{}
	}
	return entity.LookupOption{ID: row.ID, Code: row.Codigo, Label: row.Nombre}
}

// RowsToLookups converts a lookup listing.
func RowsToLookups(rows []dto.LookupRow) []entity.LookupOption {
	options := make([]entity.LookupOption, len(rows))
	for i := range rows {
		options[i] = rowToLookup(&rows[i])
	}
	return options
}

// MetaToPage converts the pagination block, defaulting to a single page when
// the collaborator omits it.
func MetaToPage(meta *dto.ListMeta) *entity.PageMeta {
	if meta == nil {
		return &entity.PageMeta{CurrentPage: 1, LastPage: 1}
	}
	return &entity.PageMeta{
		CurrentPage: meta.CurrentPage,
		PerPage:     meta.PerPage,
		Total:       meta.Total,
		LastPage:    meta.LastPage,
	}
}

// InputToCreateBatch builds the batched create payload from the shared field
// set and the resolved dates.
func InputToCreateBatch(input *entity.ScheduleInput, dates []time.Time) *dto.CreateBatchRequest {
	fechas := make([]string, len(dates))
	for i, d := range dates {
		fechas[i] = dateutil.Format(d)
	}
	return &dto.CreateBatchRequest{
		Fechas:         fechas,
		MedicoID:       input.DoctorID,
		EspecialidadID: input.SpecialtyID,
		ConsultorioID:  input.OfficeID,
		TurnoID:        input.ShiftID,
		Cupos:          input.Slots,
		Tipo:           string(input.Type),
		Estado:         string(input.Status),
	}
}

// InputToUpdate builds the full-field update payload.
func InputToUpdate(input *entity.ScheduleInput) *dto.UpdateScheduleRequest {
	return &dto.UpdateScheduleRequest{
		Fecha:          dateutil.Format(input.Date),
		MedicoID:       input.DoctorID,
		EspecialidadID: input.SpecialtyID,
		ConsultorioID:  input.OfficeID,
		TurnoID:        input.ShiftID,
		Cupos:          input.Slots,
		Tipo:           string(input.Type),
		Estado:         string(input.Status),
	}
}
