package dto

import (
	"encoding/json"
	"time"
)

// Envelope is the wrapper every collaborator response arrives in.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
	Meta    *ListMeta       `json:"meta,omitempty"`
}

type ListMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// ScheduleRow is a schedule record as the collaborator serializes it.
type ScheduleRow struct {
	ID             int        `json:"id"`
	Codigo         string     `json:"codigo"`
	Fecha          string     `json:"fecha"` // YYYY-MM-DD
	Cupos          int        `json:"cupos"`
	Tipo           string     `json:"tipo"`
	Estado         string     `json:"estado"`
	MedicoID       int        `json:"medico_id"`
	EspecialidadID int        `json:"especialidad_id"`
	ConsultorioID  int        `json:"consultorio_id"`
	TurnoID        int        `json:"turno_id"`
	Medico         *LookupRow `json:"medico,omitempty"`
	Especialidad   *LookupRow `json:"especialidad,omitempty"`
	Consultorio    *LookupRow `json:"consultorio,omitempty"`
	Turno          *LookupRow `json:"turno,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// LookupRow is an active reference entity (doctor, specialty, office, shift).
type LookupRow struct {
	ID     int    `json:"id"`
	Codigo string `json:"codigo,omitempty"`
	Nombre string `json:"nombre"`
}

// CreateBatchRequest carries one shared field set plus every resolved date.
type CreateBatchRequest struct {
	Fechas         []string `json:"fechas" validate:"required,min=1,dive,datetime=2006-01-02"`
	MedicoID       int      `json:"medico_id" validate:"required,gt=0"`
	EspecialidadID int      `json:"especialidad_id" validate:"required,gt=0"`
	ConsultorioID  int      `json:"consultorio_id" validate:"required,gt=0"`
	TurnoID        int      `json:"turno_id" validate:"required,gt=0"`
	Cupos          int      `json:"cupos" validate:"required,gte=1"`
	Tipo           string   `json:"tipo" validate:"required,oneof=NORMAL EXTRAORDINARIA"`
	Estado         string   `json:"estado" validate:"required,oneof=ACTIVO INACTIVO SUSPENDIDO"`
}

// UpdateScheduleRequest always carries the full field set, never a patch.
type UpdateScheduleRequest struct {
	Fecha          string `json:"fecha" validate:"required,datetime=2006-01-02"`
	MedicoID       int    `json:"medico_id" validate:"required,gt=0"`
	EspecialidadID int    `json:"especialidad_id" validate:"required,gt=0"`
	ConsultorioID  int    `json:"consultorio_id" validate:"required,gt=0"`
	TurnoID        int    `json:"turno_id" validate:"required,gt=0"`
	Cupos          int    `json:"cupos" validate:"required,gte=1"`
	Tipo           string `json:"tipo" validate:"required,oneof=NORMAL EXTRAORDINARIA"`
	Estado         string `json:"estado" validate:"required,oneof=ACTIVO INACTIVO SUSPENDIDO"`
}

type NextIDResponse struct {
	ProximoID int `json:"proximo_id"`
}

type CapacityResponse struct {
	Cupos                   int `json:"cupos"`
	DuracionTurnoMinutos    int `json:"duracion_turno_minutos"`
	PromedioMinutosPaciente int `json:"promedio_minutos_paciente"`
}
