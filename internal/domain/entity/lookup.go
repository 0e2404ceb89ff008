package entity

// LookupKind names the reference collections the engine reads (never writes).
type LookupKind string

const (
	LookupDoctors     LookupKind = "medicos"
	LookupSpecialties LookupKind = "especialidades"
	LookupOffices     LookupKind = "consultorios"
	LookupShifts      LookupKind = "turnos"
)

// LookupOption is one active reference entity as served by the lookup
// endpoints and embedded in schedule rows.
type LookupOption struct {
	ID    int
	Code  string
	Label string
}
