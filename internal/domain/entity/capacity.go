package entity

// CapacitySnapshot is the ephemeral result of a capacity lookup for a
// doctor/shift pair. Slots come from the shift duration divided by the
// doctor's average minutes per patient; the collaborator does the math.
type CapacitySnapshot struct {
	Slots                      int
	ShiftDurationMinutes       int
	DoctorAvgMinutesPerPatient int
}
