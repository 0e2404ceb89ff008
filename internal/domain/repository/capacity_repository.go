package repository

import (
	"context"

	"clinica-agenda/internal/domain/entity"
)

// CapacityRepository computes the bookable slot count for a doctor/shift
// pair from the shift duration and the doctor's average consultation time.
type CapacityRepository interface {
	Compute(ctx context.Context, doctorID, shiftID int) (*entity.CapacitySnapshot, error)
}
