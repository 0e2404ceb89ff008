package repository

import (
	"context"

	"clinica-agenda/internal/domain/entity"
)

// LookupRepository serves the active reference entities. Read-only: the
// engine never mutates reference data.
type LookupRepository interface {
	Active(ctx context.Context, kind entity.LookupKind) ([]entity.LookupOption, error)
}
