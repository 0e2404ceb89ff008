package repository

import (
	"context"
	"time"

	"clinica-agenda/internal/domain/entity"
)

// ScheduleRepository is the schedule surface of the clinic API. Creation is a
// true batch: one shared field set expanded server-side into one record per
// date. The server alone assigns ids, codes and status transitions.
type ScheduleRepository interface {
	List(ctx context.Context, filter *entity.ScheduleFilter, page, perPage int) ([]entity.ScheduleRecord, *entity.PageMeta, error)
	NextID(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, input *entity.ScheduleInput, dates []time.Time) ([]entity.ScheduleRecord, error)
	Update(ctx context.Context, id int, input *entity.ScheduleInput) (*entity.ScheduleRecord, error)
	Deactivate(ctx context.Context, id int) (*entity.ScheduleRecord, error)
}
