package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"clinica-agenda/internal/converter"
	"clinica-agenda/internal/delivery/dto"
	"clinica-agenda/internal/domain/entity"
	domainRepo "clinica-agenda/internal/domain/repository"
	"clinica-agenda/pkg/validator"
)

const schedulesPath = "/programaciones"

type scheduleRepository struct {
	client   *Client
	validate *validator.CustomValidator
}

func NewScheduleRepository(client *Client) domainRepo.ScheduleRepository {
	return &scheduleRepository{
		client:   client,
		validate: validator.NewValidator(),
	}
}

func (r *scheduleRepository) List(ctx context.Context, filter *entity.ScheduleFilter, page, perPage int) ([]entity.ScheduleRecord, *entity.PageMeta, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	if filter != nil {
		if filter.Status != "" {
			query.Set("estado", string(filter.Status))
		}
		if filter.From != "" {
			query.Set("desde", filter.From)
		}
		if filter.To != "" {
			query.Set("hasta", filter.To)
		}
		if filter.Query != "" {
			query.Set("q", filter.Query)
		}
	}

	env, err := r.client.do(ctx, http.MethodGet, schedulesPath, query, nil)
	if err != nil {
		return nil, nil, err
	}

	var rows []dto.ScheduleRow
	if err := decodeData(env, &rows); err != nil {
		return nil, nil, err
	}
	return converter.RowsToSchedules(rows), converter.MetaToPage(env.Meta), nil
}

func (r *scheduleRepository) NextID(ctx context.Context) (int, error) {
	env, err := r.client.do(ctx, http.MethodGet, schedulesPath+"/proximo-codigo", nil, nil)
	if err != nil {
		return 0, err
	}

	var next dto.NextIDResponse
	if err := decodeData(env, &next); err != nil {
		return 0, err
	}
	return next.ProximoID, nil
}

func (r *scheduleRepository) CreateBatch(ctx context.Context, input *entity.ScheduleInput, dates []time.Time) ([]entity.ScheduleRecord, error) {
	payload := converter.InputToCreateBatch(input, dates)
	if err := r.validate.Validate(payload); err != nil {
		return nil, fmt.Errorf("invalid batch create payload: %w", err)
	}

	env, err := r.client.do(ctx, http.MethodPost, schedulesPath+"/lote", nil, payload)
	if err != nil {
		return nil, err
	}

	var rows []dto.ScheduleRow
	if err := decodeData(env, &rows); err != nil {
		return nil, err
	}
	return converter.RowsToSchedules(rows), nil
}

func (r *scheduleRepository) Update(ctx context.Context, id int, input *entity.ScheduleInput) (*entity.ScheduleRecord, error) {
	payload := converter.InputToUpdate(input)
	if err := r.validate.Validate(payload); err != nil {
		return nil, fmt.Errorf("invalid update payload: %w", err)
	}

	env, err := r.client.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", schedulesPath, id), nil, payload)
	if err != nil {
		return nil, err
	}

	var row dto.ScheduleRow
	if err := decodeData(env, &row); err != nil {
		return nil, err
	}
	return converter.RowToSchedule(&row), nil
}

func (r *scheduleRepository) Deactivate(ctx context.Context, id int) (*entity.ScheduleRecord, error) {
	env, err := r.client.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d/desactivar", schedulesPath, id), nil, nil)
	if err != nil {
		return nil, err
	}

	var row dto.ScheduleRow
	if err := decodeData(env, &row); err != nil {
		return nil, err
	}
	return converter.RowToSchedule(&row), nil
}
