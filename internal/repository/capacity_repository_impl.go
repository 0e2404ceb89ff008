package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"clinica-agenda/internal/delivery/dto"
	"clinica-agenda/internal/domain/entity"
	domainRepo "clinica-agenda/internal/domain/repository"
)

type capacityRepository struct {
	client *Client
}

func NewCapacityRepository(client *Client) domainRepo.CapacityRepository {
	return &capacityRepository{client: client}
}

func (r *capacityRepository) Compute(ctx context.Context, doctorID, shiftID int) (*entity.CapacitySnapshot, error) {
	query := url.Values{}
	query.Set("medico_id", strconv.Itoa(doctorID))
	query.Set("turno_id", strconv.Itoa(shiftID))

	env, err := r.client.do(ctx, http.MethodGet, "/programaciones/capacidad", query, nil)
	if err != nil {
		return nil, err
	}

	var capacity dto.CapacityResponse
	if err := decodeData(env, &capacity); err != nil {
		return nil, err
	}
	return &entity.CapacitySnapshot{
		Slots:                      capacity.Cupos,
		ShiftDurationMinutes:       capacity.DuracionTurnoMinutos,
		DoctorAvgMinutesPerPatient: capacity.PromedioMinutosPaciente,
	}, nil
}
