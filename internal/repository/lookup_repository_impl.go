package repository

import (
	"context"
	"net/http"

	"clinica-agenda/internal/converter"
	"clinica-agenda/internal/delivery/dto"
	"clinica-agenda/internal/domain/entity"
	domainRepo "clinica-agenda/internal/domain/repository"
)

type lookupRepository struct {
	client *Client
}

func NewLookupRepository(client *Client) domainRepo.LookupRepository {
	return &lookupRepository{client: client}
}

func (r *lookupRepository) Active(ctx context.Context, kind entity.LookupKind) ([]entity.LookupOption, error) {
	env, err := r.client.do(ctx, http.MethodGet, "/"+string(kind)+"/activos", nil, nil)
	if err != nil {
		return nil, err
	}

	var rows []dto.LookupRow
	if err := decodeData(env, &rows); err != nil {
		return nil, err
	}
	return converter.RowsToLookups(rows), nil
}
