package sqlite

import (
	"context"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/sqlite/gen"
)

type keyMappingsRepo struct {
	q *gen.Queries
}

func (r *keyMappingsRepo) GetKeyMapping(ctx context.Context, applicationID int64) (domain.KeyMapping, error) {
	row, err := r.q.GetPreferredKeyMapping(ctx, applicationID)
	if err != nil {
		return domain.KeyMapping{}, mapNotFound(err)
	}
	return mapKeyMapping(row), nil
}

func (r *keyMappingsRepo) ListKeyMappings(ctx context.Context, applicationID int64) ([]domain.KeyMapping, error) {
	rows, err := r.q.ListKeyMappings(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	mappings := make([]domain.KeyMapping, len(rows))
	for i, row := range rows {
		mappings[i] = mapKeyMapping(row)
	}
	return mappings, nil
}

func (r *keyMappingsRepo) UpsertKeyMapping(ctx context.Context, m domain.KeyMapping) error {
	state := m.State
	if state == "" {
		state = domain.KeyStateCompleted
	}
	return r.q.UpsertKeyMapping(ctx, gen.UpsertKeyMappingParams{
		ApplicationID: m.ApplicationID,
		ConsumerKey:   m.ConsumerKey,
		KeyType:       m.KeyType,
		State:         state,
	})
}

func (r *keyMappingsRepo) DeleteKeyMappings(ctx context.Context, applicationID int64) error {
	return r.q.DeleteKeyMappings(ctx, applicationID)
}

func mapKeyMapping(row gen.AmApplicationKeyMapping) domain.KeyMapping {
	return domain.KeyMapping{
		ApplicationID: row.ApplicationID,
		ConsumerKey:   row.ConsumerKey,
		KeyType:       row.KeyType,
		State:         row.State,
	}
}
