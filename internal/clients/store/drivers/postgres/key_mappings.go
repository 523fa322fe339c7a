package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

type keyMappingsRepo struct {
	db DB
}

func (r *keyMappingsRepo) GetKeyMapping(ctx context.Context, applicationID int64) (domain.KeyMapping, error) {
	var m domain.KeyMapping
	err := r.db.QueryRow(ctx,
		`SELECT APPLICATION_ID, CONSUMER_KEY, KEY_TYPE, STATE
		 FROM AM_APPLICATION_KEY_MAPPING
		 WHERE APPLICATION_ID = $1
		 ORDER BY CASE KEY_TYPE WHEN 'PRODUCTION' THEN 0 ELSE 1 END, KEY_TYPE
		 LIMIT 1`, applicationID,
	).Scan(&m.ApplicationID, &m.ConsumerKey, &m.KeyType, &m.State)
	if err != nil {
		return domain.KeyMapping{}, mapError(err)
	}
	return m, nil
}

func (r *keyMappingsRepo) ListKeyMappings(ctx context.Context, applicationID int64) ([]domain.KeyMapping, error) {
	rows, err := r.db.Query(ctx,
		`SELECT APPLICATION_ID, CONSUMER_KEY, KEY_TYPE, STATE
		 FROM AM_APPLICATION_KEY_MAPPING
		 WHERE APPLICATION_ID = $1
		 ORDER BY KEY_TYPE`, applicationID,
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.KeyMapping, error) {
		var m domain.KeyMapping
		err := row.Scan(&m.ApplicationID, &m.ConsumerKey, &m.KeyType, &m.State)
		return m, err
	})
}

func (r *keyMappingsRepo) UpsertKeyMapping(ctx context.Context, m domain.KeyMapping) error {
	state := m.State
	if state == "" {
		state = domain.KeyStateCompleted
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO AM_APPLICATION_KEY_MAPPING (APPLICATION_ID, CONSUMER_KEY, KEY_TYPE, STATE)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (APPLICATION_ID, KEY_TYPE) DO UPDATE
		 SET CONSUMER_KEY = EXCLUDED.CONSUMER_KEY, STATE = EXCLUDED.STATE`,
		m.ApplicationID, m.ConsumerKey, m.KeyType, state,
	)
	return err
}

func (r *keyMappingsRepo) DeleteKeyMappings(ctx context.Context, applicationID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM AM_APPLICATION_KEY_MAPPING WHERE APPLICATION_ID = $1`, applicationID)
	return err
}
