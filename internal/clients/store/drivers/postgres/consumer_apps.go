package postgres

import (
	"context"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store"
)

type consumerAppsRepo struct {
	db DB
}

func (r *consumerAppsRepo) GetConsumerApp(ctx context.Context, consumerKey string) (domain.ConsumerApp, error) {
	var (
		app                     domain.ConsumerApp
		callbackURL, grantTypes *string
	)
	err := r.db.QueryRow(ctx,
		`SELECT CONSUMER_KEY, CONSUMER_SECRET, USERNAME, TENANT_ID, APP_NAME, OAUTH_VERSION, CALLBACK_URL, GRANT_TYPES
		 FROM IDN_OAUTH_CONSUMER_APPS WHERE CONSUMER_KEY = $1`, consumerKey,
	).Scan(&app.ConsumerKey, &app.ConsumerSecret, &app.Username, &app.TenantID,
		&app.AppName, &app.OAuthVersion, &callbackURL, &grantTypes)
	if err != nil {
		return domain.ConsumerApp{}, mapError(err)
	}

	app.CallbackURL = deref(callbackURL)
	app.GrantTypes = deref(grantTypes)
	return app, nil
}

func (r *consumerAppsRepo) CreateConsumerApp(ctx context.Context, app domain.ConsumerApp) error {
	oauthVersion := app.OAuthVersion
	if oauthVersion == "" {
		oauthVersion = domain.OAuthVersion2
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO IDN_OAUTH_CONSUMER_APPS
		 (CONSUMER_KEY, CONSUMER_SECRET, USERNAME, TENANT_ID, APP_NAME, OAUTH_VERSION, CALLBACK_URL, GRANT_TYPES)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ConsumerKey, app.ConsumerSecret, app.Username, app.TenantID,
		app.AppName, oauthVersion, nullable(app.CallbackURL), nullable(app.GrantTypes),
	)
	return mapError(err)
}

func (r *consumerAppsRepo) UpdateCallbackURL(ctx context.Context, consumerKey, callbackURL string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE IDN_OAUTH_CONSUMER_APPS SET CALLBACK_URL = $1 WHERE CONSUMER_KEY = $2`,
		nullable(callbackURL), consumerKey,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *consumerAppsRepo) DeleteConsumerApp(ctx context.Context, consumerKey string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM IDN_OAUTH_CONSUMER_APPS WHERE CONSUMER_KEY = $1`, consumerKey)
	return err
}
