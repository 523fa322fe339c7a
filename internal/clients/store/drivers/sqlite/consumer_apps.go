package sqlite

import (
	"context"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store"
	"github.com/aussiebroadwan/clients/internal/clients/store/drivers/sqlite/gen"
)

type consumerAppsRepo struct {
	q *gen.Queries
}

func (r *consumerAppsRepo) GetConsumerApp(ctx context.Context, consumerKey string) (domain.ConsumerApp, error) {
	row, err := r.q.GetConsumerApp(ctx, consumerKey)
	if err != nil {
		return domain.ConsumerApp{}, mapNotFound(err)
	}
	return mapConsumerApp(row), nil
}

func (r *consumerAppsRepo) CreateConsumerApp(ctx context.Context, app domain.ConsumerApp) error {
	oauthVersion := app.OAuthVersion
	if oauthVersion == "" {
		oauthVersion = domain.OAuthVersion2
	}

	err := r.q.CreateConsumerApp(ctx, gen.CreateConsumerAppParams{
		ConsumerKey:    app.ConsumerKey,
		ConsumerSecret: app.ConsumerSecret,
		Username:       app.Username,
		TenantID:       app.TenantID,
		AppName:        app.AppName,
		OauthVersion:   oauthVersion,
		CallbackUrl:    mapStringNull(app.CallbackURL),
		GrantTypes:     mapStringNull(app.GrantTypes),
	})
	return mapConstraint(err)
}

func (r *consumerAppsRepo) UpdateCallbackURL(ctx context.Context, consumerKey, callbackURL string) error {
	n, err := r.q.UpdateConsumerAppCallbackURL(ctx, gen.UpdateConsumerAppCallbackURLParams{
		CallbackUrl: mapStringNull(callbackURL),
		ConsumerKey: consumerKey,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *consumerAppsRepo) DeleteConsumerApp(ctx context.Context, consumerKey string) error {
	return r.q.DeleteConsumerApp(ctx, consumerKey)
}

func mapConsumerApp(row gen.IdnOauthConsumerApp) domain.ConsumerApp {
	return domain.ConsumerApp{
		ConsumerKey:    row.ConsumerKey,
		ConsumerSecret: row.ConsumerSecret,
		Username:       row.Username,
		TenantID:       row.TenantID,
		AppName:        row.AppName,
		OAuthVersion:   row.OauthVersion,
		CallbackURL:    mapNullString(row.CallbackUrl),
		GrantTypes:     mapNullString(row.GrantTypes),
	}
}
