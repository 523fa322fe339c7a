package apimtest

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
	"github.com/aussiebroadwan/clients/internal/clients/store"
)

type EventKind int

const (
	// EventKeyGenerated fires when generateApplicationKey mints a key pair.
	EventKeyGenerated EventKind = iota + 1
	// EventApplicationRemoved fires before an application is removed.
	EventApplicationRemoved
)

// Event is a side effect the real store would apply to the identity server
// and API manager tables.
type Event struct {
	Kind            EventKind
	Username        string
	ApplicationID   int64
	ApplicationName string
	ConsumerKey     string
	ConsumerSecret  string
	CallbackURL     string
	KeyType         string
}

// OnEvent registers fn to run for every event. Hooks run while the fake
// holds its lock and must not call back into the Server. A hook error makes
// the action fail with an embedded error.
func (s *Server) OnEvent(fn func(Event) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

func (s *Server) emit(ev Event) error {
	var errs []error
	for _, hook := range s.hooks {
		if err := hook(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// StoreHook mirrors key generation into st the way the API manager does:
// a consumer app record without the callback URL, then the application's
// key mapping. Removing an application drops its key mappings.
func StoreHook(st store.Store) func(Event) error {
	return func(ev Event) error {
		ctx := context.Background()

		switch ev.Kind {
		case EventKeyGenerated:
			return st.WithTx(ctx, func(tx store.Store) error {
				if err := tx.ConsumerApps().CreateConsumerApp(ctx, domain.ConsumerApp{
					ConsumerKey:    ev.ConsumerKey,
					ConsumerSecret: ev.ConsumerSecret,
					Username:       ev.Username,
					AppName:        ev.Username + "_" + ev.ApplicationName + "_" + ev.KeyType,
					GrantTypes:     "refresh_token password client_credentials",
				}); err != nil {
					return err
				}
				return tx.KeyMappings().UpsertKeyMapping(ctx, domain.KeyMapping{
					ApplicationID: ev.ApplicationID,
					ConsumerKey:   ev.ConsumerKey,
					KeyType:       ev.KeyType,
				})
			})

		case EventApplicationRemoved:
			return st.KeyMappings().DeleteKeyMappings(ctx, ev.ApplicationID)
		}
		return nil
	}
}
