package app

import (
	"context"
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/internal/config"
	"courtside/internal/layout"
	"courtside/internal/persist"
	"courtside/internal/terminal"
	"courtside/pkg/logging"
	"errors"
	"fmt"
)

// Services holds everything the front ends share: the state, its store and
// persister, the backend client behind its cache, and the command and
// layout controllers.
type Services struct {
	State       *terminal.State
	Store       persist.Store
	Persister   *persist.Persister
	Client      *api.Client
	Cache       *api.Cache
	Interpreter *command.Interpreter
	Layout      *layout.Controller
}

// InitializeServices opens the store, rehydrates the state and wires the
// controllers around it.
func InitializeServices(ctx context.Context, cfg config.CourtsideConfig) (*Services, error) {
	storePath, err := cfg.StorePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	store, err := persist.Open(cfg.Store.Backend, storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store at %s: %w", cfg.Store.Backend, storePath, err)
	}
	logging.Debug("Bootstrap", "Opened %s store at %s", cfg.Store.Backend, storePath)

	defaultLayout, defaultWindow := cfg.TerminalDefaults()
	state := terminal.New(terminal.WithDefaults(defaultLayout, defaultWindow))
	if err := persist.LoadInto(ctx, store, state); err != nil {
		// The session still works from defaults; writes may fail later too.
		logging.Warn("Bootstrap", "Could not restore terminal state: %v", err)
	}

	client, err := api.NewClient(api.ClientOptions{
		BaseURL:  cfg.API.BaseURL,
		Token:    cfg.API.Token,
		Timeout:  cfg.API.Timeout,
		RetryMax: cfg.API.RetryMax,
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	cache := api.NewCache(client, cfg.API.CacheTTL)

	return &Services{
		State:       state,
		Store:       store,
		Persister:   persist.NewPersister(store, state, cfg.StoreDebounce()),
		Client:      client,
		Cache:       cache,
		Interpreter: command.NewInterpreter(state, cache),
		Layout:      layout.NewController(state, cfg.Terminal.ResizeStep),
	}, nil
}

// Close writes any pending state and releases the store.
func (s *Services) Close(ctx context.Context) error {
	var errs []error
	if err := s.Persister.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to save terminal state: %w", err))
	}
	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close store: %w", err))
	}
	return errors.Join(errs...)
}
