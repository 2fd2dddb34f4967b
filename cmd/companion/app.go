package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/compendium/world"
	"github.com/KirkDiggler/rpg-companion/internal/config"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	companionorch "github.com/KirkDiggler/rpg-companion/internal/orchestrators/companion"
	"github.com/KirkDiggler/rpg-companion/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-companion/internal/repositories/character"
	"github.com/KirkDiggler/rpg-companion/internal/services/exporter"
	"github.com/KirkDiggler/rpg-companion/internal/services/importer"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
)

// app is the wired service graph shared by every command
type app struct {
	client   redis.Client
	catalogs *config.Catalogs
	resolver *compendium.Service
	service  *companionorch.Orchestrator
}

func newApp(cfg *config.Config) (*app, error) {
	client, err := redis.Connect(cfg.Redis.Endpoints, &redis.Options{
		DB:     cfg.Redis.DB,
		UseTLS: cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to configure redis")
	}

	a := &app{client: client}

	a.catalogs, err = cfg.OpenCatalogs(client)
	if err != nil {
		a.close()
		return nil, err
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		a.close()
		return nil, err
	}

	resolverCfg := &compendium.Config{Catalogs: a.catalogs.List}
	if cfg.WorldItems {
		provider, err := world.New(&world.Config{Repository: repo})
		if err != nil {
			a.close()
			return nil, err
		}
		resolverCfg.External = provider
	}
	if len(resolverCfg.Catalogs) == 0 {
		slog.Warn("No catalogs configured; every item will become a placeholder")
	}

	a.resolver, err = compendium.New(resolverCfg)
	if err != nil {
		a.close()
		return nil, err
	}

	imp, err := importer.New(&importer.Config{
		Resolver: a.resolver,
		EventBus: newWarningBus(),
	})
	if err != nil {
		a.close()
		return nil, err
	}

	a.service, err = companionorch.New(&companionorch.Config{
		CharacterRepo: repo,
		Importer:      imp,
		Exporter:      exporter.New(),
		Projector:     sheet.New(),
		Resolver:      a.resolver,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

func (a *app) close() {
	if a.catalogs != nil {
		if err := a.catalogs.Close(); err != nil {
			slog.Warn("Failed to close catalogs", "error", err)
		}
	}
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
}

// newWarningBus logs mapping warnings as the importer publishes them
func newWarningBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range []string{importer.EventItemUnresolved, importer.EventSkillUnmapped} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			slog.Warn("Mapping warning", warningAttrs(e)...)
			return nil
		})
	}
	return bus
}

// warningAttrs flattens a mapping warning into slog key/value pairs
func warningAttrs(e events.Event) []any {
	attrs := []any{"event", e.Type()}
	if e.Context() == nil {
		return attrs
	}
	for _, key := range []string{importer.EventKeyName, importer.EventKeyItemType, importer.EventKeySkill} {
		if v, ok := e.Context().Get(key); ok {
			attrs = append(attrs, key, v)
		}
	}
	return attrs
}
