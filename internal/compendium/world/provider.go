// Package world resolves names against items the host store already owns
package world

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/repositories/character"
)

// Config holds the dependencies for the world provider
type Config struct {
	Repository character.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Repository == nil {
		return errors.InvalidArgument("repository cannot be nil")
	}
	return nil
}

// Provider looks up previously imported items by name and type
type Provider struct {
	repo character.Repository
}

// New creates a world provider
func New(cfg *Config) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Provider{repo: cfg.Repository}, nil
}

// TryResolveExternal implements compendium.ExternalProvider
func (p *Provider) TryResolveExternal(ctx context.Context, name, itemType string) (*actor.Item, error) {
	out, err := p.repo.FindItem(ctx, character.FindItemInput{Name: name, Type: itemType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find world item %s", name)
	}
	if out.Item == nil || out.Item.IsPlaceholder() {
		return nil, nil
	}

	// owned items carry their owner's ID; a resolved copy is a new document
	item := out.Item.Clone()
	item.ID = ""
	return item, nil
}

var _ compendium.ExternalProvider = (*Provider)(nil)
