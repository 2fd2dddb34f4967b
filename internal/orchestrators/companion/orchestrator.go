// Package companion implements the companion character orchestrator
package companion

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-companion/internal/repositories/character"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
	"github.com/KirkDiggler/rpg-companion/internal/services/exporter"
	"github.com/KirkDiggler/rpg-companion/internal/services/importer"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
)

const tracerName = "github.com/KirkDiggler/rpg-companion/internal/orchestrators/companion"

// Config holds the dependencies for the companion orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Importer      importer.Importer
	Exporter      exporter.Exporter
	Projector     sheet.Projector
	Resolver      compendium.Resolver

	// Tracer defaults to the global otel tracer
	Tracer trace.Tracer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Importer == nil {
		vb.RequiredField("Importer")
	}
	if c.Exporter == nil {
		vb.RequiredField("Exporter")
	}
	if c.Projector == nil {
		vb.RequiredField("Projector")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	importer      importer.Importer
	exporter      exporter.Exporter
	projector     sheet.Projector
	resolver      compendium.Resolver
	tracer        trace.Tracer
}

// New creates a new companion orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		importer:      cfg.Importer,
		exporter:      cfg.Exporter,
		projector:     cfg.Projector,
		resolver:      cfg.Resolver,
		tracer:        tracer,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

func (o *Orchestrator) startSpan(
	ctx context.Context, name string, attrs ...attribute.KeyValue,
) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "companion."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Conversion methods

// ImportCharacter parses an export, maps it and stores the character with its items
func (o *Orchestrator) ImportCharacter(
	ctx context.Context, input *character.ImportCharacterInput,
) (_ *character.ImportCharacterOutput, err error) {
	ctx, span := o.startSpan(ctx, "ImportCharacter")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// parse failures abort before anything is stored
	doc, err := importer.Parse(input.Data)
	if err != nil {
		return nil, err
	}

	mapped, err := o.importer.ImportCharacter(ctx, &importer.ImportCharacterInput{Export: doc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to map character")
	}

	created, err := o.characterRepo.CreateCharacter(ctx, characterrepo.CreateCharacterInput{
		Character: mapped.Character,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character %s", mapped.Character.Name)
	}
	span.SetAttributes(attribute.String("character.id", created.Character.ID))

	items := mapped.Items
	if len(items) > 0 {
		attached, err := o.characterRepo.AttachItems(ctx, characterrepo.AttachItemsInput{
			CharacterID: created.Character.ID,
			Items:       items,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to attach items to character %s", created.Character.ID)
		}
		items = attached.Items
	}

	span.SetAttributes(
		attribute.Int("items", len(items)),
		attribute.Int("unresolved", len(mapped.Unresolved)),
	)
	slog.Info("Imported companion export",
		"character_id", created.Character.ID,
		"name", created.Character.Name,
		"items", len(items),
		"unresolved", len(mapped.Unresolved))

	return &character.ImportCharacterOutput{
		Character:  created.Character,
		Items:      items,
		Unresolved: mapped.Unresolved,
	}, nil
}

// ExportCharacter maps a stored character back to an export document
func (o *Orchestrator) ExportCharacter(
	ctx context.Context, input *character.ExportCharacterInput,
) (_ *character.ExportCharacterOutput, err error) {
	ctx, span := o.startSpan(ctx, "ExportCharacter")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	stored, err := o.load(ctx, span, input.CharacterID)
	if err != nil {
		return nil, err
	}

	exported, err := o.exporter.ExportCharacter(ctx, &exporter.ExportCharacterInput{
		Character: stored.Character,
		Items:     stored.Items,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to export character")
	}

	data, err := exporter.Marshal(exported.Export)
	if err != nil {
		return nil, err
	}

	return &character.ExportCharacterOutput{
		Export:   exported.Export,
		Data:     data,
		Filename: exported.Filename,
	}, nil
}

// ProjectSheet projects a stored character onto sheet fields
func (o *Orchestrator) ProjectSheet(
	ctx context.Context, input *character.ProjectSheetInput,
) (_ *character.ProjectSheetOutput, err error) {
	ctx, span := o.startSpan(ctx, "ProjectSheet")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	stored, err := o.load(ctx, span, input.CharacterID)
	if err != nil {
		return nil, err
	}

	projected, err := o.projector.ProjectSheet(ctx, &sheet.ProjectSheetInput{
		Character:  stored.Character,
		Items:      stored.Items,
		PlayerName: input.PlayerName,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to project sheet")
	}

	return &character.ProjectSheetOutput{
		Fields:        projected.Fields,
		CharacterName: stored.Character.Name,
	}, nil
}

// load fetches a stored character for export or projection
func (o *Orchestrator) load(ctx context.Context, span trace.Span, id string) (*characterrepo.GetOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", id, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("character.id", id))

	stored, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	return stored, nil
}

// Stored character methods

// GetCharacter retrieves a stored character and its items
func (o *Orchestrator) GetCharacter(
	ctx context.Context, input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	stored, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}

	return &character.GetCharacterOutput{
		Character: stored.Character,
		Items:     stored.Items,
	}, nil
}

// ListCharacters lists stored characters
func (o *Orchestrator) ListCharacters(
	ctx context.Context, input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		input = &character.ListCharactersInput{}
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	listed, err := o.characterRepo.List(ctx, characterrepo.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: listed.Characters}, nil
}

// DeleteCharacter deletes a stored character and its items
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context, input *character.DeleteCharacterInput,
) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	slog.Info("Deleted character", "character_id", input.CharacterID)
	return &character.DeleteCharacterOutput{}, nil
}

// Catalog lookup methods

// ResolveItem looks a name up across the configured catalogs
func (o *Orchestrator) ResolveItem(
	ctx context.Context, input *character.ResolveItemInput,
) (_ *character.ResolveItemOutput, err error) {
	ctx, span := o.startSpan(ctx, "ResolveItem")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("item.name", input.Name),
		attribute.String("item.type", input.Type),
	)

	item, err := o.resolver.Resolve(ctx, input.Name, input.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", input.Name)
	}

	return &character.ResolveItemOutput{Item: item}, nil
}

