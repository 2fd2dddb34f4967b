// Package v1alpha1 handles the companion grpc service interface
package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the companion gRPC service
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ CompanionServiceServer = (*Handler)(nil)

// ImportCharacter imports an export document. The request carries either
// "data" (the raw export JSON as a string) or "export" (the document itself).
func (h *Handler) ImportCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	data, err := exportData(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.ImportCharacter(ctx, &character.ImportCharacterInput{Data: data})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	unresolved := output.Unresolved
	if unresolved == nil {
		unresolved = []string{}
	}
	return response(map[string]any{
		"character":  output.Character,
		"items":      output.Items,
		"unresolved": unresolved,
	})
}

// ExportCharacter maps a stored character back to an export document
func (h *Handler) ExportCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.characterService.ExportCharacter(ctx, &character.ExportCharacterInput{
		CharacterID: stringField(req, "characterId"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{
		"export":   output.Export,
		"filename": output.Filename,
	})
}

// ProjectSheet projects a stored character onto sheet field values
func (h *Handler) ProjectSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.characterService.ProjectSheet(ctx, &character.ProjectSheetInput{
		CharacterID: stringField(req, "characterId"),
		PlayerName:  stringField(req, "playerName"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{
		"characterName": output.CharacterName,
		"fields":        output.Fields,
	})
}

// GetCharacter returns a stored character with its items
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		CharacterID: stringField(req, "characterId"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{
		"character": output.Character,
		"items":     output.Items,
	})
}

// ListCharacters lists stored characters
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		Limit: int(req.GetFields()["limit"].GetNumberValue()),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{
		"characters": output.Characters,
	})
}

// DeleteCharacter deletes a stored character
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	_, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		CharacterID: stringField(req, "characterId"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

// ResolveItem looks an item name up across the configured catalogs.
// A miss is reported as found=false, not as NotFound.
func (h *Handler) ResolveItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.characterService.ResolveItem(ctx, &character.ResolveItemInput{
		Name: stringField(req, "name"),
		Type: stringField(req, "type"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return response(map[string]any{
		"found": output.Item != nil,
		"item":  output.Item,
	})
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

func exportData(req *structpb.Struct) ([]byte, error) {
	fields := req.GetFields()
	if v, ok := fields["data"]; ok {
		return []byte(v.GetStringValue()), nil
	}
	if v, ok := fields["export"]; ok {
		doc := v.GetStructValue()
		if doc == nil {
			return nil, errors.InvalidArgument("export must be an object")
		}
		data, err := json.Marshal(doc.AsMap())
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode export")
		}
		return data, nil
	}
	return nil, errors.InvalidArgument("data or export is required")
}

// response encodes Go values through their JSON form so field names match the documents
func response(values map[string]any) (*structpb.Struct, error) {
	data, err := json.Marshal(values)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to decode response"))
	}

	out, err := structpb.NewStruct(generic)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to build response"))
	}
	return out, nil
}
