package importer

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/KirkDiggler/rpg-companion/internal/entities/companion"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

// Parse decodes an export document. Malformed JSON is an InvalidArgument error
// carrying the decoder offset.
func Parse(data []byte) (*companion.Export, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InvalidArgument("invalid export: empty document")
	}

	var doc companion.Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Malformed(err, "export")
	}
	return &doc, nil
}

// ParseReader reads and decodes an export document
func ParseReader(r io.Reader) (*companion.Export, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read export")
	}
	return Parse(data)
}
