// Package pack provides an in-memory catalog loaded from a JSON or JSONL file
package pack

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-companion/internal/compendium"
	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

// Catalog is an immutable in-memory catalog
type Catalog struct {
	name    string
	index   []compendium.IndexEntry
	records map[string]*actor.Item
}

// New builds a catalog from items. Items without an ID get their position as ID.
func New(name string, items []*actor.Item) *Catalog {
	c := &Catalog{
		name:    name,
		index:   make([]compendium.IndexEntry, 0, len(items)),
		records: make(map[string]*actor.Item, len(items)),
	}

	for i, item := range items {
		if item == nil {
			continue
		}
		rec := item.Clone()
		if rec.ID == "" {
			rec.ID = name + "." + strconv.Itoa(i)
		}
		if _, dup := c.records[rec.ID]; dup {
			continue
		}
		c.records[rec.ID] = rec
		c.index = append(c.index, compendium.IndexEntry{ID: rec.ID, Name: rec.Name, Type: rec.Type})
	}

	return c
}

// Load reads a catalog file. A leading '[' means a JSON array, anything else is JSONL.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open pack %s", path)
	}
	defer func() { _ = f.Close() }()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Read(name, f)
}

// Read parses catalog records from r
func Read(name string, r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pack %s", name)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return New(name, nil), nil
	}

	var items []*actor.Item
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.Malformed(err, "pack "+name)
		}
		return New(name, items), nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var item actor.Item
		if err := json.Unmarshal(text, &item); err != nil {
			return nil, errors.Malformed(err, "pack "+name).WithMeta("line", line)
		}
		items = append(items, &item)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan pack %s", name)
	}

	return New(name, items), nil
}

// Name implements compendium.Catalog
func (c *Catalog) Name() string {
	return c.name
}

// GetIndex implements compendium.Catalog
func (c *Catalog) GetIndex(_ context.Context, _ []string) ([]compendium.IndexEntry, error) {
	out := make([]compendium.IndexEntry, len(c.index))
	copy(out, c.index)
	return out, nil
}

// GetDocument implements compendium.Catalog
func (c *Catalog) GetDocument(_ context.Context, id string) (*actor.Item, error) {
	rec, ok := c.records[id]
	if !ok {
		return nil, errors.NotFoundf("record %s not found in pack %s", id, c.name)
	}
	return rec.Clone(), nil
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.index)
}

var _ compendium.Catalog = (*Catalog)(nil)
