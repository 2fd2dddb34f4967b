package actor

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Item is an item document owned by a character.
// System is an open bag because catalog records carry type-specific fields this
// package does not model; the accessors below read the ones the mappers need.
type Item struct {
	ID     string            `json:"_id,omitempty"`
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Img    string            `json:"img,omitempty"`
	System map[string]any    `json:"system,omitempty"`
	Labels map[string]string `json:"labels,omitempty"`
	Flags  map[string]any    `json:"flags,omitempty"`
}

// Flag scope and keys written by this module
const (
	FlagScope       = "companion"
	FlagPlaceholder = "placeholder"
)

// GetID returns the item's ID
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the item type for rpg-toolkit
func (i *Item) GetType() string {
	return i.Type
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}

	clone := &Item{
		ID:     i.ID,
		Name:   i.Name,
		Type:   i.Type,
		Img:    i.Img,
		System: CloneMap(i.System),
		Flags:  CloneMap(i.Flags),
	}
	if i.Labels != nil {
		clone.Labels = make(map[string]string, len(i.Labels))
		for k, v := range i.Labels {
			clone.Labels[k] = v
		}
	}
	return clone
}

// Merge overlays values onto the item's system data, keeping every field the overlay does not name
func (i *Item) Merge(overlay map[string]any) {
	if i.System == nil {
		i.System = make(map[string]any)
	}
	MergeMap(i.System, overlay)
}

// Get returns the system value at a dotted path
func (i *Item) Get(path string) (any, bool) {
	return GetPath(i.System, path)
}

// Set writes a system value at a dotted path, creating intermediate objects
func (i *Item) Set(path string, value any) {
	if i.System == nil {
		i.System = make(map[string]any)
	}
	SetPath(i.System, path, value)
}

// MarkPlaceholder flags the item as synthesised for a name no catalog knew
func (i *Item) MarkPlaceholder() {
	if i.Flags == nil {
		i.Flags = make(map[string]any)
	}
	SetPath(i.Flags, FlagScope+"."+FlagPlaceholder, true)
}

// IsPlaceholder reports whether the item was synthesised rather than resolved
func (i *Item) IsPlaceholder() bool {
	v, _ := GetPath(i.Flags, FlagScope+"."+FlagPlaceholder)
	return ToBool(v)
}

// Quantity returns system.quantity, defaulting to 1 when absent or zero
func (i *Item) Quantity() int {
	v, _ := i.Get("quantity")
	if q := ToInt(v); q > 0 {
		return q
	}
	return 1
}

// Levels returns the class level, defaulting to 1
func (i *Item) Levels() int {
	v, _ := i.Get("levels")
	if l := ToInt(v); l > 0 {
		return l
	}
	return 1
}

// SpellLevel returns the spell level, 0 for cantrips
func (i *Item) SpellLevel() int {
	v, _ := i.Get("level")
	return ToInt(v)
}

// PreparationMode returns system.preparation.mode
func (i *Item) PreparationMode() string {
	v, _ := i.Get("preparation.mode")
	s, _ := v.(string)
	return s
}

// Prepared returns system.preparation.prepared
func (i *Item) Prepared() bool {
	v, _ := i.Get("preparation.prepared")
	return ToBool(v)
}

// Ritual reports whether the spell is ritual-tagged, either as a component flag or a property
func (i *Item) Ritual() bool {
	if v, ok := i.Get("components.ritual"); ok && ToBool(v) {
		return true
	}
	v, ok := i.Get("properties")
	if !ok {
		return false
	}
	switch props := v.(type) {
	case []any:
		for _, p := range props {
			if s, ok := p.(string); ok && s == "ritual" {
				return true
			}
		}
	case []string:
		for _, s := range props {
			if s == "ritual" {
				return true
			}
		}
	}
	return false
}

// IsArmor reports whether an equipment item carries armor data
func (i *Item) IsArmor() bool {
	v, ok := i.Get("armor")
	if !ok || v == nil {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// Description returns system.description.value
func (i *Item) Description() string {
	v, _ := i.Get("description.value")
	s, _ := v.(string)
	return s
}

// IsGear reports whether the item belongs in the inventory block
func (i *Item) IsGear() bool {
	return GearTypes[i.Type]
}

// NameFold returns the lower-cased name used for alphabetical ordering
func (i *Item) NameFold() string {
	return strings.ToLower(i.Name)
}

var _ core.Entity = (*Item)(nil)
