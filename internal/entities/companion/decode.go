package companion

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-companion/internal/entities/actor"
)

// Number decodes a numeric export field leniently. App versions write whole
// numbers as 12, 12.0 or "12"; fractions truncate and anything that is not a
// number reads as absent (0).
type Number int

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*n = 0
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(actor.ToInt(json.Number(strings.TrimSpace(s))))
	case 't':
		*n = 1
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*n = Number(actor.ToInt(json.Number(data)))
	default:
		// null, false, objects and arrays carry no number
		*n = 0
	}
	return nil
}

// UnmarshalJSON decodes the export with lenient numeric fields
func (e *Export) UnmarshalJSON(data []byte) error {
	type plain Export
	aux := struct {
		*plain
		HP       Number `json:"hp"`
		BaseAC   Number `json:"baseAc"`
		ExtraAC  Number `json:"extraAC"`
		XP       Number `json:"xp"`
		Copper   Number `json:"copper"`
		Silver   Number `json:"silver"`
		Electrum Number `json:"electrum"`
		Gold     Number `json:"gold"`
		Platinum Number `json:"platinum"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.HP = int(aux.HP)
	e.BaseAC = int(aux.BaseAC)
	e.ExtraAC = int(aux.ExtraAC)
	e.XP = int(aux.XP)
	e.Copper = int(aux.Copper)
	e.Silver = int(aux.Silver)
	e.Electrum = int(aux.Electrum)
	e.Gold = int(aux.Gold)
	e.Platinum = int(aux.Platinum)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Ability) UnmarshalJSON(data []byte) error {
	type plain Ability
	aux := struct {
		*plain
		Score Number `json:"score"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Score = int(aux.Score)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (a *NamedAbility) UnmarshalJSON(data []byte) error {
	type plain NamedAbility
	aux := struct {
		*plain
		Score Number `json:"score"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Score = int(aux.Score)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Speed) UnmarshalJSON(data []byte) error {
	type plain Speed
	aux := struct {
		*plain
		Normal Number `json:"normal"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Normal = int(aux.Normal)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Background) UnmarshalJSON(data []byte) error {
	type plain Background
	aux := struct {
		*plain
		GoldPieces Number `json:"goldPieces"`
	}{plain: (*plain)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.GoldPieces = int(aux.GoldPieces)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (j *Job) UnmarshalJSON(data []byte) error {
	type plain Job
	aux := struct {
		*plain
		Level Number `json:"level"`
	}{plain: (*plain)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	j.Level = int(aux.Level)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (s *Spell) UnmarshalJSON(data []byte) error {
	type plain Spell
	aux := struct {
		*plain
		Level Number `json:"level"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Level = int(aux.Level)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (e *EquipmentEntry) UnmarshalJSON(data []byte) error {
	type plain EquipmentEntry
	aux := struct {
		*plain
		Count    Number `json:"count"`
		Quantity Number `json:"quantity"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Count = int(aux.Count)
	e.Quantity = int(aux.Quantity)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler
func (m *EquipmentModel) UnmarshalJSON(data []byte) error {
	type plain EquipmentModel
	aux := struct {
		*plain
		Number Number `json:"number"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Number = int(aux.Number)
	return nil
}
