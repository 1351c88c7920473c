package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryFloor     Category = "floor"
	CategoryWall      Category = "wall"
	CategoryCeiling   Category = "ceiling"
	CategoryJoinery   Category = "joinery"
	CategoryElectric  Category = "electrical"
	CategoryPlumbing  Category = "plumbing"
	CategoryHeating   Category = "heating"
	CategoryEquipment Category = "equipment"
	CategoryFurniture Category = "furniture"
	CategoryAppliance Category = "appliance"
	CategoryOther     Category = "other"
)

var categoryAliases = map[string]Category{
	"floor":          CategoryFloor,
	"wall":           CategoryWall,
	"ceiling":        CategoryCeiling,
	"joinery":        CategoryJoinery,
	"fixture":        CategoryJoinery,
	"electrical":     CategoryElectric,
	"plumbing":       CategoryPlumbing,
	"heating":        CategoryHeating,
	"equipment":      CategoryEquipment,
	"furniture":      CategoryFurniture,
	"appliance":      CategoryAppliance,
	"other":          CategoryOther,
	"sol":            CategoryFloor,
	"mur":            CategoryWall,
	"plafond":        CategoryCeiling,
	"menuiserie":     CategoryJoinery,
	"electricite":    CategoryElectric,
	"plomberie":      CategoryPlumbing,
	"chauffage":      CategoryHeating,
	"equipement":     CategoryEquipment,
	"mobilier":       CategoryFurniture,
	"electromenager": CategoryAppliance,
	"autre":          CategoryOther,
}

// Categories lists every item category.
func Categories() []Category {
	return []Category{
		CategoryFloor, CategoryWall, CategoryCeiling, CategoryJoinery, CategoryElectric,
		CategoryPlumbing, CategoryHeating, CategoryEquipment, CategoryFurniture,
		CategoryAppliance, CategoryOther,
	}
}

func (c Category) Valid() bool {
	known, ok := categoryAliases[string(c)]
	return ok && known == c
}

func ParseCategory(raw string) (Category, error) {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown item category %q", raw)
}

type KeyType string

const (
	KeyEntryDoor   KeyType = "entry_door"
	KeyCommonAreas KeyType = "common_areas"
	KeyMailbox     KeyType = "mailbox"
	KeyCellar      KeyType = "cellar"
	KeyGarage      KeyType = "garage"
	KeyParking     KeyType = "parking"
	KeyBikeRoom    KeyType = "bike_room"
	KeyGate        KeyType = "gate"
	KeyIntercom    KeyType = "intercom"
	KeyBadge       KeyType = "badge"
	KeyRemote      KeyType = "remote"
	KeyVigik       KeyType = "vigik"
	KeyDigicode    KeyType = "digicode"
	KeyOther       KeyType = "other"
)

var keyTypeAliases = map[string]KeyType{
	"entry_door":       KeyEntryDoor,
	"common_areas":     KeyCommonAreas,
	"mailbox":          KeyMailbox,
	"cellar":           KeyCellar,
	"garage":           KeyGarage,
	"parking":          KeyParking,
	"bike_room":        KeyBikeRoom,
	"gate":             KeyGate,
	"intercom":         KeyIntercom,
	"badge":            KeyBadge,
	"remote":           KeyRemote,
	"vigik":            KeyVigik,
	"digicode":         KeyDigicode,
	"other":            KeyOther,
	"porte_entree":     KeyEntryDoor,
	"parties_communes": KeyCommonAreas,
	"boite_lettres":    KeyMailbox,
	"cave":             KeyCellar,
	"local_velo":       KeyBikeRoom,
	"portail":          KeyGate,
	"interphone":       KeyIntercom,
	"telecommande":     KeyRemote,
	"autre":            KeyOther,
}

// KeyTypes lists every key type.
func KeyTypes() []KeyType {
	return []KeyType{
		KeyEntryDoor, KeyCommonAreas, KeyMailbox, KeyCellar, KeyGarage, KeyParking,
		KeyBikeRoom, KeyGate, KeyIntercom, KeyBadge, KeyRemote, KeyVigik, KeyDigicode, KeyOther,
	}
}

func (k KeyType) Valid() bool {
	known, ok := keyTypeAliases[string(k)]
	return ok && known == k
}

func ParseKeyType(raw string) (KeyType, error) {
	if k, ok := keyTypeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown key type %q", raw)
}

type MeterType string

const (
	MeterElectricity MeterType = "electricity"
	MeterColdWater   MeterType = "cold_water"
	MeterHotWater    MeterType = "hot_water"
	MeterGas         MeterType = "gas"
)

var meterTypeAliases = map[string]MeterType{
	"electricity": MeterElectricity,
	"cold_water":  MeterColdWater,
	"hot_water":   MeterHotWater,
	"gas":         MeterGas,
	"electricite": MeterElectricity,
	"eau_froide":  MeterColdWater,
	"eau_chaude":  MeterHotWater,
	"gaz":         MeterGas,
}

func (m MeterType) Valid() bool {
	known, ok := meterTypeAliases[string(m)]
	return ok && known == m
}

func ParseMeterType(raw string) (MeterType, error) {
	if m, ok := meterTypeAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown meter type %q", raw)
}

func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "entry", "entree", "move_in":
		return RoleEntry, nil
	case "exit", "sortie", "move_out":
		return RoleExit, nil
	default:
		return "", fmt.Errorf("unknown inspection role %q", raw)
	}
}
