package portfolio

import (
	"fmt"
	"strings"
)

// The backend sends records with loose shapes: the instrument is named
// either instrumentType/instrumentName, type/name or assetType/assetName,
// and ids come as id or _id. These helpers normalize them at the boundary,
// so that the engine never meets a half-filled record.

// jrecord reads a record identifier.
type jrecord struct {
	ID      string `json:"id"`
	MongoID string `json:"_id"`
}

func (j jrecord) id() string {
	if j.ID != "" {
		return j.ID
	}
	return j.MongoID
}

// jinstrument reads an instrument key under any of its names.
type jinstrument struct {
	InstrumentType string `json:"instrumentType"`
	Type           string `json:"type"`
	AssetType      string `json:"assetType"`
	InstrumentName string `json:"instrumentName"`
	Name           string `json:"name"`
	AssetName      string `json:"assetName"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (j jinstrument) key() (InstrumentKey, error) {
	name := strings.TrimSpace(firstNonEmpty(j.InstrumentName, j.Name, j.AssetName))
	typ := strings.TrimSpace(firstNonEmpty(j.InstrumentType, j.Type, j.AssetType))
	if typ == "" {
		return InstrumentKey{}, fmt.Errorf("%w: instrument %q has no type", ErrInvalidRecord, name)
	}
	t, err := ParseInstrumentType(typ)
	if err != nil {
		return InstrumentKey{}, err
	}
	k := InstrumentKey{Type: t, Name: name}
	return k, k.validate()
}
