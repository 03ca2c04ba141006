package portfolio

import (
	"encoding/json"
	"fmt"
	"strings"
)

// InstrumentType is the family of a tradable asset.
type InstrumentType int

const (
	Gold InstrumentType = iota + 1
	Currency
)

func (t InstrumentType) String() string {
	switch t {
	case Gold:
		return "gold"
	case Currency:
		return "currency"
	default:
		return "unknown"
	}
}

// ParseInstrumentType parses "gold" or "currency", case-insensitive.
func ParseInstrumentType(s string) (InstrumentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return Gold, nil
	case "currency":
		return Currency, nil
	default:
		return 0, fmt.Errorf("%w: unknown instrument type %q", ErrInvalidRecord, s)
	}
}

func (t InstrumentType) MarshalJSON() ([]byte, error) {
	if t != Gold && t != Currency {
		return nil, fmt.Errorf("cannot marshal instrument type %d", int(t))
	}
	return json.Marshal(t.String())
}

func (t *InstrumentType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseInstrumentType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// InstrumentKey identifies an instrument, e.g. (Gold, "Gram Altın").
type InstrumentKey struct {
	Type InstrumentType
	Name string
}

// NewInstrumentKey returns the key of the named instrument.
func NewInstrumentKey(t InstrumentType, name string) InstrumentKey {
	return InstrumentKey{Type: t, Name: name}
}

// String returns "type/name", the form accepted by ParseInstrumentKey.
func (k InstrumentKey) String() string { return k.Type.String() + "/" + k.Name }

// ParseInstrumentKey parses "gold/Gram Altın" or "currency/Amerikan Doları".
func ParseInstrumentKey(s string) (InstrumentKey, error) {
	typ, name, ok := strings.Cut(s, "/")
	if !ok || strings.TrimSpace(name) == "" {
		return InstrumentKey{}, fmt.Errorf("%w: instrument %q want <type>/<name>", ErrInvalidRecord, s)
	}
	t, err := ParseInstrumentType(typ)
	if err != nil {
		return InstrumentKey{}, err
	}
	return InstrumentKey{Type: t, Name: strings.TrimSpace(name)}, nil
}

// validate checks that the key designates a known instrument type and has a name.
func (k InstrumentKey) validate() error {
	if k.Type != Gold && k.Type != Currency {
		return fmt.Errorf("%w: unknown instrument type for %q", ErrInvalidRecord, k.Name)
	}
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("%w: missing instrument name", ErrInvalidRecord)
	}
	return nil
}

// PriceField selects which side of a quote is used.
type PriceField int

const (
	// BuyPrice is what a dealer pays, the value realized on liquidation.
	BuyPrice PriceField = iota
	// SellPrice is what a dealer asks.
	SellPrice
)

func (f PriceField) String() string {
	if f == SellPrice {
		return "sellPrice"
	}
	return "buyPrice"
}

// ParsePriceField parses "buyPrice"/"buy" or "sellPrice"/"sell".
func ParsePriceField(s string) (PriceField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buyprice", "buy":
		return BuyPrice, nil
	case "sellprice", "sell":
		return SellPrice, nil
	default:
		return 0, fmt.Errorf("%w: unknown price field %q", ErrInvalidRecord, s)
	}
}

func (f PriceField) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }

func (f *PriceField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParsePriceField(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
