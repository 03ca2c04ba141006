package portfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/altinfolio/portfolio/date"
)

// Portfolio exclusively owns its holdings and transactions.
type Portfolio struct {
	ID           string
	Name         string
	Description  string
	Currency     string
	Holdings     []Holding
	Transactions []Transaction
}

// Positions returns the positions of the portfolio. The transaction ledger is
// the source of truth when there is one, the holdings otherwise.
func (p *Portfolio) Positions(method CostBasisMethod) *Positions {
	if len(p.Transactions) > 0 {
		return AggregateLedger(p.Transactions, method)
	}
	return Aggregate(p.Holdings)
}

// Instruments returns the instruments of the portfolio, in order of appearance.
func (p *Portfolio) Instruments() []InstrumentKey {
	seen := make(map[InstrumentKey]bool)
	var keys []InstrumentKey
	add := func(k InstrumentKey) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, h := range p.Holdings {
		add(h.Instrument)
	}
	for _, tx := range p.Transactions {
		add(tx.Instrument)
	}
	return keys
}

// Inception returns the earliest purchase or transaction date.
func (p *Portfolio) Inception() date.Date {
	var first date.Date
	for _, h := range p.Holdings {
		if first.IsZero() || h.PurchaseDate.Before(first) {
			first = h.PurchaseDate
		}
	}
	for _, tx := range p.Transactions {
		if first.IsZero() || tx.Date.Before(first) {
			first = tx.Date
		}
	}
	return first
}

// ValueHistory returns the daily value of the portfolio over r from buy price series.
func (p *Portfolio) ValueHistory(prices map[InstrumentKey]Series, r date.Range) []ValuePoint {
	if len(p.Transactions) > 0 {
		return LedgerValueHistory(p.Transactions, prices, r)
	}
	return ValueHistory(p.Holdings, prices, r)
}

// Validate checks every record and the ledger, returning all failures.
func (p *Portfolio) Validate() error {
	var errs []error
	for i, h := range p.Holdings {
		if err := h.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("holdings[%d]: %w", i, err))
		}
	}
	if err := ValidateLedger(p.Transactions); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (p *Portfolio) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", p.ID)
	w.Append("name", p.Name)
	w.Optional("description", p.Description)
	w.Optional("currency", p.Currency)
	w.Append("holdings", nonNil(p.Holdings))
	w.Optional("transactions", p.Transactions)
	return w.MarshalJSON()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// unwrap returns the payload of the backend envelope {"success":..., "data":...},
// or b itself when it is not wrapped.
func unwrap(b []byte) ([]byte, error) {
	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		// not an object, let the caller report it.
		return b, nil
	}
	if env.Success == nil {
		return b, nil
	}
	if !*env.Success {
		return nil, fmt.Errorf("backend error: %s", env.Error)
	}
	return env.Data, nil
}

// DecodePortfolio reads a portfolio, bare or wrapped in the backend envelope.
// Amounts are set in currency, which the portfolio's own currency must match
// when both are given. Every record is validated and all the failures are
// reported together.
func DecodePortfolio(r io.Reader, currency string) (*Portfolio, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if b, err = unwrap(bytes.TrimSpace(b)); err != nil {
		return nil, err
	}
	var j struct {
		jrecord
		Name         string            `json:"name"`
		Description  string            `json:"description"`
		Currency     string            `json:"currency"`
		Holdings     []json.RawMessage `json:"holdings"`
		Assets       []json.RawMessage `json:"assets"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio: %w", err)
	}
	if currency != "" && j.Currency != "" && !strings.EqualFold(j.Currency, currency) {
		return nil, fmt.Errorf("%w: portfolio %q is in %s, rates are in %s", ErrInvalidRecord, j.Name, j.Currency, currency)
	}
	holdings, herr := decodeEach[Holding]("holdings", append(j.Holdings, j.Assets...))
	txs, terr := decodeEach[Transaction]("transactions", j.Transactions)
	if err := errors.Join(herr, terr); err != nil {
		return nil, fmt.Errorf("invalid portfolio %q: %w", j.Name, err)
	}
	p := &Portfolio{
		ID:           j.id(),
		Name:         j.Name,
		Description:  j.Description,
		Currency:     firstNonEmpty(currency, j.Currency, DefaultCurrency),
		Holdings:     holdings,
		Transactions: txs,
	}
	for i := range p.Holdings {
		p.Holdings[i].CostPrice = p.Holdings[i].CostPrice.In(p.Currency)
	}
	for i := range p.Transactions {
		p.Transactions[i].Price = p.Transactions[i].Price.In(p.Currency)
	}
	SortTransactions(p.Transactions)
	if err := ValidateLedger(p.Transactions); err != nil {
		return nil, fmt.Errorf("invalid portfolio %q: %w", p.Name, err)
	}
	return p, nil
}

// DecodeAlerts reads a list of alerts, bare or wrapped in the backend envelope.
func DecodeAlerts(r io.Reader, currency string) ([]Alert, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if b, err = unwrap(bytes.TrimSpace(b)); err != nil {
		return nil, err
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return nil, fmt.Errorf("cannot decode alerts: %w", err)
	}
	alerts, err := decodeEach[Alert]("alerts", raws)
	if err != nil {
		return nil, err
	}
	for i := range alerts {
		alerts[i].Target = alerts[i].Target.In(firstNonEmpty(currency, DefaultCurrency))
	}
	return alerts, nil
}

// decodeEach decodes and validates every record, reporting all the failures at once.
func decodeEach[T interface{ Validate() error }](label string, raws []json.RawMessage) ([]T, error) {
	var (
		items = make([]T, 0, len(raws))
		errs  []error
	)
	for i, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", label, i, err))
			continue
		}
		if err := item.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", label, i, err))
			continue
		}
		items = append(items, item)
	}
	return items, errors.Join(errs...)
}
