package portfolio

import (
	"testing"

	"github.com/altinfolio/portfolio/date"
	"github.com/google/go-cmp/cmp"
)

func TestValueHistory(t *testing.T) {
	holdings := []Holding{
		holding(gram, 10, 100, "2024-01-02"),
		holding(usd, 100, 30, "2024-01-04"),
	}
	prices := map[InstrumentKey]Series{
		gram: series("2024-01-02", 110.0, "2024-01-04", 120.0),
		usd:  series("2024-01-05", 32.0),
	}
	got := ValueHistory(holdings, prices, date.NewRange(day("2024-01-01"), day("2024-01-05")))
	want := []ValuePoint{
		{Date: day("2024-01-02"), Value: TRY(1100)},
		{Date: day("2024-01-03"), Value: TRY(1100)},
		{Date: day("2024-01-04"), Value: TRY(4200), Estimated: true},
		{Date: day("2024-01-05"), Value: TRY(4400)},
	}
	if diff := cmp.Diff(want, got, equate); diff != "" {
		t.Errorf("ValueHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestLedgerValueHistory(t *testing.T) {
	txs := []Transaction{
		NewBuy(day("2024-01-02"), gram, Q(10), TRY(100)),
		NewSell(day("2024-01-04"), gram, Q(10), TRY(120)),
	}
	prices := map[InstrumentKey]Series{gram: series("2024-01-01", 105.0, "2024-01-03", 115.0)}
	got := LedgerValueHistory(txs, prices, date.NewRange(day("2024-01-01"), day("2024-01-05")))
	want := []ValuePoint{
		{Date: day("2024-01-02"), Value: TRY(1050)},
		{Date: day("2024-01-03"), Value: TRY(1150)},
	}
	if diff := cmp.Diff(want, got, equate); diff != "" {
		t.Errorf("LedgerValueHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestPortfolio_ValueHistory(t *testing.T) {
	p := &Portfolio{
		Holdings:     []Holding{holding(gram, 1, 100, "2024-01-01")},
		Transactions: []Transaction{NewBuy(day("2024-01-01"), gram, Q(2), TRY(100))},
	}
	prices := map[InstrumentKey]Series{gram: series("2024-01-01", 100.0)}
	got := p.ValueHistory(prices, date.NewRange(day("2024-01-01"), day("2024-01-01")))
	if len(got) != 1 || !got[0].Value.Equal(TRY(200)) {
		t.Errorf("ValueHistory() = %v, want the ledger value 200", got)
	}
}
