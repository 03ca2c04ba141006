package portfolio

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(ps *Positions) []Position {
	var res []Position
	for _, p := range ps.All() {
		res = append(res, p)
	}
	return res
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		holdings []Holding
		want     []Position
	}{
		{
			name: "empty",
		},
		{
			name: "weighted average cost",
			holdings: []Holding{
				holding(gram, 10, 100, "2024-01-10"),
				holding(usd, 100, 30, "2024-01-05"),
				holding(gram, 10, 120, "2024-01-02"),
			},
			want: []Position{
				{Instrument: gram, TotalAmount: Q(20), TotalCostBasis: TRY(2200), Lots: 2, Since: day("2024-01-02")},
				{Instrument: usd, TotalAmount: Q(100), TotalCostBasis: TRY(3000), Lots: 1, Since: day("2024-01-05")},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(Aggregate(tt.holdings))
			if diff := cmp.Diff(tt.want, got, equate); diff != "" {
				t.Errorf("Aggregate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregate_WeightedAverageCostPrice(t *testing.T) {
	ps := Aggregate([]Holding{holding(gram, 10, 100, "2024-01-01"), holding(gram, 10, 120, "2024-01-02")})
	p, ok := ps.Get(gram)
	if !ok {
		t.Fatalf("Get(%v) not found", gram)
	}
	if got, want := p.WeightedAverageCostPrice(), TRY(110); !got.Equal(want) {
		t.Errorf("WeightedAverageCostPrice() = %v, want %v", got, want)
	}
	if got, want := p.TotalAmount, Q(20); !got.Equal(want) {
		t.Errorf("TotalAmount = %v, want %v", got, want)
	}
	if got := (Position{}).WeightedAverageCostPrice(); !got.IsZero() {
		t.Errorf("empty WeightedAverageCostPrice() = %v, want 0", got)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	holdings := []Holding{
		holding(gram, 1.5, 2000, "2024-01-01"),
		holding(quart, 2, 3500, "2024-02-01"),
		holding(gram, 0.25, 2100, "2024-03-01"),
	}
	first, second := collect(Aggregate(holdings)), collect(Aggregate(holdings))
	if diff := cmp.Diff(first, second, equate); diff != "" {
		t.Errorf("Aggregate() is not idempotent (-first +second):\n%s", diff)
	}
}

func TestAggregate_Conservation(t *testing.T) {
	const n = 10000
	holdings := make([]Holding, 0, n)
	want := Q(0)
	for i := range n {
		amount := 0.001 * float64(i%7+1)
		holdings = append(holdings, holding(gram, amount, 2500.37, "2024-01-01"))
		want = want.Add(Q(amount))
	}
	p, _ := Aggregate(holdings).Get(gram)
	if !p.TotalAmount.Equal(want) {
		t.Errorf("TotalAmount = %v, want %v", p.TotalAmount, want)
	}
	if p.Lots != n {
		t.Errorf("Lots = %d, want %d", p.Lots, n)
	}
}

func TestAggregateLedger(t *testing.T) {
	ledger := []Transaction{
		NewBuy(day("2024-01-01"), gram, Q(10), TRY(100)),
		NewBuy(day("2024-01-02"), usd, Q(100), TRY(30)),
		NewBuy(day("2024-01-03"), gram, Q(10), TRY(120)),
		NewSell(day("2024-01-04"), gram, Q(5), TRY(130)),
		NewSell(day("2024-01-05"), usd, Q(100), TRY(32)),
	}
	tests := []struct {
		method CostBasisMethod
		want   Position
	}{
		{
			method: SignedFlow,
			want:   Position{Instrument: gram, TotalAmount: Q(15), TotalCostBasis: TRY(1550), Lots: 2, Since: day("2024-01-01")},
		},
		{
			method: AverageCost,
			want:   Position{Instrument: gram, TotalAmount: Q(15), TotalCostBasis: TRY(1650), Lots: 2, Since: day("2024-01-01"), Realized: TRY(100)},
		},
		{
			method: FIFO,
			want:   Position{Instrument: gram, TotalAmount: Q(15), TotalCostBasis: TRY(1700), Lots: 2, Since: day("2024-01-01"), Realized: TRY(150)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.method.String(), func(t *testing.T) {
			ps := AggregateLedger(ledger, tt.method)
			if diff := cmp.Diff([]Position{tt.want}, collect(ps), equate); diff != "" {
				t.Errorf("AggregateLedger() mismatch (-want +got):\n%s", diff)
			}
			if _, ok := ps.Get(usd); ok {
				t.Errorf("AggregateLedger() kept the fully sold %v", usd)
			}
		})
	}
}

func TestAggregateLedger_Unsorted(t *testing.T) {
	ledger := []Transaction{
		NewSell(day("2024-01-04"), gram, Q(4), TRY(130)),
		NewBuy(day("2024-01-01"), gram, Q(10), TRY(100)),
	}
	p, ok := AggregateLedger(ledger, SignedFlow).Get(gram)
	if !ok {
		t.Fatalf("AggregateLedger() lost %v", gram)
	}
	if got, want := p.TotalAmount, Q(6); !got.Equal(want) {
		t.Errorf("TotalAmount = %v, want %v", got, want)
	}
	if got, want := p.TotalCostBasis, TRY(480); !got.Equal(want) {
		t.Errorf("TotalCostBasis = %v, want %v", got, want)
	}
	if ledger[0].Side != Sell {
		t.Errorf("AggregateLedger() reordered its input")
	}
}

func TestAggregateLedger_NewRound(t *testing.T) {
	ledger := []Transaction{
		NewBuy(day("2024-01-01"), gram, Q(10), TRY(100)),
		NewSell(day("2024-01-02"), gram, Q(10), TRY(110)),
		NewBuy(day("2024-01-03"), gram, Q(2), TRY(120)),
	}
	p, _ := AggregateLedger(ledger, AverageCost).Get(gram)
	want := Position{Instrument: gram, TotalAmount: Q(2), TotalCostBasis: TRY(240), Lots: 2, Since: day("2024-01-03"), Realized: TRY(100)}
	if diff := cmp.Diff(want, p, equate); diff != "" {
		t.Errorf("AggregateLedger() mismatch (-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	ps := NewPositions(Position{Instrument: usd}, Position{Instrument: gram}, Position{Instrument: usd, Lots: 3})
	if got, want := ps.Keys(), []InstrumentKey{usd, gram}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if p, _ := ps.Get(usd); p.Lots != 3 {
		t.Errorf("Get(usd).Lots = %d, want 3", p.Lots)
	}
	var nilPositions *Positions
	if nilPositions.Len() != 0 || len(collect(nilPositions)) != 0 {
		t.Errorf("nil Positions is not empty")
	}
}
