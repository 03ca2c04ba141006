package renderer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/altinfolio/portfolio"
)

var valuationHeader = []string{
	"type", "name", "amount", "averageCost", "currentPrice", "totalCost",
	"currentValue", "pnl", "pnlPercent", "portfolioShare", "since", "atCost",
}

// WriteValuationsCSV writes one record per valuation followed by a TOTAL record.
//
// Amounts have 6 decimals, money and percentages 2.
func WriteValuationsCSV(w io.Writer, valuations []portfolio.Valuation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(valuationHeader); err != nil {
		return err
	}
	for _, v := range valuations {
		err := cw.Write([]string{
			v.Instrument.Type.String(),
			v.Instrument.Name,
			v.TotalAmount.Decimal().StringFixed(6),
			money(v.WeightedAverageCostPrice()),
			money(v.CurrentPrice),
			money(v.TotalCostBasis),
			money(v.CurrentValue),
			money(v.PnL),
			pct(v.PnLPercent),
			pct(v.PortfolioSharePercent),
			v.Since.String(),
			strconv.FormatBool(v.PriceFallbackUsed),
		})
		if err != nil {
			return err
		}
	}
	s := portfolio.Summarize(valuations)
	share := "0.00"
	if !s.TotalValue.IsZero() {
		share = "100.00"
	}
	err := cw.Write([]string{
		"TOTAL", "", "", "", "",
		money(s.TotalCost),
		money(s.TotalValue),
		money(s.PnL),
		pct(s.PnLPercent),
		share,
		"",
		strconv.FormatBool(s.FallbackCount > 0),
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

var transactionHeader = []string{
	"date", "side", "type", "name", "amount", "price", "totalValue", "priceMode", "note",
}

// WriteTransactionsCSV writes one record per transaction, in the given order.
func WriteTransactionsCSV(w io.Writer, txs []portfolio.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transactionHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		err := cw.Write([]string{
			tx.Date.String(),
			tx.Side.String(),
			tx.Instrument.Type.String(),
			tx.Instrument.Name,
			tx.Amount.Decimal().StringFixed(6),
			money(tx.Price),
			money(tx.TotalValue()),
			tx.PriceMode.String(),
			tx.Note,
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(m portfolio.Money) string { return m.Decimal().StringFixed(2) }

func pct(p portfolio.Percent) string { return strconv.FormatFloat(float64(p), 'f', 2, 64) }
