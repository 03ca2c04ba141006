// Package portfolio values personal portfolios of gold and foreign currency
// holdings against market rates.
//
// It is a pure computation engine: it performs no I/O and keeps no state
// between calls. Its inputs are the holdings (or the transaction ledger) of a
// portfolio and a snapshot of rates; its outputs are the derived objects
// presented by the pval command:
//   - Aggregate and AggregateLedger reduce holdings or transactions into
//     per-instrument positions with their cost basis.
//   - Valuate combines positions with current rates into values, profit and
//     loss and portfolio shares; Summarize rolls them up.
//   - Normalize rebases price series to 100 so that instruments of unrelated
//     scales can be compared; Compare does it over a date range.
//   - ComputeReturn is the single formula for simple and annualized returns,
//     used by Simulate, Compare and AnalyzeDaily.
//   - AnalyzeDaily derives daily changes, best and worst days and the
//     volatility of a value series produced by ValueHistory.
//   - EvaluateAlerts checks price alerts against current rates.
//
// Computation errors (see ErrMissingRate and the other Err variables) are
// carried inside results so that a faulty instrument never hides the others.
// Rates come from a RateLookup, collected into an immutable RateSnapshot with
// LatestRates before any computation starts.
package portfolio
