package portfolio

import (
	"fmt"
	"strings"
)

// CostBasisMethod defines how SELL transactions reduce the cost basis of a
// position derived from the ledger.
type CostBasisMethod int

const (
	// SignedFlow treats BUY as a positive and SELL as a negative amount and
	// cost, each SELL valued at its own transaction price.
	SignedFlow CostBasisMethod = iota
	// AverageCost removes the running average cost of the units sold.
	AverageCost
	// FIFO (First-In, First-Out) assumes the oldest units bought are the first ones sold.
	FIFO
)

func (m CostBasisMethod) String() string {
	switch m {
	case SignedFlow:
		return "signed"
	case AverageCost:
		return "average"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// ParseCostBasisMethod parses a string into a CostBasisMethod.
func ParseCostBasisMethod(s string) (CostBasisMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "signed", "":
		return SignedFlow, nil
	case "average":
		return AverageCost, nil
	case "fifo":
		return FIFO, nil
	default:
		return 0, fmt.Errorf("unknown cost basis method: %q", s)
	}
}
