// =============================================================================
// EDIWIN Order Extractor - Eurofiel Document Parser
// =============================================================================
//
// Pipeline: per-page text -> one concatenated document -> order chunks ->
// header + detail lines per chunk. Chunks without a recoverable order number
// are dropped as noise, never reported as errors.
//
// =============================================================================

package eurofiel

import (
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/classify"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

// Order is one segmented purchase order: its header fields and every line
// matching the detail grammar, in document order.
type Order struct {
	Header  types.Header
	Details []types.DetailLine
}

// FirstDetail returns the representative detail line of the order, or nil
// when no line matched the grammar. Keeping only the first qualifying line
// per order is the named output policy of the summary: orders are reported
// by their first detected item plus the header-level total-unit count.
func (o *Order) FirstDetail() *types.DetailLine {
	if len(o.Details) == 0 {
		return nil
	}
	return &o.Details[0]
}

// Parse segments the document's pages into orders. Pages are joined in
// order before segmentation because one order may span a page break.
func Parse(pages []string) []Order {
	full := strings.Join(pages, "\n")

	var orders []Order
	for _, chunk := range SplitOrders(full) {
		order := parseChunk(chunk)
		if order.Header.OrderNumber == "" {
			// Required field missing: the whole chunk is dropped.
			continue
		}
		orders = append(orders, order)
	}
	return orders
}

// parseChunk extracts the header and all detail lines of one order chunk.
func parseChunk(chunk string) Order {
	order := Order{Header: ParseHeader(chunk)}

	var classifier LineClassifier
	for _, line := range strings.Split(chunk, "\n") {
		if classifier.Classify(line) != classify.Detail {
			continue
		}
		if detail := ParseDetailLine(line); detail != nil {
			order.Details = append(order.Details, *detail)
		}
	}

	return order
}
