// =============================================================================
// EDIWIN Order Extractor - Eurofiel Output Rows
// =============================================================================
//
// Two output shapes exist for Eurofiel documents:
//
//   - Summary: one row per order, represented by its first detail line and
//     the header-level total-unit count.
//   - Extended (mapping-aware): adds the order date, the destination and
//     per-order totals computed across *all* detail lines (sum of units,
//     sum of units x net price).
//
// The equivalence table is applied per field group; a nil table is the
// identity transform, so both builders take it unconditionally.
//
// =============================================================================

package eurofiel

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tsuspe/ediwin-parser/internal/equivalence"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

// SummaryRows builds the per-order summary rows
// (types.EurofielSummaryColumns order).
func SummaryRows(orders []Order, eq *equivalence.Table) []types.Row {
	rows := make([]types.Row, 0, len(orders))

	for i := range orders {
		order := &orders[i]
		row := types.Row{
			types.ColTipo:          eq.Apply(equivalence.GroupTipo, order.Header.DocType),
			types.ColPedido:        order.Header.OrderNumber,
			types.ColFechaEntrega:  types.FormatDate(order.Header.DeliveryDate),
			types.ColPais:          order.Header.Country,
			types.ColDescripcion:   order.Header.Description,
			types.ColTotalUnidades: order.Header.TotalUnits,
		}

		if detail := order.FirstDetail(); detail != nil {
			row[types.ColModelo] = eq.Apply(equivalence.GroupModelo, detail.Model)
			row[types.ColPatron] = eq.Apply(equivalence.GroupPatron, detail.Pattern)
			row[types.ColPrecio] = detail.PriceText
		}

		rows = append(rows, row)
	}

	return rows
}

// ExtendedRows builds the mapping-aware rows
// (types.EurofielExtendedColumns order).
func ExtendedRows(orders []Order, eq *equivalence.Table) []types.Row {
	rows := make([]types.Row, 0, len(orders))

	for i := range orders {
		order := &orders[i]
		totalUnits, totalAmount := orderTotals(order)

		row := types.Row{
			types.ColTipo:            eq.Apply(equivalence.GroupTipo, order.Header.DocType),
			types.ColPedido:          order.Header.OrderNumber,
			types.ColFecha:           types.FormatDate(order.Header.Date),
			types.ColFechaEntrega:    types.FormatDate(order.Header.DeliveryDate),
			types.ColPais:            order.Header.Country,
			types.ColDestino:         eq.Apply(equivalence.GroupDestino, order.Header.Destination),
			types.ColDescripcion:     order.Header.Description,
			types.ColUnidadesTotales: strconv.Itoa(totalUnits),
			types.ColImporteTotal:    totalAmount.StringFixed(2),
		}

		if detail := order.FirstDetail(); detail != nil {
			row[types.ColModelo] = eq.Apply(equivalence.GroupModelo, detail.Model)
			row[types.ColPatron] = eq.Apply(equivalence.GroupPatron, detail.Pattern)
			row[types.ColPrecio] = detail.PriceText
			if detail.Quantity != nil {
				row[types.ColUnidades] = strconv.Itoa(*detail.Quantity)
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// orderTotals sums units and units x net price across all detail lines of
// one order. Lines with a missing quantity or price contribute zero to the
// respective total.
func orderTotals(order *Order) (int, decimal.Decimal) {
	units := 0
	amount := decimal.Zero

	for i := range order.Details {
		detail := &order.Details[i]
		if detail.Quantity == nil {
			continue
		}
		units += *detail.Quantity
		if detail.Price != nil {
			qty := decimal.NewFromInt(int64(*detail.Quantity))
			amount = amount.Add(detail.Price.Mul(qty))
		}
	}

	return units, amount
}
