// =============================================================================
// EDIWIN Order Extractor - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - eurofiel
//   - eci
//   - export
//
// =============================================================================

package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COLUMN NAMES
// =============================================================================

// Output column names. Both vendor grammars produce flat rows keyed by these
// names; the per-vendor column slices below fix the output order.
const (
	ColTipo            = "TIPO"
	ColPedido          = "PEDIDO"
	ColNPedido         = "N_PEDIDO"
	ColFecha           = "FECHA"
	ColFechaEntrega    = "FECHA_ENTREGA"
	ColPais            = "PAIS"
	ColDestino         = "DESTINO"
	ColDepartamento    = "DEPARTAMENTO"
	ColDescripcion     = "DESCRIPCION"
	ColModelo          = "MODELO"
	ColPatron          = "PATRON"
	ColColor           = "COLOR"
	ColPrecio          = "PRECIO"
	ColUnidades        = "UNIDADES"
	ColTotalUnidades   = "TOTAL_UNIDADES"
	ColUnidadesTotales = "UNIDADES_TOTALES"
	ColImporteTotal    = "IMPORTE_TOTAL"
	ColSucEntrega      = "SUC_ENTREGA"
)

// EurofielSummaryColumns is the column order for the per-order Eurofiel
// summary (one row per order, first detail line as representative).
var EurofielSummaryColumns = []string{
	ColTipo, ColPedido, ColFechaEntrega, ColPais, ColDescripcion,
	ColModelo, ColPatron, ColPrecio, ColTotalUnidades,
}

// EurofielExtendedColumns is the column order for the mapping-aware Eurofiel
// variant, which adds the order date, the destination and per-order totals
// computed across all detail lines.
var EurofielExtendedColumns = []string{
	ColTipo, ColPedido, ColFecha, ColFechaEntrega, ColPais, ColDestino,
	ColDescripcion, ColModelo, ColPatron, ColUnidades, ColPrecio,
	ColUnidadesTotales, ColImporteTotal,
}

// ECIColumns is the column order for El Corte Inglés output
// (one row per distinct order/model/color tuple).
var ECIColumns = []string{
	ColTipo, ColNPedido, ColDepartamento, ColDescripcion, ColModelo,
	ColColor, ColPrecio, ColFechaEntrega, ColSucEntrega, ColTotalUnidades,
}

// =============================================================================
// HEADER
// =============================================================================

// Header holds the order-level fields recovered from a segmented chunk
// (Eurofiel) or accumulated across the pages of one document (ECI).
//
// A Header is created once per chunk or page run and updated with the first
// non-empty value seen for each field. Records lacking an order number are
// discarded by the callers.
type Header struct {
	// DocType is the document type label (PEDIDO, REPOSICION, ANULACION...).
	// Free-form: the raw label line is kept as seen.
	DocType string

	// OrderNumber is the order identifier. Required: chunks or pages without
	// a recoverable order number produce no output rows.
	OrderNumber string

	// Date is the order date (Eurofiel extended output only). Nullable.
	Date *time.Time

	// DeliveryDate is the requested delivery date. Nullable.
	DeliveryDate *time.Time

	// Country is the destination country name (Eurofiel).
	Country string

	// Destination is the delivery destination: the Destino/Lug.Entreg. header
	// for Eurofiel, the delivery branch code pair for ECI.
	Destination string

	// Department is the selling department code (ECI).
	Department string

	// Description is the order-level item description (Eurofiel header field).
	Description string

	// TotalUnits is the order-level unit count as printed in the document
	// (Eurofiel "Total Unidades"). Kept as text: a missing or malformed value
	// stays blank rather than dropping the record.
	TotalUnits string
}

// MergeFirstWins copies each non-empty field of other into h only where h
// does not already hold a value. This is the named first-wins accumulation
// policy: once a header field has been seen, later pages never overwrite it.
func (h *Header) MergeFirstWins(other Header) {
	if h.DocType == "" {
		h.DocType = other.DocType
	}
	if h.OrderNumber == "" {
		h.OrderNumber = other.OrderNumber
	}
	if h.Date == nil {
		h.Date = other.Date
	}
	if h.DeliveryDate == nil {
		h.DeliveryDate = other.DeliveryDate
	}
	if h.Country == "" {
		h.Country = other.Country
	}
	if h.Destination == "" {
		h.Destination = other.Destination
	}
	if h.Department == "" {
		h.Department = other.Department
	}
	if h.Description == "" {
		h.Description = other.Description
	}
	if h.TotalUnits == "" {
		h.TotalUnits = other.TotalUnits
	}
}

// =============================================================================
// DETAIL LINE
// =============================================================================

// DetailLine is one item line recovered from a vendor detail-line shape.
// Vendor-specific fields are left blank by the grammar that does not use them
// (Pattern is Eurofiel-only, Color is ECI-only).
type DetailLine struct {
	// Index is the leading line index token.
	Index int

	// EAN is the 13-digit article code anchoring the detail-line shape.
	EAN string

	// Model is the vendor-side code plus color, size suffix stripped.
	Model string

	// Pattern is the client-side code plus color, size suffix stripped
	// (Eurofiel only).
	Pattern string

	// Color is the color descriptor: code plus name tokens (ECI only).
	Color string

	// Description is the free-text item description. May have been merged
	// from two physical lines.
	Description string

	// Quantity is the ordered unit count. Nil when the quantity token did
	// not normalize to an integer; the line is still kept.
	Quantity *int

	// Price is the unit price after locale normalization. Nil when the
	// price token did not normalize; the line is still kept.
	Price *decimal.Decimal

	// PriceText is the normalized textual price as it appears in output.
	// Kept separately from Price so the document's decimal precision
	// survives (e.g. "53.000" is not collapsed to "53").
	PriceText string
}

// =============================================================================
// ROW
// =============================================================================

// Row is one flat output record: column name -> cell text. The column slices
// above define ordering; missing keys render as blank cells.
type Row map[string]string

// =============================================================================
// DATE HELPERS
// =============================================================================

// dateLayouts are the calendar formats seen in EDIWIN documents.
var dateLayouts = []string{"02/01/2006", "02-01-2006"}

// ParseDate parses a dd/mm/yyyy or dd-mm-yyyy date. Returns nil when the
// value does not parse; per the error taxonomy a malformed date leaves the
// field blank without dropping the record.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate renders a nullable date back to dd/mm/yyyy, or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
