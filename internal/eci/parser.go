// =============================================================================
// EDIWIN Order Extractor - ECI Document Parser
// =============================================================================
//
// ECI documents are processed page by page: there is no order segmentation,
// header fields accumulate first-wins across the pages of one document, and
// every assembled detail line becomes one candidate record. The aggregator
// then collapses duplicate (order, model, color) occurrences by summing
// quantities.
//
// =============================================================================

package eci

import (
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/types"
)

// Options configures document parsing.
type Options struct {
	// NoiseMarkers overrides the banner substrings treated as Noise.
	// Nil keeps DefaultNoiseMarkers.
	NoiseMarkers []string
}

// Record is one output row candidate: header fields plus one assembled
// detail line. Quantity is already an integer (a malformed quantity token
// counts as zero so the record survives with a blank-equivalent value).
type Record struct {
	Type         string
	OrderNumber  string
	Department   string
	Description  string
	Model        string
	Color        string
	PriceText    string
	DeliveryDate string
	Branch       string
	Quantity     int
}

// key is the grouping identity: every field except the summed quantity.
func (r *Record) key() string {
	return strings.Join([]string{
		r.Type, r.OrderNumber, r.Department, r.Description, r.Model,
		r.Color, r.PriceText, r.DeliveryDate, r.Branch,
	}, "\x1f")
}

// Parse extracts and aggregates the records of one document given its
// per-page text. A document with no recoverable order number yields no
// records (the order identifier is the one required field).
func Parse(pages []string, opts Options) []Record {
	classifier := LineClassifier{NoiseMarkers: opts.NoiseMarkers}

	var header types.Header
	var details []types.DetailLine

	for _, page := range pages {
		lines := nonBlankLines(page)
		header.MergeFirstWins(parsePageHeader(page, lines))
		details = append(details, assemblePage(lines, classifier)...)
	}

	if header.OrderNumber == "" {
		return nil
	}

	records := make([]Record, 0, len(details))
	for i := range details {
		detail := &details[i]
		record := Record{
			Type:         header.DocType,
			OrderNumber:  header.OrderNumber,
			Department:   header.Department,
			Description:  detail.Description,
			Model:        detail.Model,
			Color:        detail.Color,
			PriceText:    detail.PriceText,
			DeliveryDate: types.FormatDate(header.DeliveryDate),
			Branch:       header.Destination,
		}
		if detail.Quantity != nil {
			record.Quantity = *detail.Quantity
		}
		records = append(records, record)
	}

	return Aggregate(records)
}

// Rows converts aggregated records to output rows (types.ECIColumns order).
func Rows(records []Record) []types.Row {
	rows := make([]types.Row, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, types.Row{
			types.ColTipo:          r.Type,
			types.ColNPedido:       r.OrderNumber,
			types.ColDepartamento:  r.Department,
			types.ColDescripcion:   r.Description,
			types.ColModelo:        r.Model,
			types.ColColor:         r.Color,
			types.ColPrecio:        r.PriceText,
			types.ColFechaEntrega:  r.DeliveryDate,
			types.ColSucEntrega:    r.Branch,
			types.ColTotalUnidades: itoa(r.Quantity),
		})
	}
	return rows
}

// nonBlankLines splits a page into trimmed, non-empty lines.
func nonBlankLines(page string) []string {
	var lines []string
	for _, line := range strings.Split(page, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
