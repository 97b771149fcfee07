// =============================================================================
// EDIWIN Order Extractor - Eurofiel Header Extraction
// =============================================================================
//
// Header fields are recovered by regex search over a whole order chunk. The
// document-type label is not a labeled field: it is the first non-blank line
// of the chunk, which the segmenter guarantees to be the line right above
// the order-number marker.
//
// =============================================================================

package eurofiel

import (
	"regexp"
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/types"
)

var (
	headerPedidoRe        = regexp.MustCompile(`Nº Pedido\s*:\s*(\S+)`)
	headerFechaRe         = regexp.MustCompile(`Fecha\s*:\s*(\d{2}[/-]\d{2}[/-]\d{4})`)
	headerFechaEntregaRe  = regexp.MustCompile(`Fecha\s*Entrega\s*:\s*(\d{2}[/-]\d{2}[/-]\d{4})`)
	headerPaisRe          = regexp.MustCompile(`País:\s*\([^)]*\)\s*([A-ZÁÉÍÓÚÜÑ ]+)`)
	headerDestinoRe       = regexp.MustCompile(`(?i)(?:Destino|Destinatario|Lug\.?\s?Entreg\.)\s*:\s*(.+)`)
	headerDescripcionRe   = regexp.MustCompile(`Descripción:\s*(.+)`)
	headerTotalUnidadesRe = regexp.MustCompile(`Total Unidades\s+(\d+)`)

	// docTypeRe recognizes the bare type labels that precede the marker line.
	docTypeRe = regexp.MustCompile(`(?i)^(?:PEDIDO|REEMPLAZO\s+PEDIDO|REPOSICI[ÓO]N(?:\s+PEDIDO)?|ANULACI[ÓO]N\s+PEDIDO)$`)
)

// ParseHeader extracts the order-level fields from one segmented chunk.
// Fields that do not match stay at their zero values; the caller drops the
// whole chunk when the order number is missing.
func ParseHeader(chunk string) types.Header {
	var h types.Header

	// The segmenter backdates each chunk so its first non-blank line is the
	// document-type label.
	for _, line := range strings.Split(chunk, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			h.DocType = trimmed
			break
		}
	}

	h.OrderNumber = searchGroup(headerPedidoRe, chunk)
	h.Date = types.ParseDate(searchGroup(headerFechaRe, chunk))
	h.DeliveryDate = types.ParseDate(searchGroup(headerFechaEntregaRe, chunk))
	h.Country = strings.TrimSpace(searchGroup(headerPaisRe, chunk))
	h.Description = searchGroup(headerDescripcionRe, chunk)
	h.TotalUnits = searchGroup(headerTotalUnidadesRe, chunk)

	// The destination value may run into the next physical line of the PDF
	// text; only the first line belongs to the field.
	if dest := searchGroup(headerDestinoRe, chunk); dest != "" {
		h.Destination = strings.TrimSpace(strings.SplitN(dest, "\n", 2)[0])
	}

	return h
}

// searchGroup returns the trimmed first capture group of the first match,
// or "" when the pattern does not occur in the chunk.
func searchGroup(re *regexp.Regexp, chunk string) string {
	m := re.FindStringSubmatch(chunk)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
