// =============================================================================
// EDIWIN Order Extractor - ECI Header Extraction
// =============================================================================

package eci

import (
	"regexp"
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/types"
)

var (
	headerPedidoRe       = regexp.MustCompile(`Nº Pedido\s+(\d+)`)
	headerDepartamentoRe = regexp.MustCompile(`Dpto\. venta\s+(\d+)`)
	headerFechaEntregaRe = regexp.MustCompile(`Fecha Entrega\s+(\d{2}/\d{2}/\d{4})`)

	// The delivery branch is a digit pair ("01 0050") followed by the branch
	// name; two label variants occur across document vintages.
	headerSucursalPideRe    = regexp.MustCompile(`Sucursal Destino que Pide\s+([0-9 ]+)\s+[A-ZÁÉÍÓÚÜÑ]`)
	headerSucursalEntregaRe = regexp.MustCompile(`Sucursal de Entrega\s+([0-9 ]+)\s+[A-ZÁÉÍÓÚÜÑ]`)
)

// docTypeLabels are the bare document-type lines, compared lowercase.
var docTypeLabels = map[string]struct{}{
	"pedido":           {},
	"reposicion":       {},
	"reposición":       {},
	"anulacion pedido": {},
	"anulación pedido": {},
}

// parsePageHeader extracts the order-level fields present on one page.
// Fields that do not occur stay at their zero values; the document parser
// merges pages first-wins.
func parsePageHeader(text string, lines []string) types.Header {
	var h types.Header

	for _, line := range lines {
		if _, ok := docTypeLabels[strings.ToLower(line)]; ok {
			h.DocType = strings.ToUpper(line)
			break
		}
	}

	h.OrderNumber = searchGroup(headerPedidoRe, text)
	h.Department = searchGroup(headerDepartamentoRe, text)
	h.DeliveryDate = types.ParseDate(searchGroup(headerFechaEntregaRe, text))

	h.Destination = searchGroup(headerSucursalPideRe, text)
	if h.Destination == "" {
		h.Destination = searchGroup(headerSucursalEntregaRe, text)
	}

	return h
}

// searchGroup returns the trimmed first capture group of the first match,
// or "" when the pattern does not occur on the page.
func searchGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
