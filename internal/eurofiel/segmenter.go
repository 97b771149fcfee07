// =============================================================================
// EDIWIN Order Extractor - Eurofiel Order Segmenter
// =============================================================================
//
// A Eurofiel EDIWIN document concatenates several orders into one text run.
// Every order carries exactly one "Nº Pedido :" marker, and the document-type
// label (PEDIDO, REEMPLAZO PEDIDO, ANULACIÓN PEDIDO) sits on the line right
// above it. The segmenter therefore splits the full text at each marker and
// backdates every chunk start past two newlines so the label ends up inside
// its own chunk.
//
// =============================================================================

package eurofiel

import (
	"regexp"
	"strings"
)

// orderMarkerRe anchors segmentation. One match per order.
var orderMarkerRe = regexp.MustCompile(`Nº Pedido\s*:`)

// SplitOrders divides the full document text into one chunk per order-number
// marker. Each chunk starts at the line above its marker and runs to the
// next marker (the last chunk runs to end of text). A document with N
// markers yields exactly N chunks; text with no markers yields none.
func SplitOrders(fullText string) []string {
	locs := orderMarkerRe.FindAllStringIndex(fullText, -1)
	chunks := make([]string, 0, len(locs))

	for i, loc := range locs {
		start := backdateTwoLines(fullText, loc[0])

		end := len(fullText)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}

		chunks = append(chunks, strings.TrimSpace(fullText[start:end]))
	}

	return chunks
}

// backdateTwoLines returns the offset of the start of the line preceding
// the one markerStart sits on, clamped to the start of the text.
func backdateTwoLines(text string, markerStart int) int {
	prev := strings.LastIndex(text[:markerStart], "\n")
	if prev == -1 {
		return 0
	}
	prevPrev := strings.LastIndex(text[:prev], "\n")
	return prevPrev + 1 // -1 clamps to 0
}
