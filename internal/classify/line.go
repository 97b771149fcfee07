// =============================================================================
// EDIWIN Order Extractor - Line Classifier Interface
// =============================================================================
//
// A physical line of page text is one of five kinds. Each vendor grammar
// supplies its own Classifier implementation; the two policies differ only in
// the shape tests, never in the set of kinds. Classification is shape-based
// and context-free: relational rules (a continuation only merges into the
// detail line it immediately follows) belong to the assemblers.
//
// =============================================================================

package classify

// LineKind is the tagged classification of one physical line.
type LineKind int

const (
	// Noise is a line the grammar does not recognize. Noise is skipped,
	// never reported as an error.
	Noise LineKind = iota

	// HeaderFragment carries an order-level field (order number, dates,
	// destination, document type label).
	HeaderFragment

	// Detail is an item line matching the vendor's detail-line shape.
	Detail

	// Continuation is free text extending the previous detail line's
	// description.
	Continuation

	// ModelColor is the ECI model/color line that follows a detail line.
	ModelColor
)

// String returns the kind name, for logs and test failure messages.
func (k LineKind) String() string {
	switch k {
	case HeaderFragment:
		return "header"
	case Detail:
		return "detail"
	case Continuation:
		return "continuation"
	case ModelColor:
		return "modelcolor"
	default:
		return "noise"
	}
}

// Classifier classifies physical lines for one vendor grammar.
type Classifier interface {
	Classify(line string) LineKind
}
