// =============================================================================
// EDIWIN Order Extractor - Eurofiel Line Classifier
// =============================================================================

package eurofiel

import (
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/classify"
)

// headerFragmentRes are the labeled header fields searched per chunk.
// Any line matching one of them is a HeaderFragment.
var headerFragmentRes = []interface {
	MatchString(string) bool
}{
	headerPedidoRe,
	headerFechaRe,
	headerFechaEntregaRe,
	headerPaisRe,
	headerDestinoRe,
	headerDescripcionRe,
	headerTotalUnidadesRe,
}

// LineClassifier is the Eurofiel policy of the classify.Classifier interface.
// The grammar has no model/color lines and no description continuations are
// merged, so unrecognized non-header lines classify as Continuation and are
// ignored by the chunk parser.
type LineClassifier struct{}

// Classify tags one physical line of an order chunk.
func (LineClassifier) Classify(line string) classify.LineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return classify.Noise
	}
	if ParseDetailLine(trimmed) != nil {
		return classify.Detail
	}
	if docTypeRe.MatchString(trimmed) {
		return classify.HeaderFragment
	}
	for _, re := range headerFragmentRes {
		if re.MatchString(trimmed) {
			return classify.HeaderFragment
		}
	}
	return classify.Continuation
}
