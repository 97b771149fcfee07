// =============================================================================
// EDIWIN Order Extractor - ECI Line Classifier
// =============================================================================
//
// El Corte Inglés pages are classified line by line. Unlike Eurofiel, ECI
// header fields are recovered by regex search over the whole page text, so
// the classifier only needs the kinds the assembler walks on: Detail,
// ModelColor, Noise and Continuation (the fallback). A line is Noise when it
// is blank or contains one of the configured noise markers (collection
// banners such as "WOMAN FIESTA" that the PDF interleaves with item lines).
//
// =============================================================================

package eci

import (
	"regexp"
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/classify"
)

// DefaultNoiseMarkers are the banner substrings skipped in known documents.
var DefaultNoiseMarkers = []string{"WOMAN FIESTA"}

var (
	// detailStartRe gates the detail-line shape: line index then EAN-13.
	detailStartRe = regexp.MustCompile(`^\d+\s+\d{13}\s`)

	// modelColorRe is the shape of the model/color line below a detail line:
	// a 5+ character alphanumeric code followed by a 3-digit color code.
	modelColorRe = regexp.MustCompile(`^[A-Z0-9]{5,}\s+\d{3}\s`)
)

// LineClassifier is the ECI policy of the classify.Classifier interface.
type LineClassifier struct {
	// NoiseMarkers are substrings that mark a line as Noise. Nil means
	// DefaultNoiseMarkers.
	NoiseMarkers []string
}

// Classify tags one physical page line.
func (c LineClassifier) Classify(line string) classify.LineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return classify.Noise
	}

	markers := c.NoiseMarkers
	if markers == nil {
		markers = DefaultNoiseMarkers
	}
	for _, marker := range markers {
		if strings.Contains(trimmed, marker) {
			return classify.Noise
		}
	}

	if detailStartRe.MatchString(trimmed) {
		return classify.Detail
	}
	if modelColorRe.MatchString(trimmed) {
		return classify.ModelColor
	}
	return classify.Continuation
}
