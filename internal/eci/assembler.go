// =============================================================================
// EDIWIN Order Extractor - ECI Record Assembler
// =============================================================================
//
// An ECI detail line interleaves the item description with a fixed run of
// trailing numeric columns:
//
//   1 8434135287359 056 47D26 983 VEST LARGO C/FRUNC 134 1 53,000 53,000 72,900 7102,00
//   ^ ^             ^---------^   ^-----------------^ ^   ^ ^      ^      ^      ^
//   | EAN-13        series/ref/   description         qty | gross  net    list   line
//   line index      color code                            factor  (kept: gross)  total
//
// The trailing columns are located by indexing the numeric-shaped tokens of
// the line from the end, per the trailingLayout slot list below. The item's
// model and color live on a separate line below the detail line, optionally
// separated by a second description line that is merged in.
//
// =============================================================================

package eci

import (
	"regexp"
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/classify"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

// =============================================================================
// TRAILING COLUMN LAYOUT
// =============================================================================

// Slot names of the fixed numeric columns ending a detail line.
const (
	slotQuantity  = "quantity"
	slotFactor    = "factor"
	slotGross     = "gross"
	slotNet       = "net"
	slotList      = "list"
	slotLineTotal = "lineTotal"
)

// trailingLayout is the fixed trailing column order. The gross unit price is
// the one retained. A detail line must carry at least this many
// numeric-shaped tokens.
var trailingLayout = []string{
	slotQuantity, slotFactor, slotGross, slotNet, slotList, slotLineTotal,
}

// slotFromEnd returns how far from the end of the numeric-token list a named
// slot sits (1 = last), or -1 for an unknown slot name.
func slotFromEnd(slot string) int {
	for i, name := range trailingLayout {
		if name == slot {
			return len(trailingLayout) - i
		}
	}
	return -1
}

// descStartIndex is the first description token: tokens 0..4 hold the line
// index, the EAN and the three code columns (series, reference, color code).
const descStartIndex = 5

// modelTokenRe accepts the leading token of a model/color line.
var modelTokenRe = regexp.MustCompile(`^[A-Z0-9]+$`)

// trailingDigitsRe strips a size run glued to a color name ("NEGRO003").
var trailingDigitsRe = regexp.MustCompile(`\d+$`)

// =============================================================================
// DETAIL-LINE PARSER
// =============================================================================

// parseDetailLine parses one line already gated by the Detail shape. Returns
// nil when fewer numeric-shaped tokens than trailing columns are present.
func parseDetailLine(line string) *types.DetailLine {
	parts := strings.Fields(line)

	var numericIdx []int
	for i, tok := range parts {
		if classify.IsNumericShaped(tok) {
			numericIdx = append(numericIdx, i)
		}
	}
	if len(numericIdx) < len(trailingLayout) {
		return nil
	}

	qtyIdx := numericIdx[len(numericIdx)-slotFromEnd(slotQuantity)]
	grossIdx := numericIdx[len(numericIdx)-slotFromEnd(slotGross)]

	priceText := classify.NormalizePrice(parts[grossIdx], classify.PriceDotThousands)

	detail := &types.DetailLine{
		EAN:       parts[1],
		Quantity:  classify.ParseQuantity(parts[qtyIdx]),
		Price:     classify.ParsePrice(priceText),
		PriceText: priceText,
	}
	if idx := classify.ParseQuantity(parts[0]); idx != nil {
		detail.Index = *idx
	}
	if qtyIdx > descStartIndex {
		detail.Description = strings.Join(parts[descStartIndex:qtyIdx], " ")
	}

	return detail
}

// parseModelColor extracts the model code and the color descriptor from the
// line below a detail line ("47D262G 983 PRINT NEGRO003 3"). Returns blank
// values when the line does not qualify.
func parseModelColor(line string) (model, color string) {
	parts := strings.Fields(line)
	if len(parts) < 3 || !modelTokenRe.MatchString(parts[0]) {
		return "", ""
	}

	model = parts[0]

	colorParts := []string{parts[1], parts[2]}
	if len(parts) >= 4 {
		if name := trailingDigitsRe.ReplaceAllString(parts[3], ""); name != "" {
			colorParts = append(colorParts, name)
		}
	}
	return model, strings.Join(colorParts, " ")
}

// =============================================================================
// PAGE WALK
// =============================================================================

// assemblePage walks the classified lines of one page and resolves the
// multi-line relationships: a Continuation immediately following a detail
// line extends its description, and the next line after that (ModelColor or
// otherwise qualifying) supplies model and color.
func assemblePage(lines []string, classifier LineClassifier) []types.DetailLine {
	var details []types.DetailLine

	for i, line := range lines {
		if classifier.Classify(line) != classify.Detail {
			continue
		}
		detail := parseDetailLine(line)
		if detail == nil {
			continue
		}

		consumed := 0
		if i+1 < len(lines) && classifier.Classify(lines[i+1]) == classify.Continuation {
			detail.Description = strings.TrimSpace(detail.Description + " " + lines[i+1])
			consumed = 1
		}

		if j := i + 1 + consumed; j < len(lines) {
			detail.Model, detail.Color = parseModelColor(lines[j])
		}

		details = append(details, *detail)
	}

	return details
}
