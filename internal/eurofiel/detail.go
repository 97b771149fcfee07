// =============================================================================
// EDIWIN Order Extractor - Eurofiel Detail-Line Grammar
// =============================================================================
//
// A Eurofiel detail line has the shape:
//
//   1 8447571299747 3RC240/NARANJA/XS 0863769/66/01 1 50 50 0 EUR
//   ^ ^             ^                 ^             ^ ^  ^  ^
//   | EAN-13        vendor code/color | anchor      | |  |  list price
//   line index      (may contain      client code   | |  net price (kept)
//                    spaces)          /color/size   | gross price
//                                                   quantity
//
// The vendor code+color span runs from token 2 up to the composite-code
// anchor; the four columns after the anchor occupy a fixed order described
// by trailingLayout below. Both codes lose their trailing "/size" segment.
//
// =============================================================================

package eurofiel

import (
	"regexp"
	"strings"

	"github.com/tsuspe/ediwin-parser/internal/classify"
	"github.com/tsuspe/ediwin-parser/internal/types"
)

// =============================================================================
// TRAILING COLUMN LAYOUT
// =============================================================================

// Slot names of the fixed columns that follow the composite-code anchor.
const (
	slotQuantity = "quantity"
	slotGross    = "gross"
	slotNet      = "net"
	slotList     = "list"
)

// trailingLayout is the fixed column order after the anchor. The net price
// is the one retained as unit price.
var trailingLayout = []string{slotQuantity, slotGross, slotNet, slotList}

// slotIndex returns the token index of a named trailing column relative to
// the composite-code anchor, or -1 for an unknown slot name.
func slotIndex(anchor int, slot string) int {
	for i, name := range trailingLayout {
		if name == slot {
			return anchor + 1 + i
		}
	}
	return -1
}

// sizeSuffixRe strips the last "/"-delimited segment (the size) of a code.
var sizeSuffixRe = regexp.MustCompile(`/[^/]+$`)

// =============================================================================
// DETAIL-LINE PARSER
// =============================================================================

// ParseDetailLine parses one physical line against the Eurofiel detail-line
// grammar. It returns nil (not an error) when the line violates any part of
// the shape:
//   - fewer than 8 tokens
//   - first token not a bare integer
//   - second token not exactly 13 digits
//   - no int/int/int composite token after position 1
//   - fewer than 4 tokens after the composite token
func ParseDetailLine(line string) *types.DetailLine {
	tokens := classify.Tokenize(line)
	if len(tokens) < 8 {
		return nil
	}
	if tokens[0].Kind != classify.Integer {
		return nil
	}
	if tokens[1].Kind != classify.EAN13 {
		return nil
	}

	anchor := classify.LocateComposite(tokens)
	if anchor == -1 || anchor+len(trailingLayout) >= len(tokens) {
		return nil
	}

	// The vendor code+color may contain spaces ("2TB060/AZUL OSCUR/S"), so it
	// is the joined span between the EAN and the anchor.
	vendorCode := joinTexts(tokens[2:anchor])
	clientCode := tokens[anchor].Text

	priceText := classify.NormalizePrice(
		tokens[slotIndex(anchor, slotNet)].Text, classify.PriceCommaDecimal)

	detail := &types.DetailLine{
		EAN:       tokens[1].Text,
		Model:     sizeSuffixRe.ReplaceAllString(vendorCode, ""),
		Pattern:   sizeSuffixRe.ReplaceAllString(clientCode, ""),
		Quantity:  classify.ParseQuantity(tokens[slotIndex(anchor, slotQuantity)].Text),
		Price:     classify.ParsePrice(priceText),
		PriceText: priceText,
	}
	if idx := classify.ParseQuantity(tokens[0].Text); idx != nil {
		detail.Index = *idx
	}

	return detail
}

// joinTexts space-joins the texts of a token span.
func joinTexts(tokens []classify.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
