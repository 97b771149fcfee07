// =============================================================================
// EDIWIN Order Extractor - Token Classifier
// =============================================================================
//
// This module splits a physical line of page text into whitespace tokens and
// classifies each token by shape. The vendor grammars (eurofiel, eci) are
// built on top of these shapes:
//   - Integer        : a bare digit run ("1", "134")
//   - EAN13          : exactly thirteen digits ("8447571299747")
//   - CompositeCode  : int/int/int, the client code + color + size ("0863769/66/01")
//   - Decimal        : digits with at least one comma/dot separator ("53,000")
//   - Word           : anything else
//
// All functions here are pure and total: an unrecognized token is simply a
// Word, never an error.
//
// =============================================================================

package classify

import (
	"regexp"
	"strings"
)

// =============================================================================
// TOKEN SHAPES
// =============================================================================

// TokenKind is the shape class of a single whitespace token.
type TokenKind int

const (
	// Word is any token that matches no numeric shape.
	Word TokenKind = iota

	// Integer is a bare digit run that is not an EAN (length != 13).
	Integer

	// EAN13 is exactly thirteen digits.
	EAN13

	// CompositeCode is three slash-joined digit runs: client code/color/size.
	CompositeCode

	// Decimal is a digit run with comma/dot separators, the shape of a
	// price or quantity-with-decimals token.
	Decimal
)

// String returns the shape name, for logs and test failure messages.
func (k TokenKind) String() string {
	switch k {
	case Integer:
		return "integer"
	case EAN13:
		return "ean13"
	case CompositeCode:
		return "composite"
	case Decimal:
		return "decimal"
	default:
		return "word"
	}
}

// Token is one whitespace-delimited token and its shape class.
type Token struct {
	Text string
	Kind TokenKind
}

var (
	digitsRe       = regexp.MustCompile(`^\d+$`)
	compositeRe    = regexp.MustCompile(`^\d+/\d+/\d+$`)
	decimalRe      = regexp.MustCompile(`^\d+(?:[.,]\d+)+$`)
	numericShapeRe = regexp.MustCompile(`^[\d.,]+$`)
)

// ClassifyToken returns the shape class of a single token.
func ClassifyToken(tok string) TokenKind {
	switch {
	case digitsRe.MatchString(tok):
		if len(tok) == 13 {
			return EAN13
		}
		return Integer
	case compositeRe.MatchString(tok):
		return CompositeCode
	case decimalRe.MatchString(tok):
		return Decimal
	default:
		return Word
	}
}

// Tokenize splits a line on whitespace and classifies every token.
func Tokenize(line string) []Token {
	fields := strings.Fields(line)
	tokens := make([]Token, len(fields))
	for i, f := range fields {
		tokens[i] = Token{Text: f, Kind: ClassifyToken(f)}
	}
	return tokens
}

// IsNumericShaped reports whether a token consists only of digits, dots and
// commas. The ECI grammar locates its trailing columns by indexing the
// numeric-shaped tokens of a detail line.
func IsNumericShaped(tok string) bool {
	return numericShapeRe.MatchString(tok)
}

// LocateComposite returns the index of the first CompositeCode token at or
// after position 2, or -1 when none exists. Positions 0 and 1 are excluded
// because on a detail line they hold the line index and the EAN.
func LocateComposite(tokens []Token) int {
	for i := 2; i < len(tokens); i++ {
		if tokens[i].Kind == CompositeCode {
			return i
		}
	}
	return -1
}
