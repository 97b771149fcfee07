// =============================================================================
// EDIWIN Order Extractor - PDF Text Adapter
// =============================================================================
//
// This module turns a PDF file into the per-page plain-text strings the
// vendor grammars consume. It is deliberately thin: the engine only ever
// sees []string pages, so anything able to produce page text (including test
// fixtures) can stand in for this adapter.
//
// Text fragments are grouped into physical lines by their Y coordinate
// (PDF origin is bottom-left, so lines are emitted top-to-bottom by
// descending Y) and ordered by X within a line. A space is inserted between
// fragments whenever a horizontal gap separates them.
//
// =============================================================================

package pdftext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageSource yields the per-page text of one document. The vendor commands
// depend on this seam rather than on the PDF library.
type PageSource interface {
	ExtractPages(path string) ([]string, error)
}

// yTolerance is the vertical distance (points) within which fragments are
// considered to sit on the same physical line.
const yTolerance = 2.0

// gapThreshold is the horizontal distance (points) between the end of one
// fragment and the start of the next beyond which a space is inserted.
const gapThreshold = 1.0

// Extractor is the ledongthuc/pdf implementation of PageSource.
type Extractor struct{}

// ExtractPages reads every page of the PDF at path. An unreadable file is a
// fatal error surfaced to the caller; a page without text content yields an
// empty string (a valid page).
func (Extractor) ExtractPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, renderPage(page.Content().Text))
	}

	return pages, nil
}

// row is one physical line under assembly.
type row struct {
	y         float64
	fragments []pdf.Text
}

// renderPage groups a page's text fragments into lines and renders them
// top-to-bottom.
func renderPage(texts []pdf.Text) string {
	var rows []*row

	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}

		placed := false
		for _, r := range rows {
			if abs(r.y-t.Y) < yTolerance {
				r.fragments = append(r.fragments, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, &row{y: t.Y, fragments: []pdf.Text{t}})
		}
	}

	// Descending Y = top of page first.
	sort.Slice(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, renderRow(r.fragments))
	}
	return strings.Join(lines, "\n")
}

// renderRow orders a line's fragments left to right and joins them,
// inserting a space at every horizontal gap.
func renderRow(fragments []pdf.Text) string {
	sort.Slice(fragments, func(i, j int) bool { return fragments[i].X < fragments[j].X })

	var b strings.Builder
	prevEnd := 0.0
	for i, frag := range fragments {
		if i > 0 && frag.X-prevEnd > gapThreshold {
			b.WriteByte(' ')
		}
		b.WriteString(frag.S)
		prevEnd = frag.X + frag.W
	}
	return b.String()
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
