// =============================================================================
// EDIWIN Order Extractor - ECI Aggregator
// =============================================================================
//
// Some documents repeat a (order, model, color) line across pages or size
// runs. The aggregator collapses exact duplicates of the full identity tuple
// by summing quantities. Equality is exact string equality; no fuzzy
// matching. Output keeps the first-appearance order of each group, so the
// sum is independent of input order while the row order stays stable.
//
// =============================================================================

package eci

import "strconv"

// Aggregate groups records by identity key and sums quantities within each
// group. The input slice is not modified.
func Aggregate(records []Record) []Record {
	grouped := make(map[string]*Record, len(records))
	order := make([]string, 0, len(records))

	for i := range records {
		r := records[i]
		k := r.key()
		if existing, ok := grouped[k]; ok {
			existing.Quantity += r.Quantity
			continue
		}
		grouped[k] = &r
		order = append(order, k)
	}

	out := make([]Record, 0, len(order))
	for _, k := range order {
		out = append(out, *grouped[k])
	}
	return out
}

// itoa spells out the quantity cell.
func itoa(n int) string {
	return strconv.Itoa(n)
}
