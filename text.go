package gridcanvas

// Ellipsis is appended to truncated cell text.
const Ellipsis = "..."

// MeasureFunc returns the advance width of a string in logical pixels.
// Measurement is the expensive primitive here (it is backed by font
// metrics on real surfaces), so callers of TruncateToFit pay O(log n)
// measurements per overflowing string, not O(n).
type MeasureFunc func(text string) float64

// TruncateToFit returns text unchanged when it fits within maxWidth.
// Otherwise it returns the longest rune prefix that fits alongside an
// ellipsis, or "" when not even the ellipsis fits. Truncation is
// idempotent: output that fits is never truncated again.
func TruncateToFit(text string, maxWidth float64, measure MeasureFunc) string {
	if measure(text) <= maxWidth {
		return text
	}

	budget := maxWidth - measure(Ellipsis)
	if budget <= 0 {
		return ""
	}

	runes := []rune(text)

	// Binary search the longest prefix length whose width fits the budget.
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(string(runes[:mid])) <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return string(runes[:lo]) + Ellipsis
}
