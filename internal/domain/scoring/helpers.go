package scoring

import "math"

// roundMean averages the given values and rounds to the nearest integer.
func roundMean(values ...int) int {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return int(math.Round(float64(total) / float64(len(values))))
}

// weighted accumulates sub-metric scores with fixed weights.
type weighted struct {
	total float64
}

func (w *weighted) add(score int, weight float64) {
	w.total += float64(score) * weight
}

func (w *weighted) score() int {
	return int(math.Round(w.total))
}

// capped adds up checklist points without exceeding 100.
func capped(points ...int) int {
	total := 0
	for _, p := range points {
		total += p
	}
	if total > 100 {
		return 100
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
