// Package ranking scores jobs, courses and mentor profiles against a user and ranks the results.
package ranking

import "math"

const (
	minScore = 0
	maxScore = 100
)

// finalScore rounds a raw component sum to the nearest integer (ties to even)
// and clamps it to [0, 100].
func finalScore(raw float64) int {
	return clampScore(int(math.RoundToEven(raw)))
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// ratio returns part/whole, or 0 when whole is zero.
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
