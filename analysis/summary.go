package analysis

import "github.com/katalvlaran/regmap/core"

// Summary holds the two facility answers.
type Summary struct {
	// MaxDistance is the largest door count from the origin to any room.
	MaxDistance int
	// FarRooms counts rooms at least Threshold doors away.
	FarRooms int
}

// Summarize reduces dm to its Summary using Threshold.
// Complexity: O(R).
func Summarize(dm *DistanceMap) Summary { return SummarizeAt(dm, Threshold) }

// SummarizeAt is Summarize with an explicit far-room threshold.
func SummarizeAt(dm *DistanceMap, threshold int) Summary {
	var s Summary
	dm.Each(func(_ core.Coordinate, d int) {
		s.MaxDistance = max(s.MaxDistance, d)
		if d >= threshold {
			s.FarRooms++
		}
	})
	return s
}
