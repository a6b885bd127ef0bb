package lidar

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/lidar-sim/internal/geometry"
)

// RangeSummary describes the distribution of ranges in one scan.
type RangeSummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Ranges returns the distance from pose to every point.
func Ranges(pose geometry.Point, points []geometry.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = pose.DistanceTo(p)
	}
	return out
}

// SummariseRanges computes range statistics for a scan taken from pose.
// An empty scan yields the zero summary.
func SummariseRanges(pose geometry.Point, points []geometry.Point) RangeSummary {
	if len(points) == 0 {
		return RangeSummary{}
	}
	r := Ranges(pose, points)
	mean, std := stat.MeanStdDev(r, nil)
	if len(r) == 1 {
		std = 0
	}
	return RangeSummary{
		Count:  len(r),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(r),
		Max:    floats.Max(r),
	}
}
