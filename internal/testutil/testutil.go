// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/banshee-data/lidar-sim/internal/geometry"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// RectRoom returns an axis-aligned rectangle with corners (x0, y0) and
// (x1, y1), wound counter-clockwise from the lower-left corner.
func RectRoom(x0, y0, x1, y1 float64) *geometry.Polygon {
	return geometry.NewPolygon(
		geometry.Seg(x0, y0, x1, y0),
		geometry.Seg(x1, y0, x1, y1),
		geometry.Seg(x1, y1, x0, y1),
		geometry.Seg(x0, y1, x0, y0),
	)
}

// SquareRoom returns the square with corners (0, 0) and (size, size).
func SquareRoom(size float64) *geometry.Polygon {
	return RectRoom(0, 0, size, size)
}
