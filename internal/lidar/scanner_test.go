package lidar

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/lidar-sim/internal/geometry"
	"github.com/banshee-data/lidar-sim/internal/testutil"
)

var approxPoints = cmpopts.EquateApprox(0, 1e-9)

func TestRayAngles(t *testing.T) {
	got := RayAngles(4)
	want := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	if diff := cmp.Diff(want, got, approxPoints); diff != "" {
		t.Errorf("RayAngles(4) mismatch (-want +got):\n%s", diff)
	}
	for _, n := range []int{0, -3} {
		if a := RayAngles(n); len(a) != 0 {
			t.Errorf("RayAngles(%d) = %v, want none", n, a)
		}
	}
	a := RayAngles(72)
	if last := a[len(a)-1]; last >= 2*math.Pi {
		t.Errorf("last angle %v must stop short of a full turn", last)
	}
}

func TestScan_EmptyPolygon(t *testing.T) {
	s := NewScanner(WithSeed(1))
	pts := s.Scan(geometry.Pt(0, 0), 4, 1, geometry.NewPolygon())
	assert.Empty(t, pts)

	pts = s.Scan(geometry.Pt(0, 0), 4, 1, nil)
	assert.Empty(t, pts)
}

func TestScan_ZeroNoiseMatchesGeometry(t *testing.T) {
	room := testutil.SquareRoom(10)
	pose := geometry.Pt(5, 5)

	pts := NewScanner(WithSeed(1)).Scan(pose, 4, 0, room)
	want := []geometry.Point{
		geometry.Pt(10, 5),
		geometry.Pt(5, 10),
		geometry.Pt(0, 5),
		geometry.Pt(5, 0),
	}
	if diff := cmp.Diff(want, pts, approxPoints); diff != "" {
		t.Errorf("scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_ZeroNoiseEqualsNearestHit(t *testing.T) {
	room := testutil.SquareRoom(10)
	room.Append(geometry.Seg(6, 2, 8, 7)) // interior obstacle
	pose := geometry.Pt(3, 4)

	pts := NewScanner(WithSeed(9)).Scan(pose, 36, 0, room)
	require.Len(t, pts, 36, "every ray is enclosed by the room")

	for i, a := range RayAngles(36) {
		dir := geometry.Pt(math.Cos(a), math.Sin(a))
		want, ok := geometry.NewRay(geometry.Segment{A: pose, B: pose.Add(dir)}).IntersectPolygon(room)
		require.True(t, ok)
		if diff := cmp.Diff(want, pts[i], approxPoints); diff != "" {
			t.Errorf("ray %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestScan_MissingRaysAreDropped(t *testing.T) {
	wall := geometry.NewPolygon(geometry.Seg(10, 0, 10, 10))
	pts := NewScanner(WithSeed(1)).Scan(geometry.Pt(5, 5), 4, 0, wall)

	require.Len(t, pts, 1)
	assert.InDelta(t, 10, pts[0].X, 1e-9)
	assert.InDelta(t, 5, pts[0].Y, 1e-9)
}

func TestScan_PoseOutsideRoom(t *testing.T) {
	pts := NewScanner(WithSeed(1)).Scan(geometry.Pt(-5, 5), 4, 0, testutil.SquareRoom(10))

	require.Len(t, pts, 1, "only the beam towards the room should hit")
	assert.InDelta(t, 0, pts[0].X, 1e-9, "nearest wall wins over the far one")
}

func TestScan_DegenerateSegmentIgnored(t *testing.T) {
	poly := geometry.NewPolygon(geometry.Seg(10, 5, 10, 5))
	pts := NewScanner(WithSeed(1)).Scan(geometry.Pt(5, 5), 8, 0, poly)
	assert.Empty(t, pts)
}

func TestScan_RayOrder(t *testing.T) {
	pose := geometry.Pt(5, 5)
	pts := NewScanner(WithSeed(3)).Scan(pose, 8, 0, testutil.SquareRoom(10))
	require.Len(t, pts, 8)

	for i, a := range RayAngles(8) {
		d := pts[i].Sub(pose)
		off := math.Remainder(math.Atan2(d.Y, d.X)-a, 2*math.Pi)
		assert.InDelta(t, 0, off, 1e-9, "point %d out of angle order", i)
	}
}

func TestScan_NoiseIsRangeOnly(t *testing.T) {
	room := testutil.SquareRoom(10)
	pose := geometry.Pt(5, 5)
	const rays = 4

	clean := NewScanner(WithSeed(1)).Scan(pose, rays, 0, room)
	require.Len(t, clean, rays)

	for _, sigma := range []float64{0.5, 2} {
		s := NewScanner(WithSeed(42))
		var along []float64
		for n := 0; n < 500; n++ {
			pts := s.Scan(pose, rays, sigma, room)
			require.Len(t, pts, rays)
			for i, a := range RayAngles(rays) {
				dir := geometry.Pt(math.Cos(a), math.Sin(a))
				d := pts[i].Sub(clean[i])
				along = append(along, d.Dot(dir))
				assert.InDelta(t, 0, d.Cross(dir), 1e-9, "noise must not jitter sideways")
			}
		}

		mean, std := stat.MeanStdDev(along, nil)
		assert.InDelta(t, 0, mean, 0.1*sigma, "sigma=%v: mean range offset", sigma)
		assert.InDelta(t, sigma, std, 0.1*sigma, "sigma=%v: range offset spread", sigma)
	}
}

func TestScan_SeedReproducibleAcrossWorkers(t *testing.T) {
	room := testutil.SquareRoom(10)
	pose := geometry.Pt(2, 7)

	serial := NewScanner(WithSeed(77)).Scan(pose, 72, 3, room)
	parallel := NewScanner(WithSeed(77), WithWorkers(8)).Scan(pose, 72, 3, room)

	assert.Equal(t, serial, parallel)
	assert.Len(t, serial, 72)
}

func TestScanContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		pts, err := NewScanner(WithSeed(1), WithWorkers(workers)).
			ScanContext(ctx, geometry.Pt(5, 5), 16, 0, testutil.SquareRoom(10))
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Nil(t, pts)
	}
}

func TestScan_RecordsStats(t *testing.T) {
	stats := NewScanStats()
	s := NewScanner(WithSeed(1), WithStats(stats))
	s.Scan(geometry.Pt(5, 5), 4, 0, geometry.NewPolygon(geometry.Seg(10, 0, 10, 10)))
	s.Scan(geometry.Pt(5, 5), 4, 0, testutil.SquareRoom(10))

	snap := stats.GetAndReset()
	assert.Equal(t, int64(2), snap.Scans)
	assert.Equal(t, int64(8), snap.Rays)
	assert.Equal(t, int64(5), snap.Hits)
	assert.Equal(t, int64(3), snap.Misses)

	assert.Zero(t, stats.GetAndReset().Scans, "counters reset after read")
}

func TestPackageScan(t *testing.T) {
	pts := Scan(geometry.Pt(5, 5), 4, 0, testutil.SquareRoom(10))
	assert.Len(t, pts, 4)
}
