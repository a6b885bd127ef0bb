package lidar

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/banshee-data/lidar-sim/internal/geometry"
)

// RayAngles returns n headings evenly spaced over a full turn starting at
// zero: 2πk/n for k = 0..n-1. The closing angle 2π is never included.
func RayAngles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for k := range out {
		out[k] = step * float64(k)
	}
	return out
}

// Scanner synthesises range scans against a polygon. Each call is
// independent: there is no smoothing or memory of previous scans.
//
// A Scanner may be shared between goroutines. Noise draws are serialised
// so a seeded scanner produces the same sequence regardless of how many
// workers cast the rays.
type Scanner struct {
	noiseMu sync.Mutex
	noise   *Noise
	stats   *ScanStats
	workers int
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithSeed fixes the noise seed. Without it the seed comes from the clock.
func WithSeed(seed uint64) ScannerOption {
	return func(s *Scanner) { s.noise = NewNoise(seed) }
}

// WithStats records every scan into stats.
func WithStats(stats *ScanStats) ScannerOption {
	return func(s *Scanner) { s.stats = stats }
}

// WithWorkers casts rays on up to n goroutines. Values below 2 keep the
// scan on the calling goroutine.
func WithWorkers(n int) ScannerOption {
	return func(s *Scanner) { s.workers = n }
}

// NewScanner builds a Scanner.
func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.noise == nil {
		s.noise = NewNoise(uint64(time.Now().UnixNano()))
	}
	return s
}

var defaultScanner = sync.OnceValue(func() *Scanner { return NewScanner() })

// Scan runs one sweep with a process-wide clock-seeded scanner.
func Scan(pose geometry.Point, rayCount int, noiseStd float64, poly *geometry.Polygon) []geometry.Point {
	return defaultScanner().Scan(pose, rayCount, noiseStd, poly)
}

// rayHit is the noiseless result of one beam.
type rayHit struct {
	point geometry.Point
	dir   geometry.Point
	ok    bool
}

// Scan casts rayCount beams from pose and returns one point per beam that
// hit poly, in beam-angle order. Each hit is pushed along its beam by a
// Gaussian range error with standard deviation noiseStd.
func (s *Scanner) Scan(pose geometry.Point, rayCount int, noiseStd float64, poly *geometry.Polygon) []geometry.Point {
	pts, _ := s.ScanContext(context.Background(), pose, rayCount, noiseStd, poly)
	return pts
}

// ScanContext is Scan with cancellation checked between rays. On
// cancellation it returns ctx's error and no points.
func (s *Scanner) ScanContext(ctx context.Context, pose geometry.Point, rayCount int, noiseStd float64, poly *geometry.Polygon) ([]geometry.Point, error) {
	angles := RayAngles(rayCount)
	hits := make([]rayHit, len(angles))

	if s.workers < 2 {
		for i, a := range angles {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			hits[i] = castRay(pose, a, poly)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i, a := range angles {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				hits[i] = castRay(pose, a, poly)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := make([]geometry.Point, 0, len(hits))
	s.noiseMu.Lock()
	for i, h := range hits {
		if !h.ok {
			Tracef("ray %d (%.4f rad): no hit", i, angles[i])
			continue
		}
		offset := s.noise.Sample(noiseStd)
		out = append(out, h.point.Add(h.dir.Scale(offset)))
		Tracef("ray %d (%.4f rad): hit %v range_offset=%.4f", i, angles[i], h.point, offset)
	}
	s.noiseMu.Unlock()

	if s.stats != nil {
		s.stats.AddScan(len(angles), len(out))
	}
	Diagf("scan from %v: %d/%d rays hit %d segments", pose, len(out), len(angles), poly.Len())
	return out, nil
}

// castRay builds a unit-length beam from pose at angle and finds its
// nearest hit on poly.
func castRay(pose geometry.Point, angle float64, poly *geometry.Polygon) rayHit {
	dir := geometry.Pt(math.Cos(angle), math.Sin(angle))
	ray := geometry.NewRay(geometry.Segment{A: pose, B: pose.Add(dir)})
	p, ok := ray.IntersectPolygon(poly)
	return rayHit{point: p, dir: dir, ok: ok}
}
