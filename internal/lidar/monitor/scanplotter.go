// Package monitor exports simulated scans for offline inspection: PNG
// plots via gonum/plot and interactive HTML scatter charts via go-echarts.
package monitor

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/lidar-sim/internal/geometry"
	"github.com/banshee-data/lidar-sim/internal/lidar"
)

// ScanSample is one recorded scan.
type ScanSample struct {
	Index  int
	Pose   geometry.Point
	Points []geometry.Point
	Ranges lidar.RangeSummary
}

// ScanPlotter records scans over a run and renders them after it ends.
type ScanPlotter struct {
	mu        sync.Mutex
	enabled   bool
	outputDir string
	room      *geometry.Polygon

	samples []ScanSample
}

// NewScanPlotter creates a plotter that draws scans against room.
func NewScanPlotter(room *geometry.Polygon) *ScanPlotter {
	return &ScanPlotter{room: room}
}

// Start initializes the plotter for a new run, creating outputDir.
func (sp *ScanPlotter) Start(outputDir string) error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	sp.outputDir = outputDir
	sp.enabled = true
	sp.samples = nil
	return nil
}

// Stop disables sampling. Call GeneratePlots() to produce output files.
func (sp *ScanPlotter) Stop() {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	sp.enabled = false
}

// IsEnabled returns true if the plotter is currently recording.
func (sp *ScanPlotter) IsEnabled() bool {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.enabled
}

// Sample records one scan taken from pose. The points are copied.
func (sp *ScanPlotter) Sample(pose geometry.Point, points []geometry.Point) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.enabled {
		return
	}
	sp.samples = append(sp.samples, ScanSample{
		Index:  len(sp.samples),
		Pose:   pose,
		Points: append([]geometry.Point(nil), points...),
		Ranges: lidar.SummariseRanges(pose, points),
	})
}

// Samples returns a copy of the recorded scans.
func (sp *ScanPlotter) Samples() []ScanSample {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	out := make([]ScanSample, len(sp.samples))
	copy(out, sp.samples)
	return out
}

// GetOutputDir returns the current output directory for plots.
func (sp *ScanPlotter) GetOutputDir() string {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.outputDir
}

// GeneratePlots writes one map PNG per recorded scan plus a range summary
// plot across scans. Returns the number of files written.
func (sp *ScanPlotter) GeneratePlots() (int, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.outputDir == "" {
		return 0, fmt.Errorf("no output directory configured")
	}
	if len(sp.samples) == 0 {
		return 0, nil
	}

	colors := generateColors(len(sp.samples))
	written := 0
	for i, s := range sp.samples {
		file := filepath.Join(sp.outputDir, fmt.Sprintf("scan_%04d.png", s.Index))
		if err := sp.writeScanPlot(file, s, colors[i]); err != nil {
			return written, fmt.Errorf("scan %d: %w", s.Index, err)
		}
		written++
	}

	if err := sp.writeRangePlot(filepath.Join(sp.outputDir, "ranges.png")); err != nil {
		return written, fmt.Errorf("range plot: %w", err)
	}
	written++

	lidar.Diagf("monitor: wrote %d plots to %s", written, sp.outputDir)
	return written, nil
}

// writeScanPlot draws the room walls, the pose, and the scan points.
func (sp *ScanPlotter) writeScanPlot(file string, s ScanSample, c color.Color) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Scan %d - %d points from %v", s.Index, len(s.Points), s.Pose)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	if err := addWalls(p, sp.room); err != nil {
		return err
	}

	if len(s.Points) > 0 {
		pts := make(plotter.XYs, len(s.Points))
		for i, pt := range s.Points {
			pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = c
		scatter.GlyphStyle.Radius = vg.Points(2)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add("returns", scatter)
	}

	pose, err := plotter.NewScatter(plotter.XYs{{X: s.Pose.X, Y: s.Pose.Y}})
	if err != nil {
		return err
	}
	pose.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
	pose.GlyphStyle.Radius = vg.Points(4)
	pose.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(pose)
	p.Legend.Add("pose", pose)

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("save scan plot: %w", err)
	}
	return nil
}

// writeRangePlot plots mean, min, and max range against scan index.
func (sp *ScanPlotter) writeRangePlot(file string) error {
	p := plot.New()
	p.Title.Text = "Range per scan"
	p.X.Label.Text = "Scan"
	p.Y.Label.Text = "Range"

	mean := make(plotter.XYs, 0, len(sp.samples))
	lo := make(plotter.XYs, 0, len(sp.samples))
	hi := make(plotter.XYs, 0, len(sp.samples))
	for _, s := range sp.samples {
		if s.Ranges.Count == 0 {
			continue
		}
		x := float64(s.Index)
		mean = append(mean, plotter.XY{X: x, Y: s.Ranges.Mean})
		lo = append(lo, plotter.XY{X: x, Y: s.Ranges.Min})
		hi = append(hi, plotter.XY{X: x, Y: s.Ranges.Max})
	}

	series := []struct {
		name string
		xys  plotter.XYs
		c    color.Color
	}{
		{"mean", mean, color.RGBA{B: 200, A: 255}},
		{"min", lo, color.RGBA{G: 150, A: 255}},
		{"max", hi, color.RGBA{R: 200, A: 255}},
	}
	for _, s := range series {
		if len(s.xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(s.xys)
		if err != nil {
			return err
		}
		line.Color = s.c
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save range plot: %w", err)
	}
	return nil
}

func addWalls(p *plot.Plot, room *geometry.Polygon) error {
	for _, s := range room.Segments() {
		line, err := plotter.NewLine(plotter.XYs{{X: s.A.X, Y: s.A.Y}, {X: s.B.X, Y: s.B.Y}})
		if err != nil {
			return err
		}
		line.Color = color.Black
		line.Width = vg.Points(2)
		p.Add(line)
	}
	return nil
}

// generateColors creates n distinct colors using HSL color space
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
