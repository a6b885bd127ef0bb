package monitor

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/lidar-sim/internal/geometry"
)

// wallSamplesPerSegment controls how densely walls are drawn in the HTML
// chart, which has no native segment series on a value axis.
const wallSamplesPerSegment = 24

// WriteScanChart renders room walls, pose, and scan points as a square
// scatter chart.
func WriteScanChart(w io.Writer, room *geometry.Polygon, pose geometry.Point, points []geometry.Point) error {
	walls := make([]opts.ScatterData, 0, room.Len()*(wallSamplesPerSegment+1))
	minX, minY := pose.X, pose.Y
	maxX, maxY := pose.X, pose.Y
	extend := func(p geometry.Point) {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	for _, s := range room.Segments() {
		d := s.B.Sub(s.A)
		for i := 0; i <= wallSamplesPerSegment; i++ {
			p := s.A.Add(d.Scale(float64(i) / wallSamplesPerSegment))
			walls = append(walls, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
		}
		extend(s.A)
		extend(s.B)
	}

	returns := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		returns = append(returns, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
		extend(p)
	}

	// Force a square plot by using a shared span on both axes.
	span := math.Max(maxX-minX, maxY-minY)/2 + 1
	cx, cy := (minX+maxX)/2, (minY+maxY)/2

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "LiDAR Scan", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Simulated LiDAR Scan", Subtitle: fmt.Sprintf("pose=%v points=%d walls=%d", pose, len(points), room.Len())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: cx - span, Max: cx + span, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: cy - span, Max: cy + span, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("walls", walls, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	scatter.AddSeries("returns", returns, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))
	scatter.AddSeries("pose", []opts.ScatterData{{Value: []interface{}{pose.X, pose.Y}}},
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteScanChartFile renders the chart into dir/name.
func WriteScanChartFile(dir, name string, room *geometry.Polygon, pose geometry.Point, points []geometry.Point) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := WriteScanChart(f, room, pose, points); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close chart file: %w", err)
	}
	return path, nil
}
