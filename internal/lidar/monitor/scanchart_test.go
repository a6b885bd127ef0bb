package monitor

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/banshee-data/lidar-sim/internal/geometry"
	"github.com/banshee-data/lidar-sim/internal/testutil"
)

func TestWriteScanChart(t *testing.T) {
	var buf bytes.Buffer
	pts := []geometry.Point{geometry.Pt(10, 5), geometry.Pt(5, 10)}
	if err := WriteScanChart(&buf, testutil.SquareRoom(10), geometry.Pt(5, 5), pts); err != nil {
		t.Fatalf("WriteScanChart: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"<html", "Simulated LiDAR Scan", "returns", "walls"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart output missing %q", want)
		}
	}
}

func TestWriteScanChart_NilRoom(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteScanChart(&buf, nil, geometry.Pt(0, 0), nil); err != nil {
		t.Fatalf("WriteScanChart: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected chart output")
	}
}

func TestWriteScanChartFile(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteScanChartFile(dir, "scan.html", testutil.SquareRoom(4), geometry.Pt(2, 2), nil)
	if err != nil {
		t.Fatalf("WriteScanChartFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if !strings.Contains(string(data), "LiDAR Scan") {
		t.Error("chart file missing page title")
	}
}
