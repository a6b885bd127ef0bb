package sim

import (
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/lidar-sim/internal/geometry"
	"github.com/banshee-data/lidar-sim/internal/lidar"
)

// Defaults used by the simulated sensor.
const (
	DefaultRaysNum  = 72
	DefaultNoiseStd = 3.0
)

// LidarPlugin replaces World.LidarPoints with a fresh scan from the robot's
// current position.
type LidarPlugin struct {
	Scanner  *lidar.Scanner
	RaysNum  int
	NoiseStd float64

	// OnScan, when set, receives every completed scan.
	OnScan func(ScanFrame)
}

// NewLidarPlugin returns a plugin with the default ray count and noise.
func NewLidarPlugin(scanner *lidar.Scanner) *LidarPlugin {
	return &LidarPlugin{
		Scanner:  scanner,
		RaysNum:  DefaultRaysNum,
		NoiseStd: DefaultNoiseStd,
	}
}

// Process takes one scan.
func (p *LidarPlugin) Process(w *World) error {
	pose := w.Robot.Position
	pts := p.Scanner.Scan(pose, p.RaysNum, p.NoiseStd, w.Room.Polygon())

	w.LidarPoints = pts
	frame := ScanFrame{
		ID:     uuid.NewString(),
		Frame:  w.Frame,
		Taken:  time.Now(),
		Pose:   pose,
		Points: append([]geometry.Point(nil), pts...),
	}
	w.LastScan = &frame
	lidar.Diagf("scan %s frame=%d pose=%v points=%d", frame.ID, frame.Frame, pose, len(pts))

	if p.OnScan != nil {
		p.OnScan(frame)
	}
	return nil
}
